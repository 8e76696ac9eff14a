package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidQuote = errors.New("invalid quote request")
)

type SaveQuoteCommand struct {
	Name     string
	Email    string
	Phone    string
	Service  string
	Timeline string
	Budget   int64
	Message  string
}

// IQuoteUseCase exposes the quote calculator and quote lead capture.
type IQuoteUseCase interface {
	Calculate(service, timeline string) entities.Quote
	Save(ctx context.Context, cmd SaveQuoteCommand) (entities.QuoteLead, error)
	List(ctx context.Context) ([]entities.QuoteLead, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
	now  func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, now: time.Now}
}

// Calculate prices service for a timeline as typed on the form. Timelines
// that cannot be read fall back to the standard 14 days.
func (u *QuoteUseCase) Calculate(service, timeline string) entities.Quote {
	days, ok := ParseTimeline(timeline)
	if !ok {
		days = DefaultTimelineDays
	}
	return ComputeQuote(service, days)
}

func (u *QuoteUseCase) Save(ctx context.Context, cmd SaveQuoteCommand) (entities.QuoteLead, error) {
	name := strings.TrimSpace(cmd.Name)
	phone := strings.TrimSpace(cmd.Phone)
	service := strings.TrimSpace(cmd.Service)
	if name == "" || phone == "" || service == "" || cmd.Budget < 0 {
		return entities.QuoteLead{}, ErrInvalidQuote
	}
	if u.repo == nil {
		return entities.QuoteLead{}, errors.New("quote repository not configured")
	}

	estimate := u.Calculate(service, cmd.Timeline)
	lead := entities.QuoteLead{
		ID:           NewQuoteID(),
		Name:         name,
		Email:        strings.TrimSpace(cmd.Email),
		Phone:        phone,
		Service:      estimate.Service,
		TimelineDays: estimate.TimelineDays,
		Budget:       cmd.Budget,
		Message:      strings.TrimSpace(cmd.Message),
		Status:       entities.QuoteLeadStatusNew,
		Estimate:     estimate,
		CreatedAt:    u.now().UTC(),
	}

	created, err := u.repo.Create(ctx, lead)
	if err != nil {
		log.WithError(err).WithField("quote_id", lead.ID).Error("[quote][usecase] repository create failed")
		return entities.QuoteLead{}, err
	}
	log.WithFields(log.Fields{
		"quote_id": created.ID,
		"service":  created.Service,
		"estimate": created.Estimate.Total,
	}).Info("[quote][usecase] quote saved")
	return created, nil
}

// List returns every quote lead, newest first.
func (u *QuoteUseCase) List(ctx context.Context) ([]entities.QuoteLead, error) {
	leads, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
	return leads, nil
}
