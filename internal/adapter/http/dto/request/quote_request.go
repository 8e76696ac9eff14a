package request

import (
	"errors"
	"strconv"
	"strings"

	"github.com/hepsystems/hepeco/internal/usecase"
)

var ErrInvalidBudget = errors.New("invalid budget")

// CalculateQuoteRequest accepts the timeline as "timeline" (form) or
// "timelineDays" (API clients).
type CalculateQuoteRequest struct {
	Service      string         `json:"service" binding:"required"`
	Timeline     FlexibleString `json:"timeline"`
	TimelineDays FlexibleString `json:"timelineDays"`
}

func (r CalculateQuoteRequest) ResolveTimeline() string {
	if r.Timeline != "" {
		return r.Timeline.String()
	}
	return r.TimelineDays.String()
}

type SaveQuoteRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Service  string         `json:"service"`
	Timeline FlexibleString `json:"timeline"`
	Budget   FlexibleString `json:"budget"`
	Message  string         `json:"message"`
}

// ResolveBudget reads budgets such as 500000, "500000" or "MWK 500,000".
// An empty budget is zero.
func (r SaveQuoteRequest) ResolveBudget() (int64, error) {
	raw := strings.TrimSpace(r.Budget.String())
	if raw == "" {
		return 0, nil
	}
	raw = strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(raw), "MWK"))
	raw = strings.ReplaceAll(raw, ",", "")
	if dot := strings.IndexByte(raw, '.'); dot >= 0 {
		raw = raw[:dot]
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, ErrInvalidBudget
	}
	return n, nil
}

func (r SaveQuoteRequest) ToCommand() (usecase.SaveQuoteCommand, error) {
	budget, err := r.ResolveBudget()
	if err != nil {
		return usecase.SaveQuoteCommand{}, err
	}
	return usecase.SaveQuoteCommand{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Service:  r.Service,
		Timeline: r.Timeline.String(),
		Budget:   budget,
		Message:  r.Message,
	}, nil
}
