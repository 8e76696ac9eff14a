package response

import (
	"time"

	"github.com/hepsystems/hepeco/internal/domain/entities"
)

type QuoteResponse struct {
	Service      string `json:"service"`
	TimelineDays int    `json:"timelineDays"`
	BasePrice    int64  `json:"basePrice"`
	Surcharge    int64  `json:"surcharge"`
	Total        int64  `json:"total"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		Service:      string(q.Service),
		TimelineDays: q.TimelineDays,
		BasePrice:    q.BasePrice,
		Surcharge:    q.Surcharge,
		Total:        q.Total,
	}
}

type CalculateQuoteResponse struct {
	Success bool          `json:"success"`
	Quote   QuoteResponse `json:"quote"`
}

type QuoteLeadResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email,omitempty"`
	Phone        string        `json:"phone"`
	Service      string        `json:"service"`
	TimelineDays int           `json:"timelineDays"`
	Budget       int64         `json:"budget"`
	Message      string        `json:"message,omitempty"`
	Status       string        `json:"status"`
	Estimate     QuoteResponse `json:"estimate"`
	CreatedAt    time.Time     `json:"createdAt"`
}

func FromQuoteLead(q entities.QuoteLead) QuoteLeadResponse {
	return QuoteLeadResponse{
		ID:           q.ID,
		Name:         q.Name,
		Email:        q.Email,
		Phone:        q.Phone,
		Service:      string(q.Service),
		TimelineDays: q.TimelineDays,
		Budget:       q.Budget,
		Message:      q.Message,
		Status:       string(q.Status),
		Estimate:     FromQuote(q.Estimate),
		CreatedAt:    q.CreatedAt,
	}
}

type SaveQuoteResponse struct {
	Success bool              `json:"success"`
	QuoteID string            `json:"quoteId"`
	Quote   QuoteLeadResponse `json:"quote"`
}
