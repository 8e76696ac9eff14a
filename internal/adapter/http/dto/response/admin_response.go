package response

import "github.com/hepsystems/hepeco/internal/domain/entities"

type PaymentSummary struct {
	Total          int   `json:"total"`
	Pending        int   `json:"pending"`
	Verified       int   `json:"verified"`
	Failed         int   `json:"failed"`
	FraudSuspected int   `json:"fraudSuspected"`
	VerifiedAmount int64 `json:"verifiedAmount"`
}

type AdminPaymentsResponse struct {
	Success  bool              `json:"success"`
	Summary  PaymentSummary    `json:"summary"`
	Payments []PaymentResponse `json:"payments"`
}

func FromAdminPayments(ps []entities.Payment) AdminPaymentsResponse {
	var s PaymentSummary
	for _, p := range ps {
		s.Total++
		switch p.Status {
		case entities.PaymentStatusPending:
			s.Pending++
		case entities.PaymentStatusVerified:
			s.Verified++
			s.VerifiedAmount += p.Amount
		case entities.PaymentStatusFailed:
			s.Failed++
		case entities.PaymentStatusFraudSuspected:
			s.FraudSuspected++
		}
	}
	return AdminPaymentsResponse{Success: true, Summary: s, Payments: FromPayments(ps)}
}

type QuoteSummary struct {
	Total          int   `json:"total"`
	New            int   `json:"new"`
	EstimatedValue int64 `json:"estimatedValue"`
}

type AdminQuotesResponse struct {
	Success bool                `json:"success"`
	Summary QuoteSummary        `json:"summary"`
	Quotes  []QuoteLeadResponse `json:"quotes"`
}

func FromAdminQuotes(qs []entities.QuoteLead) AdminQuotesResponse {
	s := QuoteSummary{Total: len(qs)}
	leads := make([]QuoteLeadResponse, 0, len(qs))
	for _, q := range qs {
		if q.Status == entities.QuoteLeadStatusNew {
			s.New++
		}
		s.EstimatedValue += q.Estimate.Total
		leads = append(leads, FromQuoteLead(q))
	}
	return AdminQuotesResponse{Success: true, Summary: s, Quotes: leads}
}
