package request

import "github.com/hepsystems/hepeco/internal/usecase"

// GeneratePaymentRequest is the body of POST /api/payment/generate.
type GeneratePaymentRequest struct {
	Amount    int64  `json:"amount"`
	Phone     string `json:"phone"`
	Method    string `json:"method"`
	SessionID string `json:"sessionId"`
}

func (r GeneratePaymentRequest) ToCommand() usecase.GenerateCommand {
	return usecase.GenerateCommand{
		Amount:    r.Amount,
		Phone:     r.Phone,
		Method:    r.Method,
		SessionID: r.SessionID,
	}
}

// VerifyPaymentRequest is the body of POST /api/payment/verify. Phone is
// accepted for compatibility with older clients and not used.
type VerifyPaymentRequest struct {
	Reference string `json:"reference"`
	Phone     string `json:"phone"`
	SessionID string `json:"sessionId"`
}

// MobileMoneyWebhookRequest is the provider push for a reference.
type MobileMoneyWebhookRequest struct {
	TransactionID string `json:"transactionId"`
	Amount        int64  `json:"amount"`
	Phone         string `json:"phone"`
	Reference     string `json:"reference" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

func (r MobileMoneyWebhookRequest) ToNotification() usecase.ProviderNotification {
	return usecase.ProviderNotification{
		Reference:     r.Reference,
		TransactionID: r.TransactionID,
		Amount:        r.Amount,
		Phone:         r.Phone,
		Status:        r.Status,
	}
}
