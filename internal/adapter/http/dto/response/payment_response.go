package response

import (
	"time"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase"
)

// PaymentResponse is the public view of a payment. The session id is never
// part of it.
type PaymentResponse struct {
	Reference      string     `json:"reference"`
	Amount         int64      `json:"amount"`
	Phone          string     `json:"phone"`
	Method         string     `json:"method"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	ExpiresAt      time.Time  `json:"expiresAt"`
	VerifiedAt     *time.Time `json:"verifiedAt,omitempty"`
	FraudReasons   []string   `json:"fraudReasons,omitempty"`
	TransactionID  string     `json:"transactionId,omitempty"`
	VerifyAttempts int        `json:"verifyAttempts"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		Reference:      p.Reference,
		Amount:         p.Amount,
		Phone:          p.Phone,
		Method:         string(p.Method),
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
		ExpiresAt:      p.ExpiresAt,
		VerifiedAt:     p.VerifiedAt,
		FraudReasons:   p.FraudReasons,
		TransactionID:  p.TransactionID,
		VerifyAttempts: p.VerifyAttempts,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

type InvoiceItemResponse struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type InvoiceResponse struct {
	InvoiceNumber string                `json:"invoiceNumber"`
	Date          string                `json:"date"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      int64                 `json:"subtotal"`
	Tax           int64                 `json:"tax"`
	Total         int64                 `json:"total"`
	PaymentMethod string                `json:"paymentMethod"`
	Status        string                `json:"status"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{Description: it.Description, Amount: it.Amount})
	}
	return InvoiceResponse{
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date,
		Items:         items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		PaymentMethod: string(inv.PaymentMethod),
		Status:        inv.Status,
	}
}

// GeneratePaymentResponse carries the QR payload under both names used by
// website versions (qrData and qrCode).
type GeneratePaymentResponse struct {
	Success      bool            `json:"success"`
	Reference    string          `json:"reference"`
	QRData       string          `json:"qrData"`
	QRCode       string          `json:"qrCode"`
	Payment      PaymentResponse `json:"payment"`
	Instructions []string        `json:"instructions"`
	ExpiresAt    time.Time       `json:"expiresAt"`
}

func FromGenerateResult(r usecase.GenerateResult) GeneratePaymentResponse {
	return GeneratePaymentResponse{
		Success:      true,
		Reference:    r.Reference,
		QRData:       r.QRData,
		QRCode:       r.QRData,
		Payment:      FromPayment(r.Payment),
		Instructions: r.Instructions,
		ExpiresAt:    r.ExpiresAt,
	}
}

type VerifyPaymentResponse struct {
	Success bool             `json:"success"`
	Payment PaymentResponse  `json:"payment"`
	Invoice *InvoiceResponse `json:"invoice,omitempty"`
	Message string           `json:"message"`
}

func FromVerificationOutcome(o usecase.VerificationOutcome) VerifyPaymentResponse {
	out := VerifyPaymentResponse{
		Success: o.Success,
		Payment: FromPayment(o.Payment),
		Message: o.Message,
	}
	if o.Invoice != nil {
		inv := FromInvoice(*o.Invoice)
		out.Invoice = &inv
	}
	return out
}

type GetPaymentResponse struct {
	Success bool            `json:"success"`
	Payment PaymentResponse `json:"payment"`
}

type WebhookResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}
