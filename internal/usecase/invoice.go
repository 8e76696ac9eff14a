package usecase

import (
	"errors"

	"github.com/hepsystems/hepeco/internal/domain/entities"
)

var ErrPaymentNotVerified = errors.New("payment not verified")

const (
	invoiceNumberPrefix    = "INV-"
	invoiceItemDescription = "Website Development Service"
	invoiceStatusPaid      = "paid"
)

// NewInvoice derives the invoice for a verified payment. The result depends
// only on stored fields, so it is identical on every call.
func NewInvoice(p entities.Payment) (entities.Invoice, error) {
	if p.Status != entities.PaymentStatusVerified || p.VerifiedAt == nil {
		return entities.Invoice{}, ErrPaymentNotVerified
	}

	return entities.Invoice{
		InvoiceNumber: invoiceNumberPrefix + p.Reference,
		Date:          p.VerifiedAt.UTC().Format("2006-01-02"),
		Items: []entities.InvoiceItem{
			{Description: invoiceItemDescription, Amount: p.Amount},
		},
		Subtotal:      p.Amount,
		Tax:           0,
		Total:         p.Amount,
		PaymentMethod: p.Method,
		Status:        invoiceStatusPaid,
	}, nil
}
