package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/hepsystems/hepeco/internal/domain/entities"
)

func TestNewInvoice(t *testing.T) {
	t.Run("pending payment has no invoice", func(t *testing.T) {
		_, err := NewInvoice(entities.Payment{Reference: "HEC1", Status: entities.PaymentStatusPending})
		if !errors.Is(err, ErrPaymentNotVerified) {
			t.Fatalf("expected ErrPaymentNotVerified, got %v", err)
		}
	})

	t.Run("verified payment", func(t *testing.T) {
		verifiedAt := time.Date(2026, 7, 4, 23, 30, 0, 0, time.FixedZone("CAT", 2*3600))
		p := entities.Payment{
			Reference:  "HECABC",
			Amount:     450000,
			Method:     entities.PaymentMethodAirtel,
			Status:     entities.PaymentStatusVerified,
			VerifiedAt: &verifiedAt,
		}

		inv, err := NewInvoice(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.InvoiceNumber != "INV-HECABC" || inv.Total != 450000 || inv.Subtotal != 450000 || inv.Tax != 0 {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
		if inv.Date != "2026-07-04" {
			t.Fatalf("expected UTC date 2026-07-04, got %s", inv.Date)
		}
		if len(inv.Items) != 1 || inv.Items[0].Description != "Website Development Service" {
			t.Fatalf("unexpected items: %+v", inv.Items)
		}
		if inv.Status != "paid" || inv.PaymentMethod != entities.PaymentMethodAirtel {
			t.Fatalf("unexpected status/method: %+v", inv)
		}

		again, _ := NewInvoice(p)
		if again.InvoiceNumber != inv.InvoiceNumber || again.Date != inv.Date {
			t.Fatalf("invoice must be stable across calls")
		}
	})
}
