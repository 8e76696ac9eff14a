package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase"
)

func TestFromPayment_NeverExposesSession(t *testing.T) {
	p := entities.Payment{Reference: "HEC1", SessionID: "secret-session", Status: entities.PaymentStatusPending}
	b, err := json.Marshal(FromGenerateResult(usecase.GenerateResult{Reference: "HEC1", QRData: "x|1|y", Payment: p}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(b), "secret-session") || strings.Contains(string(b), "sessionId") {
		t.Fatalf("session leaked: %s", b)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["qrData"] != "x|1|y" || body["qrCode"] != "x|1|y" {
		t.Fatalf("unexpected qr fields: %s", b)
	}
}

func TestFromVerificationOutcome(t *testing.T) {
	now := time.Now().UTC()
	out := FromVerificationOutcome(usecase.VerificationOutcome{
		Success: true,
		Payment: entities.Payment{Reference: "HEC1", Status: entities.PaymentStatusVerified, VerifiedAt: &now},
		Invoice: &entities.Invoice{InvoiceNumber: "INV-HEC1", Items: []entities.InvoiceItem{{Description: "Website Development Service", Amount: 5}}},
		Message: "ok",
	})
	if out.Invoice == nil || out.Invoice.InvoiceNumber != "INV-HEC1" || len(out.Invoice.Items) != 1 {
		t.Fatalf("unexpected invoice: %+v", out.Invoice)
	}

	pending := FromVerificationOutcome(usecase.VerificationOutcome{Payment: entities.Payment{Reference: "HEC2"}})
	if pending.Invoice != nil {
		t.Fatalf("pending outcome must not carry an invoice")
	}
}

func TestFromAdminPayments_Summary(t *testing.T) {
	res := FromAdminPayments([]entities.Payment{
		{Reference: "A", Status: entities.PaymentStatusPending, Amount: 1},
		{Reference: "B", Status: entities.PaymentStatusVerified, Amount: 250000},
		{Reference: "C", Status: entities.PaymentStatusVerified, Amount: 450000},
		{Reference: "D", Status: entities.PaymentStatusFailed},
		{Reference: "E", Status: entities.PaymentStatusFraudSuspected},
	})
	want := PaymentSummary{Total: 5, Pending: 1, Verified: 2, Failed: 1, FraudSuspected: 1, VerifiedAmount: 700000}
	if res.Summary != want {
		t.Fatalf("expected %+v, got %+v", want, res.Summary)
	}
	if len(res.Payments) != 5 {
		t.Fatalf("expected 5 payments, got %d", len(res.Payments))
	}
}

func TestFromAdminQuotes_Summary(t *testing.T) {
	res := FromAdminQuotes([]entities.QuoteLead{
		{ID: "Q1", Status: entities.QuoteLeadStatusNew, Estimate: entities.Quote{Total: 250000}},
		{ID: "Q2", Status: "contacted", Estimate: entities.Quote{Total: 450000}},
	})
	if res.Summary.Total != 2 || res.Summary.New != 1 || res.Summary.EstimatedValue != 700000 {
		t.Fatalf("unexpected summary: %+v", res.Summary)
	}
}
