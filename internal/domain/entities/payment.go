package entities

import "time"

// PaymentStatus is the state of a payment reference.
//
// Transitions:
//   - pending -> verified | failed | fraud_suspected
//   - failed  -> verified | failed | fraud_suspected (retry)
//
// verified and fraud_suspected are terminal.
type PaymentStatus string

const (
	PaymentStatusPending        PaymentStatus = "pending"
	PaymentStatusVerified       PaymentStatus = "verified"
	PaymentStatusFailed         PaymentStatus = "failed"
	PaymentStatusFraudSuspected PaymentStatus = "fraud_suspected"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusVerified || s == PaymentStatusFraudSuspected
}

type PaymentMethod string

const (
	PaymentMethodMpamba PaymentMethod = "mpamba"
	PaymentMethodAirtel PaymentMethod = "airtel"
	PaymentMethodBank   PaymentMethod = "bank"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodMpamba, PaymentMethodAirtel, PaymentMethodBank:
		return true
	}
	return false
}

// Payment is a payment reference handed to a customer, owned by the
// payment lifecycle use case.
//
// Storage model (DynamoDB):
//   - PK: reference
//   - GSI (phone-index): phone
//
// Phone is always stored in canonical 265XXXXXXXXX form.
type Payment struct {
	Reference      string        `json:"reference"`
	Amount         int64         `json:"amount"`
	Phone          string        `json:"phone"`
	Method         PaymentMethod `json:"method"`
	Status         PaymentStatus `json:"status"`
	SessionID      string        `json:"-"`
	CreatedAt      time.Time     `json:"created_at"`
	ExpiresAt      time.Time     `json:"expires_at"`
	VerifiedAt     *time.Time    `json:"verified_at,omitempty"`
	FraudReasons   []string      `json:"fraud_reasons,omitempty"`
	TransactionID  string        `json:"transaction_id,omitempty"`
	VerifyAttempts int           `json:"verify_attempts"`
}

// GatewayStatus is what a payment provider reports for a reference.
type GatewayStatus string

const (
	GatewayStatusVerified GatewayStatus = "verified"
	GatewayStatusPending  GatewayStatus = "pending"
	GatewayStatusFailed   GatewayStatus = "failed"
)
