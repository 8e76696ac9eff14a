package usecase

import (
	"strings"

	"github.com/google/uuid"
)

const (
	paymentReferencePrefix = "HEC"
	quoteIDPrefix          = "QUOTE"
	randomSuffixLen        = 12
)

func randomSuffix() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:randomSuffixLen]
}

// NewPaymentReference returns an unpredictable, QR-safe reference such as
// HEC3F9A0C2B7D1E.
func NewPaymentReference() string {
	return paymentReferencePrefix + randomSuffix()
}

func NewQuoteID() string {
	return quoteIDPrefix + randomSuffix()
}
