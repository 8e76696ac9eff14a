package usecase

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hepsystems/hepeco/internal/domain/entities"
)

var (
	ErrMalformedQRPayload = errors.New("malformed qr payload")
	ErrQRPayloadTampered  = errors.New("qr payload integrity tag mismatch")
)

const (
	mpambaUSSDCode = "444"
	airtelUSSDCode = "555"
	qrTagLen       = 8
)

// PaymentAccounts are the merchant accounts customers pay into.
type PaymentAccounts struct {
	MpambaAccount   string
	AirtelAccount   string
	BankName        string
	BankAccountName string
	BankAccount     string
	BankBranch      string
}

func DefaultPaymentAccounts() PaymentAccounts {
	return PaymentAccounts{
		MpambaAccount:   "0991268040",
		AirtelAccount:   "0991268040",
		BankName:        "National Bank",
		BankAccountName: "Hepeco Digital",
		BankAccount:     "1001268040",
		BankBranch:      "Lilongwe",
	}
}

// QRPayload is a decoded payment QR string.
type QRPayload struct {
	Body      string
	Method    entities.PaymentMethod
	Account   string
	Amount    int64
	Reference string
	IssuedAt  time.Time
	Tag       string
}

func qrBody(method entities.PaymentMethod, accounts PaymentAccounts, amount int64, reference string) string {
	switch method {
	case entities.PaymentMethodMpamba:
		return fmt.Sprintf("mpamba:*%s*1*%s*%d*%s#", mpambaUSSDCode, accounts.MpambaAccount, amount, reference)
	case entities.PaymentMethodAirtel:
		return fmt.Sprintf("airtel:*%s*1*%s*%d*%s#", airtelUSSDCode, accounts.AirtelAccount, amount, reference)
	case entities.PaymentMethodBank:
		return fmt.Sprintf("bank:%s\nAccount: %s\nAcc: %s\nAmount: %d\nRef: %s",
			accounts.BankName, accounts.BankAccountName, accounts.BankAccount, amount, reference)
	default:
		return reference
	}
}

// qrTag is a short tamper-evidence tag, not a signature: anyone who knows
// the scheme can recompute it.
func qrTag(body string, issuedAtMs int64) string {
	sum := sha256.Sum256([]byte(body + "|" + strconv.FormatInt(issuedAtMs, 10)))
	var n uint64
	for _, b := range sum[:5] {
		n = n<<8 | uint64(b)
	}
	tag := strconv.FormatUint(n, 36)
	if len(tag) < qrTagLen {
		tag = strings.Repeat("0", qrTagLen-len(tag)) + tag
	}
	return tag
}

// BuildQRPayload renders the method-specific payload followed by
// |<epoch-ms>|<tag>.
func BuildQRPayload(method entities.PaymentMethod, accounts PaymentAccounts, amount int64, reference string, issuedAt time.Time) string {
	body := qrBody(method, accounts, amount, reference)
	ms := issuedAt.UnixMilli()
	return fmt.Sprintf("%s|%d|%s", body, ms, qrTag(body, ms))
}

// ParseQRPayload splits a payload into its parts without checking the tag.
func ParseQRPayload(payload string) (QRPayload, error) {
	tagSep := strings.LastIndex(payload, "|")
	if tagSep <= 0 {
		return QRPayload{}, ErrMalformedQRPayload
	}
	tsSep := strings.LastIndex(payload[:tagSep], "|")
	if tsSep <= 0 {
		return QRPayload{}, ErrMalformedQRPayload
	}

	ms, err := strconv.ParseInt(payload[tsSep+1:tagSep], 10, 64)
	if err != nil {
		return QRPayload{}, ErrMalformedQRPayload
	}

	out := QRPayload{
		Body:     payload[:tsSep],
		IssuedAt: time.UnixMilli(ms).UTC(),
		Tag:      payload[tagSep+1:],
	}
	parseQRBody(&out)
	return out, nil
}

// VerifyQRPayload parses payload and checks its integrity tag.
func VerifyQRPayload(payload string) (QRPayload, error) {
	out, err := ParseQRPayload(payload)
	if err != nil {
		return QRPayload{}, err
	}
	if qrTag(out.Body, out.IssuedAt.UnixMilli()) != out.Tag {
		return out, ErrQRPayloadTampered
	}
	return out, nil
}

func parseQRBody(p *QRPayload) {
	scheme, rest, found := strings.Cut(p.Body, ":")
	if !found {
		return
	}
	p.Method = entities.PaymentMethod(scheme)

	switch p.Method {
	case entities.PaymentMethodMpamba, entities.PaymentMethodAirtel:
		// *<ussd>*1*<account>*<amount>*<reference>#
		parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(rest, "*"), "#"), "*")
		if len(parts) != 5 {
			return
		}
		p.Account = parts[2]
		p.Amount, _ = strconv.ParseInt(parts[3], 10, 64)
		p.Reference = parts[4]
	case entities.PaymentMethodBank:
		for _, line := range strings.Split(rest, "\n") {
			key, val, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			val = strings.TrimSpace(val)
			switch key {
			case "Acc":
				p.Account = val
			case "Amount":
				p.Amount, _ = strconv.ParseInt(val, 10, 64)
			case "Ref":
				p.Reference = val
			}
		}
	}
}

// PaymentInstructions lists the steps shown to the customer for method.
func PaymentInstructions(method entities.PaymentMethod, accounts PaymentAccounts, reference string) []string {
	switch method {
	case entities.PaymentMethodMpamba:
		return []string{
			"Dial *" + mpambaUSSDCode + "#",
			`Select "Send Money"`,
			"Enter number: " + accounts.MpambaAccount,
			"Enter the amount",
			"Enter reference: " + reference,
		}
	case entities.PaymentMethodAirtel:
		return []string{
			"Dial *" + airtelUSSDCode + "#",
			`Select "Send Money"`,
			"Enter number: " + accounts.AirtelAccount,
			"Enter the amount",
			"Enter reference: " + reference,
		}
	case entities.PaymentMethodBank:
		return []string{
			"Bank: " + accounts.BankName,
			"Account: " + accounts.BankAccountName,
			"Account No: " + accounts.BankAccount,
			"Branch: " + accounts.BankBranch,
			"Reference: " + reference,
		}
	}
	return []string{}
}
