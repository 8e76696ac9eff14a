package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrInvalidMethod       = errors.New("invalid payment method")
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrInvalidReference    = errors.New("invalid reference")
	ErrInvalidNotification = errors.New("invalid provider notification")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrSessionMismatch     = errors.New("session mismatch")
	ErrDuplicateRequest    = errors.New("duplicate payment request")
	ErrFraudSuspected      = errors.New("payment suspected of fraud")
	ErrPaymentExpired      = errors.New("payment reference expired")
)

const (
	MessagePaymentVerified = "Payment verified successfully"
	MessageNotYetReceived  = "Payment not yet received. Please try again in a few minutes."
	MessageFraudSuspected  = "Security check failed. Please contact support."

	providerStatusSuccessful = "successful"
	maxReferenceAttempts     = 5
)

// FraudSuspectedError carries every heuristic that fired for a payment.
// It matches ErrFraudSuspected with errors.Is.
type FraudSuspectedError struct {
	Reference string
	Reasons   []string
}

func (e *FraudSuspectedError) Error() string {
	return fmt.Sprintf("%s: reference=%s reasons=%s", ErrFraudSuspected, e.Reference, strings.Join(e.Reasons, ","))
}

func (e *FraudSuspectedError) Is(target error) bool {
	return target == ErrFraudSuspected
}

// PaymentSettings are the tunable limits of the payment lifecycle.
type PaymentSettings struct {
	MaxAmount       int64
	ReferenceTTL    time.Duration
	DuplicateWindow time.Duration
	Fraud           FraudRules
	Accounts        PaymentAccounts
}

func DefaultPaymentSettings() PaymentSettings {
	return PaymentSettings{
		MaxAmount:       10000000,
		ReferenceTTL:    time.Hour,
		DuplicateWindow: 2 * time.Second,
		Fraud:           DefaultFraudRules(),
		Accounts:        DefaultPaymentAccounts(),
	}
}

type GenerateCommand struct {
	Amount    int64
	Phone     string
	Method    string
	SessionID string
}

type GenerateResult struct {
	Reference    string
	QRData       string
	Payment      entities.Payment
	Instructions []string
	ExpiresAt    time.Time
}

// VerificationOutcome is the result of a verify call that reached a
// decision. Success=false with a nil error means "not received yet, retry".
type VerificationOutcome struct {
	Success bool
	Payment entities.Payment
	Invoice *entities.Invoice
	Message string
}

// ProviderNotification is a push from a mobile-money provider about a
// reference.
type ProviderNotification struct {
	Reference     string
	TransactionID string
	Amount        int64
	Phone         string
	Status        string
}

// IPaymentUseCase owns the payment reference lifecycle:
//   - Generate  => new pending reference + QR payload
//   - Verify    => pending/failed -> verified | failed | fraud_suspected
//   - ApplyProviderNotification => provider push for a reference
type IPaymentUseCase interface {
	Generate(ctx context.Context, cmd GenerateCommand) (GenerateResult, error)
	Verify(ctx context.Context, reference, sessionID string) (VerificationOutcome, error)
	GetByReference(ctx context.Context, reference string) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	ApplyProviderNotification(ctx context.Context, n ProviderNotification) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	gateway  interfaces.IPaymentGateway
	guard    interfaces.IDuplicateGuard
	settings PaymentSettings
	locks    *keyedMutex

	now          func() time.Time
	newReference func() string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway, guard interfaces.IDuplicateGuard, settings PaymentSettings) *PaymentUseCase {
	return &PaymentUseCase{
		repo:         repo,
		gateway:      gateway,
		guard:        guard,
		settings:     settings,
		locks:        newKeyedMutex(),
		now:          time.Now,
		newReference: NewPaymentReference,
	}
}

func (u *PaymentUseCase) Generate(ctx context.Context, cmd GenerateCommand) (GenerateResult, error) {
	logger := log.WithFields(log.Fields{
		"amount": cmd.Amount,
		"method": cmd.Method,
		"phone":  MaskPhone(digitsOnly(cmd.Phone)),
	})
	logger.Info("[payment][usecase] generate start")

	if cmd.Amount <= 0 || cmd.Amount > u.settings.MaxAmount {
		logger.Warn("[payment][usecase] amount out of range")
		return GenerateResult{}, ErrInvalidAmount
	}
	phone, ok := NormalizePhone(cmd.Phone)
	if !ok {
		logger.Warn("[payment][usecase] invalid phone")
		return GenerateResult{}, ErrInvalidPhone
	}
	method := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(cmd.Method)))
	if !method.Valid() {
		logger.Warn("[payment][usecase] invalid method")
		return GenerateResult{}, ErrInvalidMethod
	}
	sessionID := strings.TrimSpace(cmd.SessionID)
	if sessionID == "" {
		logger.Warn("[payment][usecase] missing session id")
		return GenerateResult{}, ErrInvalidSessionID
	}
	if u.repo == nil {
		return GenerateResult{}, errors.New("payment repository not configured")
	}

	if u.guard != nil {
		fresh, err := u.guard.Claim(ctx, duplicateKey(phone, cmd.Amount), u.settings.DuplicateWindow)
		if err != nil {
			// The guard only stops double-clicks; an unavailable guard must not block payments.
			logger.WithError(err).Warn("[payment][usecase] duplicate guard unavailable")
		} else if !fresh {
			logger.Warn("[payment][usecase] duplicate request rejected")
			return GenerateResult{}, ErrDuplicateRequest
		}
	}

	reference, err := u.allocateReference(ctx)
	if err != nil {
		logger.WithError(err).Error("[payment][usecase] reference allocation failed")
		return GenerateResult{}, err
	}

	now := u.now().UTC()
	p := entities.Payment{
		Reference: reference,
		Amount:    cmd.Amount,
		Phone:     phone,
		Method:    method,
		Status:    entities.PaymentStatusPending,
		SessionID: sessionID,
		CreatedAt: now,
		ExpiresAt: now.Add(u.settings.ReferenceTTL),
	}
	if err := u.repo.Put(ctx, p); err != nil {
		logger.WithError(err).Error("[payment][usecase] repository put failed")
		return GenerateResult{}, err
	}
	logger.WithField("reference", reference).Info("[payment][usecase] generate success")

	return GenerateResult{
		Reference:    reference,
		QRData:       BuildQRPayload(method, u.settings.Accounts, p.Amount, reference, now),
		Payment:      p,
		Instructions: PaymentInstructions(method, u.settings.Accounts, reference),
		ExpiresAt:    p.ExpiresAt,
	}, nil
}

func (u *PaymentUseCase) Verify(ctx context.Context, reference, sessionID string) (VerificationOutcome, error) {
	reference = strings.TrimSpace(reference)
	sessionID = strings.TrimSpace(sessionID)
	logger := log.WithField("reference", reference)
	logger.Info("[payment][usecase] verify start")

	if reference == "" {
		return VerificationOutcome{}, ErrInvalidReference
	}
	if sessionID == "" {
		return VerificationOutcome{}, ErrInvalidSessionID
	}

	unlock := u.locks.Lock(reference)
	defer unlock()

	p, err := u.repo.Get(ctx, reference)
	if err != nil {
		logger.WithError(err).Error("[payment][usecase] repository get failed")
		return VerificationOutcome{}, err
	}
	if p.Reference == "" {
		logger.Warn("[payment][usecase] payment not found")
		return VerificationOutcome{}, ErrPaymentNotFound
	}
	if p.SessionID != sessionID {
		logger.Warn("[payment][usecase] session mismatch")
		return VerificationOutcome{}, ErrSessionMismatch
	}

	switch p.Status {
	case entities.PaymentStatusVerified:
		logger.Info("[payment][usecase] already verified")
		return successOutcome(p)
	case entities.PaymentStatusFraudSuspected:
		return VerificationOutcome{Payment: p, Message: MessageFraudSuspected},
			&FraudSuspectedError{Reference: p.Reference, Reasons: p.FraudReasons}
	}

	now := u.now().UTC()
	if !p.ExpiresAt.IsZero() && now.After(p.ExpiresAt) {
		logger.WithField("expires_at", p.ExpiresAt).Warn("[payment][usecase] reference expired")
		return VerificationOutcome{}, ErrPaymentExpired
	}

	history, err := u.repo.ListByPhone(ctx, p.Phone)
	if err != nil {
		logger.WithError(err).Error("[payment][usecase] history lookup failed")
		return VerificationOutcome{}, err
	}
	if reasons := u.settings.Fraud.Evaluate(p, history, now); len(reasons) > 0 {
		p.Status = entities.PaymentStatusFraudSuspected
		p.FraudReasons = reasons
		if err := u.repo.Put(ctx, p); err != nil {
			logger.WithError(err).Error("[payment][usecase] repository put failed")
			return VerificationOutcome{}, err
		}
		logger.WithField("reasons", reasons).Warn("[payment][usecase] fraud suspected")
		return VerificationOutcome{Payment: p, Message: MessageFraudSuspected},
			&FraudSuspectedError{Reference: p.Reference, Reasons: reasons}
	}

	if u.gateway == nil {
		return VerificationOutcome{}, errors.New("payment gateway not configured")
	}

	p.VerifyAttempts++
	status, err := u.gateway.CheckStatus(ctx, reference)
	if err != nil {
		logger.WithError(err).Warn("[payment][usecase] gateway check failed; keeping status")
		status = entities.GatewayStatusPending
	}

	switch status {
	case entities.GatewayStatusVerified:
		p.Status = entities.PaymentStatusVerified
		p.VerifiedAt = &now
	case entities.GatewayStatusFailed:
		p.Status = entities.PaymentStatusFailed
	}

	if err := u.repo.Put(ctx, p); err != nil {
		logger.WithError(err).Error("[payment][usecase] repository put failed")
		return VerificationOutcome{}, err
	}
	logger.WithFields(log.Fields{"status": p.Status, "attempts": p.VerifyAttempts}).Info("[payment][usecase] verify done")

	if p.Status == entities.PaymentStatusVerified {
		return successOutcome(p)
	}
	return VerificationOutcome{Success: false, Payment: p, Message: MessageNotYetReceived}, nil
}

func (u *PaymentUseCase) GetByReference(ctx context.Context, reference string) (entities.Payment, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.Payment{}, ErrInvalidReference
	}

	p, err := u.repo.Get(ctx, reference)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Reference == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// List returns every payment, newest first.
func (u *PaymentUseCase) List(ctx context.Context) ([]entities.Payment, error) {
	payments, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
	return payments, nil
}

// ApplyProviderNotification records a provider push. A successful push
// verifies the payment, anything else marks it failed. Terminal payments are
// returned unchanged.
func (u *PaymentUseCase) ApplyProviderNotification(ctx context.Context, n ProviderNotification) (entities.Payment, error) {
	reference := strings.TrimSpace(n.Reference)
	logger := log.WithFields(log.Fields{
		"reference":      reference,
		"transaction_id": n.TransactionID,
		"provider_state": n.Status,
	})
	logger.Info("[payment][usecase] provider notification start")

	if reference == "" {
		return entities.Payment{}, ErrInvalidReference
	}
	if n.Amount < 0 {
		return entities.Payment{}, ErrInvalidNotification
	}

	unlock := u.locks.Lock(reference)
	defer unlock()

	p, err := u.repo.Get(ctx, reference)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Reference == "" {
		logger.Warn("[payment][usecase] notification for unknown reference")
		return entities.Payment{}, ErrPaymentNotFound
	}
	if n.Amount > 0 && n.Amount != p.Amount {
		logger.WithFields(log.Fields{"expected": p.Amount, "got": n.Amount}).Warn("[payment][usecase] notification amount mismatch")
		return entities.Payment{}, ErrInvalidNotification
	}
	if p.Status.IsTerminal() {
		logger.WithField("status", p.Status).Info("[payment][usecase] notification ignored for terminal payment")
		return p, nil
	}

	p.TransactionID = strings.TrimSpace(n.TransactionID)
	if strings.EqualFold(strings.TrimSpace(n.Status), providerStatusSuccessful) {
		now := u.now().UTC()
		p.Status = entities.PaymentStatusVerified
		p.VerifiedAt = &now
	} else {
		p.Status = entities.PaymentStatusFailed
	}

	if err := u.repo.Put(ctx, p); err != nil {
		return entities.Payment{}, err
	}
	logger.WithField("status", p.Status).Info("[payment][usecase] provider notification applied")
	return p, nil
}

func (u *PaymentUseCase) allocateReference(ctx context.Context) (string, error) {
	for i := 0; i < maxReferenceAttempts; i++ {
		ref := u.newReference()
		existing, err := u.repo.Get(ctx, ref)
		if err != nil {
			return "", err
		}
		if existing.Reference == "" {
			return ref, nil
		}
		log.WithField("reference", ref).Warn("[payment][usecase] reference collision; retrying")
	}
	return "", errors.New("could not allocate a unique payment reference")
}

func successOutcome(p entities.Payment) (VerificationOutcome, error) {
	inv, err := NewInvoice(p)
	if err != nil {
		return VerificationOutcome{}, err
	}
	return VerificationOutcome{Success: true, Payment: p, Invoice: &inv, Message: MessagePaymentVerified}, nil
}

func duplicateKey(phone string, amount int64) string {
	return phone + "|" + strconv.FormatInt(amount, 10)
}
