package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hepsystems/hepeco/internal/adapter/persistence/repository"
	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/infrastructure/dedupe"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"
	mock_interfaces "github.com/hepsystems/hepeco/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testPhone   = "0991234567"
	testSession = "sess-abc"
)

type lifecycleFixture struct {
	uc    *PaymentUseCase
	repo  *repository.PaymentMemoryRepository
	gw    *mock_interfaces.MockIPaymentGateway
	clock time.Time
}

func newLifecycle(t *testing.T, guard interfaces.IDuplicateGuard) *lifecycleFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &lifecycleFixture{
		repo:  repository.NewPaymentMemoryRepository(),
		gw:    mock_interfaces.NewMockIPaymentGateway(ctrl),
		clock: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	f.uc = NewPaymentUseCase(f.repo, f.gw, guard, DefaultPaymentSettings())
	f.uc.now = func() time.Time { return f.clock }
	return f
}

func (f *lifecycleFixture) generate(t *testing.T, amount int64) GenerateResult {
	t.Helper()
	res, err := f.uc.Generate(context.Background(), GenerateCommand{
		Amount:    amount,
		Phone:     testPhone,
		Method:    "mpamba",
		SessionID: testSession,
	})
	require.NoError(t, err)
	return res
}

func (f *lifecycleFixture) stored(t *testing.T, reference string) entities.Payment {
	t.Helper()
	p, err := f.repo.Get(context.Background(), reference)
	require.NoError(t, err)
	return p
}

func TestPaymentUseCase_Generate(t *testing.T) {
	f := newLifecycle(t, dedupe.NewMemoryGuard())

	res := f.generate(t, 250000)

	require.True(t, strings.HasPrefix(res.Reference, "HEC"))
	require.Len(t, res.Reference, 15)
	require.Equal(t, entities.PaymentStatusPending, res.Payment.Status)
	require.Equal(t, "265991234567", res.Payment.Phone)
	require.Equal(t, f.clock.Add(time.Hour), res.ExpiresAt)
	require.NotEmpty(t, res.Instructions)

	qr, err := VerifyQRPayload(res.QRData)
	require.NoError(t, err)
	require.Equal(t, res.Reference, qr.Reference)
	require.Equal(t, int64(250000), qr.Amount)

	stored := f.stored(t, res.Reference)
	require.Equal(t, testSession, stored.SessionID)
	require.Equal(t, entities.PaymentStatusPending, stored.Status)
}

func TestPaymentUseCase_Generate_ReferencesAreUnique(t *testing.T) {
	f := newLifecycle(t, nil)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		res := f.generate(t, 250000)
		require.False(t, seen[res.Reference], "duplicate reference %s", res.Reference)
		seen[res.Reference] = true
	}
}

func TestPaymentUseCase_Generate_RetriesReferenceCollision(t *testing.T) {
	f := newLifecycle(t, nil)
	refs := []string{"HECDUPLICATE01", "HECDUPLICATE01", "HECFRESHREF001"}
	f.uc.newReference = func() string {
		r := refs[0]
		refs = refs[1:]
		return r
	}

	first := f.generate(t, 250000)
	second := f.generate(t, 260000)
	require.Equal(t, "HECDUPLICATE01", first.Reference)
	require.Equal(t, "HECFRESHREF001", second.Reference)
	require.Equal(t, int64(250000), f.stored(t, first.Reference).Amount, "collision must not overwrite the first payment")
}

func TestPaymentUseCase_Generate_Validation(t *testing.T) {
	cases := []struct {
		name string
		cmd  GenerateCommand
		want error
	}{
		{"zero amount", GenerateCommand{Amount: 0, Phone: testPhone, Method: "mpamba", SessionID: testSession}, ErrInvalidAmount},
		{"amount over max", GenerateCommand{Amount: 10000001, Phone: testPhone, Method: "mpamba", SessionID: testSession}, ErrInvalidAmount},
		{"invalid phone", GenerateCommand{Amount: 250000, Phone: "123", Method: "mpamba", SessionID: testSession}, ErrInvalidPhone},
		{"unknown method", GenerateCommand{Amount: 250000, Phone: testPhone, Method: "paypal", SessionID: testSession}, ErrInvalidMethod},
		{"missing session", GenerateCommand{Amount: 250000, Phone: testPhone, Method: "bank", SessionID: "  "}, ErrInvalidSessionID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newLifecycle(t, dedupe.NewMemoryGuard())
			_, err := f.uc.Generate(context.Background(), tc.cmd)
			require.ErrorIs(t, err, tc.want)

			all, _ := f.repo.List(context.Background())
			require.Empty(t, all, "rejected requests must not create a payment")
		})
	}
}

func TestPaymentUseCase_Generate_DuplicateRequest(t *testing.T) {
	f := newLifecycle(t, dedupe.NewMemoryGuard())
	ctx := context.Background()
	cmd := GenerateCommand{Amount: 250000, Phone: testPhone, Method: "mpamba", SessionID: testSession}

	_, err := f.uc.Generate(ctx, cmd)
	require.NoError(t, err)

	// Same subscriber written differently still counts as the same request.
	cmd.Phone = "+265 99 123 4567"
	_, err = f.uc.Generate(ctx, cmd)
	require.ErrorIs(t, err, ErrDuplicateRequest)

	cmd.Amount = 260000
	_, err = f.uc.Generate(ctx, cmd)
	require.NoError(t, err, "a different amount is a different request")

	all, _ := f.repo.List(ctx)
	require.Len(t, all, 2)
}

func TestPaymentUseCase_Generate_GuardErrorDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard := mock_interfaces.NewMockIDuplicateGuard(ctrl)
	guard.EXPECT().Claim(gomock.Any(), "265991234567|250000", 2*time.Second).Return(false, errors.New("redis down"))

	f := newLifecycle(t, guard)
	res := f.generate(t, 250000)
	require.NotEmpty(t, res.Reference)
}

func TestPaymentUseCase_Generate_RepositoryErrors(t *testing.T) {
	t.Run("repository not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, DefaultPaymentSettings())
		_, err := uc.Generate(context.Background(), GenerateCommand{Amount: 250000, Phone: testPhone, Method: "airtel", SessionID: testSession})
		require.EqualError(t, err, "payment repository not configured")
	})

	t.Run("put fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.Payment{}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		uc := NewPaymentUseCase(repo, nil, nil, DefaultPaymentSettings())
		_, err := uc.Generate(context.Background(), GenerateCommand{Amount: 250000, Phone: testPhone, Method: "airtel", SessionID: testSession})
		require.EqualError(t, err, "db")
	})
}

func TestPaymentUseCase_Verify_UnknownReferenceLeavesNoTrace(t *testing.T) {
	f := newLifecycle(t, nil)

	_, err := f.uc.Verify(context.Background(), "HECDOESNOTEXIST", testSession)
	require.ErrorIs(t, err, ErrPaymentNotFound)

	all, _ := f.repo.List(context.Background())
	require.Empty(t, all)
}

func TestPaymentUseCase_Verify_InputValidation(t *testing.T) {
	f := newLifecycle(t, nil)

	_, err := f.uc.Verify(context.Background(), " ", testSession)
	require.ErrorIs(t, err, ErrInvalidReference)

	_, err = f.uc.Verify(context.Background(), "HEC1", "")
	require.ErrorIs(t, err, ErrInvalidSessionID)
}

func TestPaymentUseCase_Verify_SessionBinding(t *testing.T) {
	f := newLifecycle(t, nil)
	res := f.generate(t, 250000)
	f.clock = f.clock.Add(time.Minute)

	_, err := f.uc.Verify(context.Background(), res.Reference, "someone-else")
	require.ErrorIs(t, err, ErrSessionMismatch)

	stored := f.stored(t, res.Reference)
	require.Equal(t, entities.PaymentStatusPending, stored.Status)
	require.Zero(t, stored.VerifyAttempts)
}

func TestPaymentUseCase_Verify_SucceedsAndIsIdempotent(t *testing.T) {
	f := newLifecycle(t, nil)
	res := f.generate(t, 250000)
	f.clock = f.clock.Add(time.Minute)

	f.gw.EXPECT().CheckStatus(gomock.Any(), res.Reference).Return(entities.GatewayStatusVerified, nil).Times(1)

	first, err := f.uc.Verify(context.Background(), res.Reference, testSession)
	require.NoError(t, err)
	require.True(t, first.Success)
	require.Equal(t, MessagePaymentVerified, first.Message)
	require.Equal(t, entities.PaymentStatusVerified, first.Payment.Status)
	require.NotNil(t, first.Invoice)
	require.Equal(t, "INV-"+res.Reference, first.Invoice.InvoiceNumber)
	require.Equal(t, int64(250000), first.Invoice.Total)

	f.clock = f.clock.Add(3 * time.Hour)
	second, err := f.uc.Verify(context.Background(), res.Reference, testSession)
	require.NoError(t, err, "a verified payment stays verified after expiry")
	require.True(t, second.Success)
	require.Equal(t, *first.Invoice, *second.Invoice)
	require.True(t, first.Payment.VerifiedAt.Equal(*second.Payment.VerifiedAt))
}

func TestPaymentUseCase_Verify_Fraud(t *testing.T) {
	f := newLifecycle(t, nil)
	res := f.generate(t, 600000)
	f.clock = f.clock.Add(5 * time.Second)

	out, err := f.uc.Verify(context.Background(), res.Reference, testSession)
	require.ErrorIs(t, err, ErrFraudSuspected)

	var fraudErr *FraudSuspectedError
	require.True(t, errors.As(err, &fraudErr))
	require.Equal(t, []string{FraudReasonRoundLargeAmount, FraudReasonTooQuick}, fraudErr.Reasons)
	require.Equal(t, entities.PaymentStatusFraudSuspected, out.Payment.Status)

	stored := f.stored(t, res.Reference)
	require.Equal(t, entities.PaymentStatusFraudSuspected, stored.Status)
	require.Equal(t, fraudErr.Reasons, stored.FraudReasons)

	// Terminal: later calls report the same reasons and never reach the gateway.
	f.clock = f.clock.Add(time.Minute)
	_, err = f.uc.Verify(context.Background(), res.Reference, testSession)
	require.True(t, errors.As(err, &fraudErr))
	require.Equal(t, []string{FraudReasonRoundLargeAmount, FraudReasonTooQuick}, fraudErr.Reasons)
}

func TestPaymentUseCase_Verify_MultipleAttempts(t *testing.T) {
	f := newLifecycle(t, nil)
	var last GenerateResult
	for _, amount := range []int64{250000, 260000, 270000, 280000} {
		last = f.generate(t, amount)
	}
	f.clock = f.clock.Add(time.Minute)

	_, err := f.uc.Verify(context.Background(), last.Reference, testSession)
	var fraudErr *FraudSuspectedError
	require.True(t, errors.As(err, &fraudErr))
	require.Equal(t, []string{FraudReasonMultipleAttempts}, fraudErr.Reasons)
}

func TestPaymentUseCase_Verify_GatewayOutcomes(t *testing.T) {
	t.Run("pending keeps status", func(t *testing.T) {
		f := newLifecycle(t, nil)
		res := f.generate(t, 250000)
		f.clock = f.clock.Add(time.Minute)
		f.gw.EXPECT().CheckStatus(gomock.Any(), res.Reference).Return(entities.GatewayStatusPending, nil)

		out, err := f.uc.Verify(context.Background(), res.Reference, testSession)
		require.NoError(t, err)
		require.False(t, out.Success)
		require.Nil(t, out.Invoice)
		require.Equal(t, MessageNotYetReceived, out.Message)

		stored := f.stored(t, res.Reference)
		require.Equal(t, entities.PaymentStatusPending, stored.Status)
		require.Equal(t, 1, stored.VerifyAttempts)
	})

	t.Run("gateway error keeps status", func(t *testing.T) {
		f := newLifecycle(t, nil)
		res := f.generate(t, 250000)
		f.clock = f.clock.Add(time.Minute)
		f.gw.EXPECT().CheckStatus(gomock.Any(), res.Reference).Return(entities.GatewayStatusPending, errors.New("timeout"))

		out, err := f.uc.Verify(context.Background(), res.Reference, testSession)
		require.NoError(t, err)
		require.False(t, out.Success)
		require.Equal(t, entities.PaymentStatusPending, f.stored(t, res.Reference).Status)
	})

	t.Run("failed can be retried", func(t *testing.T) {
		f := newLifecycle(t, nil)
		res := f.generate(t, 250000)
		f.clock = f.clock.Add(time.Minute)
		gomock.InOrder(
			f.gw.EXPECT().CheckStatus(gomock.Any(), res.Reference).Return(entities.GatewayStatusFailed, nil),
			f.gw.EXPECT().CheckStatus(gomock.Any(), res.Reference).Return(entities.GatewayStatusVerified, nil),
		)

		out, err := f.uc.Verify(context.Background(), res.Reference, testSession)
		require.NoError(t, err)
		require.False(t, out.Success)
		require.Equal(t, entities.PaymentStatusFailed, f.stored(t, res.Reference).Status)

		out, err = f.uc.Verify(context.Background(), res.Reference, testSession)
		require.NoError(t, err)
		require.True(t, out.Success)
		require.Equal(t, 2, out.Payment.VerifyAttempts)
	})

	t.Run("gateway not configured", func(t *testing.T) {
		repo := repository.NewPaymentMemoryRepository()
		uc := NewPaymentUseCase(repo, nil, nil, DefaultPaymentSettings())
		start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return start }
		res, err := uc.Generate(context.Background(), GenerateCommand{Amount: 250000, Phone: testPhone, Method: "bank", SessionID: testSession})
		require.NoError(t, err)

		uc.now = func() time.Time { return start.Add(time.Minute) }
		_, err = uc.Verify(context.Background(), res.Reference, testSession)
		require.EqualError(t, err, "payment gateway not configured")
	})
}

func TestPaymentUseCase_Verify_Expired(t *testing.T) {
	f := newLifecycle(t, nil)
	res := f.generate(t, 250000)
	f.clock = f.clock.Add(time.Hour + time.Second)

	_, err := f.uc.Verify(context.Background(), res.Reference, testSession)
	require.ErrorIs(t, err, ErrPaymentExpired)
	require.Equal(t, entities.PaymentStatusPending, f.stored(t, res.Reference).Status)
}

func TestPaymentUseCase_Verify_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "HEC1").Return(entities.Payment{}, errors.New("db"))

	uc := NewPaymentUseCase(repo, nil, nil, DefaultPaymentSettings())
	_, err := uc.Verify(context.Background(), "HEC1", testSession)
	require.EqualError(t, err, "db")
}

func TestPaymentUseCase_Verify_ConcurrentCallsHitGatewayOnce(t *testing.T) {
	f := newLifecycle(t, nil)
	res := f.generate(t, 250000)
	f.clock = f.clock.Add(time.Minute)
	f.gw.EXPECT().CheckStatus(gomock.Any(), res.Reference).Return(entities.GatewayStatusVerified, nil).Times(1)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := f.uc.Verify(context.Background(), res.Reference, testSession)
			if err == nil && !out.Success {
				err = errors.New("expected success")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestPaymentUseCase_GetByReferenceAndList(t *testing.T) {
	f := newLifecycle(t, nil)
	older := f.generate(t, 250000)
	f.clock = f.clock.Add(time.Minute)
	newer := f.generate(t, 260000)

	got, err := f.uc.GetByReference(context.Background(), " "+older.Reference+" ")
	require.NoError(t, err)
	require.Equal(t, older.Reference, got.Reference)

	_, err = f.uc.GetByReference(context.Background(), "HECNOPE")
	require.ErrorIs(t, err, ErrPaymentNotFound)

	_, err = f.uc.GetByReference(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidReference)

	list, err := f.uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, newer.Reference, list[0].Reference)
}

func TestPaymentUseCase_ApplyProviderNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("successful notification verifies", func(t *testing.T) {
		f := newLifecycle(t, nil)
		res := f.generate(t, 250000)
		f.clock = f.clock.Add(10 * time.Second)

		p, err := f.uc.ApplyProviderNotification(ctx, ProviderNotification{
			Reference:     res.Reference,
			TransactionID: "MP123",
			Amount:        250000,
			Status:        "successful",
		})
		require.NoError(t, err)
		require.Equal(t, entities.PaymentStatusVerified, p.Status)
		require.Equal(t, "MP123", p.TransactionID)
		require.NotNil(t, p.VerifiedAt)

		// Verify now answers from the stored state without the gateway.
		out, err := f.uc.Verify(ctx, res.Reference, testSession)
		require.NoError(t, err)
		require.True(t, out.Success)
	})

	t.Run("terminal payments are not overwritten", func(t *testing.T) {
		f := newLifecycle(t, nil)
		res := f.generate(t, 250000)
		_, err := f.uc.ApplyProviderNotification(ctx, ProviderNotification{Reference: res.Reference, Status: "successful"})
		require.NoError(t, err)

		p, err := f.uc.ApplyProviderNotification(ctx, ProviderNotification{Reference: res.Reference, Status: "failed"})
		require.NoError(t, err)
		require.Equal(t, entities.PaymentStatusVerified, p.Status)
	})

	t.Run("unsuccessful notification fails the payment", func(t *testing.T) {
		f := newLifecycle(t, nil)
		res := f.generate(t, 250000)
		p, err := f.uc.ApplyProviderNotification(ctx, ProviderNotification{Reference: res.Reference, Status: "cancelled"})
		require.NoError(t, err)
		require.Equal(t, entities.PaymentStatusFailed, p.Status)
	})

	t.Run("rejections", func(t *testing.T) {
		f := newLifecycle(t, nil)
		res := f.generate(t, 250000)

		_, err := f.uc.ApplyProviderNotification(ctx, ProviderNotification{Reference: res.Reference, Amount: 1000, Status: "successful"})
		require.ErrorIs(t, err, ErrInvalidNotification)
		require.Equal(t, entities.PaymentStatusPending, f.stored(t, res.Reference).Status)

		_, err = f.uc.ApplyProviderNotification(ctx, ProviderNotification{Reference: "HECUNKNOWN", Status: "successful"})
		require.ErrorIs(t, err, ErrPaymentNotFound)

		_, err = f.uc.ApplyProviderNotification(ctx, ProviderNotification{Status: "successful"})
		require.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestFraudSuspectedError(t *testing.T) {
	err := error(&FraudSuspectedError{Reference: "HEC1", Reasons: []string{"too_quick"}})
	require.ErrorIs(t, err, ErrFraudSuspected)
	require.Contains(t, err.Error(), "too_quick")
}

func TestKeyedMutex_ReleasesEntries(t *testing.T) {
	k := newKeyedMutex()
	unlock := k.Lock("a")
	unlockB := k.Lock("b")
	unlockB()
	unlock()
	require.Empty(t, k.locks)
}
