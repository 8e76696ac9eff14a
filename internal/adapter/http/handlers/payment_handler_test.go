package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hepsystems/hepeco/internal/adapter/http/handlers/mocks"
	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/payment/generate", h.Generate)
	r.POST("/api/payment/verify", h.Verify)
	r.GET("/api/payment/:reference", h.GetByReference)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestPaymentHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		w := postJSON(r, "/api/payment/generate", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "INVALID_REQUEST" || body["success"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(usecase.GenerateResult{}, usecase.ErrInvalidPhone)

		w := postJSON(r, "/api/payment/generate", `{"amount":250000,"phone":"12345","method":"mpamba","sessionId":"s1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "INVALID_PHONE" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(usecase.GenerateResult{}, usecase.ErrDuplicateRequest)

		w := postJSON(r, "/api/payment/generate", `{"amount":250000,"phone":"0991234567","method":"mpamba","sessionId":"s1"}`)
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		expires := time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC)
		uc.EXPECT().Generate(gomock.Any(), usecase.GenerateCommand{Amount: 250000, Phone: "0991234567", Method: "mpamba", SessionID: "s1"}).
			Return(usecase.GenerateResult{
				Reference:    "HEC0123456789AB",
				QRData:       "mpamba:*444*1*0888000000*250000*HEC0123456789AB#|1735732800000|abcd1234",
				Payment:      entities.Payment{Reference: "HEC0123456789AB", SessionID: "s1", Status: entities.PaymentStatusPending, ExpiresAt: expires},
				Instructions: []string{"Dial *444#"},
				ExpiresAt:    expires,
			}, nil)

		w := postJSON(r, "/api/payment/generate", `{"amount":250000,"phone":"0991234567","method":"mpamba","sessionId":"s1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "sessionId") {
			t.Fatalf("response must not echo the session id: %s", w.Body.String())
		}
		body := decodeBody(t, w)
		if body["reference"] != "HEC0123456789AB" || body["qrData"] == "" || body["expiresAt"] == nil {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestPaymentHandler_Verify(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("verified with invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().Verify(gomock.Any(), "HEC1", "s1").Return(usecase.VerificationOutcome{
			Success: true,
			Payment: entities.Payment{Reference: "HEC1", Status: entities.PaymentStatusVerified, VerifiedAt: &now},
			Invoice: &entities.Invoice{InvoiceNumber: "INV-HEC1"},
			Message: usecase.MessagePaymentVerified,
		}, nil)

		w := postJSON(r, "/api/payment/verify", `{"reference":"HEC1","sessionId":"s1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != true || body["invoice"] == nil {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not yet received is a soft failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Verify(gomock.Any(), "HEC1", "s1").Return(usecase.VerificationOutcome{
			Payment: entities.Payment{Reference: "HEC1", Status: entities.PaymentStatusPending},
			Message: usecase.MessageNotYetReceived,
		}, nil)

		w := postJSON(r, "/api/payment/verify", `{"reference":"HEC1","sessionId":"s1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != false || body["message"] != usecase.MessageNotYetReceived {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, ok := body["invoice"]; ok {
			t.Fatalf("pending verification must not carry an invoice")
		}
	})

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrPaymentNotFound, http.StatusNotFound, "PAYMENT_NOT_FOUND"},
		{usecase.ErrSessionMismatch, http.StatusForbidden, "SESSION_MISMATCH"},
		{&usecase.FraudSuspectedError{Reference: "HEC1", Reasons: []string{"too_quick"}}, http.StatusForbidden, "FRAUD_SUSPECTED"},
		{usecase.ErrPaymentExpired, http.StatusGone, "PAYMENT_EXPIRED"},
		{errors.New("dynamo down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			r := newPaymentRouter(NewPaymentHandler(uc))

			uc.EXPECT().Verify(gomock.Any(), "HEC1", "s1").Return(usecase.VerificationOutcome{}, tc.err)

			w := postJSON(r, "/api/payment/verify", `{"reference":"HEC1","sessionId":"s1"}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			body := decodeBody(t, w)
			if body["error"] != tc.code {
				t.Fatalf("expected %s, got %v", tc.code, body["error"])
			}
			if strings.Contains(fmt.Sprint(body["message"]), "dynamo") {
				t.Fatalf("internal detail leaked: %v", body)
			}
		})
	}
}

func TestPaymentHandler_GetByReference(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetByReference(gomock.Any(), "HECMISSING").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payment/HECMISSING", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetByReference(gomock.Any(), "HEC1").Return(entities.Payment{Reference: "HEC1", SessionID: "s1", Status: entities.PaymentStatusPending}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payment/HEC1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		payment, _ := decodeBody(t, w)["payment"].(map[string]any)
		if payment["reference"] != "HEC1" || payment["status"] != "pending" {
			t.Fatalf("unexpected payment: %v", payment)
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidAmount, http.StatusBadRequest},
		{usecase.ErrInvalidPhone, http.StatusBadRequest},
		{usecase.ErrInvalidMethod, http.StatusBadRequest},
		{usecase.ErrInvalidSessionID, http.StatusBadRequest},
		{usecase.ErrInvalidReference, http.StatusBadRequest},
		{usecase.ErrInvalidNotification, http.StatusBadRequest},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{usecase.ErrSessionMismatch, http.StatusForbidden},
		{usecase.ErrDuplicateRequest, http.StatusTooManyRequests},
		{usecase.ErrFraudSuspected, http.StatusForbidden},
		{usecase.ErrPaymentExpired, http.StatusGone},
		{fmt.Errorf("wrapped: %w", usecase.ErrPaymentNotFound), http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
