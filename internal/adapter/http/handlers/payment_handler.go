package handlers

import (
	"errors"
	"net/http"

	"github.com/hepsystems/hepeco/internal/adapter/http/dto/request"
	"github.com/hepsystems/hepeco/internal/adapter/http/dto/response"
	"github.com/hepsystems/hepeco/internal/usecase"
	"github.com/hepsystems/hepeco/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// PaymentHandler serves the payment-reference lifecycle.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Generate godoc
// @Summary      Generate a payment reference
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.GeneratePaymentRequest  true  "payment request"
// @Success      200   {object}  response.GeneratePaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      429   {object}  pkg.HTTPError
// @Router       /payment/generate [post]
func (h *PaymentHandler) Generate(c *gin.Context) {
	var req request.GeneratePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("[payment][handler] generate invalid body")
		writeError(c, invalidRequest())
		return
	}
	log.WithFields(log.Fields{"amount": req.Amount, "method": req.Method}).
		Info("[payment][handler] generate start")

	res, err := h.usecase.Generate(c.Request.Context(), req.ToCommand())
	if err != nil {
		log.WithError(err).Warn("[payment][handler] generate failed")
		writeError(c, mapPaymentError(err))
		return
	}
	log.WithFields(log.Fields{"reference": res.Reference, "expires_at": res.ExpiresAt}).
		Info("[payment][handler] generate success")

	c.JSON(http.StatusOK, response.FromGenerateResult(res))
}

// Verify godoc
// @Summary      Verify a payment reference
// @Description  A payment that has not arrived yet answers 200 with success=false.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.VerifyPaymentRequest  true  "verification request"
// @Success      200   {object}  response.VerifyPaymentResponse
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      410   {object}  pkg.HTTPError
// @Router       /payment/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("[payment][handler] verify invalid body")
		writeError(c, invalidRequest())
		return
	}
	log.WithField("reference", req.Reference).Info("[payment][handler] verify start")

	out, err := h.usecase.Verify(c.Request.Context(), req.Reference, req.SessionID)
	if err != nil {
		log.WithError(err).WithField("reference", req.Reference).Warn("[payment][handler] verify failed")
		writeError(c, mapPaymentError(err))
		return
	}
	log.WithFields(log.Fields{"reference": out.Payment.Reference, "status": out.Payment.Status, "success": out.Success}).
		Info("[payment][handler] verify done")

	c.JSON(http.StatusOK, response.FromVerificationOutcome(out))
}

// GetByReference godoc
// @Summary      Get a payment by reference
// @Tags         payments
// @Produce      json
// @Param        reference  path      string  true  "payment reference"
// @Success      200        {object}  response.GetPaymentResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /payment/{reference} [get]
func (h *PaymentHandler) GetByReference(c *gin.Context) {
	reference := c.Param("reference")

	p, err := h.usecase.GetByReference(c.Request.Context(), reference)
	if err != nil {
		log.WithError(err).WithField("reference", reference).Warn("[payment][handler] get failed")
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.GetPaymentResponse{Success: true, Payment: response.FromPayment(p)})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Invalid Malawian phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMethod):
		return pkg.NewDomainErrorSimple("INVALID_METHOD", "Payment method must be mpamba, airtel or bank", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION", "Session id is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReference):
		return pkg.NewDomainErrorSimple("INVALID_REFERENCE", "Payment reference is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidNotification):
		return pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Notification does not match the payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionMismatch):
		return pkg.NewDomainErrorSimple("SESSION_MISMATCH", "Payment belongs to another session", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDuplicateRequest):
		return pkg.NewDomainErrorSimple("DUPLICATE_REQUEST", "Duplicate request. Please wait a moment and try again.", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrFraudSuspected):
		return pkg.NewDomainErrorSimple("FRAUD_SUSPECTED", usecase.MessageFraudSuspected, http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentExpired):
		return pkg.NewDomainErrorSimple("PAYMENT_EXPIRED", "Payment reference has expired. Please generate a new one.", http.StatusGone)
	default:
		return internalError(err)
	}
}

func invalidRequest() *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.WithError(appErr).WithField("path", c.FullPath()).Error("[http][handler] internal error")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
