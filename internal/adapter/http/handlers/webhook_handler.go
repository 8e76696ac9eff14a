package handlers

import (
	"net/http"

	"github.com/hepsystems/hepeco/internal/adapter/http/dto/request"
	"github.com/hepsystems/hepeco/internal/adapter/http/dto/response"
	"github.com/hepsystems/hepeco/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// WebhookHandler receives mobile-money provider pushes.
type WebhookHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewWebhookHandler(uc usecase.IPaymentUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// MobileMoney godoc
// @Summary  Mobile-money provider notification
// @Tags     webhooks
// @Accept   json
// @Produce  json
// @Param    X-Webhook-Secret  header    string                             true  "shared secret"
// @Param    body              body      request.MobileMoneyWebhookRequest  true  "notification"
// @Success  200               {object}  response.WebhookResponse
// @Failure  400               {object}  pkg.HTTPError
// @Failure  404               {object}  pkg.HTTPError
// @Router   /webhook/mobile-money [post]
func (h *WebhookHandler) MobileMoney(c *gin.Context) {
	var req request.MobileMoneyWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("[webhook][handler] invalid body")
		writeError(c, invalidRequest())
		return
	}
	log.WithFields(log.Fields{"reference": req.Reference, "status": req.Status, "transaction_id": req.TransactionID}).
		Info("[webhook][handler] notification received")

	p, err := h.usecase.ApplyProviderNotification(c.Request.Context(), req.ToNotification())
	if err != nil {
		log.WithError(err).WithField("reference", req.Reference).Warn("[webhook][handler] notification rejected")
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.WebhookResponse{Success: true, Reference: p.Reference, Status: string(p.Status)})
}
