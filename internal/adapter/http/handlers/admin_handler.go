package handlers

import (
	"net/http"

	"github.com/hepsystems/hepeco/internal/adapter/http/dto/response"
	"github.com/hepsystems/hepeco/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AdminHandler lists stored payments and quote leads for operators.
// Routes using it sit behind middleware.AdminAuth.
type AdminHandler struct {
	payments usecase.IPaymentUseCase
	quotes   usecase.IQuoteUseCase
}

func NewAdminHandler(payments usecase.IPaymentUseCase, quotes usecase.IQuoteUseCase) *AdminHandler {
	return &AdminHandler{payments: payments, quotes: quotes}
}

// ListPayments godoc
// @Summary   List payments with status counts
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.AdminPaymentsResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /admin/payments [get]
func (h *AdminHandler) ListPayments(c *gin.Context) {
	ps, err := h.payments.List(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	log.WithField("count", len(ps)).Info("[admin][handler] list payments")
	c.JSON(http.StatusOK, response.FromAdminPayments(ps))
}

// ListQuotes godoc
// @Summary   List quote leads
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.AdminQuotesResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /admin/quotes [get]
func (h *AdminHandler) ListQuotes(c *gin.Context) {
	qs, err := h.quotes.List(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	log.WithField("count", len(qs)).Info("[admin][handler] list quotes")
	c.JSON(http.StatusOK, response.FromAdminQuotes(qs))
}
