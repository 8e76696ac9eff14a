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

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Calculate godoc
// @Summary  Price a service for a timeline
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body  body      request.CalculateQuoteRequest  true  "quote request"
// @Success  200   {object}  response.CalculateQuoteResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /quote/calculate [post]
func (h *QuoteHandler) Calculate(c *gin.Context) {
	var req request.CalculateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("[quote][handler] calculate invalid body")
		writeError(c, pkg.NewDomainErrorSimple("INVALID_QUOTE", "Service is required", http.StatusBadRequest))
		return
	}

	q := h.usecase.Calculate(req.Service, req.ResolveTimeline())
	log.WithFields(log.Fields{"service": q.Service, "timeline_days": q.TimelineDays, "total": q.Total}).
		Debug("[quote][handler] calculated")

	c.JSON(http.StatusOK, response.CalculateQuoteResponse{Success: true, Quote: response.FromQuote(q)})
}

// Save godoc
// @Summary  Store a quote request
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body  body      request.SaveQuoteRequest  true  "quote lead"
// @Success  200   {object}  response.SaveQuoteResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /quote/save [post]
func (h *QuoteHandler) Save(c *gin.Context) {
	var req request.SaveQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("[quote][handler] save invalid body")
		writeError(c, invalidRequest())
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	lead, err := h.usecase.Save(c.Request.Context(), cmd)
	if err != nil {
		log.WithError(err).Warn("[quote][handler] save failed")
		writeError(c, mapQuoteError(err))
		return
	}
	log.WithFields(log.Fields{"quote_id": lead.ID, "service": lead.Service}).Info("[quote][handler] save success")

	c.JSON(http.StatusOK, response.SaveQuoteResponse{Success: true, QuoteID: lead.ID, Quote: response.FromQuoteLead(lead)})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuote):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE", "Name, phone and service are required", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidBudget):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE", "Budget must be a positive number", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
