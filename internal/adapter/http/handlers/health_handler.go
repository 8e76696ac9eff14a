package handlers

import (
	"net/http"
	"time"

	"github.com/hepsystems/hepeco/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

const ServiceName = "Hepeco Digital API"

// HealthHandler reports liveness together with the configured backends.
type HealthHandler struct {
	storage string
	gateway string
	now     func() time.Time
}

func NewHealthHandler(storage, gateway string) *HealthHandler {
	return &HealthHandler{storage: storage, gateway: gateway, now: time.Now}
}

// Health godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.HealthResponse
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Timestamp: h.now().UTC(),
		Storage:   h.storage,
		Gateway:   h.gateway,
	})
}
