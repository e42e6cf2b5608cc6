package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/kingrain94/shop-rag-api/internal/health"
)

type HealthHandler struct {
	*BaseHandler
	db     health.Probe
	gemini health.Probe
}

func NewHealthHandler(db, gemini health.Probe) *HealthHandler {
	return &HealthHandler{db: db, gemini: gemini}
}

// Health godoc
// @Summary Aggregate health
// @Description Runs the database and Gemini probes. Always 200; inspect the ok fields.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]health.Result
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	var db, gemini health.Result
	var g errgroup.Group
	g.Go(func() error {
		db = health.Run(ctx, h.db)
		return nil
	})
	g.Go(func() error {
		gemini = health.Run(ctx, h.gemini)
		return nil
	})
	_ = g.Wait()

	c.JSON(http.StatusOK, gin.H{"db": db, "gemini": gemini})
}

// DB godoc
// @Summary Database health
// @Tags health
// @Produce json
// @Success 200 {object} health.Result
// @Router /health/db [get]
func (h *HealthHandler) DB(c *gin.Context) {
	c.JSON(http.StatusOK, health.Run(c.Request.Context(), h.db))
}

// Gemini godoc
// @Summary Gemini health
// @Tags health
// @Produce json
// @Success 200 {object} health.Result
// @Router /health/gemini [get]
func (h *HealthHandler) Gemini(c *gin.Context) {
	c.JSON(http.StatusOK, health.Run(c.Request.Context(), h.gemini))
}
