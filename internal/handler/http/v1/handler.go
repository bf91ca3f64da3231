package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dguzman/sigae-sync/internal/config"
	"github.com/dguzman/sigae-sync/internal/service"
	"github.com/dguzman/sigae-sync/internal/sigae"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	syncService service.SyncService
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(syncService service.SyncService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		syncService: syncService,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// syncIncident triggers a full sync of one incident id, relinking it when the
// upstream has renumbered it.
func (h *Handler) syncIncident(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "syncIncident").WithField("id", id)

	incident, err := h.syncService.SyncIncident(c.Request.Context(), id)
	if err != nil {
		var transportErr *sigae.TransportError
		switch {
		case errors.Is(err, service.ErrNoSimilarIncident):
			log.WithError(err).Warn("Incident missing upstream")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found upstream"})
		case errors.As(err, &transportErr):
			log.WithError(err).Error("Upstream request failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unavailable"})
		default:
			log.WithError(err).Error("Failed to sync incident")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// syncBatch triggers a sync for an explicit list of incident ids. Per-id
// failures are reported in the response, never as an HTTP error.
func (h *Handler) syncBatch(c *gin.Context) {
	var input SyncBatchRequest
	log := h.logger.WithField("method", "syncBatch")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.syncService.SyncIncidents(c.Request.Context(), input.IDs)
	c.JSON(http.StatusOK, BatchResultToResponse(result))
}

// syncRange backfills every incident the upstream reported inside a date
// range.
func (h *Handler) syncRange(c *gin.Context) {
	var input SyncRangeRequest
	log := h.logger.WithField("method", "syncRange")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !input.From.Before(input.To) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be before to"})
		return
	}

	result, err := h.syncService.SyncRange(c.Request.Context(), input.From, input.To)
	if err != nil {
		var transportErr *sigae.TransportError
		if errors.As(err, &transportErr) {
			log.WithError(err).Error("Failed to fetch incident list from upstream")
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unavailable"})
			return
		}
		log.WithError(err).Error("Failed to sync range")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, BatchResultToResponse(result))
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
