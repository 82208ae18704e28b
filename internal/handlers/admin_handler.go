package handlers

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
	"github.com/diegoclair/athlete-weekly-bot/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultListLimit = 20
	maxListLimit     = 200
)

// AdminHandler serves the JSON admin API
type AdminHandler struct {
	dm         contract.DataManager
	services   Services
	stores     *storage.Stores
	adminToken string
}

func NewAdmin(dm contract.DataManager, services Services, stores *storage.Stores, adminToken string) *AdminHandler {
	return &AdminHandler{
		dm:         dm,
		services:   services,
		stores:     stores,
		adminToken: adminToken,
	}
}

// Router builds the gin engine. /health and /metrics stay public; /api needs
// the admin bearer token.
func (h *AdminHandler) Router(gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api", bearerAuth(h.adminToken))
	api.GET("/channels", h.GetChannels)
	api.PUT("/channels/:kind", h.SetChannel)
	api.GET("/announcements", h.GetAnnouncements)
	api.PUT("/announcements/:type", h.UpdateAnnouncement)
	api.GET("/stats", h.GetStats)
	api.GET("/feedback", h.ListFeedback)
	api.GET("/audit", h.ListAudit)
	api.POST("/trigger/:type", h.Trigger)

	return r
}

// GET /health
func (h *AdminHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// GET /api/channels
func (h *AdminHandler) GetChannels(c *gin.Context) {
	c.JSON(http.StatusOK, h.stores.Channels.Resolved())
}

// PUT /api/channels/:kind  body: {"id":"..."}
func (h *AdminHandler) SetChannel(c *gin.Context) {
	kind, err := domain.ParseChannelKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.stores.Channels.SetChannel(kind, strings.TrimSpace(req.ID)); err != nil {
		logger.Error("failed to save channel", "kind", kind, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.stores.Channels.Resolved())
}

// GET /api/announcements
func (h *AdminHandler) GetAnnouncements(c *gin.Context) {
	c.JSON(http.StatusOK, h.stores.Announcements.Load())
}

// PUT /api/announcements/:type  body: AnnouncementConfig, absent fields keep
// their current value
func (h *AdminHandler) UpdateAnnouncement(c *gin.Context) {
	kind, err := domain.ParseAnnouncementType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := h.stores.Announcements.Load().Get(kind)
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.stores.Announcements.Update(kind, cfg); err != nil {
		logger.Error("failed to save announcement config", "type", kind, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.stores.Announcements.Load().Get(kind))
}

// GET /api/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"activity":         h.services.Activity.Stats(),
		"unpostedAthletes": h.services.Spotlight.UnpostedCount(),
	})
}

// GET /api/feedback?limit=20
func (h *AdminHandler) ListFeedback(c *gin.Context) {
	limit, ok := listLimit(c)
	if !ok {
		return
	}
	items, err := h.dm.Feedback().ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := h.dm.Feedback().Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []*entity.Feedback{}
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "items": items})
}

// GET /api/audit?limit=20
func (h *AdminHandler) ListAudit(c *gin.Context) {
	limit, ok := listLimit(c)
	if !ok {
		return
	}
	items, err := h.dm.Audit().ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []*entity.AuditEntry{}
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/trigger/:type
func (h *AdminHandler) Trigger(c *gin.Context) {
	kind, err := domain.ParseAnnouncementType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("manual trigger requested", "type", kind, "source", "admin_api")
	if !h.services.Announcement.Send(c.Request.Context(), kind, true) {
		c.JSON(http.StatusBadGateway, gin.H{"sent": false, "type": kind})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": true, "type": kind})
}

func listLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultListLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return 0, false
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit, true
}

// bearerAuth rejects every request when no admin token is configured.
func bearerAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "admin api disabled"})
			return
		}
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(auth[7:]), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
