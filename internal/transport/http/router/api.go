package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"housemax/internal/core/config"
	"housemax/internal/core/server"
	mdw "housemax/internal/transport/http/middleware"
)

const maxBody = 1 << 20

// NewAPIEngine builds the catalog API: /health, /metrics and /api/v1/*.
// db is pinged by /health; it may be nil.
func NewAPIEngine(l *zap.Logger, h config.HTTP, db *gorm.DB, mods ...APIModule) *gin.Engine {
	h = withDefaults(h)
	r := server.NewRouter(l)

	limit := mdw.RateLimit
	if h.RateLimitPerIP {
		limit = mdw.RateLimitPerIP
	}
	r.Use(
		mdw.RequestID(),
		limit(rate.Limit(h.RateLimitRPS), h.RateLimitBurst),
		mdw.ConcurrencyLimit(h.MaxInFlight),
		mdw.MaxBodyBytes(maxBody),
		mdw.Timeout(time.Duration(h.RequestTimeoutSec)*time.Second),
		mdw.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) {
		if db != nil {
			if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"ok": 0})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": 1})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	MountAPI(r.Group("/api/v1"), mods...)
	return r
}

func withDefaults(h config.HTTP) config.HTTP {
	if h.RateLimitRPS <= 0 {
		h.RateLimitRPS = 200
	}
	if h.RateLimitBurst <= 0 {
		h.RateLimitBurst = 400
	}
	if h.MaxInFlight <= 0 {
		h.MaxInFlight = 300
	}
	if h.RequestTimeoutSec <= 0 {
		h.RequestTimeoutSec = 10
	}
	return h
}
