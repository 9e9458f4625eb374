// Package admin exposes the operational HTTP surface next to the game
// protocol: health, live status, catalog listing, and Prometheus
// metrics. It observes the server only; nothing here touches protocol
// state.
package admin

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/craftctl/internal/observability"
	"github.com/danmuck/craftctl/internal/server"
)

func Router(svc *server.Service, corsOrigins []string) *gin.Engine {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(corsOrigins),
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(svc.StartedAt()).String(),
			"service": "craftctl",
			"version": server.VersionName,
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":  true,
			"uptime": time.Since(svc.StartedAt()).String(),
		})
	})

	r.GET("/status", func(c *gin.Context) {
		cfg := svc.Config()
		c.JSON(http.StatusOK, gin.H{
			"listen_addr":        cfg.ListenAddr,
			"protocol":           server.ProtocolVersion,
			"version":            cfg.Status.VersionName,
			"max_players":        cfg.Status.MaxPlayers,
			"active_connections": svc.ActiveConnections(),
			"uptime":             time.Since(svc.StartedAt()).String(),
		})
	})

	r.GET("/registries", func(c *gin.Context) {
		sections := svc.Catalog().Sections()
		list := make([]gin.H, 0, len(sections))
		for _, s := range sections {
			list = append(list, gin.H{
				"name":    "minecraft:" + s.Name,
				"entries": len(s.Keys),
			})
		}
		c.JSON(http.StatusOK, gin.H{"registries": list})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// Serve runs the admin router on its own listener.
func Serve(addr string, svc *server.Service) error {
	return Router(svc, nil).Run(addr)
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
