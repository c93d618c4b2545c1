package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jasaku/internal/metrics"
	"jasaku/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	chatH *ChatHandler,
	walletH *WalletHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, metrics y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), metricsMiddleware(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// El chequeo en vivo es público: no persiste nada y el cliente lo llama
	// en cada tecla, incluso antes de autenticarse.
	r.POST("/messages/preview", chatH.PreviewMessage)

	authed := r.Group("/", JWTAuthMiddleware(jwtSvc))
	authed.POST("/messages", chatH.SendMessage)
	authed.GET("/conversations/:peer_id", chatH.GetConversation)
	authed.POST("/conversations/:peer_id/read", chatH.MarkConversationRead)
	authed.GET("/wallet", walletH.GetWallet)
	authed.POST("/wallet/topup", walletH.TopUp)
	authed.POST("/providers/:provider_id/contact", walletH.RevealContact)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// metricsMiddleware registra contadores y latencia por request.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
