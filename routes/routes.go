package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/kennyonsig/FeedingMyBaby/bot"
	"github.com/kennyonsig/FeedingMyBaby/controllers"
	"github.com/kennyonsig/FeedingMyBaby/middlewares"
)

// SetupRouter builds the HTTP surface: liveness, Prometheus metrics and the
// Telegram webhook endpoint. Webhook updates go through the same handler
// path as long polling.
func SetupRouter(db *gorm.DB, b *bot.Bot, webhookSecret string) *gin.Engine {
	r := gin.Default()

	health := controllers.NewHealthController(db)
	r.GET("/healthz", health.Healthz)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	wh := controllers.NewWebhookController(b)
	webhook := r.Group("/telegram/webhook")
	webhook.Use(middlewares.WebhookSecret(webhookSecret))
	{
		webhook.POST("/:secret", wh.Receive)
	}

	return r
}
