package controllers

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gin-gonic/gin"

	"github.com/kennyonsig/FeedingMyBaby/bot"
)

type WebhookController struct {
	Bot *bot.Bot
}

func NewWebhookController(b *bot.Bot) *WebhookController {
	return &WebhookController{Bot: b}
}

// Receive accepts a single Telegram update and feeds it into the same
// dispatch path long polling uses.
func (wc *WebhookController) Receive(c *gin.Context) {
	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed update"})
		return
	}
	wc.Bot.HandleUpdate(update)
	c.Status(http.StatusOK)
}
