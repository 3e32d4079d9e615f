package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoply/server/utils"
)

// ContactController relays contact form submissions to an outbound chat
// webhook. The relay is synchronous: a slow webhook delays only the single
// request, and there is no retry.
type ContactController struct {
	webhookURL string
}

// NewContactController creates a ContactController posting to the given webhook URL.
func NewContactController(webhookURL string) *ContactController {
	return &ContactController{webhookURL: webhookURL}
}

// Relay forwards a contact message to the configured webhook.
func (c *ContactController) Relay(ctx *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	content := fmt.Sprintf("📩 **New Contact Message**\n👤 Name: %s\n📧 Email: %s\n📝 Message: %s",
		req.Name, req.Email, req.Message)

	if err := utils.SendWebhookMessage(c.webhookURL, content); err != nil {
		utils.Sugar.Errorf("contact webhook relay failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to send message")
		return
	}

	utils.Success(ctx, http.StatusOK, gin.H{"message": "Message sent"})
}
