package controllers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/models/request_models"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/services"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// Chat is the single conversational endpoint. Any internal failure collapses
// to one fixed apology with HTTP 500; details stay in the logs.
func (cc *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("chat: bad request body: %v", err)
		utils.RespondChatError(c)
		return
	}

	reply, err := cc.chatService.HandleMessage(c.Request.Context(), req.Message)
	if err != nil {
		log.Printf("chat: pipeline error: %v", err)
		utils.RespondChatError(c)
		return
	}

	utils.RespondChat(c, reply)
}
