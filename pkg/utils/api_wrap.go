package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatApology is the fixed reply returned whenever the chat pipeline fails.
const ChatApology = "Sorry, I encountered an error. Please try again."

func RespondChat(c *gin.Context, reply string) {
	c.JSON(http.StatusOK, gin.H{
		"response": reply,
		"status":   "success",
	})
}

func RespondChatError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"response": ChatApology,
		"status":   "error",
	})
}

func RespondSites(c *gin.Context, sites interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"sites":  sites,
		"status": "success",
	})
}

func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "error",
		"message": message,
	})
}

// HandleServiceError maps service-layer sentinel errors onto the HTTP codes
// the site management API promises.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSiteNotFound):
		RespondError(c, http.StatusNotFound, "Site not found")
	case errors.Is(err, ErrSiteAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Site already exists!")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())
	}
}
