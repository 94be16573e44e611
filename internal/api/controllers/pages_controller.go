package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesController serves the static site pages; they carry no logic.
type PagesController struct{}

func NewPagesController() *PagesController {
	return &PagesController{}
}

func (pc *PagesController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (pc *PagesController) Chatbot(c *gin.Context) {
	c.HTML(http.StatusOK, "chatbot.html", nil)
}

func (pc *PagesController) AudioGuide(c *gin.Context) {
	c.HTML(http.StatusOK, "audio-guide.html", nil)
}

func (pc *PagesController) Help(c *gin.Context) {
	c.HTML(http.StatusOK, "help.html", nil)
}
