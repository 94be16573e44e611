package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

type stubChatService struct {
	reply string
	err   error
	last  string
}

func (s *stubChatService) HandleMessage(_ context.Context, message string) (string, error) {
	s.last = message
	return s.reply, s.err
}

func newChatRouter(svc *stubChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat", NewChatController(svc).Chat)
	return r
}

func TestChatSuccess(t *testing.T) {
	svc := &stubChatService{reply: "Petra looks great at 3:00 PM."}
	r := newChatRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/chat", gin.H{"message": "petra at 3pm from amman"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Petra looks great at 3:00 PM.", body["response"])
	assert.Equal(t, "petra at 3pm from amman", svc.last)
}

func TestChatPipelineErrorReturnsApology(t *testing.T) {
	svc := &stubChatService{err: errors.New("model call failed")}
	r := newChatRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/chat", gin.H{"message": "petra at 3pm"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, utils.ChatApology, body["response"])
}

func TestChatMalformedBodyReturnsApology(t *testing.T) {
	r := newChatRouter(&stubChatService{})

	req, err := http.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := doRaw(r, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, utils.ChatApology, decodeBody(t, w)["response"])
}
