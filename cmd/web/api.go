package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"neurolink-speak/internal/conversation"
	"neurolink-speak/internal/model"
)

// issueAPIToken exchanges credentials for a bearer token.
func issueAPIToken(c *gin.Context) {
	var req struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	user := authService.Authenticate(req.Username, req.Password)
	if user == nil || user.Status == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// authorizeAPI verifies the bearer token and loads the user for the
// request.
func authorizeAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		userID, err := strconv.ParseUint(claims.Subject, 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		var user model.User
		db.First(&user, uint(userID))
		if user.Username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}

		c.Set("api_user", &user)
	}
}

func apiUser(c *gin.Context) *model.User {
	value, _ := c.Get("api_user")
	user, _ := value.(*model.User)
	return user
}

func apiHistory(c *gin.Context) {
	user := apiUser(c)

	entries, err := logStore.EntriesByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read history"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func apiTurnResponse(c *gin.Context, turn conversation.Turn) {
	c.JSON(http.StatusOK, gin.H{
		"sender":     turn.Sender,
		"original":   turn.Original,
		"translated": turn.Translated,
		"confidence": turn.Confidence,
		"sequence":   turn.Sequence,
		"has_audio":  len(turn.Audio) > 0,
		"note":       turn.Note,
	})
}

func apiOutgoingTurn(c *gin.Context) {
	user := apiUser(c)
	turn := pipeline.ProduceOutgoingTurn(conversationSession(user.ID), user)
	apiTurnResponse(c, turn)
}

func apiIncomingTurn(c *gin.Context) {
	user := apiUser(c)

	audio, err := c.GetRawData()
	if err != nil || len(audio) == 0 {
		audio = mockIncomingAudio()
	}

	turn := pipeline.ProduceIncomingTurn(conversationSession(user.ID), user, audio)
	apiTurnResponse(c, turn)
}

func apiManualTurn(c *gin.Context) {
	user := apiUser(c)

	var req struct {
		Text string `json:"text" form:"text"`
	}
	if err := c.ShouldBind(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text required"})
		return
	}

	turn := pipeline.ProduceManualTurn(conversationSession(user.ID), user, req.Text)
	apiTurnResponse(c, turn)
}
