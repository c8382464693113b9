package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/asticode/go-astisub"
	"github.com/gin-gonic/gin"

	"neurolink-speak/internal/conversation"
	"neurolink-speak/internal/model"
)

func showConversationPage(c *gin.Context, user *model.User) {
	sess := conversationSession(user.ID)
	render(c, gin.H{
		"title":   "Conversation Mode",
		"user":    user,
		"payload": sess.Turns(),
		"self":    sess.TurnsBySender(conversation.SenderSelf),
		"partner": sess.TurnsBySender(conversation.SenderPartner),
	}, "conversation.html")
}

func produceOutgoingTurn(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	pipeline.ProduceOutgoingTurn(conversationSession(user.ID), user)
	showConversationPage(c, user)
}

func produceIncomingTurn(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	pipeline.ProduceIncomingTurn(conversationSession(user.ID), user, mockIncomingAudio())
	showConversationPage(c, user)
}

func produceManualTurn(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	text := c.PostForm("text")
	if text != "" {
		pipeline.ProduceManualTurn(conversationSession(user.ID), user, text)
	}
	showConversationPage(c, user)
}

// mockIncomingAudio fabricates a partner audio payload, standing in
// for a microphone capture.
func mockIncomingAudio() []byte {
	seconds := 1 + rand.Float64()*2
	audio := make([]byte, int(22050*seconds))
	rand.Read(audio)
	return audio
}

func showHistoryPage(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	entries, err := logStore.EntriesByUser(user.ID)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	render(c, gin.H{
		"title":   "Conversation History",
		"payload": entries}, "history.html")
}

// getTranscript builds a subtitle document from the persisted
// conversation, one timed item per exchange.
func getTranscript(c *gin.Context) (*astisub.Subtitles, string) {
	user := currentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return nil, ""
	}

	entries, err := logStore.EntriesByUser(user.ID)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return nil, ""
	}

	subtitles := astisub.NewSubtitles()

	for i, entry := range entries {
		item := &astisub.Item{}

		speaker := "You"
		if entry.Direction == model.DirectionIncoming {
			speaker = "Partner"
		}

		item.StartAt = time.Duration(i*4) * time.Second
		item.EndAt = item.StartAt + 3*time.Second
		item.Lines = append(item.Lines, astisub.Line{Items: []astisub.LineItem{
			{Text: fmt.Sprintf("%s: %s", speaker, entry.TranslatedText)}}})

		subtitles.Items = append(subtitles.Items, item)
	}

	return subtitles, fmt.Sprintf("conversation-%s", user.Username)
}

func getTranscriptSRT(c *gin.Context) {
	subtitles, name := getTranscript(c)
	if subtitles == nil {
		return
	}
	buf := &bytes.Buffer{}

	subtitles.WriteToSRT(buf)

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name + ".srt"}))
	c.Data(http.StatusOK, "text/srt", buf.Bytes())
}

func getTranscriptWebVTT(c *gin.Context) {
	subtitles, name := getTranscript(c)
	if subtitles == nil {
		return
	}
	buf := &bytes.Buffer{}

	subtitles.WriteToWebVTT(buf)

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name + ".vtt"}))
	c.Data(http.StatusOK, "text/vtt", buf.Bytes())
}

func getTranscriptTTML(c *gin.Context) {
	subtitles, name := getTranscript(c)
	if subtitles == nil {
		return
	}
	buf := &bytes.Buffer{}

	subtitles.WriteToTTML(buf)

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name + ".ttml"}))
	c.Data(http.StatusOK, "text/xml", buf.Bytes())
}

func getEntryAudio(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	entryID, err := strconv.ParseUint(c.Param("entry_id"), 10, 32)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	entry, err := logStore.EntryByID(uint(entryID))
	if err != nil {
		c.AbortWithError(http.StatusNotFound, err)
		return
	}

	// Check that the entry is owned by the current user
	if entry.UserID != user.ID {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if entry.AudioPath == "" {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.Header("Content-Type", "audio/wav")
	c.File(entry.AudioPath)
}
