package main

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"neurolink-speak/internal/asr"
	"neurolink-speak/internal/auth"
	"neurolink-speak/internal/conversation"
	"neurolink-speak/internal/helper"
	"neurolink-speak/internal/model"
	"neurolink-speak/internal/signal"
	"neurolink-speak/internal/translate"
	"neurolink-speak/internal/tts"
)

var db *gorm.DB

var store cookie.Store

var (
	authService *auth.Service
	tokens      *auth.TokenIssuer
	pipeline    *conversation.Pipeline
	logStore    *conversation.LogStore
)

// Conversation history is session-scoped: one in-memory session per
// signed-in user, discarded at logout.
var (
	convMu       sync.Mutex
	convSessions = map[uint]*conversation.Session{}
)

func conversationSession(userID uint) *conversation.Session {
	convMu.Lock()
	defer convMu.Unlock()

	sess, ok := convSessions[userID]
	if !ok {
		sess = conversation.NewSession()
		convSessions[userID] = sess
	}
	return sess
}

func dropConversationSession(userID uint) {
	convMu.Lock()
	defer convMu.Unlock()
	delete(convSessions, userID)
}

// currentUser loads the signed-in user for this request, or nil.
func currentUser(c *gin.Context) *model.User {
	session := sessions.Default(c)
	userID := session.Get("user_id")
	if userID == nil {
		return nil
	}

	var user model.User
	db.First(&user, userID.(uint))
	if user.Username == "" {
		return nil
	}
	return &user
}

// saveAudioArtifact writes one synthesized WAV under DATA_DIR and
// returns its path for the log entry.
func saveAudioArtifact(userID uint, direction string, sequence int, audio []byte) (string, error) {
	filename := helper.AudioFilename(userID, direction, sequence)
	if err := os.WriteFile(filename, audio, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// Render one of HTML, JSON or XML based on the 'Accept' header of the request
// If the header doesn't specify this, HTML is rendered, provided that
// the template name is present
func render(c *gin.Context, data gin.H, templateName string) {
	loggedInInterface, _ := c.Get("is_logged_in")
	data["is_logged_in"] = loggedInInterface.(bool)

	data["url_base"] = helper.GetConfig("URL_BASE")

	switch c.Request.Header.Get("Accept") {
	case "application/json":
		// Respond with JSON
		c.JSON(http.StatusOK, data["payload"])
	case "application/xml":
		// Respond with XML
		c.XML(http.StatusOK, data["payload"])
	default:
		// Respond with HTML
		c.HTML(http.StatusOK, templateName, data)
	}
}

// This middleware ensures that a request will be aborted with an error
// if the user is not logged in
func ensureLoggedIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		loggedInInterface, _ := c.Get("is_logged_in")
		loggedIn := loggedInInterface.(bool)
		if !loggedIn {
			showLoginPage(c)
			c.AbortWithStatus(http.StatusUnauthorized)
		}
	}
}

// This middleware ensures that a request will be aborted with an error
// if the user is already logged in
func ensureNotLoggedIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		loggedInInterface, _ := c.Get("is_logged_in")
		loggedIn := loggedInInterface.(bool)
		if loggedIn {
			c.AbortWithStatus(http.StatusUnauthorized)
		}
	}
}

// This middleware sets whether the user is logged in or not
func setUserStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		if userID := session.Get("user_id"); userID != nil {
			c.Set("is_logged_in", true)
		} else {
			c.Set("is_logged_in", false)
		}
	}
}

func initializeRoutes(app *gin.Engine) {

	// Use the setUserStatus middleware for every route to set a flag
	// indicating whether the request was from an authenticated user or not
	app.Use(setUserStatus())

	// Handle the index route
	app.GET("/", showIndexPage)

	// Group user related routes together
	userRoutes := app.Group("/u")
	{
		// Handle the GET requests at /u/login
		// Show the login page
		// Ensure that the user is not logged in by using the middleware
		userRoutes.GET("/login", ensureNotLoggedIn(), showLoginPage)

		// Handle POST requests at /u/login
		userRoutes.POST("/login", ensureNotLoggedIn(), performLogin)

		// Handle GET requests at /u/logout
		userRoutes.GET("/logout", ensureLoggedIn(), logout)

		// Handle the GET requests at /u/register
		// Show the registration page
		userRoutes.GET("/register", ensureNotLoggedIn(), showRegistrationPage)

		// Handle POST requests at /u/register
		userRoutes.POST("/register", ensureNotLoggedIn(), register)

		// Handle GET requests at /u/confirm/some_token
		userRoutes.GET("/confirm/:token", ensureNotLoggedIn(), performConfirmation)

		// Handle the settings page
		userRoutes.GET("/settings", ensureLoggedIn(), showSettingsPage)
		userRoutes.POST("/settings", ensureLoggedIn(), updateSettings)
	}

	// Group conversation related routes together
	conversationRoutes := app.Group("/conversation")
	{
		// Simulate one outgoing turn (EEG/EMG -> text -> speech)
		conversationRoutes.POST("/outgoing", ensureLoggedIn(), produceOutgoingTurn)

		// Simulate one incoming turn (speech -> text -> translation)
		conversationRoutes.POST("/incoming", ensureLoggedIn(), produceIncomingTurn)

		// Send manually typed text through the pipeline
		conversationRoutes.POST("/manual", ensureLoggedIn(), produceManualTurn)

		// Persisted conversation log
		conversationRoutes.GET("/history", ensureLoggedIn(), showHistoryPage)

		// Transcript export
		conversationRoutes.GET("/export/srt", ensureLoggedIn(), getTranscriptSRT)
		conversationRoutes.GET("/export/vtt", ensureLoggedIn(), getTranscriptWebVTT)
		conversationRoutes.GET("/export/ttml", ensureLoggedIn(), getTranscriptTTML)

		// Stored audio artifacts
		conversationRoutes.GET("/audio/:entry_id", ensureLoggedIn(), getEntryAudio)
	}

	// JSON API guarded by bearer tokens
	apiRoutes := app.Group("/api")
	{
		apiRoutes.POST("/token", issueAPIToken)

		authorized := apiRoutes.Group("", authorizeAPI())
		{
			authorized.GET("/history", apiHistory)
			authorized.POST("/turns/outgoing", apiOutgoingTurn)
			authorized.POST("/turns/incoming", apiIncomingTurn)
			authorized.POST("/turns/manual", apiManualTurn)
		}
	}
}

func main() {
	// Set Gin to production mode
	gin.SetMode(gin.ReleaseMode)

	// Connect to the database
	helper.ConnectDB()
	db = helper.DB

	// Wire the pipeline collaborators once at startup and inject them
	// explicitly; the services keep no package-level singletons.
	authService = auth.NewService(db)
	tokens = auth.NewTokenIssuer(helper.GetConfig("JWT_SECRET"), 24*time.Hour)
	logStore = conversation.NewLogStore(db)

	pipeline = conversation.NewPipeline(
		signal.NewDecoder(nil),
		asr.NewTranscriber(nil),
		translate.NewTranslator(),
		tts.NewSynthesizer(),
		logStore,
		helper.GetConfigDefault("BASE_LANGUAGE", "en"),
	)
	pipeline.SaveAudio = saveAudioArtifact

	// Set the router as the default one provided by Gin
	app := gin.Default()

	// Process the templates at the start so that they don't have to be loaded
	// from the disk again. This makes serving HTML pages very fast.
	app.LoadHTMLGlob("cmd/web/templates/*.html")

	// Enable cookie session
	store = cookie.NewStore([]byte(helper.GetConfig("SESSION_KEY")))
	app.Use(sessions.Sessions("neurolink-speak-session", store))

	// Initialize the routes
	initializeRoutes(app)

	// Start serving the application
	app.Run()
}
