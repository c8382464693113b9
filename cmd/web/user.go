package main

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"neurolink-speak/internal/helper"
	"neurolink-speak/internal/model"
	"neurolink-speak/internal/translate"
)

func showIndexPage(c *gin.Context) {
	if user := currentUser(c); user != nil {
		showConversationPage(c, user)
	} else {
		showLoginPage(c)
	}
}

func showLoginPage(c *gin.Context) {
	// Call the render function with the name of the template to render
	render(c, gin.H{
		"title": "Login",
	}, "login.html")
}

func performLogin(c *gin.Context) {
	// Obtain the POSTed username and password values
	username := c.PostForm("username")
	password := c.PostForm("password")
	user := authService.Authenticate(username, password)

	// Check if the username/password combination is valid
	if user != nil {
		if user.Status > 0 {
			// If the credentials are valid, save the user to session
			session := sessions.Default(c)
			session.Set("user_id", user.ID)
			session.Save()

			// and mark this in context
			c.Set("is_logged_in", true)

			showConversationPage(c, user)
		} else {
			c.HTML(http.StatusBadRequest, "login.html", gin.H{
				"url_base":     helper.GetConfig("URL_BASE"),
				"ErrorTitle":   "Login Failed",
				"ErrorMessage": "Please check your mailbox and click the confirmation link"})
		}
	} else {
		// If the username/password combination is invalid,
		// show the error message on the login page
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"url_base":     helper.GetConfig("URL_BASE"),
			"ErrorTitle":   "Login Failed",
			"ErrorMessage": "Invalid credentials provided"})
	}
}

func logout(c *gin.Context) {
	// Drop the in-memory conversation history with the session
	if user := currentUser(c); user != nil {
		dropConversationSession(user.ID)
	}

	// Clear the cookie
	session := sessions.Default(c)
	session.Delete("user_id")
	session.Save()

	// Redirect to the home page
	c.Redirect(http.StatusTemporaryRedirect, "/")
}

func showRegistrationPage(c *gin.Context) {
	render(c, gin.H{
		"title":     "Register",
		"languages": translate.SupportedLanguages(),
	}, "register.html")
}

func register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirmPassword := c.PostForm("confirm_password")

	if password != confirmPassword {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"url_base":     helper.GetConfig("URL_BASE"),
			"ErrorTitle":   "Registration Failed",
			"ErrorMessage": "Passwords do not match"})
		return
	}

	user, err := authService.Register(username, email, password,
		c.PostForm("native_language"), c.PostForm("target_language"), c.PostForm("voice_type"))

	if err == nil {
		if err := sendConfirmation(user); err != nil {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{
				"url_base":     helper.GetConfig("URL_BASE"),
				"ErrorTitle":   "Registration Failed",
				"ErrorMessage": fmt.Sprintf("Could not send confirmation link: %v", err)})
			return
		}
		render(c, gin.H{}, "register-successful.html")
	} else {
		// Duplicate username/email and weak passwords end up here;
		// no user is produced in either case
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"url_base":     helper.GetConfig("URL_BASE"),
			"ErrorTitle":   "Registration Failed",
			"ErrorMessage": err.Error()})
	}
}

func sendConfirmation(user *model.User) error {
	confirmationLink := fmt.Sprintf("%s/u/confirm/%s", helper.GetConfig("URL_BASE"), user.Token)
	messageBody := fmt.Sprintf("To confirm this email address, go to:<br/>\n<a href=\"%s\">%s</a>", confirmationLink, confirmationLink)
	return helper.SendEmail(user.Email, "Email Confirmation", messageBody)
}

func performConfirmation(c *gin.Context) {
	if _, err := authService.Confirm(c.Param("token")); err != nil {
		c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	render(c, gin.H{}, "confirmation.html")
}

func showSettingsPage(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	render(c, gin.H{
		"payload":   user,
		"languages": translate.SupportedLanguages(),
		"voices":    []string{model.VoiceDefault, model.VoiceMale, model.VoiceFemale},
	}, "settings.html")
}

func updateSettings(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if v := c.PostForm("native_language"); v != "" {
		user.NativeLanguage = v
	}
	if v := c.PostForm("target_language"); v != "" {
		user.TargetLanguage = v
	}
	if v := c.PostForm("voice_type"); v != "" {
		user.VoiceType = v
	}

	if err := db.Save(user).Error; err != nil {
		c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	showConversationPage(c, user)
}
