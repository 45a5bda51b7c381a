package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/middleware"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type AuthController struct {
	Sessions *services.SessionService
	// CookieMaxAge bounds the cookie lifetime in seconds; the session row
	// expiry is authoritative either way.
	CookieMaxAge int
}

func NewAuthController(sessions *services.SessionService, cookieMaxAge int) *AuthController {
	return &AuthController{Sessions: sessions, CookieMaxAge: cookieMaxAge}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /login: verifies credentials and sets the session
// cookie. Failures answer 401 and leave the caller anonymous.
func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "username and password required")
		return
	}

	token, err := a.Sessions.Login(username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "invalid credentials")
			return
		}
		respondError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, a.CookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged in", "username": username})
}

// LoginStatus handles GET /login: reports the current user or 401.
func (a *AuthController) LoginStatus(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil || token == "" {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "login required")
		return
	}
	username, err := a.Sessions.Authenticate(token)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "login required")
		return
	}
	utils.JSONMessage(c, http.StatusOK, fmt.Sprintf("already logged in as %s", username))
}

// Logout handles GET /logout: revokes the session, clears the cookie and
// redirects to ?next= or the root.
func (a *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := a.Sessions.Logout(token); err != nil {
			respondError(c, err)
			return
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)

	next := c.Query("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}
