package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/sosfido/sosfido-api/internal/service"
	"github.com/sosfido/sosfido-api/pkg/auth"
)

const sessionCookie = "sosfido_session"

// AuthHandler handles the session and credential endpoints. These degrade to
// {"status": false} instead of structured errors: the mobile client contract
// depends on that shape.
type AuthHandler struct {
	authService *service.AuthService
	sessions    *auth.SessionManager
}

func NewAuthHandler(authService *service.AuthService, sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// Register godoc
// @Summary Register a new user and issue a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body model.RegisterRequest true "Register request"
// @Success 200 {object} model.AuthResponse
// @Router /register-api [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, model.StatusResponse{Status: false})
		return
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		c.JSON(http.StatusOK, model.StatusResponse{Status: false})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Login godoc
// @Summary Login with email and password, returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body model.LoginRequest true "Login request"
// @Success 200 {object} model.AuthResponse
// @Router /login-api [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, model.StatusResponse{Status: false})
		return
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		c.JSON(http.StatusOK, model.StatusResponse{Status: false})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidateLogin godoc
// @Summary Validate credentials for the web login form
// @Tags Auth
// @Produce json
// @Param email query string false "Account email"
// @Param username query string false "Account username"
// @Param password query string true "Password"
// @Success 200 {object} model.ValidateLoginResponse
// @Router /login [get]
func (h *AuthHandler) ValidateLogin(c *gin.Context) {
	email := c.Query("email")
	username := c.Query("username")
	password := c.Query("password")

	resp := h.authService.ValidateLogin(email, username, password)
	if resp.Status {
		accountID := resp.IDUser
		if accountID == nil {
			if id, err := h.authService.FindUserByEmail(email); err == nil {
				accountID = id
			}
		}
		if accountID != nil {
			if session, err := h.sessions.Issue(*accountID, resp.FullName); err == nil {
				c.SetCookie(sessionCookie, session, 0, "/", "", false, true)
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Revoke every outstanding token of the person's account
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.LogoutRequest true "Logout request"
// @Success 200 {object} model.StatusResponse
// @Router /logout-api [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req model.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, model.StatusResponse{Status: false})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.PersonID); err != nil {
		c.JSON(http.StatusOK, model.StatusResponse{Status: false})
		return
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, model.StatusResponse{Status: true})
}

// UpdatePassword godoc
// @Summary Overwrite an account's password
// @Description App-managed reset path: no old-password verification is performed.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body model.UpdatePasswordRequest true "Update password request"
// @Success 200 {object} model.StatusResponse
// @Router /update-password-api [post]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req model.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, model.StatusResponse{Status: false})
		return
	}

	if err := h.authService.UpdatePassword(req.UserID, req.Password); err != nil {
		c.JSON(http.StatusOK, model.StatusResponse{Status: false})
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: true})
}

// FindUser godoc
// @Summary Resolve an email to its account id
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body model.FindUserRequest true "Find user request"
// @Success 200 {object} model.FindUserResponse
// @Router /find-user-api [post]
func (h *AuthHandler) FindUser(c *gin.Context) {
	var req model.FindUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, model.FindUserResponse{Status: false})
		return
	}

	id, err := h.authService.FindUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusOK, model.FindUserResponse{Status: false})
			return
		}
		c.JSON(http.StatusOK, model.FindUserResponse{Status: false})
		return
	}

	c.JSON(http.StatusOK, model.FindUserResponse{Status: true, UserID: id})
}
