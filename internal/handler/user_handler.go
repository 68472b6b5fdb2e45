package handler

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"github.com/muzahidswe/fs17-Backend-project/internal/apperror"
	"github.com/muzahidswe/fs17-Backend-project/internal/dto"
	"github.com/muzahidswe/fs17-Backend-project/internal/service"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	oauthStateCookie  = "oauth_state"
)

// UserHandler handles account, session and password-reset HTTP requests.
type UserHandler struct {
	users service.UserService
	oauth *oauth2.Config
}

// NewUserHandler creates a new UserHandler. oauth may be nil when federated
// login is not configured; the google routes then reply 500.
func NewUserHandler(users service.UserService, oauth *oauth2.Config) *UserHandler {
	return &UserHandler{users: users, oauth: oauth}
}

// Register handles POST /users/registration.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Login handles POST /users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// List handles GET /users. The projection never includes password or
// reset-token fields; an empty store yields an empty list, not 404.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdatePassword handles PUT /users/:id/update-password.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Please provide both oldPassword and newPassword!"))
		return
	}

	user, err := h.users.UpdatePassword(c.Request.Context(), c.Param("id"), req.OldPassword, req.NewPassword)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ForgotPassword handles POST /users/forgot-password.
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Please provide your email"))
		return
	}

	if err := h.users.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification email sent successfully."})
}

// ResetPassword handles POST /users/reset-password?token=.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid or missing reset token"))
		return
	}

	if err := h.users.ResetPassword(c.Request.Context(), c.Query("token"), req.NewPassword); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful."})
}

// AssignRole handles PUT /users/:id/role.
func (h *UserHandler) AssignRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.users.AssignRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangeStatus handles POST /users/change-status.
func (h *UserHandler) ChangeStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.users.ChangeStatus(c.Request.Context(), req.UserID, req.UserStatus)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GoogleLogin handles GET /users/auth/google: redirects the browser to the
// provider's consent page with a single-use state value.
func (h *UserHandler) GoogleLogin(c *gin.Context) {
	if h.oauth == nil {
		_ = c.Error(apperror.Internal("Google login is not configured"))
		return
	}

	state, err := randomState()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauth.AuthCodeURL(state))
}

// GoogleCallback handles GET /users/auth/google/callback: exchanges the
// authorization code, fetches the verified profile and synthesizes a local
// session (logging in or auto-registering by email).
func (h *UserHandler) GoogleCallback(c *gin.Context) {
	if h.oauth == nil {
		_ = c.Error(apperror.Internal("Google login is not configured"))
		return
	}

	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		_ = c.Error(apperror.Unauthorized("Invalid OAuth state"))
		return
	}

	code := c.Query("code")
	if code == "" {
		_ = c.Error(apperror.BadRequest("Missing authorization code"))
		return
	}

	ctx := c.Request.Context()
	oauthToken, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		_ = c.Error(apperror.Unauthorized("Authorization code exchange failed"))
		return
	}

	resp, err := h.oauth.Client(ctx, oauthToken).Get(googleUserInfoURL)
	if err != nil {
		_ = c.Error(apperror.Internal("Could not fetch identity profile"))
		return
	}
	defer resp.Body.Close()

	var profile service.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		_ = c.Error(apperror.Internal("Could not decode identity profile"))
		return
	}

	result, err := h.users.GoogleLogin(ctx, &profile)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}
