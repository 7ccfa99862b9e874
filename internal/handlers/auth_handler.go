package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vkclicks/vkclicks-api/internal/auth"
	"github.com/vkclicks/vkclicks-api/internal/config"
	"github.com/vkclicks/vkclicks-api/internal/httperr"
	"github.com/vkclicks/vkclicks-api/internal/models"
	"github.com/vkclicks/vkclicks-api/internal/notify"
	"github.com/vkclicks/vkclicks-api/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	notifier *notify.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, notifier *notify.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, notifier: notifier}
}

// --------- Requests ---------

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	// Collected by the signup form but only persisted once the
	// photographer profile is saved.
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	UID         string `json:"uid" binding:"required"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// The MX/A lookup is opt-in since it needs outbound DNS.
	if h.config.CheckEmailDomain && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "username_already_taken", "Username already taken")
		return
	}

	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	// No Photographer row here: the profile materializes on its first
	// save, not at signup.
	user := models.User{
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	token, err := h.getOrCreateToken(user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_issue_token", "Could not issue a token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token.Key})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var user models.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		httperr.BadRequest(c, "invalid_credentials", "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.BadRequest(c, "invalid_credentials", "Invalid credentials")
		return
	}

	token, err := h.getOrCreateToken(user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_issue_token", "Could not issue a token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token.Key})
}

// ForgotPassword always reports success so the endpoint cannot be used
// to probe which emails have accounts.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	token, err := auth.MakeResetToken(h.config.SecretKey, &user, h.config.ResetTokenTTL)
	if err != nil {
		httperr.Internal(c, "failed_to_issue_token", "Could not issue a reset token.")
		return
	}

	resetURL := auth.ResetURL(auth.EncodeUID(user.ID), token)

	h.notifier.Dispatch(notify.ComposePasswordReset(h.config.SiteName, user.Email, resetURL))

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"reset_url": resetURL,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	userID, err := auth.DecodeUID(req.UID)
	if err != nil {
		httperr.BadRequest(c, "invalid_reset_link", "Invalid reset link.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.BadRequest(c, "invalid_reset_link", "Invalid reset link.")
		return
	}

	if !auth.CheckResetToken(h.config.SecretKey, &user, req.Token) {
		httperr.BadRequest(c, "reset_link_expired", "Reset link expired or invalid.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	user.PasswordHash = string(hashed)
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_password", "Could not update the password.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful."})
}

// --------- Tokens ---------

// One opaque token per user, created on first use and reused after.
func (h *AuthHandler) getOrCreateToken(userID uint) (*models.AuthToken, error) {
	var token models.AuthToken
	err := h.db.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}

	key, err := auth.GenerateKey()
	if err != nil {
		return nil, err
	}

	token = models.AuthToken{
		UserID: userID,
		Key:    key,
	}

	if err := h.db.Create(&token).Error; err != nil {
		// Concurrent first login: the unique index on user_id makes
		// one creator lose; fall back to the stored token.
		if ferr := h.db.Where("user_id = ?", userID).First(&token).Error; ferr == nil {
			return &token, nil
		}
		return nil, err
	}

	return &token, nil
}
