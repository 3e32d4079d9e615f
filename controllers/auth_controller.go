package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoply/server/middleware"
	"github.com/shoply/server/models"
	"github.com/shoply/server/store"
	"github.com/shoply/server/utils"
)

// AuthController handles registration, login and account management over the
// in-memory user store.
type AuthController struct {
	users *store.UserStore
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(users *store.UserStore) *AuthController {
	return &AuthController{users: users}
}

// setAuthCookie attaches the access token as an HTTP-only lax cookie.
// Secure is left off: local development posture.
func setAuthCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AccessTokenCookie, token, int(utils.TokenTTL.Seconds()), "/", "", false, true)
}

func clearAuthCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
}

// Register creates a new account, signs the caller in and sets the cookie.
func (a *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Email, password, and name are required")
		return
	}

	// Check-then-create: the uniqueness pre-check and the insert are separate
	// store calls, so concurrent identical registrations can race. Known
	// limitation of the in-memory model.
	if existing := a.users.FindByEmail(req.Email); existing != nil {
		utils.Error(ctx, http.StatusBadRequest, "User already exists")
		return
	}

	user, err := a.users.Create(req.Email, req.Password, req.Name)
	if err != nil {
		utils.Sugar.Errorf("registration failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Server error during registration")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		utils.Sugar.Errorf("token generation failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Server error during registration")
		return
	}

	setAuthCookie(ctx, token)
	utils.Success(ctx, http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user.Public(),
	})
}

// Login verifies credentials and sets the access token cookie.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Invalid credentials")
		return
	}

	user := a.users.FindByEmail(req.Email)
	if user == nil {
		utils.Error(ctx, http.StatusBadRequest, "Invalid credentials")
		return
	}

	// A supplied name must match the stored one; an empty name skips the check.
	if req.Name != "" && user.Name != req.Name {
		utils.Error(ctx, http.StatusBadRequest, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Error(ctx, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		utils.Sugar.Errorf("token generation failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Server error during login")
		return
	}

	setAuthCookie(ctx, token)
	utils.Success(ctx, http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user.Public(),
	})
}

// Me returns the authenticated caller's record. The token is trusted for
// authentication, but the record itself must still resolve in the store.
func (a *AuthController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	user := a.users.FindByID(userID)
	if user == nil {
		utils.Error(ctx, http.StatusNotFound, "User not found")
		return
	}

	utils.Success(ctx, http.StatusOK, gin.H{
		"user": user.PublicWithCreatedAt(),
	})
}

// Logout clears the access token cookie. Tokens are stateless, so nothing is
// revoked server-side; the client simply loses its copy.
func (a *AuthController) Logout(ctx *gin.Context) {
	clearAuthCookie(ctx)
	utils.Success(ctx, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ListUsers returns every user's public projection plus a count.
func (a *AuthController) ListUsers(ctx *gin.Context) {
	users := a.users.GetAllUsers()

	safe := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		safe = append(safe, u.PublicWithCreatedAt())
	}

	utils.Success(ctx, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Found %d users", len(safe)),
		"users":   safe,
		"total":   len(safe),
	})
}

// DeleteUser removes another user's account. Self-deletion is blocked.
func (a *AuthController) DeleteUser(ctx *gin.Context) {
	callerID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	id := ctx.Param("id")
	if id == callerID {
		utils.Error(ctx, http.StatusBadRequest, "Cannot delete your own account using this endpoint")
		return
	}

	user := a.users.FindByID(id)
	if user == nil {
		utils.Error(ctx, http.StatusNotFound, "User not found")
		return
	}

	if !a.users.DeleteUser(id) {
		utils.Error(ctx, http.StatusNotFound, "User not found")
		return
	}

	utils.Sugar.Infow("user deleted", "id", id, "by", callerID)
	utils.Success(ctx, http.StatusOK, gin.H{
		"message":     "User deleted successfully",
		"deletedUser": user.Public(),
	})
}

// getUserID extracts the authenticated user id set by the auth middleware.
func getUserID(ctx *gin.Context) (string, bool) {
	v, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
