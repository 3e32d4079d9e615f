package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoply/server/utils"
)

// AccessTokenCookie is the cookie carrying the signed access token.
const AccessTokenCookie = "accessToken"

const (
	// ContextUserIDKey is the key used to store authenticated user ID in Gin context.
	ContextUserIDKey = "user_id"
	// ContextUserEmailKey stores the user email inside Gin context.
	ContextUserEmailKey = "user_email"
	// ContextUserNameKey stores the user name inside Gin context.
	ContextUserNameKey = "user_name"
)

// AuthRequired ensures the request carries a valid access token cookie.
// The token's embedded claims are trusted as-is; the user store is never
// consulted here, so a deleted user's unexpired token still authenticates.
func AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(AccessTokenCookie)
		if err != nil || token == "" {
			utils.Error(ctx, http.StatusUnauthorized, "Access denied. No token provided.")
			ctx.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				utils.Error(ctx, http.StatusUnauthorized, "Token expired. Please login again.")
			} else {
				utils.Error(ctx, http.StatusForbidden, "Invalid token.")
			}
			ctx.Abort()
			return
		}

		ctx.Set(ContextUserIDKey, claims.UserID)
		ctx.Set(ContextUserEmailKey, claims.Email)
		ctx.Set(ContextUserNameKey, claims.Name)
		ctx.Next()
	}
}
