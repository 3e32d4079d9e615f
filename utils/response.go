package utils

import "github.com/gin-gonic/gin"

// Success writes a 2xx response merging the given fields with success=true.
func Success(ctx *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	ctx.JSON(status, body)
}

// Error writes an error response carrying a machine-readable message.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"success": false, "message": message})
}
