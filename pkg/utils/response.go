package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes a uniform {message} error body.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
