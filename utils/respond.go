// utils/respond.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the uniform error body. Every non-2xx response
// in the API is {"detail": <message>}.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"detail": message})
}
