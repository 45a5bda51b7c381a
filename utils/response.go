package utils

import "github.com/gin-gonic/gin"

// JSONError writes the uniform error envelope: a stable machine-readable kind
// plus a human-readable message.
func JSONError(c *gin.Context, code int, kind, message string) {
	c.JSON(code, gin.H{"error": kind, "message": message})
}

func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
