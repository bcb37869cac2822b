package response

import (
	"github.com/gin-gonic/gin"
)

// JSON writes an arbitrary payload with the given status code.
func JSON(c *gin.Context, code int, payload any) {
	c.JSON(code, payload)
}

// Message writes {"message": ...} with the given status code.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// Error writes {"error": ...} with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// FieldErrors writes a map of field name to error messages, the shape used
// for registration validation failures.
func FieldErrors(c *gin.Context, code int, fields map[string][]string) {
	c.JSON(code, fields)
}
