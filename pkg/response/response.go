package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"supercopa.app/backend/pkg/apperror"
)

// Error writes the standardized error envelope.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		log.Printf("[internal error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// OK writes the standardized data envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}
