package response

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/schedule-assistant/soc-api/pkg/errors"
)

// Envelope represents the common error response contract. Successful
// schedule payloads are written as-is to preserve their published shape.
type Envelope struct {
	Error *appErrors.Error `json:"error,omitempty"`
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Envelope{Error: appErr})
}
