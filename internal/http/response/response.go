package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/artistdash-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: code}})
}

// RespondServiceError writes the envelope for a service error. The raw error is
// kept on the gin context for the request log; clients only see what apierr
// exposes.
func RespondServiceError(c *gin.Context, err error) {
	ae := apierr.From(err)
	if ae == nil {
		return
	}
	_ = c.Error(err)
	RespondError(c, ae.Status, ae.Code, ae)
}

func AbortServiceError(c *gin.Context, err error) {
	RespondServiceError(c, err)
	c.Abort()
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
