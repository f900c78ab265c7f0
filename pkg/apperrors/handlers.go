package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleError writes err to the client as the API's wire error shape:
// {"error": "<message>"} plus optional validation details. Non-AppError
// values become a generic 500 so internal error text never leaks.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	body := gin.H{"error": appErr.Message}
	if appErr.HTTPCode >= http.StatusInternalServerError {
		// Generic message only; the wrapped error stays in the logs.
		body["error"] = "Internal server error"
	} else if appErr.Details != nil {
		body["details"] = appErr.Details
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, body)
}

// AsAppError attempts to interpret err as an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
