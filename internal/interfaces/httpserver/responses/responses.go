package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// StatusResponse acknowledges a request without further data.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// OK is the acknowledgement returned by side-effect free endpoints.
var OK = StatusResponse{Status: "ok"}

// ValidationError rejects a malformed request.
func ValidationError(reqCtx *gin.Context, err error) {
	HandleError(reqCtx, http.StatusUnprocessableEntity, err, "invalid request")
}

// HandleError aborts the request with the given status.
func HandleError(reqCtx *gin.Context, status int, err error, message string) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Message = err.Error()
	}
	reqCtx.AbortWithStatusJSON(status, resp)
}
