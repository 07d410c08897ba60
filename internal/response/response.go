package response

import (
	"net/http"
	"runtime"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Body is the uniform wrapper every endpoint responds with.
type Body struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// statusText derives the envelope status from the leading digit of the
// HTTP code: "2xx" is success, everything else is an error.
func statusText(code int) string {
	if strings.HasPrefix(strconv.Itoa(code), "2") {
		return "success"
	}
	return "error"
}

// JSON writes the enveloped payload with the given status code.
func JSON(c *gin.Context, message string, data interface{}, code int) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(code, Body{
		Status:  statusText(code),
		Message: message,
		Data:    data,
	})
}

// Message writes a bodyless envelope.
func Message(c *gin.Context, message string, code int) {
	JSON(c, message, gin.H{}, code)
}

// ValidationFailed writes the 422 envelope with per-field messages.
func ValidationFailed(c *gin.Context, errs interface{}) {
	JSON(c, "The given data was invalid", errs, http.StatusUnprocessableEntity)
}

// NotFound writes the 404 envelope.
func NotFound(c *gin.Context) {
	Message(c, "Resource not found", http.StatusNotFound)
}

// Unauthorized writes the 403 envelope. No route triggers this yet; it is
// reserved for when authentication lands.
func Unauthorized(c *gin.Context) {
	Message(c, "Unauthorized", http.StatusForbidden)
}

// Internal writes the 500 envelope. In release mode the underlying error
// stays out of the response; otherwise the message and call site are
// echoed back to ease debugging.
func Internal(c *gin.Context, err error) {
	if gin.Mode() == gin.ReleaseMode {
		Message(c, "Internal server error", http.StatusInternalServerError)
		return
	}

	_, file, line, _ := runtime.Caller(1)
	JSON(c, err.Error(), gin.H{
		"file": file,
		"line": line,
	}, http.StatusInternalServerError)
}
