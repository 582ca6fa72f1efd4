package apierror

import (
	"net/http"
	"time"
)

type (
	// Response is the single-message error envelope.
	Response struct {
		Code      int       `json:"code"`
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
		Message   string    `json:"message"`
		Method    string    `json:"method"`
		Path      string    `json:"path"`
	}

	// MultiResponse carries the accumulated validation messages in
	// discovery order.
	MultiResponse struct {
		Code      int       `json:"code"`
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
		Messages  []string  `json:"messages"`
		Method    string    `json:"method"`
		Path      string    `json:"path"`
	}
)

// New stamps the envelope at render time; status is the reason phrase
// of the code.
func New(code int, message, method, path string) Response {
	return Response{
		Code:      code,
		Status:    http.StatusText(code),
		Timestamp: time.Now(),
		Message:   message,
		Method:    method,
		Path:      path,
	}
}

func NewMulti(code int, messages []string, method, path string) MultiResponse {
	return MultiResponse{
		Code:      code,
		Status:    http.StatusText(code),
		Timestamp: time.Now(),
		Messages:  messages,
		Method:    method,
		Path:      path,
	}
}
