// Package response defines the error envelope shared by all HTTP handlers.
package response

// StatusFail marks client-side failures (4xx), StatusError server-side
// faults (5xx).
const (
	StatusFail  = "fail"
	StatusError = "error"
)

// ErrorBody is the JSON shape returned for every failed request. Stack is
// only populated when the server runs in debug mode.
type ErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// StatusLabel maps an HTTP status code to the envelope's status field.
func StatusLabel(httpCode int) string {
	if httpCode >= 400 && httpCode < 500 {
		return StatusFail
	}
	return StatusError
}
