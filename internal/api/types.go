// Package api defines the JSON wire types shared by the HTTP transports.
package api

// ErrorResponse is returned for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// KeywordsResponse is the body of a successful analysis.
// Keywords is always an array; Message is set only when it is empty.
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
	Message  string   `json:"message,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Pipeline string `json:"pipeline,omitempty"`
}
