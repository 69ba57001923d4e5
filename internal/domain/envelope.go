package domain

import "net/http"

// Envelope is the response shape every handler returns. The status code is
// duplicated into the body because existing callers of the original API read
// statusCode from the payload, not from the transport.
type Envelope struct {
	StatusCode        int    `json:"statusCode"`
	Message           string `json:"message,omitempty"`
	Data              any    `json:"data,omitempty"`
	UpdatedAttributes any    `json:"updatedAttributes,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{StatusCode: http.StatusOK, Data: data}
}

func OKMessage(message string, data any) Envelope {
	return Envelope{StatusCode: http.StatusOK, Message: message, Data: data}
}

func Fail(statusCode int, message string) Envelope {
	return Envelope{StatusCode: statusCode, Message: message}
}
