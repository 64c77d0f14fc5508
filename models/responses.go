package models

import "time"

// AccessToken is the success payload of the token endpoint.
type AccessToken struct {
	// AccessToken is the compact signed JWT string.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer"; clients echo it back in the
	// Authorization header scheme.
	TokenType string `json:"token_type"`
}

// Envelope is the uniform body of every non-2xx response. All errors raised
// anywhere in the request pipeline are rendered into this single shape so
// that clients never see transport- or layer-specific failure formats.
type Envelope struct {
	// Status is always the literal "error".
	Status string `json:"status"`

	// Message is the human-readable failure description. It must never
	// contain secret material or internal details.
	Message string `json:"message"`

	// Path is the request path that produced the error.
	Path string `json:"path"`

	// Code duplicates the HTTP status code in the body for clients that
	// do not inspect transport-level status.
	Code int `json:"code"`

	// Timestamp is the server time the error was rendered, RFC 3339.
	Timestamp time.Time `json:"timestamp"`
}

// ItemPublic is the public projection of an [Item]: the price is presented
// tax-inclusive and internal fields are hidden.
type ItemPublic struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// ItemResponse is a structured item payload with an accompanying message.
type ItemResponse struct {
	Message string      `json:"message"`
	Item    *ItemPublic `json:"item,omitempty"`
}

// Message is a minimal informational response body.
type Message struct {
	Message string `json:"message"`
}
