package contract

import "errors"

var (
	// ErrOperationNotFound is returned when the document lacks the requested
	// operation.
	ErrOperationNotFound = errors.New("contract: operation not found")
	// ErrHTTPDisabled is returned when a URL source is loaded without an HTTP
	// client.
	ErrHTTPDisabled = errors.New("contract: http support disabled")
	// ErrNoRequestSchema is returned when the operation has no JSON request
	// body schema.
	ErrNoRequestSchema = errors.New("contract: operation has no json request schema")
)
