package errors

import "net/http"

// ErrorResponse is the envelope every failed request serializes to.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody is the client-visible slice of an AppError. HTTPStatus and
// Cause never cross the wire.
type ErrorBody struct {
	Code      ErrorCode      `json:"code"`
	Message   string         `json:"message"`
	Retryable bool           `json:"retryable"`
	Details   map[string]any `json:"details,omitempty"`
}

// ToResponse projects the error into its wire envelope.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: ErrorBody{
		Code:      e.Code,
		Message:   e.Message,
		Retryable: e.Retryable,
		Details:   e.Details,
	}}
}

// ResponseFor maps any error to an HTTP status and wire envelope. An error
// that is not an AppError is reported as an opaque internal failure.
func ResponseFor(err error) (int, ErrorResponse) {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus, appErr.ToResponse()
	}
	return http.StatusInternalServerError, Internal(err).ToResponse()
}
