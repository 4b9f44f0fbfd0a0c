// FILE: internal/pkg/serverutils/response.go
package serverutils

import "affiliate-hub-be/internal/pkg/apperror"

// Response is the canonical success envelope: one schema per operation,
// tagged with Ok, no shape-sniffing on the client side.
type Response[T any] struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Value   T      `json:"value,omitempty"`
}

// ErrorBody is the canonical failure envelope.
type ErrorBody struct {
	Ok     bool          `json:"ok"`
	Error  apperror.Kind `json:"error"`
	Reason string        `json:"reason"`
	Field  string        `json:"field,omitempty"`
}

func SuccessResponse[T any](message string, value T) Response[T] {
	return Response[T]{Ok: true, Message: message, Value: value}
}

func ErrorResponse(kind apperror.Kind, reason string) ErrorBody {
	return ErrorBody{Ok: false, Error: kind, Reason: reason}
}
