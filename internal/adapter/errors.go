package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrMalformedResponse marks a list response that is neither a valid
	// envelope nor a bare server array.
	ErrMalformedResponse = errors.New("malformed gateway response")

	// ErrRejected marks a 2xx response whose envelope carries
	// success == false. The wrapped message is the gateway-provided reason.
	ErrRejected = errors.New("gateway rejected request")
)
