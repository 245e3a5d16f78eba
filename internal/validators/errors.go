package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("server name is required")
	ErrInvalidTransport = errors.New("transport must be stdio, sse or streamable-http")
	ErrMissingCommand   = errors.New("stdio transport requires a command")
	ErrMissingURL       = errors.New("network transport requires a url")
	ErrInvalidURL       = errors.New("url must be a valid http(s) address")
	ErrEmptyEnvKey      = errors.New("environment variable names cannot be empty")
)
