package validators

import (
	"context"
	"net/url"

	"github.com/mooons/mcphub/models"
)

const (
	FieldName      = "name"
	FieldTransport = "transport"
	FieldEndpoint  = "endpoint"
	FieldEnv       = "env"
)

const (
	TransportStdio          = "stdio"
	TransportSSE            = "sse"
	TransportStreamableHTTP = "streamable-http"
)

var allowedTransports = []string{
	TransportStdio,
	TransportSSE,
	TransportStreamableHTTP,
}

type ServerValidator struct {
}

func NewServerValidator() Validator {
	return &ServerValidator{}
}

func (v *ServerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ServerDetail:
		return v.validateServerDetail(ctx, value, fields...)
	case *models.ServerDetail:
		return v.validateServerDetail(ctx, *value, fields...)

	case models.Server:
		return v.validateServerDetail(ctx, models.ServerDetail{Server: value}, fields...)
	case *models.Server:
		return v.validateServerDetail(ctx, models.ServerDetail{Server: *value}, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidTransport(transport string) bool {
	for _, t := range allowedTransports {
		if transport == t {
			return true
		}
	}
	return false
}

func (v *ServerValidator) validateServerDetail(_ context.Context, srv models.ServerDetail, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldTransport, FieldEndpoint, FieldEnv}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if srv.Name == "" {
				return ErrEmptyName
			}
		case FieldTransport:
			if !isValidTransport(srv.Transport) {
				return ErrInvalidTransport
			}
		case FieldEndpoint:
			if err := v.validateEndpoint(srv); err != nil {
				return err
			}
		case FieldEnv:
			for key := range srv.Env {
				if key == "" {
					return ErrEmptyEnvKey
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEndpoint enforces the transport/endpoint pairing: stdio servers
// are launched by command, network servers are dialed by url.
func (v *ServerValidator) validateEndpoint(srv models.ServerDetail) error {
	switch srv.Transport {
	case TransportStdio:
		if srv.Command == "" {
			return ErrMissingCommand
		}
	case TransportSSE, TransportStreamableHTTP:
		if srv.URL == "" {
			return ErrMissingURL
		}
		u, err := url.Parse(srv.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ErrInvalidURL
		}
	}

	return nil
}
