package config

import "errors"

var (
	errUnknownMode             = errors.New("unknown deployment mode")
	errInvalidGatewayURL       = errors.New("invalid gateway base url")
	errStartupSlowerThanNormal = errors.New("startup interval must not exceed normal interval")
)
