package apikeys

import "errors"

var (
	ErrProviderInvalid = errors.New("provider name must be 2-100 characters")
	ErrKeyInvalid      = errors.New("api key must be 10-100 characters")
	ErrProviderUnknown = errors.New("unknown provider")
	ErrKeyNotFound     = errors.New("no api key stored for provider")
)
