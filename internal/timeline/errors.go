package timeline

import "errors"

var (
	ErrTextEmpty       = errors.New("timeline text is empty")
	ErrNoEvents        = errors.New("no events to create")
	ErrDateOrder       = errors.New("event end date is before start date")
	ErrProviderUnknown = errors.New("unknown provider")
	ErrNoAPIKey        = errors.New("no api key configured for provider")
)
