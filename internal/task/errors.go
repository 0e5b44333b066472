package task

import "errors"

var (
	ErrTitleEmpty      = errors.New("task title is empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrListNotFound    = errors.New("task list not found")
	ErrTextEmpty       = errors.New("timeline text is empty")
	ErrProviderUnknown = errors.New("unknown provider")
	ErrNoAPIKey        = errors.New("no api key configured for provider")
	ErrPriorityInvalid = errors.New("priority must be high, medium or low")
)
