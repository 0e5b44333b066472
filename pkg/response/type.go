package response

import (
	"encoding/json"
	"time"
)

// Resp is the envelope every endpoint returns: error_code 0 with data
// on success, non-zero with a message (and optional field errors)
// otherwise.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date marshals as a bare calendar date (DateFormat), the same
// YYYY-MM-DD shape parsed event dates travel in.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateFormat))
}

// DateTime marshals as DateTimeFormat in local time.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
