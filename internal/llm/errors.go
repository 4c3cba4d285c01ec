package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// RateLimitError reports a 429 from the provider. RetryAfter is the
// provider's suggested wait, zero when it gave none.
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("model rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("model rate limited: %v", e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// BadReplyError reports model output that failed to parse as JSON or
// failed the schema check. Raw keeps the offending output for the log.
type BadReplyError struct {
	Raw json.RawMessage
	Err error
}

func (e *BadReplyError) Error() string {
	return fmt.Sprintf("unusable model reply: %v", e.Err)
}

func (e *BadReplyError) Unwrap() error { return e.Err }

// UnavailableError reports that the provider could not be reached or
// answered with a server error.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return "model provider unavailable"
	}
	return fmt.Sprintf("model provider unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
