package coordinator

import (
	"errors"
	"fmt"
)

// ErrProtocol marks a coordinator response that does not have the expected
// shape: a non-JSON block, a missing "Difficulty: " prefix or an unparsable
// difficulty value.
var ErrProtocol = errors.New("malformed coordinator response")

// SubmissionError is a non-2xx answer to a block submission. It is expected
// under concurrent mining (stale parent) and the driver treats it as
// recoverable: the next cycle refetches the tip.
type SubmissionError struct {
	StatusCode int
	Body       string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("block rejected with status %d: %s", e.StatusCode, e.Body)
}
