package query

import (
	"fmt"
)

// ValidationError indicates that the set under test disagreed with the
// reference oracle on a membership query. It is fatal for the run: output
// after a disagreement would be unreliable.
type ValidationError struct {
	Value uint32 // Queried value
	Got   bool   // Answer from the set under test
	Want  bool   // Answer from the reference oracle
}

// Error returns the diagnostic identifying the offending value and the
// expected membership result.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: contains(%d) = %t, should be %t", e.Value, e.Got, e.Want)
}
