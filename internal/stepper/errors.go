package stepper

import "fmt"

// NavigationError reports a rejected forward navigation and which step blocks
// it.
type NavigationError struct {
	Target     int
	BlockedBy  int
	Section    string
	ErrorCount int
	Message    string
}

func (e *NavigationError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("cannot navigate to step %d: %s (step %d, %s, %d errors)",
			e.Target, e.Message, e.BlockedBy, e.Section, e.ErrorCount)
	}
	return fmt.Sprintf("cannot navigate to step %d: %s", e.Target, e.Message)
}
