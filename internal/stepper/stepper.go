// Package stepper gates navigation through the profile wizard by the live
// validity of earlier steps.
package stepper

import (
	"github.com/jonathan/profile-builder/internal/types"
	"github.com/jonathan/profile-builder/internal/validation"
)

// Validator reports the current error count for one step. Steps registered
// without a validator are always navigable.
type Validator func(types.Profile) int

// Step is one wizard step, named after the profile section it edits.
type Step struct {
	Section   string
	Validator Validator
}

// DefaultSteps returns the ten wizard steps in their fixed order, each wired
// to its section's validator.
func DefaultSteps() []Step {
	steps := make([]Step, 0, len(types.SectionOrder))
	for _, section := range types.SectionOrder {
		section := section
		steps = append(steps, Step{
			Section: section,
			Validator: func(p types.Profile) int {
				return validation.StepErrorCount(p, section)
			},
		})
	}
	return steps
}

// Stepper tracks the active wizard step. Gating is recomputed against the
// live profile on every navigation attempt; nothing is cached.
type Stepper struct {
	steps   []Step
	current int
}

// New starts a stepper on step 0.
func New(steps []Step) *Stepper {
	return &Stepper{steps: steps}
}

// Current returns the active step index.
func (s *Stepper) Current() int {
	return s.current
}

// Len returns the number of steps.
func (s *Stepper) Len() int {
	return len(s.steps)
}

// Section returns the section name of step i, or "" when out of range.
func (s *Stepper) Section(i int) string {
	if i < 0 || i >= len(s.steps) {
		return ""
	}
	return s.steps[i].Section
}

// CanNavigate reports whether a direct jump to the target step is permitted:
// every step strictly before it that has a validator must report zero errors
// against the given profile. The rule is not "complete the current step"; a
// user can jump several steps ahead as long as everything earlier is clean.
func (s *Stepper) CanNavigate(p types.Profile, target int) bool {
	if target < 0 || target >= len(s.steps) {
		return false
	}
	for i := 0; i < target; i++ {
		if s.steps[i].Validator == nil {
			continue
		}
		if s.steps[i].Validator(p) > 0 {
			return false
		}
	}
	return true
}

// Go moves to the target step. Moving backward is always allowed regardless
// of any step's validity; moving forward applies the CanNavigate rule and
// returns a NavigationError naming the first blocking step.
func (s *Stepper) Go(p types.Profile, target int) error {
	if target < 0 || target >= len(s.steps) {
		return &NavigationError{Target: target, Message: "step out of range"}
	}
	if target <= s.current {
		s.current = target
		return nil
	}
	for i := 0; i < target; i++ {
		if s.steps[i].Validator == nil {
			continue
		}
		if n := s.steps[i].Validator(p); n > 0 {
			return &NavigationError{
				Target:     target,
				BlockedBy:  i,
				Section:    s.steps[i].Section,
				ErrorCount: n,
				Message:    "earlier step has errors",
			}
		}
	}
	s.current = target
	return nil
}

// Badges returns the per-step error counts displayed next to the step labels.
func (s *Stepper) Badges(p types.Profile) []int {
	out := make([]int, len(s.steps))
	for i, step := range s.steps {
		if step.Validator != nil {
			out[i] = step.Validator(p)
		}
	}
	return out
}
