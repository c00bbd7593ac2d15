package order

import (
	"fmt"
	"strings"

	"orderpanel/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// State transitions:
//
//	Pending ──> Processing ──> Done
//	   │            │
//	   └────────────┴──> Cancelled
//
// Done and Cancelled are terminal. Status values are persisted as their
// string form, so the constants double as the storage representation.
type Status string

const (
	// Pending is the initial status of every new order.
	Pending Status = "Pending"
	// Processing means an operator has started fulfilling the order.
	Processing Status = "Processing"
	// Done means the order was fulfilled. Terminal.
	Done Status = "Done"
	// Cancelled means the order was abandoned. Terminal.
	Cancelled Status = "Cancelled"
)

// successors is the adjacency table of the lifecycle.
var successors = map[Status][]Status{
	Pending:    {Processing, Cancelled},
	Processing: {Done, Cancelled},
	Done:       {},
	Cancelled:  {},
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Processing, Done, Cancelled}
}

// ParseStatus converts external input (query strings, stored values) into a
// Status. Matching ignores letter case and surrounding whitespace.
//
// Returns:
//   - the canonical Status on success
//   - a ValueIsInvalidError if raw names no known status
func ParseStatus(raw string) (Status, error) {
	trimmed := strings.TrimSpace(raw)
	for _, s := range AllStatuses() {
		if strings.EqualFold(string(s), trimmed) {
			return s, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", raw))
}

// Validate checks that s is one of the four known statuses.
func (s Status) Validate() error {
	if _, ok := successors[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the status name.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	next, ok := successors[s]
	return ok && len(next) == 0
}

// Successors returns the statuses reachable from s in one step. The result is
// what an operator view should offer as actions.
func (s Status) Successors() []Status {
	next := successors[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether target is an allowed successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range successors[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates a move from s to target.
//
// Returns:
//   - (target, nil) when the move is in the adjacency table
//   - a ValueIsInvalidError when either side is not a known status
//   - an InvalidTransitionError for a known status that is not a successor,
//     which covers every attempt to leave Done or Cancelled
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	if err := target.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(target) {
		if s.IsTerminal() {
			return "", errs.NewInvalidTransitionErrorWithCause(
				s.String(), target.String(), fmt.Errorf("%s is a terminal status", s),
			)
		}
		return "", errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
