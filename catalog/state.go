package catalog

import (
	"github.com/samber/mo"

	"github.com/s0up4200/marquee/tmdb"
)

// Status is the three-way load status of a category
type Status int

const (
	// StatusNotLoaded means no fetch has completed yet
	StatusNotLoaded Status = iota
	// StatusLoaded means the latest completed fetch succeeded
	StatusLoaded
	// StatusFailed means the latest completed fetch failed
	StatusFailed
)

// String returns the string representation of a Status
func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "LOADED"
	case StatusFailed:
		return "FAILED"
	default:
		return "NOT_LOADED"
	}
}

// Outcome is the value pushed into a category cell: the decoded titles or
// the failure that replaced them.
type Outcome = mo.Result[[]tmdb.Title]

// State is a snapshot of one category cell
type State struct {
	Category Category
	Status   Status
	Titles   []tmdb.Title
	Err      error
}

// Kind returns the failure kind, or KindUnknown when the state is not a failure
func (s State) Kind() tmdb.Kind {
	if s.Status != StatusFailed {
		return tmdb.KindUnknown
	}
	return tmdb.KindOf(s.Err)
}

// stateOf folds a cell's current value into a State
func stateOf(category Category, current mo.Option[Outcome]) State {
	outcome, ok := current.Get()
	if !ok {
		return State{Category: category, Status: StatusNotLoaded}
	}
	return stateFromOutcome(category, outcome)
}

func stateFromOutcome(category Category, outcome Outcome) State {
	titles, err := outcome.Get()
	if err != nil {
		return State{Category: category, Status: StatusFailed, Err: err}
	}
	return State{Category: category, Status: StatusLoaded, Titles: titles}
}
