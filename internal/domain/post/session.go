package post

import "errors"

// Stage is the lifecycle stage of a compose session.
type Stage string

const (
	StageSetup     Stage = "setup"     // collecting text, targets, media
	StageReview    Stage = "review"    // draft validated, awaiting publish
	StagePublished Stage = "published" // terminal
)

// ErrInvalidTransition is returned when a stage transition is not allowed.
var ErrInvalidTransition = errors.New("invalid stage transition")

// ValidTransitions defines allowed stage transitions. Review may return
// to Setup for edits; re-entering Review then requires a fresh accepted
// validation.
var ValidTransitions = map[Stage][]Stage{
	StageSetup:     {StageReview},
	StageReview:    {StageSetup, StagePublished},
	StagePublished: {},
}

// IsTerminal reports whether the stage allows no further transitions.
func (s Stage) IsTerminal() bool {
	return s == StagePublished
}

// String returns the string representation of the stage.
func (s Stage) String() string {
	return string(s)
}

// CanTransitionTo checks whether a transition to target is valid.
func (s Stage) CanTransitionTo(target Stage) bool {
	validTargets, ok := ValidTransitions[s]
	if !ok {
		return false
	}
	for _, t := range validTargets {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionTo attempts the transition and returns an error if invalid.
func (s Stage) TransitionTo(target Stage) (Stage, error) {
	if !s.CanTransitionTo(target) {
		return s, ErrInvalidTransition
	}
	return target, nil
}
