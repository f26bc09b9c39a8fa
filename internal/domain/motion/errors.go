package motion

import "errors"

var (
	// ErrNilInput is returned when no input source is supplied
	ErrNilInput = errors.New("motion: input source is required")
	// ErrNilBody is returned when no physics body is supplied
	ErrNilBody = errors.New("motion: physics body is required")
	// ErrNilSink is returned when no presentation sink is supplied
	ErrNilSink = errors.New("motion: presentation sink is required")
	// ErrInvalidTuning wraps every tuning validation failure
	ErrInvalidTuning = errors.New("motion: invalid tuning")
	// ErrCollaborator wraps a collaborator failure detected during a tick
	ErrCollaborator = errors.New("motion: collaborator unavailable")
)
