package interfaces

import "context"

// GraphvizService rasterizes DOT text via the external dot binary.
// Failures surface as models.ErrCollaboratorUnavailable; callers degrade
// to textual output instead of propagating.
type GraphvizService interface {
	// Available reports whether the dot binary was found on PATH.
	Available() bool

	// Convert renders DOT text to the given format ("png" or "svg").
	// The invocation is bounded by the configured timeout and killed on
	// expiry.
	Convert(ctx context.Context, dot string, format string) ([]byte, error)
}

// PyTMRunner executes generated PyTM code with the external python
// interpreter. Same degradation contract as GraphvizService.
type PyTMRunner interface {
	// Available reports whether a python interpreter was found on PATH.
	Available() bool

	// Run writes code to a scratch file and executes it with the given
	// pytm arguments ("--list", "--dfd"), returning stdout.
	Run(ctx context.Context, code string, args ...string) (string, error)
}
