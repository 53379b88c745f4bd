package pagingcarousel

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user backed out of the carousel.
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrPaneCountMismatch is the panic value of NewContainer when the pane
	// and item counts differ.
	ErrPaneCountMismatch = errors.New("pane count does not match navigation item count")

	// ErrItemCountMismatch rejects a navigation update that would break the
	// one-item-per-pane pairing.
	ErrItemCountMismatch = errors.New("navigation item count does not match pane count")
)

// InfrastructureError represents a framework-level error that indicates
// something is wrong underneath the carousel (SDL failed, font missing,
// texture upload failed). These errors are typically fatal.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pagingcarousel: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pagingcarousel: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
