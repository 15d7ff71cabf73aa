package system

import "context"

// NewQueryWithRunner creates a Query whose command execution is replaced
// by fn. Test-only.
func NewQueryWithRunner(fn func(ctx context.Context, name string, args ...string) ([]byte, error)) *Query {
	return &Query{run: fn}
}
