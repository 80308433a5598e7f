package v1

import (
	"context"
	"errors"

	"github.com/vmunix/reelroll/internal/letterboxd"
	"github.com/vmunix/reelroll/internal/picker"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Picker is the watchlist/pick functionality the API exposes.
type Picker interface {
	Watchlist(ctx context.Context, username string, f picker.Filter) ([]letterboxd.Film, error)
	Pick(ctx context.Context, username string, opts picker.Options) (*picker.Pick, error)
}

// ServerDeps contains all dependencies for the API server.
type ServerDeps struct {
	// Required
	Picker Picker

	// Optional: nil disables /poster and poster enrichment
	Posters picker.PosterSource
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Picker == nil {
		return errors.Join(ErrMissingDependency, errors.New("picker is required"))
	}
	return nil
}
