//go:build nowindow

package window

import (
	"context"

	"github.com/taigrr/flatshade/pkg/viewer"
)

// Run reports ErrUnavailable.
func Run(ctx context.Context, v *viewer.Viewer, cfg Config) error {
	return ErrUnavailable
}
