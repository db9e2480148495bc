// Package clipboard writes copy payloads to the system clipboard.
package clipboard

import (
	"context"
	"log/slog"

	"github.com/atotto/clipboard"

	"pet_market/internal/domain"
	"pet_market/pkg/contextx"
	"pet_market/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Writer func(text string) error

type System struct {
	write       Writer
	unsupported bool
}

type Option func(*System)

// WithWriter replaces the system clipboard, e.g. in headless environments.
func WithWriter(write Writer) Option {
	return func(s *System) {
		s.write = write
		s.unsupported = false
	}
}

func NewSystem(opts ...Option) *System {
	s := &System{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Copy fails with CopyFailed when the clipboard cannot be written.
func (s *System) Copy(ctx context.Context, text string) error {
	if s.unsupported {
		return domain.NewError(errcodes.CopyFailed, "clipboard is not supported on this system")
	}

	if err := s.write(text); err != nil {
		return domain.WrapError(err, errcodes.CopyFailed, "write clipboard")
	}

	logger(ctx).DebugContext(ctx, "copied to clipboard", slog.Int("length", len(text)))

	return nil
}
