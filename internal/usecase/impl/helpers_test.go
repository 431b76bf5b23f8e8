package impl

import (
	"io"
	"log/slog"

	"tourdesk/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(restrictTourDelete bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Booking: &config.BookingConfig{
			RestrictTourDelete: restrictTourDelete,
		},
	}
}
