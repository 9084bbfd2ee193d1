package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil err yields an empty Attr, which
// slog omits.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records id under "request_id". An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Preset records the name of the option preset a request used.
func Preset(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("preset", name)
}

// Input records a raw field value together with its outcome.
func Input(raw string, valid bool) slog.Attr {
	return slog.Group("input", slog.String("raw", raw), slog.Bool("valid", valid))
}
