package main

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func NewLogger(conf LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(conf.Level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(ErrConfiguration, "log level: %v", err)
	}

	if conf.Format == "text" {
		return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = w
			cw.TimeFormat = time.RFC3339
		})).Level(level).With().Timestamp().Logger(), nil
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
