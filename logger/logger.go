// Package logger implements a contextual, structured logger over zerolog.
package logger

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config contains logger configuration.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Pretty selects human-readable console output.
	Pretty bool `yaml:"pretty"`
}

// Logger logs messages along with any fields carried in the context.
type Logger struct {
	zl zerolog.Logger
}

// New creates a Logger writing to writer.
func (cfg *Config) New(writer io.Writer) *Logger {

	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
	}

	return &Logger{
		zl: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

// Info logs at info level.
func (lgr *Logger) Info(ctx context.Context, msg string, kv ...any) {
	addFields(lgr.zl.Info(), ctx, kv).Msg(msg)
}

// Error logs at error level.
func (lgr *Logger) Error(ctx context.Context, msg string, err error, kv ...any) {
	addFields(lgr.zl.Error().Err(err), ctx, kv).Msg(msg)
}

// WithFields returns a copy of ctx carrying additional key/value pairs.
func WithFields(ctx context.Context, kv ...any) context.Context {

	prior, _ := ctx.Value(fieldsKey{}).([]any)

	fields := make([]any, 0, len(prior)+len(kv))
	fields = append(fields, prior...)
	fields = append(fields, kv...)

	return context.WithValue(ctx, fieldsKey{}, fields)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Info(ctx context.Context, msg string, kv ...any)             {}
func (Nop) Error(ctx context.Context, msg string, err error, kv ...any) {}

// unexported

type fieldsKey struct{}

func addFields(event *zerolog.Event, ctx context.Context, kv []any) *zerolog.Event {

	if ctx != nil {
		if fields, ok := ctx.Value(fieldsKey{}).([]any); ok {
			event = addPairs(event, fields)
		}
	}

	return addPairs(event, kv)
}

func addPairs(event *zerolog.Event, kv []any) *zerolog.Event {

	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kv[i])
		}

		var val any
		if i+1 < len(kv) {
			val = kv[i+1]
		}
		event = event.Interface(key, val)
	}

	return event
}
