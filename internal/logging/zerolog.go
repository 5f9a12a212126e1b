package logging

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the Logger interface. Key-value
// args are folded into zerolog fields; a dangling key without a value is
// logged under "!BADKEY" rather than dropped.
type ZerologLogger struct {
	l zerolog.Logger
}

func NewZerologLogger(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{l: l}
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	withFields(z.l.Debug(), args).Msg(msg)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	withFields(z.l.Info(), args).Msg(msg)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	withFields(z.l.Warn(), args).Msg(msg)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	withFields(z.l.Error(), args).Msg(msg)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.l.With()
	for i := 0; i+1 < len(args); i += 2 {
		c = c.Interface(keyOf(args[i]), args[i+1])
	}
	if len(args)%2 != 0 {
		c = c.Interface("!BADKEY", args[len(args)-1])
	}
	return &ZerologLogger{l: c.Logger()}
}

func withFields(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i+1 < len(args); i += 2 {
		e = e.Interface(keyOf(args[i]), args[i+1])
	}
	if len(args)%2 != 0 {
		e = e.Interface("!BADKEY", args[len(args)-1])
	}
	return e
}

func keyOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
