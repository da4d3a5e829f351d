package datum

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for datum events.
var (
	SignalMarshalStart    = capitan.NewSignal("datum.marshal.start", "Marshal operation beginning")
	SignalMarshalComplete = capitan.NewSignal("datum.marshal.complete", "Marshal operation finished")
	SignalParseStart      = capitan.NewSignal("datum.parse.start", "Parse operation beginning")
	SignalParseComplete   = capitan.NewSignal("datum.parse.complete", "Parse operation finished")
)

// Keys for typed event data.
var (
	KeyKind     = capitan.NewStringKey("kind")
	KeySize     = capitan.NewIntKey("size")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitMarshalStart emits an event when serialization begins.
func emitMarshalStart(ctx context.Context, kind string) {
	capitan.Emit(ctx, SignalMarshalStart,
		KeyKind.Field(kind),
	)
}

// emitMarshalComplete emits an event when serialization finishes.
func emitMarshalComplete(ctx context.Context, kind string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyKind.Field(kind),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalMarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalMarshalComplete, fields...)
	}
}

// emitParseStart emits an event when parsing begins. Size is zero for
// stream input whose length is unknown up front.
func emitParseStart(ctx context.Context, size int) {
	capitan.Emit(ctx, SignalParseStart,
		KeySize.Field(size),
	)
}

// emitParseComplete emits an event when parsing finishes.
func emitParseComplete(ctx context.Context, kind string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyKind.Field(kind),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalParseComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalParseComplete, fields...)
	}
}
