// Package datum converts between tagged structured data values and JSON text.
//
// The package is built around Value, a closed union of the JSON-compatible
// variants (null, bool, 64-bit int, double, string, array, object) plus a raw
// Bytes variant for binary payloads that have no JSON form. Values are
// immutable trees constructed bottom-up, either directly with composite
// literals or by parsing JSON input.
//
// # Serialization
//
// Marshal walks a Value and emits JSON text under a small set of formatting
// options:
//
//	doc := datum.Object{
//	    "name":  datum.String("sensor-7"),
//	    "reads": datum.Array{datum.Int(1), datum.Null{}, datum.Double(2.5)},
//	}
//
//	out, err := datum.Marshal(doc, datum.Options{PrettyPrint: true})
//
// SkipNull omits null entries entirely, with comma placement tracking only
// the elements actually emitted. WindowsLineEndings switches pretty-printed
// newlines to CRLF and implies PrettyPrint. A Bytes value fails with
// ErrDataNotSupported and a non-finite double with ErrInvalidNumber; both
// abort the call, and any prefix already written to the sink must be
// discarded.
//
// # Parsing
//
// Tokenization is delegated to the jsoniter grammar engine; this package
// supplies only the Builder callbacks that fold recognized primitives into
// Values:
//
//	v, err := datum.Parse([]byte(`{"a":1,"b":[true,null,2.5]}`))
//
// Engine configuration passes through untouched via WithConfig, and engine
// errors (malformed input, unexpected end) propagate unchanged.
//
// # Struct bridge
//
// FromStruct converts a Go struct to an Object using sentinel metadata and
// json tags; FromGo converts arbitrary Go primitives and containers.
//
// # Fingerprints
//
// Fingerprint produces a deterministic hex digest of a Value from a
// canonical byte form with sorted object keys, so equal trees always hash
// equally regardless of map iteration order.
//
// All operations are pure traversals of immutable inputs and are safe for
// concurrent use without coordination.
package datum

import (
	"bytes"
	"context"
	"io"
	"time"
)

// Marshal serializes v as JSON text under opts.
//
// On error the returned bytes are nil; the error unwraps to one of the
// package sentinels via errors.Is.
func Marshal(v Value, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(v, opts, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalString serializes v as JSON text under opts.
func MarshalString(v Value, opts Options) (string, error) {
	out, err := Marshal(v, opts)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Write serializes v as JSON text under opts into the caller-provided sink.
// The sink may be any append-only text destination: a file, an in-memory
// buffer, a socket.
//
// On error the sink may already contain a prefix of the output, which the
// caller must treat as invalid and discard.
func Write(v Value, opts Options, w io.Writer) error {
	opts = opts.normalize()
	kind := kindOf(v).String()
	emitMarshalStart(context.Background(), kind)

	start := time.Now()
	cw := &countingWriter{w: w}
	s := &serializer{w: cw, opts: opts}
	err := s.writeValue(v, 0)

	emitMarshalComplete(context.Background(), kind, cw.n, time.Since(start), err)
	return err
}

// Parse builds a Value from JSON input using the standard construction set.
// The input bytes are owned by the caller and are not retained.
func Parse(data []byte, opts ...ParseOption) (Value, error) {
	return ParseWith(data, DefaultBuilder(), opts...)
}

// ParseString builds a Value from JSON input held in a string.
func ParseString(s string, opts ...ParseOption) (Value, error) {
	return ParseWith([]byte(s), DefaultBuilder(), opts...)
}

// ParseReader builds a Value from JSON input streamed from r, consuming the
// reader up to the end of the first complete value plus any trailing
// whitespace.
func ParseReader(r io.Reader, opts ...ParseOption) (Value, error) {
	cfg := newParseConfig(opts)
	emitParseStart(context.Background(), 0)

	start := time.Now()
	v, err := parseReader(cfg, DefaultBuilder(), r)

	emitParseComplete(context.Background(), kindOf(v).String(), 0, time.Since(start), err)
	return v, err
}

// ParseWith builds a Value from JSON input using a caller-supplied Builder.
// The grammar engine recognizes every token; build only constructs values.
func ParseWith(data []byte, build Builder, opts ...ParseOption) (Value, error) {
	cfg := newParseConfig(opts)
	emitParseStart(context.Background(), len(data))

	start := time.Now()
	v, err := parseBytes(cfg, build, data)

	emitParseComplete(context.Background(), kindOf(v).String(), len(data), time.Since(start), err)
	return v, err
}
