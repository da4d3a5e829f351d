package datum

import (
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// parseConfig carries grammar-engine options through to jsoniter untouched.
type parseConfig struct {
	api      jsoniter.API
	maxDepth int
}

// ParseOption configures a parse operation.
type ParseOption func(*parseConfig)

// WithConfig selects the jsoniter configuration driving tokenization.
// Defaults to jsoniter.ConfigDefault.
func WithConfig(api jsoniter.API) ParseOption {
	return func(c *parseConfig) {
		c.api = api
	}
}

// WithMaxDepth overrides the nesting depth limit for this parse. Inputs
// nested deeper fail with ErrDepthExceeded.
func WithMaxDepth(depth int) ParseOption {
	return func(c *parseConfig) {
		c.maxDepth = depth
	}
}

func newParseConfig(opts []ParseOption) parseConfig {
	cfg := parseConfig{
		api:      jsoniter.ConfigDefault,
		maxDepth: maxNestingDepth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// decoder drives the Builder callbacks from grammar-engine events. It owns
// no parsing logic: jsoniter recognizes every token and this layer only maps
// recognized primitives to construction calls.
type decoder struct {
	iter     *jsoniter.Iterator
	build    Builder
	maxDepth int
	err      error
}

func (d *decoder) readValue(depth int) Value {
	if d.err != nil {
		return nil
	}
	if depth > d.maxDepth {
		d.err = ErrDepthExceeded
		return nil
	}
	switch d.iter.WhatIsNext() {
	case jsoniter.NilValue:
		d.iter.ReadNil()
		return d.build.Null()
	case jsoniter.BoolValue:
		return d.build.Bool(d.iter.ReadBool())
	case jsoniter.StringValue:
		return d.build.String(d.iter.ReadString())
	case jsoniter.NumberValue:
		return d.readNumber()
	case jsoniter.ArrayValue:
		var elems []Value
		ok := d.iter.ReadArrayCB(func(*jsoniter.Iterator) bool {
			elems = append(elems, d.readValue(depth+1))
			return d.err == nil
		})
		if d.err == nil && !ok {
			d.fail()
		}
		if d.err != nil {
			return nil
		}
		return d.build.Array(elems)
	case jsoniter.ObjectValue:
		var members []Member
		ok := d.iter.ReadObjectCB(func(_ *jsoniter.Iterator, key string) bool {
			members = append(members, Member{Key: key, Value: d.readValue(depth + 1)})
			return d.err == nil
		})
		if d.err == nil && !ok {
			d.fail()
		}
		if d.err != nil {
			return nil
		}
		return d.build.Object(members)
	default:
		d.fail()
		return nil
	}
}

// fail records the engine's own error, unchanged. The engine owns the parse
// error taxonomy; this layer performs no translation.
func (d *decoder) fail() {
	if d.iter.Error == nil {
		d.iter.ReportError("readValue", "invalid value")
	}
	d.err = d.iter.Error
}

// readNumber maps the engine's numeric token to the Number union. A mantissa
// dot or exponent in the token text selects the double case; integer tokens
// overflowing int64 fall back to double.
func (d *decoder) readNumber() Value {
	n := d.iter.ReadNumber()
	if d.iter.Error != nil && d.iter.Error != io.EOF {
		d.err = d.iter.Error
		return nil
	}
	text := n.String()
	if !strings.ContainsAny(text, ".eE") {
		if i, err := n.Int64(); err == nil {
			return d.build.Number(IntNumber(i))
		}
	}
	f, err := n.Float64()
	if err != nil {
		d.err = err
		return nil
	}
	return d.build.Number(DoubleNumber(f))
}

// parseBytes runs the engine over an owned byte slice.
func parseBytes(cfg parseConfig, build Builder, data []byte) (Value, error) {
	d := &decoder{
		iter:     jsoniter.ParseBytes(cfg.api, data),
		build:    build,
		maxDepth: cfg.maxDepth,
	}
	return d.run()
}

// parseReader runs the engine over a stream, advancing the reader position.
func parseReader(cfg parseConfig, build Builder, r io.Reader) (Value, error) {
	d := &decoder{
		iter:     jsoniter.Parse(cfg.api, r, 512),
		build:    build,
		maxDepth: cfg.maxDepth,
	}
	return d.run()
}

func (d *decoder) run() (Value, error) {
	v := d.readValue(0)
	if d.err != nil {
		return nil, d.err
	}
	if err := d.iter.Error; err != nil && err != io.EOF {
		return nil, err
	}
	// A complete value must exhaust the input. WhatIsNext reports
	// InvalidValue with io.EOF recorded only on a clean end.
	if d.iter.WhatIsNext() != jsoniter.InvalidValue || d.iter.Error == nil {
		return nil, ErrTrailingData
	}
	return v, nil
}
