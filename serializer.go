package datum

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxNestingDepth bounds recursion on both the write and the parse side so
// pathological trees fail with ErrDepthExceeded instead of overflowing the
// call stack.
const maxNestingDepth = 10000

// serializer walks a Value and emits JSON text to the sink. It holds only
// immutable configuration and a path stack for error reporting, so distinct
// instances may run concurrently over shared trees.
type serializer struct {
	w    io.Writer
	opts Options
	path []string
}

func (s *serializer) writeString(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}

// newline emits the configured line terminator. No-op in compact mode.
func (s *serializer) newline() error {
	nl := s.opts.newline()
	if nl == "" {
		return nil
	}
	return s.writeString(nl)
}

// indent emits 4 spaces per nesting level. No-op in compact mode.
func (s *serializer) indent(level int) error {
	if !s.opts.PrettyPrint || level == 0 {
		return nil
	}
	return s.writeString(strings.Repeat("    ", level))
}

func (s *serializer) pushKey(key string) {
	s.path = append(s.path, "."+key)
}

func (s *serializer) pushIndex(i int) {
	s.path = append(s.path, "["+strconv.Itoa(i)+"]")
}

func (s *serializer) pop() {
	s.path = s.path[:len(s.path)-1]
}

// errAt wraps sentinel with the path of the value currently being written.
func (s *serializer) errAt(sentinel error) error {
	return newWriteError(sentinel, "$"+strings.Join(s.path, ""))
}

// writeValue dispatches over the closed Value union. A nil interface is
// written as null.
func (s *serializer) writeValue(v Value, level int) error {
	if level > maxNestingDepth {
		return s.errAt(ErrDepthExceeded)
	}
	if v == nil {
		v = Null{}
	}
	switch v := v.(type) {
	case Null:
		return s.writeString("null")
	case Bool:
		if v {
			return s.writeString("true")
		}
		return s.writeString("false")
	case Int:
		return s.writeString(strconv.FormatInt(int64(v), 10))
	case Double:
		return s.writeDouble(float64(v))
	case String:
		return s.writeQuoted(string(v))
	case Bytes:
		return s.errAt(ErrDataNotSupported)
	case Array:
		return s.writeArray(v, level)
	case Object:
		return s.writeObject(v, level)
	default:
		// Unreachable: the union is sealed.
		return s.errAt(fmt.Errorf("unsupported value type %T", v))
	}
}

// writeDouble emits the shortest decimal form that round-trips to the same
// double. Non-finite values have no JSON representation.
func (s *serializer) writeDouble(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return s.errAt(ErrInvalidNumber)
	}
	return s.writeString(strconv.FormatFloat(f, 'g', -1, 64))
}

const hexDigits = "0123456789abcdef"

// writeQuoted emits text between double quotes with RFC 8259 escaping for
// quotes, backslashes, and control characters. Multi-byte UTF-8 sequences
// pass through unchanged.
func (s *serializer) writeQuoted(text string) error {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte('"')
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\b':
			b.WriteString(`\b`)
		case c == '\f':
			b.WriteString(`\f`)
		case c < 0x20:
			b.WriteString(`\u00`)
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xf])
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return s.writeString(b.String())
}

// skipped reports whether an entry is omitted under SkipNull.
func (s *serializer) skipped(v Value) bool {
	return s.opts.SkipNull && kindOf(v) == KindNull
}

func (s *serializer) writeArray(a Array, level int) error {
	if len(a) == 0 {
		return s.writeString("[]")
	}
	if err := s.writeString("["); err != nil {
		return err
	}
	emitted := 0
	for i, elem := range a {
		if s.skipped(elem) {
			continue
		}
		// Comma placement counts emitted elements only, so skipped nulls
		// never produce leading or doubled separators.
		if emitted > 0 {
			if err := s.writeString(","); err != nil {
				return err
			}
		}
		if err := s.newline(); err != nil {
			return err
		}
		if err := s.indent(level + 1); err != nil {
			return err
		}
		s.pushIndex(i)
		if err := s.writeValue(elem, level+1); err != nil {
			return err
		}
		s.pop()
		emitted++
	}
	if err := s.newline(); err != nil {
		return err
	}
	if err := s.indent(level); err != nil {
		return err
	}
	return s.writeString("]")
}

func (s *serializer) writeObject(o Object, level int) error {
	if len(o) == 0 {
		return s.writeString("{}")
	}
	if err := s.writeString("{"); err != nil {
		return err
	}
	emitted := 0
	for key, entry := range o {
		if s.skipped(entry) {
			continue
		}
		if emitted > 0 {
			if err := s.writeString(","); err != nil {
				return err
			}
		}
		if err := s.newline(); err != nil {
			return err
		}
		if err := s.indent(level + 1); err != nil {
			return err
		}
		if err := s.writeQuoted(key); err != nil {
			return err
		}
		sep := ":"
		if s.opts.PrettyPrint {
			sep = ": "
		}
		if err := s.writeString(sep); err != nil {
			return err
		}
		s.pushKey(key)
		if err := s.writeValue(entry, level+1); err != nil {
			return err
		}
		s.pop()
		emitted++
	}
	if err := s.newline(); err != nil {
		return err
	}
	if err := s.indent(level); err != nil {
		return err
	}
	return s.writeString("}")
}

// countingWriter tracks bytes written for operation telemetry.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
