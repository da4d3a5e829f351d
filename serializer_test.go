package datum

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestMarshal_Scalars(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "null", v: Null{}, want: "null"},
		{name: "nil interface", v: nil, want: "null"},
		{name: "true", v: Bool(true), want: "true"},
		{name: "false", v: Bool(false), want: "false"},
		{name: "zero", v: Int(0), want: "0"},
		{name: "positive int", v: Int(42), want: "42"},
		{name: "negative int", v: Int(-7), want: "-7"},
		{name: "min int64", v: Int(math.MinInt64), want: "-9223372036854775808"},
		{name: "double", v: Double(2.5), want: "2.5"},
		{name: "negative double", v: Double(-0.25), want: "-0.25"},
		{name: "whole double", v: Double(3), want: "3"},
		{name: "string", v: String("hello"), want: `"hello"`},
		{name: "empty string", v: String(""), want: `""`},
		{name: "unicode string", v: String("héllo ☃"), want: `"héllo ☃"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalString(tt.v, Options{})
			if err != nil {
				t.Fatalf("MarshalString() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MarshalString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshal_StringEscaping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "quote", in: `say "hi"`, want: `"say \"hi\""`},
		{name: "backslash", in: `a\b`, want: `"a\\b"`},
		{name: "newline", in: "a\nb", want: `"a\nb"`},
		{name: "carriage return", in: "a\rb", want: `"a\rb"`},
		{name: "tab", in: "a\tb", want: `"a\tb"`},
		{name: "backspace", in: "a\bb", want: `"a\bb"`},
		{name: "form feed", in: "a\fb", want: `"a\fb"`},
		{name: "control", in: "a\x01b", want: `"a\u0001b"`},
		{name: "nul", in: "a\x00b", want: `"a\u0000b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalString(String(tt.in), Options{})
			if err != nil {
				t.Fatalf("MarshalString() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MarshalString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMarshal_EmptyContainers(t *testing.T) {
	opts := []Options{
		{},
		{PrettyPrint: true},
		{WindowsLineEndings: true},
		{SkipNull: true, PrettyPrint: true},
	}

	for _, o := range opts {
		got, err := MarshalString(Array{}, o)
		if err != nil {
			t.Fatalf("MarshalString(Array{}) error: %v", err)
		}
		if got != "[]" {
			t.Errorf("MarshalString(Array{}) with %+v = %q, want %q", o, got, "[]")
		}

		got, err = MarshalString(Object{}, o)
		if err != nil {
			t.Fatalf("MarshalString(Object{}) error: %v", err)
		}
		if got != "{}" {
			t.Errorf("MarshalString(Object{}) with %+v = %q, want %q", o, got, "{}")
		}
	}
}

func TestMarshal_SkipNull(t *testing.T) {
	arr := Array{Null{}, Int(1), Null{}, Int(2)}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "without skip", opts: Options{}, want: "[null,1,null,2]"},
		{name: "with skip", opts: Options{SkipNull: true}, want: "[1,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalString(arr, tt.opts)
			if err != nil {
				t.Fatalf("MarshalString() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MarshalString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshal_SkipNullEdges(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "leading null", v: Array{Null{}, Int(1)}, want: "[1]"},
		{name: "trailing null", v: Array{Int(1), Null{}}, want: "[1]"},
		{name: "consecutive nulls", v: Array{Int(1), Null{}, Null{}, Int(2)}, want: "[1,2]"},
		{name: "all nulls", v: Array{Null{}, Null{}}, want: "[]"},
		{name: "nil element", v: Array{nil, Int(1)}, want: "[1]"},
		{name: "object null entry", v: Object{"a": Null{}}, want: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalString(tt.v, Options{SkipNull: true})
			if err != nil {
				t.Fatalf("MarshalString() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MarshalString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshal_Pretty(t *testing.T) {
	v := Object{"x": Array{Int(1), Int(2)}}
	want := "{\n    \"x\": [\n        1,\n        2\n    ]\n}"

	got, err := MarshalString(v, Options{PrettyPrint: true})
	if err != nil {
		t.Fatalf("MarshalString() error: %v", err)
	}
	if got != want {
		t.Errorf("MarshalString() = %q, want %q", got, want)
	}
}

func TestMarshal_PrettyEmptyNested(t *testing.T) {
	v := Object{"x": Array{}}
	want := "{\n    \"x\": []\n}"

	got, err := MarshalString(v, Options{PrettyPrint: true})
	if err != nil {
		t.Fatalf("MarshalString() error: %v", err)
	}
	if got != want {
		t.Errorf("MarshalString() = %q, want %q", got, want)
	}
}

func TestMarshal_WindowsLineEndingsImpliesPretty(t *testing.T) {
	v := Array{Int(1)}
	want := "[\r\n    1\r\n]"

	got, err := MarshalString(v, Options{WindowsLineEndings: true})
	if err != nil {
		t.Fatalf("MarshalString() error: %v", err)
	}
	if got != want {
		t.Errorf("MarshalString() = %q, want %q", got, want)
	}
}

func TestMarshal_CompactSeparators(t *testing.T) {
	v := Object{"a": Int(1)}
	want := `{"a":1}`

	got, err := MarshalString(v, Options{})
	if err != nil {
		t.Fatalf("MarshalString() error: %v", err)
	}
	if got != want {
		t.Errorf("MarshalString() = %q, want %q", got, want)
	}
}

func TestMarshal_Errors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want error
	}{
		{name: "bytes", v: Bytes{0x01, 0x02}, want: ErrDataNotSupported},
		{name: "positive infinity", v: Double(math.Inf(1)), want: ErrInvalidNumber},
		{name: "negative infinity", v: Double(math.Inf(-1)), want: ErrInvalidNumber},
		{name: "nan", v: Double(math.NaN()), want: ErrInvalidNumber},
		{name: "nested bytes", v: Object{"payload": Bytes{0xff}}, want: ErrDataNotSupported},
		{name: "bytes in array", v: Array{Int(1), Bytes{}}, want: ErrDataNotSupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Marshal(tt.v, Options{})
			if err == nil {
				t.Fatal("Marshal() should return error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Marshal() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMarshal_ErrorPath(t *testing.T) {
	v := Object{"items": Array{Int(1), Bytes{0x01}}}

	_, err := Marshal(v, Options{})
	if err == nil {
		t.Fatal("Marshal() should return error")
	}

	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("Marshal() error type = %T, want *WriteError", err)
	}
	if werr.Path != "$.items[1]" {
		t.Errorf("WriteError.Path = %q, want %q", werr.Path, "$.items[1]")
	}
}

func TestMarshal_DepthExceeded(t *testing.T) {
	v := Value(Int(1))
	for i := 0; i < maxNestingDepth+1; i++ {
		v = Array{v}
	}

	_, err := Marshal(v, Options{})
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("Marshal() error = %v, want %v", err, ErrDepthExceeded)
	}
}

func TestWrite_SinkPrefixOnError(t *testing.T) {
	var sb strings.Builder
	err := Write(Array{Int(1), Bytes{0x01}}, Options{}, &sb)
	if err == nil {
		t.Fatal("Write() should return error")
	}
	// The sink holds a partial prefix the caller must discard.
	if sb.String() != "[1," {
		t.Errorf("sink prefix = %q, want %q", sb.String(), "[1,")
	}
}

func TestMarshal_MultiKeyObjectStructure(t *testing.T) {
	v := Object{"a": Int(1), "b": Bool(true), "c": Null{}}

	out, err := Marshal(v, Options{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	// Key order is unspecified; assert structure by reparsing.
	back, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !Equal(v, back) {
		t.Errorf("round-trip mismatch: wrote %q, got %#v", out, back)
	}
}
