package datum

// Options controls JSON text formatting. The zero value produces compact
// output with null literals included.
type Options struct {
	// SkipNull omits null entries from arrays and objects instead of
	// emitting the null literal.
	SkipNull bool

	// PrettyPrint emits newlines and 4-space indentation per nesting level.
	PrettyPrint bool

	// WindowsLineEndings uses CRLF instead of LF for pretty-printed
	// newlines. Setting it implies PrettyPrint.
	WindowsLineEndings bool
}

// normalize applies the WindowsLineEndings ⇒ PrettyPrint implication.
func (o Options) normalize() Options {
	if o.WindowsLineEndings {
		o.PrettyPrint = true
	}
	return o
}

// newline returns the configured line terminator, or "" when not pretty
// printing.
func (o Options) newline() string {
	if !o.PrettyPrint {
		return ""
	}
	if o.WindowsLineEndings {
		return "\r\n"
	}
	return "\n"
}
