package datum

import (
	"errors"
	"testing"
)

func TestWriteError_Is(t *testing.T) {
	err := newWriteError(ErrDataNotSupported, "$.payload")

	if !errors.Is(err, ErrDataNotSupported) {
		t.Error("WriteError should unwrap to ErrDataNotSupported")
	}

	if errors.Is(err, ErrInvalidNumber) {
		t.Error("WriteError should not match ErrInvalidNumber")
	}
}

func TestWriteError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with path",
			err:  newWriteError(ErrInvalidNumber, "$.readings[3]"),
			want: "invalid number at $.readings[3]",
		},
		{
			name: "root path",
			err:  newWriteError(ErrDataNotSupported, "$"),
			want: "data not supported in JSON",
		},
		{
			name: "no path",
			err:  &WriteError{Err: ErrDepthExceeded},
			want: "nesting depth exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
