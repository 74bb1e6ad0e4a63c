package entries

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestLoadErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *LoadError
		want string
	}{
		{
			name: "parse error with line number",
			err:  &LoadError{Path: "/tmp/config", Line: 3, Message: "expected 'key = value', got \"oops\""},
			want: `load /tmp/config: line 3: expected 'key = value', got "oops"`,
		},
		{
			name: "read error with cause",
			err:  &LoadError{Path: "/tmp/config", Message: "cannot read file", Err: fs.ErrPermission},
			want: "load /tmp/config: cannot read file: permission denied",
		},
		{
			name: "bare message",
			err:  &LoadError{Path: "/tmp/config", Message: "cannot read file"},
			want: "load /tmp/config: cannot read file",
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

func TestLoadErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &LoadError{Path: "x", Message: "m", Err: fs.ErrPermission})
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is did not see the underlying cause through LoadError")
	}
}

func TestSaveErrorMessage(t *testing.T) {
	err := &SaveError{Path: "/tmp/config", Err: fs.ErrPermission}
	if got := err.Error(); !strings.Contains(got, "/tmp/config") || !strings.Contains(got, "permission denied") {
		t.Errorf("Error() = %q, want path and cause", got)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is did not see the underlying cause through SaveError")
	}
}

func TestErrorPredicates(t *testing.T) {
	lerr := fmt.Errorf("outer: %w", &LoadError{Path: "x", Message: "m"})
	serr := fmt.Errorf("outer: %w", &SaveError{Path: "x", Err: errors.New("disk full")})

	if !IsLoadError(lerr) {
		t.Error("IsLoadError = false for wrapped LoadError")
	}
	if IsLoadError(serr) {
		t.Error("IsLoadError = true for SaveError")
	}
	if !IsSaveError(serr) {
		t.Error("IsSaveError = false for wrapped SaveError")
	}
	if IsSaveError(lerr) {
		t.Error("IsSaveError = true for LoadError")
	}
	if IsLoadError(nil) || IsSaveError(nil) {
		t.Error("predicates returned true for nil")
	}
}
