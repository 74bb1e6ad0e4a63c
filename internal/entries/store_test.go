package entries

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Entry
		wantErr bool
		errLine int
	}{
		{
			name:  "plain entries",
			input: "font = monospace 10\nwidth=300\n",
			want:  []Entry{{"font", "monospace 10"}, {"width", "300"}},
		},
		{
			name:  "whitespace around key and value",
			input: "  font   =   monospace 10  \n",
			want:  []Entry{{"font", "monospace 10"}},
		},
		{
			name:  "comments and blanks skipped as entries",
			input: "# mako config\n\nfont = monospace 10\n",
			want:  []Entry{{"font", "monospace 10"}},
		},
		{
			name:  "double-quoted value unwrapped",
			input: `font = "Noto Sans 12"` + "\n",
			want:  []Entry{{"font", "Noto Sans 12"}},
		},
		{
			name:  "single-quoted value unwrapped",
			input: "group-by = 'category'\n",
			want:  []Entry{{"group-by", "category"}},
		},
		{
			name:  "escaped quotes inside quoted value",
			input: `format = "<b>\"%s\"</b>"` + "\n",
			want:  []Entry{{"format", `<b>"%s"</b>`}},
		},
		{
			name:  "unquoted value keeps interior quotes",
			input: "format = a\"b\n",
			want:  []Entry{{"format", `a"b`}},
		},
		{
			name:  "empty value",
			input: "icon-path =\n",
			want:  []Entry{{"icon-path", ""}},
		},
		{
			name:  "value containing equals splits on first",
			input: "format = a=b=c\n",
			want:  []Entry{{"format", "a=b=c"}},
		},
		{
			name:  "duplicate keys kept as separate entries",
			input: "font = a\nfont = b\n",
			want:  []Entry{{"font", "a"}, {"font", "b"}},
		},
		{
			name:  "empty file",
			input: "",
			want:  nil,
		},
		{
			name:    "line without equals",
			input:   "font = ok\nthis is not a config line\n",
			wantErr: true,
			errLine: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.input, "test.conf")
			if tt.wantErr {
				if err == nil {
					t.Fatal("Parse() succeeded, want error")
				}
				var lerr *LoadError
				if !errors.As(err, &lerr) {
					t.Fatalf("Parse() error = %T, want *LoadError", err)
				}
				if lerr.Line != tt.errLine {
					t.Errorf("LoadError.Line = %d, want %d", lerr.Line, tt.errLine)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got := s.Entries()
			if len(got) != len(tt.want) {
				t.Fatalf("Entries() = %v, want %v", got, tt.want)
			}
			for i, e := range got {
				if e != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, e, tt.want[i])
				}
			}
		})
	}
}

// TestRenderPreservesVerbatimLines checks that comments and blank lines
// come back out exactly where they went in.
func TestRenderPreservesVerbatimLines(t *testing.T) {
	input := "# global options\n\nfont = monospace 10\n# appearance\nwidth = 300\n"
	s, err := Parse(input, "test.conf")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := s.Render(); got != input {
		t.Errorf("Render() = %q, want input back %q", got, input)
	}
}

// TestRenderNormalizesSpacing checks that entry lines are rewritten in the
// canonical "key = value" form even when the input spacing differed.
func TestRenderNormalizesSpacing(t *testing.T) {
	s, err := Parse("font=monospace 10\nwidth   =300\n", "test.conf")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := "font = monospace 10\nwidth = 300\n"
	if got := s.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderEndsWithNewline(t *testing.T) {
	s := New()
	s.Insert(Entry{Key: "font", Value: "monospace 10"})
	out := s.Render()
	if out == "" || out[len(out)-1] != '\n' {
		t.Errorf("Render() = %q, want trailing newline", out)
	}
}

func TestStoreMutations(t *testing.T) {
	s := New()
	s.Insert(Entry{Key: "font", Value: "monospace 10"})
	s.Insert(Entry{Key: "width", Value: "300"})
	s.Insert(Entry{Key: "height", Value: "100"})

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	s.Set(1, "420")
	if e, _ := s.Get(1); e.Value != "420" {
		t.Errorf("Get(1).Value = %q after Set, want 420", e.Value)
	}

	s.Remove(0)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d after Remove, want 2", s.Len())
	}
	if e, _ := s.Get(0); e.Key != "width" {
		t.Errorf("Get(0).Key = %q after Remove, want width (shifted down)", e.Key)
	}

	if _, ok := s.Get(2); ok {
		t.Error("Get(2) ok = true past the end, want false")
	}
	if _, ok := s.Get(-1); ok {
		t.Error("Get(-1) ok = true, want false")
	}
}

// TestIndicesSkipVerbatimLines checks that entry indices address entries
// only, regardless of interleaved comments.
func TestIndicesSkipVerbatimLines(t *testing.T) {
	s, err := Parse("# one\nfont = a\n# two\nwidth = b\n", "test.conf")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if e, _ := s.Get(1); e.Key != "width" {
		t.Errorf("Get(1).Key = %q, want width", e.Key)
	}

	s.Remove(0)
	want := "# one\n# two\nwidth = b\n"
	if got := s.Render(); got != want {
		t.Errorf("Render() after Remove = %q, want %q (comments kept)", got, want)
	}
}

func TestSetOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set(5) did not panic")
		}
	}()
	New().Set(5, "x")
}

func TestRemoveOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Remove(0) on empty store did not panic")
		}
	}()
	New().Remove(0)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mako", "config")

	s := New()
	s.Insert(Entry{Key: "font", Value: "monospace 10"})
	s.Insert(Entry{Key: "border-color", Value: "#7D56F4"})
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Render() != s.Render() {
		t.Errorf("round trip mismatch:\nsaved  %q\nloaded %q", s.Render(), got.Render())
	}

	// No temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file still present after Save: stat err = %v", err)
	}
}

func TestLoadAbsentFileSeedsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Load() error = %v, want seeded store", err)
	}
	got := s.Entries()
	if len(got) != len(DefaultEntries) {
		t.Fatalf("Entries() = %v, want defaults %v", got, DefaultEntries)
	}
	for i, e := range got {
		if e != DefaultEntries[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, DefaultEntries[i])
		}
	}
}

func TestLoadMalformedFileReturnsLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte("garbage line\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !IsLoadError(err) {
		t.Fatalf("Load() error = %v, want *LoadError", err)
	}
}

func TestSaveToUnwritablePathReturnsSaveError(t *testing.T) {
	dir := t.TempDir()
	// A file where the parent directory should be makes MkdirAll fail.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s := New()
	s.Insert(Entry{Key: "font", Value: "x"})
	err := s.Save(filepath.Join(blocker, "config"))
	if !IsSaveError(err) {
		t.Fatalf("Save() error = %v, want *SaveError", err)
	}
}

func TestEntryString(t *testing.T) {
	e := Entry{Key: "font", Value: "monospace 10"}
	if got := e.String(); got != "font = monospace 10" {
		t.Errorf("String() = %q, want %q", got, "font = monospace 10")
	}
}
