package catalog

import "testing"

func TestKeysAreDeterministic(t *testing.T) {
	a := Names()
	b := Names()
	if len(a) == 0 {
		t.Fatal("Names() is empty")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Names() order differs between calls: %v vs %v", a, b)
		}
	}
}

func TestAllowedValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want []string
	}{
		{"enumerated key", "text-align", []string{"left", "center", "right"}},
		{"boolean key", "icons", []string{"1", "0", "true", "false"}},
		{"free-form key", "font", nil},
		{"unknown key", "no-such-key", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllowedValues(tt.key)
			if len(got) != len(tt.want) {
				t.Fatalf("AllowedValues(%q) = %v, want %v", tt.key, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("AllowedValues(%q)[%d] = %q, want %q", tt.key, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestAllowedValuesReturnsCopy checks that a caller mutating the returned
// slice cannot corrupt the catalog.
func TestAllowedValuesReturnsCopy(t *testing.T) {
	first := AllowedValues("layer")
	if len(first) == 0 {
		t.Fatal("layer has no suggested values")
	}
	first[0] = "mutated"
	if again := AllowedValues("layer"); again[0] == "mutated" {
		t.Error("AllowedValues shares backing storage with the catalog")
	}

	keys := Keys()
	keys[0].Name = "mutated"
	if Keys()[0].Name == "mutated" {
		t.Error("Keys shares backing storage with the catalog")
	}
}

func TestDescribe(t *testing.T) {
	if Describe("font") == "" {
		t.Error("Describe(font) = empty, want a description")
	}
	if d := Describe("no-such-key"); d != "" {
		t.Errorf("Describe(no-such-key) = %q, want empty", d)
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown("default-timeout") {
		t.Error("IsKnown(default-timeout) = false, want true")
	}
	if IsKnown("on-button-left") {
		t.Error("IsKnown(on-button-left) = true, want false (not cataloged)")
	}
}

// TestEveryKeyHasDescription keeps the picker usable: each cataloged key
// must carry help text.
func TestEveryKeyHasDescription(t *testing.T) {
	for _, k := range Keys() {
		if k.Description == "" {
			t.Errorf("key %q has no description", k.Name)
		}
	}
}

func TestNoDuplicateKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range Names() {
		if seen[name] {
			t.Errorf("key %q appears twice", name)
		}
		seen[name] = true
	}
}
