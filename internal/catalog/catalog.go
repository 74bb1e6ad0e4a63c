package catalog

// KnownKey describes one recognized mako configuration key: its name, a
// short human-readable description, and the set of suggested values when
// the key takes one of a small number of known values. Values is nil for
// free-form keys (colors, fonts, pixel sizes).
type KnownKey struct {
	Name        string
	Description string
	Values      []string
}

// boolValues is shared by every on/off key. Mako accepts both numeric and
// word forms.
var boolValues = []string{"1", "0", "true", "false"}

// anchorValues lists the positions mako accepts for the anchor option.
var anchorValues = []string{
	"top-right", "top-center", "top-left",
	"bottom-right", "bottom-center", "bottom-left",
	"center-right", "center-left", "center",
}

// knownKeys is the curated catalog of recognized configuration keys, in
// the order they are presented to the user. The set follows mako's man
// page; it is a curated subset, not an exhaustive grammar.
var knownKeys = []KnownKey{
	{Name: "sort", Description: "Sort order expression, e.g. -time"},
	{Name: "layer", Description: "Window layer: overlay, normal, top, bottom",
		Values: []string{"overlay", "normal", "top", "bottom"}},
	{Name: "background-color", Description: "Background color (#rrggbb or named)"},
	{Name: "width", Description: "Notification width in pixels"},
	{Name: "height", Description: "Notification height in pixels"},
	{Name: "border-size", Description: "Border width in pixels"},
	{Name: "border-color", Description: "Border color (#rrggbb)"},
	{Name: "border-radius", Description: "Corner radius in pixels"},
	{Name: "icons", Description: "Show icons: 1 or 0", Values: boolValues},
	{Name: "max-icon-size", Description: "Maximum icon size in pixels"},
	{Name: "default-timeout", Description: "Default timeout in milliseconds"},
	{Name: "ignore-timeout", Description: "Ignore per-notification timeout: 1 or 0",
		Values: boolValues},
	{Name: "font", Description: "Font description, e.g. 'monospace 10'"},
	{Name: "outer-margin", Description: "Outer margin in pixels"},
	{Name: "padding", Description: "Padding in pixels"},
	{Name: "markup", Description: "Enable markup rendering: 1 or 0", Values: boolValues},
	{Name: "progress-color", Description: "Progress bar color"},
	{Name: "progress-background-color", Description: "Progress background color"},
	{Name: "icon-path", Description: "Search paths for icons (colon separated)"},
	{Name: "icon-location", Description: "Icon position: left, right, top, bottom, ...",
		Values: []string{
			"left", "right", "top", "bottom",
			"top-left", "top-right", "bottom-left", "bottom-right", "center",
		}},
	{Name: "anchor", Description: "Corner or edge of the output to anchor to",
		Values: anchorValues},
	{Name: "anchor-point", Description: "Alias for anchor; same values as anchor",
		Values: anchorValues},
	{Name: "icon-border-radius", Description: "Icon corner radius in pixels"},
	{Name: "group-by", Description: "Group notifications by this property (e.g. category)"},
	{Name: "layout", Description: "Layout hint: normal, overlay, center",
		Values: []string{"normal", "overlay", "center"}},
	{Name: "text-align", Description: "Text alignment: left, center, right",
		Values: []string{"left", "center", "right"}},
}

// byName indexes knownKeys for O(1) lookup.
var byName = func() map[string]KnownKey {
	m := make(map[string]KnownKey, len(knownKeys))
	for _, k := range knownKeys {
		m[k.Name] = k
	}
	return m
}()

// Keys returns the full catalog in presentation order. The returned slice
// is a copy; callers may not mutate the catalog.
func Keys() []KnownKey {
	out := make([]KnownKey, len(knownKeys))
	copy(out, knownKeys)
	return out
}

// Names returns the recognized key names in presentation order.
func Names() []string {
	out := make([]string, len(knownKeys))
	for i, k := range knownKeys {
		out[i] = k.Name
	}
	return out
}

// AllowedValues returns the suggested values for a key, or nil when the
// key is unrecognized or free-form. It never returns an error: the
// catalog suggests, it does not validate.
func AllowedValues(key string) []string {
	k, ok := byName[key]
	if !ok || len(k.Values) == 0 {
		return nil
	}
	out := make([]string, len(k.Values))
	copy(out, k.Values)
	return out
}

// Describe returns the short description for a recognized key, or the
// empty string for an unrecognized one.
func Describe(key string) string {
	return byName[key].Description
}

// IsKnown reports whether the key is in the catalog.
func IsKnown(key string) bool {
	_, ok := byName[key]
	return ok
}
