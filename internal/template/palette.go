package template

// Palette is the accent pair a layout paints with.
type Palette struct {
	Primary   string
	Secondary string
}

const DefaultAccent = "blue"

var accentPalettes = map[string]Palette{
	"blue":  {Primary: "#3B82F6", Secondary: "#93C5FD"},
	"slate": {Primary: "#1F2937", Secondary: "#6B7280"},
	"pink":  {Primary: "#EC4899", Secondary: "#F9A8D4"},
	"teal":  {Primary: "#0891B2", Secondary: "#67E8F9"},
	"gray":  {Primary: "#6B7280", Secondary: "#D1D5DB"},
}

// monochrome always wins over any accent selection
var monochromePalette = Palette{Primary: "#111827", Secondary: "#6B7280"}

// ResolvePalette maps an accent id to its palette. Unknown ids resolve to the
// default accent; monochrome overrides everything.
func ResolvePalette(accentID string, monochrome bool) Palette {
	if monochrome {
		return monochromePalette
	}
	if p, ok := accentPalettes[accentID]; ok {
		return p
	}
	return accentPalettes[DefaultAccent]
}

// AccentColors lists the selectable accent ids in a stable order.
func AccentColors() []string {
	return []string{"blue", "slate", "pink", "teal", "gray"}
}
