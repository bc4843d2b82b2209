package models

// badgeColors maps the known type labels to the badge background used by
// the card grids.
var badgeColors = map[string]string{
	"normal":   "#9ca3af",
	"fire":     "#ef4444",
	"water":    "#3b82f6",
	"electric": "#facc15",
	"grass":    "#22c55e",
	"ice":      "#bfdbfe",
	"fighting": "#b91c1c",
	"poison":   "#a855f7",
	"ground":   "#ca8a04",
	"flying":   "#818cf8",
	"psychic":  "#ec4899",
	"bug":      "#4ade80",
	"rock":     "#a16207",
	"ghost":    "#7e22ce",
	"dragon":   "#4338ca",
	"dark":     "#374151",
	"steel":    "#9ca3af",
	"fairy":    "#f9a8d4",
}

// BadgeColors returns a copy of the known label colours, for pages that
// draw badges client-side.
func BadgeColors() map[string]string {
	out := make(map[string]string, len(badgeColors))
	for k, v := range badgeColors {
		out[k] = v
	}
	return out
}

const neutralBadge = "#6b7280"

// BadgeColor returns the CSS colour for a type badge. Unknown labels fall
// back to a neutral grey.
func BadgeColor(label string) string {
	if c, ok := badgeColors[label]; ok {
		return c
	}
	return neutralBadge
}
