package model

// ConstructorAliasTable maps a raw constructor name to the name used for grouping.
// The lookup is applied once per name and never chained.
type ConstructorAliasTable map[string]string

// DefaultConstructorAliases is the historical lookup table of team renames.
// Note: some entries are inconsistent with each other (e.g. Force India and
// Racing Point). The table is kept as is, see DESIGN.md.
//
//nolint:gochecknoglobals // fixed lookup table
var DefaultConstructorAliases = ConstructorAliasTable{
	"Manor Marussia": "Marussia",
	"Marussia":       "Marussia",
	"Sauber":         "Alfa Romeo",
	"Alfa Romeo":     "Alfa Romeo",
	"Haas F1 Team":   "Haas",
	"Racing Point":   "Aston Martin",
	"Williams":       "Williams",
	"Toro Rosso":     "AlphaTauri",
	"AlphaTauri":     "AlphaTauri",
	"Aston Martin":   "Aston Martin",
	"McLaren":        "McLaren",
	"Force India":    "Racing Point",
	"Mercedes":       "Mercedes",
	"Alpine F1 Team": "Alpine",
	"Ferrari":        "Ferrari",
	"Renault":        "Alpine",
	"Red Bull":       "Red Bull",
	"RB F1 Team":     "Red Bull",
	"Lotus F1":       "Lotus",
	"Caterham":       "Caterham",
}

// Normalize returns the canonical name for raw. Unknown names are returned unchanged.
func (t ConstructorAliasTable) Normalize(raw string) string {
	if canonical, ok := t[raw]; ok && canonical != "" {
		return canonical
	}
	return raw
}
