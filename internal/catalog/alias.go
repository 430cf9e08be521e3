package catalog

import (
	"slices"

	"github.com/nikolayk812/storefront/internal/normalize"
)

// AliasTable maps a normalized query term to an ordered list of normalized aliases.
// It is built once and only read afterwards.
type AliasTable struct {
	entries map[string][]string
}

// NewAliasTable normalizes every term and alias. Terms that normalize to the same key are
// merged in sorted raw-key order; duplicate aliases keep their first position.
func NewAliasTable(raw map[string][]string) AliasTable {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make(map[string][]string, len(raw))
	for _, k := range keys {
		term := normalize.Name(k)
		if term == "" {
			continue
		}
		for _, alias := range raw[k] {
			a := normalize.Name(alias)
			if a == "" || slices.Contains(entries[term], a) {
				continue
			}
			entries[term] = append(entries[term], a)
		}
	}

	return AliasTable{entries: entries}
}

// Lookup returns the aliases registered for label, normalizing label first.
func (t AliasTable) Lookup(label string) ([]string, bool) {
	aliases, ok := t.entries[normalize.Name(label)]
	if !ok {
		return nil, false
	}
	return slices.Clone(aliases), true
}

func (t AliasTable) Len() int {
	return len(t.entries)
}

// DefaultAliases bridges the body-map region labels to catalog names.
func DefaultAliases() AliasTable {
	return NewAliasTable(map[string][]string{
		"tête":               {"tête", "tete", "head", "crane", "crâne", "cerveau"},
		"cou":                {"cou", "neck"},
		"épaule":             {"épaule", "epaule", "shoulder", "épaules", "epaules"},
		"torse":              {"torse", "torso", "chest", "poitrine", "thorax"},
		"bras":               {"bras", "arm", "arms"},
		"coude":              {"coude", "elbow"},
		"avant-bras":         {"avant-bras", "avant bras", "forearm"},
		"main":               {"main", "hand", "mains", "hands"},
		"abdomen":            {"abdomen", "ventre", "belly"},
		"bassin":             {"bassin", "pelvis", "hanche", "hanches"},
		"cuisse":             {"cuisse", "thigh", "cuisses", "jambe superieure"},
		"genou":              {"genou", "knee", "genoux"},
		"jambe":              {"jambe", "leg", "jambes", "mollet"},
		"pied":               {"pied", "foot", "pieds", "feet"},
		"colonne vertébrale": {"colonne vertébrale", "colonne vertebrale", "spine", "dos", "vertebre", "vertèbre"},
	})
}
