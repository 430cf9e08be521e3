package catalog

import (
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/normalize"
)

type MatchRule string

const (
	MatchExact    MatchRule = "exact"
	MatchAlias    MatchRule = "alias"
	MatchContains MatchRule = "contains"
)

// Match explains how a label was resolved.
type Match struct {
	Category domain.Category
	Rule     MatchRule
	// Via is the normalized string that matched: the label for exact matches, the alias otherwise.
	Via string
}

// Resolve maps a free-text label to a catalog entry. Rules are tried in order and the first
// hit wins: exact name, alias equality, then alias/name containment. Within a rule the
// catalog order breaks ties. ok is false when nothing matched.
//
// Resolve is pure: it does not retain or modify categories.
func Resolve(label string, categories []domain.Category, aliases AliasTable) (Match, bool) {
	query := normalize.Name(label)
	if query == "" {
		return Match{}, false
	}

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = normalize.Name(c.Name)
	}

	for i, name := range names {
		if name == query {
			return Match{Category: categories[i], Rule: MatchExact, Via: query}, true
		}
	}

	candidates, ok := aliases.Lookup(query)
	if ok {
		for _, alias := range candidates {
			for i, name := range names {
				if name == alias {
					return Match{Category: categories[i], Rule: MatchAlias, Via: alias}, true
				}
			}
		}
	} else {
		candidates = []string{query}
	}

	for i, name := range names {
		if name == "" {
			continue
		}
		for _, alias := range candidates {
			if strings.Contains(name, alias) || strings.Contains(alias, name) {
				return Match{Category: categories[i], Rule: MatchContains, Via: alias}, true
			}
		}
	}

	return Match{}, false
}
