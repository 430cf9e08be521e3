package catalog_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	bodyParts := []domain.Category{
		{ID: 1, Name: "Tête"},
		{ID: 2, Name: "Bras"},
		{ID: 3, Name: "Avant-bras"},
		{ID: 4, Name: "Colonne Vertébrale"},
		{ID: 5, Name: "Épaules"},
		{ID: 6, Name: "Jambe"},
	}

	tests := []struct {
		name       string
		label      string
		categories []domain.Category
		aliases    catalog.AliasTable
		wantID     int64
		wantRule   catalog.MatchRule
		wantFound  bool
	}{
		{
			name:       "exact match wins over aliases",
			label:      "Bras",
			categories: []domain.Category{{ID: 1, Name: "Bras"}},
			aliases:    catalog.NewAliasTable(map[string][]string{"bras": {"arm"}}),
			wantID:     1,
			wantRule:   catalog.MatchExact,
			wantFound:  true,
		},
		{
			name:       "accent insensitive exact",
			label:      "tete",
			categories: []domain.Category{{ID: 2, Name: "Tête"}},
			aliases:    catalog.NewAliasTable(map[string][]string{"tete": {"tête", "head", "crane"}}),
			wantID:     2,
			wantRule:   catalog.MatchExact,
			wantFound:  true,
		},
		{
			name:       "alias equality",
			label:      "head",
			categories: []domain.Category{{ID: 7, Name: "Crâne"}},
			aliases:    catalog.NewAliasTable(map[string][]string{"head": {"tête", "crâne"}}),
			wantID:     7,
			wantRule:   catalog.MatchAlias,
			wantFound:  true,
		},
		{
			name:       "alias order decides between two equal aliases",
			label:      "leg",
			categories: []domain.Category{{ID: 8, Name: "Mollet"}, {ID: 9, Name: "Jambe"}},
			aliases:    catalog.NewAliasTable(map[string][]string{"leg": {"jambe", "mollet"}}),
			wantID:     9,
			wantRule:   catalog.MatchAlias,
			wantFound:  true,
		},
		{
			name:       "alias equality with plural catalog name",
			label:      "épaule",
			categories: bodyParts,
			aliases:    catalog.DefaultAliases(),
			wantID:     5,
			wantRule:   catalog.MatchAlias,
			wantFound:  true,
		},
		{
			name:       "containment: name contains alias",
			label:      "spine",
			categories: []domain.Category{{ID: 10, Name: "Dos"}, {ID: 11, Name: "Vertèbre lombaire"}},
			aliases:    catalog.NewAliasTable(map[string][]string{"spine": {"colonne", "vertebre"}}),
			wantID:     11,
			wantRule:   catalog.MatchContains,
			wantFound:  true,
		},
		{
			name:       "containment without alias entry uses the label",
			label:      "vertébrale",
			categories: bodyParts,
			aliases:    catalog.NewAliasTable(nil),
			wantID:     4,
			wantRule:   catalog.MatchContains,
			wantFound:  true,
		},
		{
			name:       "containment ties broken by catalog order",
			label:      "bras",
			categories: []domain.Category{{ID: 3, Name: "Avant-bras"}, {ID: 12, Name: "Bras droit"}},
			aliases:    catalog.NewAliasTable(nil),
			wantID:     3,
			wantRule:   catalog.MatchContains,
			wantFound:  true,
		},
		{
			name:       "containment: alias contains name",
			label:      "spine",
			categories: []domain.Category{{ID: 13, Name: "Colonne"}},
			aliases:    catalog.NewAliasTable(map[string][]string{"spine": {"colonne vertébrale"}}),
			wantID:     13,
			wantRule:   catalog.MatchContains,
			wantFound:  true,
		},
		{
			name:       "exact preferred over earlier containment candidate",
			label:      "Bras",
			categories: []domain.Category{{ID: 3, Name: "Avant-bras"}, {ID: 2, Name: "Bras"}},
			aliases:    catalog.DefaultAliases(),
			wantID:     2,
			wantRule:   catalog.MatchExact,
			wantFound:  true,
		},
		{
			name:       "new category found verbatim without alias",
			label:      "Oreille",
			categories: append([]domain.Category{{ID: 20, Name: "Oreille"}}, bodyParts...),
			aliases:    catalog.DefaultAliases(),
			wantID:     20,
			wantRule:   catalog.MatchExact,
			wantFound:  true,
		},
		{
			name:       "no match",
			label:      "queue",
			categories: bodyParts,
			aliases:    catalog.DefaultAliases(),
		},
		{
			name:       "empty label",
			label:      "   ",
			categories: bodyParts,
			aliases:    catalog.DefaultAliases(),
		},
		{
			name:       "unnamed category never matches by containment",
			label:      "queue",
			categories: []domain.Category{{ID: 30, Name: ""}},
			aliases:    catalog.NewAliasTable(nil),
		},
		{
			name:    "empty catalog",
			label:   "tête",
			aliases: catalog.DefaultAliases(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, found := catalog.Resolve(tt.label, tt.categories, tt.aliases)
			require.Equal(t, tt.wantFound, found)
			if !tt.wantFound {
				assert.Equal(t, catalog.Match{}, match)
				return
			}

			assert.Equal(t, tt.wantID, match.Category.ID)
			assert.Equal(t, tt.wantRule, match.Rule)
			assert.NotEmpty(t, match.Via)
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	categories := []domain.Category{{ID: 1, Name: "Tête"}, {ID: 2, Name: "Main"}, {ID: 3, Name: "Pied"}}
	snapshot := append([]domain.Category(nil), categories...)
	aliases := catalog.DefaultAliases()

	for _, label := range []string{"hands", "tete", "feet", "queue"} {
		first, firstOK := catalog.Resolve(label, categories, aliases)
		second, secondOK := catalog.Resolve(label, categories, aliases)

		assert.Equal(t, firstOK, secondOK, label)
		assert.Equal(t, first, second, label)
	}

	assert.Equal(t, snapshot, categories)
}
