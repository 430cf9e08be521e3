package normalize_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront/internal/normalize"
	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "accented lowercase", input: "tête", want: "tete"},
		{name: "accented uppercase", input: "TÊTE", want: "tete"},
		{name: "plain", input: "tete", want: "tete"},
		{name: "surrounding whitespace", input: "  Épaule \t", want: "epaule"},
		{name: "multi word", input: "Colonne Vertébrale", want: "colonne vertebrale"},
		{name: "precomposed and decomposed", input: "crâne", want: "crane"},
		{name: "hyphenated", input: "Avant-Bras", want: "avant-bras"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Name(tt.input))
		})
	}
}

func TestName_AccentAndCaseInsensitive(t *testing.T) {
	assert.Equal(t, normalize.Name("Tête"), normalize.Name("tete"))
	assert.Equal(t, normalize.Name("tete"), normalize.Name("TÊTE"))
	assert.True(t, normalize.Equal("Crâne", "CRANE"))
	assert.False(t, normalize.Equal("bras", "avant-bras"))
}

func TestName_Idempotent(t *testing.T) {
	inputs := []string{"Tête", "  ÉPAULES ", "Colonne vertébrale", "İstanbul", "Ǆemal", "straße"}
	for i := 0; i < 20; i++ {
		inputs = append(inputs, gofakeit.Sentence(3), gofakeit.City())
	}

	for _, input := range inputs {
		once := normalize.Name(input)
		assert.Equal(t, once, normalize.Name(once), "input %q", input)
	}
}
