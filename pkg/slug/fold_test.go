package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/slug"
)

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "ascii unchanged", input: "Hello World", expected: "Hello World"},
		{name: "french", input: "Château façade élève", expected: "Chateau facade eleve"},
		{name: "german", input: "Über Größe Straße", expected: "Uber Grosse Strasse"},
		{name: "spanish", input: "Niño español", expected: "Nino espanol"},
		{name: "polish", input: "Zażółć gęślą jaźń", expected: "Zazolc gesla jazn"},
		{name: "ligatures", input: "Æsir œuvre Øresund", expected: "AEsir oeuvre Oresund"},
		{name: "non-latin untouched", input: "Москва 北京", expected: "Москва 北京"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Fold(tt.input))
		})
	}
}

func TestFold_WithMake(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "crme-brle", slug.Make("Crème brûlée"))
	assert.Equal(t, "creme-brulee", slug.Make(slug.Fold("Crème brûlée")))
	assert.Equal(t, "cote-d-ivoire-2024", slug.Make(slug.Fold("Côte d - Ivoire 2024")))
}
