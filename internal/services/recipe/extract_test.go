package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/socialchef/moodchef/internal/errors"
	recipemodel "github.com/socialchef/moodchef/internal/recipe"
)

const wellFormed = `{"name":"X","ingredients":"- a\n- b","instructions":"1. Mix","cooking_time":"10 minutes","difficulty_level":"easy","cuisine_type":"Thai","category":"main"}`

func TestExtractJSONObject_Idempotent(t *testing.T) {
	got, err := ExtractJSONObject(wellFormed)
	require.NoError(t, err)
	assert.Equal(t, wellFormed, got)

	again, err := ExtractJSONObject(got)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestExtractJSONObject_SurroundingProse(t *testing.T) {
	got, err := ExtractJSONObject("Sure! " + wellFormed + " Enjoy!")
	require.NoError(t, err)
	assert.Equal(t, wellFormed, got)
}

func TestExtractJSONObject_BracesInProseAndStrings(t *testing.T) {
	text := "Here is a {tasty} idea:\n```json\n{\"name\":\"Curly {Brace} Pasta\",\"ingredients\":\"- pasta\"}\n```\nAnd {more} text."
	got, err := ExtractJSONObject(text)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Curly {Brace} Pasta","ingredients":"- pasta"}`, got)
}

func TestExtractJSONObject_NoBraces(t *testing.T) {
	_, err := ExtractJSONObject("I am sorry, I cannot help with that.")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMalformedRecipe))
}

func TestExtractJSONObject_UnbalancedFallsBackToSlice(t *testing.T) {
	got, err := ExtractJSONObject(`prefix {"name": "Broken" suffix}`)
	require.NoError(t, err)
	assert.Equal(t, `{"name": "Broken" suffix}`, got)
}

func TestParseDraft(t *testing.T) {
	d, err := ParseDraft("Sure! " + wellFormed + " Enjoy!")
	require.NoError(t, err)

	assert.Equal(t, "X", d.Name)
	assert.Equal(t, recipemodel.Text("- a\n- b"), d.Ingredients)
	assert.Equal(t, recipemodel.DifficultyEasy, d.DifficultyLevel)
	assert.Equal(t, "Thai", d.CuisineType)
	assert.Equal(t, "main", d.Category)
	assert.Empty(t, d.Mood)
	assert.Nil(t, d.ImageURL)
}

func TestParseDraft_ListIngredients(t *testing.T) {
	d, err := ParseDraft(`{"name":"Y","ingredients":["- rice","- beans"],"instructions":["1. Cook","2. Serve"],"difficulty_level":"Expert"}`)
	require.NoError(t, err)

	assert.Equal(t, recipemodel.Text("- rice\n- beans"), d.Ingredients)
	assert.Equal(t, recipemodel.Text("1. Cook\n2. Serve"), d.Instructions)
	assert.Equal(t, recipemodel.DifficultyMedium, d.DifficultyLevel)
}

func TestParseDraft_Failures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no braces", "no recipe today"},
		{"unbalanced", `{"name": "Half`},
		{"not an object body", `{name: X}`},
		{"missing name", `{"ingredients": "- salt"}`},
		{"placeholder name", `{"name": "N/A", "ingredients": "- salt"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDraft(tt.text)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMalformedRecipe), "got %v", err)
		})
	}
}

func TestParseDraft_BracketedWordsInName(t *testing.T) {
	for _, name := range []string{"(Vegan) Pad Thai (Spicy)", "[Chef's Pick] Ramen [Deluxe]", "{Cozy} Mac and Cheese {Baked}"} {
		t.Run(name, func(t *testing.T) {
			raw := `{"name":"` + name + `","ingredients":"- noodles","instructions":"1. Cook","cooking_time":"20 minutes","difficulty_level":"easy","cuisine_type":"Thai","category":"main"}`
			d, err := ParseDraft(raw)
			require.NoError(t, err)
			assert.Equal(t, name, d.Name)
		})
	}
}
