package recipe

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := map[string]Difficulty{
		"easy":      DifficultyEasy,
		" Medium ":  DifficultyMedium,
		"HARD":      DifficultyHard,
		"easy/hard": DifficultyMedium,
		"":          DifficultyMedium,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseDifficulty(in), "input %q", in)
	}
}

func TestText_UnmarshalJSON(t *testing.T) {
	var d struct {
		Ingredients  Text `json:"ingredients"`
		Instructions Text `json:"instructions"`
		CookingTime  Text `json:"cooking_time"`
	}

	err := json.Unmarshal([]byte(`{
		"ingredients": ["- 2 eggs", "- 1 cup flour"],
		"instructions": "1. Whisk\n2. Bake",
		"cooking_time": 25
	}`), &d)
	require.NoError(t, err)

	assert.Equal(t, Text("- 2 eggs\n- 1 cup flour"), d.Ingredients)
	assert.Equal(t, Text("1. Whisk\n2. Bake"), d.Instructions)
	assert.Equal(t, Text("25"), d.CookingTime)
}

func TestDraft_Materialize(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	d := Draft{
		Name:            "Rainbow Poke Bowl",
		Ingredients:     "- rice\n- tuna",
		DifficultyLevel: DifficultyEasy,
		Mood:            "Happy",
	}.WithImage("/static/images/poke.png")

	r := d.Materialize(7, now)

	assert.Equal(t, int64(7), r.ID)
	assert.Equal(t, "happy", r.Mood)
	assert.Equal(t, "- rice\n- tuna", r.Ingredients)
	require.NotNil(t, r.ImageURL)
	assert.Equal(t, "/static/images/poke.png", *r.ImageURL)
	assert.Equal(t, now, r.CreatedAt)
}

func TestDraft_WithImageEmpty(t *testing.T) {
	d := Draft{Name: "Plain"}.WithImage("")
	assert.Nil(t, d.ImageURL)
}
