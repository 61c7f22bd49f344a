package recipe

import (
	"encoding/json"
	"strings"
	"time"
)

// Difficulty is the difficulty level of a recipe, stored as text.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty normalises free-form model output. Anything that is not
// easy, medium or hard becomes medium.
func ParseDifficulty(s string) Difficulty {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d
	default:
		return DifficultyMedium
	}
}

// Recipe is a stored recipe row. It is never modified after insert.
type Recipe struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Ingredients     string     `json:"ingredients"`
	Instructions    string     `json:"instructions"`
	CookingTime     string     `json:"cooking_time"`
	DifficultyLevel Difficulty `json:"difficulty_level"`
	CuisineType     string     `json:"cuisine_type"`
	Category        string     `json:"category"`
	Mood            string     `json:"mood"`
	ImageURL        *string    `json:"image_url"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Draft is a recipe before an id and timestamp are assigned.
type Draft struct {
	Name            string     `json:"name"`
	Ingredients     Text       `json:"ingredients"`
	Instructions    Text       `json:"instructions"`
	CookingTime     Text       `json:"cooking_time"`
	DifficultyLevel Difficulty `json:"difficulty_level"`
	CuisineType     string     `json:"cuisine_type"`
	Category        string     `json:"category"`
	Mood            string     `json:"mood,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
}

// NormalizeMood lower-cases and trims a mood so lookups are case-insensitive.
func NormalizeMood(mood string) string {
	return strings.ToLower(strings.TrimSpace(mood))
}

// WithImage returns a copy of the draft pointing at the given image reference.
func (d Draft) WithImage(ref string) Draft {
	if ref == "" {
		d.ImageURL = nil
		return d
	}
	d.ImageURL = &ref
	return d
}

// Materialize turns the draft into a Recipe with the given id and creation time.
func (d Draft) Materialize(id int64, createdAt time.Time) Recipe {
	return Recipe{
		ID:              id,
		Name:            d.Name,
		Ingredients:     string(d.Ingredients),
		Instructions:    string(d.Instructions),
		CookingTime:     string(d.CookingTime),
		DifficultyLevel: ParseDifficulty(string(d.DifficultyLevel)),
		CuisineType:     d.CuisineType,
		Category:        d.Category,
		Mood:            NormalizeMood(d.Mood),
		ImageURL:        d.ImageURL,
		CreatedAt:       createdAt,
	}
}

// Text is a string field that also accepts a JSON list of strings or a
// number. Models asked for "- a\n- b" sometimes answer ["a", "b"].
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = Text(strings.Join(list, "\n"))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Text(n.String())
		return nil
	}

	// Last resort: keep the raw JSON so nothing is silently dropped.
	*t = Text(strings.TrimSpace(string(data)))
	return nil
}
