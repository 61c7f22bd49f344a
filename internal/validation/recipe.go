package validation

import (
	"regexp"
	"strings"

	"github.com/socialchef/moodchef/internal/recipe"
)

var placeholderValues = map[string]bool{
	"n/a":           true,
	"na":            true,
	"none":          true,
	"unknown":       true,
	"not specified": true,
	"tbd":           true,
	"xxx":           true,
}

var bracketedPlaceholder = regexp.MustCompile(`^[\[<{(][^\]>})]*[\]>})]$`)

// DetectPlaceholders reports whether text is empty or a filler value a model
// emits instead of real content.
func DetectPlaceholders(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return true
	}
	if placeholderValues[t] {
		return true
	}
	return bracketedPlaceholder.MatchString(t)
}

// DraftValidationResult lists the problems found in a draft.
type DraftValidationResult struct {
	IsValid bool
	Missing []string
}

// NormalizeDraft trims every text field and clamps the difficulty level to
// easy, medium or hard. The draft is modified in place.
func NormalizeDraft(d *recipe.Draft) {
	d.Name = strings.TrimSpace(d.Name)
	d.Ingredients = recipe.Text(strings.TrimSpace(string(d.Ingredients)))
	d.Instructions = recipe.Text(strings.TrimSpace(string(d.Instructions)))
	d.CookingTime = recipe.Text(strings.TrimSpace(string(d.CookingTime)))
	d.CuisineType = strings.TrimSpace(d.CuisineType)
	d.Category = strings.ToLower(strings.TrimSpace(d.Category))
	d.DifficultyLevel = recipe.ParseDifficulty(string(d.DifficultyLevel))
}

// ValidateDraft checks the fields a recipe cannot be served without.
// Only the name is strictly required; missing ingredients or instructions are
// reported but do not invalidate the draft.
func ValidateDraft(d recipe.Draft) DraftValidationResult {
	result := DraftValidationResult{IsValid: true}

	if DetectPlaceholders(d.Name) {
		result.IsValid = false
		result.Missing = append(result.Missing, "name")
	}
	if DetectPlaceholders(string(d.Ingredients)) {
		result.Missing = append(result.Missing, "ingredients")
	}
	if DetectPlaceholders(string(d.Instructions)) {
		result.Missing = append(result.Missing, "instructions")
	}

	return result
}
