package recipe

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/socialchef/moodchef/internal/errors"
	"github.com/socialchef/moodchef/internal/recipe"
	"github.com/socialchef/moodchef/internal/validation"
)

// ExtractJSONObject returns the first balanced JSON object in text. Each `{`
// is tried in order with a JSON decoder, so braces inside strings and prose
// before the object are handled. If no candidate decodes, the span from the
// first `{` to the last `}` is returned for the caller to reject.
func ExtractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", apperrors.NewMalformedRecipeError("model output contains no JSON object", nil)
	}

	for i := start; i < len(text); {
		var raw json.RawMessage
		if err := json.NewDecoder(strings.NewReader(text[i:])).Decode(&raw); err == nil && len(raw) > 0 && raw[0] == '{' {
			return string(raw), nil
		}

		next := strings.IndexByte(text[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}

	end := strings.LastIndexByte(text, '}')
	if end < start {
		return text[start:], nil
	}
	return text[start : end+1], nil
}

// ParseDraft extracts and decodes a recipe draft from raw model output.
func ParseDraft(text string) (*recipe.Draft, error) {
	obj, err := ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var d recipe.Draft
	if err := json.Unmarshal([]byte(obj), &d); err != nil {
		return nil, apperrors.NewMalformedRecipeError("model output is not a valid recipe JSON object", err)
	}

	// Mood and image are ours to set, whatever the model claims.
	d.Mood = ""
	d.ImageURL = nil

	validation.NormalizeDraft(&d)
	if result := validation.ValidateDraft(d); !result.IsValid {
		return nil, apperrors.NewMalformedRecipeError(
			fmt.Sprintf("model output is missing required fields: %s", strings.Join(result.Missing, ", ")), nil)
	}

	return &d, nil
}
