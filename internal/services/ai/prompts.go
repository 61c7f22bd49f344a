package ai

import (
	"fmt"
	"strings"

	"github.com/socialchef/moodchef/internal/recipe"
)

// DefaultMoodGuideline applies to any mood without its own entry.
const DefaultMoodGuideline = "Balanced, flavorful dishes"

var moodGuidelines = map[string]string{
	"happy":     "Light, colorful, fresh dishes with vibrant ingredients",
	"sad":       "Warm, comforting, indulgent dishes that feel like a hug",
	"excited":   "Fun, party-friendly, shareable dishes that bring joy",
	"energetic": "Nutritious, protein-rich, energizing meals for vitality",
}

const systemSection = `<|system|>
You are a professional chef creating unique recipes based on people's moods.
Always respond with a valid JSON object. Format ingredients and instructions as proper lists.`

const outputFormatSection = `Return ONLY a JSON object in this exact format:
{
    "name": "Unique and descriptive food recipe name",
    "ingredients": "- ingredient 1 with amount\n- ingredient 2 with amount",
    "instructions": "1. First step\n2. Second step",
    "cooking_time": "XX minutes",
    "difficulty_level": "easy/medium/hard",
    "cuisine_type": "specific cuisine type",
    "category": "main/appetizer/dessert/etc"
}`

const assistantTag = `<|assistant|>`

// ImageNegativePrompt lists what the food photo must not look like.
const ImageNegativePrompt = "blurry, text, watermark, logo, pixelated, low quality, cartoon, drawing, anime, illustration, painting, rendered, artificial"

const imageStyleSection = `Food photography, professional lighting, high-end restaurant presentation,
centered composition, shallow depth of field, soft natural lighting,
garnished, styled food photography, 4k, high resolution, hyperrealistic`

// MoodGuideline returns the style guideline for a mood. Unknown moods get
// DefaultMoodGuideline; a mood is never rejected.
func MoodGuideline(mood string) string {
	if g, ok := moodGuidelines[recipe.NormalizeMood(mood)]; ok {
		return g
	}
	return DefaultMoodGuideline
}

// BuildRecipePrompt builds the text-generation prompt for a mood and optional
// cuisine. Both values are interpolated as given.
func BuildRecipePrompt(mood, cuisine string) string {
	var sb strings.Builder
	sb.WriteString(systemSection)
	sb.WriteString("\n\n<|user|>\n")

	sb.WriteString("Create a unique recipe for someone feeling ")
	sb.WriteString(mood)
	if cuisine != "" {
		sb.WriteString(" and ")
		sb.WriteString(cuisine)
		sb.WriteString(" cuisine")
	}
	sb.WriteString(".\n\n")

	sb.WriteString(fmt.Sprintf("Mood Guideline: %s\n\n", MoodGuideline(mood)))
	sb.WriteString(outputFormatSection)
	sb.WriteString("\n\n")
	sb.WriteString(assistantTag)

	return sb.String()
}

// LeadIngredients returns up to n ingredient names with list markup and
// anything after the first comma removed.
func LeadIngredients(ingredients string, n int) []string {
	var out []string
	for _, line := range strings.Split(ingredients, "\n") {
		if len(out) == n {
			break
		}
		name := strings.Trim(line, "- \t\r*•")
		if i := strings.Index(name, ","); i >= 0 {
			name = name[:i]
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}

// BuildImagePrompt builds a food-photography prompt for a generated recipe.
func BuildImagePrompt(d recipe.Draft) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Professional food photography of %s.\n", d.Name))

	dish := strings.TrimSpace(strings.Join([]string{d.CuisineType, d.Category}, " "))
	if dish != "" {
		sb.WriteString(fmt.Sprintf("A beautiful %s dish.\n", dish))
	}

	if lead := LeadIngredients(string(d.Ingredients), 3); len(lead) > 0 {
		sb.WriteString(fmt.Sprintf("Made with %s.\n", strings.Join(lead, ", ")))
	}

	sb.WriteString(imageStyleSection)
	return sb.String()
}
