package image

import "strings"

// DefaultFallbackImage is used when no keyword in the recipe name matches.
const DefaultFallbackImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=1024"

type fallbackEntry struct {
	keyword string
	url     string
}

// Checked in order; the first keyword found in the name wins.
var fallbackImages = []fallbackEntry{
	{"bowl", "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=1024"},
	{"smoothie", "https://images.unsplash.com/photo-1553530666-ba11a7da3888?w=1024"},
	{"pasta", "https://images.unsplash.com/photo-1551183053-bf91a1d81141?w=1024"},
	{"cookie", "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=1024"},
	{"pizza", "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=1024"},
	{"salad", "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=1024"},
	{"soup", "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=1024"},
	{"cake", "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=1024"},
	{"curry", "https://images.unsplash.com/photo-1455619452474-d2be8b1e70cd?w=1024"},
	{"taco", "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?w=1024"},
}

// SelectFallbackImage picks a curated photo for a recipe by keyword.
func SelectFallbackImage(name string) string {
	lower := strings.ToLower(name)
	for _, e := range fallbackImages {
		if strings.Contains(lower, e.keyword) {
			return e.url
		}
	}
	return DefaultFallbackImage
}
