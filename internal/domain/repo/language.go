package repo

// DefaultLanguageColor is used for languages without a dedicated colour and for repositories without a language
const DefaultLanguageColor = "#cccccc"

var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"TypeScript": "#2b7489",
	"C":          "#555555",
	"C++":        "#f34b7d",
	"Ruby":       "#701516",
}

// LanguageColor returns the card colour for a primary language
func LanguageColor(language *string) string {
	if language == nil {
		return DefaultLanguageColor
	}
	if c, ok := languageColors[*language]; ok {
		return c
	}
	return DefaultLanguageColor
}
