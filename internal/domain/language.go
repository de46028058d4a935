package domain

import (
	"fmt"
	"sort"
	"strings"

	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

// LanguageID is the numeric execution environment id understood by the sandbox backend.
type LanguageID int

// Language pairs a canonical language name with its backend id.
type Language struct {
	Name string     `json:"name"`
	ID   LanguageID `json:"id"`
}

// Judge0 CE ids. Never mutated after init.
var languageTable = map[string]LanguageID{
	"javascript": 63,
	"python":     71,
	"java":       62,
	"cpp":        54,
	"c":          50,
	"csharp":     51,
	"go":         60,
	"rust":       73,
	"php":        68,
	"ruby":       72,
	"swift":      83,
	"kotlin":     78,
	"typescript": 74,
}

var languageAliases = map[string]string{
	"c++":    "cpp",
	"c#":     "csharp",
	"golang": "go",
	"js":     "javascript",
	"py":     "python",
	"ts":     "typescript",
}

// ResolveLanguage maps a human readable language name to its backend id.
// Matching is case-insensitive; unknown names fail with errs.ErrUnsupportedLanguage.
func ResolveLanguage(name string) (LanguageID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := languageAliases[key]; ok {
		key = canonical
	}
	id, ok := languageTable[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedLanguage, name)
	}
	return id, nil
}

// SupportedLanguages returns the registry sorted by name.
func SupportedLanguages() []Language {
	languages := make([]Language, 0, len(languageTable))
	for name, id := range languageTable {
		languages = append(languages, Language{Name: name, ID: id})
	}
	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Name < languages[j].Name
	})
	return languages
}
