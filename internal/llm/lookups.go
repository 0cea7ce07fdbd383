package llm

import (
	"strings"

	"github.com/deepakkumardewani/review-pilot/internal/core"
)

const fallbackConventions = "industry standard practices"

var languageConventions = map[string]string{
	"javascript": "ESLint, Prettier, camelCase naming",
	"typescript": "TSLint/ESLint, strict typing, interfaces over types",
	"python":     "PEP 8, snake_case naming, type hints",
	"java":       "Google Java Style, camelCase, proper exception handling",
	"c#":         "Microsoft coding conventions, PascalCase",
	"go":         "gofmt, effective Go guidelines",
	"rust":       "rustfmt, Rust style guide, ownership patterns",
	"jsx":        "React best practices, hooks patterns, component composition",
	"tsx":        "React + TypeScript best practices, proper prop typing",
	"css":        "BEM methodology, consistent naming, mobile-first",
	"scss":       "Sass best practices, nesting limits, variable usage",
	"html":       "semantic HTML, accessibility standards, W3C validation",
	"json":       "proper formatting, schema validation",
	"yaml":       "consistent indentation, proper syntax",
	"sql":        "standard SQL formatting, security best practices",
}

// ConventionsForLanguage returns a short style-convention phrase for the
// given language, case-insensitively.
func ConventionsForLanguage(language string) string {
	if conventions, ok := languageConventions[strings.ToLower(language)]; ok {
		return conventions
	}
	return fallbackConventions
}

var contextGuidelines = map[core.FileContext]string{
	core.ContextFrontendComponent: "Focus on component reusability, prop validation, accessibility, and performance optimizations like memoization.",
	core.ContextFrontendPage:      "Evaluate routing, data fetching patterns, SEO considerations, and user experience.",
	core.ContextFrontendHook:      "Review hook dependencies, cleanup functions, and proper use of React hook patterns.",
	core.ContextBackendAPI:        "Check authentication, authorization, input validation, error handling, and API design patterns.",
	core.ContextUtility:           "Ensure pure functions, proper error handling, comprehensive testing, and clear documentation.",
	core.ContextStateManagement:   "Review state structure, immutability, action patterns, and performance implications.",
	core.ContextTest:              "Evaluate test coverage, test quality, mock usage, and testing best practices.",
	core.ContextConfiguration:     "Check security of exposed values, proper environment handling, and documentation.",
	core.ContextGeneric:           "Apply general code quality principles and language-specific best practices.",
}

// GuidanceForContext returns the best-practices sentence for a file role.
// Unknown roles fall back to the generic entry.
func GuidanceForContext(fileContext core.FileContext) string {
	if guidance, ok := contextGuidelines[fileContext]; ok {
		return guidance
	}
	return contextGuidelines[core.ContextGeneric]
}
