package repoinfo

import "strings"

// extensionLanguages maps file extensions to editor language identifiers.
var extensionLanguages = map[string]string{
	// JavaScript / TypeScript
	"js":  "javascript",
	"jsx": "javascript",
	"ts":  "typescript",
	"tsx": "typescript",
	"mjs": "javascript",

	// Web languages
	"html": "html",
	"htm":  "html",
	"css":  "css",
	"scss": "scss",
	"sass": "scss",
	"less": "less",

	// Data formats
	"json": "json",
	"xml":  "xml",
	"yaml": "yaml",
	"yml":  "yaml",

	// Programming languages
	"py":     "python",
	"java":   "java",
	"c":      "c",
	"cpp":    "cpp",
	"cc":     "cpp",
	"cxx":    "cpp",
	"cs":     "csharp",
	"php":    "php",
	"rb":     "ruby",
	"go":     "go",
	"rs":     "rust",
	"swift":  "swift",
	"kt":     "kotlin",
	"kts":    "kotlin",
	"vue":    "vue",
	"svelte": "svelte",

	// Shell / config
	"sh":   "shell",
	"bash": "shell",
	"zsh":  "shell",
	"fish": "shell",
	"ps1":  "powershell",
	"bat":  "bat",
	"cmd":  "bat",

	// Markup / documentation
	"md":       "markdown",
	"markdown": "markdown",
	"tex":      "latex",
	"txt":      "plaintext",

	// Configuration
	"dockerfile": "dockerfile",
	"env":        "shell",
	"ini":        "ini",
	"toml":       "toml",
	"cfg":        "ini",
	"conf":       "ini",

	// SQL
	"sql":      "sql",
	"mysql":    "sql",
	"postgres": "sql",
	"sqlite":   "sql",
}

// extensionlessLanguages handles well-known files that carry no extension.
var extensionlessLanguages = map[string]string{
	"dockerfile": "dockerfile",
	"makefile":   "makefile",
	"readme":     "markdown",
	"license":    "plaintext",
	"changelog":  "markdown",
}

// LanguageForFile maps a filename to an editor language identifier, falling
// back to "plaintext" for anything unrecognized.
func LanguageForFile(filename string) string {
	base := filename
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	lower := strings.ToLower(base)

	dot := strings.LastIndex(lower, ".")
	if dot < 0 || dot == len(lower)-1 {
		if lang, ok := extensionlessLanguages[lower]; ok {
			return lang
		}
		return "plaintext"
	}

	if lang, ok := extensionLanguages[lower[dot+1:]]; ok {
		return lang
	}
	return "plaintext"
}
