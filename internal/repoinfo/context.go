// Package repoinfo derives review context from a file's location and from the
// repository's dependency manifest: a semantic role for the file, a short
// natural-language summary of the project, and the detected framework.
package repoinfo

import (
	"slices"
	"sort"
	"strings"

	"github.com/deepakkumardewani/review-pilot/internal/core"
)

// manifestNames are well-known dependency manifest filenames that classify a
// file as configuration on exact match.
var manifestNames = []string{
	"package.json",
	"requirements.txt",
	"pom.xml",
	"yarn.lock",
	"package-lock.json",
}

// InferFileContext classifies a file's semantic role from its path. Rules are
// tested in a fixed priority order and the first match wins; several rules can
// hold for the same path, so the order is load-bearing. Note in particular
// that a test file under utils/ classifies as utility, because the directory
// rule is checked before the test-name rule.
func InferFileContext(filePath string) core.FileContext {
	lower := strings.ToLower(filePath)
	parts := strings.Split(lower, "/")
	fileName := parts[len(parts)-1]

	switch {
	case slices.Contains(parts, "src") && slices.Contains(parts, "components"):
		return core.ContextFrontendComponent
	case slices.Contains(parts, "pages") || slices.Contains(parts, "app"):
		return core.ContextFrontendPage
	case slices.Contains(parts, "api") || slices.Contains(parts, "routes") || slices.Contains(parts, "server"):
		return core.ContextBackendAPI
	case slices.Contains(parts, "hooks") || slices.Contains(parts, "hook"):
		return core.ContextFrontendHook
	case slices.Contains(parts, "utils") || slices.Contains(parts, "lib"):
		return core.ContextUtility
	case slices.Contains(parts, "store") || slices.Contains(parts, "state"):
		return core.ContextStateManagement
	case slices.Contains(parts, "test") || slices.Contains(parts, "spec") ||
		strings.Contains(fileName, "test") || strings.Contains(fileName, "spec"):
		return core.ContextTest
	case slices.Contains(manifestNames, fileName):
		return core.ContextConfiguration
	case strings.HasSuffix(fileName, ".config.js") ||
		strings.HasSuffix(fileName, ".config.ts") ||
		strings.HasSuffix(fileName, ".config.mjs"):
		return core.ContextConfiguration
	default:
		return core.ContextGeneric
	}
}

// BuildRepoContext assembles the natural-language project summary from
// repository metadata. Sections appear in a fixed order and absent sections
// contribute nothing; the result is trimmed of trailing whitespace and may be
// empty when no metadata is available.
func BuildRepoContext(md core.RepoMetadata) string {
	var b strings.Builder

	if md.Framework != "" {
		b.WriteString("Project uses " + md.Framework + " framework. ")
	}
	if len(md.Dependencies) > 0 {
		b.WriteString("Dependencies: " + joinKeys(md.Dependencies) + ". ")
	}
	if len(md.DevDependencies) > 0 {
		b.WriteString("Dev dependencies: " + joinKeys(md.DevDependencies) + ". ")
	}

	return strings.TrimRight(b.String(), " ")
}

// joinKeys returns the map's keys comma-joined in sorted order, so the
// summary is deterministic across runs.
func joinKeys(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
