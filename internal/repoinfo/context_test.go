package repoinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deepakkumardewani/review-pilot/internal/core"
)

func TestInferFileContext(t *testing.T) {
	tests := []struct {
		path string
		want core.FileContext
	}{
		{"src/components/Button.tsx", core.ContextFrontendComponent},
		{"src/components/foo.ts", core.ContextFrontendComponent},
		// Rule order matters: src+components is checked before hooks.
		{"src/hooks/components/x.ts", core.ContextFrontendComponent},
		{"src/hooks/useFoo.ts", core.ContextFrontendHook},
		{"pages/index.tsx", core.ContextFrontendPage},
		{"app/dashboard/page.tsx", core.ContextFrontendPage},
		{"server/handlers.go", core.ContextBackendAPI},
		{"src/api/review/route.ts", core.ContextBackendAPI},
		{"src/routes/users.ts", core.ContextBackendAPI},
		// The utils rule fires before the test-name rule, so a test file
		// under utils/ is classified as utility.
		{"utils/math.test.ts", core.ContextUtility},
		{"utils/math.ts", core.ContextUtility},
		{"lib/helpers.ts", core.ContextUtility},
		{"store/slices/reviewSlice.ts", core.ContextStateManagement},
		{"state/machine.ts", core.ContextStateManagement},
		{"foo.test.ts", core.ContextTest},
		{"foo.spec.js", core.ContextTest},
		{"test/fixtures.ts", core.ContextTest},
		{"package.json", core.ContextConfiguration},
		{"requirements.txt", core.ContextConfiguration},
		{"yarn.lock", core.ContextConfiguration},
		{"tailwind.config.js", core.ContextConfiguration},
		{"vite.config.ts", core.ContextConfiguration},
		{"next.config.mjs", core.ContextConfiguration},
		{"main.go", core.ContextGeneric},
		{"README.md", core.ContextGeneric},
		{"SRC/COMPONENTS/Button.TSX", core.ContextFrontendComponent},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, InferFileContext(tt.path))
		})
	}
}

func TestBuildRepoContext(t *testing.T) {
	tests := []struct {
		name string
		md   core.RepoMetadata
		want string
	}{
		{
			name: "Framework and dependencies only",
			md: core.RepoMetadata{
				Framework:    "React",
				Dependencies: map[string]string{"react": "18.0.0"},
			},
			want: "Project uses React framework. Dependencies: react.",
		},
		{
			name: "All sections",
			md: core.RepoMetadata{
				Framework:       "Next.js",
				Dependencies:    map[string]string{"next": "14.0.0", "react": "18.0.0"},
				DevDependencies: map[string]string{"typescript": "5.0.0"},
			},
			want: "Project uses Next.js framework. Dependencies: next, react. Dev dependencies: typescript.",
		},
		{
			name: "Dependencies only",
			md:   core.RepoMetadata{Dependencies: map[string]string{"express": "4.18.0"}},
			want: "Dependencies: express.",
		},
		{
			name: "Empty metadata",
			md:   core.RepoMetadata{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildRepoContext(tt.md))
		})
	}
}

func TestDetectFramework(t *testing.T) {
	tests := []struct {
		name    string
		deps    map[string]string
		devDeps map[string]string
		want    string
	}{
		{
			name: "React wins over Next when both present",
			deps: map[string]string{"next": "14.0.0", "react": "18.0.0"},
			want: "React",
		},
		{
			name:    "Framework in devDependencies",
			devDeps: map[string]string{"svelte": "4.0.0"},
			want:    "Svelte",
		},
		{
			name: "Scoped package",
			deps: map[string]string{"@nestjs/core": "10.0.0"},
			want: "NestJS",
		},
		{
			name: "No known framework",
			deps: map[string]string{"lodash": "4.17.21"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFramework(tt.deps, tt.devDeps))
		})
	}
}
