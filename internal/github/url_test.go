package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBlobURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantRef   string
		wantPath  string
		wantErr   bool
	}{
		{
			name:      "Valid HTTPS URL",
			url:       "https://github.com/octocat/hello-world/blob/main/src/index.ts",
			wantOwner: "octocat",
			wantRepo:  "hello-world",
			wantRef:   "main",
			wantPath:  "src/index.ts",
		},
		{
			name:      "URL without scheme",
			url:       "github.com/octocat/hello-world/blob/dev/README.md",
			wantOwner: "octocat",
			wantRepo:  "hello-world",
			wantRef:   "dev",
			wantPath:  "README.md",
		},
		{
			name:      "Trailing slash",
			url:       "https://github.com/octocat/hello-world/blob/main/pkg/util.go/",
			wantOwner: "octocat",
			wantRepo:  "hello-world",
			wantRef:   "main",
			wantPath:  "pkg/util.go",
		},
		{
			name:    "Missing path",
			url:     "https://github.com/octocat/hello-world/blob/main",
			wantErr: true,
		},
		{
			name:    "Pull request URL",
			url:     "https://github.com/octocat/hello-world/pull/1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, ref, path, err := ParseBlobURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
			assert.Equal(t, tt.wantRef, ref)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestDecodeBase64Content(t *testing.T) {
	t.Run("Content with embedded newlines", func(t *testing.T) {
		// "const x = 1;" encoded and wrapped the way the GitHub API returns it.
		encoded := "Y29uc3Qg\neCA9IDE7\n"
		decoded, err := DecodeBase64Content(encoded)
		assert.NoError(t, err)
		assert.Equal(t, "const x = 1;", decoded)
	})

	t.Run("Invalid base64", func(t *testing.T) {
		_, err := DecodeBase64Content("!!! not base64 !!!")
		assert.Error(t, err)
	})
}
