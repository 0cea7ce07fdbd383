package github

import (
	"fmt"
	"regexp"
	"strings"
)

var blobURLRegex = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)/blob/([^/]+)/(.+)$`)

// ParseBlobURL parses a GitHub file URL and extracts owner, repo, ref, and
// file path. Supported format: https://github.com/{owner}/{repo}/blob/{ref}/{path}
func ParseBlobURL(url string) (owner, repo, ref, path string, err error) {
	url = strings.TrimSuffix(url, "/")

	matches := blobURLRegex.FindStringSubmatch(url)
	if len(matches) != 5 {
		return "", "", "", "", fmt.Errorf("invalid file URL format: %s", url)
	}
	return matches[1], matches[2], matches[3], matches[4], nil
}
