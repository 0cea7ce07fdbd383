package github

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeBase64Content decodes base64 blob content from the GitHub API. The
// API wraps encoded content with newlines, so all whitespace is stripped
// before decoding.
func DecodeBase64Content(encoded string) (string, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, encoded)

	raw, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return "", fmt.Errorf("invalid base64 content: %w", err)
	}
	return string(raw), nil
}
