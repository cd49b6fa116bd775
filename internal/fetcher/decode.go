package fetcher

import (
	"encoding/base64"
	"fmt"

	"assistant-trigger/pkg/gitlab"
)

func decodeContent(f gitlab.EncodedFile) (string, error) {
	switch f.Encoding {
	case "base64":
		raw, err := base64.StdEncoding.DecodeString(f.Content)
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", f.Path, err)
		}
		return string(raw), nil
	case "", "text":
		return f.Content, nil
	default:
		return "", fmt.Errorf("%w %q for %s", ErrUnknownEncoding, f.Encoding, f.Path)
	}
}
