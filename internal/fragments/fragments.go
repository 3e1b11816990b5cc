// Package fragments defines the fragment source boundary: how subject text
// units reach the engine. Real platform clients live behind the Source
// interface and are out of scope here; the package ships a deterministic
// sample source for demos and tests.
package fragments

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/talentsignal/profiler/internal/models"
)

// Source returns the fragments attributed to a subject handle.
type Source interface {
	Fetch(ctx context.Context, handle string) ([]models.Fragment, error)
}

// ErrInvalidURL marks a profile URL no handle could be extracted from.
var ErrInvalidURL = errors.New("invalid profile URL")

// ExtractHandle pulls the subject handle out of a profile URL: the first
// path element, rejected when it still looks like a query or a raw handle.
func ExtractHandle(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	parts := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: no handle in %q", ErrInvalidURL, rawURL)
	}

	handle := parts[0]
	if strings.Contains(handle, "?") || strings.Contains(handle, "@") {
		return "", fmt.Errorf("%w: no handle in %q", ErrInvalidURL, rawURL)
	}
	return handle, nil
}

// FromTexts wraps bare statement strings into fragments with synthetic IDs
// and descending day-spaced timestamps, newest first.
func FromTexts(texts []string) []models.Fragment {
	now := time.Now()
	fragments := make([]models.Fragment, 0, len(texts))
	for i, text := range texts {
		fragments = append(fragments, models.Fragment{
			Text:      text,
			CreatedAt: now.Add(-time.Duration(i) * 24 * time.Hour),
			ID:        fmt.Sprintf("custom_%d", i),
		})
	}
	return fragments
}
