package post

import (
	"bytes"
	"fmt"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/sanitizer"
)

// Preview renders the body to HTML and sanitizes it for display.
// Raw HTML in the markdown is not passed through.
func (p *Post) Preview() (string, error) {
	if len(p.Body) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdown.Convert(p.Body, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return sanitizer.Preview(buf.String()), nil
}
