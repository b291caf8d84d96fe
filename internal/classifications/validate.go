package classifications

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinTextLength is the fewest characters, after trimming, that pasted text
// must contain before it is handed to the classifier.
const MinTextLength = 10

// ValidateText rejects pasted text that is too short once trimmed or larger
// than maxBytes. A non-positive maxBytes disables the size check.
func ValidateText(raw string, maxBytes int64) error {
	if maxBytes > 0 && int64(len(raw)) > maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTextTooLarge, len(raw), maxBytes)
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(raw)); n < MinTextLength {
		return fmt.Errorf("%w: %d characters, need at least %d", ErrTextTooShort, n, MinTextLength)
	}
	return nil
}
