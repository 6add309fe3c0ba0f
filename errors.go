package dispatch

import (
	"errors"
	"fmt"
)

// ErrEmptyText is returned by formatting operations on zero-length text.
var ErrEmptyText = errors.New("empty text")

// MismatchError reports that a requested narrow type does not match the
// update's classification. It names both sides so schedulers and logs can
// tell what a handler wanted against what actually arrived.
//
// A mismatch aborts only the current dispatch. Wrap the parameter in Maybe
// or Try to downgrade it to an absent value or a carried error.
type MismatchError struct {
	// Requested is the name of the narrow type the handler asked for.
	Requested string

	// Kind is the update's actual kind.
	Kind Kind

	// Content is the actual content shape, when Kind carries a message.
	// ContentUnknown otherwise.
	Content Content
}

func (e *MismatchError) Error() string {
	if e.Kind.CarriesMessage() {
		return fmt.Sprintf("extract %s: update is %s/%s", e.Requested, e.Kind, e.Content)
	}
	return fmt.Sprintf("extract %s: update is %s", e.Requested, e.Kind)
}

// RangeError reports an entity whose UTF-16 offset+length exceeds the
// UTF-16 length of the text it addresses. The formatter never truncates;
// an out-of-range entity is always an error.
type RangeError struct {
	Offset  int
	Length  int
	TextLen int // UTF-16 code units
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("entity range [%d, %d) out of bounds for text of %d UTF-16 units",
		e.Offset, e.Offset+e.Length, e.TextLen)
}
