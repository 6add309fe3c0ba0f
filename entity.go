package dispatch

import "fmt"

// Entity types as they appear on the wire.
const (
	EntityMention       = "mention"
	EntityHashtag       = "hashtag"
	EntityCashtag       = "cashtag"
	EntityBotCommand    = "bot_command"
	EntityURL           = "url"
	EntityEmail         = "email"
	EntityPhoneNumber   = "phone_number"
	EntityBold          = "bold"
	EntityItalic        = "italic"
	EntityUnderline     = "underline"
	EntityStrikethrough = "strikethrough"
	EntitySpoiler       = "spoiler"
	EntityCode          = "code"
	EntityPre           = "pre"
	EntityTextLink      = "text_link"
	EntityTextMention   = "text_mention"
	EntityCustomEmoji   = "custom_emoji"
)

// MessageEntity marks one span of a message's text as special. Offset and
// Length are in UTF-16 code units, the unit the wire protocol counts in; a
// character outside the Basic Multilingual Plane counts as two units.
type MessageEntity struct {
	Type          string `json:"type"`
	Offset        int    `json:"offset"`
	Length        int    `json:"length"`
	URL           string `json:"url,omitempty"`
	User          *User  `json:"user,omitempty"`
	Language      string `json:"language,omitempty"`
	CustomEmojiID string `json:"custom_emoji_id,omitempty"`
}

// NewEntity creates an entity of any type with no auxiliary fields.
func NewEntity(typ string, offset, length int) MessageEntity {
	return MessageEntity{Type: typ, Offset: offset, Length: length}
}

// NewBoldEntity marks a span as bold.
func NewBoldEntity(offset, length int) MessageEntity {
	return NewEntity(EntityBold, offset, length)
}

// NewItalicEntity marks a span as italic.
func NewItalicEntity(offset, length int) MessageEntity {
	return NewEntity(EntityItalic, offset, length)
}

// NewUnderlineEntity marks a span as underlined.
func NewUnderlineEntity(offset, length int) MessageEntity {
	return NewEntity(EntityUnderline, offset, length)
}

// NewStrikethroughEntity marks a span as struck through.
func NewStrikethroughEntity(offset, length int) MessageEntity {
	return NewEntity(EntityStrikethrough, offset, length)
}

// NewSpoilerEntity marks a span as a spoiler.
func NewSpoilerEntity(offset, length int) MessageEntity {
	return NewEntity(EntitySpoiler, offset, length)
}

// NewCodeEntity marks a span as inline code.
func NewCodeEntity(offset, length int) MessageEntity {
	return NewEntity(EntityCode, offset, length)
}

// NewPreEntity marks a span as a code block, optionally tagged with a
// language.
func NewPreEntity(offset, length int, language string) MessageEntity {
	e := NewEntity(EntityPre, offset, length)
	e.Language = language
	return e
}

// NewTextLinkEntity marks a span as a link to url.
func NewTextLinkEntity(offset, length int, url string) MessageEntity {
	e := NewEntity(EntityTextLink, offset, length)
	e.URL = url
	return e
}

// NewTextMentionEntity marks a span as a mention of a user without a
// username.
func NewTextMentionEntity(offset, length int, user *User) MessageEntity {
	e := NewEntity(EntityTextMention, offset, length)
	e.User = user
	return e
}

// NewCustomEmojiEntity marks a span as a custom emoji placeholder.
func NewCustomEmojiEntity(offset, length int, customEmojiID string) MessageEntity {
	e := NewEntity(EntityCustomEmoji, offset, length)
	e.CustomEmojiID = customEmojiID
	return e
}

// EntityText returns the span of text the entity covers. The entity's range
// is interpreted in UTF-16 units; a range extending past the end of the text
// or splitting a surrogate pair is a *RangeError.
func EntityText(text string, e MessageEntity) (string, error) {
	_, span, _, err := splitUTF16(text, e.Offset, e.Length)
	if err != nil {
		return "", err
	}
	return span, nil
}

// ValidateEntities checks a set of entities against the text they annotate:
// every range must be in bounds, no two entities may partially overlap
// (nesting and exact sharing are fine), and code and pre spans may not
// contain other entities nor be wrapped by anything except the styling
// types (bold, italic, underline, strikethrough, spoiler). A code or pre
// span sharing its exact range with another entity is treated as the inner
// of the two, regardless of slice order.
func ValidateEntities(text string, entities []MessageEntity) error {
	n := utf16Length(text)
	for _, e := range entities {
		if e.Offset < 0 || e.Length < 0 || e.Offset+e.Length > n {
			return &RangeError{Offset: e.Offset, Length: e.Length, TextLen: n}
		}
	}

	for i, a := range entities {
		for _, b := range entities[i+1:] {
			aEnd, bEnd := a.Offset+a.Length, b.Offset+b.Length
			if aEnd <= b.Offset || bEnd <= a.Offset {
				continue // disjoint
			}
			aInB := b.Offset <= a.Offset && aEnd <= bEnd
			bInA := a.Offset <= b.Offset && bEnd <= aEnd
			if !aInB && !bInA {
				return fmt.Errorf("entities %s [%d, %d) and %s [%d, %d) partially overlap",
					a.Type, a.Offset, aEnd, b.Type, b.Offset, bEnd)
			}

			inner, outer := a, b
			switch {
			case bInA && !aInB:
				inner, outer = b, a
			case aInB && bInA:
				// Identical ranges: the code or pre span counts as the inner
				// one, whichever order the slice lists them in, so styling on
				// the same range reads as wrapping the code.
				if isCodeEntity(b.Type) && !isCodeEntity(a.Type) {
					inner, outer = b, a
				}
			}
			if outer.Type == EntityCode || outer.Type == EntityPre {
				return fmt.Errorf("%s entity cannot contain a %s entity", outer.Type, inner.Type)
			}
			if (inner.Type == EntityCode || inner.Type == EntityPre) && !isStylingEntity(outer.Type) {
				return fmt.Errorf("%s entity cannot be wrapped by %s", inner.Type, outer.Type)
			}
		}
	}
	return nil
}

func isCodeEntity(typ string) bool {
	return typ == EntityCode || typ == EntityPre
}

func isStylingEntity(typ string) bool {
	switch typ {
	case EntityBold, EntityItalic, EntityUnderline, EntityStrikethrough, EntitySpoiler:
		return true
	}
	return false
}
