package dispatch

import (
	"fmt"
	"unicode/utf16"
)

// Formatter renders one styled span into a markup dialect. HTML and
// Markdown implement it; ApplyEntity drives it from wire entities and
// Builder drives it from chained calls.
type Formatter interface {
	Bold(text string) string
	Italic(text string) string
	Underline(text string) string
	Strikethrough(text string) string
	Spoiler(text string) string
	Code(text string) string
	Pre(text string) string
	PreLanguage(text, language string) string
	TextLink(text, url string) string
	TextMention(text string, userID int64) string
	CustomEmoji(emoji, emojiID string) string

	// Quote escapes text so the dialect renders it literally.
	Quote(text string) string
}

// utf16Length returns the length of s in UTF-16 code units.
func utf16Length(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// splitUTF16 cuts s at the UTF-16 range [offset, offset+length) and returns
// the three pieces. An out-of-bounds range is a *RangeError; offsets landing
// inside a surrogate pair cannot be expressed and also report the range.
func splitUTF16(s string, offset, length int) (before, span, after string, err error) {
	units := utf16.Encode([]rune(s))
	n := len(units)
	if offset < 0 || length < 0 || offset+length > n {
		return "", "", "", &RangeError{Offset: offset, Length: length, TextLen: n}
	}
	// A cut through a surrogate pair would decode to U+FFFD on both
	// sides; reject it rather than emit replacement characters.
	if splitsPair(units, offset) || splitsPair(units, offset+length) {
		return "", "", "", &RangeError{Offset: offset, Length: length, TextLen: n}
	}
	before = string(utf16.Decode(units[:offset]))
	span = string(utf16.Decode(units[offset : offset+length]))
	after = string(utf16.Decode(units[offset+length:]))
	return before, span, after, nil
}

// splitsPair reports whether cutting units at i lands between the two
// halves of a surrogate pair.
func splitsPair(units []uint16, i int) bool {
	if i <= 0 || i >= len(units) {
		return false
	}
	return units[i-1] >= 0xD800 && units[i-1] < 0xDC00 &&
		units[i] >= 0xDC00 && units[i] < 0xE000
}

// ApplyEntity renders text with one entity's span styled by f. The rest of
// the text passes through unchanged — quoting the surrounding text is the
// caller's concern, since entities from one message compose by repeated
// application.
//
// Empty text is ErrEmptyText. An entity range outside the text is a
// *RangeError.
func ApplyEntity(f Formatter, text string, e MessageEntity) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}
	before, span, after, err := splitUTF16(text, e.Offset, e.Length)
	if err != nil {
		return "", err
	}
	styled, err := applySpan(f, span, e)
	if err != nil {
		return "", err
	}
	return before + styled + after, nil
}

// ApplyEntityType renders the whole text styled as one entity of the given
// type, for entities that carry no auxiliary fields.
func ApplyEntityType(f Formatter, text, typ string) (string, error) {
	return ApplyEntity(f, text, NewEntity(typ, 0, utf16Length(text)))
}

func applySpan(f Formatter, span string, e MessageEntity) (string, error) {
	switch e.Type {
	case EntityBold:
		return f.Bold(span), nil
	case EntityItalic:
		return f.Italic(span), nil
	case EntityUnderline:
		return f.Underline(span), nil
	case EntityStrikethrough:
		return f.Strikethrough(span), nil
	case EntitySpoiler:
		return f.Spoiler(span), nil
	case EntityCode:
		return f.Code(span), nil
	case EntityPre:
		if e.Language != "" {
			return f.PreLanguage(span, e.Language), nil
		}
		return f.Pre(span), nil
	case EntityTextLink:
		return f.TextLink(span, e.URL), nil
	case EntityTextMention:
		var id int64
		if e.User != nil {
			id = e.User.ID
		}
		return f.TextMention(span, id), nil
	case EntityCustomEmoji:
		return f.CustomEmoji(span, e.CustomEmojiID), nil
	case EntityMention:
		return "@" + span, nil
	case EntityHashtag:
		return "#" + span, nil
	case EntityCashtag:
		return "$" + span, nil
	case EntityBotCommand:
		return "/" + span, nil
	case EntityURL, EntityEmail, EntityPhoneNumber:
		return span, nil
	}
	return "", fmt.Errorf("unknown entity type: %q", e.Type)
}
