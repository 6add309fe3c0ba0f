package dispatch

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// HTMLFormatter renders spans in the wire HTML dialect. The zero value is
// ready to use; HTML is the shared package-level instance.
type HTMLFormatter struct{}

// HTML is the package-level HTML formatter.
var HTML HTMLFormatter

func (HTMLFormatter) Bold(text string) string          { return "<b>" + text + "</b>" }
func (HTMLFormatter) Italic(text string) string        { return "<i>" + text + "</i>" }
func (HTMLFormatter) Underline(text string) string     { return "<u>" + text + "</u>" }
func (HTMLFormatter) Strikethrough(text string) string { return "<s>" + text + "</s>" }
func (HTMLFormatter) Spoiler(text string) string       { return "<tg-spoiler>" + text + "</tg-spoiler>" }
func (HTMLFormatter) Code(text string) string          { return "<code>" + text + "</code>" }
func (HTMLFormatter) Pre(text string) string           { return "<pre>" + text + "</pre>" }

func (HTMLFormatter) PreLanguage(text, language string) string {
	return `<pre><code class="language-` + language + `">` + text + "</code></pre>"
}

func (HTMLFormatter) TextLink(text, url string) string {
	return `<a href="` + url + `">` + text + "</a>"
}

func (HTMLFormatter) TextMention(text string, userID int64) string {
	return `<a href="tg://user?id=` + strconv.FormatInt(userID, 10) + `">` + text + "</a>"
}

func (HTMLFormatter) CustomEmoji(emoji, emojiID string) string {
	return `<tg-emoji data-emoji-id="` + emojiID + `">` + emoji + "</tg-emoji>"
}

var htmlQuoter = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Quote escapes the three characters the dialect reserves.
func (HTMLFormatter) Quote(text string) string { return htmlQuoter.Replace(text) }

// htmlFrame is one open tag during parsing.
type htmlFrame struct {
	tag    string
	entity MessageEntity // Offset set on open, Length on close
	merged bool          // code folded into an enclosing pre
}

// ParseHTML is the inverse of rendering with the HTML formatter: it strips
// markup from wire HTML and recovers the plain text plus the entities the
// markup encoded. A <pre><code class="language-x">..</code></pre> fence
// collapses into one pre entity carrying the language; an anchor with a
// tg://user?id= href becomes a text_mention with only the user ID set.
//
// Entities come back sorted by offset, longer spans first on ties.
// Mismatched, unterminated, or unrecognized tags are errors.
func ParseHTML(wire string) (string, []MessageEntity, error) {
	var (
		text     strings.Builder
		entities []MessageEntity
		stack    []htmlFrame
		pos      int // UTF-16 length of text written so far
	)

	i := 0
	for i < len(wire) {
		switch wire[i] {
		case '<':
			end := strings.IndexByte(wire[i:], '>')
			if end < 0 {
				return "", nil, fmt.Errorf("parse html: unterminated tag at offset %d", i)
			}
			tag := wire[i+1 : i+end]
			i += end + 1

			if strings.HasPrefix(tag, "/") {
				frame, rest, err := popFrame(stack, tag[1:])
				if err != nil {
					return "", nil, err
				}
				stack = rest
				if !frame.merged {
					frame.entity.Length = pos - frame.entity.Offset
					entities = append(entities, frame.entity)
				}
				continue
			}

			frame, err := openFrame(tag, pos)
			if err != nil {
				return "", nil, err
			}
			// Collapse <pre><code class="language-x"> into one pre
			// entity when the code tag opens right at the pre's start.
			if frame.entity.Type == EntityPre && frame.entity.Language != "" && len(stack) > 0 {
				if top := &stack[len(stack)-1]; top.tag == "pre" && top.entity.Offset == pos {
					top.entity.Language = frame.entity.Language
					frame.merged = true
				}
			}
			stack = append(stack, frame)

		case '&':
			r, consumed, err := unescapeHTML(wire[i:])
			if err != nil {
				return "", nil, err
			}
			text.WriteRune(r)
			pos++
			i += consumed

		default:
			r, size := utf8.DecodeRuneInString(wire[i:])
			text.WriteRune(r)
			pos += utf16Length(string(r))
			i += size
		}
	}

	if len(stack) > 0 {
		return "", nil, fmt.Errorf("parse html: unclosed <%s>", stack[len(stack)-1].tag)
	}

	sort.SliceStable(entities, func(i, j int) bool {
		if entities[i].Offset != entities[j].Offset {
			return entities[i].Offset < entities[j].Offset
		}
		return entities[i].Length > entities[j].Length
	})
	return text.String(), entities, nil
}

// openFrame maps one opening tag to the entity it encodes.
func openFrame(tag string, offset int) (htmlFrame, error) {
	name, attrs, found := strings.Cut(tag, " ")
	frame := htmlFrame{tag: name}

	switch name {
	case "b":
		frame.entity = NewBoldEntity(offset, 0)
	case "i":
		frame.entity = NewItalicEntity(offset, 0)
	case "u":
		frame.entity = NewUnderlineEntity(offset, 0)
	case "s":
		frame.entity = NewStrikethroughEntity(offset, 0)
	case "tg-spoiler":
		frame.entity = NewSpoilerEntity(offset, 0)
	case "pre":
		frame.entity = NewPreEntity(offset, 0, "")
	case "code":
		if found {
			class, err := attrValue(attrs, "class")
			if err != nil {
				return htmlFrame{}, err
			}
			if lang, ok := strings.CutPrefix(class, "language-"); ok {
				frame.entity = NewPreEntity(offset, 0, lang)
				return frame, nil
			}
		}
		frame.entity = NewCodeEntity(offset, 0)
	case "a":
		href, err := attrValue(attrs, "href")
		if err != nil {
			return htmlFrame{}, err
		}
		if idStr, ok := strings.CutPrefix(href, "tg://user?id="); ok {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				return htmlFrame{}, fmt.Errorf("parse html: bad user id in %q", href)
			}
			frame.entity = NewTextMentionEntity(offset, 0, &User{ID: id})
		} else {
			frame.entity = NewTextLinkEntity(offset, 0, href)
		}
	case "tg-emoji":
		id, err := attrValue(attrs, "data-emoji-id")
		if err != nil {
			return htmlFrame{}, err
		}
		frame.entity = NewCustomEmojiEntity(offset, 0, id)
	default:
		return htmlFrame{}, fmt.Errorf("parse html: unknown tag <%s>", name)
	}
	return frame, nil
}

// popFrame matches a closing tag against the top of the stack.
func popFrame(stack []htmlFrame, name string) (htmlFrame, []htmlFrame, error) {
	if len(stack) == 0 {
		return htmlFrame{}, nil, fmt.Errorf("parse html: unexpected </%s>", name)
	}
	frame := stack[len(stack)-1]
	want := frame.tag
	if frame.merged {
		want = "code"
	}
	if name != want {
		return htmlFrame{}, nil, fmt.Errorf("parse html: </%s> closes <%s>", name, want)
	}
	return frame, stack[:len(stack)-1], nil
}

// attrValue pulls one double-quoted attribute value out of a tag body.
func attrValue(attrs, name string) (string, error) {
	marker := name + `="`
	start := strings.Index(attrs, marker)
	if start < 0 {
		return "", fmt.Errorf("parse html: missing %s attribute", name)
	}
	rest := attrs[start+len(marker):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", fmt.Errorf("parse html: unterminated %s attribute", name)
	}
	return htmlUnescapeString(rest[:end]), nil
}

func htmlUnescapeString(s string) string {
	return strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`).Replace(s)
}

var htmlRefs = []struct {
	ref string
	r   rune
}{
	{"&amp;", '&'},
	{"&lt;", '<'},
	{"&gt;", '>'},
	{"&quot;", '"'},
}

// unescapeHTML decodes one character reference at the start of s.
func unescapeHTML(s string) (rune, int, error) {
	for _, e := range htmlRefs {
		if strings.HasPrefix(s, e.ref) {
			return e.r, len(e.ref), nil
		}
	}
	return 0, 0, fmt.Errorf("parse html: unknown character reference at %q", truncateForError(s))
}

func truncateForError(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
