package dispatch

// Builder accumulates a formatted message span by span. Each styled method
// appends its span already rendered by the builder's formatter; Text
// appends raw and Quote appends escaped. Errors are sticky: the first one
// stops further appends and surfaces from Err.
//
// Example:
//
//	text := dispatch.NewBuilder(dispatch.HTML).
//	    Text("Hello, ").
//	    Bold("world").
//	    Text("!").
//	    String()
//	// "Hello, <b>world</b>!"
type Builder struct {
	f    Formatter
	text string
	err  error
}

// NewBuilder creates an empty Builder rendering with f.
func NewBuilder(f Formatter) *Builder {
	return &Builder{f: f}
}

// Text appends raw text with no escaping or styling.
func (b *Builder) Text(text string) *Builder {
	if b.err != nil {
		return b
	}
	b.text += text
	return b
}

// Quote appends text escaped so the dialect renders it literally.
func (b *Builder) Quote(text string) *Builder {
	return b.Text(b.f.Quote(text))
}

// Entity appends a span and styles it with e's type and auxiliary fields;
// e's offset and length are ignored and recomputed for the appended span.
func (b *Builder) Entity(span string, e MessageEntity) *Builder {
	if b.err != nil {
		return b
	}
	e.Offset = utf16Length(b.text)
	e.Length = utf16Length(span)
	text, err := ApplyEntity(b.f, b.text+span, e)
	if err != nil {
		b.err = err
		return b
	}
	b.text = text
	return b
}

// Mention appends a mention of username. The leading @ is added; pass the
// bare username. For users without a username use TextMention.
func (b *Builder) Mention(username string) *Builder {
	return b.Entity(username, NewEntity(EntityMention, 0, 0))
}

// Hashtag appends a hashtag; the leading # is added.
func (b *Builder) Hashtag(tag string) *Builder {
	return b.Entity(tag, NewEntity(EntityHashtag, 0, 0))
}

// Cashtag appends a cashtag; the leading $ is added.
func (b *Builder) Cashtag(tag string) *Builder {
	return b.Entity(tag, NewEntity(EntityCashtag, 0, 0))
}

// BotCommand appends a command; the leading / is added.
func (b *Builder) BotCommand(command string) *Builder {
	return b.Entity(command, NewEntity(EntityBotCommand, 0, 0))
}

// URL appends a bare URL.
func (b *Builder) URL(url string) *Builder {
	return b.Entity(url, NewEntity(EntityURL, 0, 0))
}

// Email appends an email address.
func (b *Builder) Email(email string) *Builder {
	return b.Entity(email, NewEntity(EntityEmail, 0, 0))
}

// PhoneNumber appends a phone number.
func (b *Builder) PhoneNumber(phoneNumber string) *Builder {
	return b.Entity(phoneNumber, NewEntity(EntityPhoneNumber, 0, 0))
}

// Bold appends a bold span.
func (b *Builder) Bold(text string) *Builder {
	return b.Entity(text, NewEntity(EntityBold, 0, 0))
}

// Italic appends an italic span.
func (b *Builder) Italic(text string) *Builder {
	return b.Entity(text, NewEntity(EntityItalic, 0, 0))
}

// Underline appends an underlined span.
func (b *Builder) Underline(text string) *Builder {
	return b.Entity(text, NewEntity(EntityUnderline, 0, 0))
}

// Strikethrough appends a struck-through span.
func (b *Builder) Strikethrough(text string) *Builder {
	return b.Entity(text, NewEntity(EntityStrikethrough, 0, 0))
}

// Spoiler appends a spoiler span.
func (b *Builder) Spoiler(text string) *Builder {
	return b.Entity(text, NewEntity(EntitySpoiler, 0, 0))
}

// Code appends an inline code span.
func (b *Builder) Code(text string) *Builder {
	return b.Entity(text, NewEntity(EntityCode, 0, 0))
}

// Pre appends a code block.
func (b *Builder) Pre(text string) *Builder {
	return b.Entity(text, NewEntity(EntityPre, 0, 0))
}

// PreLanguage appends a code block tagged with a language.
func (b *Builder) PreLanguage(text, language string) *Builder {
	return b.Entity(text, NewPreEntity(0, 0, language))
}

// TextLink appends a span linking to url.
func (b *Builder) TextLink(text, url string) *Builder {
	return b.Entity(text, NewTextLinkEntity(0, 0, url))
}

// TextMention appends a span mentioning a user without a username.
func (b *Builder) TextMention(text string, userID int64) *Builder {
	return b.Entity(text, NewTextMentionEntity(0, 0, &User{ID: userID}))
}

// CustomEmoji appends a custom emoji with its plain-emoji fallback.
func (b *Builder) CustomEmoji(emoji, customEmojiID string) *Builder {
	return b.Entity(emoji, NewCustomEmojiEntity(0, 0, customEmojiID))
}

// String returns the accumulated formatted text. After an error it returns
// what was built before the error.
func (b *Builder) String() string { return b.text }

// Err returns the first error any append hit, or nil.
func (b *Builder) Err() error { return b.err }
