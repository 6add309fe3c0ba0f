package dispatch

import (
	"strconv"
	"strings"
)

// MarkdownFormatter renders spans in the legacy Markdown dialect. The
// carriage returns after italic and underline markers keep __ from being
// read as bold-adjacent when the styles touch. The zero value is ready to
// use; Markdown is the shared package-level instance.
type MarkdownFormatter struct{}

// Markdown is the package-level Markdown formatter.
var Markdown MarkdownFormatter

func (MarkdownFormatter) Bold(text string) string          { return "*" + text + "*" }
func (MarkdownFormatter) Italic(text string) string        { return "_\r" + text + "_\r" }
func (MarkdownFormatter) Underline(text string) string     { return "__\r" + text + "__\r" }
func (MarkdownFormatter) Strikethrough(text string) string { return "~" + text + "~" }
func (MarkdownFormatter) Spoiler(text string) string       { return "|" + text + "|" }
func (MarkdownFormatter) Code(text string) string          { return "`" + text + "`" }
func (MarkdownFormatter) Pre(text string) string           { return "```\n" + text + "\n```" }

func (MarkdownFormatter) PreLanguage(text, language string) string {
	return "```" + language + "\n" + text + "\n```"
}

func (MarkdownFormatter) TextLink(text, url string) string {
	return "[" + text + "](" + url + ")"
}

func (f MarkdownFormatter) TextMention(text string, userID int64) string {
	return f.TextLink(text, "tg://user?id="+strconv.FormatInt(userID, 10))
}

func (f MarkdownFormatter) CustomEmoji(emoji, emojiID string) string {
	return f.TextLink(emoji, "tg://emoji?id="+emojiID)
}

var markdownQuoter = strings.NewReplacer(
	`_`, `\_`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
	`~`, `\~`,
	"`", "\\`",
	`>`, `\>`,
	`#`, `\#`,
	`+`, `\+`,
	`-`, `\-`,
	`=`, `\=`,
	`|`, `\|`,
	`{`, `\{`,
	`}`, `\}`,
	`.`, `\.`,
	`!`, `\!`,
	`\`, `\\`,
)

// Quote backslash-escapes every character the dialect reserves.
func (MarkdownFormatter) Quote(text string) string { return markdownQuoter.Replace(text) }
