package dispatch

import (
	"errors"
	"testing"
)

func TestApplyEntity(t *testing.T) {
	bold := NewBoldEntity(7, 5)

	t.Run("html", func(t *testing.T) {
		got, err := ApplyEntity(HTML, "Hello, world!", bold)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "Hello, <b>world</b>!"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("markdown", func(t *testing.T) {
		got, err := ApplyEntity(Markdown, "Hello, world!", bold)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "Hello, *world*!"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := ApplyEntity(HTML, "", bold)
		if !errors.Is(err, ErrEmptyText) {
			t.Errorf("error = %v, want ErrEmptyText", err)
		}
	})

	t.Run("range out of bounds", func(t *testing.T) {
		_, err := ApplyEntity(HTML, "Hello, world!", NewBoldEntity(0, 20))

		var rerr *RangeError
		if !errors.As(err, &rerr) {
			t.Fatalf("error = %v, want *RangeError", err)
		}
		if rerr.TextLen != 13 {
			t.Errorf("TextLen = %d, want 13", rerr.TextLen)
		}
	})

	t.Run("offsets count utf-16 units", func(t *testing.T) {
		// The rocket is one rune but two UTF-16 units.
		got, err := ApplyEntity(HTML, "🚀 go", NewBoldEntity(3, 2))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "🚀 <b>go</b>"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("splitting a surrogate pair is a range error", func(t *testing.T) {
		_, err := ApplyEntity(HTML, "🚀🚀", NewBoldEntity(1, 2))

		var rerr *RangeError
		if !errors.As(err, &rerr) {
			t.Fatalf("error = %v, want *RangeError", err)
		}
	})

	t.Run("unknown entity type", func(t *testing.T) {
		if _, err := ApplyEntity(HTML, "x", NewEntity("blink", 0, 1)); err == nil {
			t.Error("expected error for unknown entity type")
		}
	})
}

func TestApplyEntityPlainTypes(t *testing.T) {
	cases := []struct {
		typ  string
		in   string
		want string
	}{
		{EntityMention, "durov", "@durov"},
		{EntityHashtag, "golang", "#golang"},
		{EntityCashtag, "USD", "$USD"},
		{EntityBotCommand, "start", "/start"},
		{EntityURL, "https://example.org", "https://example.org"},
		{EntityEmail, "a@example.org", "a@example.org"},
		{EntityPhoneNumber, "+31201234567", "+31201234567"},
	}
	for _, tc := range cases {
		t.Run(tc.typ, func(t *testing.T) {
			got, err := ApplyEntityType(HTML, tc.in, tc.typ)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHTMLFormatter(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"bold", HTML.Bold("x"), "<b>x</b>"},
		{"italic", HTML.Italic("x"), "<i>x</i>"},
		{"underline", HTML.Underline("x"), "<u>x</u>"},
		{"strikethrough", HTML.Strikethrough("x"), "<s>x</s>"},
		{"spoiler", HTML.Spoiler("x"), "<tg-spoiler>x</tg-spoiler>"},
		{"code", HTML.Code("x"), "<code>x</code>"},
		{"pre", HTML.Pre("x"), "<pre>x</pre>"},
		{"pre with language", HTML.PreLanguage("x := 1", "go"), `<pre><code class="language-go">x := 1</code></pre>`},
		{"text link", HTML.TextLink("site", "https://example.org"), `<a href="https://example.org">site</a>`},
		{"text mention", HTML.TextMention("Nick", 123), `<a href="tg://user?id=123">Nick</a>`},
		{"custom emoji", HTML.CustomEmoji("👍", "5368324170671202286"), `<tg-emoji data-emoji-id="5368324170671202286">👍</tg-emoji>`},
		{"quote", HTML.Quote("5 > 3 & 2 < 4"), "5 &gt; 3 &amp; 2 &lt; 4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}

func TestMarkdownFormatter(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"bold", Markdown.Bold("x"), "*x*"},
		{"italic", Markdown.Italic("x"), "_\rx_\r"},
		{"underline", Markdown.Underline("x"), "__\rx__\r"},
		{"strikethrough", Markdown.Strikethrough("x"), "~x~"},
		{"spoiler", Markdown.Spoiler("x"), "|x|"},
		{"code", Markdown.Code("x"), "`x`"},
		{"pre", Markdown.Pre("x"), "```\nx\n```"},
		{"pre with language", Markdown.PreLanguage("x := 1", "go"), "```go\nx := 1\n```"},
		{"text link", Markdown.TextLink("site", "https://example.org"), "[site](https://example.org)"},
		{"text mention", Markdown.TextMention("Nick", 123), "[Nick](tg://user?id=123)"},
		{"custom emoji", Markdown.CustomEmoji("👍", "42"), "[👍](tg://emoji?id=42)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}

func TestMarkdownQuote(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1+1=2.", `1\+1\=2\.`},
		{"a_b*c", `a\_b\*c`},
		{"[x](y)", `\[x\]\(y\)`},
		{"~`>#-|{}!", "\\~\\`\\>\\#\\-\\|\\{\\}\\!"},
		{`back\slash`, `back\\slash`},
		{"plain text", "plain text"},
	}
	for _, tc := range cases {
		if got := Markdown.Quote(tc.in); got != tc.want {
			t.Errorf("Quote(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUTF16Length(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"привет", 6},
		{"🚀", 2},
		{"a🚀b", 4},
	}
	for _, tc := range cases {
		if got := utf16Length(tc.in); got != tc.want {
			t.Errorf("utf16Length(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
