package dispatch

import (
	"reflect"
	"testing"
)

func TestParseHTML(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		text, entities, err := ParseHTML("just words")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "just words" {
			t.Errorf("text = %q", text)
		}
		if len(entities) != 0 {
			t.Errorf("entities = %v, want none", entities)
		}
	})

	t.Run("single style", func(t *testing.T) {
		text, entities, err := ParseHTML("Hello, <b>world</b>!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "Hello, world!" {
			t.Errorf("text = %q", text)
		}
		want := []MessageEntity{NewBoldEntity(7, 5)}
		if !reflect.DeepEqual(entities, want) {
			t.Errorf("entities = %v, want %v", entities, want)
		}
	})

	t.Run("nested styles sort outermost first", func(t *testing.T) {
		text, entities, err := ParseHTML("<b>bold <i>both</i></b>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "bold both" {
			t.Errorf("text = %q", text)
		}
		want := []MessageEntity{
			NewBoldEntity(0, 9),
			NewItalicEntity(5, 4),
		}
		if !reflect.DeepEqual(entities, want) {
			t.Errorf("entities = %v, want %v", entities, want)
		}
	})

	t.Run("language fence collapses to one pre entity", func(t *testing.T) {
		text, entities, err := ParseHTML(`<pre><code class="language-go">x := 1</code></pre>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "x := 1" {
			t.Errorf("text = %q", text)
		}
		want := []MessageEntity{NewPreEntity(0, 6, "go")}
		if !reflect.DeepEqual(entities, want) {
			t.Errorf("entities = %v, want %v", entities, want)
		}
	})

	t.Run("bare code stays code", func(t *testing.T) {
		_, entities, err := ParseHTML("run <code>make</code>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []MessageEntity{NewCodeEntity(4, 4)}
		if !reflect.DeepEqual(entities, want) {
			t.Errorf("entities = %v, want %v", entities, want)
		}
	})

	t.Run("user anchor becomes a text mention", func(t *testing.T) {
		_, entities, err := ParseHTML(`<a href="tg://user?id=123">Nick</a>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entities) != 1 || entities[0].Type != EntityTextMention {
			t.Fatalf("entities = %v", entities)
		}
		if entities[0].User == nil || entities[0].User.ID != 123 {
			t.Errorf("User = %+v, want ID 123", entities[0].User)
		}
	})

	t.Run("plain anchor becomes a text link", func(t *testing.T) {
		_, entities, err := ParseHTML(`<a href="https://example.org">site</a>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []MessageEntity{NewTextLinkEntity(0, 4, "https://example.org")}
		if !reflect.DeepEqual(entities, want) {
			t.Errorf("entities = %v, want %v", entities, want)
		}
	})

	t.Run("custom emoji", func(t *testing.T) {
		text, entities, err := ParseHTML(`<tg-emoji data-emoji-id="42">👍</tg-emoji>`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "👍" {
			t.Errorf("text = %q", text)
		}
		want := []MessageEntity{NewCustomEmojiEntity(0, 2, "42")}
		if !reflect.DeepEqual(entities, want) {
			t.Errorf("entities = %v, want %v", entities, want)
		}
	})

	t.Run("character references decode", func(t *testing.T) {
		text, _, err := ParseHTML("5 &gt; 3 &amp; 2 &lt; 4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "5 > 3 & 2 < 4" {
			t.Errorf("text = %q", text)
		}
	})

	t.Run("offsets count utf-16 units", func(t *testing.T) {
		text, entities, err := ParseHTML("🚀 <b>go</b>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "🚀 go" {
			t.Errorf("text = %q", text)
		}
		want := []MessageEntity{NewBoldEntity(3, 2)}
		if !reflect.DeepEqual(entities, want) {
			t.Errorf("entities = %v, want %v", entities, want)
		}
	})

	t.Run("errors", func(t *testing.T) {
		for name, wire := range map[string]string{
			"mismatched close":    "<b>x</i>",
			"unclosed tag":        "<b>x",
			"stray close":         "x</b>",
			"unknown tag":         "<div>x</div>",
			"unterminated tag":    "<b",
			"anchor without href": `<a>x</a>`,
			"bare ampersand":      "a & b",
		} {
			t.Run(name, func(t *testing.T) {
				if _, _, err := ParseHTML(wire); err == nil {
					t.Errorf("ParseHTML(%q) succeeded, want error", wire)
				}
			})
		}
	})
}

// Rendering an entity and parsing the result recovers the original text and
// entity for every markup-producing type.
func TestHTMLRoundTrip(t *testing.T) {
	text := "Hello, world!"
	entities := []MessageEntity{
		NewBoldEntity(7, 5),
		NewItalicEntity(0, 5),
		NewUnderlineEntity(7, 5),
		NewStrikethroughEntity(0, 5),
		NewSpoilerEntity(7, 5),
		NewCodeEntity(7, 5),
		NewPreEntity(7, 5, ""),
		NewPreEntity(7, 5, "go"),
		NewTextLinkEntity(7, 5, "https://example.org"),
		NewTextMentionEntity(7, 5, &User{ID: 123}),
		NewCustomEmojiEntity(7, 5, "42"),
	}

	for _, e := range entities {
		t.Run(e.Type, func(t *testing.T) {
			wire, err := ApplyEntity(HTML, text, e)
			if err != nil {
				t.Fatalf("ApplyEntity: %v", err)
			}
			gotText, gotEntities, err := ParseHTML(wire)
			if err != nil {
				t.Fatalf("ParseHTML(%q): %v", wire, err)
			}
			if gotText != text {
				t.Errorf("text = %q, want %q", gotText, text)
			}
			if len(gotEntities) != 1 {
				t.Fatalf("entities = %v, want one", gotEntities)
			}
			got := gotEntities[0]
			if got.Type != e.Type || got.Offset != e.Offset || got.Length != e.Length ||
				got.URL != e.URL || got.Language != e.Language || got.CustomEmojiID != e.CustomEmojiID {
				t.Errorf("entity = %+v, want %+v", got, e)
			}
			if e.User != nil && (got.User == nil || got.User.ID != e.User.ID) {
				t.Errorf("User = %+v, want ID %d", got.User, e.User.ID)
			}
		})
	}
}
