package dispatch

import (
	"context"
	"errors"
	"testing"
)

func TestBindArities(t *testing.T) {
	bot := &Bot{ID: 99}
	u := textUpdate("hi")
	env := NewEnv()

	t.Run("zero arguments", func(t *testing.T) {
		called := false
		h := Bind(func(ctx context.Context) error {
			called = true
			return nil
		})
		if err := h.Invoke(context.Background(), bot, u, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !called {
			t.Error("body was not called")
		}
	})

	t.Run("one argument", func(t *testing.T) {
		h := Bind1(func(ctx context.Context, msg MessageText) error {
			if msg.Text != "hi" {
				t.Errorf("Text = %q, want %q", msg.Text, "hi")
			}
			return nil
		})
		if err := h.Invoke(context.Background(), bot, u, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mixed arguments", func(t *testing.T) {
		h := Bind3(func(ctx context.Context, b *Bot, upd *Update, msg MessageText) error {
			if b != bot || upd != u {
				t.Error("always-available arguments not threaded through")
			}
			return nil
		})
		if err := h.Invoke(context.Background(), bot, u, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("twelve arguments", func(t *testing.T) {
		called := false
		h := Bind12(func(ctx context.Context,
			a *Bot, b *Update, c *Env, d *Message, e MessageText,
			f Maybe[MessageText], g Try[MessageText], h2 Maybe[*CallbackQuery],
			i *Update, j *Bot, k Try[*Poll], l Maybe[NewMessage],
		) error {
			called = true
			if !f.OK {
				t.Error("Maybe[MessageText].OK = false on a text update")
			}
			if h2.OK {
				t.Error("Maybe[*CallbackQuery].OK = true on a text update")
			}
			if k.Err == nil {
				t.Error("Try[*Poll].Err = nil on a text update")
			}
			if !l.OK {
				t.Error("Maybe[NewMessage].OK = false on a message update")
			}
			return nil
		})
		if err := h.Invoke(context.Background(), bot, u, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !called {
			t.Error("body was not called")
		}
	})
}

func TestBindExtractionFailure(t *testing.T) {
	bot := &Bot{ID: 99}
	env := NewEnv()

	t.Run("failure surfaces before the body", func(t *testing.T) {
		called := false
		h := Bind1(func(ctx context.Context, cq *CallbackQuery) error {
			called = true
			return nil
		})
		inv, err := h(context.Background(), bot, textUpdate("hi"), env)

		var merr *MismatchError
		if !errors.As(err, &merr) {
			t.Fatalf("error = %v, want *MismatchError", err)
		}
		if inv != nil {
			t.Error("invocation returned alongside an error")
		}
		if called {
			t.Error("body ran despite extraction failure")
		}
	})

	t.Run("first failure wins", func(t *testing.T) {
		h := Bind2(func(ctx context.Context, cq *CallbackQuery, p *Poll) error {
			return nil
		})
		_, err := h(context.Background(), bot, textUpdate("hi"), env)

		var merr *MismatchError
		if !errors.As(err, &merr) {
			t.Fatalf("error = %v, want *MismatchError", err)
		}
		if merr.Requested != "CallbackQuery" {
			t.Errorf("Requested = %q, want the leftmost failing parameter", merr.Requested)
		}
	})

	t.Run("maybe keeps the body running", func(t *testing.T) {
		called := false
		h := Bind1(func(ctx context.Context, cq Maybe[*CallbackQuery]) error {
			called = true
			if cq.OK {
				t.Error("OK = true on a text update")
			}
			return nil
		})
		if err := h.Invoke(context.Background(), bot, textUpdate("hi"), env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !called {
			t.Error("body was not called")
		}
	})
}

func TestBindContextCancellation(t *testing.T) {
	bot := &Bot{ID: 99}
	env := NewEnv()

	t.Run("cancelled before extraction", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		h := Bind1(func(ctx context.Context, msg MessageText) error {
			t.Error("body ran on a cancelled context")
			return nil
		})
		_, err := h(ctx, bot, textUpdate("hi"), env)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})

	t.Run("cancelled during extraction", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		// The first parameter's extractor cancels the dispatch; the
		// re-check after extraction must stop phase one.
		h := Bind2(func(ctx context.Context, c cancelOnExtract, msg MessageText) error {
			t.Error("body ran after mid-extraction cancel")
			return nil
		})
		env.Set("cancel", context.CancelFunc(cancel))
		_, err := h(ctx, bot, textUpdate("hi"), env)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})

	t.Run("handler error propagates", func(t *testing.T) {
		wantErr := errors.New("handler error")
		h := Bind(func(ctx context.Context) error { return wantErr })
		err := h.Invoke(context.Background(), bot, textUpdate("hi"), env)
		if !errors.Is(err, wantErr) {
			t.Errorf("error = %v, want %v", err, wantErr)
		}
	})
}

// cancelOnExtract cancels the dispatch from inside extraction, via a cancel
// func smuggled through the env.
type cancelOnExtract struct{}

func (cancelOnExtract) ExtractFrom(_ *Bot, _ *Update, env *Env) (cancelOnExtract, error) {
	if v, ok := env.Get("cancel"); ok {
		v.(context.CancelFunc)()
	}
	return cancelOnExtract{}, nil
}
