package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Dispatcher drives one handler through the full dispatch lifecycle and
// calls hooks at each stage.
//
// Usage:
//  1. Create a dispatcher with New
//  2. Bind handlers with Bind..Bind12
//  3. Feed updates with Dispatch (decoded) or DispatchRaw (wire JSON)
//
// Dispatcher is safe for concurrent use after configuration; a fresh Env is
// minted per dispatch, so concurrent dispatches never share mutable state.
type Dispatcher struct {
	hooks hooks
}

// New creates a Dispatcher with the given options.
//
// Example:
//
//	d := dispatch.New(
//	    dispatch.WithLogger(logger),
//	    dispatch.WithOnMismatch(func(ctx context.Context, env *dispatch.Env, err *dispatch.MismatchError) error {
//	        return nil // skip updates the handler does not apply to
//	    }),
//	)
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs one handler against one decoded update.
//
// The dispatch flow:
//  1. Mint a fresh Env for the update
//  2. Classify the update (kind, then content when a message is carried)
//  3. OnExtract hooks enrich the context
//  4. Phase one: the handler extracts its arguments
//  5. A mismatch is routed through OnMismatch hooks; other extraction
//     errors fail the dispatch as-is
//  6. OnRun hooks, then phase two: the handler body
//  7. OnSuccess or OnFailure hooks with the measured duration
//
// A context cancelled during phase one surfaces before the body starts.
func (d *Dispatcher) Dispatch(ctx context.Context, bot *Bot, h Handler, u *Update) error {
	env := NewEnv()

	kind := KindOf(u)
	var content Content
	if kind.CarriesMessage() {
		content = ContentOf(u.ActiveMessage())
	}

	for _, fn := range d.hooks.onExtract {
		ctx = fn(ctx, env, kind, content)
	}

	inv, err := h(ctx, bot, u, env)
	if err != nil {
		var merr *MismatchError
		if errors.As(err, &merr) {
			return d.handleMismatch(ctx, env, merr)
		}
		return err
	}

	for _, fn := range d.hooks.onRun {
		fn(ctx, env, kind)
	}

	start := time.Now()
	err = inv(ctx)
	duration := time.Since(start)

	if err != nil {
		for _, fn := range d.hooks.onFailure {
			fn(ctx, env, kind, err, duration)
		}
		return err
	}
	for _, fn := range d.hooks.onSuccess {
		fn(ctx, env, kind, duration)
	}
	return nil
}

// DispatchRaw decodes one wire update and dispatches it. The raw bytes are
// sniffed for a recognized kind field before the full decode; updates with
// no recognized kind are routed through OnUnknownKind hooks, decode failures
// through OnDecodeError hooks.
//
// Example:
//
//	// In a long-polling loop
//	for _, raw := range updates {
//	    if err := d.DispatchRaw(ctx, bot, handler, raw); err != nil {
//	        return err
//	    }
//	}
func (d *Dispatcher) DispatchRaw(ctx context.Context, bot *Bot, h Handler, raw []byte) error {
	if DetectKind(raw) == KindUnknown {
		return d.handleUnknownKind(ctx, raw)
	}

	u, err := DecodeUpdate(raw)
	if err != nil {
		return d.handleDecodeError(ctx, raw, err)
	}

	return d.Dispatch(ctx, bot, h, u)
}

// handleMismatch routes an extraction mismatch through the hooks.
func (d *Dispatcher) handleMismatch(ctx context.Context, env *Env, merr *MismatchError) error {
	for _, fn := range d.hooks.onMismatch {
		if err := fn(ctx, env, merr); err != nil {
			return err
		}
	}
	if len(d.hooks.onMismatch) > 0 {
		return nil
	}
	return merr
}

// handleUnknownKind handles raw updates with no recognized kind field.
func (d *Dispatcher) handleUnknownKind(ctx context.Context, raw []byte) error {
	for _, fn := range d.hooks.onUnknownKind {
		if err := fn(ctx, raw); err != nil {
			return err
		}
	}
	if len(d.hooks.onUnknownKind) > 0 {
		return nil
	}
	return fmt.Errorf("update carries no recognized kind")
}

// handleDecodeError handles raw updates that fail to decode.
func (d *Dispatcher) handleDecodeError(ctx context.Context, raw []byte, decodeErr error) error {
	for _, fn := range d.hooks.onDecodeError {
		if err := fn(ctx, raw, decodeErr); err != nil {
			return err
		}
	}
	if len(d.hooks.onDecodeError) > 0 {
		return nil
	}
	return decodeErr
}
