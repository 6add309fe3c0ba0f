// Package dispatch routes inbound chat-bot updates to typed handlers.
//
// The package takes one wire update at a time, classifies it, extracts the
// handler's parameters from it, and runs the handler body — with hooks at
// every stage. Handlers declare what they need through their parameter
// types; an update that cannot satisfy them is a mismatch, not a crash.
//
// # Quick Start
//
// Write a handler as a plain function over the types it needs, bind it, and
// feed it updates:
//
//	h := dispatch.Bind2(func(ctx context.Context, bot *dispatch.Bot, msg dispatch.MessageText) error {
//	    return reply(ctx, bot, msg.Chat.ID, "you said: "+msg.Text)
//	})
//
//	d := dispatch.New(
//	    dispatch.WithLogger(logger),
//	    dispatch.WithOnMismatch(func(ctx context.Context, env *dispatch.Env, err *dispatch.MismatchError) error {
//	        return nil // not a text message; skip
//	    }),
//	)
//
//	err := d.DispatchRaw(ctx, bot, h, rawUpdateBytes)
//
// # Extraction
//
// A handler parameter type pulls itself out of the dispatch triple — the
// bot handle, the update, and the per-dispatch Env — by implementing
// Extractable:
//
//	type Extractable[T any] interface {
//	    ExtractFrom(bot *Bot, u *Update, env *Env) (T, error)
//	}
//
// The constraint is self-referential, so binding a handler over a
// non-extractable parameter type fails to compile. The always-available
// parameters are *Bot, *Update, and *Env; everything else narrows the
// update and fails with a *MismatchError when the update is something else.
//
// Two wrappers change how a mismatch lands:
//
//   - Maybe[T]: absent instead of failing; check .OK
//   - Try[T]: the handler body always runs and inspects .Err itself
//
// # Classification
//
// An update is classified twice. KindOf names which of the mutually
// exclusive payload fields is set (message, callback_query, poll, ...).
// When the kind carries a message, ContentOf names the shape of that
// message (text, photo, invoice, ...). Both classifications walk their
// fields in a fixed order, so an update with several candidate fields
// resolves the same way every time. DetectKind does the kind sniff on raw
// bytes without a full decode.
//
// Narrow parameter types cover both levels: *CallbackQuery, *PollAnswer and
// the other kind payloads extract when the kind matches; MessageText,
// MessagePhoto and the other Message* wrappers additionally require the
// content shape.
//
// # Two-Phase Dispatch
//
// A bound Handler runs in two phases. Phase one extracts every parameter
// left to right and returns the body as an Invocation; phase two runs it.
// The first extraction failure wins and the body never starts, so a handler
// body always sees fully-bound arguments. The context is checked before and
// after extraction; cancelling mid-extraction never reaches the body.
//
// The Dispatcher uses the gap between phases to run hooks, but Handler
// works standalone:
//
//	inv, err := h(ctx, bot, u, env) // phase one: extract
//	if err == nil {
//	    err = inv(ctx) // phase two: run
//	}
//
// # Hooks
//
// Hooks provide observability without coupling to specific logging or
// metrics systems. Use functional options to configure them:
//
//	d := dispatch.New(
//	    dispatch.WithOnExtract(func(ctx context.Context, env *dispatch.Env, k dispatch.Kind, c dispatch.Content) context.Context {
//	        return trace.WithSpan(ctx, "dispatch."+k.String())
//	    }),
//	    dispatch.WithOnSuccess(func(ctx context.Context, env *dispatch.Env, k dispatch.Kind, d time.Duration) {
//	        metrics.Timing("dispatch.success", d, "kind:"+k.String())
//	    }),
//	)
//
// Available hooks:
//   - WithOnExtract: Called after classification, enriches context
//   - WithOnRun: Called just before the handler body executes
//   - WithOnSuccess: Called after the body succeeds
//   - WithOnFailure: Called after the body fails
//   - WithOnMismatch: Called when extraction finds the wrong update
//   - WithOnUnknownKind: Called when raw bytes carry no recognized kind
//   - WithOnDecodeError: Called when raw bytes fail to decode
//
// Multiple hooks of the same type are called in order. The error-returning
// hooks decide whether the condition skips the update (return nil) or fails
// the dispatch (return an error); with no hook configured the condition
// fails. WithLogger installs a zap-backed set covering the whole lifecycle.
//
// # Formatting
//
// The text half of the package renders styled message text in the two wire
// dialects, HTML and legacy Markdown, behind one Formatter interface.
// Entity offsets count UTF-16 code units, matching the wire protocol.
//
// ApplyEntity styles one entity's span inside existing text; Builder
// accumulates a message span by span:
//
//	text := dispatch.NewBuilder(dispatch.HTML).
//	    Quote("5 > 3, ").
//	    Bold("obviously").
//	    String()
//	// "5 &gt; 3, <b>obviously</b>"
//
// ParseHTML inverts the HTML dialect, recovering plain text and entities
// from wire markup. ValidateEntities checks an entity set against its text:
// in bounds, properly nested, and code/pre kept flat.
//
// # Thread Safety
//
// Dispatcher is safe for concurrent use after configuration is complete; a
// fresh Env is minted per dispatch. The decoded Update is shared by
// reference and must be treated as read-only.
package dispatch
