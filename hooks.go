package dispatch

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// OnExtractFunc is called after classification, before extraction begins.
// Use this to enrich the context with logging fields or trace spans.
// The returned context is used for the rest of the dispatch.
type OnExtractFunc func(ctx context.Context, env *Env, kind Kind, content Content) context.Context

// OnRunFunc is called after extraction succeeds, just before the handler
// body executes.
type OnRunFunc func(ctx context.Context, env *Env, kind Kind)

// OnSuccessFunc is called after the handler body completes successfully.
type OnSuccessFunc func(ctx context.Context, env *Env, kind Kind, duration time.Duration)

// OnFailureFunc is called after the handler body fails.
type OnFailureFunc func(ctx context.Context, env *Env, kind Kind, err error, duration time.Duration)

// OnMismatchFunc is called when extraction fails because the update does not
// carry what the handler's parameters require.
// Return nil to skip the update, return an error to fail the dispatch.
type OnMismatchFunc func(ctx context.Context, env *Env, err *MismatchError) error

// OnUnknownKindFunc is called when a raw update carries no recognized kind
// field. Return nil to skip, return an error to fail.
type OnUnknownKindFunc func(ctx context.Context, raw []byte) error

// OnDecodeErrorFunc is called when a raw update fails to decode.
// Return nil to skip, return an error to fail.
type OnDecodeErrorFunc func(ctx context.Context, raw []byte, err error) error

// hooks holds all configured hook functions.
type hooks struct {
	onExtract     []OnExtractFunc
	onRun         []OnRunFunc
	onSuccess     []OnSuccessFunc
	onFailure     []OnFailureFunc
	onMismatch    []OnMismatchFunc
	onUnknownKind []OnUnknownKindFunc
	onDecodeError []OnDecodeErrorFunc
}

// Option configures dispatcher behavior.
type Option func(*Dispatcher)

// WithOnExtract adds a hook called after classification, before extraction.
// Multiple hooks are called in order, with context chaining through each.
//
// Example:
//
//	dispatch.WithOnExtract(func(ctx context.Context, env *dispatch.Env, k dispatch.Kind, c dispatch.Content) context.Context {
//	    return trace.WithSpan(ctx, "dispatch."+k.String())
//	})
func WithOnExtract(fn OnExtractFunc) Option {
	return func(d *Dispatcher) {
		d.hooks.onExtract = append(d.hooks.onExtract, fn)
	}
}

// WithOnRun adds a hook called just before the handler body executes.
// Multiple hooks are called in order.
func WithOnRun(fn OnRunFunc) Option {
	return func(d *Dispatcher) {
		d.hooks.onRun = append(d.hooks.onRun, fn)
	}
}

// WithOnSuccess adds a hook called after the handler body completes
// successfully. Multiple hooks are called in order.
//
// Example:
//
//	dispatch.WithOnSuccess(func(ctx context.Context, env *dispatch.Env, k dispatch.Kind, d time.Duration) {
//	    metrics.Timing("dispatch.success", d, "kind:"+k.String())
//	})
func WithOnSuccess(fn OnSuccessFunc) Option {
	return func(d *Dispatcher) {
		d.hooks.onSuccess = append(d.hooks.onSuccess, fn)
	}
}

// WithOnFailure adds a hook called after the handler body fails.
// Multiple hooks are called in order.
func WithOnFailure(fn OnFailureFunc) Option {
	return func(d *Dispatcher) {
		d.hooks.onFailure = append(d.hooks.onFailure, fn)
	}
}

// WithOnMismatch adds a hook called when extraction fails with a
// *MismatchError. Return nil to skip the update, return an error to fail.
// Multiple hooks are called in order; first error wins. With no mismatch
// hooks configured the dispatch fails with the mismatch itself.
//
// Example:
//
//	dispatch.WithOnMismatch(func(ctx context.Context, env *dispatch.Env, err *dispatch.MismatchError) error {
//	    return nil // this handler does not apply; not an error
//	})
func WithOnMismatch(fn OnMismatchFunc) Option {
	return func(d *Dispatcher) {
		d.hooks.onMismatch = append(d.hooks.onMismatch, fn)
	}
}

// WithOnUnknownKind adds a hook called when a raw update carries none of the
// recognized kind fields. Return nil to skip, return an error to fail.
// Multiple hooks are called in order; first error wins.
func WithOnUnknownKind(fn OnUnknownKindFunc) Option {
	return func(d *Dispatcher) {
		d.hooks.onUnknownKind = append(d.hooks.onUnknownKind, fn)
	}
}

// WithOnDecodeError adds a hook called when a raw update fails to decode.
// Return nil to skip, return an error to fail.
// Multiple hooks are called in order; first error wins.
func WithOnDecodeError(fn OnDecodeErrorFunc) Option {
	return func(d *Dispatcher) {
		d.hooks.onDecodeError = append(d.hooks.onDecodeError, fn)
	}
}

// WithLogger installs zap-backed hooks covering the whole dispatch lifecycle:
// debug on run, info with duration on success, error with duration on
// failure, debug on mismatch and unknown kind (both skipped), error on
// decode failure. Every line carries the dispatch ID.
func WithLogger(log *zap.Logger) Option {
	return func(d *Dispatcher) {
		WithOnRun(func(_ context.Context, env *Env, kind Kind) {
			log.Debug("dispatching update",
				zap.String("dispatch_id", env.DispatchID()),
				zap.Stringer("kind", kind),
			)
		})(d)
		WithOnSuccess(func(_ context.Context, env *Env, kind Kind, dur time.Duration) {
			log.Info("handler succeeded",
				zap.String("dispatch_id", env.DispatchID()),
				zap.Stringer("kind", kind),
				zap.Duration("duration", dur),
			)
		})(d)
		WithOnFailure(func(_ context.Context, env *Env, kind Kind, err error, dur time.Duration) {
			log.Error("handler failed",
				zap.String("dispatch_id", env.DispatchID()),
				zap.Stringer("kind", kind),
				zap.Duration("duration", dur),
				zap.Error(err),
			)
		})(d)
		WithOnMismatch(func(_ context.Context, env *Env, err *MismatchError) error {
			log.Debug("handler does not apply",
				zap.String("dispatch_id", env.DispatchID()),
				zap.String("requested", err.Requested),
				zap.Stringer("kind", err.Kind),
			)
			return nil
		})(d)
		WithOnUnknownKind(func(_ context.Context, _ []byte) error {
			log.Debug("update carries no recognized kind")
			return nil
		})(d)
		WithOnDecodeError(func(_ context.Context, _ []byte, err error) error {
			log.Error("update failed to decode", zap.Error(err))
			return err
		})(d)
	}
}
