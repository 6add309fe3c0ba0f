package dispatch

import "context"

// Invocation is the second phase of a prepared dispatch: the handler body
// with every extracted argument already bound. Running it executes the
// handler exactly once.
type Invocation func(ctx context.Context) error

// Handler is the uniform, type-erased form every bound handler reduces to.
// Phase one extracts the handler's arguments from the dispatch triple and
// returns the body as an Invocation; phase two runs it. An extraction
// failure surfaces from phase one and the body never starts.
type Handler func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error)

// Invoke runs both phases back to back. Use it when nothing needs to happen
// between extraction and the handler body; the Dispatcher splits the phases
// to run hooks in between.
func (h Handler) Invoke(ctx context.Context, bot *Bot, u *Update, env *Env) error {
	inv, err := h(ctx, bot, u, env)
	if err != nil {
		return err
	}
	return inv(ctx)
}

// Bind wraps a zero-argument handler body.
//
// The BindN constructors erase a typed handler function into a Handler.
// Arguments extract left to right; the first extraction failure is returned
// from phase one and later parameters are not attempted. The context is
// checked before extraction begins and again before the Invocation is
// produced, so a dispatch cancelled mid-extraction never reaches the body.
//
// Handlers with more than twelve extracted parameters are not supported;
// group related parameters behind one Extractable type instead.
func Bind(fn func(ctx context.Context) error) Handler {
	return func(ctx context.Context, _ *Bot, _ *Update, _ *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return fn, nil
	}
}

// Bind1 wraps a handler body taking one extracted argument.
func Bind1[A Extractable[A]](fn func(ctx context.Context, a A) error) Handler {
	return func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := Extract[A](bot, u, env)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return fn(ctx, a)
		}, nil
	}
}

// Bind2 wraps a handler body taking two extracted arguments.
func Bind2[A Extractable[A], B Extractable[B]](fn func(ctx context.Context, a A, b B) error) Handler {
	return func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := Extract[A](bot, u, env)
		if err != nil {
			return nil, err
		}
		b, err := Extract[B](bot, u, env)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return fn(ctx, a, b)
		}, nil
	}
}

// Bind3 wraps a handler body taking three extracted arguments.
func Bind3[A Extractable[A], B Extractable[B], C Extractable[C]](fn func(ctx context.Context, a A, b B, c C) error) Handler {
	return func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := Extract[A](bot, u, env)
		if err != nil {
			return nil, err
		}
		b, err := Extract[B](bot, u, env)
		if err != nil {
			return nil, err
		}
		c, err := Extract[C](bot, u, env)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return fn(ctx, a, b, c)
		}, nil
	}
}

// Bind4 wraps a handler body taking four extracted arguments.
func Bind4[A Extractable[A], B Extractable[B], C Extractable[C], D Extractable[D]](fn func(ctx context.Context, a A, b B, c C, d D) error) Handler {
	return func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := Extract[A](bot, u, env)
		if err != nil {
			return nil, err
		}
		b, err := Extract[B](bot, u, env)
		if err != nil {
			return nil, err
		}
		c, err := Extract[C](bot, u, env)
		if err != nil {
			return nil, err
		}
		d, err := Extract[D](bot, u, env)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return fn(ctx, a, b, c, d)
		}, nil
	}
}

// Bind5 wraps a handler body taking five extracted arguments.
func Bind5[A Extractable[A], B Extractable[B], C Extractable[C], D Extractable[D], E Extractable[E]](fn func(ctx context.Context, a A, b B, c C, d D, e E) error) Handler {
	return func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := Extract[A](bot, u, env)
		if err != nil {
			return nil, err
		}
		b, err := Extract[B](bot, u, env)
		if err != nil {
			return nil, err
		}
		c, err := Extract[C](bot, u, env)
		if err != nil {
			return nil, err
		}
		d, err := Extract[D](bot, u, env)
		if err != nil {
			return nil, err
		}
		e, err := Extract[E](bot, u, env)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return fn(ctx, a, b, c, d, e)
		}, nil
	}
}

// Bind6 wraps a handler body taking six extracted arguments.
func Bind6[A Extractable[A], B Extractable[B], C Extractable[C], D Extractable[D], E Extractable[E], F Extractable[F]](fn func(ctx context.Context, a A, b B, c C, d D, e E, f F) error) Handler {
	return func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := Extract[A](bot, u, env)
		if err != nil {
			return nil, err
		}
		b, err := Extract[B](bot, u, env)
		if err != nil {
			return nil, err
		}
		c, err := Extract[C](bot, u, env)
		if err != nil {
			return nil, err
		}
		d, err := Extract[D](bot, u, env)
		if err != nil {
			return nil, err
		}
		e, err := Extract[E](bot, u, env)
		if err != nil {
			return nil, err
		}
		f, err := Extract[F](bot, u, env)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return fn(ctx, a, b, c, d, e, f)
		}, nil
	}
}

// Bind7 wraps a handler body taking seven extracted arguments.
func Bind7[A Extractable[A], B Extractable[B], C Extractable[C], D Extractable[D], E Extractable[E], F Extractable[F], G Extractable[G]](fn func(ctx context.Context, a A, b B, c C, d D, e E, f F, g G) error) Handler {
	return func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := Extract[A](bot, u, env)
		if err != nil {
			return nil, err
		}
		b, err := Extract[B](bot, u, env)
		if err != nil {
			return nil, err
		}
		c, err := Extract[C](bot, u, env)
		if err != nil {
			return nil, err
		}
		d, err := Extract[D](bot, u, env)
		if err != nil {
			return nil, err
		}
		e, err := Extract[E](bot, u, env)
		if err != nil {
			return nil, err
		}
		f, err := Extract[F](bot, u, env)
		if err != nil {
			return nil, err
		}
		g, err := Extract[G](bot, u, env)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return fn(ctx, a, b, c, d, e, f, g)
		}, nil
	}
}

// Bind8 wraps a handler body taking eight extracted arguments.
func Bind8[A Extractable[A], B Extractable[B], C Extractable[C], D Extractable[D], E Extractable[E], F Extractable[F], G Extractable[G], H Extractable[H]](fn func(ctx context.Context, a A, b B, c C, d D, e E, f F, g G, h H) error) Handler {
	return func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := Extract[A](bot, u, env)
		if err != nil {
			return nil, err
		}
		b, err := Extract[B](bot, u, env)
		if err != nil {
			return nil, err
		}
		c, err := Extract[C](bot, u, env)
		if err != nil {
			return nil, err
		}
		d, err := Extract[D](bot, u, env)
		if err != nil {
			return nil, err
		}
		e, err := Extract[E](bot, u, env)
		if err != nil {
			return nil, err
		}
		f, err := Extract[F](bot, u, env)
		if err != nil {
			return nil, err
		}
		g, err := Extract[G](bot, u, env)
		if err != nil {
			return nil, err
		}
		h, err := Extract[H](bot, u, env)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return fn(ctx, a, b, c, d, e, f, g, h)
		}, nil
	}
}

// Bind9 wraps a handler body taking nine extracted arguments.
func Bind9[A Extractable[A], B Extractable[B], C Extractable[C], D Extractable[D], E Extractable[E], F Extractable[F], G Extractable[G], H Extractable[H], I Extractable[I]](fn func(ctx context.Context, a A, b B, c C, d D, e E, f F, g G, h H, i I) error) Handler {
	return func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := Extract[A](bot, u, env)
		if err != nil {
			return nil, err
		}
		b, err := Extract[B](bot, u, env)
		if err != nil {
			return nil, err
		}
		c, err := Extract[C](bot, u, env)
		if err != nil {
			return nil, err
		}
		d, err := Extract[D](bot, u, env)
		if err != nil {
			return nil, err
		}
		e, err := Extract[E](bot, u, env)
		if err != nil {
			return nil, err
		}
		f, err := Extract[F](bot, u, env)
		if err != nil {
			return nil, err
		}
		g, err := Extract[G](bot, u, env)
		if err != nil {
			return nil, err
		}
		h, err := Extract[H](bot, u, env)
		if err != nil {
			return nil, err
		}
		i, err := Extract[I](bot, u, env)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return fn(ctx, a, b, c, d, e, f, g, h, i)
		}, nil
	}
}

// Bind10 wraps a handler body taking ten extracted arguments.
func Bind10[A Extractable[A], B Extractable[B], C Extractable[C], D Extractable[D], E Extractable[E], F Extractable[F], G Extractable[G], H Extractable[H], I Extractable[I], J Extractable[J]](fn func(ctx context.Context, a A, b B, c C, d D, e E, f F, g G, h H, i I, j J) error) Handler {
	return func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := Extract[A](bot, u, env)
		if err != nil {
			return nil, err
		}
		b, err := Extract[B](bot, u, env)
		if err != nil {
			return nil, err
		}
		c, err := Extract[C](bot, u, env)
		if err != nil {
			return nil, err
		}
		d, err := Extract[D](bot, u, env)
		if err != nil {
			return nil, err
		}
		e, err := Extract[E](bot, u, env)
		if err != nil {
			return nil, err
		}
		f, err := Extract[F](bot, u, env)
		if err != nil {
			return nil, err
		}
		g, err := Extract[G](bot, u, env)
		if err != nil {
			return nil, err
		}
		h, err := Extract[H](bot, u, env)
		if err != nil {
			return nil, err
		}
		i, err := Extract[I](bot, u, env)
		if err != nil {
			return nil, err
		}
		j, err := Extract[J](bot, u, env)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return fn(ctx, a, b, c, d, e, f, g, h, i, j)
		}, nil
	}
}

// Bind11 wraps a handler body taking eleven extracted arguments.
func Bind11[A Extractable[A], B Extractable[B], C Extractable[C], D Extractable[D], E Extractable[E], F Extractable[F], G Extractable[G], H Extractable[H], I Extractable[I], J Extractable[J], K Extractable[K]](fn func(ctx context.Context, a A, b B, c C, d D, e E, f F, g G, h H, i I, j J, k K) error) Handler {
	return func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := Extract[A](bot, u, env)
		if err != nil {
			return nil, err
		}
		b, err := Extract[B](bot, u, env)
		if err != nil {
			return nil, err
		}
		c, err := Extract[C](bot, u, env)
		if err != nil {
			return nil, err
		}
		d, err := Extract[D](bot, u, env)
		if err != nil {
			return nil, err
		}
		e, err := Extract[E](bot, u, env)
		if err != nil {
			return nil, err
		}
		f, err := Extract[F](bot, u, env)
		if err != nil {
			return nil, err
		}
		g, err := Extract[G](bot, u, env)
		if err != nil {
			return nil, err
		}
		h, err := Extract[H](bot, u, env)
		if err != nil {
			return nil, err
		}
		i, err := Extract[I](bot, u, env)
		if err != nil {
			return nil, err
		}
		j, err := Extract[J](bot, u, env)
		if err != nil {
			return nil, err
		}
		k, err := Extract[K](bot, u, env)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return fn(ctx, a, b, c, d, e, f, g, h, i, j, k)
		}, nil
	}
}

// Bind12 wraps a handler body taking twelve extracted arguments, the highest
// supported arity.
func Bind12[A Extractable[A], B Extractable[B], C Extractable[C], D Extractable[D], E Extractable[E], F Extractable[F], G Extractable[G], H Extractable[H], I Extractable[I], J Extractable[J], K Extractable[K], L Extractable[L]](fn func(ctx context.Context, a A, b B, c C, d D, e E, f F, g G, h H, i I, j J, k K, l L) error) Handler {
	return func(ctx context.Context, bot *Bot, u *Update, env *Env) (Invocation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := Extract[A](bot, u, env)
		if err != nil {
			return nil, err
		}
		b, err := Extract[B](bot, u, env)
		if err != nil {
			return nil, err
		}
		c, err := Extract[C](bot, u, env)
		if err != nil {
			return nil, err
		}
		d, err := Extract[D](bot, u, env)
		if err != nil {
			return nil, err
		}
		e, err := Extract[E](bot, u, env)
		if err != nil {
			return nil, err
		}
		f, err := Extract[F](bot, u, env)
		if err != nil {
			return nil, err
		}
		g, err := Extract[G](bot, u, env)
		if err != nil {
			return nil, err
		}
		h, err := Extract[H](bot, u, env)
		if err != nil {
			return nil, err
		}
		i, err := Extract[I](bot, u, env)
		if err != nil {
			return nil, err
		}
		j, err := Extract[J](bot, u, env)
		if err != nil {
			return nil, err
		}
		k, err := Extract[K](bot, u, env)
		if err != nil {
			return nil, err
		}
		l, err := Extract[L](bot, u, env)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			return fn(ctx, a, b, c, d, e, f, g, h, i, j, k, l)
		}, nil
	}
}
