package dispatch

// Extractable is the contract for handler parameter types: a type extracts
// itself from the dispatch triple (bot, update, env). The constraint is
// self-referential so that extraction is checked at compile time — a handler
// parameter list over non-extractable types does not build.
//
// Extraction must be a pure function of its three inputs: no side effects,
// no mutation of the update or env. The only error an extractor reports is
// *MismatchError; wrap a parameter in Maybe or Try to absorb it.
type Extractable[T any] interface {
	ExtractFrom(bot *Bot, u *Update, env *Env) (T, error)
}

// Extract produces a T from one dispatch triple. The method is looked up on
// T's zero value, so extractors must not touch their receiver.
func Extract[T Extractable[T]](bot *Bot, u *Update, env *Env) (T, error) {
	var zero T
	return zero.ExtractFrom(bot, u, env)
}

// Maybe wraps an extractable parameter so that a classification mismatch
// becomes an absent value instead of aborting the dispatch. Maybe extraction
// never fails: OK is true iff extracting T directly would have succeeded.
type Maybe[T Extractable[T]] struct {
	Value T
	OK    bool
}

// ExtractFrom implements Extractable for Maybe[T].
func (Maybe[T]) ExtractFrom(bot *Bot, u *Update, env *Env) (Maybe[T], error) {
	v, err := Extract[T](bot, u, env)
	if err != nil {
		return Maybe[T]{}, nil
	}
	return Maybe[T]{Value: v, OK: true}, nil
}

// Try wraps an extractable parameter so that the handler body always runs
// and inspects T's extraction outcome itself. Try extraction never fails;
// Err carries exactly the error a direct extraction of T would have
// returned, or nil.
type Try[T Extractable[T]] struct {
	Value T
	Err   error
}

// ExtractFrom implements Extractable for Try[T].
func (Try[T]) ExtractFrom(bot *Bot, u *Update, env *Env) (Try[T], error) {
	v, err := Extract[T](bot, u, env)
	return Try[T]{Value: v, Err: err}, nil
}

// ExtractFrom makes *Update usable as a handler parameter. Never fails; the
// update is shared by reference and must not be mutated.
func (*Update) ExtractFrom(_ *Bot, u *Update, _ *Env) (*Update, error) {
	return u, nil
}

// ExtractFrom makes *Env usable as a handler parameter. Never fails.
func (*Env) ExtractFrom(_ *Bot, _ *Update, env *Env) (*Env, error) {
	return env, nil
}
