package dispatch

// Bot is the handle to the bot the update was delivered to. The outbound API
// client wraps it; this core only threads it through extraction so handlers
// can reach their client. The handle is shared across dispatches and must be
// synchronized by its owner.
type Bot struct {
	ID       int64
	Username string
}

// ExtractFrom makes *Bot usable as a handler parameter. Never fails.
func (*Bot) ExtractFrom(bot *Bot, _ *Update, _ *Env) (*Bot, error) {
	return bot, nil
}
