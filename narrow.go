package dispatch

// Narrow-type extraction: every concrete shape an update can resolve to is a
// handler parameter type. Kind-level payloads extract when the update's kind
// matches; the Message* wrappers additionally require a content shape.
// Failure is always a *MismatchError naming the requested type and the
// actual classification.

func mismatch(requested string, u *Update) *MismatchError {
	k := KindOf(u)
	var c Content
	if k.CarriesMessage() {
		c = ContentOf(u.ActiveMessage())
	}
	return &MismatchError{Requested: requested, Kind: k, Content: c}
}

// narrowKind returns the update if its classification matches want.
func narrowKind(u *Update, requested string, want Kind) error {
	if KindOf(u) != want {
		return mismatch(requested, u)
	}
	return nil
}

// narrowContent returns the update's active message if the update carries a
// message whose content shape matches want.
func narrowContent(u *Update, requested string, want Content) (*Message, error) {
	m := u.ActiveMessage()
	if m == nil || ContentOf(m) != want {
		return nil, mismatch(requested, u)
	}
	return m, nil
}

// ExtractFrom narrows the update to the message carried by any of the four
// message kinds (message, edited_message, channel_post, edited_channel_post).
func (*Message) ExtractFrom(_ *Bot, u *Update, _ *Env) (*Message, error) {
	if m := u.ActiveMessage(); m != nil {
		return m, nil
	}
	return nil, mismatch("Message", u)
}

// Kind-level wrappers distinguishing the four message kinds.
type (
	// NewMessage is a message update in the strict sense: kind "message".
	NewMessage struct{ *Message }

	// EditedMessage is an edit of a message known to the bot.
	EditedMessage struct{ *Message }

	// ChannelPost is a new post in a channel.
	ChannelPost struct{ *Message }

	// EditedChannelPost is an edit of a channel post.
	EditedChannelPost struct{ *Message }
)

func (NewMessage) ExtractFrom(_ *Bot, u *Update, _ *Env) (NewMessage, error) {
	if err := narrowKind(u, "NewMessage", KindMessage); err != nil {
		return NewMessage{}, err
	}
	return NewMessage{u.Message}, nil
}

func (EditedMessage) ExtractFrom(_ *Bot, u *Update, _ *Env) (EditedMessage, error) {
	if err := narrowKind(u, "EditedMessage", KindEditedMessage); err != nil {
		return EditedMessage{}, err
	}
	return EditedMessage{u.EditedMessage}, nil
}

func (ChannelPost) ExtractFrom(_ *Bot, u *Update, _ *Env) (ChannelPost, error) {
	if err := narrowKind(u, "ChannelPost", KindChannelPost); err != nil {
		return ChannelPost{}, err
	}
	return ChannelPost{u.ChannelPost}, nil
}

func (EditedChannelPost) ExtractFrom(_ *Bot, u *Update, _ *Env) (EditedChannelPost, error) {
	if err := narrowKind(u, "EditedChannelPost", KindEditedChannelPost); err != nil {
		return EditedChannelPost{}, err
	}
	return EditedChannelPost{u.EditedChannelPost}, nil
}

func (*CallbackQuery) ExtractFrom(_ *Bot, u *Update, _ *Env) (*CallbackQuery, error) {
	if err := narrowKind(u, "CallbackQuery", KindCallbackQuery); err != nil {
		return nil, err
	}
	return u.CallbackQuery, nil
}

func (*InlineQuery) ExtractFrom(_ *Bot, u *Update, _ *Env) (*InlineQuery, error) {
	if err := narrowKind(u, "InlineQuery", KindInlineQuery); err != nil {
		return nil, err
	}
	return u.InlineQuery, nil
}

func (*ChosenInlineResult) ExtractFrom(_ *Bot, u *Update, _ *Env) (*ChosenInlineResult, error) {
	if err := narrowKind(u, "ChosenInlineResult", KindChosenInlineResult); err != nil {
		return nil, err
	}
	return u.ChosenInlineResult, nil
}

func (*ShippingQuery) ExtractFrom(_ *Bot, u *Update, _ *Env) (*ShippingQuery, error) {
	if err := narrowKind(u, "ShippingQuery", KindShippingQuery); err != nil {
		return nil, err
	}
	return u.ShippingQuery, nil
}

func (*PreCheckoutQuery) ExtractFrom(_ *Bot, u *Update, _ *Env) (*PreCheckoutQuery, error) {
	if err := narrowKind(u, "PreCheckoutQuery", KindPreCheckoutQuery); err != nil {
		return nil, err
	}
	return u.PreCheckoutQuery, nil
}

func (*Poll) ExtractFrom(_ *Bot, u *Update, _ *Env) (*Poll, error) {
	if err := narrowKind(u, "Poll", KindPoll); err != nil {
		return nil, err
	}
	return u.Poll, nil
}

func (*PollAnswer) ExtractFrom(_ *Bot, u *Update, _ *Env) (*PollAnswer, error) {
	if err := narrowKind(u, "PollAnswer", KindPollAnswer); err != nil {
		return nil, err
	}
	return u.PollAnswer, nil
}

// ExtractFrom accepts both chat-member kinds: my_chat_member and chat_member.
func (*ChatMemberUpdated) ExtractFrom(_ *Bot, u *Update, _ *Env) (*ChatMemberUpdated, error) {
	switch KindOf(u) {
	case KindMyChatMember:
		return u.MyChatMember, nil
	case KindChatMember:
		return u.ChatMember, nil
	}
	return nil, mismatch("ChatMemberUpdated", u)
}

func (*ChatJoinRequest) ExtractFrom(_ *Bot, u *Update, _ *Env) (*ChatJoinRequest, error) {
	if err := narrowKind(u, "ChatJoinRequest", KindChatJoinRequest); err != nil {
		return nil, err
	}
	return u.ChatJoinRequest, nil
}

func (*MessageReactionUpdated) ExtractFrom(_ *Bot, u *Update, _ *Env) (*MessageReactionUpdated, error) {
	if err := narrowKind(u, "MessageReactionUpdated", KindMessageReaction); err != nil {
		return nil, err
	}
	return u.MessageReaction, nil
}

func (*MessageReactionCountUpdated) ExtractFrom(_ *Bot, u *Update, _ *Env) (*MessageReactionCountUpdated, error) {
	if err := narrowKind(u, "MessageReactionCountUpdated", KindMessageReactionCount); err != nil {
		return nil, err
	}
	return u.MessageReactionCount, nil
}

func (*ChatBoostUpdated) ExtractFrom(_ *Bot, u *Update, _ *Env) (*ChatBoostUpdated, error) {
	if err := narrowKind(u, "ChatBoostUpdated", KindChatBoost); err != nil {
		return nil, err
	}
	return u.ChatBoost, nil
}

func (*ChatBoostRemoved) ExtractFrom(_ *Bot, u *Update, _ *Env) (*ChatBoostRemoved, error) {
	if err := narrowKind(u, "ChatBoostRemoved", KindRemovedChatBoost); err != nil {
		return nil, err
	}
	return u.RemovedChatBoost, nil
}

// Content-shape wrappers. Each narrows the update to a message whose active
// content is one specific shape; the embedded *Message exposes the payload.
type (
	MessageText                  struct{ *Message }
	MessageAnimation             struct{ *Message }
	MessageAudio                 struct{ *Message }
	MessageDocument              struct{ *Message }
	MessagePhoto                 struct{ *Message }
	MessageSticker               struct{ *Message }
	MessageStory                 struct{ *Message }
	MessageVideo                 struct{ *Message }
	MessageVideoNote             struct{ *Message }
	MessageVoice                 struct{ *Message }
	MessageMediaSpoiler          struct{ *Message }
	MessageContact               struct{ *Message }
	MessageDice                  struct{ *Message }
	MessageGame                  struct{ *Message }
	MessagePoll                  struct{ *Message }
	MessageVenue                 struct{ *Message }
	MessageLocation              struct{ *Message }
	MessageNewChatMembers        struct{ *Message }
	MessageLeftChatMember        struct{ *Message }
	MessageNewChatTitle          struct{ *Message }
	MessageNewChatPhoto          struct{ *Message }
	MessageDeleteChatPhoto       struct{ *Message }
	MessageGroupChatCreated      struct{ *Message }
	MessageSupergroupChatCreated struct{ *Message }
	MessageChannelChatCreated    struct{ *Message }
	MessageAutoDeleteTimer       struct{ *Message }
	MessageMigrateToChatID       struct{ *Message }
	MessageMigrateFromChatID     struct{ *Message }
	MessagePinned                struct{ *Message }
	MessageInvoice               struct{ *Message }
	MessageSuccessfulPayment     struct{ *Message }
	MessageUserShared            struct{ *Message }
	MessageChatShared            struct{ *Message }
	MessageConnectedWebsite      struct{ *Message }
	MessageWriteAccessAllowed    struct{ *Message }
	MessagePassportData          struct{ *Message }
	MessageProximityAlert        struct{ *Message }
	MessageForumTopicCreated     struct{ *Message }
	MessageForumTopicEdited      struct{ *Message }
	MessageForumTopicClosed      struct{ *Message }
	MessageForumTopicReopened    struct{ *Message }
	MessageGeneralTopicHidden    struct{ *Message }
	MessageGeneralTopicUnhidden  struct{ *Message }
	MessageVideoChatScheduled    struct{ *Message }
	MessageVideoChatStarted      struct{ *Message }
	MessageVideoChatEnded        struct{ *Message }
	MessageVideoChatInvited      struct{ *Message }
	MessageWebAppData            struct{ *Message }
)

func (MessageText) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageText, error) {
	m, err := narrowContent(u, "MessageText", ContentText)
	if err != nil {
		return MessageText{}, err
	}
	return MessageText{m}, nil
}

func (MessageAnimation) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageAnimation, error) {
	m, err := narrowContent(u, "MessageAnimation", ContentAnimation)
	if err != nil {
		return MessageAnimation{}, err
	}
	return MessageAnimation{m}, nil
}

func (MessageAudio) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageAudio, error) {
	m, err := narrowContent(u, "MessageAudio", ContentAudio)
	if err != nil {
		return MessageAudio{}, err
	}
	return MessageAudio{m}, nil
}

func (MessageDocument) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageDocument, error) {
	m, err := narrowContent(u, "MessageDocument", ContentDocument)
	if err != nil {
		return MessageDocument{}, err
	}
	return MessageDocument{m}, nil
}

func (MessagePhoto) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessagePhoto, error) {
	m, err := narrowContent(u, "MessagePhoto", ContentPhoto)
	if err != nil {
		return MessagePhoto{}, err
	}
	return MessagePhoto{m}, nil
}

func (MessageSticker) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageSticker, error) {
	m, err := narrowContent(u, "MessageSticker", ContentSticker)
	if err != nil {
		return MessageSticker{}, err
	}
	return MessageSticker{m}, nil
}

func (MessageStory) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageStory, error) {
	m, err := narrowContent(u, "MessageStory", ContentStory)
	if err != nil {
		return MessageStory{}, err
	}
	return MessageStory{m}, nil
}

func (MessageVideo) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageVideo, error) {
	m, err := narrowContent(u, "MessageVideo", ContentVideo)
	if err != nil {
		return MessageVideo{}, err
	}
	return MessageVideo{m}, nil
}

func (MessageVideoNote) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageVideoNote, error) {
	m, err := narrowContent(u, "MessageVideoNote", ContentVideoNote)
	if err != nil {
		return MessageVideoNote{}, err
	}
	return MessageVideoNote{m}, nil
}

func (MessageVoice) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageVoice, error) {
	m, err := narrowContent(u, "MessageVoice", ContentVoice)
	if err != nil {
		return MessageVoice{}, err
	}
	return MessageVoice{m}, nil
}

func (MessageMediaSpoiler) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageMediaSpoiler, error) {
	m, err := narrowContent(u, "MessageMediaSpoiler", ContentHasMediaSpoiler)
	if err != nil {
		return MessageMediaSpoiler{}, err
	}
	return MessageMediaSpoiler{m}, nil
}

func (MessageContact) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageContact, error) {
	m, err := narrowContent(u, "MessageContact", ContentContact)
	if err != nil {
		return MessageContact{}, err
	}
	return MessageContact{m}, nil
}

func (MessageDice) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageDice, error) {
	m, err := narrowContent(u, "MessageDice", ContentDice)
	if err != nil {
		return MessageDice{}, err
	}
	return MessageDice{m}, nil
}

func (MessageGame) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageGame, error) {
	m, err := narrowContent(u, "MessageGame", ContentGame)
	if err != nil {
		return MessageGame{}, err
	}
	return MessageGame{m}, nil
}

func (MessagePoll) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessagePoll, error) {
	m, err := narrowContent(u, "MessagePoll", ContentPoll)
	if err != nil {
		return MessagePoll{}, err
	}
	return MessagePoll{m}, nil
}

func (MessageVenue) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageVenue, error) {
	m, err := narrowContent(u, "MessageVenue", ContentVenue)
	if err != nil {
		return MessageVenue{}, err
	}
	return MessageVenue{m}, nil
}

func (MessageLocation) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageLocation, error) {
	m, err := narrowContent(u, "MessageLocation", ContentLocation)
	if err != nil {
		return MessageLocation{}, err
	}
	return MessageLocation{m}, nil
}

func (MessageNewChatMembers) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageNewChatMembers, error) {
	m, err := narrowContent(u, "MessageNewChatMembers", ContentNewChatMembers)
	if err != nil {
		return MessageNewChatMembers{}, err
	}
	return MessageNewChatMembers{m}, nil
}

func (MessageLeftChatMember) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageLeftChatMember, error) {
	m, err := narrowContent(u, "MessageLeftChatMember", ContentLeftChatMember)
	if err != nil {
		return MessageLeftChatMember{}, err
	}
	return MessageLeftChatMember{m}, nil
}

func (MessageNewChatTitle) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageNewChatTitle, error) {
	m, err := narrowContent(u, "MessageNewChatTitle", ContentNewChatTitle)
	if err != nil {
		return MessageNewChatTitle{}, err
	}
	return MessageNewChatTitle{m}, nil
}

func (MessageNewChatPhoto) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageNewChatPhoto, error) {
	m, err := narrowContent(u, "MessageNewChatPhoto", ContentNewChatPhoto)
	if err != nil {
		return MessageNewChatPhoto{}, err
	}
	return MessageNewChatPhoto{m}, nil
}

func (MessageDeleteChatPhoto) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageDeleteChatPhoto, error) {
	m, err := narrowContent(u, "MessageDeleteChatPhoto", ContentDeleteChatPhoto)
	if err != nil {
		return MessageDeleteChatPhoto{}, err
	}
	return MessageDeleteChatPhoto{m}, nil
}

func (MessageGroupChatCreated) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageGroupChatCreated, error) {
	m, err := narrowContent(u, "MessageGroupChatCreated", ContentGroupChatCreated)
	if err != nil {
		return MessageGroupChatCreated{}, err
	}
	return MessageGroupChatCreated{m}, nil
}

func (MessageSupergroupChatCreated) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageSupergroupChatCreated, error) {
	m, err := narrowContent(u, "MessageSupergroupChatCreated", ContentSupergroupChatCreated)
	if err != nil {
		return MessageSupergroupChatCreated{}, err
	}
	return MessageSupergroupChatCreated{m}, nil
}

func (MessageChannelChatCreated) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageChannelChatCreated, error) {
	m, err := narrowContent(u, "MessageChannelChatCreated", ContentChannelChatCreated)
	if err != nil {
		return MessageChannelChatCreated{}, err
	}
	return MessageChannelChatCreated{m}, nil
}

func (MessageAutoDeleteTimer) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageAutoDeleteTimer, error) {
	m, err := narrowContent(u, "MessageAutoDeleteTimer", ContentMessageAutoDeleteTimerChanged)
	if err != nil {
		return MessageAutoDeleteTimer{}, err
	}
	return MessageAutoDeleteTimer{m}, nil
}

func (MessageMigrateToChatID) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageMigrateToChatID, error) {
	m, err := narrowContent(u, "MessageMigrateToChatID", ContentMigrateToChatID)
	if err != nil {
		return MessageMigrateToChatID{}, err
	}
	return MessageMigrateToChatID{m}, nil
}

func (MessageMigrateFromChatID) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageMigrateFromChatID, error) {
	m, err := narrowContent(u, "MessageMigrateFromChatID", ContentMigrateFromChatID)
	if err != nil {
		return MessageMigrateFromChatID{}, err
	}
	return MessageMigrateFromChatID{m}, nil
}

func (MessagePinned) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessagePinned, error) {
	m, err := narrowContent(u, "MessagePinned", ContentPinnedMessage)
	if err != nil {
		return MessagePinned{}, err
	}
	return MessagePinned{m}, nil
}

func (MessageInvoice) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageInvoice, error) {
	m, err := narrowContent(u, "MessageInvoice", ContentInvoice)
	if err != nil {
		return MessageInvoice{}, err
	}
	return MessageInvoice{m}, nil
}

func (MessageSuccessfulPayment) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageSuccessfulPayment, error) {
	m, err := narrowContent(u, "MessageSuccessfulPayment", ContentSuccessfulPayment)
	if err != nil {
		return MessageSuccessfulPayment{}, err
	}
	return MessageSuccessfulPayment{m}, nil
}

func (MessageUserShared) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageUserShared, error) {
	m, err := narrowContent(u, "MessageUserShared", ContentUserShared)
	if err != nil {
		return MessageUserShared{}, err
	}
	return MessageUserShared{m}, nil
}

func (MessageChatShared) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageChatShared, error) {
	m, err := narrowContent(u, "MessageChatShared", ContentChatShared)
	if err != nil {
		return MessageChatShared{}, err
	}
	return MessageChatShared{m}, nil
}

func (MessageConnectedWebsite) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageConnectedWebsite, error) {
	m, err := narrowContent(u, "MessageConnectedWebsite", ContentConnectedWebsite)
	if err != nil {
		return MessageConnectedWebsite{}, err
	}
	return MessageConnectedWebsite{m}, nil
}

func (MessageWriteAccessAllowed) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageWriteAccessAllowed, error) {
	m, err := narrowContent(u, "MessageWriteAccessAllowed", ContentWriteAccessAllowed)
	if err != nil {
		return MessageWriteAccessAllowed{}, err
	}
	return MessageWriteAccessAllowed{m}, nil
}

func (MessagePassportData) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessagePassportData, error) {
	m, err := narrowContent(u, "MessagePassportData", ContentPassportData)
	if err != nil {
		return MessagePassportData{}, err
	}
	return MessagePassportData{m}, nil
}

func (MessageProximityAlert) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageProximityAlert, error) {
	m, err := narrowContent(u, "MessageProximityAlert", ContentProximityAlertTriggered)
	if err != nil {
		return MessageProximityAlert{}, err
	}
	return MessageProximityAlert{m}, nil
}

func (MessageForumTopicCreated) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageForumTopicCreated, error) {
	m, err := narrowContent(u, "MessageForumTopicCreated", ContentForumTopicCreated)
	if err != nil {
		return MessageForumTopicCreated{}, err
	}
	return MessageForumTopicCreated{m}, nil
}

func (MessageForumTopicEdited) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageForumTopicEdited, error) {
	m, err := narrowContent(u, "MessageForumTopicEdited", ContentForumTopicEdited)
	if err != nil {
		return MessageForumTopicEdited{}, err
	}
	return MessageForumTopicEdited{m}, nil
}

func (MessageForumTopicClosed) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageForumTopicClosed, error) {
	m, err := narrowContent(u, "MessageForumTopicClosed", ContentForumTopicClosed)
	if err != nil {
		return MessageForumTopicClosed{}, err
	}
	return MessageForumTopicClosed{m}, nil
}

func (MessageForumTopicReopened) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageForumTopicReopened, error) {
	m, err := narrowContent(u, "MessageForumTopicReopened", ContentForumTopicReopened)
	if err != nil {
		return MessageForumTopicReopened{}, err
	}
	return MessageForumTopicReopened{m}, nil
}

func (MessageGeneralTopicHidden) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageGeneralTopicHidden, error) {
	m, err := narrowContent(u, "MessageGeneralTopicHidden", ContentGeneralForumTopicHidden)
	if err != nil {
		return MessageGeneralTopicHidden{}, err
	}
	return MessageGeneralTopicHidden{m}, nil
}

func (MessageGeneralTopicUnhidden) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageGeneralTopicUnhidden, error) {
	m, err := narrowContent(u, "MessageGeneralTopicUnhidden", ContentGeneralForumTopicUnhidden)
	if err != nil {
		return MessageGeneralTopicUnhidden{}, err
	}
	return MessageGeneralTopicUnhidden{m}, nil
}

func (MessageVideoChatScheduled) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageVideoChatScheduled, error) {
	m, err := narrowContent(u, "MessageVideoChatScheduled", ContentVideoChatScheduled)
	if err != nil {
		return MessageVideoChatScheduled{}, err
	}
	return MessageVideoChatScheduled{m}, nil
}

func (MessageVideoChatStarted) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageVideoChatStarted, error) {
	m, err := narrowContent(u, "MessageVideoChatStarted", ContentVideoChatStarted)
	if err != nil {
		return MessageVideoChatStarted{}, err
	}
	return MessageVideoChatStarted{m}, nil
}

func (MessageVideoChatEnded) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageVideoChatEnded, error) {
	m, err := narrowContent(u, "MessageVideoChatEnded", ContentVideoChatEnded)
	if err != nil {
		return MessageVideoChatEnded{}, err
	}
	return MessageVideoChatEnded{m}, nil
}

func (MessageVideoChatInvited) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageVideoChatInvited, error) {
	m, err := narrowContent(u, "MessageVideoChatInvited", ContentVideoChatParticipantsInvited)
	if err != nil {
		return MessageVideoChatInvited{}, err
	}
	return MessageVideoChatInvited{m}, nil
}

func (MessageWebAppData) ExtractFrom(_ *Bot, u *Update, _ *Env) (MessageWebAppData, error) {
	m, err := narrowContent(u, "MessageWebAppData", ContentWebAppData)
	if err != nil {
		return MessageWebAppData{}, err
	}
	return MessageWebAppData{m}, nil
}
