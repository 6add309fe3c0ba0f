package dispatch

import "github.com/tidwall/gjson"

// Kind identifies which of the mutually exclusive update fields is present.
// The zero value is KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota
	KindMessage
	KindEditedMessage
	KindChannelPost
	KindEditedChannelPost
	KindMessageReaction
	KindMessageReactionCount
	KindInlineQuery
	KindChosenInlineResult
	KindCallbackQuery
	KindShippingQuery
	KindPreCheckoutQuery
	KindPoll
	KindPollAnswer
	KindMyChatMember
	KindChatMember
	KindChatJoinRequest
	KindChatBoost
	KindRemovedChatBoost
)

var kindNames = map[Kind]string{
	KindUnknown:              "unknown",
	KindMessage:              "message",
	KindEditedMessage:        "edited_message",
	KindChannelPost:          "channel_post",
	KindEditedChannelPost:    "edited_channel_post",
	KindMessageReaction:      "message_reaction",
	KindMessageReactionCount: "message_reaction_count",
	KindInlineQuery:          "inline_query",
	KindChosenInlineResult:   "chosen_inline_result",
	KindCallbackQuery:        "callback_query",
	KindShippingQuery:        "shipping_query",
	KindPreCheckoutQuery:     "pre_checkout_query",
	KindPoll:                 "poll",
	KindPollAnswer:           "poll_answer",
	KindMyChatMember:         "my_chat_member",
	KindChatMember:           "chat_member",
	KindChatJoinRequest:      "chat_join_request",
	KindChatBoost:            "chat_boost",
	KindRemovedChatBoost:     "removed_chat_boost",
}

// String returns the wire field name of the kind, e.g. "callback_query".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// CarriesMessage reports whether updates of this kind carry a Message and
// therefore narrow further to a content shape.
func (k Kind) CarriesMessage() bool {
	switch k {
	case KindMessage, KindEditedMessage, KindChannelPost, KindEditedChannelPost:
		return true
	}
	return false
}

// Kinds returns all known kinds in classification priority order.
func Kinds() []Kind {
	ks := make([]Kind, 0, len(kindNames)-1)
	for k := KindMessage; k <= KindRemovedChatBoost; k++ {
		ks = append(ks, k)
	}
	return ks
}

// KindOf classifies an update by O(1) field inspection. A well-formed update
// sets exactly one kind field; should the wire set several, the first present
// field in the order of the Update struct (the Bot API field order) wins.
// That order is part of the public contract. Identical updates always
// classify identically.
func KindOf(u *Update) Kind {
	switch {
	case u == nil:
		return KindUnknown
	case u.Message != nil:
		return KindMessage
	case u.EditedMessage != nil:
		return KindEditedMessage
	case u.ChannelPost != nil:
		return KindChannelPost
	case u.EditedChannelPost != nil:
		return KindEditedChannelPost
	case u.MessageReaction != nil:
		return KindMessageReaction
	case u.MessageReactionCount != nil:
		return KindMessageReactionCount
	case u.InlineQuery != nil:
		return KindInlineQuery
	case u.ChosenInlineResult != nil:
		return KindChosenInlineResult
	case u.CallbackQuery != nil:
		return KindCallbackQuery
	case u.ShippingQuery != nil:
		return KindShippingQuery
	case u.PreCheckoutQuery != nil:
		return KindPreCheckoutQuery
	case u.Poll != nil:
		return KindPoll
	case u.PollAnswer != nil:
		return KindPollAnswer
	case u.MyChatMember != nil:
		return KindMyChatMember
	case u.ChatMember != nil:
		return KindChatMember
	case u.ChatJoinRequest != nil:
		return KindChatJoinRequest
	case u.ChatBoost != nil:
		return KindChatBoost
	case u.RemovedChatBoost != nil:
		return KindRemovedChatBoost
	}
	return KindUnknown
}

// DetectKind sniffs the kind of a raw wire update without decoding it.
// Field presence checks are cheap compared to a full unmarshal, so a
// scheduler can route or drop updates before paying for DecodeUpdate.
// Returns KindUnknown for invalid JSON or an update with no known kind field.
//
// DetectKind and KindOf agree for every well-formed update: sniffing the raw
// bytes and classifying the decoded value yield the same Kind.
func DetectKind(raw []byte) Kind {
	if !gjson.ValidBytes(raw) {
		return KindUnknown
	}
	for _, k := range Kinds() {
		if gjson.GetBytes(raw, k.String()).Exists() {
			return k
		}
	}
	return KindUnknown
}
