package dispatch

// Content identifies the active content shape of a message. The zero value
// is ContentUnknown.
type Content int

const (
	ContentUnknown Content = iota
	ContentText
	ContentAnimation
	ContentAudio
	ContentDocument
	ContentPhoto
	ContentSticker
	ContentStory
	ContentVideo
	ContentVideoNote
	ContentVoice
	ContentHasMediaSpoiler
	ContentContact
	ContentDice
	ContentGame
	ContentPoll
	ContentVenue
	ContentLocation
	ContentNewChatMembers
	ContentLeftChatMember
	ContentNewChatTitle
	ContentNewChatPhoto
	ContentDeleteChatPhoto
	ContentGroupChatCreated
	ContentSupergroupChatCreated
	ContentChannelChatCreated
	ContentMessageAutoDeleteTimerChanged
	ContentMigrateToChatID
	ContentMigrateFromChatID
	ContentPinnedMessage
	ContentInvoice
	ContentSuccessfulPayment
	ContentUserShared
	ContentChatShared
	ContentConnectedWebsite
	ContentWriteAccessAllowed
	ContentPassportData
	ContentProximityAlertTriggered
	ContentForumTopicCreated
	ContentForumTopicEdited
	ContentForumTopicClosed
	ContentForumTopicReopened
	ContentGeneralForumTopicHidden
	ContentGeneralForumTopicUnhidden
	ContentVideoChatScheduled
	ContentVideoChatStarted
	ContentVideoChatEnded
	ContentVideoChatParticipantsInvited
	ContentWebAppData
)

var contentNames = map[Content]string{
	ContentUnknown:                       "unknown",
	ContentText:                          "text",
	ContentAnimation:                     "animation",
	ContentAudio:                         "audio",
	ContentDocument:                      "document",
	ContentPhoto:                         "photo",
	ContentSticker:                       "sticker",
	ContentStory:                         "story",
	ContentVideo:                         "video",
	ContentVideoNote:                     "video_note",
	ContentVoice:                         "voice",
	ContentHasMediaSpoiler:               "has_media_spoiler",
	ContentContact:                       "contact",
	ContentDice:                          "dice",
	ContentGame:                          "game",
	ContentPoll:                          "poll",
	ContentVenue:                         "venue",
	ContentLocation:                      "location",
	ContentNewChatMembers:                "new_chat_members",
	ContentLeftChatMember:                "left_chat_member",
	ContentNewChatTitle:                  "new_chat_title",
	ContentNewChatPhoto:                  "new_chat_photo",
	ContentDeleteChatPhoto:               "delete_chat_photo",
	ContentGroupChatCreated:              "group_chat_created",
	ContentSupergroupChatCreated:         "supergroup_chat_created",
	ContentChannelChatCreated:            "channel_chat_created",
	ContentMessageAutoDeleteTimerChanged: "message_auto_delete_timer_changed",
	ContentMigrateToChatID:               "migrate_to_chat_id",
	ContentMigrateFromChatID:             "migrate_from_chat_id",
	ContentPinnedMessage:                 "pinned_message",
	ContentInvoice:                       "invoice",
	ContentSuccessfulPayment:             "successful_payment",
	ContentUserShared:                    "user_shared",
	ContentChatShared:                    "chat_shared",
	ContentConnectedWebsite:              "connected_website",
	ContentWriteAccessAllowed:            "write_access_allowed",
	ContentPassportData:                  "passport_data",
	ContentProximityAlertTriggered:       "proximity_alert_triggered",
	ContentForumTopicCreated:             "forum_topic_created",
	ContentForumTopicEdited:              "forum_topic_edited",
	ContentForumTopicClosed:              "forum_topic_closed",
	ContentForumTopicReopened:            "forum_topic_reopened",
	ContentGeneralForumTopicHidden:       "general_forum_topic_hidden",
	ContentGeneralForumTopicUnhidden:     "general_forum_topic_unhidden",
	ContentVideoChatScheduled:            "video_chat_scheduled",
	ContentVideoChatStarted:              "video_chat_started",
	ContentVideoChatEnded:                "video_chat_ended",
	ContentVideoChatParticipantsInvited:  "video_chat_participants_invited",
	ContentWebAppData:                    "web_app_data",
}

// String returns the wire field name of the content shape, e.g. "video_note".
func (c Content) String() string {
	if name, ok := contentNames[c]; ok {
		return name
	}
	return "unknown"
}

// Contents returns all known content shapes in classification priority order.
func Contents() []Content {
	cs := make([]Content, 0, len(contentNames)-1)
	for c := ContentText; c <= ContentWebAppData; c++ {
		cs = append(cs, c)
	}
	return cs
}

// ContentOf classifies a message into exactly one content shape. Exactly one
// content field is set on any payload the platform actually sends; when a
// wire payload sets more than one candidate field, the first present field
// in the order of the Content constants wins. That order is the public
// contract: text, animation, audio, document, photo, sticker, story, video,
// video_note, voice, has_media_spoiler, contact, dice, game, poll, venue,
// location, then the service notices in declaration order. Classification is
// total and deterministic.
func ContentOf(m *Message) Content {
	if m == nil {
		return ContentUnknown
	}
	switch {
	case m.Text != "":
		return ContentText
	case m.Animation != nil:
		return ContentAnimation
	case m.Audio != nil:
		return ContentAudio
	case m.Document != nil:
		return ContentDocument
	case len(m.Photo) > 0:
		return ContentPhoto
	case m.Sticker != nil:
		return ContentSticker
	case m.Story != nil:
		return ContentStory
	case m.Video != nil:
		return ContentVideo
	case m.VideoNote != nil:
		return ContentVideoNote
	case m.Voice != nil:
		return ContentVoice
	case m.HasMediaSpoiler:
		return ContentHasMediaSpoiler
	case m.Contact != nil:
		return ContentContact
	case m.Dice != nil:
		return ContentDice
	case m.Game != nil:
		return ContentGame
	case m.Poll != nil:
		return ContentPoll
	case m.Venue != nil:
		return ContentVenue
	case m.Location != nil:
		return ContentLocation
	case len(m.NewChatMembers) > 0:
		return ContentNewChatMembers
	case m.LeftChatMember != nil:
		return ContentLeftChatMember
	case m.NewChatTitle != "":
		return ContentNewChatTitle
	case len(m.NewChatPhoto) > 0:
		return ContentNewChatPhoto
	case m.DeleteChatPhoto:
		return ContentDeleteChatPhoto
	case m.GroupChatCreated:
		return ContentGroupChatCreated
	case m.SupergroupChatCreated:
		return ContentSupergroupChatCreated
	case m.ChannelChatCreated:
		return ContentChannelChatCreated
	case m.MessageAutoDeleteTimerChanged != nil:
		return ContentMessageAutoDeleteTimerChanged
	case m.MigrateToChatID != 0:
		return ContentMigrateToChatID
	case m.MigrateFromChatID != 0:
		return ContentMigrateFromChatID
	case m.PinnedMessage != nil:
		return ContentPinnedMessage
	case m.Invoice != nil:
		return ContentInvoice
	case m.SuccessfulPayment != nil:
		return ContentSuccessfulPayment
	case m.UserShared != nil:
		return ContentUserShared
	case m.ChatShared != nil:
		return ContentChatShared
	case m.ConnectedWebsite != "":
		return ContentConnectedWebsite
	case m.WriteAccessAllowed != nil:
		return ContentWriteAccessAllowed
	case m.PassportData != nil:
		return ContentPassportData
	case m.ProximityAlertTriggered != nil:
		return ContentProximityAlertTriggered
	case m.ForumTopicCreated != nil:
		return ContentForumTopicCreated
	case m.ForumTopicEdited != nil:
		return ContentForumTopicEdited
	case m.ForumTopicClosed != nil:
		return ContentForumTopicClosed
	case m.ForumTopicReopened != nil:
		return ContentForumTopicReopened
	case m.GeneralForumTopicHidden != nil:
		return ContentGeneralForumTopicHidden
	case m.GeneralForumTopicUnhidden != nil:
		return ContentGeneralForumTopicUnhidden
	case m.VideoChatScheduled != nil:
		return ContentVideoChatScheduled
	case m.VideoChatStarted != nil:
		return ContentVideoChatStarted
	case m.VideoChatEnded != nil:
		return ContentVideoChatEnded
	case m.VideoChatParticipantsInvited != nil:
		return ContentVideoChatParticipantsInvited
	case m.WebAppData != nil:
		return ContentWebAppData
	}
	return ContentUnknown
}
