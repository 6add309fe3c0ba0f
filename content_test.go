package dispatch

import "testing"

func TestContentOf(t *testing.T) {
	cases := []struct {
		want Content
		msg  Message
	}{
		{ContentText, Message{Text: "hi"}},
		{ContentAnimation, Message{Animation: &Animation{FileID: "f"}}},
		{ContentAudio, Message{Audio: &Audio{FileID: "f"}}},
		{ContentDocument, Message{Document: &Document{FileID: "f"}}},
		{ContentPhoto, Message{Photo: []PhotoSize{{FileID: "f"}}}},
		{ContentSticker, Message{Sticker: &Sticker{FileID: "f"}}},
		{ContentStory, Message{Story: &Story{}}},
		{ContentVideo, Message{Video: &Video{FileID: "f"}}},
		{ContentVideoNote, Message{VideoNote: &VideoNote{FileID: "f"}}},
		{ContentVoice, Message{Voice: &Voice{FileID: "f"}}},
		{ContentHasMediaSpoiler, Message{HasMediaSpoiler: true}},
		{ContentContact, Message{Contact: &Contact{PhoneNumber: "+1"}}},
		{ContentDice, Message{Dice: &Dice{Emoji: "🎲", Value: 6}}},
		{ContentGame, Message{Game: &Game{Title: "g"}}},
		{ContentPoll, Message{Poll: &Poll{ID: "p"}}},
		{ContentVenue, Message{Venue: &Venue{Title: "v"}}},
		{ContentLocation, Message{Location: &Location{Latitude: 1}}},
		{ContentNewChatMembers, Message{NewChatMembers: []User{{ID: 1}}}},
		{ContentLeftChatMember, Message{LeftChatMember: &User{ID: 1}}},
		{ContentNewChatTitle, Message{NewChatTitle: "t"}},
		{ContentNewChatPhoto, Message{NewChatPhoto: []PhotoSize{{FileID: "f"}}}},
		{ContentDeleteChatPhoto, Message{DeleteChatPhoto: true}},
		{ContentGroupChatCreated, Message{GroupChatCreated: true}},
		{ContentSupergroupChatCreated, Message{SupergroupChatCreated: true}},
		{ContentChannelChatCreated, Message{ChannelChatCreated: true}},
		{ContentMessageAutoDeleteTimerChanged, Message{MessageAutoDeleteTimerChanged: &MessageAutoDeleteTimerChanged{MessageAutoDeleteTime: 60}}},
		{ContentMigrateToChatID, Message{MigrateToChatID: -100}},
		{ContentMigrateFromChatID, Message{MigrateFromChatID: -200}},
		{ContentPinnedMessage, Message{PinnedMessage: &Message{MessageID: 9}}},
		{ContentInvoice, Message{Invoice: &Invoice{Title: "i"}}},
		{ContentSuccessfulPayment, Message{SuccessfulPayment: &SuccessfulPayment{Currency: "EUR"}}},
		{ContentUserShared, Message{UserShared: &UserShared{RequestID: 1}}},
		{ContentChatShared, Message{ChatShared: &ChatShared{RequestID: 1}}},
		{ContentConnectedWebsite, Message{ConnectedWebsite: "example.org"}},
		{ContentWriteAccessAllowed, Message{WriteAccessAllowed: &WriteAccessAllowed{}}},
		{ContentPassportData, Message{PassportData: &PassportData{}}},
		{ContentProximityAlertTriggered, Message{ProximityAlertTriggered: &ProximityAlertTriggered{Distance: 5}}},
		{ContentForumTopicCreated, Message{ForumTopicCreated: &ForumTopicCreated{Name: "t"}}},
		{ContentForumTopicEdited, Message{ForumTopicEdited: &ForumTopicEdited{Name: "t"}}},
		{ContentForumTopicClosed, Message{ForumTopicClosed: &ForumTopicClosed{}}},
		{ContentForumTopicReopened, Message{ForumTopicReopened: &ForumTopicReopened{}}},
		{ContentGeneralForumTopicHidden, Message{GeneralForumTopicHidden: &GeneralForumTopicHidden{}}},
		{ContentGeneralForumTopicUnhidden, Message{GeneralForumTopicUnhidden: &GeneralForumTopicUnhidden{}}},
		{ContentVideoChatScheduled, Message{VideoChatScheduled: &VideoChatScheduled{StartDate: 1}}},
		{ContentVideoChatStarted, Message{VideoChatStarted: &VideoChatStarted{}}},
		{ContentVideoChatEnded, Message{VideoChatEnded: &VideoChatEnded{Duration: 1}}},
		{ContentVideoChatParticipantsInvited, Message{VideoChatParticipantsInvited: &VideoChatParticipantsInvited{Users: []User{{ID: 1}}}}},
		{ContentWebAppData, Message{WebAppData: &WebAppData{Data: "d"}}},
	}

	for _, tc := range cases {
		t.Run(tc.want.String(), func(t *testing.T) {
			if got := ContentOf(&tc.msg); got != tc.want {
				t.Errorf("ContentOf = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestContentOfPriority(t *testing.T) {
	t.Run("nil message", func(t *testing.T) {
		if got := ContentOf(nil); got != ContentUnknown {
			t.Errorf("ContentOf(nil) = %v, want unknown", got)
		}
	})

	t.Run("empty message", func(t *testing.T) {
		if got := ContentOf(&Message{MessageID: 1}); got != ContentUnknown {
			t.Errorf("ContentOf = %v, want unknown", got)
		}
	})

	t.Run("text beats photo", func(t *testing.T) {
		m := &Message{Text: "caption-ish", Photo: []PhotoSize{{FileID: "f"}}}
		if got := ContentOf(m); got != ContentText {
			t.Errorf("ContentOf = %v, want text", got)
		}
	})

	t.Run("photo beats spoiler flag", func(t *testing.T) {
		m := &Message{Photo: []PhotoSize{{FileID: "f"}}, HasMediaSpoiler: true}
		if got := ContentOf(m); got != ContentPhoto {
			t.Errorf("ContentOf = %v, want photo", got)
		}
	})

	t.Run("caption alone does not classify as text", func(t *testing.T) {
		m := &Message{Caption: "look", Video: &Video{FileID: "f"}}
		if got := ContentOf(m); got != ContentVideo {
			t.Errorf("ContentOf = %v, want video", got)
		}
	})
}

func TestContentString(t *testing.T) {
	if got := ContentVideoNote.String(); got != "video_note" {
		t.Errorf("String() = %q, want %q", got, "video_note")
	}
	if got := Content(999).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
}

func TestContentsCoversEveryShape(t *testing.T) {
	all := Contents()
	if len(all) != 49 {
		t.Fatalf("Contents() returned %d shapes", len(all))
	}
	seen := map[Content]bool{}
	for _, c := range all {
		if c == ContentUnknown {
			t.Error("Contents() includes unknown")
		}
		if seen[c] {
			t.Errorf("Contents() repeats %v", c)
		}
		seen[c] = true
	}
}
