package notification

import (
	"fmt"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
)

// defaultMessages are the per-type suffixes interpolated after the actor's
// nickname, e.g. "지민님이 타임캡슐을 열어볼 수 있습니다."
var defaultMessages = map[db.NotificationType]string{
	db.NotificationTypeLetterReceived:  "편지를 보냈습니다.",
	db.NotificationTypeCapsuleReceived: "타임캡슐을 보냈습니다.",
	db.NotificationTypeCapsuleOpened:   "타임캡슐을 열어볼 수 있습니다.",
	db.NotificationTypeFriendRequest:   "친구 요청을 보냈습니다.",
	db.NotificationTypeFriendAccept:    "친구 요청을 수락했습니다.",
}

// BuildContent renders the human-readable notification message for a type.
func BuildContent(notificationType db.NotificationType, senderNickname string) string {
	return fmt.Sprintf("%s님이 %s", senderNickname, defaultMessages[notificationType])
}
