package models

import "time"

// Room types.
const (
	RoomTypeStudy  = "study"
	RoomTypeEvent  = "event"
	RoomTypeSocial = "social"
	RoomTypeDirect = "direct"
)

// ChatRoom groups participants and messages for one conversation. The
// last-message fields are a denormalized cache maintained by the message
// repository on every insert so room lists render without a join.
type ChatRoom struct {
	ID              string     `bson:"_id,omitempty" json:"id"`
	Name            string     `bson:"name" json:"name"`
	Type            string     `bson:"type" json:"type"`
	RelatedID       string     `bson:"related_id,omitempty" json:"relatedId,omitempty"` // event or study group
	Members         []string   `bson:"members" json:"members"`
	LastMessage     string     `bson:"last_message,omitempty" json:"lastMessage,omitempty"`
	LastMessageTime *time.Time `bson:"last_message_time,omitempty" json:"lastMessageTime,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"createdAt"`
}
