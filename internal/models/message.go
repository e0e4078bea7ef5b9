package models

import "time"

// Message belongs to exactly one room and is immutable once created. The
// sender name is denormalized at write time so history renders without a
// profile lookup.
type Message struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	RoomID     string    `bson:"room_id" json:"roomId"`
	SenderID   string    `bson:"sender_id" json:"senderId"`
	SenderName string    `bson:"sender_name" json:"senderName"`
	Content    string    `bson:"content" json:"content"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
