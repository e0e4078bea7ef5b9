package models

import "time"

// StudyGroup is a joinable course group.
type StudyGroup struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Course      string    `bson:"course" json:"course"`
	Description string    `bson:"description" json:"description"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatorID   string    `bson:"creator_id" json:"creatorId"`
	Members     []string  `bson:"members" json:"members"`
	Tags        []string  `bson:"tags" json:"tags"`
	MaxMembers  int       `bson:"max_members,omitempty" json:"maxMembers,omitempty"`
	IsPrivate   bool      `bson:"is_private" json:"isPrivate"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
