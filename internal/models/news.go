package models

import "time"

// News categories accepted by the news endpoints.
var NewsCategories = []string{"Announcement", "Event", "Academic", "Campus Life"}

// CampusNews is a published news item.
type CampusNews struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	Author    string    `bson:"author" json:"author"`
	Category  string    `bson:"category" json:"category"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
