package models

import "time"

// Event is a campus event students can RSVP to.
type Event struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Date        time.Time `bson:"date" json:"date"`
	Location    string    `bson:"location" json:"location"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	OrganizerID string    `bson:"organizer_id" json:"organizerId"`
	Category    string    `bson:"category" json:"category"` // Study, Social, Sports, Arts, ...
	Capacity    int       `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Attendees   []string  `bson:"attendees" json:"attendees"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
