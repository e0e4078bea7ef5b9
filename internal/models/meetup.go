package models

// MeetupLocation is a suggested on-campus spot for meeting a match.
type MeetupLocation struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Type        string `bson:"type" json:"type"` // study, café, recreation, dining
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Address     string `bson:"address" json:"address"`
	Popular     bool   `bson:"popular" json:"popular"`
}
