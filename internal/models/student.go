package models

import "time"

// Student is a campus profile. The tag lists (courses, interests, hobbies,
// goals) plus the major are the matcher's input; everything else is display
// data owned by the profile endpoints.
type Student struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Year      string    `bson:"year" json:"year"` // Freshman, Sophomore, Junior, Senior
	Major     string    `bson:"major" json:"major"`
	Bio       string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Avatar    string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Courses   []string  `bson:"courses" json:"courses"`
	Interests []string  `bson:"interests" json:"interests"`
	Hobbies   []string  `bson:"hobbies" json:"hobbies"`
	Goals     []string  `bson:"goals" json:"goals"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// StudentUpdate carries a partial profile update. Nil fields are left
// untouched.
type StudentUpdate struct {
	Name      *string   `json:"name,omitempty"`
	Year      *string   `json:"year,omitempty"`
	Major     *string   `json:"major,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	Courses   *[]string `json:"courses,omitempty"`
	Interests *[]string `json:"interests,omitempty"`
	Hobbies   *[]string `json:"hobbies,omitempty"`
	Goals     *[]string `json:"goals,omitempty"`
	Location  *string   `json:"location,omitempty"`
}
