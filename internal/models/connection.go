package models

import "time"

// Connection statuses.
const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
	ConnectionRejected = "rejected"
)

// Connection is a persisted match record created once a student acts on a
// computed match result. The score is frozen at the time of the request.
type Connection struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	StudentID   string    `bson:"student_id" json:"studentId"`
	ConnectedID string    `bson:"connected_id" json:"connectedId"`
	Status      string    `bson:"status" json:"status"`
	MatchScore  int       `bson:"match_score" json:"matchScore"` // 0-100
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
