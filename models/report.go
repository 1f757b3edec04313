package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Report represents one complaint filed against a cover. Reports are
// append-only; nothing in the service updates or deletes them.
type Report struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CoverID    string             `bson:"cover_id" json:"cover_id"`
	Reason     string             `bson:"reason" json:"reason"`
	ReporterIP string             `bson:"reporter_ip" json:"reporter_ip"`
	CreatedAt  primitive.DateTime `bson:"created_at" json:"created_at"`
}

// ReportCoverResponse is returned after a report has been recorded.
type ReportCoverResponse struct {
	Success     bool `json:"success"`
	Hidden      bool `json:"hidden"`
	ReportCount int  `json:"reportCount"`
}
