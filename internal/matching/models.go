package matching

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transcript is an academic record owned by one student. IsVerified is set
// by an external verifier, never by this engine.
type Transcript struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  primitive.ObjectID `bson:"student_id" json:"studentId"`
	FileName   string             `bson:"file_name" json:"fileName"`
	IsVerified bool               `bson:"is_verified" json:"isVerified"`
	UploadedAt time.Time          `bson:"uploaded_at" json:"uploadedAt"`
}

// Certificate is a credential owned by one student. Every certificate on
// file counts toward the match score regardless of the job it is scored
// against.
type Certificate struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  primitive.ObjectID `bson:"student_id" json:"studentId"`
	Type       string             `bson:"type" json:"type"`
	FileName   string             `bson:"file_name" json:"fileName"`
	UploadedAt time.Time          `bson:"uploaded_at" json:"uploadedAt"`
}

// MatchResult is the matcher's verdict for one candidate against one job.
// Derived on every request, never persisted.
type MatchResult struct {
	StudentID    primitive.ObjectID `json:"studentId"`
	Score        int                `json:"score"`
	Qualified    bool               `json:"qualified"`
	MatchDetails []string           `json:"matchDetails"`
}

// QualifiedApplicant is a ranked entry handed to the company reviewing a
// job's applicant pool.
type QualifiedApplicant struct {
	StudentID    primitive.ObjectID `json:"studentId"`
	StudentName  string             `json:"studentName"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	MatchScore   int                `json:"matchScore"`
	MatchDetails []string           `json:"matchDetails"`
}
