package application

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/course"
)

// Status of an application. All four labels are reachable from each other;
// a decision can be re-set by the same authority at any time.
type Status string

const (
	StatusPending     Status = "pending"
	StatusAdmitted    Status = "admitted"
	StatusRejected    Status = "rejected"
	StatusWaitingList Status = "waiting-list"
)

// IsValid reports whether s is one of the recognized status labels.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAdmitted, StatusRejected, StatusWaitingList:
		return true
	}
	return false
}

// Application is a student's request for admission to an institution's
// course. Created once at submission; mutated only by the owning
// institution through a status transition.
type Application struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID     primitive.ObjectID `bson:"student_id" json:"studentId"`
	CourseID      primitive.ObjectID `bson:"course_id" json:"courseId"`
	InstitutionID primitive.ObjectID `bson:"institution_id" json:"institutionId"`
	Status        Status             `bson:"status" json:"status"`
	AppliedAt     time.Time          `bson:"applied_at" json:"appliedAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ApplicationWithDetails is a listing entry with related records resolved.
// Absent related records stay nil, never failing the request.
type ApplicationWithDetails struct {
	Application `bson:",inline"`
	Student     *auth.User       `json:"student,omitempty"`
	Course      *course.Course   `json:"course,omitempty"`
	Institution *InstitutionInfo `json:"institution,omitempty"`
}

type InstitutionInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type SubmitRequest struct {
	CourseID      string `json:"courseId"`
	InstitutionID string `json:"institutionId"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}
