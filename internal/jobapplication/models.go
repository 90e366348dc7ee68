package jobapplication

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Temoho9984/CareerConnect-Backend/internal/application"
)

// JobApplication is a student's request for a company's posting. It shares
// the status state machine with course applications but carries job/company
// foreign keys. CompanyID stays zero when the job could not be resolved at
// submission time; counter updates are skipped for such placeholder
// applications.
type JobApplication struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID    primitive.ObjectID `bson:"student_id" json:"studentId"`
	JobID        primitive.ObjectID `bson:"job_id" json:"jobId"`
	CompanyID    primitive.ObjectID `bson:"company_id,omitempty" json:"companyId,omitempty"`
	StudentName  string             `bson:"student_name" json:"studentName"`
	StudentEmail string             `bson:"student_email" json:"studentEmail"`
	StudentPhone string             `bson:"student_phone" json:"studentPhone"`
	JobTitle     string             `bson:"job_title" json:"jobTitle"`
	CoverLetter  string             `bson:"cover_letter" json:"coverLetter"`
	Status       application.Status `bson:"status" json:"status"`
	AppliedAt    time.Time          `bson:"applied_at" json:"appliedAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// JobInfo and CompanyInfo are the related-record slices attached to student
// listings. Placeholders stand in for records that no longer resolve.
type JobInfo struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	JobType  string `json:"jobType,omitempty"`
}

type CompanyInfo struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName"`
}

type JobApplicationWithDetails struct {
	JobApplication `bson:",inline"`
	Job            JobInfo     `json:"job"`
	Company        CompanyInfo `json:"company"`
}

type ApplyRequest struct {
	JobID       string `json:"jobId"`
	CoverLetter string `json:"coverLetter"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}
