package jobs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is a company's posting. Read-only for the matching engine; the only
// field with concurrent writers is ApplicationsCount, which is updated with
// an atomic increment.
type Job struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID         primitive.ObjectID `bson:"company_id" json:"companyId"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description" json:"description"`
	Requirements      []string           `bson:"requirements" json:"requirements"`
	Qualifications    []string           `bson:"qualifications" json:"qualifications"`
	Location          string             `bson:"location" json:"location"`
	SalaryRange       string             `bson:"salary_range" json:"salaryRange"`
	JobType           string             `bson:"job_type" json:"jobType"`
	Deadline          time.Time          `bson:"deadline" json:"deadline"`
	PostedAt          time.Time          `bson:"posted_at" json:"postedAt"`
	IsActive          bool               `bson:"is_active" json:"isActive"`
	ClosedAt          *time.Time         `bson:"closed_at,omitempty" json:"closedAt,omitempty"`
	ApplicationsCount int                `bson:"applications_count" json:"applicationsCount"`
}

// CompanyInfo is the slice of a company account attached to job listings.
type CompanyInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
}

// JobWithCompany is a listing entry with the owning company resolved. The
// company is a placeholder when the account no longer exists.
type JobWithCompany struct {
	Job     `bson:",inline"`
	Company CompanyInfo `json:"company"`
}

type PostJobRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Requirements   []string `json:"requirements"`
	Qualifications []string `json:"qualifications"`
	Location       string   `json:"location"`
	SalaryRange    string   `json:"salaryRange"`
	JobType        string   `json:"jobType"`
	Deadline       string   `json:"deadline"`
}
