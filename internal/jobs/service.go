package jobs

import (
	"context"
	"time"

	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobService handles the company-facing job posting lifecycle.
type JobService struct {
	repo  *JobRepository
	users *auth.UserRepository
}

func NewJobService(repo *JobRepository, users *auth.UserRepository) *JobService {
	return &JobService{repo: repo, users: users}
}

func (s *JobService) Post(ctx context.Context, companyID primitive.ObjectID, req PostJobRequest) (*Job, error) {
	if req.Title == "" {
		return nil, common.NewError(common.CodeInvalidArgument, "job title is required", nil)
	}
	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return nil, common.NewError(common.CodeInvalidArgument, "deadline must be an RFC3339 timestamp", err)
	}

	job := &Job{
		ID:             primitive.NewObjectID(),
		CompanyID:      companyID,
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Qualifications: req.Qualifications,
		Location:       req.Location,
		SalaryRange:    req.SalaryRange,
		JobType:        req.JobType,
		Deadline:       deadline,
		PostedAt:       time.Now(),
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// ListActive returns open postings, newest first, with company details
// attached. Companies are resolved in one batched query; a posting whose
// company account is gone gets a placeholder, never an error.
func (s *JobService) ListActive(ctx context.Context) ([]*JobWithCompany, error) {
	jobList, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.attachCompanies(ctx, jobList)
}

func (s *JobService) ListForCompany(ctx context.Context, companyID primitive.ObjectID) ([]*Job, error) {
	return s.repo.FindByCompany(ctx, companyID)
}

func (s *JobService) Close(ctx context.Context, jobID, companyID primitive.ObjectID) error {
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	if job.CompanyID != companyID {
		return common.NewError(common.CodeForbidden, "job belongs to another company", nil)
	}
	now := time.Now()
	return s.repo.Update(ctx, jobID, bson.M{"is_active": false, "closed_at": now})
}

func (s *JobService) attachCompanies(ctx context.Context, jobList []*Job) ([]*JobWithCompany, error) {
	companyIDs := make([]primitive.ObjectID, 0, len(jobList))
	seen := make(map[primitive.ObjectID]bool)
	for _, job := range jobList {
		if !seen[job.CompanyID] {
			seen[job.CompanyID] = true
			companyIDs = append(companyIDs, job.CompanyID)
		}
	}
	companies, err := s.users.FindByIDs(ctx, companyIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*JobWithCompany, 0, len(jobList))
	for _, job := range jobList {
		entry := &JobWithCompany{Job: *job}
		if company, ok := companies[job.CompanyID]; ok {
			entry.Company = CompanyInfo{
				ID:          company.ID.Hex(),
				DisplayName: company.DisplayName,
				Email:       company.Email,
			}
		} else {
			entry.Company = CompanyInfo{DisplayName: "Unknown Company"}
		}
		result = append(result, entry)
	}
	return result, nil
}
