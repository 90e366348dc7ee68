package jobapplication

import (
	"context"
	"log"
	"time"

	"github.com/Temoho9984/CareerConnect-Backend/internal/application"
	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/common"
	"github.com/Temoho9984/CareerConnect-Backend/internal/jobs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence surface the workflow needs. Implemented by
// JobApplicationRepository; faked in tests.
type Store interface {
	Insert(ctx context.Context, app *JobApplication) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*JobApplication, error)
	FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]*JobApplication, error)
	FindByJob(ctx context.Context, jobID primitive.ObjectID) ([]*JobApplication, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status application.Status, updatedAt time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type JobSource interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*jobs.Job, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*jobs.Job, error)
	IncrementApplications(ctx context.Context, id primitive.ObjectID, delta int) error
}

type UserSource interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*auth.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*auth.User, error)
	AddJobApplication(ctx context.Context, studentID, applicationID primitive.ObjectID) error
	RemoveJobApplication(ctx context.Context, studentID, applicationID primitive.ObjectID) error
}

type Notifier interface {
	Notify(ctx context.Context, userID primitive.ObjectID, title, message, notifType, link string) error
}

// JobApplicationService runs the job-application workflow. Submission is
// deliberately lenient about the job lookup so an application is never lost
// to a transient read failure; everything downstream of the committed
// application document (student array, job counter, notifications) is a
// best-effort projection.
type JobApplicationService struct {
	store    Store
	jobs     JobSource
	users    UserSource
	notifier Notifier
}

func NewJobApplicationService(store Store, jobSource JobSource, users UserSource, notifier Notifier) *JobApplicationService {
	return &JobApplicationService{store: store, jobs: jobSource, users: users, notifier: notifier}
}

// Apply submits a job application. The student must resolve; the job need
// not: a placeholder company/title is recorded when it doesn't, and the
// job's applicant counter is only incremented when it did.
func (s *JobApplicationService) Apply(ctx context.Context, studentID, jobID primitive.ObjectID, coverLetter string) (*JobApplication, error) {
	student, err := s.users.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, common.NewError(common.CodeNotFound, "student profile not found", nil)
	}

	companyID := primitive.NilObjectID
	jobTitle := "Unknown Job"
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		log.Printf("Could not fetch job %s, continuing with placeholder: %v", jobID.Hex(), err)
	} else if job != nil {
		companyID = job.CompanyID
		jobTitle = job.Title
	} else {
		log.Printf("Job %s not found, using placeholder data", jobID.Hex())
	}

	phone := student.Phone
	if phone == "" {
		phone = "Not provided"
	}

	now := time.Now()
	app := &JobApplication{
		ID:           primitive.NewObjectID(),
		StudentID:    studentID,
		JobID:        jobID,
		CompanyID:    companyID,
		StudentName:  student.DisplayName,
		StudentEmail: student.Email,
		StudentPhone: phone,
		JobTitle:     jobTitle,
		CoverLetter:  coverLetter,
		Status:       application.StatusPending,
		AppliedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Insert(ctx, app); err != nil {
		return nil, err
	}

	if err := s.users.AddJobApplication(ctx, studentID, app.ID); err != nil {
		log.Printf("Could not record application %s on student %s: %v", app.ID.Hex(), studentID.Hex(), err)
	}
	if !companyID.IsZero() {
		if err := s.jobs.IncrementApplications(ctx, jobID, 1); err != nil {
			log.Printf("Could not update applications count for job %s: %v", jobID.Hex(), err)
		}
	}
	return app, nil
}

// SetStatus applies a decision on behalf of the owning company and notifies
// the student, sharing the course-application state machine.
func (s *JobApplicationService) SetStatus(ctx context.Context, applicationID primitive.ObjectID, newStatus application.Status, companyID primitive.ObjectID) error {
	app, err := s.store.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	if !newStatus.IsValid() {
		return common.NewError(common.CodeInvalidArgument, "status must be pending, admitted, rejected or waiting-list", nil)
	}
	if app.CompanyID != companyID {
		return common.NewError(common.CodeForbidden, "application belongs to another company", nil)
	}

	if err := s.store.UpdateStatus(ctx, applicationID, newStatus, time.Now()); err != nil {
		return err
	}

	err = s.notifier.Notify(ctx, app.StudentID, "Application Status Update",
		application.StatusMessage(newStatus), "info", "/student/job-applications")
	if err != nil {
		log.Printf("Failed to notify student %s about application %s: %v", app.StudentID.Hex(), applicationID.Hex(), err)
	}
	return nil
}

// ListForStudent returns the student's applications, newest first, with job
// and company details attached via batched lookups. Records that no longer
// resolve become placeholders.
func (s *JobApplicationService) ListForStudent(ctx context.Context, studentID primitive.ObjectID) ([]*JobApplicationWithDetails, error) {
	apps, err := s.store.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	jobIDs := make([]primitive.ObjectID, 0, len(apps))
	companyIDs := make([]primitive.ObjectID, 0, len(apps))
	seenJob := make(map[primitive.ObjectID]bool)
	seenCompany := make(map[primitive.ObjectID]bool)
	for _, app := range apps {
		if !seenJob[app.JobID] {
			seenJob[app.JobID] = true
			jobIDs = append(jobIDs, app.JobID)
		}
		if !app.CompanyID.IsZero() && !seenCompany[app.CompanyID] {
			seenCompany[app.CompanyID] = true
			companyIDs = append(companyIDs, app.CompanyID)
		}
	}

	jobMap, err := s.jobs.FindByIDs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}
	companies, err := s.users.FindByIDs(ctx, companyIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*JobApplicationWithDetails, 0, len(apps))
	for _, app := range apps {
		entry := &JobApplicationWithDetails{JobApplication: *app}
		if job, ok := jobMap[app.JobID]; ok {
			entry.Job = JobInfo{ID: job.ID.Hex(), Title: job.Title, Location: job.Location, JobType: job.JobType}
		} else {
			entry.Job = JobInfo{Title: "Job Not Found"}
		}
		if company, ok := companies[app.CompanyID]; ok {
			entry.Company = CompanyInfo{ID: company.ID.Hex(), DisplayName: company.DisplayName}
		} else {
			entry.Company = CompanyInfo{DisplayName: "Unknown Company"}
		}
		result = append(result, entry)
	}
	return result, nil
}

// ListForJob returns every application submitted to the company's own job,
// newest first. The candidate snapshots taken at submission time are the
// payload, so no further lookups are needed.
func (s *JobApplicationService) ListForJob(ctx context.Context, jobID, companyID primitive.ObjectID) ([]*JobApplication, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	if job.CompanyID != companyID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another company", nil)
	}
	return s.store.FindByJob(ctx, jobID)
}

// Withdraw deletes the student's own application and unwinds the
// projections: the id on the student document and, when the job was
// resolved at submission, the job's applicant counter.
func (s *JobApplicationService) Withdraw(ctx context.Context, applicationID, studentID primitive.ObjectID) error {
	app, err := s.store.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	if app.StudentID != studentID {
		return common.NewError(common.CodeForbidden, "application belongs to another student", nil)
	}

	if err := s.store.Delete(ctx, applicationID); err != nil {
		return err
	}

	if err := s.users.RemoveJobApplication(ctx, studentID, applicationID); err != nil {
		log.Printf("Could not remove application %s from student %s: %v", applicationID.Hex(), studentID.Hex(), err)
	}
	if !app.CompanyID.IsZero() && !app.JobID.IsZero() {
		if err := s.jobs.IncrementApplications(ctx, app.JobID, -1); err != nil {
			log.Printf("Could not update applications count for job %s: %v", app.JobID.Hex(), err)
		}
	}
	return nil
}
