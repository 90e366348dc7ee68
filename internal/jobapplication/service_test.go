package jobapplication

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Temoho9984/CareerConnect-Backend/internal/application"
	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/common"
	"github.com/Temoho9984/CareerConnect-Backend/internal/jobs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	apps map[primitive.ObjectID]*JobApplication
}

func newFakeStore() *fakeStore {
	return &fakeStore{apps: make(map[primitive.ObjectID]*JobApplication)}
}

func (f *fakeStore) Insert(ctx context.Context, app *JobApplication) error {
	f.apps[app.ID] = app
	return nil
}

func (f *fakeStore) FindByID(ctx context.Context, id primitive.ObjectID) (*JobApplication, error) {
	return f.apps[id], nil
}

func (f *fakeStore) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]*JobApplication, error) {
	var apps []*JobApplication
	for _, app := range f.apps {
		if app.StudentID == studentID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (f *fakeStore) FindByJob(ctx context.Context, jobID primitive.ObjectID) ([]*JobApplication, error) {
	var apps []*JobApplication
	for _, app := range f.apps {
		if app.JobID == jobID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (f *fakeStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status application.Status, updatedAt time.Time) error {
	app, ok := f.apps[id]
	if !ok {
		return errors.New("application not found")
	}
	app.Status = status
	app.UpdatedAt = updatedAt
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.apps[id]; !ok {
		return errors.New("application not found")
	}
	delete(f.apps, id)
	return nil
}

type fakeJobs struct {
	jobs       map[primitive.ObjectID]*jobs.Job
	findErr    error
	increments map[primitive.ObjectID]int
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{
		jobs:       make(map[primitive.ObjectID]*jobs.Job),
		increments: make(map[primitive.ObjectID]int),
	}
}

func (f *fakeJobs) FindByID(ctx context.Context, id primitive.ObjectID) (*jobs.Job, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.jobs[id], nil
}

func (f *fakeJobs) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*jobs.Job, error) {
	found := make(map[primitive.ObjectID]*jobs.Job)
	for _, id := range ids {
		if j, ok := f.jobs[id]; ok {
			found[id] = j
		}
	}
	return found, nil
}

func (f *fakeJobs) IncrementApplications(ctx context.Context, id primitive.ObjectID, delta int) error {
	f.increments[id] += delta
	return nil
}

type fakeUsers struct {
	users   map[primitive.ObjectID]*auth.User
	added   []primitive.ObjectID
	removed []primitive.ObjectID
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[primitive.ObjectID]*auth.User)}
}

func (f *fakeUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*auth.User, error) {
	return f.users[id], nil
}

func (f *fakeUsers) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*auth.User, error) {
	found := make(map[primitive.ObjectID]*auth.User)
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			found[id] = u
		}
	}
	return found, nil
}

func (f *fakeUsers) AddJobApplication(ctx context.Context, studentID, applicationID primitive.ObjectID) error {
	f.added = append(f.added, applicationID)
	return nil
}

func (f *fakeUsers) RemoveJobApplication(ctx context.Context, studentID, applicationID primitive.ObjectID) error {
	f.removed = append(f.removed, applicationID)
	return nil
}

type fakeNotifier struct {
	recipients []primitive.ObjectID
	messages   []string
	err        error
}

func (f *fakeNotifier) Notify(ctx context.Context, userID primitive.ObjectID, title, message, notifType, link string) error {
	if f.err != nil {
		return f.err
	}
	f.recipients = append(f.recipients, userID)
	f.messages = append(f.messages, message)
	return nil
}

type fixture struct {
	service   *JobApplicationService
	store     *fakeStore
	jobSource *fakeJobs
	users     *fakeUsers
	notifier  *fakeNotifier
	studentID primitive.ObjectID
	companyID primitive.ObjectID
	jobID     primitive.ObjectID
}

func newFixture() *fixture {
	store := newFakeStore()
	jobSource := newFakeJobs()
	users := newFakeUsers()
	notifier := &fakeNotifier{}

	studentID := primitive.NewObjectID()
	companyID := primitive.NewObjectID()
	jobID := primitive.NewObjectID()

	users.users[studentID] = &auth.User{
		ID:          studentID,
		DisplayName: "Student",
		Email:       "student@example.com",
		Phone:       "0712345678",
		Role:        auth.RoleStudent,
	}
	users.users[companyID] = &auth.User{
		ID:          companyID,
		DisplayName: "Acme",
		Role:        auth.RoleCompany,
	}
	jobSource.jobs[jobID] = &jobs.Job{
		ID:        jobID,
		CompanyID: companyID,
		Title:     "Backend Engineer",
		Location:  "Nairobi",
		JobType:   "full-time",
		IsActive:  true,
	}

	return &fixture{
		service:   NewJobApplicationService(store, jobSource, users, notifier),
		store:     store,
		jobSource: jobSource,
		users:     users,
		notifier:  notifier,
		studentID: studentID,
		companyID: companyID,
		jobID:     jobID,
	}
}

func TestApplyResolvedJob(t *testing.T) {
	env := newFixture()

	app, err := env.service.Apply(context.Background(), env.studentID, env.jobID, "I am interested")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.CompanyID != env.companyID {
		t.Fatalf("expected company id from the job, got %s", app.CompanyID.Hex())
	}
	if app.JobTitle != "Backend Engineer" {
		t.Fatalf("unexpected job title %q", app.JobTitle)
	}
	if app.Status != application.StatusPending {
		t.Fatalf("expected pending status, got %s", app.Status)
	}
	if env.jobSource.increments[env.jobID] != 1 {
		t.Fatalf("expected applications counter incremented once, got %d", env.jobSource.increments[env.jobID])
	}
	if len(env.users.added) != 1 || env.users.added[0] != app.ID {
		t.Fatalf("expected application id recorded on student")
	}
}

func TestApplyMissingJobUsesPlaceholder(t *testing.T) {
	env := newFixture()
	missingJob := primitive.NewObjectID()

	app, err := env.service.Apply(context.Background(), env.studentID, missingJob, "")
	if err != nil {
		t.Fatalf("a missing job must not block the application: %v", err)
	}
	if !app.CompanyID.IsZero() {
		t.Fatalf("expected zero company id placeholder, got %s", app.CompanyID.Hex())
	}
	if app.JobTitle != "Unknown Job" {
		t.Fatalf("unexpected placeholder title %q", app.JobTitle)
	}
	if env.jobSource.increments[missingJob] != 0 {
		t.Fatalf("counter must not move for an unresolved job")
	}
}

func TestApplyJobLookupFailureUsesPlaceholder(t *testing.T) {
	env := newFixture()
	env.jobSource.findErr = errors.New("replica set unavailable")

	app, err := env.service.Apply(context.Background(), env.studentID, env.jobID, "")
	if err != nil {
		t.Fatalf("a failed job lookup must not block the application: %v", err)
	}
	if !app.CompanyID.IsZero() || app.JobTitle != "Unknown Job" {
		t.Fatalf("expected placeholder data, got company %s title %q", app.CompanyID.Hex(), app.JobTitle)
	}
	if env.jobSource.increments[env.jobID] != 0 {
		t.Fatalf("counter must not move when the job did not resolve")
	}
}

func TestApplyUnknownStudent(t *testing.T) {
	env := newFixture()

	_, err := env.service.Apply(context.Background(), primitive.NewObjectID(), env.jobID, "")
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestApplyDefaultsMissingPhone(t *testing.T) {
	env := newFixture()
	env.users.users[env.studentID].Phone = ""

	app, err := env.service.Apply(context.Background(), env.studentID, env.jobID, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.StudentPhone != "Not provided" {
		t.Fatalf("unexpected phone snapshot %q", app.StudentPhone)
	}
}

func TestSetStatusNotifiesStudent(t *testing.T) {
	env := newFixture()
	ctx := context.Background()

	app, err := env.service.Apply(ctx, env.studentID, env.jobID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if err := env.service.SetStatus(ctx, app.ID, application.StatusAdmitted, env.companyID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.store.apps[app.ID].Status != application.StatusAdmitted {
		t.Fatalf("status not persisted")
	}
	if len(env.notifier.recipients) != 1 || env.notifier.recipients[0] != env.studentID {
		t.Fatalf("expected one notification to the student")
	}
	if env.notifier.messages[0] != application.StatusMessage(application.StatusAdmitted) {
		t.Fatalf("unexpected message %q", env.notifier.messages[0])
	}
}

func TestSetStatusWrongCompany(t *testing.T) {
	env := newFixture()
	ctx := context.Background()

	app, err := env.service.Apply(ctx, env.studentID, env.jobID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	err = env.service.SetStatus(ctx, app.ID, application.StatusRejected, primitive.NewObjectID())
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected Forbidden, got %v", err)
	}
	if env.store.apps[app.ID].Status != application.StatusPending {
		t.Fatalf("application must be unchanged")
	}
}

func TestSetStatusInvalidLabel(t *testing.T) {
	env := newFixture()
	ctx := context.Background()

	app, err := env.service.Apply(ctx, env.studentID, env.jobID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	err = env.service.SetStatus(ctx, app.ID, application.Status("bogus"), env.companyID)
	if !common.Is(err, common.CodeInvalidArgument) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if len(env.notifier.recipients) != 0 {
		t.Fatalf("no notification expected")
	}
}

func TestWithdrawByOwner(t *testing.T) {
	env := newFixture()
	ctx := context.Background()

	app, err := env.service.Apply(ctx, env.studentID, env.jobID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if err := env.service.Withdraw(ctx, app.ID, env.studentID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := env.store.apps[app.ID]; ok {
		t.Fatalf("application must be deleted")
	}
	if env.jobSource.increments[env.jobID] != 0 {
		t.Fatalf("expected counter wound back to 0, got %d", env.jobSource.increments[env.jobID])
	}
	if len(env.users.removed) != 1 || env.users.removed[0] != app.ID {
		t.Fatalf("expected application id removed from student")
	}
}

func TestWithdrawByNonOwner(t *testing.T) {
	env := newFixture()
	ctx := context.Background()

	app, err := env.service.Apply(ctx, env.studentID, env.jobID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	err = env.service.Withdraw(ctx, app.ID, primitive.NewObjectID())
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected Forbidden, got %v", err)
	}
	if _, ok := env.store.apps[app.ID]; !ok {
		t.Fatalf("application must not be deleted")
	}
	if env.jobSource.increments[env.jobID] != 1 {
		t.Fatalf("counter must be untouched by a forbidden withdraw")
	}
}

func TestWithdrawPlaceholderSkipsCounter(t *testing.T) {
	env := newFixture()
	ctx := context.Background()

	missingJob := primitive.NewObjectID()
	app, err := env.service.Apply(ctx, env.studentID, missingJob, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if err := env.service.Withdraw(ctx, app.ID, env.studentID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.jobSource.increments[missingJob] != 0 {
		t.Fatalf("counter must not move for a placeholder application")
	}
}

func TestWithdrawUnknownApplication(t *testing.T) {
	env := newFixture()

	err := env.service.Withdraw(context.Background(), primitive.NewObjectID(), env.studentID)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestListForJobOwner(t *testing.T) {
	env := newFixture()
	ctx := context.Background()

	app, err := env.service.Apply(ctx, env.studentID, env.jobID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	list, err := env.service.ListForJob(ctx, env.jobID, env.companyID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != app.ID {
		t.Fatalf("expected the submitted application, got %d entries", len(list))
	}
	if list[0].StudentName != "Student" || list[0].StudentEmail != "student@example.com" {
		t.Fatalf("expected candidate snapshot on the listing")
	}
}

func TestListForJobWrongCompany(t *testing.T) {
	env := newFixture()
	ctx := context.Background()

	if _, err := env.service.Apply(ctx, env.studentID, env.jobID, ""); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	_, err := env.service.ListForJob(ctx, env.jobID, primitive.NewObjectID())
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected Forbidden, got %v", err)
	}
}

func TestListForJobUnknownJob(t *testing.T) {
	env := newFixture()

	_, err := env.service.ListForJob(context.Background(), primitive.NewObjectID(), env.companyID)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestListForStudentPlaceholders(t *testing.T) {
	env := newFixture()
	ctx := context.Background()

	resolved, err := env.service.Apply(ctx, env.studentID, env.jobID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	orphan, err := env.service.Apply(ctx, env.studentID, primitive.NewObjectID(), "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	list, err := env.service.ListForStudent(ctx, env.studentID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(list))
	}

	byID := make(map[primitive.ObjectID]*JobApplicationWithDetails)
	for _, entry := range list {
		byID[entry.ID] = entry
	}
	if got := byID[resolved.ID]; got.Job.Title != "Backend Engineer" || got.Company.DisplayName != "Acme" {
		t.Fatalf("resolved entry got %q / %q", got.Job.Title, got.Company.DisplayName)
	}
	if got := byID[orphan.ID]; got.Job.Title != "Job Not Found" || got.Company.DisplayName != "Unknown Company" {
		t.Fatalf("orphan entry got %q / %q", got.Job.Title, got.Company.DisplayName)
	}
}
