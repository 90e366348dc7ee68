package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/common"
	"github.com/Temoho9984/CareerConnect-Backend/internal/jobs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRepo struct {
	students    []*auth.User
	jobs        map[primitive.ObjectID]*jobs.Job
	transcripts map[primitive.ObjectID]int
	certs       map[primitive.ObjectID]int
	failCounts  map[primitive.ObjectID]bool
}

func (f *fakeRepo) FindStudentByID(ctx context.Context, id primitive.ObjectID) (*auth.User, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindStudents(ctx context.Context) ([]*auth.User, error) {
	return f.students, nil
}

func (f *fakeRepo) FindJobByID(ctx context.Context, id primitive.ObjectID) (*jobs.Job, error) {
	return f.jobs[id], nil
}

func (f *fakeRepo) CountVerifiedTranscripts(ctx context.Context, studentID primitive.ObjectID) (int, error) {
	if f.failCounts[studentID] {
		return 0, errors.New("transient read failure")
	}
	return f.transcripts[studentID], nil
}

func (f *fakeRepo) CountCertificates(ctx context.Context, studentID primitive.ObjectID) (int, error) {
	if f.failCounts[studentID] {
		return 0, errors.New("transient read failure")
	}
	return f.certs[studentID], nil
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		jobs:        make(map[primitive.ObjectID]*jobs.Job),
		transcripts: make(map[primitive.ObjectID]int),
		certs:       make(map[primitive.ObjectID]int),
		failCounts:  make(map[primitive.ObjectID]bool),
	}
}

func (f *fakeRepo) addStudent(name string, transcripts, certs int, workExperience bool) *auth.User {
	s := &auth.User{
		ID:             primitive.NewObjectID(),
		DisplayName:    name,
		Email:          name + "@student.test",
		Role:           auth.RoleStudent,
		WorkExperience: workExperience,
	}
	f.students = append(f.students, s)
	f.transcripts[s.ID] = transcripts
	f.certs[s.ID] = certs
	return s
}

func (f *fakeRepo) addJob(qualifications ...string) *jobs.Job {
	j := &jobs.Job{
		ID:             primitive.NewObjectID(),
		CompanyID:      primitive.NewObjectID(),
		Title:          "Test Job",
		Qualifications: qualifications,
		IsActive:       true,
	}
	f.jobs[j.ID] = j
	return j
}

func TestEvaluateMissingCandidate(t *testing.T) {
	repo := newFakeRepo()
	job := repo.addJob("Degree")
	service := &MatchService{repo: repo}

	_, err := service.Evaluate(context.Background(), primitive.NewObjectID(), job.ID)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestEvaluateMissingJob(t *testing.T) {
	repo := newFakeRepo()
	s := repo.addStudent("alice", 1, 0, false)
	service := &MatchService{repo: repo}

	_, err := service.Evaluate(context.Background(), s.ID, primitive.NewObjectID())
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestRankQualifiedOrderingAndThreshold(t *testing.T) {
	repo := newFakeRepo()
	job := repo.addJob("Bachelor's degree")
	repo.addStudent("low", 0, 1, false)      // 5 + 35 = 40, filtered out
	mid := repo.addStudent("mid", 1, 1, false)   // 30 + 5 + 35 = 70
	top := repo.addStudent("top", 1, 5, true)    // 30 + 25 + 35 + 10 = 100
	high := repo.addStudent("high", 1, 3, false) // 30 + 15 + 35 = 80
	service := &MatchService{repo: repo}

	ranked, err := service.RankQualified(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("expected 3 qualified applicants, got %d", len(ranked))
	}

	wantOrder := []primitive.ObjectID{top.ID, high.ID, mid.ID}
	for i, applicant := range ranked {
		if applicant.StudentID != wantOrder[i] {
			t.Fatalf("position %d: expected %s, got %s", i, wantOrder[i].Hex(), applicant.StudentID.Hex())
		}
		if applicant.MatchScore < QualifiedThreshold {
			t.Fatalf("ranked applicant below threshold: %d", applicant.MatchScore)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].MatchScore > ranked[i-1].MatchScore {
			t.Fatalf("ranking not sorted descending at %d", i)
		}
	}
}

func TestRankQualifiedStableTies(t *testing.T) {
	repo := newFakeRepo()
	job := repo.addJob("Degree")
	first := repo.addStudent("first", 1, 1, false)  // 70
	second := repo.addStudent("second", 1, 1, false) // 70
	service := &MatchService{repo: repo}

	ranked, err := service.RankQualified(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 applicants, got %d", len(ranked))
	}
	if ranked[0].StudentID != first.ID || ranked[1].StudentID != second.ID {
		t.Fatalf("tie order not stable: got %s, %s", ranked[0].StudentName, ranked[1].StudentName)
	}
}

func TestRankQualifiedSkipsFailingCandidate(t *testing.T) {
	repo := newFakeRepo()
	job := repo.addJob("Degree")
	broken := repo.addStudent("broken", 1, 5, true)
	repo.failCounts[broken.ID] = true
	ok := repo.addStudent("ok", 1, 3, false)
	service := &MatchService{repo: repo}

	ranked, err := service.RankQualified(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("failing candidate must not abort the ranking: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("expected 1 applicant, got %d", len(ranked))
	}
	if ranked[0].StudentID != ok.ID {
		t.Fatalf("expected the healthy candidate, got %s", ranked[0].StudentName)
	}
}

func TestRankQualifiedEmptyPool(t *testing.T) {
	repo := newFakeRepo()
	job := repo.addJob("Degree")
	service := &MatchService{repo: repo}

	ranked, err := service.RankQualified(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 0 {
		t.Fatalf("expected empty ranking, got %d entries", len(ranked))
	}
}

func TestRankQualifiedMissingJob(t *testing.T) {
	repo := newFakeRepo()
	repo.addStudent("alice", 1, 5, true)
	service := &MatchService{repo: repo}

	_, err := service.RankQualified(context.Background(), primitive.NewObjectID())
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestQualifiedApplicantsForJobOwnership(t *testing.T) {
	repo := newFakeRepo()
	job := repo.addJob("Degree")
	repo.addStudent("alice", 1, 5, true)
	service := &MatchService{repo: repo}

	_, err := service.QualifiedApplicantsForJob(context.Background(), job.ID, primitive.NewObjectID())
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected Forbidden, got %v", err)
	}

	ranked, err := service.QualifiedApplicantsForJob(context.Background(), job.ID, job.CompanyID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("expected 1 applicant, got %d", len(ranked))
	}
}
