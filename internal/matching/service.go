package matching

import (
	"context"
	"log"
	"sort"

	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/common"
	"github.com/Temoho9984/CareerConnect-Backend/internal/jobs"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// evaluateConcurrency bounds the ranking fan-out. Candidate evaluations are
// independent; only the final sort imposes order.
const evaluateConcurrency = 8

// Repository is the read surface the matching engine needs. Implemented by
// MatchRepository; faked in tests.
type Repository interface {
	FindStudentByID(ctx context.Context, id primitive.ObjectID) (*auth.User, error)
	FindStudents(ctx context.Context) ([]*auth.User, error)
	FindJobByID(ctx context.Context, id primitive.ObjectID) (*jobs.Job, error)
	CountVerifiedTranscripts(ctx context.Context, studentID primitive.ObjectID) (int, error)
	CountCertificates(ctx context.Context, studentID primitive.ObjectID) (int, error)
}

// MatchService scores candidates against job postings and ranks the
// qualified ones. Read-only; it never writes to the store.
type MatchService struct {
	repo Repository
}

func NewMatchService(repo *MatchRepository) *MatchService {
	return &MatchService{repo: repo}
}

// Evaluate resolves the candidate and job and computes the match verdict.
// Missing sub-records (transcripts, certificates) lower the score but are
// never an error; only an absent candidate or job fails.
func (s *MatchService) Evaluate(ctx context.Context, studentID, jobID primitive.ObjectID) (*MatchResult, error) {
	candidate, err := s.repo.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
	}
	job, err := s.repo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return s.evaluate(ctx, candidate, job)
}

func (s *MatchService) evaluate(ctx context.Context, candidate *auth.User, job *jobs.Job) (*MatchResult, error) {
	verifiedTranscripts, err := s.repo.CountVerifiedTranscripts(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	certificates, err := s.repo.CountCertificates(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	result := scoreCandidate(candidate, job, verifiedTranscripts, certificates)
	return &result, nil
}

// RankQualified evaluates every student against the job and returns the
// qualified ones, highest score first. A candidate whose evaluation fails is
// skipped, not fatal; only a missing job aborts the ranking.
func (s *MatchService) RankQualified(ctx context.Context, jobID primitive.ObjectID) ([]*QualifiedApplicant, error) {
	job, err := s.repo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return s.rank(ctx, job)
}

func (s *MatchService) rank(ctx context.Context, job *jobs.Job) ([]*QualifiedApplicant, error) {
	students, err := s.repo.FindStudents(ctx)
	if err != nil {
		return nil, err
	}

	// Indexed slots keep the store's enumeration order so ties sort stably.
	slots := make([]*QualifiedApplicant, len(students))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(evaluateConcurrency)
	for i, student := range students {
		i, student := i, student
		g.Go(func() error {
			result, err := s.evaluate(gctx, student, job)
			if err != nil {
				log.Printf("Skipping candidate %s for job %s: %v", student.ID.Hex(), job.ID.Hex(), err)
				return nil
			}
			if !result.Qualified {
				return nil
			}
			slots[i] = &QualifiedApplicant{
				StudentID:    student.ID,
				StudentName:  student.DisplayName,
				Email:        student.Email,
				Phone:        student.Phone,
				MatchScore:   result.Score,
				MatchDetails: result.MatchDetails,
			}
			return nil
		})
	}
	g.Wait()

	qualified := make([]*QualifiedApplicant, 0, len(slots))
	for _, applicant := range slots {
		if applicant != nil {
			qualified = append(qualified, applicant)
		}
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].MatchScore > qualified[j].MatchScore
	})
	return qualified, nil
}

// QualifiedApplicantsForJob is the company-facing entry point: it verifies
// the job belongs to the requesting company before ranking.
func (s *MatchService) QualifiedApplicantsForJob(ctx context.Context, jobID, companyID primitive.ObjectID) ([]*QualifiedApplicant, error) {
	job, err := s.repo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	if job.CompanyID != companyID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another company", nil)
	}
	return s.rank(ctx, job)
}
