package course

import (
	"context"

	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseService struct {
	repo  *CourseRepository
	users *auth.UserRepository
}

func NewCourseService(repo *CourseRepository, users *auth.UserRepository) *CourseService {
	return &CourseService{repo: repo, users: users}
}

// ListAll returns every course with institution and faculty details
// attached. Related records are resolved with one batched query each; a
// course whose institution is gone gets a placeholder.
func (s *CourseService) ListAll(ctx context.Context) ([]*CourseWithDetails, error) {
	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	institutionIDs := make([]primitive.ObjectID, 0, len(courses))
	facultyIDs := make([]primitive.ObjectID, 0, len(courses))
	seenInst := make(map[primitive.ObjectID]bool)
	seenFac := make(map[primitive.ObjectID]bool)
	for _, c := range courses {
		if !seenInst[c.InstitutionID] {
			seenInst[c.InstitutionID] = true
			institutionIDs = append(institutionIDs, c.InstitutionID)
		}
		if !c.FacultyID.IsZero() && !seenFac[c.FacultyID] {
			seenFac[c.FacultyID] = true
			facultyIDs = append(facultyIDs, c.FacultyID)
		}
	}

	institutions, err := s.users.FindByIDs(ctx, institutionIDs)
	if err != nil {
		return nil, err
	}
	faculties, err := s.repo.FindFacultiesByIDs(ctx, facultyIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*CourseWithDetails, 0, len(courses))
	for _, c := range courses {
		entry := &CourseWithDetails{Course: *c}
		if inst, ok := institutions[c.InstitutionID]; ok {
			entry.Institution = InstitutionInfo{ID: inst.ID.Hex(), DisplayName: inst.DisplayName}
		} else {
			entry.Institution = InstitutionInfo{DisplayName: "Unknown Institution"}
		}
		if fac, ok := faculties[c.FacultyID]; ok {
			entry.Faculty = fac
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *CourseService) ListByInstitution(ctx context.Context, institutionID primitive.ObjectID) ([]*Course, error) {
	return s.repo.FindByInstitution(ctx, institutionID)
}

func (s *CourseService) Get(ctx context.Context, id primitive.ObjectID) (*CourseWithDetails, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, common.NewError(common.CodeNotFound, "course not found", nil)
	}
	entry := &CourseWithDetails{Course: *c}
	institution, err := s.users.FindByID(ctx, c.InstitutionID)
	if err == nil && institution != nil {
		entry.Institution = InstitutionInfo{ID: institution.ID.Hex(), DisplayName: institution.DisplayName}
	} else {
		entry.Institution = InstitutionInfo{DisplayName: "Unknown Institution"}
	}
	return entry, nil
}
