package application

import (
	"context"
	"log"
	"time"

	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/common"
	"github.com/Temoho9984/CareerConnect-Backend/internal/course"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxPerInstitution caps how many course applications a student may hold at
// one institution.
const maxPerInstitution = 2

// Store is the persistence surface the workflow needs. Implemented by
// ApplicationRepository; faked in tests.
type Store interface {
	Insert(ctx context.Context, app *Application) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Application, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status, updatedAt time.Time) error
	CountByStudentAndInstitution(ctx context.Context, studentID, institutionID primitive.ObjectID) (int64, error)
	ExistsByStudentAndCourse(ctx context.Context, studentID, courseID primitive.ObjectID) (bool, error)
	FindByInstitution(ctx context.Context, institutionID primitive.ObjectID) ([]*Application, error)
	FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]*Application, error)
}

type CourseSource interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*course.Course, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*course.Course, error)
}

type UserSource interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*auth.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*auth.User, error)
}

// Notifier delivers the workflow's notification effects. Delivery is
// best-effort: the status change is the source of truth and a failed
// notification never rolls it back.
type Notifier interface {
	Notify(ctx context.Context, userID primitive.ObjectID, title, message, notifType, link string) error
}

// ApplicationService runs the course-application workflow: submission with
// per-institution limits and the status state machine with its notification
// effects.
type ApplicationService struct {
	store    Store
	courses  CourseSource
	users    UserSource
	notifier Notifier
}

func NewApplicationService(store Store, courses CourseSource, users UserSource, notifier Notifier) *ApplicationService {
	return &ApplicationService{store: store, courses: courses, users: users, notifier: notifier}
}

// Submit creates a pending application after checking the course and
// institution exist, the student is under the per-institution cap, and this
// course has not been applied to before.
func (s *ApplicationService) Submit(ctx context.Context, studentID, courseID, institutionID primitive.ObjectID) (*Application, error) {
	foundCourse, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if foundCourse == nil {
		return nil, common.NewError(common.CodeNotFound, "course not found", nil)
	}

	institution, err := s.users.FindByID(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	if institution == nil {
		return nil, common.NewError(common.CodeNotFound, "institution not found", nil)
	}

	existing, err := s.store.CountByStudentAndInstitution(ctx, studentID, institutionID)
	if err != nil {
		return nil, err
	}
	if existing >= maxPerInstitution {
		return nil, common.NewError(common.CodeLimitExceeded, "cannot apply for more than 2 courses per institution", nil)
	}

	alreadyApplied, err := s.store.ExistsByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if alreadyApplied {
		return nil, common.NewError(common.CodeConflict, "already applied to this course", nil)
	}

	now := time.Now()
	app := &Application{
		ID:            primitive.NewObjectID(),
		StudentID:     studentID,
		CourseID:      courseID,
		InstitutionID: institutionID,
		Status:        StatusPending,
		AppliedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.Insert(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// SetStatus applies a status transition on behalf of the owning
// institution, then delivers the notification effect. The transition is
// validated before anything is written; the notification failing after the
// write is logged and swallowed.
func (s *ApplicationService) SetStatus(ctx context.Context, applicationID primitive.ObjectID, newStatus Status, institutionID primitive.ObjectID) error {
	app, err := s.store.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}

	effect, err := Transition(app, newStatus)
	if err != nil {
		return err
	}

	if app.InstitutionID != institutionID {
		return common.NewError(common.CodeForbidden, "application belongs to another institution", nil)
	}

	if err := s.store.UpdateStatus(ctx, applicationID, newStatus, time.Now()); err != nil {
		return err
	}

	if err := s.notifier.Notify(ctx, effect.RecipientID, effect.Title, effect.Message, effect.Type, effect.Link); err != nil {
		log.Printf("Failed to notify student %s about application %s: %v", effect.RecipientID.Hex(), applicationID.Hex(), err)
	}
	return nil
}

// ListForInstitution returns the institution's applications with student
// and course records attached via batched lookups.
func (s *ApplicationService) ListForInstitution(ctx context.Context, institutionID primitive.ObjectID) ([]*ApplicationWithDetails, error) {
	apps, err := s.store.FindByInstitution(ctx, institutionID)
	if err != nil {
		return nil, err
	}

	studentIDs := collectIDs(apps, func(a *Application) primitive.ObjectID { return a.StudentID })
	courseIDs := collectIDs(apps, func(a *Application) primitive.ObjectID { return a.CourseID })

	students, err := s.users.FindByIDs(ctx, studentIDs)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.FindByIDs(ctx, courseIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*ApplicationWithDetails, 0, len(apps))
	for _, app := range apps {
		entry := &ApplicationWithDetails{Application: *app}
		entry.Student = students[app.StudentID]
		entry.Course = courses[app.CourseID]
		result = append(result, entry)
	}
	return result, nil
}

// ListForStudent returns the student's applications with course and
// institution records attached via batched lookups.
func (s *ApplicationService) ListForStudent(ctx context.Context, studentID primitive.ObjectID) ([]*ApplicationWithDetails, error) {
	apps, err := s.store.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	courseIDs := collectIDs(apps, func(a *Application) primitive.ObjectID { return a.CourseID })
	institutionIDs := collectIDs(apps, func(a *Application) primitive.ObjectID { return a.InstitutionID })

	courses, err := s.courses.FindByIDs(ctx, courseIDs)
	if err != nil {
		return nil, err
	}
	institutions, err := s.users.FindByIDs(ctx, institutionIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*ApplicationWithDetails, 0, len(apps))
	for _, app := range apps {
		entry := &ApplicationWithDetails{Application: *app}
		entry.Course = courses[app.CourseID]
		if inst, ok := institutions[app.InstitutionID]; ok {
			entry.Institution = &InstitutionInfo{ID: inst.ID.Hex(), DisplayName: inst.DisplayName}
		}
		result = append(result, entry)
	}
	return result, nil
}

func collectIDs(apps []*Application, pick func(*Application) primitive.ObjectID) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(apps))
	seen := make(map[primitive.ObjectID]bool, len(apps))
	for _, app := range apps {
		id := pick(app)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
