package application

import (
	"github.com/Temoho9984/CareerConnect-Backend/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Effect is the notification to deliver after a status change commits.
// Returned by Transition instead of being dispatched inline, so the state
// machine stays pure and the caller decides when (and how leniently) the
// side effect runs.
type Effect struct {
	RecipientID primitive.ObjectID
	Title       string
	Message     string
	Type        string
	Link        string
}

// StatusMessage is the fixed decision-to-message mapping shared by both
// application kinds.
func StatusMessage(newStatus Status) string {
	switch newStatus {
	case StatusAdmitted:
		return "Congratulations! You've been admitted to the program."
	case StatusRejected:
		return "Your application has been reviewed. Check your status for details."
	case StatusWaitingList:
		return "You've been placed on the waiting list for the program."
	default:
		return "Your application status has been updated."
	}
}

// Transition validates a status change and produces its notification
// effect. It performs no I/O and does not mutate the application.
func Transition(app *Application, newStatus Status) (*Effect, error) {
	if !newStatus.IsValid() {
		return nil, common.NewError(common.CodeInvalidArgument, "status must be pending, admitted, rejected or waiting-list", nil)
	}

	return &Effect{
		RecipientID: app.StudentID,
		Title:       "Application Status Update",
		Message:     StatusMessage(newStatus),
		Type:        "info",
		Link:        "/student/applications",
	}, nil
}
