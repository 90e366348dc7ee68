package course

import "go.mongodb.org/mongo-driver/bson/primitive"

// Course is an institution's offering students apply to.
type Course struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	InstitutionID primitive.ObjectID `bson:"institution_id" json:"institutionId"`
	FacultyID     primitive.ObjectID `bson:"faculty_id,omitempty" json:"facultyId,omitempty"`
	Duration      string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Level         string             `bson:"level,omitempty" json:"level,omitempty"`
}

type Faculty struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// InstitutionInfo is the slice of an institution account attached to course
// listings.
type InstitutionInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// CourseWithDetails is a listing entry with related records resolved.
// Missing related records yield placeholders, never an error.
type CourseWithDetails struct {
	Course      `bson:",inline"`
	Institution InstitutionInfo `json:"institution"`
	Faculty     *Faculty        `json:"faculty,omitempty"`
}
