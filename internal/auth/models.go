package auth

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleStudent     = "student"
	RoleInstitution = "institution"
	RoleCompany     = "company"
	RoleAdmin       = "admin"
)

// User is a platform account. Students carry the profile fields the matching
// engine reads (phone, work experience, owned application ids); institutions
// and companies are identified by their display name.
type User struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	DisplayName     string               `bson:"display_name" json:"displayName"`
	Email           string               `bson:"email" json:"email"`
	Phone           string               `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash    string               `bson:"password_hash" json:"-"`
	Role            string               `bson:"role" json:"role"`
	Verified        bool                 `bson:"verified" json:"verified"`
	ResetToken      string               `bson:"reset_token,omitempty" json:"-"`
	WorkExperience  bool                 `bson:"work_experience,omitempty" json:"workExperience,omitempty"`
	JobApplications []primitive.ObjectID `bson:"job_applications,omitempty" json:"jobApplications,omitempty"`
}

type RegisterRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}
