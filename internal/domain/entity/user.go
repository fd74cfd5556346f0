package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserType distinguishes patients from mental-health professionals
type UserType string

const (
	UserTypePatient      UserType = "patient"
	UserTypeProfessional UserType = "professional"
)

// Gender values accepted for a user profile
const (
	GenderMale   = "Masculino"
	GenderFemale = "Feminino"
	GenderOther  = "Outro"
)

// User represents the centralized authentication table
type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"column:password_hash;type:text;not null" json:"-"`
	FullName    string     `gorm:"type:varchar(100);not null" json:"full_name"`
	Phone       string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	CPF         *string    `gorm:"column:cpf;type:varchar(14);uniqueIndex" json:"cpf,omitempty"`
	UserType    UserType   `gorm:"type:varchar(20);not null;default:'patient'" json:"user_type"`
	IsActive    bool       `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Professional *Professional `gorm:"foreignKey:UserID" json:"professional,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the id client-side so it is known before the
// professional row referencing it is inserted.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsProfessional reports whether the user owns a Professional record
func (u *User) IsProfessional() bool {
	return u.UserType == UserTypeProfessional
}
