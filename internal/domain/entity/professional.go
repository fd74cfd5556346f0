package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MaxExperienceYears caps experience_years on write and in filters
	MaxExperienceYears = 50
	// MaxRating is the upper bound of the rating scale
	MaxRating = 5

	DefaultLanguages = "Português"
)

// Professional extends a User of type professional with the searchable
// clinical profile.
type Professional struct {
	ID                int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CRPCRM            string          `gorm:"column:crp_crm;type:varchar(20);uniqueIndex;not null" json:"crp_crm"`
	Specialty         string          `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Bio               string          `gorm:"type:text" json:"bio,omitempty"`
	ExperienceYears   int             `gorm:"not null;default:0" json:"experience_years"`
	ConsultationPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_price"`
	Approach          string          `gorm:"type:varchar(200)" json:"approach,omitempty"`
	Languages         string          `gorm:"type:varchar(100);default:'Português'" json:"languages,omitempty"`
	IsVerified        bool            `gorm:"not null;index" json:"is_verified"`
	Rating            decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`
	TotalReviews      int             `gorm:"not null;default:0" json:"total_reviews"`
	IsAvailable       bool            `gorm:"not null;index" json:"is_available"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Professional) TableName() string {
	return "professionals"
}

// IsVisible is the visibility gate: only verified and available
// professionals may ever appear in search results.
func (p *Professional) IsVisible() bool {
	return p.IsVerified && p.IsAvailable
}
