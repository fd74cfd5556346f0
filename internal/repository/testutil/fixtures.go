package testutil

import (
	"context"
	"fmt"
	"testing"

	"mentecare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, userType entity.UserType) *entity.User {
	tb.Helper()
	id := uuid.New()
	u := &entity.User{
		ID:       id,
		Email:    fmt.Sprintf("%s@example.test", id),
		Password: "hash",
		FullName: "Test " + id.String()[:8],
		Phone:    "(11) 99999-0000",
		UserType: userType,
		IsActive: true,
	}
	if err := tx.WithContext(ctx).Omit("Professional").Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

// ProfessionalSeed overrides the defaults of SeedProfessional. Rating and
// ConsultationPrice are decimal strings.
type ProfessionalSeed struct {
	Specialty         string
	Approach          string
	Languages         string
	ConsultationPrice string
	Rating            string
	TotalReviews      int
	ExperienceYears   int
	Hidden            bool // not verified
	Unavailable       bool
}

// SeedProfessional creates a professional user plus its profile.
func SeedProfessional(tb testing.TB, ctx context.Context, tx *gorm.DB, seed ProfessionalSeed) *entity.Professional {
	tb.Helper()
	user := SeedUser(tb, ctx, tx, entity.UserTypeProfessional)

	price := decimal.Zero
	if seed.ConsultationPrice != "" {
		price = decimal.RequireFromString(seed.ConsultationPrice)
	}
	rating := decimal.Zero
	if seed.Rating != "" {
		rating = decimal.RequireFromString(seed.Rating)
	}
	languages := seed.Languages
	if languages == "" {
		languages = entity.DefaultLanguages
	}

	p := &entity.Professional{
		UserID:            user.ID,
		CRPCRM:            "T" + user.ID.String()[:12],
		Specialty:         seed.Specialty,
		ExperienceYears:   seed.ExperienceYears,
		ConsultationPrice: price,
		Approach:          seed.Approach,
		Languages:         languages,
		IsVerified:        !seed.Hidden,
		Rating:            rating,
		TotalReviews:      seed.TotalReviews,
		IsAvailable:       !seed.Unavailable,
	}
	if err := tx.WithContext(ctx).Omit("User").Create(p).Error; err != nil {
		tb.Fatalf("seed professional: %v", err)
	}
	return p
}
