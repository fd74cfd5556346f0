package seed

import (
	"regexp"
	"testing"

	"mentecare-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

func TestAccountsAreUnique(t *testing.T) {
	emails := map[string]bool{}
	cpfs := map[string]bool{}
	licences := map[string]bool{}

	for _, a := range Accounts() {
		if emails[a.Email] {
			t.Fatalf("duplicate email %s", a.Email)
		}
		emails[a.Email] = true

		if cpfs[a.CPF] {
			t.Fatalf("duplicate cpf %s", a.CPF)
		}
		cpfs[a.CPF] = true
		if !cpfPattern.MatchString(a.CPF) {
			t.Fatalf("cpf %q of %s is malformed", a.CPF, a.Email)
		}

		if len(a.Password) < 6 {
			t.Fatalf("password of %s is too short", a.Email)
		}

		if a.Professional != nil {
			if licences[a.Professional.CRPCRM] {
				t.Fatalf("duplicate crp_crm %s", a.Professional.CRPCRM)
			}
			licences[a.Professional.CRPCRM] = true
		}
	}
}

func TestAccountsProfessionalRanking(t *testing.T) {
	var ratings []string
	var reviews []int
	patients := 0

	for _, a := range Accounts() {
		user, professional, err := a.toEntities("hash")
		if err != nil {
			t.Fatalf("toEntities(%s): %v", a.Email, err)
		}
		if !user.IsActive || user.Password != "hash" {
			t.Fatalf("user %s not built as active with the given hash", a.Email)
		}
		if professional == nil {
			patients++
			continue
		}
		if !professional.IsVisible() {
			t.Fatalf("seeded professional %s must be visible", a.Email)
		}
		if professional.Rating.GreaterThan(decimal.NewFromInt(entity.MaxRating)) || professional.ConsultationPrice.IsNegative() {
			t.Fatalf("professional %s out of range", a.Email)
		}
		ratings = append(ratings, professional.Rating.String())
		reviews = append(reviews, professional.TotalReviews)
	}

	if patients != 3 {
		t.Fatalf("expected 3 patients, got %d", patients)
	}
	wantRatings := []string{"4.8", "4.9", "4.7", "4.6"}
	wantReviews := []int{45, 78, 32, 28}
	if len(ratings) != len(wantRatings) {
		t.Fatalf("expected %d professionals, got %d", len(wantRatings), len(ratings))
	}
	for i := range wantRatings {
		if ratings[i] != wantRatings[i] || reviews[i] != wantReviews[i] {
			t.Fatalf("professional %d: got %s/%d, want %s/%d", i, ratings[i], reviews[i], wantRatings[i], wantReviews[i])
		}
	}
}

func TestToEntitiesRejectsProfessionalWithoutProfile(t *testing.T) {
	a := Account{
		Email:       "x@example.com",
		Password:    "123456",
		DateOfBirth: "1990-01-01",
		UserType:    entity.UserTypeProfessional,
	}
	if _, _, err := a.toEntities("hash"); err == nil {
		t.Fatalf("expected an error for a professional without a profile")
	}
}
