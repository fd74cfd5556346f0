package converter

import (
	"encoding/json"
	"strings"
	"testing"

	"mentecare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestProfessionalToResponseFormatsMoneyAndOwner(t *testing.T) {
	owner := uuid.New()
	p := &entity.Professional{
		ID:                7,
		UserID:            owner,
		Specialty:         "Psiquiatria",
		ConsultationPrice: decimal.RequireFromString("200"),
		Rating:            decimal.RequireFromString("4.9"),
		User:              entity.User{ID: owner, FullName: "Dr. Carlos Oliveira", Email: "dr.carlos@email.com"},
	}

	got := ProfessionalToResponse(p)
	if got.ConsultationPrice != "200.00" {
		t.Fatalf("consultation_price = %q", got.ConsultationPrice)
	}
	if got.Rating != "4.90" {
		t.Fatalf("rating = %q", got.Rating)
	}
	if got.User == nil || got.User.FullName != "Dr. Carlos Oliveira" {
		t.Fatalf("owner not converted: %+v", got.User)
	}
}

func TestUserToResponseNeverExposesPassword(t *testing.T) {
	u := &entity.User{
		ID:       uuid.New(),
		Email:    "amanda.silva@email.com",
		Password: "$2a$10$hash",
		UserType: entity.UserTypePatient,
	}

	raw, err := json.Marshal(UserToResponse(u))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "$2a$10$hash") || strings.Contains(string(raw), "password") {
		t.Fatalf("password leaked: %s", raw)
	}
}

func TestProfessionalsToResponsesEmptyEncodesAsArray(t *testing.T) {
	raw, err := json.Marshal(ProfessionalsToResponses(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("got %s, want []", raw)
	}
}
