package entity

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func professional(id int64, rating string, reviews int) Professional {
	return Professional{
		ID:                id,
		Specialty:         "Psicologia Clínica",
		Approach:          "Terapia Cognitivo-Comportamental",
		Languages:         "Português, Inglês",
		ConsultationPrice: decimal.RequireFromString("120"),
		ExperienceYears:   10,
		Rating:            decimal.RequireFromString(rating),
		TotalReviews:      reviews,
		IsVerified:        true,
		IsAvailable:       true,
	}
}

func TestMatchesAppliesGateWithoutCriteria(t *testing.T) {
	p := professional(1, "4.8", 45)

	var nilFilter *ProfessionalFilter
	if !nilFilter.Matches(&p) || !(&ProfessionalFilter{}).Matches(&p) {
		t.Fatalf("visible professional must match an empty filter")
	}

	p.IsVerified = false
	if (&ProfessionalFilter{}).Matches(&p) {
		t.Fatalf("unverified professional must never match")
	}

	p.IsVerified = true
	p.IsAvailable = false
	if nilFilter.Matches(&p) {
		t.Fatalf("unavailable professional must never match")
	}
}

func TestMatchesCriteria(t *testing.T) {
	p := professional(1, "4.8", 45)
	years := 10
	tooMany := 11
	price := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	cases := []struct {
		name   string
		filter ProfessionalFilter
		want   bool
	}{
		{"specialty case-insensitive", ProfessionalFilter{Specialty: "clínica"}, true},
		{"specialty miss", ProfessionalFilter{Specialty: "Psiquiatria"}, false},
		{"price inclusive bounds", ProfessionalFilter{MinPrice: price("120"), MaxPrice: price("120")}, true},
		{"price above max", ProfessionalFilter{MaxPrice: price("119.99")}, false},
		{"price below min", ProfessionalFilter{MinPrice: price("120.01")}, false},
		{"rating", ProfessionalFilter{MinRating: price("4.8")}, true},
		{"rating miss", ProfessionalFilter{MinRating: price("4.9")}, false},
		{"experience", ProfessionalFilter{MinExperienceYears: &years}, true},
		{"experience miss", ProfessionalFilter{MinExperienceYears: &tooMany}, false},
		{"approach", ProfessionalFilter{Approach: "cognitivo"}, true},
		{"language", ProfessionalFilter{Language: "inglês"}, true},
		{"language miss", ProfessionalFilter{Language: "Francês"}, false},
		{"conjunction", ProfessionalFilter{Specialty: "Clínica", Language: "Francês"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(&p); got != tc.want {
				t.Fatalf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCompareRank(t *testing.T) {
	list := []Professional{
		professional(4, "4.6", 28),
		professional(1, "4.8", 45),
		professional(6, "4.8", 45),
		professional(2, "4.9", 78),
		professional(5, "4.8", 50),
		professional(3, "4.7", 32),
	}

	slices.SortFunc(list, func(a, b Professional) int { return CompareRank(&a, &b) })

	var ids []int64
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	want := []int64{2, 5, 1, 6, 3, 4}
	if !slices.Equal(ids, want) {
		t.Fatalf("rank order = %v, want %v", ids, want)
	}
}
