package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProfessionalFilter is a domain-level, already validated search filter.
// Used by repository layer to avoid coupling with delivery DTOs.
//
// Zero values mean "not supplied". Every supplied criterion must hold and the
// visibility gate always applies on top of them.
type ProfessionalFilter struct {
	Specialty          string           // case-insensitive substring of specialty
	MinPrice           *decimal.Decimal // consultation_price >= MinPrice
	MaxPrice           *decimal.Decimal // consultation_price <= MaxPrice
	MinRating          *decimal.Decimal // rating >= MinRating
	MinExperienceYears *int             // experience_years >= MinExperienceYears
	Approach           string           // case-insensitive substring of approach
	Language           string           // case-insensitive substring of languages
}

// Matches evaluates the filter, gate included, against a single record.
// It is the in-memory counterpart of the repository's SQL scopes.
func (f *ProfessionalFilter) Matches(p *Professional) bool {
	if !p.IsVisible() {
		return false
	}
	if f == nil {
		return true
	}
	if f.Specialty != "" && !containsFold(p.Specialty, f.Specialty) {
		return false
	}
	if f.MinPrice != nil && p.ConsultationPrice.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.ConsultationPrice.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.MinRating != nil && p.Rating.LessThan(*f.MinRating) {
		return false
	}
	if f.MinExperienceYears != nil && p.ExperienceYears < *f.MinExperienceYears {
		return false
	}
	if f.Approach != "" && !containsFold(p.Approach, f.Approach) {
		return false
	}
	if f.Language != "" && !containsFold(p.Languages, f.Language) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ProfessionalRankOrder is the SQL ordering of search results. The trailing
// id key makes pages deterministic when rating and total_reviews tie.
const ProfessionalRankOrder = "professionals.rating DESC, professionals.total_reviews DESC, professionals.id ASC"

// CompareRank orders professionals the same way as ProfessionalRankOrder.
// Returns a negative number when a ranks before b.
func CompareRank(a, b *Professional) int {
	if c := b.Rating.Cmp(a.Rating); c != 0 {
		return c
	}
	if a.TotalReviews != b.TotalReviews {
		if a.TotalReviews > b.TotalReviews {
			return -1
		}
		return 1
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}
