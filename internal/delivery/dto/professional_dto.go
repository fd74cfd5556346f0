package dto

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Query parameter names accepted by the professional search
const (
	SearchParamSpecialty       = "specialty"
	SearchParamMinPrice        = "min_price"
	SearchParamMaxPrice        = "max_price"
	SearchParamRating          = "rating"
	SearchParamExperienceYears = "experience_years"
	SearchParamApproach        = "approach"
	SearchParamLanguage        = "language"
	SearchParamPage            = "page"
	SearchParamLimit           = "limit"
)

var searchParams = map[string]struct{}{
	SearchParamSpecialty:       {},
	SearchParamMinPrice:        {},
	SearchParamMaxPrice:        {},
	SearchParamRating:          {},
	SearchParamExperienceYears: {},
	SearchParamApproach:        {},
	SearchParamLanguage:        {},
	SearchParamPage:            {},
	SearchParamLimit:           {},
}

// SearchProfessionalsQuery holds the raw, trimmed search parameters.
// Parsing and range checks happen in the usecase.
type SearchProfessionalsQuery struct {
	Specialty       string
	MinPrice        string
	MaxPrice        string
	Rating          string
	ExperienceYears string
	Approach        string
	Language        string
	Page            string
	Limit           string

	// Unknown lists parameters that are not part of the search contract
	Unknown []string
	// Duplicated lists known parameters supplied more than once
	Duplicated []string
}

// NewSearchProfessionalsQuery reads a search request's query string.
func NewSearchProfessionalsQuery(values url.Values) *SearchProfessionalsQuery {
	q := &SearchProfessionalsQuery{}

	for name, vals := range values {
		if _, ok := searchParams[name]; !ok {
			q.Unknown = append(q.Unknown, name)
			continue
		}
		if len(vals) > 1 {
			q.Duplicated = append(q.Duplicated, name)
		}
	}
	sort.Strings(q.Unknown)
	sort.Strings(q.Duplicated)

	get := func(name string) string {
		return strings.TrimSpace(values.Get(name))
	}
	q.Specialty = get(SearchParamSpecialty)
	q.MinPrice = get(SearchParamMinPrice)
	q.MaxPrice = get(SearchParamMaxPrice)
	q.Rating = get(SearchParamRating)
	q.ExperienceYears = get(SearchParamExperienceYears)
	q.Approach = get(SearchParamApproach)
	q.Language = get(SearchParamLanguage)
	q.Page = get(SearchParamPage)
	q.Limit = get(SearchParamLimit)

	return q
}

// UpdateProfessionalRequest is a partial update of the owner-editable
// fields. Verification status is deliberately absent.
type UpdateProfessionalRequest struct {
	Specialty         *string          `json:"specialty" validate:"omitempty,notblank,min=2,max=100"`
	Bio               *string          `json:"bio" validate:"omitempty,max=1000"`
	ExperienceYears   *int             `json:"experience_years" validate:"omitempty,gte=0,lte=50"`
	ConsultationPrice *decimal.Decimal `json:"consultation_price"`
	Approach          *string          `json:"approach" validate:"omitempty,max=200"`
	Languages         *string          `json:"languages" validate:"omitempty,max=100"`
	IsAvailable       *bool            `json:"is_available"`
}

// Response DTOs

// ProfessionalUserResponse is the public subset of the owning user
type ProfessionalUserResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
}

type ProfessionalResponse struct {
	ID                int64                     `json:"id"`
	UserID            uuid.UUID                 `json:"user_id"`
	CRPCRM            string                    `json:"crp_crm"`
	Specialty         string                    `json:"specialty"`
	Bio               string                    `json:"bio"`
	ExperienceYears   int                       `json:"experience_years"`
	ConsultationPrice string                    `json:"consultation_price"`
	Approach          string                    `json:"approach"`
	Languages         string                    `json:"languages"`
	IsVerified        bool                      `json:"is_verified"`
	Rating            string                    `json:"rating"`
	TotalReviews      int                       `json:"total_reviews"`
	IsAvailable       bool                      `json:"is_available"`
	User              *ProfessionalUserResponse `json:"user,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

type PaginationResponse struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
}

type ProfessionalSearchResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Pagination    PaginationResponse     `json:"pagination"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
}
