package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"mentecare-backend/internal/delivery/dto"
	"mentecare-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var (
	// Query amounts are plain decimals; exponent notation is rejected.
	pricePattern  = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)
	ratingPattern = regexp.MustCompile(`^\d(\.\d{1,2})?$`)

	// MaxConsultationPrice is the largest value a decimal(10,2) column holds
	MaxConsultationPrice = decimal.RequireFromString("99999999.99")
)

// compileSearchQuery turns raw search parameters into a typed filter and
// page request. All field problems are reported together; nothing is
// queried when any is present.
func compileSearchQuery(q *dto.SearchProfessionalsQuery) (*entity.ProfessionalFilter, entity.PageRequest, error) {
	fields := make(map[string]string)

	for _, name := range q.Unknown {
		fields[name] = "unknown query parameter"
	}
	for _, name := range q.Duplicated {
		fields[name] = name + " must be supplied at most once"
	}

	filter := &entity.ProfessionalFilter{
		Specialty: q.Specialty,
		Approach:  q.Approach,
		Language:  q.Language,
	}

	filter.MinPrice = parseAmount(fields, dto.SearchParamMinPrice, q.MinPrice, pricePattern, MaxConsultationPrice)
	filter.MaxPrice = parseAmount(fields, dto.SearchParamMaxPrice, q.MaxPrice, pricePattern, MaxConsultationPrice)
	filter.MinRating = parseAmount(fields, dto.SearchParamRating, q.Rating, ratingPattern, decimal.NewFromInt(entity.MaxRating))

	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		fields[dto.SearchParamMinPrice] = "min_price must not be greater than max_price"
	}

	if q.ExperienceYears != "" {
		years, err := strconv.Atoi(q.ExperienceYears)
		if err != nil || years < 0 || years > entity.MaxExperienceYears {
			fields[dto.SearchParamExperienceYears] = "experience_years must be an integer between 0 and 50"
		} else {
			filter.MinExperienceYears = &years
		}
	}

	page, err := parsePageRequest(q.Page, q.Limit)
	if err != nil {
		for name, msg := range err.Fields {
			fields[name] = msg
		}
	}

	if len(fields) > 0 {
		return nil, entity.PageRequest{}, &ValidationError{Fields: fields}
	}
	return filter, page, nil
}

// parseAmount parses a non-negative plain decimal bounded by max. The raw
// text must match pattern before it is converted. Failures are written to
// fields and yield nil.
func parseAmount(fields map[string]string, name, raw string, pattern *regexp.Regexp, max decimal.Decimal) *decimal.Decimal {
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "-") {
		fields[name] = name + " must not be negative"
		return nil
	}
	if !pattern.MatchString(raw) {
		fields[name] = name + " must be a number with at most 2 decimal places"
		return nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		fields[name] = name + " must be a number"
		return nil
	}
	if value.GreaterThan(max) {
		fields[name] = name + " must be between 0 and " + max.String()
		return nil
	}
	return &value
}

// checkConsultationPrice validates a price decoded from a JSON body.
// Exponent and coefficient size are bounded before any comparison, since
// comparing rescales the value by its exponent.
func checkConsultationPrice(price decimal.Decimal) *ValidationError {
	const field = "consultation_price"

	if price.Exponent() < -2 || price.Exponent() > 8 || price.Coefficient().BitLen() > 64 {
		return newValidationError(field, field+" must be a number with at most 2 decimal places and at most "+MaxConsultationPrice.String())
	}
	if price.IsNegative() {
		return newValidationError(field, field+" must not be negative")
	}
	if price.GreaterThan(MaxConsultationPrice) {
		return newValidationError(field, field+" must be between 0 and "+MaxConsultationPrice.String())
	}
	return nil
}

// parsePageRequest applies the page/limit defaults and bounds shared by
// every paginated listing.
func parsePageRequest(rawPage, rawLimit string) (entity.PageRequest, *ValidationError) {
	page := entity.PageRequest{Page: entity.DefaultPage, Limit: entity.DefaultLimit}
	fields := make(map[string]string)

	if rawPage != "" {
		n, err := strconv.Atoi(rawPage)
		if err != nil || n < 1 || n > math.MaxInt32 {
			fields[dto.SearchParamPage] = "page must be a positive integer"
		} else {
			page.Page = n
		}
	}

	if rawLimit != "" {
		n, err := strconv.Atoi(rawLimit)
		if err != nil || n < 1 || n > entity.MaxLimit {
			fields[dto.SearchParamLimit] = "limit must be an integer between 1 and " + strconv.Itoa(entity.MaxLimit)
		} else {
			page.Limit = n
		}
	}

	if len(fields) > 0 {
		return entity.PageRequest{}, &ValidationError{Fields: fields}
	}
	return page, nil
}
