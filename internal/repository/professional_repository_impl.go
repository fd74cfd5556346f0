package repository

import (
	"context"
	"errors"
	"strings"

	"mentecare-backend/internal/domain/entity"
	domainRepo "mentecare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

// VisibleProfessionals restricts a query to verified and available
// professionals. It is applied to every search regardless of filters.
func VisibleProfessionals(db *gorm.DB) *gorm.DB {
	return db.Where("professionals.is_verified = ? AND professionals.is_available = ?", true, true)
}

// MatchingFilter translates a validated filter into WHERE clauses.
// Criteria are ANDed; a nil filter adds nothing.
func MatchingFilter(filter *entity.ProfessionalFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter == nil {
			return db
		}
		if filter.Specialty != "" {
			db = db.Where("professionals.specialty ILIKE ?", containsPattern(filter.Specialty))
		}
		if filter.MinPrice != nil {
			db = db.Where("professionals.consultation_price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			db = db.Where("professionals.consultation_price <= ?", *filter.MaxPrice)
		}
		if filter.MinRating != nil {
			db = db.Where("professionals.rating >= ?", *filter.MinRating)
		}
		if filter.MinExperienceYears != nil {
			db = db.Where("professionals.experience_years >= ?", *filter.MinExperienceYears)
		}
		if filter.Approach != "" {
			db = db.Where("professionals.approach ILIKE ?", containsPattern(filter.Approach))
		}
		if filter.Language != "" {
			db = db.Where("professionals.languages ILIKE ?", containsPattern(filter.Language))
		}
		return db
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// publicUserColumns limits the joined owner to fields safe to publish
func publicUserColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "full_name", "email", "phone")
}

func (r *professionalRepository) Create(ctx context.Context, db *gorm.DB, professional *entity.Professional) error {
	return db.WithContext(ctx).Omit("User").Create(professional).Error
}

func (r *professionalRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.WithContext(ctx).Preload("User", publicUserColumns).Where("id = ?", id).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.WithContext(ctx).Preload("User", publicUserColumns).Where("user_id = ?", userID).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

// Search counts the matches and loads the requested page. On a pool handle
// both queries run concurrently; inside a transaction they run in turn
// because a single connection cannot serve two result sets at once.
func (r *professionalRepository) Search(ctx context.Context, db *gorm.DB, filter *entity.ProfessionalFilter, page entity.PageRequest) ([]entity.Professional, int64, error) {
	var (
		professionals []entity.Professional
		total         int64
	)

	count := func(ctx context.Context) error {
		return db.WithContext(ctx).
			Model(&entity.Professional{}).
			Scopes(VisibleProfessionals, MatchingFilter(filter)).
			Count(&total).Error
	}
	find := func(ctx context.Context) error {
		return db.WithContext(ctx).
			Scopes(VisibleProfessionals, MatchingFilter(filter)).
			Preload("User", publicUserColumns).
			Order(entity.ProfessionalRankOrder).
			Limit(page.Limit).
			Offset(page.Offset()).
			Find(&professionals).Error
	}

	if inTransaction(db) {
		if err := count(ctx); err != nil {
			return nil, 0, err
		}
		if err := find(ctx); err != nil {
			return nil, 0, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return count(gctx) })
		g.Go(func() error { return find(gctx) })
		if err := g.Wait(); err != nil {
			return nil, 0, err
		}
	}

	if professionals == nil {
		professionals = []entity.Professional{}
	}
	return professionals, total, nil
}

func inTransaction(db *gorm.DB) bool {
	_, ok := db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}

func (r *professionalRepository) FindSpecialties(ctx context.Context, db *gorm.DB) ([]string, error) {
	var specialties []string
	err := db.WithContext(ctx).
		Model(&entity.Professional{}).
		Scopes(VisibleProfessionals).
		Where("TRIM(professionals.specialty) <> ''").
		Distinct().
		Order("specialty ASC").
		Pluck("specialty", &specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *professionalRepository) UpdateFields(ctx context.Context, db *gorm.DB, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return db.WithContext(ctx).Model(&entity.Professional{}).Where("id = ?", id).Updates(fields).Error
}
