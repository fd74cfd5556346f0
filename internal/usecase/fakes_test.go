package usecase

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"mentecare-backend/internal/domain/entity"
	"mentecare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeProfessionalRepository evaluates searches in memory with the same
// gate, filter and ordering the SQL repository uses.
type fakeProfessionalRepository struct {
	professionals []entity.Professional
	specialties   []string
	// raw bypasses filtering so Search returns professionals verbatim
	raw bool
}

func (r *fakeProfessionalRepository) Create(ctx context.Context, db *gorm.DB, p *entity.Professional) error {
	p.ID = int64(len(r.professionals) + 1)
	r.professionals = append(r.professionals, *p)
	return nil
}

func (r *fakeProfessionalRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Professional, error) {
	for i := range r.professionals {
		if r.professionals[i].ID == id {
			p := r.professionals[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfessionalRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Professional, error) {
	for i := range r.professionals {
		if r.professionals[i].UserID == userID {
			p := r.professionals[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfessionalRepository) Search(ctx context.Context, db *gorm.DB, filter *entity.ProfessionalFilter, page entity.PageRequest) ([]entity.Professional, int64, error) {
	if r.raw {
		return slices.Clone(r.professionals), int64(len(r.professionals)), nil
	}

	var matched []entity.Professional
	for i := range r.professionals {
		if filter.Matches(&r.professionals[i]) {
			matched = append(matched, r.professionals[i])
		}
	}
	slices.SortFunc(matched, func(a, b entity.Professional) int {
		return entity.CompareRank(&a, &b)
	})

	total := int64(len(matched))
	start := min(page.Offset(), len(matched))
	end := min(start+page.Limit, len(matched))
	return append([]entity.Professional{}, matched[start:end]...), total, nil
}

func (r *fakeProfessionalRepository) FindSpecialties(ctx context.Context, db *gorm.DB) ([]string, error) {
	return r.specialties, nil
}

func (r *fakeProfessionalRepository) UpdateFields(ctx context.Context, db *gorm.DB, id int64, fields map[string]interface{}) error {
	return nil
}

type fakeUserRepository struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepository(users ...*entity.User) *fakeUserRepository {
	r := &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepository) FindByIDWithProfessional(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepository) UpdateFields(ctx context.Context, db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	return nil
}

type fakeTokenRepository struct {
	tokens map[string]time.Duration
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{tokens: make(map[string]time.Duration)}
}

func tokenEntry(kind repository.TokenKind, userID uuid.UUID, tokenID string) string {
	return string(kind) + ":" + userID.String() + ":" + tokenID
}

func (r *fakeTokenRepository) Save(ctx context.Context, kind repository.TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	r.tokens[tokenEntry(kind, userID, tokenID)] = ttl
	return nil
}

func (r *fakeTokenRepository) Exists(ctx context.Context, kind repository.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	_, ok := r.tokens[tokenEntry(kind, userID, tokenID)]
	return ok, nil
}

func (r *fakeTokenRepository) Delete(ctx context.Context, kind repository.TokenKind, userID uuid.UUID, tokenID string) error {
	delete(r.tokens, tokenEntry(kind, userID, tokenID))
	return nil
}

func (r *fakeTokenRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	for key := range r.tokens {
		if strings.Contains(key, ":"+userID.String()+":") {
			delete(r.tokens, key)
		}
	}
	return nil
}

// seedProfessionals mirrors the demo data set: four verified professionals
// plus hidden rows that must never surface.
func seedProfessionals() []entity.Professional {
	mk := func(id int64, specialty, price, rating string, reviews, years int, approach string) entity.Professional {
		return entity.Professional{
			ID:                id,
			UserID:            uuid.New(),
			CRPCRM:            fmt.Sprintf("CRP-%05d", id),
			Specialty:         specialty,
			ConsultationPrice: decimal.RequireFromString(price),
			Rating:            decimal.RequireFromString(rating),
			TotalReviews:      reviews,
			ExperienceYears:   years,
			Approach:          approach,
			Languages:         "Português, Inglês",
			IsVerified:        true,
			IsAvailable:       true,
		}
	}

	ps := []entity.Professional{
		mk(1, "Psicologia Clínica", "150.00", "4.8", 45, 8, "Terapia Cognitivo-Comportamental"),
		mk(2, "Psiquiatria", "200.00", "4.9", 78, 12, "Psiquiatria Clínica"),
		mk(3, "Psicologia Infantil", "120.00", "4.7", 32, 6, "Ludoterapia"),
		mk(4, "Terapia de Casal", "180.00", "4.6", 28, 10, "Terapia Sistêmica"),
	}

	unverified := mk(5, "Psiquiatria", "90.00", "5.0", 99, 20, "Psicanálise")
	unverified.IsVerified = false
	unavailable := mk(6, "Psiquiatria", "90.00", "5.0", 99, 20, "Psicanálise")
	unavailable.IsAvailable = false

	return append(ps, unverified, unavailable)
}
