package seed

import (
	"context"

	"mentecare-backend/internal/domain/entity"
	"mentecare-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Result counts what a seeding run did.
type Result struct {
	Created int
	Skipped int
	Removed int64
}

type Seeder struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	professionalRepo repository.ProfessionalRepository
	hashCost         int
}

func NewSeeder(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository, professionalRepo repository.ProfessionalRepository) *Seeder {
	return &Seeder{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		professionalRepo: professionalRepo,
		hashCost:         bcrypt.DefaultCost,
	}
}

// Run inserts every account whose email is not yet registered. With reset,
// the demo accounts are removed first so they are recreated with the
// original values. Everything happens in one transaction.
func (s *Seeder) Run(ctx context.Context, accounts []Account, reset bool) (*Result, error) {
	result := &Result{}

	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if reset {
		removed, err := removeAccounts(tx, accounts)
		if err != nil {
			s.log.Warnf("Failed to remove demo accounts: %+v", err)
			return nil, err
		}
		result.Removed = removed
	}

	for _, account := range accounts {
		existing, err := s.userRepo.FindByEmail(ctx, tx, account.Email)
		if err != nil {
			s.log.Warnf("Failed to find user: %+v", err)
			return nil, err
		}
		if existing != nil {
			s.log.WithField("email", account.Email).Info("account already exists, skipping")
			result.Skipped++
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), s.hashCost)
		if err != nil {
			return nil, err
		}

		user, professional, err := account.toEntities(string(hash))
		if err != nil {
			return nil, err
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			s.log.Warnf("Failed to create user: %+v", err)
			return nil, err
		}
		if professional != nil {
			professional.UserID = user.ID
			if err := s.professionalRepo.Create(ctx, tx, professional); err != nil {
				s.log.Warnf("Failed to create professional: %+v", err)
				return nil, err
			}
		}

		s.log.WithFields(logrus.Fields{"email": user.Email, "user_type": user.UserType}).Info("account created")
		result.Created++
	}

	if err := tx.Commit().Error; err != nil {
		s.log.Warnf("Failed to commit seed: %+v", err)
		return nil, err
	}

	return result, nil
}

func removeAccounts(tx *gorm.DB, accounts []Account) (int64, error) {
	emails := make([]string, 0, len(accounts))
	for _, a := range accounts {
		emails = append(emails, a.Email)
	}

	owners := tx.Model(&entity.User{}).Select("id").Where("email IN ?", emails)
	if err := tx.Where("user_id IN (?)", owners).Delete(&entity.Professional{}).Error; err != nil {
		return 0, err
	}

	res := tx.Where("email IN ?", emails).Delete(&entity.User{})
	return res.RowsAffected, res.Error
}
