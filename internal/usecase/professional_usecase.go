package usecase

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"mentecare-backend/internal/converter"
	"mentecare-backend/internal/delivery/dto"
	"mentecare-backend/internal/domain/entity"
	"mentecare-backend/internal/domain/repository"
	"mentecare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfessionalUsecase interface {
	Search(ctx context.Context, query *dto.SearchProfessionalsQuery) (*dto.ProfessionalSearchResponse, error)
	ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProfessionalResponse, error)
	GetByUserID(ctx context.Context, actor Actor, userID uuid.UUID) (*dto.ProfessionalResponse, error)
	Update(ctx context.Context, actor Actor, userID uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
	SetVerified(ctx context.Context, id int64, verified bool) (*dto.ProfessionalResponse, error)
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		auditService:     auditService,
	}
}

func (u *professionalUsecase) Search(ctx context.Context, query *dto.SearchProfessionalsQuery) (*dto.ProfessionalSearchResponse, error) {
	filter, page, err := compileSearchQuery(query)
	if err != nil {
		return nil, err
	}

	professionals, total, err := u.professionalRepo.Search(ctx, u.db, filter, page)
	if err != nil {
		u.log.Warnf("Failed to search professionals: %+v", err)
		return nil, err
	}

	// Rows failing the gate are dropped and uncounted. A row failing only the
	// criteria is kept: ILIKE and Go case folding can differ on
	// some Unicode letters, so the mismatch is logged for diagnosis.
	visible := professionals[:0]
	for i := range professionals {
		p := &professionals[i]
		if !p.IsVisible() {
			u.log.WithField("professional_id", p.ID).Error("Search returned a professional outside the visibility gate")
			total--
			continue
		}
		if !filter.Matches(p) {
			u.log.WithField("professional_id", p.ID).Warn("Search row does not satisfy the in-memory filter")
		}
		visible = append(visible, *p)
	}
	total = max(total, int64(len(visible)))

	return &dto.ProfessionalSearchResponse{
		Professionals: converter.ProfessionalsToResponses(visible),
		Pagination:    converter.PaginationToResponse(entity.NewPagination(page, total)),
	}, nil
}

func (u *professionalUsecase) ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	raw, err := u.professionalRepo.FindSpecialties(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find specialties: %+v", err)
		return nil, err
	}

	specialties := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			specialties = append(specialties, s)
		}
	}
	slices.Sort(specialties)
	specialties = slices.Compact(specialties)

	return &dto.SpecialtyListResponse{Specialties: specialties}, nil
}

func (u *professionalUsecase) GetByID(ctx context.Context, id int64) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) GetByUserID(ctx context.Context, actor Actor, userID uuid.UUID) (*dto.ProfessionalResponse, error) {
	if actor.UserID != userID {
		return nil, ErrForbidden
	}

	professional, err := u.professionalRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find professional by user: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) Update(ctx context.Context, actor Actor, userID uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	if actor.UserID != userID || actor.UserType != entity.UserTypeProfessional {
		return nil, ErrForbidden
	}
	if req.ConsultationPrice != nil {
		if verr := checkConsultationPrice(*req.ConsultationPrice); verr != nil {
			return nil, verr
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, err := u.professionalRepo.FindByUserID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find professional by user: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	oldValue := converter.ProfessionalToResponse(professional)

	fields := professionalUpdateFields(req)
	if err := u.professionalRepo.UpdateFields(ctx, tx, professional.ID, fields); err != nil {
		u.log.Warnf("Failed to update professional: %+v", err)
		return nil, err
	}

	updated, err := u.professionalRepo.FindByID(ctx, tx, professional.ID)
	if err != nil {
		u.log.Warnf("Failed to reload professional: %+v", err)
		return nil, err
	}
	newValue := converter.ProfessionalToResponse(updated)

	if len(fields) > 0 {
		if err := u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionProfessionalUpdate, "professional", strconv.FormatInt(professional.ID, 10), oldValue, newValue); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// professionalUpdateFields maps the supplied fields to column updates.
// A map is used so false and zero values are written too.
func professionalUpdateFields(req *dto.UpdateProfessionalRequest) map[string]interface{} {
	fields := make(map[string]interface{})
	if req.Specialty != nil {
		fields["specialty"] = strings.TrimSpace(*req.Specialty)
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.ExperienceYears != nil {
		fields["experience_years"] = *req.ExperienceYears
	}
	if req.ConsultationPrice != nil {
		fields["consultation_price"] = req.ConsultationPrice.Round(2)
	}
	if req.Approach != nil {
		fields["approach"] = strings.TrimSpace(*req.Approach)
	}
	if req.Languages != nil {
		fields["languages"] = strings.TrimSpace(*req.Languages)
	}
	if req.IsAvailable != nil {
		fields["is_available"] = *req.IsAvailable
	}
	return fields
}

// SetVerified is the administrative write path for is_verified.
func (u *professionalUsecase) SetVerified(ctx context.Context, id int64, verified bool) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, err := u.professionalRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	oldValue := converter.ProfessionalToResponse(professional)

	if err := u.professionalRepo.UpdateFields(ctx, tx, id, map[string]interface{}{"is_verified": verified}); err != nil {
		u.log.Warnf("Failed to update verification: %+v", err)
		return nil, err
	}
	professional.IsVerified = verified
	newValue := converter.ProfessionalToResponse(professional)

	if err := u.auditService.LogUpdate(ctx, tx, nil, entity.AuditActionProfessionalVerify, "professional", strconv.FormatInt(id, 10), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"professional_id": id, "is_verified": verified}).Info("Professional verification updated")
	return newValue, nil
}
