package seed

import (
	"fmt"
	"strings"
	"time"

	"mentecare-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Account is one demo login created by the seeder.
type Account struct {
	Email       string
	Password    string
	FullName    string
	Phone       string
	DateOfBirth string
	Gender      string
	CPF         string
	UserType    entity.UserType

	Professional *ProfessionalProfile
}

type ProfessionalProfile struct {
	CRPCRM            string
	Specialty         string
	Bio               string
	ExperienceYears   int
	ConsultationPrice string
	Approach          string
	Languages         string
	Rating            string
	TotalReviews      int
}

// Accounts returns the demo data set: three patients and four verified,
// available professionals.
func Accounts() []Account {
	return []Account{
		{
			Email:       "amanda.silva@email.com",
			Password:    "123456",
			FullName:    "Amanda Silva",
			Phone:       "(11) 99999-1111",
			DateOfBirth: "1990-05-15",
			Gender:      entity.GenderFemale,
			CPF:         "123.456.789-01",
			UserType:    entity.UserTypePatient,
		},
		{
			Email:       "carlos.santos@email.com",
			Password:    "123456",
			FullName:    "Carlos Santos",
			Phone:       "(11) 99999-2222",
			DateOfBirth: "1985-08-22",
			Gender:      entity.GenderMale,
			CPF:         "987.654.321-02",
			UserType:    entity.UserTypePatient,
		},
		{
			Email:       "novo.teste@email.com",
			Password:    "NovaSenha123",
			FullName:    "Novo Usuário Teste",
			Phone:       "(11) 99999-0000",
			DateOfBirth: "2000-01-01",
			Gender:      entity.GenderOther,
			CPF:         "000.000.000-00",
			UserType:    entity.UserTypePatient,
		},
		{
			Email:       "dr.ana.costa@email.com",
			Password:    "123456",
			FullName:    "Dra. Ana Costa",
			Phone:       "(11) 99999-3333",
			DateOfBirth: "1980-03-10",
			Gender:      entity.GenderFemale,
			CPF:         "111.222.333-44",
			UserType:    entity.UserTypeProfessional,
			Professional: &ProfessionalProfile{
				CRPCRM:            "CRP 06/123456",
				Specialty:         "Psicologia Clínica",
				Bio:               "Psicóloga especializada em terapia cognitivo-comportamental com mais de 10 anos de experiência no atendimento de adultos com ansiedade e depressão.",
				ExperienceYears:   10,
				ConsultationPrice: "120.00",
				Approach:          "Terapia Cognitivo-Comportamental",
				Languages:         "Português, Inglês",
				Rating:            "4.8",
				TotalReviews:      45,
			},
		},
		{
			Email:       "dr.roberto.silva@email.com",
			Password:    "123456",
			FullName:    "Dr. Roberto Silva",
			Phone:       "(11) 99999-4444",
			DateOfBirth: "1975-07-25",
			Gender:      entity.GenderMale,
			CPF:         "555.666.777-88",
			UserType:    entity.UserTypeProfessional,
			Professional: &ProfessionalProfile{
				CRPCRM:            "CRM 123456",
				Specialty:         "Psiquiatria",
				Bio:               "Médico psiquiatra com especialização em transtornos de humor e ansiedade. Atendimento humanizado e baseado em evidências científicas.",
				ExperienceYears:   15,
				ConsultationPrice: "200.00",
				Approach:          "Psiquiatria Baseada em Evidências",
				Languages:         "Português, Espanhol",
				Rating:            "4.9",
				TotalReviews:      78,
			},
		},
		{
			Email:       "dra.maria.oliveira@email.com",
			Password:    "123456",
			FullName:    "Dra. Maria Oliveira",
			Phone:       "(11) 99999-5555",
			DateOfBirth: "1982-12-05",
			Gender:      entity.GenderFemale,
			CPF:         "999.888.777-66",
			UserType:    entity.UserTypeProfessional,
			Professional: &ProfessionalProfile{
				CRPCRM:            "CRP 06/789012",
				Specialty:         "Psicologia Infantil",
				Bio:               "Psicóloga especializada no atendimento de crianças e adolescentes. Experiência em terapia lúdica e orientação familiar.",
				ExperienceYears:   8,
				ConsultationPrice: "100.00",
				Approach:          "Terapia Lúdica e Sistêmica",
				Languages:         "Português",
				Rating:            "4.7",
				TotalReviews:      32,
			},
		},
		{
			Email:       "dr.pedro.almeida@email.com",
			Password:    "123456",
			FullName:    "Dr. Pedro Almeida",
			Phone:       "(11) 99999-6666",
			DateOfBirth: "1978-09-18",
			Gender:      entity.GenderMale,
			CPF:         "444.333.222-11",
			UserType:    entity.UserTypeProfessional,
			Professional: &ProfessionalProfile{
				CRPCRM:            "CRP 06/345678",
				Specialty:         "Psicologia Organizacional",
				Bio:               "Psicólogo especializado em saúde mental no trabalho, burnout e desenvolvimento de carreira. Atendimento individual e em grupo.",
				ExperienceYears:   12,
				ConsultationPrice: "150.00",
				Approach:          "Psicologia Positiva e Coaching",
				Languages:         "Português, Inglês, Francês",
				Rating:            "4.6",
				TotalReviews:      28,
			},
		},
	}
}

// toEntities builds the rows for an account. passwordHash is stored as is.
func (a Account) toEntities(passwordHash string) (*entity.User, *entity.Professional, error) {
	dob, err := time.Parse(time.DateOnly, a.DateOfBirth)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: date_of_birth: %w", a.Email, err)
	}
	cpf := a.CPF

	user := &entity.User{
		Email:       strings.ToLower(a.Email),
		Password:    passwordHash,
		FullName:    a.FullName,
		Phone:       a.Phone,
		DateOfBirth: &dob,
		Gender:      a.Gender,
		CPF:         &cpf,
		UserType:    a.UserType,
		IsActive:    true,
	}

	if a.Professional == nil {
		if a.UserType == entity.UserTypeProfessional {
			return nil, nil, fmt.Errorf("%s: professional account without a profile", a.Email)
		}
		return user, nil, nil
	}

	p := a.Professional
	price, err := decimal.NewFromString(p.ConsultationPrice)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: consultation_price: %w", a.Email, err)
	}
	rating, err := decimal.NewFromString(p.Rating)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: rating: %w", a.Email, err)
	}

	professional := &entity.Professional{
		CRPCRM:            p.CRPCRM,
		Specialty:         p.Specialty,
		Bio:               p.Bio,
		ExperienceYears:   p.ExperienceYears,
		ConsultationPrice: price,
		Approach:          p.Approach,
		Languages:         p.Languages,
		IsVerified:        true,
		Rating:            rating,
		TotalReviews:      p.TotalReviews,
		IsAvailable:       true,
	}
	return user, professional, nil
}
