package usecase

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fadilmartias/skill-connect/internal/dto"
	"github.com/fadilmartias/skill-connect/internal/model"
	"github.com/fadilmartias/skill-connect/internal/repository"
	"github.com/fadilmartias/skill-connect/internal/util"
	"github.com/google/uuid"
)

type EmployerUsecase struct {
	employerRepo *repository.EmployerRepository
	now          func() time.Time
}

func NewEmployerUsecase(employerRepo *repository.EmployerRepository) *EmployerUsecase {
	return &EmployerUsecase{employerRepo: employerRepo, now: time.Now}
}

func (uc *EmployerUsecase) List() ([]model.Employer, error) {
	return uc.employerRepo.List()
}

func (uc *EmployerUsecase) Register(req dto.RegisterEmployerRequest) (*model.Employer, error) {
	f := util.NewFormChecker()
	f.Required("name", req.Name)
	f.Required("organization", req.Organization)
	f.Required("type", req.Type)
	f.Required("location", req.Location)
	f.Required("phone", req.Phone)
	f.Check(req.Type == "" || model.EmployerType(req.Type).Valid(), "type", "unknown employer type")
	if err := f.Err(msgFillAllFields); err != nil {
		return nil, err
	}

	employer := &model.Employer{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Organization: strings.TrimSpace(req.Organization),
		Type:         model.EmployerType(req.Type),
		Location:     strings.TrimSpace(req.Location),
		Phone:        strings.TrimSpace(req.Phone),
		CreatedAt:    today(uc.now),
	}
	if err := uc.employerRepo.Create(employer); err != nil {
		return nil, fmt.Errorf("failed to register employer: %w", err)
	}

	log.Printf("employer %s registered (%s, %s)", employer.ID, employer.Organization, employer.Type)
	return employer, nil
}
