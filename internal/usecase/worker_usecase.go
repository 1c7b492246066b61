package usecase

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fadilmartias/skill-connect/internal/dto"
	"github.com/fadilmartias/skill-connect/internal/filter"
	"github.com/fadilmartias/skill-connect/internal/model"
	"github.com/fadilmartias/skill-connect/internal/repository"
	"github.com/fadilmartias/skill-connect/internal/util"
	"github.com/google/uuid"
)

const msgFillAllFields = "Please fill all required fields"

type WorkerUsecase struct {
	workerRepo  *repository.WorkerRepository
	catalogRepo *repository.CatalogRepository
	now         func() time.Time
}

func NewWorkerUsecase(workerRepo *repository.WorkerRepository, catalogRepo *repository.CatalogRepository) *WorkerUsecase {
	return &WorkerUsecase{workerRepo: workerRepo, catalogRepo: catalogRepo, now: time.Now}
}

// Search runs criteria over a fresh snapshot of all workers.
func (uc *WorkerUsecase) Search(criteria filter.WorkerCriteria) (SearchResult[model.Worker], error) {
	workers, err := uc.workerRepo.List()
	if err != nil {
		return SearchResult[model.Worker]{}, err
	}
	return newSearchResult(filter.Workers(workers, criteria), len(workers)), nil
}

func (uc *WorkerUsecase) Get(id string) (*model.Worker, error) {
	return uc.workerRepo.FindByID(id)
}

func (uc *WorkerUsecase) Register(req dto.RegisterWorkerRequest) (*model.Worker, error) {
	f := util.NewFormChecker()
	f.Required("name", req.Name)
	f.Required("phone", req.Phone)
	f.Required("village", req.Village)
	f.Required("district", req.District)
	f.Required("experience_level", req.ExperienceLevel)
	f.Required("availability", req.Availability)
	f.Check(req.District == "" || uc.catalogRepo.HasDistrict(req.District), "district", "unknown district")
	f.Check(req.ExperienceLevel == "" || model.ExperienceLevel(req.ExperienceLevel).Valid(), "experience_level", "unknown experience level")
	f.Check(req.Availability == "" || model.Availability(req.Availability).Valid(), "availability", "unknown availability")
	f.Check(len(req.Skills) > 0, "skills", "at least one skill is required")

	skills := make([]model.Skill, 0, len(req.Skills))
	for i, s := range req.Skills {
		field := fmt.Sprintf("skills[%d].category", i)
		f.Required(field, s.Category)
		f.Check(s.Category == "" || model.SkillCategory(s.Category).Valid(), field, "unknown skill category")
		skills = append(skills, model.Skill{
			Category:    model.SkillCategory(s.Category),
			Description: strings.TrimSpace(s.Description),
		})
	}
	if err := f.Err(msgFillAllFields); err != nil {
		return nil, err
	}

	worker := &model.Worker{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Village:         strings.TrimSpace(req.Village),
		District:        req.District,
		Skills:          skills,
		ExperienceLevel: model.ExperienceLevel(req.ExperienceLevel),
		Availability:    model.Availability(req.Availability),
		Phone:           strings.TrimSpace(req.Phone),
		CreatedAt:       today(uc.now),
	}
	if err := uc.workerRepo.Create(worker); err != nil {
		return nil, fmt.Errorf("failed to register worker: %w", err)
	}

	log.Printf("worker %s registered (%s, %s)", worker.ID, worker.Name, worker.District)
	return worker, nil
}

// today returns the current UTC calendar date at midnight.
func today(now func() time.Time) time.Time {
	return now().UTC().Truncate(24 * time.Hour)
}
