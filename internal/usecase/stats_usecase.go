package usecase

import (
	"github.com/fadilmartias/skill-connect/internal/dto"
	"github.com/fadilmartias/skill-connect/internal/model"
	"github.com/fadilmartias/skill-connect/internal/repository"
)

type StatsUsecase struct {
	workerRepo  *repository.WorkerRepository
	jobRepo     *repository.JobRepository
	catalogRepo *repository.CatalogRepository
}

func NewStatsUsecase(workerRepo *repository.WorkerRepository, jobRepo *repository.JobRepository, catalogRepo *repository.CatalogRepository) *StatsUsecase {
	return &StatsUsecase{workerRepo: workerRepo, jobRepo: jobRepo, catalogRepo: catalogRepo}
}

func (uc *StatsUsecase) Catalog() dto.CatalogDTO {
	return dto.CatalogDTO{
		SkillCategories:      toStrings(uc.catalogRepo.SkillCategories()),
		Districts:            uc.catalogRepo.Districts(),
		ExperienceLevels:     toStrings(model.ExperienceLevels),
		AvailabilityStatuses: toStrings(model.AvailabilityStatuses),
		JobStatuses:          toStrings(model.JobStatuses),
		EmployerTypes:        toStrings(model.EmployerTypes),
	}
}

// Dashboard returns the full, unfiltered worker and job lists.
func (uc *StatsUsecase) Dashboard() ([]model.Worker, []model.Job, error) {
	workers, err := uc.workerRepo.List()
	if err != nil {
		return nil, nil, err
	}
	jobs, err := uc.jobRepo.List()
	if err != nil {
		return nil, nil, err
	}
	return workers, jobs, nil
}

func (uc *StatsUsecase) Stats() (*dto.StatsDTO, error) {
	workers, err := uc.workerRepo.List()
	if err != nil {
		return nil, err
	}
	jobs, err := uc.jobRepo.List()
	if err != nil {
		return nil, err
	}
	open, err := uc.jobRepo.CountByStatus(model.JobStatusOpen)
	if err != nil {
		return nil, err
	}

	villages := make(map[string]struct{})
	for _, w := range workers {
		villages[w.Village+"/"+w.District] = struct{}{}
	}

	districts := 0
	for _, d := range uc.catalogRepo.Districts() {
		n, err := uc.workerRepo.CountByDistrict(d)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			districts++
		}
	}

	categories := uc.catalogRepo.SkillCategories()
	bySkill := make([]dto.SkillCountDTO, 0, len(categories))
	for _, c := range categories {
		n, err := uc.workerRepo.CountBySkill(c)
		if err != nil {
			return nil, err
		}
		bySkill = append(bySkill, dto.SkillCountDTO{Category: string(c), Workers: n})
	}

	return &dto.StatsDTO{
		SkilledWorkers:    len(workers),
		JobsPosted:        len(jobs),
		OpenJobs:          open,
		VillagesConnected: len(villages),
		DistrictsCovered:  districts,
		SkillsMapped:      len(categories),
		BySkill:           bySkill,
	}, nil
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}
