package usecase

import (
	"errors"
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

// DefaultEmployerName is shown on postings made without an employer id.
const DefaultEmployerName = "Your Organization"

type JobUsecase struct {
	jobRepo      *repository.JobRepository
	employerRepo *repository.EmployerRepository
	now          func() time.Time
}

func NewJobUsecase(jobRepo *repository.JobRepository, employerRepo *repository.EmployerRepository) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo, employerRepo: employerRepo, now: time.Now}
}

// Search runs criteria over a fresh snapshot of all jobs, newest first.
func (uc *JobUsecase) Search(criteria filter.JobCriteria) (SearchResult[model.Job], error) {
	jobs, err := uc.jobRepo.List()
	if err != nil {
		return SearchResult[model.Job]{}, err
	}
	return newSearchResult(filter.Jobs(jobs, criteria), len(jobs)), nil
}

func (uc *JobUsecase) Get(id string) (*model.Job, error) {
	return uc.jobRepo.FindByID(id)
}

// Post creates an open job dated today and lists it before all others.
func (uc *JobUsecase) Post(req dto.PostJobRequest) (*model.Job, error) {
	f := util.NewFormChecker()
	f.Required("title", req.Title)
	f.Required("description", req.Description)
	f.Required("required_skill", req.RequiredSkill)
	f.Required("location", req.Location)
	f.Required("contact_info", req.ContactInfo)
	f.Check(req.RequiredSkill == "" || model.SkillCategory(req.RequiredSkill).Valid(), "required_skill", "unknown skill category")

	employerID, employerName := "", DefaultEmployerName
	if req.EmployerID != "" {
		employer, err := uc.employerRepo.FindByID(req.EmployerID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			f.Fail("employer_id", "unknown employer")
		case err != nil:
			return nil, err
		default:
			employerID, employerName = employer.ID, employer.Organization
		}
	}
	if err := f.Err(msgFillAllFields); err != nil {
		return nil, err
	}

	job := &model.Job{
		ID:            uuid.NewString(),
		EmployerID:    employerID,
		EmployerName:  employerName,
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		RequiredSkill: model.SkillCategory(req.RequiredSkill),
		Location:      strings.TrimSpace(req.Location),
		ContactInfo:   strings.TrimSpace(req.ContactInfo),
		Status:        model.JobStatusOpen,
		CreatedAt:     today(uc.now),
	}
	if err := uc.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to post job: %w", err)
	}

	log.Printf("job %s posted by %s (%s, %s)", job.ID, job.EmployerName, job.RequiredSkill, job.Location)
	return job, nil
}
