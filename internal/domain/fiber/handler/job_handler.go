package handler

import (
	"github.com/fadilmartias/skill-connect/internal/config"
	"github.com/fadilmartias/skill-connect/internal/dto"
	"github.com/fadilmartias/skill-connect/internal/filter"
	"github.com/fadilmartias/skill-connect/internal/middleware"
	"github.com/fadilmartias/skill-connect/internal/model"
	"github.com/fadilmartias/skill-connect/internal/response"
	"github.com/fadilmartias/skill-connect/internal/usecase"
	"github.com/fadilmartias/skill-connect/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(router fiber.Router) {
	limits := config.LoadLimiterConfig()
	router.Get("/jobs", h.Search)
	router.Get("/jobs/:id", h.Get)
	router.Post("/jobs", middleware.RateLimiter(limits.PostMax, limits.Window), h.Post)
}

// Search lists jobs. Query: q, skill, location, status.
func (h *JobHandler) Search(c *fiber.Ctx) error {
	criteria := filter.JobCriteria{
		SearchTerm:    c.Query("q"),
		RequiredSkill: model.SkillCategory(c.Query("skill")),
		Location:      c.Query("location"),
		Status:        model.JobStatus(c.Query("status")),
	}

	res, err := h.uc.Search(criteria)
	if err != nil {
		return respondError(c, err, "failed to search jobs")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success search jobs",
		Data:    dto.NewJobDTOs(res.Items),
		Meta:    response.ListMeta{Count: res.Count, Total: res.Total, Filtered: criteria.Active()},
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err, "job not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job",
		Data:    dto.NewJobDTO(*job),
	})
}

func (h *JobHandler) Post(c *fiber.Ctx) error {
	var req dto.PostJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	job, err := h.uc.Post(req)
	if err != nil {
		return respondError(c, err, "failed to post job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Job posted successfully",
		Data:    dto.NewJobDTO(*job),
	})
}
