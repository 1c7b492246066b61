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

type WorkerHandler struct {
	uc *usecase.WorkerUsecase
}

func NewWorkerHandler(uc *usecase.WorkerUsecase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

func (h *WorkerHandler) RegisterRoutes(router fiber.Router) {
	limits := config.LoadLimiterConfig()
	router.Get("/workers", h.Search)
	router.Get("/workers/:id", h.Get)
	router.Post("/workers", middleware.RateLimiter(limits.PostMax, limits.Window), h.Register)
}

// Search lists workers. Query: q, skill, district, availability.
func (h *WorkerHandler) Search(c *fiber.Ctx) error {
	criteria := filter.WorkerCriteria{
		SearchTerm:    c.Query("q"),
		SkillCategory: model.SkillCategory(c.Query("skill")),
		District:      c.Query("district"),
		Availability:  model.Availability(c.Query("availability")),
	}

	res, err := h.uc.Search(criteria)
	if err != nil {
		return respondError(c, err, "failed to search workers")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success search workers",
		Data:    dto.NewWorkerDTOs(res.Items),
		Meta:    response.ListMeta{Count: res.Count, Total: res.Total, Filtered: criteria.Active()},
	})
}

func (h *WorkerHandler) Get(c *fiber.Ctx) error {
	worker, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err, "worker not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get worker",
		Data:    dto.NewWorkerDTO(*worker),
	})
}

func (h *WorkerHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	worker, err := h.uc.Register(req)
	if err != nil {
		return respondError(c, err, "failed to register worker")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Worker registered successfully",
		Data:    dto.NewWorkerDTO(*worker),
	})
}
