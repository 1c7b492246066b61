package handler

import (
	"github.com/fadilmartias/skill-connect/internal/config"
	"github.com/fadilmartias/skill-connect/internal/dto"
	"github.com/fadilmartias/skill-connect/internal/middleware"
	"github.com/fadilmartias/skill-connect/internal/usecase"
	"github.com/fadilmartias/skill-connect/internal/util"
	"github.com/gofiber/fiber/v2"
)

type EmployerHandler struct {
	uc *usecase.EmployerUsecase
}

func NewEmployerHandler(uc *usecase.EmployerUsecase) *EmployerHandler {
	return &EmployerHandler{uc: uc}
}

func (h *EmployerHandler) RegisterRoutes(router fiber.Router) {
	limits := config.LoadLimiterConfig()
	router.Get("/employers", h.List)
	router.Post("/employers", middleware.RateLimiter(limits.PostMax, limits.Window), h.Register)
}

func (h *EmployerHandler) List(c *fiber.Ctx) error {
	employers, err := h.uc.List()
	if err != nil {
		return respondError(c, err, "failed to list employers")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list employers",
		Data:    dto.NewEmployerDTOs(employers),
	})
}

func (h *EmployerHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterEmployerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	employer, err := h.uc.Register(req)
	if err != nil {
		return respondError(c, err, "failed to register employer")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Employer registered successfully",
		Data:    dto.NewEmployerDTO(*employer),
	})
}
