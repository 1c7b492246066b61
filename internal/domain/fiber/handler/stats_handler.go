package handler

import (
	"github.com/fadilmartias/skill-connect/internal/dto"
	"github.com/fadilmartias/skill-connect/internal/response"
	"github.com/fadilmartias/skill-connect/internal/usecase"
	"github.com/fadilmartias/skill-connect/internal/util"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	uc *usecase.StatsUsecase
}

func NewStatsHandler(uc *usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/catalog", h.Catalog)
	router.Get("/stats", h.Stats)
	router.Get("/dashboard", h.Dashboard)
}

func (h *StatsHandler) Catalog(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get catalog",
		Data:    h.uc.Catalog(),
	})
}

func (h *StatsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats()
	if err != nil {
		return respondError(c, err, "failed to compute stats")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get stats",
		Data:    stats,
	})
}

func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	workers, jobs, err := h.uc.Dashboard()
	if err != nil {
		return respondError(c, err, "failed to load dashboard")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get dashboard",
		Data: dto.DashboardDTO{
			Workers: dto.NewWorkerDTOs(workers),
			Jobs:    dto.NewJobDTOs(jobs),
		},
		Meta: response.DashboardMeta{Workers: len(workers), Jobs: len(jobs)},
	})
}
