package server

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/skill-connect/internal/config"
	"github.com/fadilmartias/skill-connect/internal/domain/fiber/handler"
	"github.com/fadilmartias/skill-connect/internal/middleware"
	"github.com/fadilmartias/skill-connect/internal/repository"
	"github.com/fadilmartias/skill-connect/internal/seed"
	"github.com/fadilmartias/skill-connect/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Usecases struct {
	Workers   *usecase.WorkerUsecase
	Jobs      *usecase.JobUsecase
	Employers *usecase.EmployerUsecase
	Stats     *usecase.StatsUsecase
}

// NewUsecases builds the repositories for ds and the usecases on top of them.
func NewUsecases(ds *seed.Dataset) (*Usecases, error) {
	store, err := repository.NewStoreFromDataset(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to build store: %w", err)
	}

	workerRepo := repository.NewWorkerRepository(store)
	jobRepo := repository.NewJobRepository(store)
	employerRepo := repository.NewEmployerRepository(store)
	catalogRepo := repository.NewCatalogRepository(ds.Districts)

	return &Usecases{
		Workers:   usecase.NewWorkerUsecase(workerRepo, catalogRepo),
		Jobs:      usecase.NewJobUsecase(jobRepo, employerRepo),
		Employers: usecase.NewEmployerUsecase(employerRepo),
		Stats:     usecase.NewStatsUsecase(workerRepo, jobRepo, catalogRepo),
	}, nil
}

func New(uc *Usecases) *fiber.App {
	appConfig := config.LoadAppConfig()
	limits := config.LoadLimiterConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(limits.Max, limits.Window))

	api := app.Group("/api")
	handler.NewWorkerHandler(uc.Workers).RegisterRoutes(api)
	handler.NewJobHandler(uc.Jobs).RegisterRoutes(api)
	handler.NewEmployerHandler(uc.Employers).RegisterRoutes(api)
	handler.NewStatsHandler(uc.Stats).RegisterRoutes(api)

	return app
}
