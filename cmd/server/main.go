package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	applicationRepository "github.com/gojobly/jobly/applications/repository"
	applicationServices "github.com/gojobly/jobly/applications/services"
	"github.com/gojobly/jobly/companies"
	companyHandlers "github.com/gojobly/jobly/companies/handlers"
	companyRepository "github.com/gojobly/jobly/companies/repository"
	companyServices "github.com/gojobly/jobly/companies/services"
	"github.com/gojobly/jobly/internal/database/postgres"
	"github.com/gojobly/jobly/internal/middleware/requestid"
	pkglog "github.com/gojobly/jobly/internal/pkg/log"
	platformconfig "github.com/gojobly/jobly/internal/platform/config"
	"github.com/gojobly/jobly/jobs"
	jobHandlers "github.com/gojobly/jobly/jobs/handlers"
	jobRepository "github.com/gojobly/jobly/jobs/repository"
	jobServices "github.com/gojobly/jobly/jobs/services"
	"github.com/gojobly/jobly/technologies"
	technologyHandlers "github.com/gojobly/jobly/technologies/handlers"
	technologyRepository "github.com/gojobly/jobly/technologies/repository"
	technologyServices "github.com/gojobly/jobly/technologies/services"
	"github.com/gojobly/jobly/users"
	userHandlers "github.com/gojobly/jobly/users/handlers"
	userRepository "github.com/gojobly/jobly/users/repository"
	userServices "github.com/gojobly/jobly/users/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load platform config: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			logCtx := pkglog.WithRequestID(context.Background(), requestid.GetRequestID(c))
			pkglog.ErrorWithContext(logCtx, "unhandled error on %s: %v", c.Path(), err)

			// A handler that already wrote a response wins.
			if len(c.Response().Body()) > 0 {
				return nil
			}

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.WebDomain,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))

	ctx := context.Background()
	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("Failed to create postgres client: %v", err)
	}
	defer pgClient.Close()
	pkglog.Info("Connected to PostgreSQL database %q", cfg.Database.Postgres.Database)

	// Repositories share the one connection pool.
	companyRepo := companyRepository.NewPostgresRepository(pgClient)
	jobRepo := jobRepository.NewPostgresRepository(pgClient)
	userRepo := userRepository.NewPostgresRepository(pgClient)
	applicationRepo := applicationRepository.NewPostgresRepository(pgClient)
	technologyRepo := technologyRepository.NewPostgresRepository(pgClient)

	// Services. The job service doubles as the companies package's job
	// lister and the application service as the users package's lister.
	jobService := jobServices.NewJobService(jobRepo)
	companyService := companyServices.NewCompanyService(companyRepo, jobService)
	applicationService := applicationServices.NewApplicationService(applicationRepo)
	userService := userServices.NewUserService(userRepo, applicationService, userServices.ServiceConfig{
		JWTSecret:        cfg.JWT.Secret,
		TokenTTL:         cfg.JWT.TokenTTL,
		BcryptCost:       cfg.Security.BcryptCost,
		MinPasswordScore: cfg.Security.MinPasswordScore,
	})
	technologyService := technologyServices.NewTechnologyService(technologyRepo)

	companies.RegisterRoutes(app, &companies.CompaniesHandlers{
		CompanyHandler: companyHandlers.NewCompanyHandler(companyService),
	}, cfg)

	jobs.RegisterRoutes(app, &jobs.JobsHandlers{
		JobHandler: jobHandlers.NewJobHandler(jobService),
	}, cfg)

	// Technologies registers the matching route; it must precede the users
	// apply route so "matching" is not read as a job id.
	technologies.RegisterRoutes(app, &technologies.TechnologiesHandlers{
		TechnologyHandler: technologyHandlers.NewTechnologyHandler(technologyService),
	}, cfg)

	users.RegisterRoutes(app, &users.UsersHandlers{
		AuthHandler: userHandlers.NewAuthHandler(userService),
		UserHandler: userHandlers.NewUserHandler(userService, applicationService),
	}, cfg)

	log.Printf("Starting %s API server on port %d", cfg.App.Name, cfg.Server.Port)
	log.Fatal(app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)))
}
