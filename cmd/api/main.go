package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "ews-reports/internal/common/api"
	"ews-reports/internal/config"
	"ews-reports/internal/database"
	"ews-reports/internal/features/analytics"
	"ews-reports/internal/features/archive"
	"ews-reports/internal/features/comment"
	"ews-reports/internal/features/export"
	"ews-reports/internal/features/report"
	"ews-reports/internal/features/system"
	"ews-reports/internal/features/task"
	"ews-reports/internal/features/template"
	"ews-reports/internal/features/user"
	"ews-reports/internal/logger"
	"ews-reports/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates the Fiber app with the shared error envelope
// and CORS wiring.
func NewFiberServer(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if cfg.IsDevelopment() {
				return common_api.ErrorDetails(c, code, "Internal server error", err.Error())
			}
			return common_api.Error(c, code, "Internal server error")
		},
	})

	app.Use(middleware.CORSMiddleware(cfg))

	return app
}

// AsRoute tags a constructor so Fx adds its result to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes calls Setup() on every collected route, then installs
// the JSON 404 handler so unmatched paths share the response envelope.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}

	app.Use(func(c *fiber.Ctx) error {
		return common_api.Error(c, fiber.StatusNotFound, "Route not found")
	})
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer starts Fiber in a goroutine and shuts it down on app exit.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures backend indexes exist after startup. Failures
// are logged, not fatal: the collections still work without indexes.
func InitializeIndexes(
	lc fx.Lifecycle,
	zlog *zap.Logger,
	reportRepo report.ReportRepository,
	taskRepo task.TaskRepository,
	commentRepo comment.CommentRepository,
	archiveRepo archive.ArchiveRepository,
	userRepo user.UserRepository,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				ensure := func(name string, fn func(context.Context) error) {
					if err := fn(ctx); err != nil {
						zlog.Warn("failed to ensure indexes", zap.String("collection", name), zap.Error(err))
					}
				}
				ensure("reports", reportRepo.EnsureIndexes)
				ensure("tasks", taskRepo.EnsureIndexes)
				ensure("comments", commentRepo.EnsureIndexes)
				ensure("archive", archiveRepo.EnsureIndexes)
				ensure("users", userRepo.EnsureIndexes)
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,

			report.NewReportRepository,
			task.NewTaskRepository,
			comment.NewCommentRepository,
			template.NewTemplateRepository,
			user.NewUserRepository,
			archive.NewArchiveRepository,

			report.NewReportService,
			task.NewTaskService,
			comment.NewCommentService,
			template.NewTemplateService,
			user.NewUserService,
			archive.NewArchiveService,
			archive.NewScheduler,
			analytics.NewAnalyticsService,
			export.NewExportService,

			report.NewReportController,
			task.NewTaskController,
			comment.NewCommentController,
			template.NewTemplateController,
			user.NewUserController,
			archive.NewArchiveController,
			analytics.NewAnalyticsController,
			export.NewExportController,
			system.NewSystemController,

			AsRoute(report.NewReportApi),
			AsRoute(task.NewTaskApi),
			AsRoute(comment.NewCommentApi),
			AsRoute(template.NewTemplateApi),
			AsRoute(user.NewUserApi),
			AsRoute(archive.NewArchiveApi),
			AsRoute(analytics.NewAnalyticsApi),
			AsRoute(export.NewExportApi),
			AsRoute(system.NewSystemApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, scheduler *archive.Scheduler) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return scheduler.Start()
					},
					OnStop: func(ctx context.Context) error {
						scheduler.Stop()
						return nil
					},
				})
			},
			InitializeIndexes,
		),
	)

	app.Run()
}
