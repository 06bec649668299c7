package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "daily-planner.com/daily-planner/internal/configs"
	httpapi "daily-planner.com/daily-planner/internal/http"
	"daily-planner.com/daily-planner/internal/llm"
	"daily-planner.com/daily-planner/internal/planner"
	"daily-planner.com/daily-planner/internal/queue"
	repository "daily-planner.com/daily-planner/internal/repositories"
	"daily-planner.com/daily-planner/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the daily planner HTTP API and the recurrence reset loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		slots := queue.NewRedisSlotManager(redisClient, cfg.RedisSlotKey)
		if err := slots.Fill(context.Background(), cfg.PlanConcurrency); err != nil {
			log.Fatalf("failed to initialize plan slots: %v", err)
		}

		database := config.New(cfg.DatabaseDSN)

		taskRepo := repository.NewTaskRepository(database)
		projectRepo := repository.NewProjectRepository(database)
		eventRepo := repository.NewFixedEventRepository(database)

		completer := llm.NewClient(
			cfg.OpenAIBaseURL,
			cfg.OpenAIAPIKey,
			cfg.OpenAIModel,
			time.Duration(cfg.OpenAITimeoutSeconds)*time.Second,
		)
		dayPlanner := planner.New(completer, cfg.Location)

		taskService := services.NewTaskService(taskRepo)
		catalogService := services.NewCatalogService(projectRepo, eventRepo)
		planService := services.NewPlanService(slots, taskRepo, projectRepo, eventRepo, dayPlanner, cfg.Location)

		recurrence := services.NewRecurrenceService(
			taskRepo,
			time.Duration(cfg.RecurrenceResetMinutes)*time.Minute,
			cfg.Location,
		)

		e := echo.New()
		handler := httpapi.NewHandler(taskService, catalogService, planService, cfg.DefaultUserID)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)
		recurrence.Shutdown(ctx)

		log.Println("HTTP server and recurrence loop shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
