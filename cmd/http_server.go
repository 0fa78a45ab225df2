package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/grantify/grant-management/internal"
	"github.com/grantify/grant-management/internal/attachment"
	attachmentpg "github.com/grantify/grant-management/internal/attachment/postgres"
	"github.com/grantify/grant-management/internal/auth"
	authpg "github.com/grantify/grant-management/internal/auth/postgres"
	"github.com/grantify/grant-management/internal/expense"
	expensepg "github.com/grantify/grant-management/internal/expense/postgres"
	"github.com/grantify/grant-management/internal/grant"
	grantpg "github.com/grantify/grant-management/internal/grant/postgres"
	"github.com/grantify/grant-management/internal/permission"
	permissionpg "github.com/grantify/grant-management/internal/permission/postgres"
	"github.com/grantify/grant-management/internal/transport/rest"
	"github.com/grantify/grant-management/internal/user"
	userpg "github.com/grantify/grant-management/internal/user/postgres"
	"github.com/grantify/grant-management/pkg/logger"
)

const openAPISpecPath = "./api/openapi.yml"

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := rest.ValidateOpenAPISpec(context.Background(), openAPISpecPath); err != nil {
		fmt.Fprintf(os.Stderr, "OpenAPI spec is invalid: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	env := "development"
	if config.Observability.Logging.Format == "json" {
		env = "production"
	}
	logger.Init(env, config.Observability.Logging.Level)
	appLogger := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm over db connection: %w", err)
	}

	handlers, err := buildHandlers(config, db, gormDB, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build handlers: %w", err)
	}

	return &Dependencies{
		Config:   config,
		Logger:   appLogger,
		DB:       db,
		Router:   chi.NewRouter(),
		Handlers: handlers,
	}, nil
}

// buildHandlers wires repositories, services and handlers for every domain.
func buildHandlers(cfg *internal.Config, db *sqlx.DB, gormDB *gorm.DB, appLogger *slog.Logger) (rest.Handlers, error) {
	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)

	authRepo := authpg.NewRepository(db)
	authService := auth.NewService(authRepo, tokenGen, cfg.Security.BCryptCost)

	permissionRepo := permissionpg.NewPermissionRepository(gormDB)
	permissionService := permission.NewService(permissionRepo, appLogger)

	userRepo := userpg.NewUserRepository(gormDB)
	userService := user.NewService(userRepo, authService, permissionService, appLogger)

	grantRepo := grantpg.NewGrantRepository(gormDB)
	grantService := grant.NewService(grantRepo, appLogger)

	expenseRepo := expensepg.NewExpenseRepository(gormDB)
	expenseService := expense.NewService(expenseRepo, grantService, appLogger)

	attachmentRepo := attachmentpg.NewAttachmentRepository(gormDB)
	attachmentService := attachment.NewService(attachmentRepo, grantService, appLogger)

	return rest.Handlers{
		Auth:       auth.NewHandler(authService),
		User:       user.NewHandler(userService),
		Grant:      grant.NewHandler(grantService),
		Expense:    expense.NewHandler(expenseService),
		Attachment: attachment.NewHandler(attachmentService),
		Permission: permission.NewHandler(permissionService),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
