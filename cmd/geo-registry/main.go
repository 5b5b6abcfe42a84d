package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"geo-registry/internal/config"
	"geo-registry/internal/controllers"
	"geo-registry/internal/logger"
	"geo-registry/internal/models"
	"geo-registry/internal/shutdown"
	"geo-registry/internal/validation"
	"geo-registry/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/google/uuid"
)

const (
	AppName    = "Geo Registry"
	AppID      = "com.georegistry.desktop"
	AppVersion = "1.0.0"

	shutdownTimeout = 5 * time.Second
)

// Application owns the window, the record store and the MVC wiring
type Application struct {
	// Core components
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	// MVC Components
	controller *controllers.MainController
	view       *views.MainView

	// Models
	store *models.RecordStore

	// Lifecycle management
	shutdown *shutdown.Manager
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(os.Getenv(config.ConfigFileEnv))
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.shutdown.Listen(ctx)

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

// NewApplication creates and wires the application components
func NewApplication(cfg *config.Config) (*Application, error) {
	appLogger, err := logger.New(cfg.Log.Format, cfg.Log.Level, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	sessionLogger := appLogger.With("session", uuid.NewString())

	fyneApp := app.NewWithID(AppID)
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	sessionLogger.Info("Application", "application starting", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
		"go_version":  runtime.Version(),
		"log_level":   cfg.Log.Level,
	})

	store := models.NewRecordStore()
	controller := controllers.NewMainController(
		store,
		validation.NewValidator(),
		sessionLogger,
		controllers.PlotSize{Width: cfg.Plot.Width, Height: cfg.Plot.Height},
	)

	view := views.NewMainView(window, store)
	view.SetupMenus(AppName, AppVersion)
	controller.SetMainView(view)

	if cfg.SeedExamples {
		if err := controller.Seed(); err != nil {
			return nil, fmt.Errorf("seed records: %w", err)
		}
	}

	shutdownManager := shutdown.NewManager(sessionLogger, shutdownTimeout)
	shutdownManager.Register("record store", store)
	shutdownManager.Register("controller", controller)
	shutdownManager.Register("fyne app", shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     sessionLogger,
		config:     cfg,
		controller: controller,
		view:       view,
		store:      store,
		shutdown:   shutdownManager,
	}

	application.setupWindowEvents()

	return application, nil
}

// Run shows the window and blocks in the Fyne event loop
func (app *Application) Run() error {
	app.logger.Info("Application", "starting application UI", nil)

	app.view.Show()
	app.fyneApp.Run()

	app.shutdown.Shutdown()
	return nil
}

// setupWindowEvents asks for confirmation before closing the window
func (app *Application) setupWindowEvents() {
	app.window.SetCloseIntercept(func() {
		app.logger.Info("Application", "window close requested", nil)

		app.view.ShowConfirm(
			"Exit Application",
			"Are you sure you want to exit? Records are not saved.",
			func(confirmed bool) {
				if confirmed {
					app.window.Close()
				}
			},
		)
	})

	app.window.SetOnClosed(func() {
		app.logger.Info("Application", "window closed", map[string]interface{}{
			"records": app.store.Len(),
		})
	})
}
