package cli

import (
	"errors"

	internalApp "github.com/felixgeelhaar/paretofocus/internal/app"
	insightsApp "github.com/felixgeelhaar/paretofocus/internal/insights/application"
	learningApp "github.com/felixgeelhaar/paretofocus/internal/learning/application"
	planningApp "github.com/felixgeelhaar/paretofocus/internal/planning/application"
	planning "github.com/felixgeelhaar/paretofocus/internal/planning/domain"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/application/commands"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/application/queries"
)

// ErrNotInitialized is returned by commands run without a wired App.
var ErrNotInitialized = errors.New("application not initialized - database connection required")

// App holds the CLI application dependencies.
type App struct {
	// Task Command Handlers
	AddTaskHandler     *commands.AddTaskHandler
	UpdateTaskHandler  *commands.UpdateTaskHandler
	DeleteTaskHandler  *commands.DeleteTaskHandler
	ImportTasksHandler *commands.ImportTasksHandler

	// Task Query Handlers
	ListTasksHandler *queries.ListTasksHandler
	GetTaskHandler   *queries.GetTaskHandler

	// Services
	PlanningService *planningApp.Service
	InsightsService *insightsApp.Service
	Recorder        *learningApp.Recorder

	Scoring planning.ScoringConfig
}

// NewApp creates the CLI app from a wired container.
func NewApp(c *internalApp.Container) *App {
	return &App{
		AddTaskHandler:     c.AddTaskHandler,
		UpdateTaskHandler:  c.UpdateTaskHandler,
		DeleteTaskHandler:  c.DeleteTaskHandler,
		ImportTasksHandler: c.ImportTasksHandler,
		ListTasksHandler:   c.ListTasksHandler,
		GetTaskHandler:     c.GetTaskHandler,
		PlanningService:    c.Planning,
		InsightsService:    c.Insights,
		Recorder:           c.Recorder,
		Scoring:            c.ScoringConfig(),
	}
}

var app *App

// SetApp sets the global CLI app.
func SetApp(a *App) {
	app = a
}

// RequireApp returns the global CLI app or ErrNotInitialized.
func RequireApp() (*App, error) {
	if app == nil {
		return nil, ErrNotInitialized
	}
	return app, nil
}
