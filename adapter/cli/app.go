package cli

import (
	internalApp "github.com/felixgeelhaar/slotwise/internal/app"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/commands"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/queries"
	"github.com/felixgeelhaar/slotwise/pkg/observability"
	"github.com/google/uuid"
)

// App holds the CLI application dependencies.
type App struct {
	// Command Handlers
	SmartScheduleTaskHandler *commands.SmartScheduleTaskHandler
	SaveScheduleHandler      *commands.SaveScheduleHandler
	EditSlotHandler          *commands.EditSlotHandler
	ResetScheduleHandler     *commands.ResetScheduleHandler
	ImportScheduleHandler    *commands.ImportScheduleHandler

	// Query Handlers
	GetScheduleHandler    *queries.GetScheduleHandler
	GetActiveSlotHandler  *queries.GetActiveSlotHandler
	GetNextSlotHandler    *queries.GetNextSlotHandler
	ListCategoriesHandler *queries.ListCategoriesHandler

	Health *observability.HealthRegistry

	// CurrentUserID is the user all commands act for.
	CurrentUserID uuid.UUID
	// LLMFallback is used when the user has no stored schedule.
	LLMFallback bool
}

// NewApp creates the CLI application from a wired container.
func NewApp(c *internalApp.Container) *App {
	return &App{
		SmartScheduleTaskHandler: c.SmartScheduleTaskHandler,
		SaveScheduleHandler:      c.SaveScheduleHandler,
		EditSlotHandler:          c.EditSlotHandler,
		ResetScheduleHandler:     c.ResetScheduleHandler,
		ImportScheduleHandler:    c.ImportScheduleHandler,
		GetScheduleHandler:       c.GetScheduleHandler,
		GetActiveSlotHandler:     c.GetActiveSlotHandler,
		GetNextSlotHandler:       c.GetNextSlotHandler,
		ListCategoriesHandler:    c.ListCategoriesHandler,
		Health:                   c.Health,
		CurrentUserID:            c.UserID,
		LLMFallback:              c.Config.LLMFallback,
	}
}

var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
