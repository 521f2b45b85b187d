package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/deckofcards/internal/config"
	"github.com/renato0307/deckofcards/internal/domain"
	"github.com/renato0307/deckofcards/internal/logging"
	"github.com/renato0307/deckofcards/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	Haptics     bool             `help:"Pulse the terminal bell on card changes" default:"true" negatable:""`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the deck TUI (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the deck TUI over SSH"`
	Workouts WorkoutsCmd `cmd:"workouts" help:"Show the reps and exercise for every card"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys)"`
	Pulse    PulseCmd    `cmd:"pulse" help:"Play a haptic pattern" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("DECKOFCARDS_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("DECKOFCARDS_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// --no-haptics always wins
	if c.Haptics {
		if v, hasEnv := os.LookupEnv("DECKOFCARDS_HAPTICS"); hasEnv {
			c.Haptics = v != "0" && v != "false"
		} else if c.settings != nil {
			c.Haptics = c.settings.HapticsOn()
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Create container AFTER logging is initialized
	c.Container = NewContainer(c.Haptics)
	return nil
}

// deckConfig is everything a deck session needs from configuration
type deckConfig struct {
	catalog  []string
	keys     config.KeyBindingsConfig
	workouts domain.WorkoutMap
}

// loadDeckConfig resolves workouts, key bindings and the exercise catalog.
// A broken catalog falls back to the defaults; broken settings are errors.
func (c *CLI) loadDeckConfig() (*deckConfig, error) {
	workouts, err := c.settings.Workouts()
	if err != nil {
		return nil, err
	}

	var keysConfig config.KeyBindingsConfig
	if c.settings != nil && c.settings.Keys != nil {
		if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = c.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	catalog, err := config.LoadExercises(config.GetExercisesPath())
	if err != nil {
		logging.Logger.Warn("Failed to load exercise catalog, using defaults", "error", err)
		catalog = append([]string(nil), config.DefaultExercises...)
	}

	return &deckConfig{
		catalog:  catalog,
		keys:     keysConfig,
		workouts: workouts,
	}, nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in the header)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting deck TUI")

	cfg, err := cli.loadDeckConfig()
	if err != nil {
		return err
	}

	session := domain.NewSession(cfg.workouts, nil)
	model := ui.NewModel(
		cli.Container.Clock,
		session,
		cli.Container.FeedbackService,
		cli.Container.InstallService,
		cfg.catalog,
		cfg.keys,
		time.Duration(r.ErrorClearDelay)*time.Second,
		r.Dev,
	)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, release and drag events
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
