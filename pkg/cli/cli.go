package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cloud-gov/cg-dashboard/pkg/actions"
	"github.com/cloud-gov/cg-dashboard/pkg/cfapi"
	"github.com/cloud-gov/cg-dashboard/pkg/config"
	"github.com/cloud-gov/cg-dashboard/pkg/dispatcher"
	"github.com/cloud-gov/cg-dashboard/pkg/lifecycle"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"github.com/cloud-gov/cg-dashboard/pkg/stores"
	"github.com/cloud-gov/cg-dashboard/pkg/version"
	"github.com/cloud-gov/cg-dashboard/pkg/view"
)

// Dracula theme colors.
const (
	draculaCyan = "#8BE9FD"
	draculaRed  = "#FF5555"
)

const defaultConfigPath = "/etc/cg-dashboard/dashboard.json"

func newLogStyles() logStyles {
	return logStyles{
		info:  lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan)),
		error: lipgloss.NewStyle().Foreground(lipgloss.Color(draculaRed)).Bold(true),
	}
}

// SubcommandHandler defines the interface for parsing subcommand flags.
type SubcommandHandler interface {
	Parse(args []string, cfg *CmdConfig) error
}

// RoutesHandler handles flags for the routes subcommand.
type RoutesHandler struct{}

// Parse processes the command-line arguments for the routes subcommand.
func (RoutesHandler) Parse(args []string, cfg *CmdConfig) error {
	fs := flag.NewFlagSet("routes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configFile := fs.String("config", defaultConfigPath, "path to dashboard.json config file")
	appGUID := fs.String("app", "", "guid of the app whose routes to list")
	plain := fs.Bool("plain", false, "print the list once instead of starting the interactive view")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing routes flags: %w", err)
	}

	cfg.ConfigFile = *configFile
	cfg.AppGUID = *appGUID
	cfg.Plain = *plain
	cfg.Args = fs.Args()

	if cfg.ConfigFile == "" {
		return errMissingConfig
	}

	if cfg.AppGUID == "" {
		return errMissingAppGUID
	}

	return nil
}

// ParseFlags parses a command line without the program name.
func ParseFlags(args []string) (*CmdConfig, error) {
	cfg := &CmdConfig{}

	if len(args) == 0 {
		cfg.Help = true
		return cfg, nil
	}

	switch args[0] {
	case "help", "-help", "--help", "-h":
		cfg.Help = true
		return cfg, nil
	}

	cfg.SubCmd = args[0]

	if cfg.SubCmd == "version" {
		return cfg, nil
	}

	subcommands := map[string]SubcommandHandler{
		"routes": RoutesHandler{},
	}

	handler, ok := subcommands[cfg.SubCmd]
	if !ok {
		return cfg, fmt.Errorf("%w: %s", errUnknownCommand, cfg.SubCmd)
	}

	if err := handler.Parse(args[1:], cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// loadFileConfig reads the api and logging sections of the dashboard config.
func loadFileConfig(ctx context.Context, path string) (*FileConfig, error) {
	var fc FileConfig

	if err := config.NewConfig(nil).LoadAndValidate(ctx, path, &fc); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if fc.Logging == nil {
		fc.Logging = &logger.Config{Level: "warn", Output: "stderr"}
	}

	return &fc, nil
}

// RunRoutes lists the routes of cfg.AppGUID. In plain mode the list is printed to out
// once every request has settled; otherwise an interactive view follows the store.
func RunRoutes(ctx context.Context, cfg *CmdConfig, out io.Writer, opts ...cfapi.Option) error {
	fc, err := loadFileConfig(ctx, cfg.ConfigFile)
	if err != nil {
		return err
	}

	if err = lifecycle.InitializeLogger(fc.Logging); err != nil {
		return err
	}

	log, err := lifecycle.CreateComponentLogger("cli", fc.Logging)
	if err != nil {
		return err
	}

	d := dispatcher.New(lifecycle.ChildLogger(log, "dispatcher"))

	client, err := cfapi.NewClient(fc.API, d, append([]cfapi.Option{cfapi.WithLogger(lifecycle.ChildLogger(log, "cfapi"))}, opts...)...)
	if err != nil {
		return err
	}
	defer client.Close()

	st := stores.New(d, client, lifecycle.ChildLogger(log, "stores"))
	acts := actions.New(d)

	if cfg.Plain {
		acts.FetchRoutesForApp(cfg.AppGUID)
		client.Wait()

		_, err = io.WriteString(out, view.NewRouteList(st.Routes, cfg.AppGUID).Render())

		return err
	}

	model := view.NewRouteListModel(view.NewRouteList(st.Routes, cfg.AppGUID))
	acts.FetchRoutesForApp(cfg.AppGUID)

	final, err := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(out),
	).Run()
	if err != nil {
		return fmt.Errorf("running route list: %w", err)
	}

	if _, ok := final.(*view.RouteListModel); !ok {
		return errUnexpectedModel
	}

	return nil
}

// Run executes the parsed command.
func Run(ctx context.Context, cfg *CmdConfig) error {
	if cfg.Help {
		ShowHelp()
		return nil
	}

	styles := newLogStyles()

	switch cfg.SubCmd {
	case "version":
		fmt.Println("cg-dashboard " + version.GetFullVersion())

		return nil
	case "routes":
		if !cfg.Plain {
			fmt.Fprintln(os.Stderr, styles.info.Render("Loading routes for "+cfg.AppGUID))
		}

		if err := RunRoutes(ctx, cfg, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, styles.error.Render("Error: "+err.Error()))
			return err
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cfg.SubCmd)
	}
}
