package cmd

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	exportcmd "github.com/cinedex/cinedex/cmd/export"
	"github.com/cinedex/cinedex/cmd/posters"
	"github.com/cinedex/cinedex/cmd/search"
	selectioncmd "github.com/cinedex/cinedex/cmd/selection"
	"github.com/cinedex/cinedex/internal/config"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
)

var (
	runSearch       = search.Run
	runExport       = exportcmd.Run
	runPosters      = posters.Run
	listSelection   = selectioncmd.List
	addSelection    = selectioncmd.Add
	removeSelection = selectioncmd.Remove
	clearSelection  = selectioncmd.Clear
)

// CLI represents the complete command structure for the cinedex application
type CLI struct {
	// Global flags
	SelectionDB string `help:"Path to the selection SQLite database file" default:"./selection.db"`

	Search    SearchCmd    `cmd:"" help:"Search a movie provider and display matching records"`
	Selection SelectionCmd `cmd:"" help:"Manage the curated movie selection"`
	Export    ExportCmd    `cmd:"" help:"Export the selection to CSV, XLSX or printable HTML"`
	Posters   PostersCmd   `cmd:"" help:"Download posters for the selection"`
}

// SearchCmd represents the search command
type SearchCmd struct {
	Query      string  `arg:"" help:"Title to search for"`
	Provider   string  `short:"p" help:"Provider to query (tmdb or omdb)" default:"tmdb"`
	Year       int     `short:"y" help:"Keep only results whose release year matches"`
	MinRating  float64 `short:"r" help:"Keep only results rated at or above this value"`
	JSONOutput string  `help:"Write the results to a JSON file"`
	YAMLOutput string  `help:"Write the results to a YAML file"`
	Pick       bool    `help:"Pick a result interactively and add it to the selection"`
}

// SelectionCmd represents the selection command and its subcommands
type SelectionCmd struct {
	List   SelectionListCmd   `cmd:"" help:"List the current selection"`
	Add    SelectionAddCmd    `cmd:"" help:"Look up a movie by provider ID and add it"`
	Remove SelectionRemoveCmd `cmd:"" help:"Remove a movie from the selection"`
	Clear  SelectionClearCmd  `cmd:"" help:"Remove every movie from the selection"`
}

// SelectionListCmd lists the stored selection
type SelectionListCmd struct{}

// SelectionAddCmd adds a movie by provider ID
type SelectionAddCmd struct {
	Provider string `short:"p" help:"Provider the ID belongs to (tmdb or omdb)" default:"tmdb"`
	ID       string `arg:"" help:"Provider-specific movie ID"`
}

// SelectionRemoveCmd removes a movie by provider ID
type SelectionRemoveCmd struct {
	Provider string `short:"p" help:"Provider the ID belongs to (tmdb or omdb)" default:"tmdb"`
	ID       string `arg:"" help:"Provider-specific movie ID"`
}

// SelectionClearCmd empties the selection
type SelectionClearCmd struct{}

// ExportCmd represents the export command
type ExportCmd struct {
	Format      string `short:"f" help:"Export format: csv, xlsx or html" default:"csv"`
	WithPosters bool   `help:"Embed poster thumbnails in the XLSX export"`
	Output      string `short:"o" help:"Output file path (defaults to a timestamped file under the export directory)"`
}

// PostersCmd represents the posters command
type PostersCmd struct {
	Dir string `short:"d" help:"Directory to write poster files into" default:"./posters"`
	Zip string `help:"Write posters into a single ZIP archive at this path instead"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("cinedex"),
		kong.Description("A tool to search movie databases and curate an exportable selection."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run(&cli)
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("tmdb.language", "fr-FR")
	viper.SetDefault("selection.dbfile", "./selection.db")
	viper.SetDefault("export.dir", "./exports/")

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("tmdb.api_key", "TMDB_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}
	if err := viper.BindEnv("omdb.api_key", "OMDB_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	viper.Set("selection.dbfile", cli.SelectionDB)
	config.InitConfig()
}

// Run methods for each command

func (s *SearchCmd) Run(cli *CLI) error {
	return runSearch(search.Options{
		Query:       s.Query,
		Provider:    s.Provider,
		Year:        s.Year,
		MinRating:   s.MinRating,
		JSONOutput:  s.JSONOutput,
		YAMLOutput:  s.YAMLOutput,
		Pick:        s.Pick,
		SelectionDB: cli.SelectionDB,
	})
}

func (l *SelectionListCmd) Run(cli *CLI) error {
	return listSelection(cli.SelectionDB)
}

func (a *SelectionAddCmd) Run(cli *CLI) error {
	return addSelection(cli.SelectionDB, a.Provider, a.ID)
}

func (r *SelectionRemoveCmd) Run(cli *CLI) error {
	return removeSelection(cli.SelectionDB, r.Provider, r.ID)
}

func (c *SelectionClearCmd) Run(cli *CLI) error {
	return clearSelection(cli.SelectionDB)
}

func (e *ExportCmd) Run(cli *CLI) error {
	return runExport(exportcmd.Options{
		Format:      e.Format,
		WithPosters: e.WithPosters,
		Output:      e.Output,
		SelectionDB: cli.SelectionDB,
	})
}

func (p *PostersCmd) Run(cli *CLI) error {
	return runPosters(posters.Options{
		Dir:         p.Dir,
		Zip:         p.Zip,
		SelectionDB: cli.SelectionDB,
	})
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
