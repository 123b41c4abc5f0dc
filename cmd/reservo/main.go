package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/reservo"
	"github.com/fwojciec/reservo/crawl"
	"github.com/fwojciec/reservo/directory"
	resgin "github.com/fwojciec/reservo/gin"
	"github.com/fwojciec/reservo/goquery"
	resthttp "github.com/fwojciec/reservo/http"
	"github.com/fwojciec/reservo/rod"
	resslog "github.com/fwojciec/reservo/slog"
	"github.com/fwojciec/reservo/sqlite"
	"github.com/fwojciec/reservo/trafilatura"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Reservation API settings used by push.
	APIURL      string
	APIEmail    string
	APIPassword string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RestaurantService reservo.RestaurantService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		APIURL:      os.Getenv("RESERVO_API_URL"),
		APIEmail:    os.Getenv("RESERVO_EMAIL"),
		APIPassword: os.Getenv("RESERVO_PASSWORD"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("reservo"),
		kong.Description("Turn restaurant directory URLs into catalog entries."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'reservo --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cmd == "serve" {
		level = slog.LevelInfo
	}
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RESERVO_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RestaurantService = resslog.NewLoggingRestaurantService(sqlite.NewRestaurantService(m.DB), logger)
	deps.Restaurants = m.RestaurantService

	placeholders := directory.DefaultPlaceholders()
	deps.Placeholders = &placeholders
	extractor := directory.NewExtractor(directory.WithPlaceholders(placeholders))
	deps.ListingRules = directory.DefaultRules()
	// Structured metadata first, then main-content heuristics.
	enricher := reservo.Enrichers{
		goquery.NewEnricher(placeholders),
		trafilatura.NewEnricher(placeholders),
	}
	deps.Importer = &reservo.Importer{
		Extractor: resslog.NewLoggingExtractor(extractor, logger),
		Enricher:  resslog.NewLoggingEnricher(enricher, logger),
	}

	// Page fetching is only wired when a command can use it.
	if (cmd == "import" && (cli.Import.Fetch || cli.Import.Discover)) || cmd == "serve" {
		var pages reservo.Fetcher = resthttp.NewFetcher()
		if cmd == "import" && cli.Import.Browser {
			browser, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			pages = browser
		}

		// One request per second per directory host.
		fetcher := resslog.NewLoggingFetcher(crawl.NewFetcher(pages, 1, logger), logger)
		defer fetcher.Close()
		deps.Importer.Fetcher = fetcher
	}

	if cmd == "push" || cmd == "reservations" {
		if m.APIURL == "" {
			fmt.Fprintln(stderr, "Hint: Set RESERVO_API_URL, RESERVO_EMAIL and RESERVO_PASSWORD")
			return reservo.Errorf(reservo.EINVALID, "RESERVO_API_URL not set")
		}
		client, err := resthttp.NewClient(m.APIURL, resthttp.WithRateLimit(5, 1))
		if err != nil {
			return err
		}
		deps.Remote = &Remote{
			Auth:         resthttp.NewAuthService(client),
			Restaurants:  resthttp.NewRestaurantService(client),
			Reservations: resthttp.NewReservationService(client),
			Email:        m.APIEmail,
			Password:     m.APIPassword,
		}
	}

	if cmd == "serve" {
		gin.SetMode(gin.ReleaseMode)
		deps.Server = resgin.NewServer(logger)
		deps.Server.Importer = deps.Importer
		deps.Server.RestaurantService = deps.Restaurants
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("RESERVO_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "reservo.db"
	}
	dir := filepath.Join(home, ".reservo")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "reservo.db")
}
