package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/reservo"
	resgin "github.com/fwojciec/reservo/gin"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Importer    *reservo.Importer
	Restaurants reservo.RestaurantService

	// Placeholders are the stand-in values the importer uses for fields it
	// cannot derive. Nil disables placeholder warnings.
	Placeholders *reservo.ExtractionResult

	// ListingRules decide which links on an index page are listings.
	ListingRules []reservo.SiteRule

	Remote *Remote
	Server *resgin.Server
}

// Remote holds the reservation API services used by push and reservations.
type Remote struct {
	Auth         reservo.AuthService
	Restaurants  reservo.RestaurantService
	Reservations reservo.ReservationService
	Email        string
	Password     string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Import ImportCmd `cmd:"" help:"Extract restaurant details from listing URLs"`
	List   ListCmd   `cmd:"" help:"List catalog restaurants"`
	Show   ShowCmd   `cmd:"" help:"Show a catalog restaurant"`
	Delete DeleteCmd `cmd:"" help:"Delete a catalog restaurant"`
	Export ExportCmd `cmd:"" help:"Write the catalog as JSON files"`
	Push   PushCmd   `cmd:"" help:"Send a catalog restaurant to the reservation API"`
	Serve  ServeCmd  `cmd:"" help:"Serve the catalog over HTTP"`

	Reservations ReservationsCmd `cmd:"" help:"List and update reservations on the reservation API"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	URLs        []string `arg:"" name:"url" help:"Listing URLs"`
	Fetch       bool     `short:"f" help:"Fetch listing pages and fill details from their metadata"`
	Discover    bool     `short:"d" help:"Treat URLs as index pages and import the listings they link to"`
	Browser     bool     `short:"b" help:"Render pages in headless Chrome instead of plain HTTP"`
	Save        bool     `short:"s" help:"Save results to the catalog"`
	JSON        bool     `name:"json" help:"Print results as JSON lines"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	City    string `help:"Filter by city"`
	Cuisine string `help:"Filter by cuisine"`
	Limit   int    `short:"n" help:"Maximum number of restaurants"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Restaurant ID"`
	JSON bool   `name:"json" help:"Print as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Restaurant ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir  string `arg:"" type:"path" help:"Output directory"`
	City string `help:"Only export restaurants in this city"`
}

// PushCmd is the "push" subcommand.
type PushCmd struct {
	ID string `arg:"" help:"Restaurant ID"`
}

// ReservationsCmd groups the "reservations" subcommands.
type ReservationsCmd struct {
	List   ReservationsListCmd  `cmd:"" help:"List reservations"`
	Status ReservationStatusCmd `cmd:"" help:"Change the status of a reservation"`
}

// ReservationsListCmd is the "reservations list" subcommand.
type ReservationsListCmd struct {
	Restaurant string `help:"Filter by remote restaurant ID"`
	Status     string `help:"Filter by status (pending, confirmed, cancelled, seated, completed)"`
}

// ReservationStatusCmd is the "reservations status" subcommand.
type ReservationStatusCmd struct {
	ID     string `arg:"" help:"Reservation ID"`
	Status string `arg:"" help:"New status (pending, confirmed, cancelled, seated, completed)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `env:"RESERVO_ADDR" default:":8080" help:"Listen address"`
}
