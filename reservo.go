// Package reservo provides the Go side of a restaurant reservation product.
// It turns restaurant listing URLs from directory sites (Zomato, Yelp,
// Google Maps, TripAdvisor, OpenTable, UberEats, DoorDash) into structured
// restaurant records, keeps a local catalog of imported restaurants, and
// talks to the remote reservation API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gin/).
package reservo
