package directory

import "strings"

// City is a known city with the state or region it belongs to.
type City struct {
	Name  string
	State string
}

// maxCityTokens is the longest city slug in the table, in words.
const maxCityTokens = 3

// cities maps lowercase space-separated city slugs to their display form.
var cities = map[string]City{
	"new york":       {Name: "New York", State: "NY"},
	"new york city":  {Name: "New York", State: "NY"},
	"nyc":            {Name: "New York", State: "NY"},
	"brooklyn":       {Name: "Brooklyn", State: "NY"},
	"san francisco":  {Name: "San Francisco", State: "CA"},
	"los angeles":    {Name: "Los Angeles", State: "CA"},
	"san diego":      {Name: "San Diego", State: "CA"},
	"chicago":        {Name: "Chicago", State: "IL"},
	"boston":         {Name: "Boston", State: "MA"},
	"seattle":        {Name: "Seattle", State: "WA"},
	"austin":         {Name: "Austin", State: "TX"},
	"houston":        {Name: "Houston", State: "TX"},
	"dallas":         {Name: "Dallas", State: "TX"},
	"miami":          {Name: "Miami", State: "FL"},
	"las vegas":      {Name: "Las Vegas", State: "NV"},
	"washington dc":  {Name: "Washington", State: "DC"},
	"london":         {Name: "London", State: "England"},
	"paris":          {Name: "Paris", State: "Ile-de-France"},
	"toronto":        {Name: "Toronto", State: "Ontario"},
	"sydney":         {Name: "Sydney", State: "NSW"},
	"dubai":          {Name: "Dubai", State: "Dubai"},
	"abu dhabi":      {Name: "Abu Dhabi", State: "Abu Dhabi"},
	"sharjah":        {Name: "Sharjah", State: "Sharjah"},
	"mumbai":         {Name: "Mumbai", State: "Maharashtra"},
	"new delhi":      {Name: "New Delhi", State: "Delhi"},
	"delhi":          {Name: "Delhi", State: "Delhi"},
	"ncr":            {Name: "Delhi", State: "Delhi"},
	"bangalore":      {Name: "Bangalore", State: "Karnataka"},
	"bengaluru":      {Name: "Bengaluru", State: "Karnataka"},
	"hyderabad":      {Name: "Hyderabad", State: "Telangana"},
	"kolkata":        {Name: "Kolkata", State: "West Bengal"},
	"singapore":      {Name: "Singapore", State: "Singapore"},
	"kuala lumpur":   {Name: "Kuala Lumpur", State: "Federal Territory"},
	"rio de janeiro": {Name: "Rio de Janeiro", State: "RJ"},
}

// LookupCity finds a known city by name, ignoring case and treating
// hyphens and underscores as spaces.
func LookupCity(name string) (City, bool) {
	c, ok := cities[strings.Join(tokenize(name), " ")]
	return c, ok
}
