// Package lookup contains the static tables mapping human names to
// coordinates and to cryptocurrency provider slugs.
package lookup

import (
	"strings"

	"github.com/apitour/apitour-cli/internal/model"
)

// City is an entry of the city table.
type City struct {
	Name       string
	Coordinate model.Coordinate
}

// Coin is an entry of the coin table.
type Coin struct {
	Name string
	Slug string
}

// Tables contains the immutable lookup tables. Build with [Default] or [New].
type Tables struct {
	cities   []City
	coins    []Coin
	citymap  map[string]model.Coordinate
	coinsmap map[string]string
}

// New constructs [*Tables] from the given entries. Names are normalized
// and later duplicates override earlier ones in the maps.
func New(cities []City, coins []Coin) *Tables {
	t := &Tables{
		citymap:  make(map[string]model.Coordinate, len(cities)),
		coinsmap: make(map[string]string, len(coins)),
	}
	for _, c := range cities {
		c.Name = Normalize(c.Name)
		t.cities = append(t.cities, c)
		t.citymap[c.Name] = c.Coordinate
	}
	for _, c := range coins {
		c.Name = Normalize(c.Name)
		t.coins = append(t.coins, c)
		t.coinsmap[c.Name] = c.Slug
	}
	return t
}

// Default returns the built-in tables.
func Default() *Tables {
	return New(defaultCities, defaultCoins)
}

// Normalize lowercases and trims a user supplied name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Coordinate returns the coordinate of the given city.
func (t *Tables) Coordinate(name string) (model.Coordinate, bool) {
	c, found := t.citymap[Normalize(name)]
	return c, found
}

// CoinID returns the provider slug for the given coin. Unknown names
// are returned normalized so that users may pass a slug directly.
func (t *Tables) CoinID(name string) string {
	name = Normalize(name)
	if slug, found := t.coinsmap[name]; found {
		return slug
	}
	return name
}

// CityNames returns the city names in table order.
func (t *Tables) CityNames() []string {
	out := make([]string, 0, len(t.cities))
	for _, c := range t.cities {
		out = append(out, c.Name)
	}
	return out
}

// Coins returns a copy of the coin table in table order.
func (t *Tables) Coins() []Coin {
	return append([]Coin{}, t.coins...)
}

// CoinNames returns the coin names in table order.
func (t *Tables) CoinNames() []string {
	out := make([]string, 0, len(t.coins))
	for _, c := range t.coins {
		out = append(out, c.Name)
	}
	return out
}

var defaultCities = []City{
	{"delhi", model.Coordinate{Latitude: 28.6139, Longitude: 77.2090}},
	{"mumbai", model.Coordinate{Latitude: 19.0760, Longitude: 72.8777}},
	{"bangalore", model.Coordinate{Latitude: 12.9716, Longitude: 77.5946}},
	{"chennai", model.Coordinate{Latitude: 13.0827, Longitude: 80.2707}},
	{"kolkata", model.Coordinate{Latitude: 22.5726, Longitude: 88.3639}},
	{"hyderabad", model.Coordinate{Latitude: 17.3850, Longitude: 78.4867}},
	{"pune", model.Coordinate{Latitude: 18.5204, Longitude: 73.8567}},
	{"ahmedabad", model.Coordinate{Latitude: 23.0225, Longitude: 72.5714}},
	{"jaipur", model.Coordinate{Latitude: 26.9124, Longitude: 75.7873}},
	{"nashik", model.Coordinate{Latitude: 19.9974, Longitude: 73.7898}},
	{"new york", model.Coordinate{Latitude: 40.7128, Longitude: -74.0060}},
	{"london", model.Coordinate{Latitude: 51.5074, Longitude: -0.1278}},
	{"tokyo", model.Coordinate{Latitude: 35.6762, Longitude: 139.6503}},
	{"sydney", model.Coordinate{Latitude: -33.8688, Longitude: 151.2093}},
	{"seoul", model.Coordinate{Latitude: 37.5665, Longitude: 126.9780}},
	{"singapore", model.Coordinate{Latitude: 1.3521, Longitude: 103.8198}},
	{"dubai", model.Coordinate{Latitude: 25.2048, Longitude: 55.2708}},
}

var defaultCoins = []Coin{
	{"bitcoin", "btc-bitcoin"},
	{"ethereum", "eth-ethereum"},
	{"dogecoin", "doge-dogecoin"},
	{"cardano", "ada-cardano"},
	{"solana", "sol-solana"},
	{"ripple", "xrp-xrp"},
}
