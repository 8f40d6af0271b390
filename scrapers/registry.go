package scrapers

import (
	"github.com/rs/zerolog/log"

	"github.com/nextwipe/wipetime/backend/sources"
)

// Registry holds the scraper chain for every tracked game.
type Registry struct {
	byID  map[string]*GameScraper
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*GameScraper)}
}

// Register adds a scraper under its spec's game ID.
func (r *Registry) Register(g *GameScraper) {
	if _, exists := r.byID[g.Spec.ID]; !exists {
		r.order = append(r.order, g.Spec.ID)
	}
	r.byID[g.Spec.ID] = g
}

// BuildRegistry wires each game's strategy chain, sharing one browser handle
// across the headless-backed scrapers.
func BuildRegistry(b *sources.Browser) *Registry {
	r := NewRegistry()

	for _, spec := range Specs {
		var g *GameScraper
		switch spec.ID {
		case "rust":
			g = newRustScraper(spec, b)
		case "tarkov":
			g = newTarkovScraper(spec)
		case "poe":
			g = newPoeScraper(spec, b)
		case "poe2":
			g = newPoe2Scraper(spec, b)
		case "fortnite":
			g = newFortniteScraper(spec, b)
		case "diablo4":
			g = newDiablo4Scraper(spec)
		case "lastepoch":
			g = newLastEpochScraper(spec)
		case "valorant":
			g = newValorantScraper(spec)
		case "lol":
			g = newLolScraper(spec)
		case "tft":
			g = newTftScraper(spec)
		case "apex":
			g = newApexScraper(spec)
		case "cod":
			g = newCodScraper(spec)
		case "rocketleague":
			g = newRocketLeagueScraper(spec)
		case "dbd":
			g = newDbdScraper(spec)
		case "pubg":
			g = newPubgScraper(spec)
		case "overwatch2":
			g = newOverwatch2Scraper(spec, b)
		case "destiny2":
			g = newDestiny2Scraper(spec, b)
		case "r6siege":
			g = newR6SiegeScraper(spec, b)
		case "warframe":
			g = newWarframeScraper(spec, b)
		default:
			log.Warn().Str("game", spec.ID).Msg("Spec has no scraper constructor, skipping")
			continue
		}
		r.Register(g)
	}

	log.Info().Int("games", len(r.order)).Msg("Scraper registry built")
	return r
}

// Get returns the scraper for a game ID.
func (r *Registry) Get(id string) (*GameScraper, bool) {
	g, ok := r.byID[id]
	return g, ok
}

// IDs returns the game IDs in registration order.
func (r *Registry) IDs() []string {
	return r.order
}
