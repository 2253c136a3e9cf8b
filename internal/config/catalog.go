package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"fixtures-service/internal/domain"
)

// Catalog is the immutable startup catalog: API credential, display zone,
// cache TTL, and the followed sports and teams. Season has no implicit
// default; a sport entry without one fails validation so stale schedules
// cannot creep in silently.
type Catalog struct {
	APIKey  string
	Zone    *time.Location
	TTL     time.Duration
	Sports  map[string]domain.SportRef
	Teams   map[string]domain.TeamRef
	ZoneTag string
}

type catalogFile struct {
	APIKey   string                `yaml:"api_key"`
	Zone     string                `yaml:"zone"`
	CacheTTL string                `yaml:"cache_ttl"`
	Sports   map[string]sportEntry `yaml:"sports"`
	Teams    map[string]teamEntry  `yaml:"teams"`
}

type sportEntry struct {
	Name       string `yaml:"name"`
	LeagueID   string `yaml:"league_id"`
	Season     string `yaml:"season"`
	Motorsport bool   `yaml:"motorsport"`
}

type teamEntry struct {
	Name       string `yaml:"name"`
	SportsDBID string `yaml:"sportsdb_id"`
	Slug       string `yaml:"slug"`
	League     string `yaml:"league"`
	Sport      string `yaml:"sport"`
}

// LoadCatalog reads and validates the YAML catalog file.
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("config: read catalog: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog builds a validated Catalog from YAML bytes.
func ParseCatalog(raw []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Catalog{}, fmt.Errorf("config: parse catalog: %w", err)
	}

	if file.APIKey == "" {
		return Catalog{}, fmt.Errorf("config: api_key is required")
	}

	zoneTag := file.Zone
	if zoneTag == "" {
		zoneTag = defaultZone
	}
	zone, err := time.LoadLocation(zoneTag)
	if err != nil {
		return Catalog{}, fmt.Errorf("config: zone %q: %w", zoneTag, err)
	}

	ttl := defaultCacheTTL
	if file.CacheTTL != "" {
		parsed, err := time.ParseDuration(file.CacheTTL)
		if err != nil || parsed <= 0 {
			return Catalog{}, fmt.Errorf("config: cache_ttl %q is not a positive duration", file.CacheTTL)
		}
		ttl = parsed
	}

	catalog := Catalog{
		APIKey:  file.APIKey,
		Zone:    zone,
		ZoneTag: zoneTag,
		TTL:     ttl,
		Sports:  make(map[string]domain.SportRef, len(file.Sports)),
		Teams:   make(map[string]domain.TeamRef, len(file.Teams)),
	}

	for key, entry := range file.Sports {
		key = strings.ToLower(strings.TrimSpace(key))
		if entry.LeagueID == "" {
			return Catalog{}, fmt.Errorf("config: sport %q: league_id is required", key)
		}
		if entry.Season == "" {
			return Catalog{}, fmt.Errorf("config: sport %q: season is required", key)
		}
		catalog.Sports[key] = domain.SportRef{
			Key:        key,
			Name:       displayName(entry.Name, key),
			LeagueID:   entry.LeagueID,
			Season:     entry.Season,
			Motorsport: entry.Motorsport,
		}
	}

	for key, entry := range file.Teams {
		key = strings.ToLower(strings.TrimSpace(key))
		if entry.SportsDBID == "" && (entry.Slug == "" || entry.League == "") {
			return Catalog{}, fmt.Errorf("config: team %q: needs sportsdb_id or slug+league", key)
		}
		if entry.Sport != "" {
			if _, ok := catalog.Sports[strings.ToLower(entry.Sport)]; !ok {
				return Catalog{}, fmt.Errorf("config: team %q: unknown sport %q", key, entry.Sport)
			}
		}
		catalog.Teams[key] = domain.TeamRef{
			Key:        key,
			Name:       displayName(entry.Name, key),
			SportsDBID: entry.SportsDBID,
			Slug:       entry.Slug,
			League:     entry.League,
			Sport:      strings.ToLower(entry.Sport),
		}
	}

	return catalog, nil
}

func displayName(name, key string) string {
	if name != "" {
		return name
	}
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
