package config

import (
	"strings"
	"testing"
	"time"
)

const validCatalog = `
api_key: "123"
zone: "Europe/London"
cache_ttl: "30m"
sports:
  epl:
    name: "Premier League"
    league_id: "4328"
    season: "2024-2025"
  f1:
    name: "Formula 1"
    league_id: "4370"
    season: "2024"
    motorsport: true
teams:
  arsenal:
    name: "Arsenal"
    sportsdb_id: "133604"
    sport: "epl"
  chelsea:
    slug: "chelsea"
    league: "eng.1"
    sport: "epl"
`

func TestParseCatalogBuildsRefs(t *testing.T) {
	catalog, err := ParseCatalog([]byte(validCatalog))
	if err != nil {
		t.Fatalf("expected valid catalog, got %v", err)
	}

	if catalog.APIKey != "123" {
		t.Fatalf("expected api key, got %q", catalog.APIKey)
	}
	if catalog.TTL != 30*time.Minute {
		t.Fatalf("expected 30m TTL, got %v", catalog.TTL)
	}
	if catalog.ZoneTag != "Europe/London" {
		t.Fatalf("expected London zone, got %q", catalog.ZoneTag)
	}

	epl, ok := catalog.Sports["epl"]
	if !ok {
		t.Fatal("expected epl sport")
	}
	if epl.LeagueID != "4328" || epl.Season != "2024-2025" || epl.Motorsport {
		t.Fatalf("unexpected sport ref %+v", epl)
	}
	if !catalog.Sports["f1"].Motorsport {
		t.Fatal("expected f1 to be motorsport")
	}

	arsenal := catalog.Teams["arsenal"]
	if arsenal.SportsDBID != "133604" || arsenal.Sport != "epl" || arsenal.Name != "Arsenal" {
		t.Fatalf("unexpected team ref %+v", arsenal)
	}
	chelsea := catalog.Teams["chelsea"]
	if chelsea.Slug != "chelsea" || chelsea.League != "eng.1" {
		t.Fatalf("expected slug routing, got %+v", chelsea)
	}
	if chelsea.Name != "Chelsea" {
		t.Fatalf("expected display name derived from key, got %q", chelsea.Name)
	}
}

func TestParseCatalogValidation(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing api key",
			yaml:    `zone: "UTC"`,
			wantErr: "api_key",
		},
		{
			name: "sport without season",
			yaml: `
api_key: "123"
sports:
  epl:
    league_id: "4328"
`,
			wantErr: "season is required",
		},
		{
			name: "sport without league",
			yaml: `
api_key: "123"
sports:
  epl:
    season: "2024-2025"
`,
			wantErr: "league_id is required",
		},
		{
			name: "team without routing",
			yaml: `
api_key: "123"
teams:
  arsenal:
    name: "Arsenal"
`,
			wantErr: "sportsdb_id or slug+league",
		},
		{
			name: "team with slug but no league",
			yaml: `
api_key: "123"
teams:
  arsenal:
    slug: "arsenal"
`,
			wantErr: "sportsdb_id or slug+league",
		},
		{
			name: "team with unknown sport",
			yaml: `
api_key: "123"
teams:
  arsenal:
    sportsdb_id: "1"
    sport: "cricket"
`,
			wantErr: "unknown sport",
		},
		{
			name: "bad ttl",
			yaml: `
api_key: "123"
cache_ttl: "soon"
`,
			wantErr: "cache_ttl",
		},
		{
			name: "bad zone",
			yaml: `
api_key: "123"
zone: "Mars/Olympus"
`,
			wantErr: "zone",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestParseCatalogDefaults(t *testing.T) {
	catalog, err := ParseCatalog([]byte(`api_key: "123"`))
	if err != nil {
		t.Fatalf("expected valid catalog, got %v", err)
	}
	if catalog.ZoneTag != "Europe/London" {
		t.Fatalf("expected default zone, got %q", catalog.ZoneTag)
	}
	if catalog.TTL != 15*time.Minute {
		t.Fatalf("expected default TTL, got %v", catalog.TTL)
	}
}
