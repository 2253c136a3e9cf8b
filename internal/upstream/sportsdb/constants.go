package sportsdb

import "time"

const (
	defaultBaseURL     = "https://www.thesportsdb.com"
	defaultHTTPTimeout = 10 * time.Second

	endpointNextTeam   = "eventsnext.php"
	endpointNextLeague = "eventsnextleague.php"
	endpointSeason     = "eventsseason.php"
	endpointTeam       = "lookupteam.php"
	endpointLeague     = "lookupleague.php"
)
