package sportsdb

type eventsResponse struct {
	Events []eventRecord `json:"events"`
}

type eventRecord struct {
	IDEvent          string `json:"idEvent"`
	StrEvent         string `json:"strEvent"`
	StrHomeTeam      string `json:"strHomeTeam"`
	StrAwayTeam      string `json:"strAwayTeam"`
	DateEvent        string `json:"dateEvent"`
	StrTime          string `json:"strTime"`
	StrTimestamp     string `json:"strTimestamp"`
	StrVenue         string `json:"strVenue"`
	StrThumb         string `json:"strThumb"`
	StrHomeTeamBadge string `json:"strHomeTeamBadge"`
	StrAwayTeamBadge string `json:"strAwayTeamBadge"`
	StrTVStation     string `json:"strTVStation"`
}

type teamsResponse struct {
	Teams []teamRecord `json:"teams"`
}

type teamRecord struct {
	IDTeam       string `json:"idTeam"`
	StrTeam      string `json:"strTeam"`
	StrBadge     string `json:"strBadge"`
	StrTeamBadge string `json:"strTeamBadge"`
}

type leaguesResponse struct {
	Leagues []leagueRecord `json:"leagues"`
}

type leagueRecord struct {
	IDLeague  string `json:"idLeague"`
	StrLeague string `json:"strLeague"`
	StrBadge  string `json:"strBadge"`
	StrLogo   string `json:"strLogo"`
}
