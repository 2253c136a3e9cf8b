package proxy

type scheduleResponse struct {
	Events []scheduleEvent `json:"events"`
}

type scheduleEvent struct {
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Date         string        `json:"date"`
	Competitions []competition `json:"competitions"`
}

type competition struct {
	Date        string       `json:"date"`
	Venue       venue        `json:"venue"`
	Competitors []competitor `json:"competitors"`
	Broadcasts  []broadcast  `json:"broadcasts"`
}

type venue struct {
	FullName string `json:"fullName"`
}

type competitor struct {
	HomeAway string `json:"homeAway"`
	Team     team   `json:"team"`
}

type team struct {
	DisplayName string `json:"displayName"`
	Logos       []logo `json:"logos"`
}

type logo struct {
	Href string `json:"href"`
}

type broadcast struct {
	Media media `json:"media"`
}

type media struct {
	ShortName string `json:"shortName"`
}
