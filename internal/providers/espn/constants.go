package espn

import "time"

const (
	// Name labels this provider in logs and metrics.
	Name = "espn"

	defaultBaseURL     = "https://lm-api-reads.fantasy.espn.com"
	defaultUserAgent   = "playoff-report/1.0"
	defaultHTTPTimeout = 15 * time.Second

	// Read views for the league resource. ESPN returns one merged league
	// object; views control which sections are populated.
	viewSettings = "mSettings"
	viewTeam     = "mTeam"
	viewMatchup  = "mMatchup"

	cookieS2   = "espn_s2"
	cookieSWID = "SWID"

	tierNone = "NONE"
)
