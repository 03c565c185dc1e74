package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRunID      = "run_id"
	FieldProvider   = "provider"
	FieldLeagueID   = "league_id"
	FieldYear       = "year"
	FieldWeek       = "week"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
