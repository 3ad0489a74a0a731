package logging

// Structured log keys shared across packages
const (
	FieldService    = "service"
	FieldLeagueID   = "league_id"
	FieldVariant    = "variant"
	FieldYear       = "year"
	FieldWeek       = "week"
	FieldPhase      = "phase"
	FieldGameID     = "game_id"
	FieldProspectID = "prospect_id"
	FieldPoints     = "points"
	FieldProvider   = "provider"
	FieldAttempt    = "attempt"
	FieldCommand    = "command"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
)
