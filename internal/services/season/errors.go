package season

// SeasonError is a custom error type for season errors
type SeasonError string

// Error implements the error interface
func (e SeasonError) Error() string {
	return string(e)
}

const (
	ErrLeagueNotFound     SeasonError = "league not found"
	ErrLeagueExists       SeasonError = "league already exists for this channel"
	ErrInvalidPhase       SeasonError = "not allowed in the current phase"
	ErrProspectNotFound   SeasonError = "prospect not found"
	ErrProspectCommitted  SeasonError = "prospect has already committed"
	ErrInsufficientPoints SeasonError = "not enough recruiting points"
	ErrInvalidPoints      SeasonError = "points must be positive"
	ErrNoUserTeam         SeasonError = "league has no user team"
	ErrLeagueBusy         SeasonError = "league was changed by another request"
	ErrNilInput           SeasonError = "input cannot be nil"
	ErrNilConfig          SeasonError = "config cannot be nil"
	ErrNilEngine          SeasonError = "engine cannot be nil"
	ErrNilRepository      SeasonError = "league repository cannot be nil"
	ErrNilClock           SeasonError = "clock cannot be nil"
	ErrNilUUIDGenerator   SeasonError = "UUID generator cannot be nil"
)
