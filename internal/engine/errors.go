package engine

// EngineError is a custom error type for simulation errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

const (
	ErrNilConfig         EngineError = "config cannot be nil"
	ErrNilRoller         EngineError = "roller cannot be nil"
	ErrNilUUIDGenerator  EngineError = "UUID generator cannot be nil"
	ErrInvalidVariant    EngineError = "invalid variant"
	ErrUnknownVariant    EngineError = "unknown variant"
	ErrGameAlreadyPlayed EngineError = "game has already been played"
	ErrTeamMismatch      EngineError = "teams do not match the game"
)
