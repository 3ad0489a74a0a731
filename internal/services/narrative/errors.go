package narrative

// NarrativeError is a custom error type for narrative errors
type NarrativeError string

// Error implements the error interface
func (e NarrativeError) Error() string {
	return string(e)
}

const (
	ErrNilConfig NarrativeError = "config cannot be nil"
	ErrNilInput  NarrativeError = "input cannot be nil"
)
