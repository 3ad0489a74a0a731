package models

// MaxInterest is the interest level at which a prospect signs
const MaxInterest = 100

// Prospect represents a recruit the user team can pursue this season
type Prospect struct {
	// ID is the unique identifier for the prospect
	ID string

	FirstName string
	LastName  string

	// Position the prospect plays
	Position Position

	// Stars is the recruiting ranking, 1-5
	Stars int

	// Potential is the prospect's ceiling
	Potential int

	// Interest in the user's program, 0-100
	Interest int
}

// Name returns the prospect's full display name
func (p Prospect) Name() string {
	return p.FirstName + " " + p.LastName
}

// IsCommitted reports whether the prospect has reached full interest
func (p Prospect) IsCommitted() bool {
	return p.Interest >= MaxInterest
}
