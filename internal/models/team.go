package models

import "fmt"

// OffenseScheme is a cosmetic offensive style
type OffenseScheme string

const (
	OffenseSchemeSpread       OffenseScheme = "Spread"
	OffenseSchemeWingT        OffenseScheme = "Wing-T"
	OffenseSchemeProStyle     OffenseScheme = "Pro-Style"
	OffenseSchemeAirRaid      OffenseScheme = "Air Raid"
	OffenseSchemeTripleOption OffenseScheme = "Triple Option"
)

// DefenseScheme is a cosmetic defensive front
type DefenseScheme string

const (
	DefenseScheme43  DefenseScheme = "4-3 Base"
	DefenseScheme34  DefenseScheme = "3-4 Base"
	DefenseScheme335 DefenseScheme = "3-3-5 Stack"
	DefenseScheme425 DefenseScheme = "4-2-5"
)

// OffenseSchemes lists every offensive scheme
var OffenseSchemes = []OffenseScheme{
	OffenseSchemeSpread,
	OffenseSchemeWingT,
	OffenseSchemeProStyle,
	OffenseSchemeAirRaid,
	OffenseSchemeTripleOption,
}

// DefenseSchemes lists every defensive scheme
var DefenseSchemes = []DefenseScheme{
	DefenseScheme43,
	DefenseScheme34,
	DefenseScheme335,
	DefenseScheme425,
}

// Team represents a school's football program
type Team struct {
	// ID is the unique identifier for the team
	ID string

	// Name is the school name
	Name string

	// Mascot is the team nickname
	Mascot string

	// Prestige is the program's reputation, 1-100
	Prestige int

	// Facilities is the quality of the program's facilities, 1-100
	Facilities int

	// Budget is the program's spending money
	Budget int

	// OffenseRating and DefenseRating are derived from the roster.
	// They must be recomputed whenever the roster changes.
	OffenseRating int
	DefenseRating int

	// Season record
	Wins   int
	Losses int
	Ties   int

	// IsUser marks the team the coach controls
	IsUser bool

	// Schemes have no effect on the simulation
	OffenseScheme OffenseScheme
	DefenseScheme DefenseScheme

	// Roster is the list of players on the team
	Roster []Player
}

// DisplayName returns the school and mascot together
func (t Team) DisplayName() string {
	if t.Mascot == "" {
		return t.Name
	}
	return t.Name + " " + t.Mascot
}

// Record formats the season record as W-L or W-L-T
func (t Team) Record() string {
	if t.Ties > 0 {
		return fmt.Sprintf("%d-%d-%d", t.Wins, t.Losses, t.Ties)
	}
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}

// Clone returns a copy of the team that shares no roster memory
func (t Team) Clone() Team {
	clone := t
	clone.Roster = append([]Player(nil), t.Roster...)
	return clone
}
