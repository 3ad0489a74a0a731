package models

// Position is a roster slot on the depth chart
type Position string

const (
	PositionQB Position = "QB"
	PositionRB Position = "RB"
	PositionWR Position = "WR"
	PositionTE Position = "TE"
	PositionOL Position = "OL"
	PositionDL Position = "DL"
	PositionLB Position = "LB"
	PositionCB Position = "CB"
	PositionDB Position = "DB"
	PositionS  Position = "S"
	PositionK  Position = "K"
)

// Unit groups positions that share a rating
type Unit string

const (
	// UnitOffense covers the players on the field with the ball
	UnitOffense Unit = "offense"

	// UnitDefense covers the players trying to stop it
	UnitDefense Unit = "defense"
)

// Grade is the school year of a player
const (
	GradeFreshman  = 9
	GradeSophomore = 10
	GradeJunior    = 11
	GradeSenior    = 12
)

// PlayerStats holds per-season counters. The simulation does not fill them in.
type PlayerStats struct {
	PassingYards   int
	PassingTDs     int
	RushingYards   int
	RushingTDs     int
	Receptions     int
	ReceivingYards int
	ReceivingTDs   int
	Tackles        int
	Sacks          int
	Ints           int
}

// Player represents a rostered high school athlete
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// FirstName and LastName are drawn from the name tables
	FirstName string
	LastName  string

	// Position is the player's slot on the depth chart
	Position Position

	// Grade is the school year, 9 through 12
	Grade int

	// Overall is the current skill rating, 0-99
	Overall int

	// Potential is the rating the player grows toward
	Potential int

	// WorkEthic scales offseason growth, 0-99
	WorkEthic int

	// Academics is a GPA between 1.50 and 4.00
	Academics float64

	// Behavior, Discipline and Morale are 0-100 scores
	Behavior   int
	Discipline int
	Morale     int

	// Physical traits, 40-99
	Speed    int
	Strength int
	IQ       int

	// Stats is the season stat block
	Stats PlayerStats
}

// Name returns the player's full display name
func (p Player) Name() string {
	return p.FirstName + " " + p.LastName
}

// IsSenior reports whether the player graduates after this season
func (p Player) IsSenior() bool {
	return p.Grade >= GradeSenior
}
