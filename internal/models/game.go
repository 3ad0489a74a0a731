package models

// Game represents a scheduled matchup between two teams
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Week is the week of the season the game is played in
	Week int

	// HomeTeamID and AwayTeamID reference two distinct teams
	HomeTeamID string
	AwayTeamID string

	// Scores stay at zero until the game is played
	HomeScore int
	AwayScore int

	// Played flips to true once, when the game is simulated
	Played bool

	// Log is the narrative for the game
	Log []string
}

// Involves reports whether the team plays in this game
func (g Game) Involves(teamID string) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

// WinnerID returns the winning team ID, or an empty string for a tie or an unplayed game
func (g Game) WinnerID() string {
	switch {
	case !g.Played:
		return ""
	case g.HomeScore > g.AwayScore:
		return g.HomeTeamID
	case g.AwayScore > g.HomeScore:
		return g.AwayTeamID
	default:
		return ""
	}
}

// IsTie reports whether a played game ended level
func (g Game) IsTie() bool {
	return g.Played && g.HomeScore == g.AwayScore
}
