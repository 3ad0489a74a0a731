package models

import "time"

// Phase represents the stage of the season
type Phase string

const (
	// PhaseRegularSeason is when weekly games are played
	PhaseRegularSeason Phase = "REGULAR_SEASON"

	// PhaseOffseason follows the final week until the coach starts a new season
	PhaseOffseason Phase = "OFFSEASON"

	// The following phases are declared but never entered
	PhasePreseason  Phase = "PRESEASON"
	PhasePostseason Phase = "POSTSEASON"
	PhaseGraduation Phase = "GRADUATION"
)

// IsRegularSeason checks if games are being played
func (p Phase) IsRegularSeason() bool {
	return p == PhaseRegularSeason
}

// IsOffseason checks if the season has ended
func (p Phase) IsOffseason() bool {
	return p == PhaseOffseason
}

// SeasonState tracks where the league is in the calendar
type SeasonState struct {
	Year  int
	Week  int
	Phase Phase
}

// NewsItem is a line in the league news feed
type NewsItem struct {
	// ID is the unique identifier for the item
	ID string

	// Headline is the text shown to the coach
	Headline string

	// Year and Week the item refers to
	Year int
	Week int

	// Generated is false when a fallback sentence was used
	Generated bool

	// PublishedAt is when the item was added
	PublishedAt time.Time
}

// League is the whole state of one running game
type League struct {
	// ID is the unique identifier for the league
	ID string

	// Variant is the name of the rules the league was created with
	Variant string

	// Season is the current calendar position
	Season SeasonState

	// Teams in the league, the user team among them
	Teams []Team

	// Schedule is the current season's games
	Schedule []Game

	// Prospects available to recruit this season
	Prospects []Prospect

	// RecruitingPoints left to spend this week
	RecruitingPoints int

	// News is newest first
	News []NewsItem

	// Version counts stored writes. A save only lands when it matches the
	// stored value, so stale copies cannot replace newer state.
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserTeam returns the team the coach controls
func (l *League) UserTeam() (*Team, bool) {
	for i := range l.Teams {
		if l.Teams[i].IsUser {
			return &l.Teams[i], true
		}
	}
	return nil, false
}

// Team looks up a team by ID
func (l *League) Team(id string) (*Team, bool) {
	for i := range l.Teams {
		if l.Teams[i].ID == id {
			return &l.Teams[i], true
		}
	}
	return nil, false
}

// GamesInWeek returns the games scheduled for a week
func (l *League) GamesInWeek(week int) []Game {
	var games []Game
	for _, g := range l.Schedule {
		if g.Week == week {
			games = append(games, g)
		}
	}
	return games
}

// Clone deep-copies the league so a transition can build a replacement value
func (l *League) Clone() *League {
	if l == nil {
		return nil
	}
	clone := *l

	clone.Teams = make([]Team, len(l.Teams))
	for i, t := range l.Teams {
		clone.Teams[i] = t.Clone()
	}

	clone.Schedule = make([]Game, len(l.Schedule))
	for i, g := range l.Schedule {
		g.Log = append([]string(nil), g.Log...)
		clone.Schedule[i] = g
	}

	clone.Prospects = append([]Prospect(nil), l.Prospects...)
	clone.News = append([]NewsItem(nil), l.News...)
	return &clone
}
