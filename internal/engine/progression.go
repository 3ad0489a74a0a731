package engine

import (
	"math"
	"sort"

	"github.com/KirkDiggler/fridaynight/internal/models"
)

// maxDecline is the most a player can lose in one offseason
const maxDecline = -1

// Progress grows every player toward their potential. Growth shrinks as a
// player nears potential and scales with work ethic.
func (e *Engine) Progress(teams []models.Team) []models.Team {
	out := make([]models.Team, len(teams))
	for i, t := range teams {
		team := t.Clone()
		for j := range team.Roster {
			team.Roster[j].Overall = e.progressPlayer(team.Roster[j])
		}
		e.RecomputeRatings(&team)
		out[i] = team
	}
	return out
}

func (e *Engine) progressPlayer(p models.Player) int {
	growth := float64(p.Potential-p.Overall)*(float64(p.WorkEthic)/100)*e.variant.ProgressionRate + e.roller.Float64()*2
	delta := max(maxDecline, int(math.Floor(growth)))
	return clamp(p.Overall+delta, minRating, maxRating)
}

// Graduate ages every player a grade, removes seniors and backfills each
// roster with freshmen. Records are reset for the new season.
func (e *Engine) Graduate(teams []models.Team) []models.Team {
	return e.GraduateWithSignees(teams, nil)
}

// GraduateWithSignees graduates like Graduate, but places signed players on
// their team before random freshmen. Signees are keyed by team ID; when there
// are more than open spots the highest potential signees are kept.
func (e *Engine) GraduateWithSignees(teams []models.Team, signees map[string][]models.Player) []models.Team {
	out := make([]models.Team, len(teams))
	for i, t := range teams {
		team := t.Clone()

		roster := make([]models.Player, 0, e.variant.RosterSize)
		for _, p := range team.Roster {
			p.Grade++
			if p.Grade > models.GradeSenior {
				continue
			}
			roster = append(roster, p)
		}

		incoming := append([]models.Player(nil), signees[team.ID]...)
		sort.SliceStable(incoming, func(a, b int) bool {
			return incoming[a].Potential > incoming[b].Potential
		})
		for _, p := range incoming {
			if len(roster) >= e.variant.RosterSize {
				break
			}
			roster = append(roster, p)
		}

		for len(roster) < e.variant.RosterSize {
			p := e.GeneratePlayer(models.GradeFreshman, e.freshmanSeed(team.Prestige))
			if pos, ok := e.neededPosition(roster); ok {
				p.Position = pos
			}
			roster = append(roster, p)
		}

		team.Roster = roster
		team.Wins, team.Losses, team.Ties = 0, 0, 0
		e.RecomputeRatings(&team)
		out[i] = team
	}
	return out
}

// neededPosition finds the template position furthest below its count
func (e *Engine) neededPosition(roster []models.Player) (models.Position, bool) {
	if len(e.variant.RosterTemplate) == 0 {
		return "", false
	}

	have := make(map[models.Position]int)
	for _, p := range roster {
		have[p.Position]++
	}

	var best models.Position
	bestGap := 0
	for _, pc := range e.variant.RosterTemplate {
		if gap := pc.Count - have[pc.Position]; gap > bestGap {
			best, bestGap = pc.Position, gap
		}
	}
	return best, bestGap > 0
}
