package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/KirkDiggler/fridaynight/internal/models"
)

const (
	// baseScore is what evenly matched teams score on average under the differential formula
	baseScore = 21

	// scoreSwing is the width of the random part of each score
	scoreSwing = 21

	starsPerTeam = 2
)

var weatherLines = []string{
	"Weather is clear. A great night for high school football.",
	"A light drizzle falls as the teams take the field.",
	"It's a crisp fall evening and the stands are full.",
	"The wind is whipping across the field tonight.",
}

// SimulateGame plays an unplayed game and returns it with scores and a log.
// The input game is not modified.
func (e *Engine) SimulateGame(game models.Game, home, away models.Team) (models.Game, error) {
	if game.Played {
		return game, ErrGameAlreadyPlayed
	}
	if home.ID != game.HomeTeamID || away.ID != game.AwayTeamID || home.ID == away.ID {
		return game, fmt.Errorf("%w: game %s", ErrTeamMismatch, game.ID)
	}

	homePower := e.TeamPower(home, true)
	awayPower := e.TeamPower(away, false)

	result := game
	result.HomeScore = e.score(homePower, awayPower)
	result.AwayScore = e.score(awayPower, homePower)
	result.Played = true
	result.Log = e.gameLog(home, away, result.HomeScore, result.AwayScore)
	return result, nil
}

func (e *Engine) score(own, opp float64) int {
	var points float64
	switch e.variant.ScoreFormula {
	case ScoreFormulaPower:
		points = own/3 + e.roller.Float64()*scoreSwing
	default:
		points = (own-opp)/2 + baseScore + (e.roller.Float64()*scoreSwing - 10)
	}
	return int(math.Floor(math.Max(0, points)))
}

func (e *Engine) gameLog(home, away models.Team, homeScore, awayScore int) []string {
	log := []string{
		fmt.Sprintf("Kickoff at %s Stadium! %s receives at their own 20.", home.Name, away.Name),
		pick(e.roller, weatherLines),
		scoutLine(home),
		explosiveLine(away),
	}

	switch {
	case homeScore > awayScore:
		log = append(log, fmt.Sprintf("The crowd erupts as the %s seal the victory!", nickname(home)))
	case awayScore > homeScore:
		log = append(log, fmt.Sprintf("Silence falls over the home crowd as the %s take the win.", nickname(away)))
	default:
		log = append(log, "An incredible battle ends in a draw.")
	}

	return append(log, fmt.Sprintf("Final Score: %s %d, %s %d", home.Name, homeScore, away.Name, awayScore))
}

func scoutLine(team models.Team) string {
	stars := topPlayers(team.Roster, starsPerTeam)
	switch len(stars) {
	case 0:
		return fmt.Sprintf("Scouts are here to see what %s can do.", team.Name)
	case 1:
		return fmt.Sprintf("Scouts are here watching %s (%s).", stars[0].Name(), team.Name)
	}
	return fmt.Sprintf("Scouts are here watching %s and %s (%s).", stars[0].Name(), stars[1].Name(), team.Name)
}

func explosiveLine(team models.Team) string {
	stars := topPlayers(team.Roster, starsPerTeam)
	if len(stars) == 0 {
		return fmt.Sprintf("%s come out looking for an upset.", team.Name)
	}
	return fmt.Sprintf("%s is looking explosive for %s.", stars[0].Name(), team.Name)
}

// topPlayers returns the n highest rated players without reordering the roster
func topPlayers(roster []models.Player, n int) []models.Player {
	sorted := append([]models.Player(nil), roster...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Overall > sorted[j].Overall
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func nickname(team models.Team) string {
	if team.Mascot != "" {
		return team.Mascot
	}
	return team.Name
}
