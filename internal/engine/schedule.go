package engine

import "github.com/KirkDiggler/fridaynight/internal/models"

// BuildSchedule pairs teams for each week. Every week is an independent
// shuffle, so a matchup can repeat; with an odd team count one team sits
// out each week.
func (e *Engine) BuildSchedule(teams []models.Team, weeks int) []models.Game {
	if len(teams) < 2 || weeks <= 0 {
		return []models.Game{}
	}

	games := make([]models.Game, 0, weeks*(len(teams)/2))
	order := make([]int, len(teams))

	for week := 1; week <= weeks; week++ {
		for i := range order {
			order[i] = i
		}
		e.roller.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		for i := 0; i+1 < len(order); i += 2 {
			games = append(games, models.Game{
				ID:         e.ids.NewUUID(),
				Week:       week,
				HomeTeamID: teams[order[i]].ID,
				AwayTeamID: teams[order[i+1]].ID,
				Log:        []string{},
			})
		}
	}
	return games
}
