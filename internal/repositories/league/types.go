package league

import "github.com/KirkDiggler/fridaynight/internal/models"

type SaveLeagueInput struct {
	League *models.League
}

type GetLeagueInput struct {
	LeagueID string
}

type DeleteLeagueInput struct {
	LeagueID string
}

type AppendNewsInput struct {
	LeagueID string
	Item     models.NewsItem
}
