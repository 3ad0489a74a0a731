package discord

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/fridaynight/internal/models"
	"github.com/KirkDiggler/fridaynight/internal/services/season"
	"github.com/bwmarrin/discordgo"
)

// Button IDs
const (
	ButtonAdvanceWeek   = "fnl_advance_week"
	ButtonAdvanceSeason = "fnl_advance_season"
	ButtonStandings     = "fnl_standings"
)

// statusButtons offers the next step for the league's phase
func statusButtons(l *models.League) []discordgo.MessageComponent {
	standings := discordgo.Button{
		Label:    "Standings",
		Style:    discordgo.SecondaryButton,
		CustomID: ButtonStandings,
	}

	if l.Season.Phase.IsOffseason() {
		return []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "New Season",
				Style:    discordgo.SuccessButton,
				CustomID: ButtonAdvanceSeason,
				Emoji:    &discordgo.ComponentEmoji{Name: "📅"},
			},
			standings,
		}
	}
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Sim Week",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonAdvanceWeek,
			Emoji:    &discordgo.ComponentEmoji{Name: "🏈"},
		},
		standings,
	}
}

// renderStatus shows the user's program at a glance
func renderStatus(l *models.League) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Friday Night Lights",
		Color: colorInfo,
	}

	user, ok := l.UserTeam()
	if !ok {
		embed.Description = seasonLine(l.Season)
		return embed
	}

	embed.Title = fmt.Sprintf("%s (%s)", user.DisplayName(), user.Record())

	var sb strings.Builder
	sb.WriteString(seasonLine(l.Season))
	if len(l.News) > 0 {
		sb.WriteString("\n\n📰 ")
		sb.WriteString(l.News[0].Headline)
	}
	embed.Description = sb.String()

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Offense", Value: fmt.Sprintf("%d", user.OffenseRating), Inline: true},
		{Name: "Defense", Value: fmt.Sprintf("%d", user.DefenseRating), Inline: true},
		{Name: "Prestige", Value: fmt.Sprintf("%d", user.Prestige), Inline: true},
	}

	if l.Season.Phase.IsRegularSeason() {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "This Week", Value: nextGameLine(l, user.ID)},
			&discordgo.MessageEmbedField{Name: "Recruiting Points", Value: fmt.Sprintf("%d", l.RecruitingPoints), Inline: true},
		)
	} else {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Offseason",
			Value: "Use `/fnl newseason` to progress players, graduate seniors and sign recruits.",
		})
	}

	return embed
}

func seasonLine(s models.SeasonState) string {
	if s.Phase.IsOffseason() {
		return fmt.Sprintf("%d • Offseason", s.Year)
	}
	return fmt.Sprintf("%d • Week %d", s.Year, s.Week)
}

// nextGameLine describes the user's game in the current week
func nextGameLine(l *models.League, userID string) string {
	for _, g := range l.GamesInWeek(l.Season.Week) {
		if !g.Involves(userID) || g.Played {
			continue
		}
		if g.HomeTeamID == userID {
			if opp, ok := l.Team(g.AwayTeamID); ok {
				return fmt.Sprintf("vs %s (%s)", opp.DisplayName(), opp.Record())
			}
		} else if opp, ok := l.Team(g.HomeTeamID); ok {
			return fmt.Sprintf("at %s (%s)", opp.DisplayName(), opp.Record())
		}
	}
	return "Bye week"
}

// renderWeekResults lists the scores of a played week with the user's game log
func renderWeekResults(out *season.AdvanceWeekOutput) *discordgo.MessageEmbed {
	l := out.League
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Week %d Results", out.Week),
		Color: colorSuccess,
	}

	var lines []string
	for _, g := range out.Results {
		lines = append(lines, scoreLine(l, g))
	}
	if len(lines) == 0 {
		lines = append(lines, "No games were scheduled.")
	}
	embed.Description = strings.Join(lines, "\n")

	if out.UserGame != nil && len(out.UserGame.Log) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Your Game",
			Value: strings.Join(out.UserGame.Log, "\n"),
		})
	}

	if user, ok := l.UserTeam(); ok {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Record",
			Value:  user.Record(),
			Inline: true,
		})
	}

	if out.SeasonOver {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "The regular season is over. Use /fnl newseason when you are ready."}
	}
	return embed
}

func scoreLine(l *models.League, g models.Game) string {
	home, away := g.HomeTeamID, g.AwayTeamID
	if t, ok := l.Team(g.HomeTeamID); ok {
		home = t.Name
	}
	if t, ok := l.Team(g.AwayTeamID); ok {
		away = t.Name
	}

	line := fmt.Sprintf("%s %d - %d %s", home, g.HomeScore, g.AwayScore, away)
	if user, ok := l.UserTeam(); ok && g.Involves(user.ID) {
		line = "**" + line + "**"
	}
	return line
}

// renderSeasonStart summarizes the offseason
func renderSeasonStart(out *season.AdvanceSeasonOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("The %d Season Begins", out.League.Season.Year),
		Description: fmt.Sprintf("%d seniors graduated. Players worked out all summer.", out.Graduated),
		Color:       colorSuccess,
	}

	value := "No recruits signed this year."
	if len(out.Signed) > 0 {
		var lines []string
		for _, p := range out.Signed {
			lines = append(lines, fmt.Sprintf("%s %s (OVR %d, POT %d)", p.Position, p.Name(), p.Overall, p.Potential))
		}
		value = strings.Join(lines, "\n")
	}
	embed.Fields = []*discordgo.MessageEmbedField{{Name: "Signed", Value: value}}

	if user, ok := out.League.UserTeam(); ok {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Offense", Value: fmt.Sprintf("%d", user.OffenseRating), Inline: true},
			&discordgo.MessageEmbedField{Name: "Defense", Value: fmt.Sprintf("%d", user.DefenseRating), Inline: true},
		)
	}
	return embed
}

// renderStandings draws the league table
func renderStandings(out *season.GetStandingsOutput) *discordgo.MessageEmbed {
	var sb strings.Builder
	sb.WriteString("```\n")
	sb.WriteString(fmt.Sprintf("%-3s %-16s %-7s %3s %3s\n", "#", "School", "W-L", "OFF", "DEF"))
	for i, t := range out.Teams {
		name := t.Name
		if t.IsUser {
			name = "*" + name
		}
		sb.WriteString(fmt.Sprintf("%-3d %-16s %-7s %3d %3d\n", i+1, truncate(name, 16), t.Record(), t.OffenseRating, t.DefenseRating))
	}
	sb.WriteString("```")

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%d Standings", out.Season.Year),
		Description: sb.String(),
		Color:       colorInfo,
	}
}

// renderRoster lists a team's players, best first
func renderRoster(team models.Team) *discordgo.MessageEmbed {
	players := append([]models.Player(nil), team.Roster...)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Overall > players[j].Overall
	})

	var sb strings.Builder
	sb.WriteString("```\n")
	sb.WriteString(fmt.Sprintf("%-3s %-20s %3s %3s %3s\n", "POS", "Name", "GR", "OVR", "POT"))
	for _, p := range players {
		sb.WriteString(fmt.Sprintf("%-3s %-20s %3d %3d %3d\n", p.Position, truncate(p.Name(), 20), p.Grade, p.Overall, p.Potential))
	}
	sb.WriteString("```")

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Roster", team.DisplayName()),
		Description: sb.String(),
		Color:       colorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d players • %s / %s", len(players), team.OffenseScheme, team.DefenseScheme)},
	}
}

// renderRecruits lists prospects by stars, then interest
func renderRecruits(l *models.League) *discordgo.MessageEmbed {
	prospects := append([]models.Prospect(nil), l.Prospects...)
	sort.SliceStable(prospects, func(i, j int) bool {
		if prospects[i].Stars != prospects[j].Stars {
			return prospects[i].Stars > prospects[j].Stars
		}
		return prospects[i].Interest > prospects[j].Interest
	})

	var lines []string
	for _, p := range prospects {
		line := fmt.Sprintf("`%s` %s %s %s • POT %d • %d%%", p.ID, stars(p.Stars), p.Position, p.Name(), p.Potential, p.Interest)
		if p.IsCommitted() {
			line += " ✅"
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, "No prospects this year.")
	}

	return &discordgo.MessageEmbed{
		Title:       "Recruiting Board",
		Description: strings.Join(lines, "\n"),
		Color:       colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d points left this week • /fnl recruit <prospect> <points>", l.RecruitingPoints),
		},
	}
}

func renderRecruitResult(out *season.SpendRecruitingPointsOutput) *discordgo.MessageEmbed {
	p := out.Prospect
	desc := fmt.Sprintf("%s's interest is now %d%%.", p.Name(), p.Interest)
	if p.IsCommitted() {
		desc = fmt.Sprintf("%s has committed! They join the team next season.", p.Name())
	}

	return &discordgo.MessageEmbed{
		Title:       "Recruiting",
		Description: desc,
		Color:       colorSuccess,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d points left this week", out.RemainingPoints)},
	}
}

// errorMessage turns a service error into something a coach can act on
func errorMessage(err error) string {
	switch {
	case errors.Is(err, season.ErrLeagueNotFound):
		return "There's no league in this channel. Start one with `/fnl new`."
	case errors.Is(err, season.ErrLeagueExists):
		return "This channel already has a league. Use `/fnl abandon` to clear it first."
	case errors.Is(err, season.ErrInvalidPhase):
		return "You can't do that right now. Check `/fnl status` for where the season stands."
	case errors.Is(err, season.ErrProspectNotFound):
		return "No prospect with that ID. Check `/fnl recruits`."
	case errors.Is(err, season.ErrProspectCommitted):
		return "That prospect has already committed."
	case errors.Is(err, season.ErrInsufficientPoints):
		return "Sorry, " + err.Error() + "."
	case errors.Is(err, season.ErrInvalidPoints):
		return "Spend at least one point."
	case errors.Is(err, season.ErrLeagueBusy):
		return "Someone else just moved this league along. Check `/fnl status` and try again."
	}
	return "Something went wrong on the sideline. Try again in a moment."
}

func stars(n int) string {
	return strings.Repeat("★", n)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
