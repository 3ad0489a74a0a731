package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/fridaynight/internal/logging"
	"github.com/KirkDiggler/fridaynight/internal/services/season"
	"github.com/bwmarrin/discordgo"
)

// Subcommands of /fnl
const (
	SubcommandNew       = "new"
	SubcommandStatus    = "status"
	SubcommandAdvance   = "advance"
	SubcommandNewSeason = "newseason"
	SubcommandStandings = "standings"
	SubcommandRoster    = "roster"
	SubcommandRecruits  = "recruits"
	SubcommandRecruit   = "recruit"
	SubcommandAbandon   = "abandon"

	optionProspect = "prospect"
	optionPoints   = "points"
)

// FNLCommand handles the /fnl command. Each channel runs one league.
type FNLCommand struct {
	BaseCommand
	seasonService season.Service
	logger        *slog.Logger
}

// NewFNLCommand creates a new fnl command handler
func NewFNLCommand(seasonService season.Service, logger *slog.Logger) *FNLCommand {
	if logger == nil {
		logger = slog.Default()
	}
	minPoints := 1.0
	return &FNLCommand{
		BaseCommand: BaseCommand{
			Name:        "fnl",
			Description: "Run a high school football program",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandNew,
					Description: "Start a new league in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStatus,
					Description: "Show your program and the latest news",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandAdvance,
					Description: "Play this week's games",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandNewSeason,
					Description: "Run the offseason and start next season",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStandings,
					Description: "Show the league standings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRoster,
					Description: "Show your roster",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRecruits,
					Description: "Show this year's prospects",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRecruit,
					Description: "Spend recruiting points on a prospect",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionProspect,
							Description: "Prospect ID from /fnl recruits",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionPoints,
							Description: "Points to spend",
							Required:    true,
							MinValue:    &minPoints,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandAbandon,
					Description: "Delete the league in this channel",
				},
			},
		},
		seasonService: seasonService,
		logger:        logger,
	}
}

// Handle processes a Discord interaction for the fnl command
func (c *FNLCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	ctx := logging.WithLogger(context.Background(), logging.ForInteraction(c.logger, sub.Name, i.ChannelID))

	resp, err := c.execute(ctx, i.ChannelID, sub.Name, sub.Options)
	if err != nil {
		if !isUserError(err) {
			logging.Error(logging.FromContext(ctx, c.logger), "command failed", err)
		}
		return RespondWithError(s, i, errorMessage(err))
	}
	return Respond(s, i, resp)
}

// execute runs a subcommand against the league for channelID and renders the reply
func (c *FNLCommand) execute(ctx context.Context, channelID, sub string, opts []*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponseData, error) {
	switch sub {
	case SubcommandNew:
		out, err := c.seasonService.CreateLeague(ctx, &season.CreateLeagueInput{LeagueID: channelID})
		if err != nil {
			return nil, err
		}
		return embedResponse(renderStatus(out.League), statusButtons(out.League)...), nil

	case SubcommandStatus:
		out, err := c.seasonService.GetLeague(ctx, &season.GetLeagueInput{LeagueID: channelID})
		if err != nil {
			return nil, err
		}
		return embedResponse(renderStatus(out.League), statusButtons(out.League)...), nil

	case SubcommandAdvance:
		out, err := c.seasonService.AdvanceWeek(ctx, &season.AdvanceWeekInput{LeagueID: channelID})
		if err != nil {
			return nil, err
		}
		return embedResponse(renderWeekResults(out), statusButtons(out.League)...), nil

	case SubcommandNewSeason:
		out, err := c.seasonService.AdvanceSeason(ctx, &season.AdvanceSeasonInput{LeagueID: channelID})
		if err != nil {
			return nil, err
		}
		return embedResponse(renderSeasonStart(out), statusButtons(out.League)...), nil

	case SubcommandStandings:
		out, err := c.seasonService.GetStandings(ctx, &season.GetStandingsInput{LeagueID: channelID})
		if err != nil {
			return nil, err
		}
		return embedResponse(renderStandings(out)), nil

	case SubcommandRoster:
		out, err := c.seasonService.GetLeague(ctx, &season.GetLeagueInput{LeagueID: channelID})
		if err != nil {
			return nil, err
		}
		team, ok := out.League.UserTeam()
		if !ok {
			return nil, season.ErrNoUserTeam
		}
		return ephemeral(embedResponse(renderRoster(*team))), nil

	case SubcommandRecruits:
		out, err := c.seasonService.GetLeague(ctx, &season.GetLeagueInput{LeagueID: channelID})
		if err != nil {
			return nil, err
		}
		return ephemeral(embedResponse(renderRecruits(out.League))), nil

	case SubcommandRecruit:
		prospectID, points := recruitOptions(opts)
		out, err := c.seasonService.SpendRecruitingPoints(ctx, &season.SpendRecruitingPointsInput{
			LeagueID:   channelID,
			ProspectID: prospectID,
			Points:     points,
		})
		if err != nil {
			return nil, err
		}
		return embedResponse(renderRecruitResult(out)), nil

	case SubcommandAbandon:
		if _, err := c.seasonService.AbandonLeague(ctx, &season.AbandonLeagueInput{LeagueID: channelID}); err != nil {
			return nil, err
		}
		return &discordgo.InteractionResponseData{
			Content: "League abandoned. Start a new one with `/fnl new`.",
		}, nil
	}

	return nil, fmt.Errorf("unknown subcommand %q", sub)
}

func recruitOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) (string, int) {
	var prospectID string
	var points int
	for _, opt := range opts {
		switch opt.Name {
		case optionProspect:
			prospectID = opt.StringValue()
		case optionPoints:
			points = int(opt.IntValue())
		}
	}
	return prospectID, points
}

// isUserError reports whether err is something the coach did rather than a fault
func isUserError(err error) bool {
	var seasonErr season.SeasonError
	return errors.As(err, &seasonErr)
}
