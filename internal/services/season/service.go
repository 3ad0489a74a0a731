package season

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/fridaynight/internal/common/clock"
	"github.com/KirkDiggler/fridaynight/internal/common/uuid"
	"github.com/KirkDiggler/fridaynight/internal/engine"
	"github.com/KirkDiggler/fridaynight/internal/logging"
	"github.com/KirkDiggler/fridaynight/internal/metrics"
	"github.com/KirkDiggler/fridaynight/internal/models"
	leagueRepo "github.com/KirkDiggler/fridaynight/internal/repositories/league"
	"github.com/KirkDiggler/fridaynight/internal/services/narrative"
)

// service implements the Service interface
type service struct {
	engine           *engine.Engine
	variant          *engine.Variant
	repo             leagueRepo.Repository
	clock            clock.Clock
	ids              uuid.UUID
	narrative        narrative.Service
	narrativeTimeout time.Duration
	logger           *slog.Logger
	metrics          *metrics.Recorder

	// mu serializes transitions so each one sees the result of the last
	mu     sync.Mutex
	closed bool

	// headlines tracks background narrative writes
	headlines sync.WaitGroup
}

// New creates a new season service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	timeout := cfg.NarrativeTimeout
	if timeout <= 0 {
		timeout = defaultNarrativeTimeout
	}

	return &service{
		engine:           cfg.Engine,
		variant:          cfg.Engine.Variant(),
		repo:             cfg.Repository,
		clock:            cfg.Clock,
		ids:              cfg.UUIDGenerator,
		narrative:        cfg.Narrative,
		narrativeTimeout: timeout,
		logger:           cfg.Logger,
		metrics:          cfg.Metrics,
	}, nil
}

// CreateLeague generates a new world and starts week one
func (s *service) CreateLeague(ctx context.Context, input *CreateLeagueInput) (*CreateLeagueOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	leagueID := input.LeagueID
	if leagueID == "" {
		leagueID = s.ids.NewUUID()
	}

	_, err := s.repo.GetLeague(ctx, &leagueRepo.GetLeagueInput{LeagueID: leagueID})
	if err == nil {
		return nil, ErrLeagueExists
	}
	if !errors.Is(err, leagueRepo.ErrLeagueNotFound) {
		return nil, fmt.Errorf("failed to check for existing league: %w", err)
	}

	now := s.clock.Now()
	teams := s.engine.GenerateWorld()
	l := &models.League{
		ID:      leagueID,
		Variant: s.variant.Name,
		Season: models.SeasonState{
			Year:  s.variant.StartYear,
			Week:  1,
			Phase: models.PhaseRegularSeason,
		},
		Teams:            teams,
		Schedule:         s.engine.BuildSchedule(teams, s.variant.Weeks),
		Prospects:        s.engine.GenerateProspects(s.variant.ProspectCount),
		RecruitingPoints: s.variant.RecruitingPoints,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.addNews(l, newsWelcome)

	err = s.repo.SaveLeague(ctx, &leagueRepo.SaveLeagueInput{League: l})
	if errors.Is(err, leagueRepo.ErrVersionConflict) {
		// Another process created it after our check
		return nil, ErrLeagueExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save league: %w", err)
	}

	logging.Info(s.log(ctx), "league created",
		logging.FieldLeagueID, l.ID,
		logging.FieldVariant, l.Variant,
		logging.FieldYear, l.Season.Year)

	s.publishTeaser(l)

	return &CreateLeagueOutput{League: l}, nil
}

// GetLeague returns the current state of a league
func (s *service) GetLeague(ctx context.Context, input *GetLeagueInput) (*GetLeagueOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	l, err := s.loadLeague(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	return &GetLeagueOutput{League: l}, nil
}

// AdvanceWeek simulates every unplayed game of the current week, updates
// records and moves to the next week, or to the offseason after the last one.
func (s *service) AdvanceWeek(ctx context.Context, input *AdvanceWeekInput) (*AdvanceWeekOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadLeague(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	if !current.Season.Phase.IsRegularSeason() {
		return nil, fmt.Errorf("%w: cannot advance a week during %s", ErrInvalidPhase, current.Season.Phase)
	}

	next := current.Clone()
	week := next.Season.Week

	var results []models.Game
	for i := range next.Schedule {
		game := next.Schedule[i]
		if game.Week != week || game.Played {
			continue
		}

		home, okHome := next.Team(game.HomeTeamID)
		away, okAway := next.Team(game.AwayTeamID)
		if !okHome || !okAway {
			return nil, fmt.Errorf("%w: game %s", engine.ErrTeamMismatch, game.ID)
		}

		result, err := s.engine.SimulateGame(game, *home, *away)
		if err != nil {
			return nil, fmt.Errorf("failed to simulate game %s: %w", game.ID, err)
		}
		next.Schedule[i] = result
		recordResult(home, away, result)
		results = append(results, result)
	}

	seasonOver := week >= s.variant.Weeks
	s.addNews(next, fmt.Sprintf(newsWeekPattern, week))
	if seasonOver {
		s.addNews(next, newsSeasonOver)
		next.Season.Phase = models.PhaseOffseason
	} else {
		next.Season.Week++
	}
	next.RecruitingPoints = s.variant.RecruitingPoints
	next.UpdatedAt = s.clock.Now()

	if err := s.saveLeague(ctx, next); err != nil {
		return nil, err
	}

	s.metrics.RecordGamesSimulated(next.Variant, len(results))
	s.metrics.RecordWeekAdvanced(next.Variant)
	logging.Transition(s.log(ctx), "week advanced", next.ID, next.Season,
		"played_week", week,
		"games", len(results))

	out := &AdvanceWeekOutput{
		League:     next,
		Week:       week,
		Results:    results,
		SeasonOver: seasonOver,
	}

	if user, ok := next.UserTeam(); ok {
		for i := range results {
			if results[i].Involves(user.ID) {
				game := results[i]
				out.UserGame = &game
				s.publishGameHeadline(next, game)
				break
			}
		}
	}

	return out, nil
}

// AdvanceSeason progresses and graduates every roster, signs committed
// prospects to the user team and starts the next regular season.
func (s *service) AdvanceSeason(ctx context.Context, input *AdvanceSeasonInput) (*AdvanceSeasonOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadLeague(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	if !current.Season.Phase.IsOffseason() {
		return nil, fmt.Errorf("%w: the regular season is still running", ErrInvalidPhase)
	}

	user, ok := current.UserTeam()
	if !ok {
		return nil, ErrNoUserTeam
	}

	var signed []models.Player
	for _, p := range current.Prospects {
		if p.IsCommitted() {
			signed = append(signed, s.engine.SignProspect(p, user.Prestige))
		}
	}

	graduated := 0
	for _, p := range user.Roster {
		if p.IsSenior() {
			graduated++
		}
	}

	next := current.Clone()
	teams := s.engine.Progress(next.Teams)
	teams = s.engine.GraduateWithSignees(teams, map[string][]models.Player{user.ID: signed})

	next.Teams = teams
	next.Season = models.SeasonState{
		Year:  current.Season.Year + 1,
		Week:  1,
		Phase: models.PhaseRegularSeason,
	}
	next.Schedule = s.engine.BuildSchedule(teams, s.variant.Weeks)
	next.Prospects = s.engine.GenerateProspects(s.variant.ProspectCount)
	next.RecruitingPoints = s.variant.RecruitingPoints
	next.UpdatedAt = s.clock.Now()
	s.addNews(next, newsNewSeason)

	if err := s.saveLeague(ctx, next); err != nil {
		return nil, err
	}

	s.metrics.RecordSeasonAdvanced(next.Variant)
	logging.Transition(s.log(ctx), "season advanced", next.ID, next.Season,
		"signed", len(signed),
		"graduated", graduated)

	s.publishTeaser(next)

	return &AdvanceSeasonOutput{
		League:    next,
		Signed:    signed,
		Graduated: graduated,
	}, nil
}

// SpendRecruitingPoints raises a prospect's interest by half the points spent
func (s *service) SpendRecruitingPoints(ctx context.Context, input *SpendRecruitingPointsInput) (*SpendRecruitingPointsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Points <= 0 {
		return nil, ErrInvalidPoints
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadLeague(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	if !current.Season.Phase.IsRegularSeason() {
		return nil, fmt.Errorf("%w: recruiting is closed during %s", ErrInvalidPhase, current.Season.Phase)
	}
	if input.Points > current.RecruitingPoints {
		return nil, fmt.Errorf("%w: %d left", ErrInsufficientPoints, current.RecruitingPoints)
	}

	next := current.Clone()
	idx := -1
	for i := range next.Prospects {
		if next.Prospects[i].ID == input.ProspectID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrProspectNotFound
	}
	if next.Prospects[idx].IsCommitted() {
		return nil, ErrProspectCommitted
	}

	prospect := &next.Prospects[idx]
	prospect.Interest = min(models.MaxInterest, prospect.Interest+input.Points/2)
	next.RecruitingPoints -= input.Points
	next.UpdatedAt = s.clock.Now()

	if err := s.saveLeague(ctx, next); err != nil {
		return nil, err
	}

	s.metrics.RecordRecruitingPoints(input.Points)
	logging.Info(s.log(ctx), "recruiting points spent",
		logging.FieldLeagueID, next.ID,
		logging.FieldProspectID, prospect.ID,
		logging.FieldPoints, input.Points,
		"interest", prospect.Interest)

	return &SpendRecruitingPointsOutput{
		Prospect:        *prospect,
		RemainingPoints: next.RecruitingPoints,
	}, nil
}

// GetStandings returns teams ordered by wins, then fewest losses, then name
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	l, err := s.loadLeague(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}

	teams := l.Teams
	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses < b.Losses
		}
		return a.Name < b.Name
	})

	return &GetStandingsOutput{
		Season: l.Season,
		Teams:  teams,
	}, nil
}

// AbandonLeague deletes a league
func (s *service) AbandonLeague(ctx context.Context, input *AbandonLeagueInput) (*AbandonLeagueOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.repo.DeleteLeague(ctx, &leagueRepo.DeleteLeagueInput{LeagueID: input.LeagueID})
	if errors.Is(err, leagueRepo.ErrLeagueNotFound) {
		return nil, ErrLeagueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete league: %w", err)
	}

	logging.Info(s.log(ctx), "league abandoned", logging.FieldLeagueID, input.LeagueID)
	return &AbandonLeagueOutput{}, nil
}

// Close stops new headlines and waits for the ones in flight
func (s *service) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.headlines.Wait()
}

func (s *service) loadLeague(ctx context.Context, leagueID string) (*models.League, error) {
	if leagueID == "" {
		return nil, ErrLeagueNotFound
	}

	l, err := s.repo.GetLeague(ctx, &leagueRepo.GetLeagueInput{LeagueID: leagueID})
	if errors.Is(err, leagueRepo.ErrLeagueNotFound) {
		return nil, ErrLeagueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load league: %w", err)
	}
	return l, nil
}

// saveLeague stores a transition built from a loaded league. When another
// writer saved first the transition is dropped and the caller may retry.
func (s *service) saveLeague(ctx context.Context, l *models.League) error {
	err := s.repo.SaveLeague(ctx, &leagueRepo.SaveLeagueInput{League: l})
	if errors.Is(err, leagueRepo.ErrVersionConflict) {
		logging.Warn(s.log(ctx), "league changed during transition", logging.FieldLeagueID, l.ID)
		return ErrLeagueBusy
	}
	if err != nil {
		return fmt.Errorf("failed to save league: %w", err)
	}
	return nil
}

func (s *service) log(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, s.logger)
}

// addNews puts a fixed line at the front of the feed
func (s *service) addNews(l *models.League, headline string) {
	l.News = append([]models.NewsItem{s.newsItem(l, headline, false)}, l.News...)
}

func (s *service) newsItem(l *models.League, headline string, generated bool) models.NewsItem {
	return models.NewsItem{
		ID:          s.ids.NewUUID(),
		Headline:    headline,
		Year:        l.Season.Year,
		Week:        l.Season.Week,
		Generated:   generated,
		PublishedAt: s.clock.Now(),
	}
}

// recordResult updates both teams' records for a played game
func recordResult(home, away *models.Team, game models.Game) {
	switch {
	case !game.Played:
		return
	case game.IsTie():
		home.Ties++
		away.Ties++
	case game.HomeScore > game.AwayScore:
		home.Wins++
		away.Losses++
	default:
		away.Wins++
		home.Losses++
	}
}

func (s *service) publishGameHeadline(l *models.League, game models.Game) {
	home, _ := l.Team(game.HomeTeamID)
	away, _ := l.Team(game.AwayTeamID)
	result := fmt.Sprintf("%s %d - %d %s", home.DisplayName(), game.HomeScore, game.AwayScore, away.DisplayName())
	item := s.newsItem(l, "", false)
	item.Week = game.Week

	s.publish(l.ID, item, func(ctx context.Context) (string, bool, error) {
		out, err := s.narrative.GetGameHeadline(ctx, &narrative.GetGameHeadlineInput{Result: result})
		if err != nil {
			return "", false, err
		}
		return out.Headline, out.Generated, nil
	})
}

func (s *service) publishTeaser(l *models.League) {
	user, ok := l.UserTeam()
	if !ok {
		return
	}
	input := &narrative.GetSeasonTeaserInput{TeamName: user.Name, Mascot: user.Mascot}

	s.publish(l.ID, s.newsItem(l, "", false), func(ctx context.Context) (string, bool, error) {
		out, err := s.narrative.GetSeasonTeaser(ctx, input)
		if err != nil {
			return "", false, err
		}
		return out.Headline, out.Generated, nil
	})
}

// publish writes a headline in the background and adds it to the feed.
// Must be called with s.mu held.
func (s *service) publish(leagueID string, item models.NewsItem, write func(ctx context.Context) (string, bool, error)) {
	if s.narrative == nil || s.closed {
		return
	}

	s.headlines.Add(1)
	go func() {
		defer s.headlines.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.narrativeTimeout)
		headline, generated, err := write(ctx)
		cancel()
		if err != nil {
			logging.Error(s.logger, "failed to write headline", err, logging.FieldLeagueID, leagueID)
			return
		}

		item.Headline = headline
		item.Generated = generated

		// Transitions read and save the whole league under mu; appending
		// between the two would lose the headline.
		s.mu.Lock()
		err = s.repo.AppendNews(context.Background(), &leagueRepo.AppendNewsInput{
			LeagueID: leagueID,
			Item:     item,
		})
		s.mu.Unlock()
		// The league may have been abandoned while the headline was written.
		if err != nil && !errors.Is(err, leagueRepo.ErrLeagueNotFound) {
			logging.Error(s.logger, "failed to add headline", err, logging.FieldLeagueID, leagueID)
		}
	}()
}
