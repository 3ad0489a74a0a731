package logging

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/fridaynight/internal/models"
)

// Info logs at info level. A nil logger drops the record.
func Info(logger *slog.Logger, msg string, args ...any) {
	emit(logger, slog.LevelInfo, msg, args)
}

// Warn logs at warn level. A nil logger drops the record.
func Warn(logger *slog.Logger, msg string, args ...any) {
	emit(logger, slog.LevelWarn, msg, args)
}

// Error logs at error level with err under FieldError.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, FieldError, err)
	}
	emit(logger, slog.LevelError, msg, args)
}

// Transition logs a league moving through its calendar, tagged with where
// the league landed.
func Transition(logger *slog.Logger, msg, leagueID string, season models.SeasonState, args ...any) {
	args = append([]any{
		FieldLeagueID, leagueID,
		FieldYear, season.Year,
		FieldWeek, season.Week,
		FieldPhase, season.Phase,
	}, args...)
	emit(logger, slog.LevelInfo, msg, args)
}

// ForInteraction scopes a logger to one slash command or button press in a
// league's channel. It returns nil for a nil logger.
func ForInteraction(logger *slog.Logger, command, leagueID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(FieldCommand, command, FieldLeagueID, leagueID)
}

func emit(logger *slog.Logger, level slog.Level, msg string, args []any) {
	if logger == nil {
		return
	}
	logger.Log(context.Background(), level, msg, args...)
}
