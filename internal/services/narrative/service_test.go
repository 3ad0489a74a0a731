package narrative

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/fridaynight/internal/metrics"
	"github.com/KirkDiggler/fridaynight/internal/providers/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NarrativeServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockGenerator *mocks.MockGenerator
	service       *service
	ctx           context.Context
}

func (s *NarrativeServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGenerator = mocks.NewMockGenerator(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{
		Generator: s.mockGenerator,
		Metrics:   metrics.NewRecorder(),
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestNarrativeServiceSuite(t *testing.T) {
	suite.Run(t, new(NarrativeServiceTestSuite))
}

func (s *NarrativeServiceTestSuite) TestNewNilConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)
}

func (s *NarrativeServiceTestSuite) TestGameHeadlineUsesGeneratedText() {
	s.mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, prompt string) (string, error) {
			s.Contains(prompt, "Westside 28 - 14 Central")
			s.Contains(prompt, "one-sentence high school sports headline")
			return "  Westside roars past Central under the lights!\n", nil
		})

	out, err := s.service.GetGameHeadline(s.ctx, &GetGameHeadlineInput{Result: "Westside 28 - 14 Central"})
	s.Require().NoError(err)

	s.Equal("Westside roars past Central under the lights!", out.Headline)
	s.True(out.Generated)
}

func (s *NarrativeServiceTestSuite) TestGameHeadlineFallsBackOnError() {
	s.mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("", errors.New("quota exceeded"))

	out, err := s.service.GetGameHeadline(s.ctx, &GetGameHeadlineInput{Result: "Westside 28 - 14 Central"})
	s.Require().NoError(err)

	s.Equal(FallbackFailed, out.Headline)
	s.False(out.Generated)
}

func (s *NarrativeServiceTestSuite) TestGameHeadlineFallsBackOnEmptyText() {
	s.mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("   ", nil)

	out, err := s.service.GetGameHeadline(s.ctx, &GetGameHeadlineInput{Result: "Westside 28 - 14 Central"})
	s.Require().NoError(err)

	s.Equal(FallbackEmpty, out.Headline)
	s.False(out.Generated)
}

func (s *NarrativeServiceTestSuite) TestSeasonTeaserPromptNamesTeam() {
	s.mockGenerator.EXPECT().
		Generate(gomock.Any(), "Write a one-sentence teaser for the upcoming high school football season for Westside Wolverines.").
		Return("The Wolverines are hungry.", nil)

	out, err := s.service.GetSeasonTeaser(s.ctx, &GetSeasonTeaserInput{TeamName: "Westside", Mascot: "Wolverines"})
	s.Require().NoError(err)

	s.Equal("The Wolverines are hungry.", out.Headline)
	s.True(out.Generated)
}

func (s *NarrativeServiceTestSuite) TestNilInput() {
	_, err := s.service.GetGameHeadline(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.GetSeasonTeaser(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *NarrativeServiceTestSuite) TestWithoutGeneratorAlwaysFallsBack() {
	svc, err := New(&Config{})
	s.Require().NoError(err)

	out, err := svc.GetSeasonTeaser(s.ctx, &GetSeasonTeaserInput{TeamName: "Westside"})
	s.Require().NoError(err)

	s.Equal(FallbackFailed, out.Headline)
	s.False(out.Generated)
}
