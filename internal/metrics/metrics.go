package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts league activity. A nil Recorder drops everything so
// callers never need to check.
type Recorder struct {
	registry *prometheus.Registry

	gamesSimulated    *prometheus.CounterVec
	weeksAdvanced     *prometheus.CounterVec
	seasonsAdvanced   *prometheus.CounterVec
	narrativeRequests *prometheus.CounterVec
	recruitingPoints  prometheus.Counter
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		gamesSimulated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_simulated_total",
			Help:      "Games simulated, by league variant.",
		}, []string{LabelVariant}),
		weeksAdvanced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weeks_advanced_total",
			Help:      "Regular season weeks advanced, by league variant.",
		}, []string{LabelVariant}),
		seasonsAdvanced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seasons_advanced_total",
			Help:      "Offseasons completed, by league variant.",
		}, []string{LabelVariant}),
		narrativeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "narrative_requests_total",
			Help:      "Headline requests, by kind and whether the model produced the text.",
		}, []string{LabelKind, LabelOutcome}),
		recruitingPoints: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recruiting_points_spent_total",
			Help:      "Recruiting points spent by coaches.",
		}),
	}
	reg.MustRegister(r.gamesSimulated, r.weeksAdvanced, r.seasonsAdvanced, r.narrativeRequests, r.recruitingPoints)
	return r
}

func (r *Recorder) RecordGamesSimulated(variant string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.gamesSimulated.WithLabelValues(variant).Add(float64(n))
}

func (r *Recorder) RecordWeekAdvanced(variant string) {
	if r == nil {
		return
	}
	r.weeksAdvanced.WithLabelValues(variant).Inc()
}

func (r *Recorder) RecordSeasonAdvanced(variant string) {
	if r == nil {
		return
	}
	r.seasonsAdvanced.WithLabelValues(variant).Inc()
}

// RecordNarrative counts one headline request. generated is false when the
// fallback line was used.
func (r *Recorder) RecordNarrative(kind string, generated bool) {
	if r == nil {
		return
	}
	outcome := OutcomeFallback
	if generated {
		outcome = OutcomeGenerated
	}
	r.narrativeRequests.WithLabelValues(kind, outcome).Inc()
}

func (r *Recorder) RecordRecruitingPoints(points int) {
	if r == nil || points <= 0 {
		return
	}
	r.recruitingPoints.Add(float64(points))
}

// Handler serves the recorder's metrics in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
