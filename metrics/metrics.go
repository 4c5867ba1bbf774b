package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	BetsLogged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betbook_straight_bets_logged_total",
		Help: "Straight bets logged.",
	})

	ParlaysLogged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betbook_parlays_logged_total",
		Help: "Parlays logged.",
	})

	Gradings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "betbook_gradings_total",
		Help: "Grading events by outcome.",
	}, []string{"result"})

	GradingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betbook_grading_conflicts_total",
		Help: "Grading attempts rejected because the record was already graded.",
	})

	LeaderboardBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betbook_leaderboard_builds_total",
		Help: "Leaderboard aggregations computed.",
	})

	OddsFetches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betbook_odds_fetches_total",
		Help: "Calls made to The Odds API.",
	})

	OddsCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betbook_odds_cache_hits_total",
		Help: "Odds lookups served from the TTL cache.",
	})
)

// Serve starts the health and metrics endpoints. Blocks; run in a goroutine.
func Serve(addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("metrics server listening", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("metrics server failed", zap.Error(err))
	}
}
