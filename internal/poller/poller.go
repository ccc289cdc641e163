package poller

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"nsqtop/internal/aggregators"
	"nsqtop/internal/display"
	"nsqtop/internal/lookup"
	"nsqtop/internal/models"
	"nsqtop/internal/shared/loggers"
	"nsqtop/internal/shared/metrics"
	"nsqtop/internal/shared/svcerrors"
	"nsqtop/internal/stats"
	"nsqtop/internal/stores"
)

// Poller drives the cycle loop: resolve brokers, fetch their stats,
// aggregate, derive rates against the previous cycle, rank, record the
// trend sample and hand the frame to the renderer. It is the sole owner of
// the cross-cycle state (previous snapshot and in-flight history).
type Poller struct {
	resolver       lookup.Resolver
	fetcher        stats.Fetcher
	aggregator     aggregators.Aggregator
	rateCalculator aggregators.RateCalculator
	cycleStore     *stores.CycleStore
	history        *stores.InFlightHistory
	renderer       display.Renderer

	lookupAddresses []string
	interval        time.Duration
	thresholds      display.Thresholds

	logger loggers.Logger
	now    func() time.Time
}

type Options struct {
	Resolver        lookup.Resolver
	Fetcher         stats.Fetcher
	Renderer        display.Renderer
	LookupAddresses []string
	Interval        time.Duration
	Thresholds      display.Thresholds
	HistoryLength   int
	Logger          loggers.Logger
}

func New(opts Options) *Poller {
	return &Poller{
		resolver:        opts.Resolver,
		fetcher:         opts.Fetcher,
		aggregator:      aggregators.NewAggregator(),
		rateCalculator:  aggregators.NewRateCalculator(),
		cycleStore:      stores.NewCycleStore(),
		history:         stores.NewInFlightHistory(opts.HistoryLength),
		renderer:        opts.Renderer,
		lookupAddresses: opts.LookupAddresses,
		interval:        opts.Interval,
		thresholds:      opts.Thresholds,
		logger:          opts.Logger,
		now:             time.Now,
	}
}

// Run executes cycles until ctx is cancelled. The first cycle runs
// immediately; later ones follow the configured interval. Run never fails:
// every cycle-level error ends up on screen, not in the return value.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.RunCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.RunCycle(ctx)
		}
	}
}

// RunCycle performs one resolve → fetch → aggregate → rate → rank → render
// pass.
func (p *Poller) RunCycle(ctx context.Context) {
	cycleStart := p.now()
	cycleLogger := p.logger.With().
		Str(loggers.FieldCycleID, ulid.Make().String()).
		Logger()
	ctx = cycleLogger.WithContext(ctx)

	endpoints, err := p.resolver.Resolve(ctx)
	if err != nil {
		p.renderFailure(ctx, err)
		return
	}

	documents := p.fetcher.FetchAll(ctx, endpoints)
	current := p.aggregator.Aggregate(documents)

	previous, elapsed := p.cycleStore.Swap(current, p.now())
	p.rateCalculator.Apply(current, previous, elapsed, p.interval)

	ranked := aggregators.Rank(current)
	p.history.Append(current.TotalInFlight)

	totalDepth := sumDepth(ranked)
	p.observeCycle(endpoints, current, ranked, totalDepth)

	width, height := p.renderer.Size()
	frame := display.BuildFrame(display.FrameInput{
		Channels:        ranked,
		TotalDepth:      totalDepth,
		TotalInFlight:   current.TotalInFlight,
		History:         p.history.Values(),
		LookupAddresses: p.lookupAddresses,
		Width:           width,
		Height:          height,
		Now:             p.now(),
		Thresholds:      p.thresholds,
	})
	p.renderer.Render(frame)

	metricPollCyclesTotal.WithLabelValues(metrics.ValueNoError).Inc()
	cycleLogger.Debug().
		Int64(loggers.FieldDuration, p.now().Sub(cycleStart).Milliseconds()).
		Int("brokers", len(endpoints)).
		Int("channels", len(ranked)).
		Msg("cycle completed")
}

// renderFailure handles a total resolution failure: the banner replaces the
// table, the trend window still moves with a zero sample, and the previous
// snapshot is dropped so the next successful cycle starts rates from a
// fresh baseline.
func (p *Poller) renderFailure(ctx context.Context, err error) {
	message := err.Error()
	errorCode := ""
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		message = svcErr.Message
		errorCode = svcErr.Code
	}

	p.cycleStore.Reset()
	p.history.Append(0)
	metricPollCyclesTotal.WithLabelValues(errorCode).Inc()

	loggers.Ctx(ctx).Warn().
		Str(loggers.FieldErrorCode, errorCode).
		Msg("resolution failed for all lookupd addresses")

	width, height := p.renderer.Size()
	frame := display.BuildFrame(display.FrameInput{
		LookupAddresses: p.lookupAddresses,
		Err:             message,
		Width:           width,
		Height:          height,
		Now:             p.now(),
		Thresholds:      p.thresholds,
	})
	p.renderer.Render(frame)
}

func sumDepth(channels []*models.AggregatedChannel) int64 {
	var total int64
	for _, channel := range channels {
		total += channel.Depth
	}
	return total
}

func (p *Poller) observeCycle(endpoints []models.BrokerEndpoint, snapshot *models.CycleSnapshot, ranked []*models.AggregatedChannel, totalDepth int64) {
	metricPollBrokers.Set(float64(len(endpoints)))
	metricPollChannels.Set(float64(len(ranked)))
	metricPollTotalDepth.Set(float64(totalDepth))
	metricPollTotalInFlight.Set(float64(snapshot.TotalInFlight))
}
