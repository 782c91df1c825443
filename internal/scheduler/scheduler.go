package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"SymbolWatch/internal/calculator"
	"SymbolWatch/internal/collector"
	"SymbolWatch/internal/model"
	"SymbolWatch/internal/notifier"
	"SymbolWatch/internal/watchlist"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// ErrNoData is attached to events of symbols whose fetch returned no samples.
var ErrNoData = errors.New("no samples returned")

// FetchError reports a failed fetch for one symbol.
type FetchError struct {
	Symbol string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Listener receives one event per symbol per refresh cycle.
type Listener interface {
	OnUpdate(evt model.UpdateEvent)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(evt model.UpdateEvent)

func (f ListenerFunc) OnUpdate(evt model.UpdateEvent) { f(evt) }

// State is the lifecycle state of a Scheduler.
type State string

const (
	Stopped State = "STOPPED"
	Running State = "RUNNING"
)

// Options tune the fetch window and the refresh cadence.
type Options struct {
	Period          string        // fetch window, default "1d"
	Interval        string        // sample granularity, default "1m"
	RefreshInterval time.Duration // default 60s
	Concurrency     int           // parallel fetches per cycle, default 1
}

func (o *Options) applyDefaults() {
	if o.Period == "" {
		o.Period = "1d"
	}
	if o.Interval == "" {
		o.Interval = "1m"
	}
	if o.RefreshInterval <= 0 {
		o.RefreshInterval = 60 * time.Second
	}
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
}

// CycleReport summarises one refresh cycle.
type CycleReport struct {
	Started     time.Time
	Finished    time.Time
	Updated     int
	Unavailable int
	Failed      int
	Events      []model.UpdateEvent
}

// Scheduler periodically refreshes every watchlist entry.
type Scheduler struct {
	Store   *watchlist.Store
	Fetcher collector.Fetcher
	Opts    Options

	parent    context.Context
	mu        sync.Mutex // guards state, cron, cancel, listeners
	state     State
	cron      *cron.Cron
	ctx       context.Context
	cancel    context.CancelFunc
	listeners []Listener

	cycleMu sync.Mutex // one cycle at a time
}

// NewScheduler creates a new Scheduler. ctx bounds every cycle it runs.
func NewScheduler(ctx context.Context, store *watchlist.Store, fetcher collector.Fetcher, opts Options) *Scheduler {
	opts.applyDefaults()
	return &Scheduler{
		Store:   store,
		Fetcher: fetcher,
		Opts:    opts,
		parent:  ctx,
		state:   Stopped,
	}
}

// Subscribe registers l for update events.
func (s *Scheduler) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// State returns the lifecycle state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start runs one refresh cycle, then schedules a cycle every RefreshInterval.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	if s.state == Running {
		s.mu.Unlock()
		return errors.New("scheduler already running")
	}
	s.ctx, s.cancel = context.WithCancel(s.parent)
	ctx := s.ctx
	logger := cron.PrintfLogger(log.Default())
	s.cron = cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	s.cron.Schedule(cron.Every(s.Opts.RefreshInterval), cron.FuncJob(func() { s.refreshTask(ctx) }))
	s.state = Running
	s.mu.Unlock()

	s.refreshTask(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Running || s.ctx != ctx {
		// Stopped while the first cycle ran.
		return nil
	}
	s.cron.Start()
	log.Printf("[INFO] scheduler started: %d symbols every %v", s.Store.Len(), s.Opts.RefreshInterval)
	return nil
}

// Stop stops the scheduler and waits for a running cycle to return.
// A cycle in progress ends before its next symbol.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return
	}
	s.state = Stopped
	s.cancel()
	c := s.cron
	s.mu.Unlock()

	<-c.Stop().Done()
	// The first cycle runs outside cron; wait for it too.
	s.cycleMu.Lock()
	s.cycleMu.Unlock()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) refreshTask(ctx context.Context) {
	rep := s.RefreshNow(ctx)
	log.Printf("[INFO] refresh cycle done in %v: %d updated, %d unavailable, %d failed",
		rep.Finished.Sub(rep.Started).Round(time.Millisecond), rep.Updated, rep.Unavailable, rep.Failed)
}

// RefreshNow runs one full refresh cycle over all symbols in declaration order.
// It never fails as a whole: per-symbol outcomes are in the report and the
// events sent to listeners. If ctx is cancelled the remaining symbols are skipped.
func (s *Scheduler) RefreshNow(ctx context.Context) *CycleReport {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	rep := &CycleReport{Started: time.Now()}
	symbols := s.Store.Symbols()

	if s.Opts.Concurrency <= 1 {
		for _, sym := range symbols {
			if ctx.Err() != nil {
				log.Printf("[WARN] refresh cycle aborted before %s: %v", sym, ctx.Err())
				break
			}
			s.emit(rep, s.refreshSymbol(ctx, sym))
		}
	} else {
		results := make([]*model.UpdateEvent, len(symbols))
		g := new(errgroup.Group)
		g.SetLimit(s.Opts.Concurrency)
		for i, sym := range symbols {
			if ctx.Err() != nil {
				log.Printf("[WARN] refresh cycle aborted before %s: %v", sym, ctx.Err())
				break
			}
			g.Go(func() error {
				evt := s.refreshSymbol(ctx, sym)
				results[i] = &evt
				return nil
			})
		}
		g.Wait()
		for _, evt := range results {
			if evt != nil {
				s.emit(rep, *evt)
			}
		}
	}

	rep.Finished = time.Now()
	return rep
}

// refreshSymbol fetches one symbol and stores the outcome.
func (s *Scheduler) refreshSymbol(ctx context.Context, symbol string) model.UpdateEvent {
	evt := model.UpdateEvent{Symbol: symbol, DisplayText: model.NotAvailable}

	series, err := s.fetch(ctx, symbol)
	switch {
	case err != nil:
		evt.Status = model.StatusFailed
		evt.Err = &FetchError{Symbol: symbol, Err: err}
		log.Printf("[WARN] %v", evt.Err)
	case series.Empty():
		evt.Status = model.StatusUnavailable
		evt.Err = ErrNoData
		log.Printf("[WARN] %s: %v", symbol, ErrNoData)
	default:
		if err := s.Store.Replace(symbol, series.Samples, series.Currency); err != nil {
			evt.Status = model.StatusFailed
			evt.Err = err
			log.Printf("[ERROR] store %s: %v", symbol, err)
			break
		}
		last, _ := calculator.LastClose(series.Samples)
		evt.Status = model.StatusUpdated
		evt.LatestClose = last
		evt.Currency = series.Currency
		evt.DisplayText = notifier.FormatPrice(last)
	}

	if evt.Status != model.StatusUpdated {
		if err := s.Store.MarkUnavailable(symbol); err != nil {
			log.Printf("[ERROR] store %s: %v", symbol, err)
		}
	}
	evt.At = time.Now()
	return evt
}

// fetch calls the fetcher, turning a panic into an error so that one
// symbol cannot take the process down.
func (s *Scheduler) fetch(ctx context.Context, symbol string) (series *model.PriceSeries, err error) {
	defer func() {
		if r := recover(); r != nil {
			series, err = nil, fmt.Errorf("fetcher panic: %v", r)
		}
	}()
	return s.Fetcher.FetchSeries(ctx, symbol, s.Opts.Period, s.Opts.Interval)
}

func (s *Scheduler) emit(rep *CycleReport, evt model.UpdateEvent) {
	switch evt.Status {
	case model.StatusUpdated:
		rep.Updated++
	case model.StatusUnavailable:
		rep.Unavailable++
	default:
		rep.Failed++
	}
	rep.Events = append(rep.Events, evt)

	s.mu.Lock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()
	for _, l := range listeners {
		l.OnUpdate(evt)
	}
}
