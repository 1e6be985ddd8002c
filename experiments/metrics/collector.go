package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Workers          int
	Determinizations int
	Cutoff           int
	Duration         time.Duration
	Episodes         int
	FullPlayouts     int
	FellBack         bool
}

type MoveMetric struct {
	Round int
	Trick int
	Seat  int
	Card  string
	SearchMetric
}

type GameMetric struct {
	Dealer     int
	Winner     string // Team name
	Scores     [2]int
	Rounds     int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(workers, cutoff, determinizations int)
	AddFullPlayout()
	AddEpisode()
	SetFallback(value bool)
	Complete() SearchMetric
}

type collector struct {
	workers          int
	cutoff           int
	determinizations int
	startTime        time.Time
	episodes         atomic.Int32
	fullPlayouts     atomic.Int32
	fellBack         atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new decision.
func (m *collector) Start(workers, cutoff, determinizations int) {
	m.startTime = time.Now()
	m.workers = workers
	m.cutoff = cutoff
	m.determinizations = determinizations
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.fellBack.Store(false)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) SetFallback(value bool) {
	m.fellBack.Store(value)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Workers:          m.workers,
		Determinizations: m.determinizations,
		Cutoff:           m.cutoff,
		Duration:         time.Since(m.startTime),
		Episodes:         int(m.episodes.Load()),
		FullPlayouts:     int(m.fullPlayouts.Load()),
		FellBack:         m.fellBack.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(workers, cutoff, determinizations int) {}
func (m *dummyCollector) AddFullPlayout()                             {}
func (m *dummyCollector) AddEpisode()                                 {}
func (m *dummyCollector) SetFallback(value bool)                      {}
func (m *dummyCollector) Complete() SearchMetric                      { return SearchMetric{} }
