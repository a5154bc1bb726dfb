package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes how an agent picked one move.
type SearchMetric struct {
	Agent      string
	Duration   time.Duration
	Candidates int // moves considered
	Scored     int // moves evaluated with a heuristic

	Episodes     int // search iterations
	FullPlayouts int // rollouts that reached the end of the game
	TreeReused   bool
}

type MoveMetric struct {
	Step     int
	Round    int
	Phase    string
	Player   int // seat
	Move     string
	Rejected bool // the agent's own move was illegal and a fallback was played
	SearchMetric
}

type GameMetric struct {
	Seed       uint64
	Players    int
	Winners    string // names, comma separated
	Rounds     int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Rejected   int
}

type Collector interface {
	Start(agent string)
	AddCandidates(n int)
	AddScored()
	AddEpisode()
	AddFullPlayout()
	ReusedTree()
	Complete() SearchMetric
}

type collector struct {
	agent      string
	startTime  time.Time
	candidates atomic.Int32
	scored     atomic.Int32

	episodes     atomic.Int64
	fullPlayouts atomic.Int64
	treeReused   atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(agent string) {
	m.startTime = time.Now()
	m.agent = agent
	m.candidates.Store(0)
	m.scored.Store(0)
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.treeReused.Store(false)
}

func (m *collector) AddCandidates(n int) {
	m.candidates.Add(int32(n))
}

func (m *collector) AddScored() {
	m.scored.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) ReusedTree() {
	m.treeReused.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Agent:        m.agent,
		Duration:     time.Since(m.startTime),
		Candidates:   int(m.candidates.Load()),
		Scored:       int(m.scored.Load()),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		TreeReused:   m.treeReused.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(agent string)     {}
func (m *dummyCollector) AddCandidates(n int)    {}
func (m *dummyCollector) AddScored()             {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddFullPlayout()        {}
func (m *dummyCollector) ReusedTree()            {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
