package game

import (
	"fmt"
	"hash/fnv"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/wtheisen/notorious/hex"
)

type Phase int

const (
	SetupPhase Phase = iota
	PlacePhase
	PlayPhase
	PiratePhase
)

var phaseNames = map[Phase]string{
	SetupPhase:  "setup",
	PlacePhase:  "place",
	PlayPhase:   "play",
	PiratePhase: "pirate",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

type TurnDirection int

const (
	Forward TurnDirection = iota
	Reverse
)

func (d TurnDirection) step() int {
	if d == Reverse {
		return -1
	}
	return 1
}

// Round tracks where the game is in its phase cycle.
type Round struct {
	Phase      Phase         `yaml:"phase"`
	Number     int           `yaml:"number"`
	Direction  TurnDirection `yaml:"direction"`
	First      int           `yaml:"first"`       // seat that opens each phase of this round
	Active     int           `yaml:"active"`      // seat whose turn it is
	WindHolder int           `yaml:"wind_holder"` // -1 when nobody holds the token
	Passed     []bool        `yaml:"passed,flow"` // pirate turns already taken
	FinalRound bool          `yaml:"final_round"`
	Ended      bool          `yaml:"ended"`
}

// Seat describes a player joining a new game.
type Seat struct {
	Name  string  `yaml:"name"`
	Power PowerID `yaml:"power"`
}

// GameState is the single authoritative game value. It is plain nested data;
// the only non-data fields are the injected shuffler and the last move.
type GameState struct {
	Rules    Rules    `yaml:"rules"`
	Board    Board    `yaml:"board"`
	Players  []Player `yaml:"players"`
	Deck     Deck     `yaml:"deck"`
	Round    Round    `yaml:"round"`
	LastMove Move     `yaml:"-"`
	Shuffler Shuffler `yaml:"-"`
}

// NewGameState seats the players and lays out the board and deck. The game
// starts in the setup phase with the first seat to act.
func NewGameState(seats []Seat, rules Rules, layout Layout, shuffler Shuffler) (*GameState, error) {
	if len(seats) < 2 {
		return nil, fmt.Errorf("new game: need at least two players, got %d", len(seats))
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	board, err := layout.Board()
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	players := make([]Player, len(seats))
	for i, seat := range seats {
		if _, err := LookupPower(seat.Power); err != nil {
			return nil, fmt.Errorf("new game: seat %d: %w", i, err)
		}
		name := seat.Name
		if name == "" {
			name = fmt.Sprintf("Player%d", i+1)
		}
		players[i] = Player{
			ID:           i,
			Name:         name,
			Power:        seat.Power,
			Doubloons:    rules.StartingDoubloons,
			CaptainSlots: rules.StartingCaptains,
			Sloops:       rules.StartingSloops,
			Galleons:     rules.StartingGalleons,
		}
	}

	gs := &GameState{
		Rules:   rules.Copy(),
		Board:   board,
		Players: players,
		Deck:    layout.Deck(rules, shuffler),
		Round: Round{
			Phase:      SetupPhase,
			Number:     0,
			WindHolder: -1,
			Passed:     make([]bool, len(seats)),
		},
		Shuffler: shuffler,
	}
	return gs, nil
}

// Copy returns a deep copy. The shuffler is shared.
func (gs *GameState) Copy() *GameState {
	players := make([]Player, len(gs.Players))
	for i, p := range gs.Players {
		players[i] = p.Copy()
	}
	round := gs.Round
	round.Passed = append([]bool(nil), gs.Round.Passed...)

	return &GameState{
		Rules:    gs.Rules.Copy(),
		Board:    gs.Board.Copy(),
		Players:  players,
		Deck:     gs.Deck.Copy(),
		Round:    round,
		LastMove: gs.LastMove,
		Shuffler: gs.Shuffler,
	}
}

// Validate reports why m cannot be played now, or nil.
func (gs *GameState) Validate(m Move) error {
	return m.Validate(gs)
}

// Execute validates m and, if it is legal, returns the state after it. gs is
// never modified; on a rejected move the same gs is returned with the error.
func (gs *GameState) Execute(m Move) (*GameState, Outcome, error) {
	if err := m.Validate(gs); err != nil {
		return gs, Outcome{}, err
	}
	next := gs.Copy()
	out := m.apply(next)
	if m.endsTurn() {
		next.endTurn()
	}
	next.LastMove = m
	next.checkInvariants()
	return next, out, nil
}

// Play applies a move known to be legal. It panics on an illegal move.
func (gs *GameState) Play(m Move) State {
	next, _, err := gs.Execute(m)
	if err != nil {
		panic(err)
	}
	return next
}

// Player returns the name of the player to act.
func (gs *GameState) Player() string {
	return gs.Players[gs.Round.Active].Name
}

// Active returns the seat of the player to act.
func (gs *GameState) Active() int {
	return gs.Round.Active
}

// Ended reports whether the game is over.
func (gs *GameState) Ended() bool {
	return gs.Round.Ended
}

// Winner returns the name of the sole winner, or "" while the game runs or
// when the top standing is shared.
func (gs *GameState) Winner() string {
	if !gs.Round.Ended {
		return ""
	}
	winners := gs.Winners()
	if len(winners) != 1 {
		return ""
	}
	return gs.Players[winners[0]].Name
}

// Winners returns every seat tied for first place once the game is over.
func (gs *GameState) Winners() []int {
	if !gs.Round.Ended {
		return nil
	}
	standings := gs.Standings()
	top := gs.Players[standings[0]]
	var winners []int
	for _, id := range standings {
		p := gs.Players[id]
		if p.Notoriety != top.Notoriety || p.Doubloons != top.Doubloons {
			break
		}
		winners = append(winners, id)
	}
	return winners
}

// Standings orders seats by notoriety, then doubloons, then seat.
func (gs *GameState) Standings() []int {
	ids := make([]int, len(gs.Players))
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := gs.Players[ids[i]], gs.Players[ids[j]]
		if a.Notoriety != b.Notoriety {
			return a.Notoriety > b.Notoriety
		}
		return a.Doubloons > b.Doubloons
	})
	return ids
}

// PlayerByID returns a copy of seat id.
func (gs *GameState) PlayerByID(id int) (Player, bool) {
	if id < 0 || id >= len(gs.Players) {
		return Player{}, false
	}
	return gs.Players[id].Copy(), true
}

// BoardSnapshot returns a copy of the board.
func (gs *GameState) BoardSnapshot() Board {
	return gs.Board.Copy()
}

// DeckSnapshot returns a copy of the deck.
func (gs *GameState) DeckSnapshot() Deck {
	return gs.Deck.Copy()
}

// Controller returns the controlling seat of c.
func (gs *GameState) Controller(c hex.Coord) (int, bool) {
	return gs.Board.Controller(c)
}

// Hash fingerprints the data of the state.
func (gs *GameState) Hash() StateHash {
	data, err := yaml.Marshal(gs)
	if err != nil {
		panic(fmt.Sprintf("hash state: %v", err))
	}
	hasher := fnv.New64a()
	hasher.Write(data)
	return StateHash(hasher.Sum64())
}

// Marshal encodes the state as YAML.
func (gs *GameState) Marshal() ([]byte, error) {
	return yaml.Marshal(gs)
}

// Unmarshal decodes a state produced by Marshal. The caller injects the
// shuffler again.
func Unmarshal(data []byte, shuffler Shuffler) (*GameState, error) {
	var gs GameState
	if err := yaml.Unmarshal(data, &gs); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if len(gs.Board.Cells) != grid.Len() {
		return nil, fmt.Errorf("decode state: board has %d cells, want %d", len(gs.Board.Cells), grid.Len())
	}
	gs.Shuffler = shuffler
	return &gs, nil
}

func (gs *GameState) player(id int) *Player {
	return &gs.Players[id]
}

// Influence returns owner's summed influence at c.
func (gs *GameState) Influence(c hex.Coord, owner int) int {
	return gs.Board.Influence(c, owner)
}
