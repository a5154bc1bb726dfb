package game

// Move is a single engine call made on behalf of one player. The set of moves
// is closed: every implementation lives in this package.
type Move interface {
	// Actor is the seat of the player making the move.
	Actor() int
	// Validate reports why the move cannot be played against gs, or nil.
	Validate(gs *GameState) error

	apply(gs *GameState) Outcome
	endsTurn() bool
}

type StateHash uint64

// State is the view a host or an external move picker has of a game. It is
// immutable - Play always returns a new copy.
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() string
}

// Evaluate scores a state between -1 and 1 from the active player's
// perspective.
type Evaluate func(State) float64
