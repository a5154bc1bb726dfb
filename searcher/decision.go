package searcher

import (
	"math"
	"sync"

	"github.com/wtheisen/notorious/game"
)

// decision is a tree node for the state reached by playing one move. Rewards
// are kept from the point of view of the seat that played that move.
type decision struct {
	sync.Mutex
	parent   *decision
	mover    int // -1 at the root
	hash     game.StateHash
	moves    []game.Move
	children []*decision
	rewards  float64
	visits   int
}

func newDecision(parent *decision, mover int, state *game.GameState) *decision {
	moves := state.LegalMoves()
	return &decision{
		parent:   parent,
		mover:    mover,
		hash:     state.Hash(),
		moves:    moves,
		children: make([]*decision, 0, len(moves)),
	}
}

// selectOrExpand adds the next unexplored child if there is one, otherwise
// descends into the child with the best UCB score. A terminal node returns
// itself.
func (d *decision) selectOrExpand(state *game.GameState) (*decision, *game.GameState, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.moves) > len(d.children) { // Expandable node
		move := d.moves[len(d.children)]
		next := play(state, move)
		child := newDecision(d, move.Actor(), next)
		d.children = append(d.children, child)
		child.applyLoss()
		return child, next, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	child.applyLoss()
	return child, play(state, d.moves[ith]), true
}

func (d *decision) pickChild() int {
	// Children carry virtual losses before the root has seen a backup
	normalizer := C_SQUARED * math.Log(float64(max(d.visits, 1)))

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += LOSS
	d.visits++
}

func (d *decision) score(normalizer float64) float64 {
	d.Lock()
	defer d.Unlock()

	return ucb1(d.rewards, d.visits, normalizer)
}

// backup replaces the virtual loss with the real reward and returns the
// parent.
func (d *decision) backup(reward func(seat int) float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.rewards -= LOSS
		d.visits--
	}
	if d.mover >= 0 {
		d.rewards += reward(d.mover)
	}
	d.visits++
	return d.parent
}

func (d *decision) value() int {
	d.Lock()
	defer d.Unlock()

	return d.visits
}

// Choice is a root move and the number of episodes that went through it.
type Choice struct {
	Move   game.Move
	Visits int
}

func (d *decision) policy() []Choice {
	d.Lock()
	defer d.Unlock()

	choices := make([]Choice, len(d.children))
	for i, child := range d.children {
		choices[i] = Choice{Move: d.moves[i], Visits: child.value()}
	}
	return choices
}

// best returns the index of the most visited child, or -1 without children.
func (d *decision) best() int {
	d.Lock()
	defer d.Unlock()

	bestIndex := -1
	maxValue := -1
	for i, child := range d.children {
		if v := child.value(); v > maxValue {
			maxValue = v
			bestIndex = i
		}
	}
	return bestIndex
}

func play(state *game.GameState, move game.Move) *game.GameState {
	return state.Play(move).(*game.GameState)
}
