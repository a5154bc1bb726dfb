package engine

import (
	"github.com/wtheisen/notorious/meta"
	"github.com/wtheisen/notorious/metrics"
)

const MaxMoves = meta.MAX_TURNS

type Runner interface {
	// Run plays a game until it ends or the move cap is reached
	Run() (winners []int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
