// meta/meta.go
package meta

// MAX_TURNS caps the number of moves a driven game may take.
const MAX_TURNS = 2000

// DEFAULT_SEED seeds the chart shuffle and the bots when none is configured.
const DEFAULT_SEED = 1

// MIN_PLAYERS and MAX_PLAYERS bound the table size a scenario may seat.
const (
	MIN_PLAYERS = 2
	MAX_PLAYERS = 4
)

// UPDATE_BUFFER is the capacity of the local engine's update channel.
const UPDATE_BUFFER = 1
