// meta/meta.go
package meta

// BoardSize defines the side length of the square board.
const BoardSize = 5

// Komi defines the score offset granted to White for moving second.
const Komi = 2.5

// MaxMoves defines the number of moves after which a game is over.
const MaxMoves = 24
