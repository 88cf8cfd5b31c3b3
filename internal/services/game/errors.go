package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      GameError = "config cannot be nil"
	ErrNilLexicon     GameError = "lexicon service cannot be nil"
	ErrNilLeaderboard GameError = "leaderboard service cannot be nil"
	ErrNilMessaging   GameError = "messaging service cannot be nil"
	ErrNilSource      GameError = "chat source cannot be nil"
	ErrNilClock       GameError = "clock cannot be nil"
	ErrNilUUID        GameError = "UUID generator cannot be nil"
	ErrNilInput       GameError = "input cannot be nil"
	ErrNotRunning     GameError = "game loop is not running"
	ErrAlreadyRunning GameError = "game loop is already running"
)
