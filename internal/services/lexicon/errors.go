package lexicon

// LexiconError is a custom error type for lexicon errors
type LexiconError string

// Error implements the error interface
func (e LexiconError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     LexiconError = "config cannot be nil"
	ErrNilInput      LexiconError = "input cannot be nil"
	ErrNoWords       LexiconError = "no words available for the requested length"
	ErrInvalidLength LexiconError = "word length must be positive"
)
