package models

// Definition is a dictionary lookup result for a word
type Definition struct {
	// Meanings lists the senses of the word
	Meanings []string `json:"meanings"`

	// Examples lists usage examples
	Examples []string `json:"examples"`
}
