package models

// LeaderboardEntry is a player's win tally across rounds
type LeaderboardEntry struct {
	// Player is a snapshot of the player taken at their first win
	Player Player `json:"player"`

	// Wins is the number of rounds the player has won
	Wins int `json:"wins"`
}
