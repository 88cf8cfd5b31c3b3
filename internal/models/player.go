package models

// Player is a chat participant as reported by the chat source
type Player struct {
	// ID is the stable unique identifier of the player on the chat platform
	ID string `json:"id"`

	// DisplayName is the name shown for the player
	DisplayName string `json:"displayName"`

	// AvatarURL references the player's profile picture
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Snapshot returns a copy of the player that later changes cannot affect
func (p *Player) Snapshot() Player {
	if p == nil {
		return Player{}
	}
	return *p
}
