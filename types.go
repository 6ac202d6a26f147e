// types.go
// --------
// Domain records exchanged with the API. The *Create and *Update types
// carry validation tags checked client-side before serialization.
package questdeck

import "time"

// Company is a tenant: every user and campaign belongs to one.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyCreate is the payload for creating a company.
type CompanyCreate struct {
	Name string `json:"name" validate:"required"`
	Plan string `json:"plan,omitempty"`
}

// CompanyUpdate is the partial-update payload for a company.
type CompanyUpdate struct {
	Name *string `json:"name,omitempty"`
	Plan *string `json:"plan,omitempty"`
}

// User is a member of a company.
type User struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreate is the payload for inviting a user into a company.
type UserCreate struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=owner gamemaster player"`
}

// UserUpdate is the partial-update payload for a user.
type UserUpdate struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty" validate:"omitempty,oneof=owner gamemaster player"`
}

// Campaign is one ongoing game run by a company.
type Campaign struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	GameSystem  string    `json:"game_system"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CampaignCreate is the payload for starting a campaign.
type CampaignCreate struct {
	Name        string `json:"name" validate:"required"`
	GameSystem  string `json:"game_system" validate:"required"`
	Description string `json:"description,omitempty"`
}

// CampaignUpdate is the partial-update payload for a campaign.
type CampaignUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=draft active paused finished"`
}

// Character is a player or non-player character in a campaign.
type Character struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	PlayerID    string    `json:"player_id,omitempty"`
	Name        string    `json:"name"`
	Class       string    `json:"class"`
	Level       int       `json:"level"`
	HitPoints   int       `json:"hit_points"`
	PortraitURL string    `json:"portrait_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CharacterCreate is the payload for adding a character to a campaign.
type CharacterCreate struct {
	Name      string `json:"name" validate:"required"`
	Class     string `json:"class" validate:"required"`
	Level     int    `json:"level" validate:"gte=1"`
	HitPoints int    `json:"hit_points,omitempty" validate:"gte=0"`
	PlayerID  string `json:"player_id,omitempty"`
}

// CharacterUpdate is the partial-update payload for a character.
type CharacterUpdate struct {
	Name      *string `json:"name,omitempty"`
	Class     *string `json:"class,omitempty"`
	Level     *int    `json:"level,omitempty" validate:"omitempty,gte=1"`
	HitPoints *int    `json:"hit_points,omitempty" validate:"omitempty,gte=0"`
}

// DiceRoll is a resolved roll recorded against a campaign.
type DiceRoll struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	CharacterID string    `json:"character_id,omitempty"`
	Notation    string    `json:"notation"`
	Result      int       `json:"result"`
	Rolls       []int     `json:"rolls"`
	Reason      string    `json:"reason,omitempty"`
	RolledAt    time.Time `json:"rolled_at"`
}

// DiceRollCreate is the payload for rolling dice. Notation follows the
// usual "NdM+K" form, e.g. "2d20+5"; the server resolves the roll.
type DiceRollCreate struct {
	Notation    string `json:"notation" validate:"required"`
	CharacterID string `json:"character_id,omitempty"`
	Reason      string `json:"reason,omitempty"`
}
