// Package entities holds the domain types shared across repositories and
// orchestrators.
package entities

// Ability score names, in the order they are presented during creation.
const (
	AbilityStrength     = "Strength"
	AbilityDexterity    = "Dexterity"
	AbilityConstitution = "Constitution"
	AbilityIntelligence = "Intelligence"
	AbilityWisdom       = "Wisdom"
	AbilityCharisma     = "Charisma"
)

// AbilityNames lists every ability a finalized character must have a score for.
var AbilityNames = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// Character defaults applied at finalization.
const (
	DefaultLevel         = 1
	DefaultMovementSpeed = 30
	BaseHitPoints        = 10
)

// Character is the durable player-character record. One character per user
// per guild.
type Character struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	GuildID       string         `json:"guild_id"`
	Name          string         `json:"name"`
	Gender        string         `json:"gender"`
	Pronouns      string         `json:"pronouns"`
	Species       string         `json:"species"`
	Class         string         `json:"class"`
	Description   string         `json:"description"`
	Level         int            `json:"level"`
	MovementSpeed int            `json:"movement_speed"`
	CurrentHP     int            `json:"current_hp"`
	MaxHP         int            `json:"max_hp"`
	Stats         map[string]int `json:"stats"`
	CreatedAt     int64          `json:"created_at"`
	UpdatedAt     int64          `json:"updated_at"`
}

// AbilityModifier returns the modifier for one of the character's abilities,
// 0 if the ability has no recorded score.
func (c *Character) AbilityModifier(ability string) int {
	score, ok := c.Stats[ability]
	if !ok {
		return 0
	}
	// Standard (score-10)/2, rounding toward negative infinity
	mod := score - 10
	if mod < 0 {
		mod--
	}
	return mod / 2
}

// PartyMember returns the lightweight summary embedded in party records.
func (c *Character) PartyMember() PartyMember {
	return PartyMember{
		UserID:        c.UserID,
		Name:          c.Name,
		Class:         c.Class,
		Level:         c.Level,
		MovementSpeed: c.MovementSpeed,
	}
}
