package entities

// CreationStep is one position in the fixed character-creation wizard.
type CreationStep int

// The wizard's seven steps, in presentation order.
const (
	StepName CreationStep = iota + 1
	StepGender
	StepPronouns
	StepDescription
	StepSpecies
	StepClass
	StepAbilities

	// FinalCreationStep is the last step; Advance clamps here.
	FinalCreationStep = StepAbilities
)

// String returns the display name of the step
func (s CreationStep) String() string {
	switch s {
	case StepName:
		return "Name"
	case StepGender:
		return "Gender"
	case StepPronouns:
		return "Pronouns"
	case StepDescription:
		return "Description"
	case StepSpecies:
		return "Species"
	case StepClass:
		return "Class"
	case StepAbilities:
		return "Abilities"
	default:
		return "Unknown"
	}
}

// Point-buy rules for ability scores.
const (
	PointBuyBudget  = 15
	MinAbilityScore = 8
	MaxAbilityScore = 15
)

// abilityScoreCosts maps a score to its point cost. Scores below 10 refund
// points, which is why the budget can be exceeded by raw sums but never by
// total cost.
var abilityScoreCosts = map[int]int{
	8:  -2,
	9:  -1,
	10: 0,
	11: 1,
	12: 2,
	13: 3,
	14: 5,
	15: 7,
}

// ScoreCost returns the point cost of an ability score. ok is false for
// scores outside the 8..15 point-buy range.
func ScoreCost(score int) (cost int, ok bool) {
	cost, ok = abilityScoreCosts[score]
	return cost, ok
}

// Creation session string field names. These match the attribute labels the
// wizard presents, so the messaging layer can pass them through unchanged.
const (
	FieldName        = "Name"
	FieldGender      = "Gender"
	FieldPronouns    = "Pronouns"
	FieldSpecies     = "Species"
	FieldClass       = "Class"
	FieldDescription = "Description"
)

// CharacterSession is the transient per-user state of one pass through the
// creation wizard. It lives only in process memory; a restart abandons it.
type CharacterSession struct {
	UserID      string
	GuildID     string
	Name        string
	Gender      string
	Pronouns    string
	Species     string
	Class       string
	Description string
	Stats       map[string]int
	PointsSpent int
	CurrentStep CreationStep
	CreatedAt   int64
	UpdatedAt   int64
	ExpiresAt   int64
}

// NewCharacterSession starts a session at the first step with no fields
// collected and every stat unassigned.
func NewCharacterSession(userID, guildID string, now, expiresAt int64) *CharacterSession {
	return &CharacterSession{
		UserID:      userID,
		GuildID:     guildID,
		Stats:       make(map[string]int),
		CurrentStep: StepName,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   expiresAt,
	}
}

// SetField records a collected string field. Returns false for unknown
// field names; stats go through SetStat instead.
func (s *CharacterSession) SetField(field, value string) bool {
	switch field {
	case FieldName:
		s.Name = value
	case FieldGender:
		s.Gender = value
	case FieldPronouns:
		s.Pronouns = value
	case FieldSpecies:
		s.Species = value
	case FieldClass:
		s.Class = value
	case FieldDescription:
		s.Description = value
	default:
		return false
	}
	return true
}

// SetStat assigns an ability score and recomputes the running point total.
// Returns false if the score is outside the point-buy range or the
// allocation would exceed the budget; the session is unchanged in that case.
func (s *CharacterSession) SetStat(ability string, score int) bool {
	if _, ok := ScoreCost(score); !ok {
		return false
	}

	prev := s.Stats[ability]
	s.Stats[ability] = score
	total, ok := s.AllocationCost()
	if !ok || total > PointBuyBudget {
		// Roll back
		if prev == 0 {
			delete(s.Stats, ability)
		} else {
			s.Stats[ability] = prev
		}
		return false
	}

	s.PointsSpent = total
	return true
}

// AllocationCost sums the point cost of every assigned stat. ok is false if
// any assigned score is outside the point-buy range.
func (s *CharacterSession) AllocationCost() (total int, ok bool) {
	for _, score := range s.Stats {
		cost, valid := ScoreCost(score)
		if !valid {
			return 0, false
		}
		total += cost
	}
	return total, true
}

// Advance moves to the next step, clamped at the final step. The step never
// moves backward within a session.
func (s *CharacterSession) Advance() CreationStep {
	if s.CurrentStep < FinalCreationStep {
		s.CurrentStep++
	}
	return s.CurrentStep
}

// MissingFields lists what finalization still requires: Name, Species,
// Class, and a score for every ability.
func (s *CharacterSession) MissingFields() []string {
	var missing []string
	if s.Name == "" {
		missing = append(missing, FieldName)
	}
	if s.Species == "" {
		missing = append(missing, FieldSpecies)
	}
	if s.Class == "" {
		missing = append(missing, FieldClass)
	}
	for _, ability := range AbilityNames {
		if _, ok := s.Stats[ability]; !ok {
			missing = append(missing, ability)
		}
	}
	return missing
}
