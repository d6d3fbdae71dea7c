package entities

import "sort"

// DefaultPartyMaxSize is the capacity every party is created with.
const DefaultPartyMaxSize = 6

// PartyMember is the lightweight summary of a character stored on the party
// record. The full character lives in its own record; the summary is enough
// for rosters and travel-pace math without a second lookup.
type PartyMember struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Class         string `json:"class"`
	Level         int    `json:"level"`
	MovementSpeed int    `json:"movement_speed"`
	JoinedAt      int64  `json:"joined_at"`
}

// Party is one adventuring group: a leader, up to MaxSize members, and the
// set of pending invites. Version is the optimistic-concurrency counter
// incremented by the repository on every save.
type Party struct {
	GuildID        string                 `json:"guild_id"`
	LeaderID       string                 `json:"leader_id"`
	Members        map[string]PartyMember `json:"members"`
	PendingInvites []string               `json:"pending_invites"`
	MaxSize        int                    `json:"max_size"`
	Version        int64                  `json:"version"`
	CreatedAt      int64                  `json:"created_at"`
	UpdatedAt      int64                  `json:"updated_at"`
}

// NewParty creates a party with the founder as leader and sole member.
func NewParty(guildID string, founder PartyMember, now int64) *Party {
	founder.JoinedAt = now
	return &Party{
		GuildID:   guildID,
		LeaderID:  founder.UserID,
		Members:   map[string]PartyMember{founder.UserID: founder},
		MaxSize:   DefaultPartyMaxSize,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Size returns the current member count
func (p *Party) Size() int {
	return len(p.Members)
}

// IsFull reports whether the party is at capacity
func (p *Party) IsFull() bool {
	return p.Size() >= p.MaxSize
}

// IsMember reports whether the user is a member
func (p *Party) IsMember(userID string) bool {
	_, ok := p.Members[userID]
	return ok
}

// HasInvite reports whether the user has a pending invite
func (p *Party) HasInvite(userID string) bool {
	for _, id := range p.PendingInvites {
		if id == userID {
			return true
		}
	}
	return false
}

// AddInvite records a pending invite. Returns false if the user is already
// invited or already a member.
func (p *Party) AddInvite(userID string) bool {
	if p.HasInvite(userID) || p.IsMember(userID) {
		return false
	}
	p.PendingInvites = append(p.PendingInvites, userID)
	return true
}

// RemoveInvite drops a pending invite. Returns false if no invite existed.
func (p *Party) RemoveInvite(userID string) bool {
	for i, id := range p.PendingInvites {
		if id == userID {
			p.PendingInvites = append(p.PendingInvites[:i], p.PendingInvites[i+1:]...)
			return true
		}
	}
	return false
}

// AddMember adds a member to the party. Returns false if the party is full
// or the user is already a member. Any pending invite for the user is
// consumed so an identity is never both invited and a member.
func (p *Party) AddMember(member PartyMember, now int64) bool {
	if p.IsFull() || p.IsMember(member.UserID) {
		return false
	}
	p.RemoveInvite(member.UserID)
	member.JoinedAt = now
	p.Members[member.UserID] = member
	return true
}

// RemoveMember removes a member. If the departing member was the leader and
// other members remain, leadership passes to the earliest-joined remaining
// member (ties broken by lowest user ID). Returns the new leader's ID when a
// promotion happened, and whether the user was a member at all.
func (p *Party) RemoveMember(userID string) (newLeaderID string, ok bool) {
	if !p.IsMember(userID) {
		return "", false
	}
	delete(p.Members, userID)

	if userID != p.LeaderID || len(p.Members) == 0 {
		return "", true
	}

	ids := make([]string, 0, len(p.Members))
	for id := range p.Members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := p.Members[ids[i]], p.Members[ids[j]]
		if a.JoinedAt != b.JoinedAt {
			return a.JoinedAt < b.JoinedAt
		}
		return a.UserID < b.UserID
	})

	p.LeaderID = ids[0]
	return p.LeaderID, true
}

// SlowestMember returns the member with the lowest movement speed, which
// sets the party's travel pace.
func (p *Party) SlowestMember() (PartyMember, bool) {
	var slowest PartyMember
	found := false
	for _, m := range p.Members {
		if !found || m.MovementSpeed < slowest.MovementSpeed ||
			(m.MovementSpeed == slowest.MovementSpeed && m.UserID < slowest.UserID) {
			slowest = m
			found = true
		}
	}
	return slowest, found
}

// AverageLevel returns the mean member level, 0 for an empty party.
func (p *Party) AverageLevel() float64 {
	if len(p.Members) == 0 {
		return 0
	}
	total := 0
	for _, m := range p.Members {
		total += m.Level
	}
	return float64(total) / float64(len(p.Members))
}
