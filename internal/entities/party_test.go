package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChibiOne/RPGenerator-sub001/internal/entities"
)

func member(userID, name string, level, speed int) entities.PartyMember {
	return entities.PartyMember{
		UserID:        userID,
		Name:          name,
		Class:         "Fighter",
		Level:         level,
		MovementSpeed: speed,
	}
}

func TestNewParty(t *testing.T) {
	p := entities.NewParty("guild_1", member("user_1", "Rook", 1, 30), 100)

	assert.Equal(t, "user_1", p.LeaderID)
	assert.True(t, p.IsMember("user_1"))
	assert.Equal(t, 1, p.Size())
	assert.Equal(t, entities.DefaultPartyMaxSize, p.MaxSize)
	assert.False(t, p.IsFull())
	assert.Equal(t, int64(100), p.Members["user_1"].JoinedAt)
}

func TestParty_Invites(t *testing.T) {
	p := entities.NewParty("guild_1", member("user_1", "Rook", 1, 30), 100)

	assert.True(t, p.AddInvite("user_2"))
	assert.True(t, p.HasInvite("user_2"))
	assert.False(t, p.AddInvite("user_2"), "double invite rejected")
	assert.False(t, p.AddInvite("user_1"), "cannot invite a member")

	assert.True(t, p.RemoveInvite("user_2"))
	assert.False(t, p.HasInvite("user_2"))
	assert.False(t, p.RemoveInvite("user_2"), "removal is reported once")
}

func TestParty_AddMember(t *testing.T) {
	p := entities.NewParty("guild_1", member("user_1", "Rook", 1, 30), 100)
	p.AddInvite("user_2")

	assert.True(t, p.AddMember(member("user_2", "Wren", 2, 25), 200))
	assert.True(t, p.IsMember("user_2"))
	assert.False(t, p.HasInvite("user_2"), "invite consumed on join")
	assert.Equal(t, int64(200), p.Members["user_2"].JoinedAt)

	assert.False(t, p.AddMember(member("user_2", "Wren", 2, 25), 300), "already a member")
}

func TestParty_AddMember_Full(t *testing.T) {
	p := entities.NewParty("guild_1", member("user_0", "Rook", 1, 30), 100)
	for i := 1; i < entities.DefaultPartyMaxSize; i++ {
		assert.True(t, p.AddMember(member(string(rune('a'+i)), "Extra", 1, 30), 100))
	}

	assert.True(t, p.IsFull())
	assert.False(t, p.AddMember(member("user_overflow", "Late", 1, 30), 100))
	assert.Equal(t, entities.DefaultPartyMaxSize, p.Size())
}

func TestParty_RemoveMember(t *testing.T) {
	p := entities.NewParty("guild_1", member("user_1", "Rook", 1, 30), 100)
	p.AddMember(member("user_2", "Wren", 2, 25), 200)

	newLeader, ok := p.RemoveMember("user_2")
	assert.True(t, ok)
	assert.Empty(t, newLeader, "non-leader departure does not change leadership")
	assert.False(t, p.IsMember("user_2"))

	_, ok = p.RemoveMember("user_2")
	assert.False(t, ok, "not a member anymore")
}

func TestParty_RemoveMember_LeaderSuccession(t *testing.T) {
	p := entities.NewParty("guild_1", member("user_1", "Rook", 1, 30), 100)
	p.AddMember(member("user_3", "Thorn", 3, 30), 300)
	p.AddMember(member("user_2", "Wren", 2, 25), 200)

	newLeader, ok := p.RemoveMember("user_1")
	assert.True(t, ok)
	assert.Equal(t, "user_2", newLeader, "earliest joined member is promoted")
	assert.Equal(t, "user_2", p.LeaderID)
	assert.True(t, p.IsMember(p.LeaderID), "leader is always a member")
}

func TestParty_RemoveMember_SuccessionTieBreak(t *testing.T) {
	p := entities.NewParty("guild_1", member("user_9", "Rook", 1, 30), 100)
	p.AddMember(member("user_5", "Wren", 2, 25), 200)
	p.AddMember(member("user_2", "Thorn", 3, 30), 200)

	newLeader, _ := p.RemoveMember("user_9")
	assert.Equal(t, "user_2", newLeader, "lowest user ID wins a JoinedAt tie")
}

func TestParty_RemoveMember_LastMember(t *testing.T) {
	p := entities.NewParty("guild_1", member("user_1", "Rook", 1, 30), 100)

	newLeader, ok := p.RemoveMember("user_1")
	assert.True(t, ok)
	assert.Empty(t, newLeader)
	assert.Zero(t, p.Size())
}

func TestParty_TravelHelpers(t *testing.T) {
	p := entities.NewParty("guild_1", member("user_1", "Rook", 1, 30), 100)
	p.AddMember(member("user_2", "Wren", 3, 25), 200)
	p.AddMember(member("user_3", "Thorn", 2, 40), 300)

	slowest, ok := p.SlowestMember()
	assert.True(t, ok)
	assert.Equal(t, "user_2", slowest.UserID)
	assert.InDelta(t, 2.0, p.AverageLevel(), 0.001)
}
