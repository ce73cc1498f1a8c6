package store

import (
	"fmt"
	"testing"

	"gamesquad/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoom_Success(t *testing.T) {
	rooms := NewRoomStore(newTestDB(t))
	creator := Creator{ID: 7, Username: "alice"}

	room, err := rooms.Create("t", "cs2", 5, "d", creator)
	require.NoError(t, err)

	assert.Equal(t, "t", room.Title)
	assert.Equal(t, "cs2", room.Game)
	assert.Equal(t, 5, room.PlayersNeeded)
	assert.Equal(t, models.RoomStatusOpen, room.Status)
	assert.Equal(t, uint(7), room.CreatorID)
	assert.Equal(t, "alice", room.CreatorName)
	assert.Equal(t, room.CreatedAt, room.UpdatedAt)

	require.Len(t, room.Members, 1)
	assert.Equal(t, uint(7), room.Members[0].UserID)
	assert.Equal(t, 0, room.Members[0].Position)
}

func TestCreateRoom_Validation(t *testing.T) {
	rooms := NewRoomStore(newTestDB(t))
	creator := Creator{ID: 1, Username: "alice"}

	tests := []struct {
		name          string
		title         string
		game          string
		playersNeeded int
		description   string
	}{
		{"missing title", "", "cs2", 5, "d"},
		{"missing game", "t", "", 5, "d"},
		{"zero players", "t", "cs2", 0, "d"},
		{"negative players", "t", "cs2", -3, "d"},
		{"missing description", "t", "cs2", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rooms.Create(tt.title, tt.game, tt.playersNeeded, tt.description, creator)

			var verr ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestListByGame(t *testing.T) {
	rooms := NewRoomStore(newTestDB(t))
	creator := Creator{ID: 1, Username: "alice"}

	for i := 0; i < 3; i++ {
		_, err := rooms.Create(fmt.Sprintf("cs2 room %d", i), "cs2", 5, "d", creator)
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := rooms.Create(fmt.Sprintf("dota2 room %d", i), "dota2", 5, "d", creator)
		require.NoError(t, err)
	}

	listed, err := rooms.ListByGame("cs2")
	require.NoError(t, err)
	require.Len(t, listed, 3)

	// Creation order, with members preloaded.
	for i, room := range listed {
		assert.Equal(t, "cs2", room.Game)
		assert.Equal(t, fmt.Sprintf("cs2 room %d", i), room.Title)
		require.Len(t, room.Members, 1)
		assert.Equal(t, creator.ID, room.Members[0].UserID)
	}
}

func TestListByGame_EmptyGame(t *testing.T) {
	rooms := NewRoomStore(newTestDB(t))

	_, err := rooms.ListByGame("")

	var verr ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestListByGame_NoMatches(t *testing.T) {
	rooms := NewRoomStore(newTestDB(t))

	listed, err := rooms.ListByGame("valorant")
	require.NoError(t, err)
	assert.Empty(t, listed)
}
