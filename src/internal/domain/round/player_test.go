package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// Player Entity Tests
// ===========================

// Test 1: Create new player successfully
func TestNewPlayer_ValidInput_Success(t *testing.T) {
	// Arrange
	sessionID := NewSessionID()
	identity, _ := NewEphemeralIdentity(NewGuestID())

	// Act
	player, err := NewPlayer(sessionID, "小白", identity, 1)

	// Assert
	require.NoError(t, err)
	assert.False(t, player.PlayerID().IsEmpty())
	assert.True(t, player.SessionID().Equals(sessionID))
	assert.Equal(t, "小白", player.DisplayName())
	assert.Equal(t, 1, player.Position())
	assert.True(t, player.Identity().IsEphemeral())
}

// Test 2: Empty display name should return error
func TestNewPlayer_EmptyDisplayName_ReturnsError(t *testing.T) {
	// Arrange
	identity, _ := NewPermanentIdentity(NewUserID())

	// Act
	_, err := NewPlayer(NewSessionID(), "", identity, 1)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidDisplayName)
}

// Test 3: Position below 1 should return error
func TestNewPlayer_InvalidPosition_ReturnsError(t *testing.T) {
	// Arrange
	identity, _ := NewPermanentIdentity(NewUserID())

	// Act
	_, err := NewPlayer(NewSessionID(), "小白", identity, 0)

	// Assert
	assert.Error(t, err)
}

// Test 4: Migrate ephemeral identity to permanent
func TestPlayer_MigrateIdentity_Ephemeral_Success(t *testing.T) {
	// Arrange
	identity, _ := NewEphemeralIdentity(NewGuestID())
	player, err := NewPlayer(NewSessionID(), "訪客", identity, 1)
	require.NoError(t, err)

	playerID := player.PlayerID()
	userID := NewUserID()

	// Act
	err = player.MigrateIdentity(userID)

	// Assert
	require.NoError(t, err)
	assert.True(t, player.Identity().IsPermanent())
	assert.Equal(t, userID.String(), player.Identity().Ref())
	assert.True(t, player.PlayerID().Equals(playerID), "migration must not change the player ID")
}

// Test 5: Permanent identity cannot be migrated again
func TestPlayer_MigrateIdentity_AlreadyPermanent_ReturnsError(t *testing.T) {
	// Arrange
	identity, _ := NewPermanentIdentity(NewUserID())
	player, err := NewPlayer(NewSessionID(), "老王", identity, 1)
	require.NoError(t, err)
	originalRef := player.Identity().Ref()

	// Act
	err = player.MigrateIdentity(NewUserID())

	// Assert
	assert.ErrorIs(t, err, ErrIdentityNotEphemeral)
	assert.Equal(t, originalRef, player.Identity().Ref(), "failed migration must not touch identity")
}
