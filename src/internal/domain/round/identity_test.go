package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// Identity Value Object Tests
// ===========================

// Test 1: Permanent identity wraps a user ID
func TestNewPermanentIdentity_Success(t *testing.T) {
	// Arrange
	userID := NewUserID()

	// Act
	identity, err := NewPermanentIdentity(userID)

	// Assert
	require.NoError(t, err)
	assert.True(t, identity.IsPermanent())
	assert.False(t, identity.IsEphemeral())
	assert.Equal(t, IdentityKindPermanent, identity.Kind())
	assert.Equal(t, userID.String(), identity.Ref())
}

// Test 2: Ephemeral identity wraps a guest ID
func TestNewEphemeralIdentity_Success(t *testing.T) {
	// Arrange
	guestID := NewGuestID()

	// Act
	identity, err := NewEphemeralIdentity(guestID)

	// Assert
	require.NoError(t, err)
	assert.True(t, identity.IsEphemeral())
	assert.Equal(t, IdentityKindEphemeral, identity.Kind())
	assert.Equal(t, guestID.String(), identity.Ref())
}

// Test 3: Empty IDs are unrepresentable as identities
func TestNewIdentity_EmptyID_ReturnsError(t *testing.T) {
	// Act
	_, permErr := NewPermanentIdentity(UserID{})
	_, ephErr := NewEphemeralIdentity(GuestID{})

	// Assert
	assert.Error(t, permErr)
	assert.Error(t, ephErr)
}

// Test 4: Reconstruct rejects unknown kinds
func TestReconstructIdentity_UnknownKind_ReturnsError(t *testing.T) {
	// Act
	_, err := ReconstructIdentity("anonymous", NewUserID().String())

	// Assert
	assert.ErrorIs(t, err, ErrInvalidIdentity)
}

// Test 5: Equality compares kind and reference
func TestIdentity_Equals(t *testing.T) {
	// Arrange
	userID := NewUserID()
	perm1, _ := NewPermanentIdentity(userID)
	perm2, _ := NewPermanentIdentity(userID)
	other, _ := NewPermanentIdentity(NewUserID())

	// 同一 UUID 字串、不同 kind
	guestID, err := GuestIDFromString(userID.String())
	require.NoError(t, err)
	eph, _ := NewEphemeralIdentity(guestID)

	// Assert
	assert.True(t, perm1.Equals(perm2))
	assert.False(t, perm1.Equals(other))
	assert.False(t, perm1.Equals(eph), "same ref with different kind is a different identity")
}
