package reward

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// RedemptionReceipt Tests
// ===========================

// Test 1: New receipt starts pending with a code
func TestNewRedemptionReceipt_Success(t *testing.T) {
	// Arrange
	rewardID := NewRewardID()
	playerID := NewPlayerID()
	sessionID := NewSessionID()
	sponsorID := NewSponsorID()
	redeemedAt := time.Now()

	// Act
	receipt, err := NewRedemptionReceipt(rewardID, playerID, sessionID, sponsorID, redeemedAt)

	// Assert
	require.NoError(t, err)
	assert.False(t, receipt.ReceiptID().IsEmpty())
	assert.Equal(t, ReceiptStatusPending, receipt.Status())
	assert.True(t, receipt.RewardID().Equals(rewardID))
	assert.True(t, receipt.PlayerID().Equals(playerID))
	assert.NotEmpty(t, receipt.Code())
}

// Test 2: Receipt code format SSSS-PPPP-TTTTTT, uppercase
func TestGenerateReceiptCode_Format(t *testing.T) {
	// Arrange
	sponsorID := NewSponsorID()
	playerID := NewPlayerID()
	redeemedAt := time.Unix(1700000000, 0)

	// Act
	code := GenerateReceiptCode(sponsorID, playerID, redeemedAt)

	// Assert
	assert.Equal(t, strings.ToUpper(code), code, "code must be uppercase")

	parts := strings.Split(code, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[0], 4)
	assert.Len(t, parts[1], 4)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-Z]+$`), parts[2], "timestamp segment is base36")
}

// Test 3: Code is deterministic for the same inputs
func TestGenerateReceiptCode_Deterministic(t *testing.T) {
	// Arrange
	sponsorID := NewSponsorID()
	playerID := NewPlayerID()
	redeemedAt := time.Unix(1700000000, 0)

	// Act & Assert
	assert.Equal(t,
		GenerateReceiptCode(sponsorID, playerID, redeemedAt),
		GenerateReceiptCode(sponsorID, playerID, redeemedAt),
	)
}

// Test 4: Empty IDs rejected
func TestNewRedemptionReceipt_EmptyIDs_ReturnsError(t *testing.T) {
	redeemedAt := time.Now()

	_, err := NewRedemptionReceipt(RewardID{}, NewPlayerID(), NewSessionID(), NewSponsorID(), redeemedAt)
	assert.Error(t, err)

	_, err = NewRedemptionReceipt(NewRewardID(), PlayerID{}, NewSessionID(), NewSponsorID(), redeemedAt)
	assert.Error(t, err)
}
