package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// Score Value Object Tests
// ===========================

// Test 1: Hole number accepts [1, 18]
func TestNewHoleNumber_Boundaries(t *testing.T) {
	// 有效邊界
	for _, v := range []int{1, 18} {
		hole, err := NewHoleNumber(v)
		require.NoError(t, err, "hole %d should be valid", v)
		assert.Equal(t, v, hole.Value())
	}

	// 無效邊界
	for _, v := range []int{0, 19, -1} {
		_, err := NewHoleNumber(v)
		assert.ErrorIs(t, err, ErrInvalidHoleNumber, "hole %d should be invalid", v)
	}
}

// Test 2: Strokes accepts [1, 20]
func TestNewStrokes_Boundaries(t *testing.T) {
	for _, v := range []int{1, 20} {
		strokes, err := NewStrokes(v)
		require.NoError(t, err, "strokes %d should be valid", v)
		assert.Equal(t, v, strokes.Value())
	}

	for _, v := range []int{0, 21} {
		_, err := NewStrokes(v)
		assert.ErrorIs(t, err, ErrInvalidStrokes, "strokes %d should be invalid", v)
	}
}

// Test 3: Putts bounded by strokes
func TestNewPutts_BoundedByStrokes(t *testing.T) {
	// Arrange
	strokes, _ := NewStrokes(5)

	// 有效：0 與 strokes 本身
	for _, v := range []int{0, 5} {
		putts, err := NewPutts(v, strokes)
		require.NoError(t, err, "putts %d should be valid", v)
		assert.True(t, putts.IsPresent())
		assert.Equal(t, v, putts.Value())
	}

	// 無效：負數與超過 strokes
	for _, v := range []int{-1, 6} {
		_, err := NewPutts(v, strokes)
		assert.ErrorIs(t, err, ErrInvalidPutts, "putts %d should be invalid", v)
	}
}

// Test 4: Putts is optional
func TestNoPutts_NotPresent(t *testing.T) {
	putts := NoPutts()
	assert.False(t, putts.IsPresent())
}

// Test 5: Geolocation is optional
func TestGeolocation_Optional(t *testing.T) {
	location := NewGeolocation(24.993, 121.301)
	assert.True(t, location.IsPresent())
	assert.Equal(t, 24.993, location.Latitude())
	assert.Equal(t, 121.301, location.Longitude())

	assert.False(t, NoGeolocation().IsPresent())
}

// Test 6: Revise replaces the whole row, not a field merge
func TestScoreEntry_Revise_ReplacesAllFields(t *testing.T) {
	// Arrange
	playerID := NewPlayerID()
	hole, _ := NewHoleNumber(3)
	strokes, _ := NewStrokes(6)
	putts, _ := NewPutts(2, strokes)
	location := NewGeolocation(24.0, 121.0)

	entry, err := NewScoreEntry(playerID, hole, strokes, putts, location)
	require.NoError(t, err)
	originalRecordedAt := entry.RecordedAt()

	newStrokes, _ := NewStrokes(4)

	// Act: 不帶推桿與定位的重新提交
	entry.Revise(newStrokes, NoPutts(), NoGeolocation())

	// Assert
	assert.Equal(t, 4, entry.Strokes().Value())
	assert.False(t, entry.Putts().IsPresent(), "resubmit without putts must clear putts")
	assert.False(t, entry.Location().IsPresent(), "resubmit without location must clear location")
	assert.False(t, entry.RecordedAt().Before(originalRecordedAt))
}
