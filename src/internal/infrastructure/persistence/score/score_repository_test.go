package score

import (
	"testing"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ===========================
// ScoreEntryRepository Integration Tests
// ===========================

// setupTestDB 創建測試資料庫（in-memory SQLite）
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")

	err = db.AutoMigrate(&ScoreEntryGORM{})
	require.NoError(t, err, "failed to migrate database schema")

	return db
}

// newTestEntry 創建測試用成績記錄
func newTestEntry(t *testing.T, playerID score.PlayerID, hole, strokes int) *score.ScoreEntry {
	holeNumber, err := score.NewHoleNumber(hole)
	require.NoError(t, err)

	strokesVO, err := score.NewStrokes(strokes)
	require.NoError(t, err)

	entry, err := score.NewScoreEntry(playerID, holeNumber, strokesVO, score.NoPutts(), score.NoGeolocation())
	require.NoError(t, err)

	return entry
}

// Test 1: Entry round-trips with optional fields
func TestScoreRepository_Upsert_AndFindByPlayer(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewScoreEntryRepository(db)
	playerID := score.NewPlayerID()

	holeNumber, _ := score.NewHoleNumber(5)
	strokes, _ := score.NewStrokes(4)
	putts, _ := score.NewPutts(2, strokes)
	location := score.NewGeolocation(24.993, 121.301)

	entry, err := score.NewScoreEntry(playerID, holeNumber, strokes, putts, location)
	require.NoError(t, err)

	// Act
	require.NoError(t, repo.Upsert(nil, entry))

	// Assert
	entries, err := repo.FindByPlayer(nil, playerID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].HoleNumber().Value())
	assert.Equal(t, 4, entries[0].Strokes().Value())
	assert.True(t, entries[0].Putts().IsPresent())
	assert.Equal(t, 2, entries[0].Putts().Value())
	assert.True(t, entries[0].Location().IsPresent())
}

// Test 2: Resubmitting the same hole replaces, never duplicates
func TestScoreRepository_Upsert_SameHole_ReplacesNotDuplicates(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewScoreEntryRepository(db)
	playerID := score.NewPlayerID()

	first := newTestEntry(t, playerID, 3, 6)
	require.NoError(t, repo.Upsert(nil, first))

	// Act: 同一洞重新提交（整筆取代）
	second := newTestEntry(t, playerID, 3, 4)
	require.NoError(t, repo.Upsert(nil, second))

	// Assert: 仍是一筆，內容為最後提交
	entries, err := repo.FindByPlayer(nil, playerID)
	require.NoError(t, err)
	require.Len(t, entries, 1, "same (player, hole) must stay a single row")
	assert.Equal(t, 4, entries[0].Strokes().Value())
	assert.True(t, entries[0].EntryID().Equals(second.EntryID()), "replacement carries the new entry ID")

	var count int64
	db.Model(&ScoreEntryGORM{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

// Test 3: Resubmit without optional fields clears them (whole-row semantics)
func TestScoreRepository_Upsert_ClearsOptionalFields(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewScoreEntryRepository(db)
	playerID := score.NewPlayerID()

	holeNumber, _ := score.NewHoleNumber(7)
	strokes, _ := score.NewStrokes(5)
	putts, _ := score.NewPutts(2, strokes)
	withPutts, err := score.NewScoreEntry(playerID, holeNumber, strokes, putts, score.NewGeolocation(24.0, 121.0))
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(nil, withPutts))

	// Act: 不帶推桿與定位的重新提交
	bare := newTestEntry(t, playerID, 7, 5)
	require.NoError(t, repo.Upsert(nil, bare))

	// Assert
	entries, err := repo.FindByPlayer(nil, playerID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Putts().IsPresent(), "no field merge: missing putts must clear the column")
	assert.False(t, entries[0].Location().IsPresent())
}

// Test 4: Different holes accumulate; FindByPlayer orders by hole number
func TestScoreRepository_FindByPlayer_OrderedByHole(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewScoreEntryRepository(db)
	playerID := score.NewPlayerID()

	for _, hole := range []int{9, 1, 5} {
		require.NoError(t, repo.Upsert(nil, newTestEntry(t, playerID, hole, 4)))
	}

	// Act
	entries, err := repo.FindByPlayer(nil, playerID)

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].HoleNumber().Value())
	assert.Equal(t, 5, entries[1].HoleNumber().Value())
	assert.Equal(t, 9, entries[2].HoleNumber().Value())
}

// Test 5: Same hole for different players stays separate
func TestScoreRepository_Upsert_SameHoleDifferentPlayers(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewScoreEntryRepository(db)

	playerA := score.NewPlayerID()
	playerB := score.NewPlayerID()

	// Act
	require.NoError(t, repo.Upsert(nil, newTestEntry(t, playerA, 1, 4)))
	require.NoError(t, repo.Upsert(nil, newTestEntry(t, playerB, 1, 5)))

	// Assert
	var count int64
	db.Model(&ScoreEntryGORM{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

// Test 6: Delete removes a single entry
func TestScoreRepository_Delete(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewScoreEntryRepository(db)
	playerID := score.NewPlayerID()

	entry := newTestEntry(t, playerID, 2, 5)
	require.NoError(t, repo.Upsert(nil, entry))

	// Act
	err := repo.Delete(nil, entry.EntryID())

	// Assert
	require.NoError(t, err)
	entries, err := repo.FindByPlayer(nil, playerID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// 再刪一次 → ErrEntryNotFound
	assert.ErrorIs(t, repo.Delete(nil, entry.EntryID()), score.ErrEntryNotFound)
}

// Test 7: DeleteByPlayer removes the whole card, zero rows is not an error
func TestScoreRepository_DeleteByPlayer(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewScoreEntryRepository(db)
	playerID := score.NewPlayerID()

	for hole := 1; hole <= 3; hole++ {
		require.NoError(t, repo.Upsert(nil, newTestEntry(t, playerID, hole, 4)))
	}

	// Act
	require.NoError(t, repo.DeleteByPlayer(nil, playerID))

	// Assert
	entries, err := repo.FindByPlayer(nil, playerID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// 已無記錄時再刪不報錯（冪等）
	assert.NoError(t, repo.DeleteByPlayer(nil, playerID))
}
