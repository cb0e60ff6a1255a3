package score

import (
	"testing"

	roundapp "github.com/fairwaylab/fairway_crm/src/internal/application/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/score"
	"github.com/fairwaylab/fairway_crm/src/internal/infrastructure/persistence"
	roundpersistence "github.com/fairwaylab/fairway_crm/src/internal/infrastructure/persistence/round"
	scorepersistence "github.com/fairwaylab/fairway_crm/src/internal/infrastructure/persistence/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ===========================
// Score Use Case Tests（真實 sqlite 堆疊）
// ===========================

// scoreTestStack 測試用依賴組裝
type scoreTestStack struct {
	db *gorm.DB

	recordScore RecordScoreUseCase
	deleteScore DeleteScoreUseCase
	getTotals   *GetTotalsUseCase

	createSession roundapp.CreateSessionUseCase
	addPlayer     roundapp.AddPlayerUseCase
	startSession  roundapp.StartSessionUseCase
	finishSession roundapp.FinishSessionUseCase
}

// newScoreTestStack 組裝完整的 Use Case 堆疊（in-memory SQLite）
func newScoreTestStack(t *testing.T) *scoreTestStack {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, persistence.AutoMigrate(db))

	txManager := persistence.NewGORMTransactionManager(db)
	sessionRepo := roundpersistence.NewSessionRepository(db)
	playerRepo := roundpersistence.NewPlayerRepository(db)
	scoreRepo := scorepersistence.NewScoreEntryRepository(db)

	return &scoreTestStack{
		db: db,

		recordScore: NewRecordScoreUseCase(sessionRepo, playerRepo, scoreRepo, txManager),
		deleteScore: NewDeleteScoreUseCase(sessionRepo, playerRepo, scoreRepo, txManager),
		getTotals:   NewGetTotalsUseCase(scoreRepo),

		createSession: roundapp.NewCreateSessionUseCase(sessionRepo, txManager),
		addPlayer:     roundapp.NewAddPlayerUseCase(sessionRepo, playerRepo, txManager),
		startSession:  roundapp.NewStartSessionUseCase(sessionRepo, playerRepo, txManager, nil),
		finishSession: roundapp.NewFinishSessionUseCase(sessionRepo, txManager, nil),
	}
}

// mustActivePlayer 建局、加入一名球員並開局，返回 (sessionID, playerID)
func (s *scoreTestStack) mustActivePlayer(t *testing.T) (string, string) {
	created, err := s.createSession.Execute(roundapp.CreateSessionCommand{
		Name:      "Score Test Round",
		CreatorID: round.NewUserID().String(),
	})
	require.NoError(t, err)

	added, err := s.addPlayer.Execute(roundapp.AddPlayerCommand{
		SessionID:   created.SessionID,
		DisplayName: "記分員",
	})
	require.NoError(t, err)

	_, err = s.startSession.Execute(roundapp.StartSessionCommand{SessionID: created.SessionID})
	require.NoError(t, err)

	return created.SessionID, added.PlayerID
}

// Test 1: Record a score with putts and location
func TestRecordScoreUseCase_Success(t *testing.T) {
	// Arrange
	stack := newScoreTestStack(t)
	_, playerID := stack.mustActivePlayer(t)

	putts := 2
	lat, lng := 25.0330, 121.5654

	// Act
	result, err := stack.recordScore.Execute(RecordScoreCommand{
		PlayerID:   playerID,
		HoleNumber: 7,
		Strokes:    4,
		Putts:      &putts,
		Latitude:   &lat,
		Longitude:  &lng,
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, result.EntryID)
	assert.Equal(t, 7, result.HoleNumber)
	assert.Equal(t, 4, result.Strokes)
}

// Test 2: Field validation rejects out-of-range values before any write
func TestRecordScoreUseCase_Validation(t *testing.T) {
	// Arrange
	stack := newScoreTestStack(t)
	_, playerID := stack.mustActivePlayer(t)

	tests := []struct {
		name    string
		cmd     RecordScoreCommand
		wantErr error
	}{
		{
			name:    "hole number above 18",
			cmd:     RecordScoreCommand{PlayerID: playerID, HoleNumber: 19, Strokes: 4},
			wantErr: score.ErrInvalidHoleNumber,
		},
		{
			name:    "zero strokes",
			cmd:     RecordScoreCommand{PlayerID: playerID, HoleNumber: 1, Strokes: 0},
			wantErr: score.ErrInvalidStrokes,
		},
		{
			name: "putts above strokes",
			cmd: RecordScoreCommand{
				PlayerID: playerID, HoleNumber: 1, Strokes: 3,
				Putts: func() *int { v := 4; return &v }(),
			},
			wantErr: score.ErrInvalidPutts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stack.recordScore.Execute(tt.cmd)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Test 3: Resubmitting the same hole replaces the whole row
func TestRecordScoreUseCase_SameHole_Replaces(t *testing.T) {
	// Arrange
	stack := newScoreTestStack(t)
	_, playerID := stack.mustActivePlayer(t)

	putts := 3
	first, err := stack.recordScore.Execute(RecordScoreCommand{
		PlayerID: playerID, HoleNumber: 5, Strokes: 6, Putts: &putts,
	})
	require.NoError(t, err)

	// Act: 修正桿數，不帶推桿 → 整筆取代，推桿欄位清空
	second, err := stack.recordScore.Execute(RecordScoreCommand{
		PlayerID: playerID, HoleNumber: 5, Strokes: 5,
	})

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, first.EntryID, second.EntryID, "replacement carries a fresh entry ID")

	var count int64
	stack.db.Table("score_entries").Where("player_id = ?", playerID).Count(&count)
	assert.Equal(t, int64(1), count, "one row per (player, hole)")

	var puttsCol *int
	stack.db.Table("score_entries").
		Where("player_id = ? AND hole_number = ?", playerID, 5).
		Select("putts").Scan(&puttsCol)
	assert.Nil(t, puttsCol, "whole-row replacement clears omitted fields")
}

// Test 4: Recording against a finished session is rejected
func TestRecordScoreUseCase_SessionFinished_ReturnsError(t *testing.T) {
	// Arrange
	stack := newScoreTestStack(t)
	sessionID, playerID := stack.mustActivePlayer(t)

	_, err := stack.finishSession.Execute(roundapp.FinishSessionCommand{SessionID: sessionID})
	require.NoError(t, err)

	// Act
	_, err = stack.recordScore.Execute(RecordScoreCommand{
		PlayerID: playerID, HoleNumber: 1, Strokes: 4,
	})

	// Assert
	assert.ErrorIs(t, err, score.ErrSessionClosed)
}

// Test 5: Delete removes the entry while the session is open
func TestDeleteScoreUseCase_Success(t *testing.T) {
	// Arrange
	stack := newScoreTestStack(t)
	_, playerID := stack.mustActivePlayer(t)

	recorded, err := stack.recordScore.Execute(RecordScoreCommand{
		PlayerID: playerID, HoleNumber: 3, Strokes: 4,
	})
	require.NoError(t, err)

	// Act
	result, err := stack.deleteScore.Execute(DeleteScoreCommand{EntryID: recorded.EntryID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, recorded.EntryID, result.EntryID)

	var count int64
	stack.db.Table("score_entries").Where("player_id = ?", playerID).Count(&count)
	assert.Equal(t, int64(0), count)
}

// Test 6: Scores freeze on finish — delete is rejected too
func TestDeleteScoreUseCase_SessionFinished_ReturnsError(t *testing.T) {
	// Arrange
	stack := newScoreTestStack(t)
	sessionID, playerID := stack.mustActivePlayer(t)

	recorded, err := stack.recordScore.Execute(RecordScoreCommand{
		PlayerID: playerID, HoleNumber: 3, Strokes: 4,
	})
	require.NoError(t, err)

	_, err = stack.finishSession.Execute(roundapp.FinishSessionCommand{SessionID: sessionID})
	require.NoError(t, err)

	// Act
	_, err = stack.deleteScore.Execute(DeleteScoreCommand{EntryID: recorded.EntryID})

	// Assert
	assert.ErrorIs(t, err, score.ErrSessionClosed)
}

// Test 7: Totals are derived from the ledger on demand
func TestGetTotalsUseCase_SumsLedger(t *testing.T) {
	// Arrange
	stack := newScoreTestStack(t)
	_, playerID := stack.mustActivePlayer(t)

	for hole, strokes := range map[int]int{1: 4, 2: 5, 3: 3} {
		_, err := stack.recordScore.Execute(RecordScoreCommand{
			PlayerID: playerID, HoleNumber: hole, Strokes: strokes,
		})
		require.NoError(t, err)
	}

	// Act
	result, err := stack.getTotals.Execute(GetTotalsQuery{PlayerID: playerID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 12, result.TotalStrokes)
	assert.Equal(t, 3, result.HolesPlayed)
}

// Test 8: Unknown entry reports a friendly not-found error
func TestDeleteScoreUseCase_EntryNotFound(t *testing.T) {
	// Arrange
	stack := newScoreTestStack(t)

	// Act
	_, err := stack.deleteScore.Execute(DeleteScoreCommand{
		EntryID: "00000000-0000-0000-0000-000000000000",
	})

	// Assert
	assert.ErrorIs(t, err, score.ErrEntryNotFound)
}