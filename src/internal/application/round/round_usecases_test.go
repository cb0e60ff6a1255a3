package round

import (
	"testing"

	"github.com/google/uuid"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
	"github.com/fairwaylab/fairway_crm/src/internal/infrastructure/persistence"
	roundpersistence "github.com/fairwaylab/fairway_crm/src/internal/infrastructure/persistence/round"
	scorepersistence "github.com/fairwaylab/fairway_crm/src/internal/infrastructure/persistence/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ===========================
// Round Use Case Tests（真實 sqlite 堆疊）
// ===========================

// testStack 測試用依賴組裝
type testStack struct {
	db          *gorm.DB
	txManager   shared.TransactionManager
	sessionRepo round.SessionRepository
	playerRepo  round.PlayerRepository

	createSession CreateSessionUseCase
	addPlayer     AddPlayerUseCase
	removePlayer  RemovePlayerUseCase
	startSession  StartSessionUseCase
	finishSession FinishSessionUseCase
	getStandings  *GetStandingsUseCase
	migrate       MigrateIdentityUseCase
}

// newTestStack 組裝完整的 Use Case 堆疊（in-memory SQLite）
func newTestStack(t *testing.T) *testStack {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, persistence.AutoMigrate(db))

	txManager := persistence.NewGORMTransactionManager(db)
	sessionRepo := roundpersistence.NewSessionRepository(db)
	playerRepo := roundpersistence.NewPlayerRepository(db)
	scoreRepo := scorepersistence.NewScoreEntryRepository(db)

	return &testStack{
		db:          db,
		txManager:   txManager,
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,

		createSession: NewCreateSessionUseCase(sessionRepo, txManager),
		addPlayer:     NewAddPlayerUseCase(sessionRepo, playerRepo, txManager),
		removePlayer:  NewRemovePlayerUseCase(sessionRepo, playerRepo, scoreRepo, txManager, nil),
		startSession:  NewStartSessionUseCase(sessionRepo, playerRepo, txManager, nil),
		finishSession: NewFinishSessionUseCase(sessionRepo, txManager, nil),
		getStandings:  NewGetStandingsUseCase(sessionRepo, playerRepo, scoreRepo),
		migrate:       NewMigrateIdentityUseCase(playerRepo, txManager),
	}
}

// mustCreateSession 創建球局並返回 SessionID 字串
func (s *testStack) mustCreateSession(t *testing.T) string {
	result, err := s.createSession.Execute(CreateSessionCommand{
		Name:      "Sunday Scramble",
		CreatorID: round.NewUserID().String(),
	})
	require.NoError(t, err)
	return result.SessionID
}

// mustAddGuest 加入訪客球員並返回結果
func (s *testStack) mustAddGuest(t *testing.T, sessionID, name string) *AddPlayerResult {
	result, err := s.addPlayer.Execute(AddPlayerCommand{
		SessionID:   sessionID,
		DisplayName: name,
	})
	require.NoError(t, err)
	return result
}

// Test 1: CreateSession yields a waiting session with default format
func TestCreateSessionUseCase_Defaults(t *testing.T) {
	// Arrange
	stack := newTestStack(t)

	// Act
	result, err := stack.createSession.Execute(CreateSessionCommand{
		Name:      "Morning Nine",
		CreatorID: round.NewUserID().String(),
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "waiting", result.Status)
	assert.Equal(t, "stroke", result.Format, "empty format defaults to stroke play")
}

// Test 2: Empty name rejected before any write
func TestCreateSessionUseCase_EmptyName_ReturnsError(t *testing.T) {
	// Arrange
	stack := newTestStack(t)

	// Act
	_, err := stack.createSession.Execute(CreateSessionCommand{
		Name:      "",
		CreatorID: round.NewUserID().String(),
	})

	// Assert
	assert.ErrorIs(t, err, round.ErrInvalidSessionName)
}

// Test 3: AddPlayer assigns dense positions and generates guest identities
func TestAddPlayerUseCase_AssignsPositions(t *testing.T) {
	// Arrange
	stack := newTestStack(t)
	sessionID := stack.mustCreateSession(t)

	// Act
	first := stack.mustAddGuest(t, sessionID, "甲")
	second := stack.mustAddGuest(t, sessionID, "乙")

	// Assert
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 2, second.Position)
	assert.Equal(t, "ephemeral", first.IdentityKind)
	assert.NotEmpty(t, first.GuestID, "auto-generated guest identity is returned to the caller")
	assert.NotEqual(t, first.GuestID, second.GuestID)
}

// Test 4: Same permanent identity cannot join the same session twice
func TestAddPlayerUseCase_DuplicateIdentity_ReturnsError(t *testing.T) {
	// Arrange
	stack := newTestStack(t)
	sessionID := stack.mustCreateSession(t)
	userID := round.NewUserID().String()

	_, err := stack.addPlayer.Execute(AddPlayerCommand{
		SessionID: sessionID, DisplayName: "本尊", UserID: userID,
	})
	require.NoError(t, err)

	// Act
	_, err = stack.addPlayer.Execute(AddPlayerCommand{
		SessionID: sessionID, DisplayName: "分身", UserID: userID,
	})

	// Assert
	assert.ErrorIs(t, err, round.ErrDuplicateIdentity)
}

// Test 4b: Supplying both identity fields is ambiguous and rejected
func TestAddPlayerUseCase_BothIdentities_ReturnsError(t *testing.T) {
	// Arrange
	stack := newTestStack(t)
	sessionID := stack.mustCreateSession(t)

	// Act
	_, err := stack.addPlayer.Execute(AddPlayerCommand{
		SessionID:   sessionID,
		DisplayName: "身份不明",
		UserID:      round.NewUserID().String(),
		GuestID:     round.NewGuestID().String(),
	})

	// Assert
	assert.ErrorIs(t, err, round.ErrInvalidIdentity)

	var count int64
	stack.db.Table("players").Count(&count)
	assert.Equal(t, int64(0), count, "rejected before any write")
}

// Test 5: Joining an active session is allowed; a finished one is not
func TestAddPlayerUseCase_JoinableStates(t *testing.T) {
	// Arrange
	stack := newTestStack(t)
	sessionID := stack.mustCreateSession(t)
	stack.mustAddGuest(t, sessionID, "早鳥")

	_, err := stack.startSession.Execute(StartSessionCommand{SessionID: sessionID})
	require.NoError(t, err)

	// Act: active 仍可加入（遲到的球員）
	late := stack.mustAddGuest(t, sessionID, "遲到")
	assert.Equal(t, 2, late.Position)

	// finished 之後不可加入
	_, err = stack.finishSession.Execute(FinishSessionCommand{SessionID: sessionID})
	require.NoError(t, err)

	_, err = stack.addPlayer.Execute(AddPlayerCommand{SessionID: sessionID, DisplayName: "太遲"})

	// Assert
	assert.ErrorIs(t, err, round.ErrSessionNotJoinable)
}

// Test 6: Start requires at least one player
func TestStartSessionUseCase_NoPlayers_ReturnsError(t *testing.T) {
	// Arrange
	stack := newTestStack(t)
	sessionID := stack.mustCreateSession(t)

	// Act
	_, err := stack.startSession.Execute(StartSessionCommand{SessionID: sessionID})

	// Assert
	assert.ErrorIs(t, err, round.ErrSessionHasNoPlayers)
}

// Test 7: Finish twice returns AlreadyFinished
func TestFinishSessionUseCase_Twice_ReturnsAlreadyFinished(t *testing.T) {
	// Arrange
	stack := newTestStack(t)
	sessionID := stack.mustCreateSession(t)
	stack.mustAddGuest(t, sessionID, "獨行俠")

	result, err := stack.finishSession.Execute(FinishSessionCommand{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, "finished", result.Status)
	assert.NotEmpty(t, result.EndedAt)

	// Act
	_, err = stack.finishSession.Execute(FinishSessionCommand{SessionID: sessionID})

	// Assert
	assert.ErrorIs(t, err, round.ErrSessionAlreadyFinished)
}

// Test 8: RemovePlayer only while waiting
func TestRemovePlayerUseCase_AfterStart_ReturnsError(t *testing.T) {
	// Arrange
	stack := newTestStack(t)
	sessionID := stack.mustCreateSession(t)
	player := stack.mustAddGuest(t, sessionID, "想退出")

	_, err := stack.startSession.Execute(StartSessionCommand{SessionID: sessionID})
	require.NoError(t, err)

	// Act
	_, err = stack.removePlayer.Execute(RemovePlayerCommand{PlayerID: player.PlayerID})

	// Assert
	assert.ErrorIs(t, err, round.ErrPlayerNotRemovable)
}

// Test 9: RemovePlayer while waiting cascades the player's score entries
func TestRemovePlayerUseCase_CascadesScores(t *testing.T) {
	// Arrange
	stack := newTestStack(t)
	sessionID := stack.mustCreateSession(t)
	player := stack.mustAddGuest(t, sessionID, "先記了分")

	// 直接寫一筆成績（waiting 球局也可能有練習記錄殘留）
	seedScore(t, stack.db, player.PlayerID, 1, 4)

	// Act
	result, err := stack.removePlayer.Execute(RemovePlayerCommand{PlayerID: player.PlayerID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sessionID, result.SessionID)

	var count int64
	stack.db.Table("score_entries").Where("player_id = ?", player.PlayerID).Count(&count)
	assert.Equal(t, int64(0), count, "score entries must be removed in the same transaction")

	var playerCount int64
	stack.db.Table("players").Where("player_id = ?", player.PlayerID).Count(&playerCount)
	assert.Equal(t, int64(0), playerCount)
}

// Test 10: Standings order by strokes, holes played, then join position
func TestGetStandingsUseCase_Ordering(t *testing.T) {
	// Arrange
	stack := newTestStack(t)
	sessionID := stack.mustCreateSession(t)

	slow := stack.mustAddGuest(t, sessionID, "slow")   // position 1
	quick := stack.mustAddGuest(t, sessionID, "quick") // position 2
	short := stack.mustAddGuest(t, sessionID, "short") // position 3

	_, err := stack.startSession.Execute(StartSessionCommand{SessionID: sessionID})
	require.NoError(t, err)

	// quick: 2洞 7桿；slow: 2洞 9桿；short: 1洞 3桿
	seedScore(t, stack.db, quick.PlayerID, 1, 4)
	seedScore(t, stack.db, quick.PlayerID, 2, 3)
	seedScore(t, stack.db, slow.PlayerID, 1, 5)
	seedScore(t, stack.db, slow.PlayerID, 2, 4)
	seedScore(t, stack.db, short.PlayerID, 1, 3)

	// Act
	result, err := stack.getStandings.Execute(GetStandingsQuery{SessionID: sessionID})

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Standings, 3)
	assert.Equal(t, "short", result.Standings[0].DisplayName, "lowest strokes first")
	assert.Equal(t, "quick", result.Standings[1].DisplayName)
	assert.Equal(t, "slow", result.Standings[2].DisplayName)
	assert.Equal(t, 1, result.Standings[0].Rank)
	assert.Equal(t, 3, result.Standings[2].Rank)
}

// Test 11: MigrateIdentity converts a guest to a registered user
func TestMigrateIdentityUseCase_Success(t *testing.T) {
	// Arrange
	stack := newTestStack(t)
	sessionID := stack.mustCreateSession(t)
	guest := stack.mustAddGuest(t, sessionID, "回頭客")

	userID := round.NewUserID().String()

	// Act
	result, err := stack.migrate.Execute(MigrateIdentityCommand{
		PlayerID: guest.PlayerID,
		UserID:   userID,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "permanent", result.IdentityKind)
	assert.Equal(t, userID, result.IdentityRef)

	// 再遷移一次 → ErrIdentityNotEphemeral
	_, err = stack.migrate.Execute(MigrateIdentityCommand{
		PlayerID: guest.PlayerID,
		UserID:   round.NewUserID().String(),
	})
	assert.ErrorIs(t, err, round.ErrIdentityNotEphemeral)
}

// Test 12: MigrateIdentity rejects a user already present in the session
func TestMigrateIdentityUseCase_DuplicateTarget_ReturnsError(t *testing.T) {
	// Arrange
	stack := newTestStack(t)
	sessionID := stack.mustCreateSession(t)
	userID := round.NewUserID().String()

	_, err := stack.addPlayer.Execute(AddPlayerCommand{
		SessionID: sessionID, DisplayName: "已註冊", UserID: userID,
	})
	require.NoError(t, err)

	guest := stack.mustAddGuest(t, sessionID, "訪客")

	// Act
	_, err = stack.migrate.Execute(MigrateIdentityCommand{
		PlayerID: guest.PlayerID,
		UserID:   userID,
	})

	// Assert
	assert.ErrorIs(t, err, round.ErrDuplicateIdentity)
}

// seedScore 直接寫入一筆成績記錄（繞過 Use Case 的球局狀態檢查）
func seedScore(t *testing.T, db *gorm.DB, playerID string, hole, strokes int) {
	err := db.Exec(
		"INSERT INTO score_entries (entry_id, player_id, hole_number, strokes, recorded_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)",
		uuid.NewString(), playerID, hole, strokes,
	).Error
	require.NoError(t, err)
}
