package score

import (
	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/score"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// UC-101: RecordScore Use Case
// ===========================

// RecordScoreCommand 記錄成績指令（Input DTO）
//
// 可選欄位：
// - Putts: 推桿數（nil = 未記錄）
// - Latitude/Longitude: 記錄當下的定位（兩者須同時提供）
type RecordScoreCommand struct {
	PlayerID   string   // 球員 ID (UUID)
	HoleNumber int      // 洞號 [1, 18]
	Strokes    int      // 總桿數 [1, 20]
	Putts      *int     // 推桿數（可選，[0, strokes]）
	Latitude   *float64 // 定位緯度（可選）
	Longitude  *float64 // 定位經度（可選）
}

// RecordScoreResult 記錄成績結果（Output DTO）
type RecordScoreResult struct {
	EntryID    string // 成績記錄 ID（同洞重複提交時為新記錄 ID）
	PlayerID   string // 球員 ID
	HoleNumber int    // 洞號
	Strokes    int    // 總桿數
}

// RecordScoreUseCase 記錄成績 Use Case 接口
//
// 業務規則：
// 1. 每個 (player, hole) 至多一筆記錄：同洞重複提交整筆取代（upsert），
//    不做欄位合併，最後寫入者勝
// 2. 球局結束後不可記錄成績
// 3. 欄位驗證：洞號 [1,18]、桿數 [1,20]、推桿 [0,strokes]
type RecordScoreUseCase interface {
	Execute(cmd RecordScoreCommand) (*RecordScoreResult, error)
}

// ===========================
// RecordScoreUseCaseImpl
// ===========================

// RecordScoreUseCaseImpl 記錄成績 Use Case 實作
type RecordScoreUseCaseImpl struct {
	sessionRepo round.SessionRepository
	playerRepo  round.PlayerRepository
	scoreRepo   score.ScoreEntryRepository
	txManager   shared.TransactionManager
}

// NewRecordScoreUseCase 創建 RecordScoreUseCase 實例
func NewRecordScoreUseCase(
	sessionRepo round.SessionRepository,
	playerRepo round.PlayerRepository,
	scoreRepo score.ScoreEntryRepository,
	txManager shared.TransactionManager,
) RecordScoreUseCase {
	return &RecordScoreUseCaseImpl{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		scoreRepo:   scoreRepo,
		txManager:   txManager,
	}
}

// Execute 執行記錄成績 Use Case
//
// 業務流程：
// 1. 驗證輸入並轉換為 Value Object
// 2. 在事務中執行：
//    a. 查找球員與所屬球局
//    b. 檢查球局未結束
//    c. 創建成績記錄並 upsert
//
// 錯誤處理：
// - 欄位驗證失敗 → score.ErrInvalidHoleNumber / ErrInvalidStrokes / ErrInvalidPutts
// - 球員不存在 → round.ErrPlayerNotFound
// - 球局已結束 → score.ErrSessionClosed
func (uc *RecordScoreUseCaseImpl) Execute(cmd RecordScoreCommand) (*RecordScoreResult, error) {
	// Step 1: 驗證輸入並轉換為 Value Object
	roundPlayerID, err := round.PlayerIDFromString(cmd.PlayerID)
	if err != nil {
		return nil, err
	}

	playerID, err := score.PlayerIDFromString(cmd.PlayerID)
	if err != nil {
		return nil, err
	}

	holeNumber, err := score.NewHoleNumber(cmd.HoleNumber)
	if err != nil {
		return nil, err
	}

	strokes, err := score.NewStrokes(cmd.Strokes)
	if err != nil {
		return nil, err
	}

	putts := score.NoPutts()
	if cmd.Putts != nil {
		putts, err = score.NewPutts(*cmd.Putts, strokes)
		if err != nil {
			return nil, err
		}
	}

	location := score.NoGeolocation()
	if cmd.Latitude != nil && cmd.Longitude != nil {
		location = score.NewGeolocation(*cmd.Latitude, *cmd.Longitude)
	}

	// Step 2: 在事務中執行業務邏輯
	var entry *score.ScoreEntry

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		// 2a. 查找球員與所屬球局
		player, err := uc.playerRepo.FindByID(ctx, roundPlayerID)
		if err != nil {
			return err
		}

		session, err := uc.sessionRepo.FindByID(ctx, player.SessionID())
		if err != nil {
			return err
		}

		// 2b. 檢查球局未結束（結束後成績凍結）
		if session.IsFinished() {
			return score.ErrSessionClosed.WithContext(
				"session_id", session.SessionID().String(),
				"player_id", cmd.PlayerID,
			)
		}

		// 2c. 創建成績記錄並 upsert
		entry, err = score.NewScoreEntry(playerID, holeNumber, strokes, putts, location)
		if err != nil {
			return err
		}

		return uc.scoreRepo.Upsert(ctx, entry)
	})

	if err != nil {
		return nil, err
	}

	return &RecordScoreResult{
		EntryID:    entry.EntryID().String(),
		PlayerID:   entry.PlayerID().String(),
		HoleNumber: entry.HoleNumber().Value(),
		Strokes:    entry.Strokes().Value(),
	}, nil
}
