package score

import (
	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/score"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// UC-102: DeleteScore Use Case
// ===========================

// DeleteScoreCommand 刪除成績指令（Input DTO）
type DeleteScoreCommand struct {
	EntryID string // 成績記錄 ID (UUID)
}

// DeleteScoreResult 刪除成績結果（Output DTO）
type DeleteScoreResult struct {
	EntryID  string // 被刪除的成績記錄 ID
	PlayerID string // 所屬球員 ID
}

// DeleteScoreUseCase 刪除成績 Use Case 接口
//
// 業務規則：球局結束後成績凍結，不可刪除
type DeleteScoreUseCase interface {
	Execute(cmd DeleteScoreCommand) (*DeleteScoreResult, error)
}

// ===========================
// DeleteScoreUseCaseImpl
// ===========================

// DeleteScoreUseCaseImpl 刪除成績 Use Case 實作
type DeleteScoreUseCaseImpl struct {
	sessionRepo round.SessionRepository
	playerRepo  round.PlayerRepository
	scoreRepo   score.ScoreEntryRepository
	txManager   shared.TransactionManager
}

// NewDeleteScoreUseCase 創建 DeleteScoreUseCase 實例
func NewDeleteScoreUseCase(
	sessionRepo round.SessionRepository,
	playerRepo round.PlayerRepository,
	scoreRepo score.ScoreEntryRepository,
	txManager shared.TransactionManager,
) DeleteScoreUseCase {
	return &DeleteScoreUseCaseImpl{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		scoreRepo:   scoreRepo,
		txManager:   txManager,
	}
}

// Execute 執行刪除成績 Use Case
//
// 業務流程：
// 1. 驗證輸入
// 2. 在事務中執行：
//    a. 查找成績記錄與所屬球局
//    b. 檢查球局未結束
//    c. 刪除成績記錄
//
// 錯誤處理：
// - 記錄不存在 → score.ErrEntryNotFound
// - 球局已結束 → score.ErrSessionClosed
func (uc *DeleteScoreUseCaseImpl) Execute(cmd DeleteScoreCommand) (*DeleteScoreResult, error) {
	entryID, err := score.EntryIDFromString(cmd.EntryID)
	if err != nil {
		return nil, err
	}

	var playerID score.PlayerID

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		// 2a. 查找成績記錄與所屬球局
		entry, err := uc.scoreRepo.FindByID(ctx, entryID)
		if err != nil {
			return err
		}
		playerID = entry.PlayerID()

		roundPlayerID, err := round.PlayerIDFromString(playerID.String())
		if err != nil {
			return err
		}

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
				"entry_id", cmd.EntryID,
			)
		}

		// 2c. 刪除成績記錄
		return uc.scoreRepo.Delete(ctx, entryID)
	})

	if err != nil {
		return nil, err
	}

	return &DeleteScoreResult{
		EntryID:  entryID.String(),
		PlayerID: playerID.String(),
	}, nil
}
