package round

import (
	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/score"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// UC-003: RemovePlayer Use Case
// ===========================

// RemovePlayerCommand 移除球員指令（Input DTO）
type RemovePlayerCommand struct {
	PlayerID string // 球員 ID (UUID)
}

// RemovePlayerResult 移除球員結果（Output DTO）
type RemovePlayerResult struct {
	PlayerID  string // 被移除的球員 ID
	SessionID string // 所屬球局 ID
}

// RemovePlayerUseCase 移除球員 Use Case 接口
//
// 業務規則：
// 1. 只有 waiting 狀態的球局可移除球員（開局後陣容固定）
// 2. 移除時在同一事務中級聯刪除該球員的所有成績記錄
// 3. 順位不重排（移除後允許稀疏）
// 4. 成功後發布 PlayerRemoved 事件，
//    下游協作者（兌換憑證等外部記錄）據此自行清理
type RemovePlayerUseCase interface {
	Execute(cmd RemovePlayerCommand) (*RemovePlayerResult, error)
}

// ===========================
// RemovePlayerUseCaseImpl
// ===========================

// RemovePlayerUseCaseImpl 移除球員 Use Case 實作
type RemovePlayerUseCaseImpl struct {
	sessionRepo round.SessionRepository
	playerRepo  round.PlayerRepository
	scoreRepo   score.ScoreEntryRepository
	txManager   shared.TransactionManager
	publisher   shared.EventPublisher // 可為 nil（不發布事件）
}

// NewRemovePlayerUseCase 創建 RemovePlayerUseCase 實例
func NewRemovePlayerUseCase(
	sessionRepo round.SessionRepository,
	playerRepo round.PlayerRepository,
	scoreRepo score.ScoreEntryRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) RemovePlayerUseCase {
	return &RemovePlayerUseCaseImpl{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		scoreRepo:   scoreRepo,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// Execute 執行移除球員 Use Case
//
// 業務流程：
// 1. 驗證輸入
// 2. 在事務中執行：
//    a. 查找球員與所屬球局
//    b. 檢查球局狀態（僅 waiting 可移除）
//    c. 級聯刪除該球員的成績記錄
//    d. 刪除球員
// 3. 事務提交後發布 PlayerRemoved 事件
//
// 錯誤處理：
// - 球員不存在 → round.ErrPlayerNotFound
// - 球局非 waiting → round.ErrPlayerNotRemovable
func (uc *RemovePlayerUseCaseImpl) Execute(cmd RemovePlayerCommand) (*RemovePlayerResult, error) {
	// Step 1: 驗證輸入
	playerID, err := round.PlayerIDFromString(cmd.PlayerID)
	if err != nil {
		return nil, err
	}

	// 成績記錄使用 score context 自己的 PlayerID 類型（同一 UUID 字串）
	scorePlayerID, err := score.PlayerIDFromString(cmd.PlayerID)
	if err != nil {
		return nil, err
	}

	// Step 2: 在事務中執行業務邏輯
	var sessionID round.SessionID

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		// 2a. 查找球員與所屬球局
		player, err := uc.playerRepo.FindByID(ctx, playerID)
		if err != nil {
			return err
		}
		sessionID = player.SessionID()

		session, err := uc.sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			return err
		}

		// 2b. 檢查球局狀態（開局後陣容固定）
		if !session.IsWaiting() {
			return round.ErrPlayerNotRemovable.WithContext(
				"player_id", cmd.PlayerID,
				"session_status", string(session.Status()),
			)
		}

		// 2c. 級聯刪除該球員的成績記錄
		if err := uc.scoreRepo.DeleteByPlayer(ctx, scorePlayerID); err != nil {
			return err
		}

		// 2d. 刪除球員
		return uc.playerRepo.Delete(ctx, playerID)
	})

	if err != nil {
		return nil, err
	}

	// Step 3: 事務提交後發布事件
	if uc.publisher != nil {
		_ = uc.publisher.Publish(round.NewPlayerRemovedEvent(sessionID, playerID))
	}

	return &RemovePlayerResult{
		PlayerID:  playerID.String(),
		SessionID: sessionID.String(),
	}, nil
}
