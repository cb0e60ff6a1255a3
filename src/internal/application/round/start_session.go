package round

import (
	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// UC-004: StartSession Use Case
// ===========================

// StartSessionCommand 開始球局指令（Input DTO）
type StartSessionCommand struct {
	SessionID string // 球局 ID (UUID)
}

// StartSessionResult 開始球局結果（Output DTO）
type StartSessionResult struct {
	SessionID string // 球局 ID
	Status    string // 球局狀態（必為 active）
}

// StartSessionUseCase 開始球局 Use Case 接口
//
// 業務規則：
// 1. 只有 waiting 狀態可開始（狀態機只進不退）
// 2. 至少需要一名球員
type StartSessionUseCase interface {
	Execute(cmd StartSessionCommand) (*StartSessionResult, error)
}

// ===========================
// StartSessionUseCaseImpl
// ===========================

// StartSessionUseCaseImpl 開始球局 Use Case 實作
type StartSessionUseCaseImpl struct {
	sessionRepo round.SessionRepository
	playerRepo  round.PlayerRepository
	txManager   shared.TransactionManager
	publisher   shared.EventPublisher // 可為 nil（不發布事件）
}

// NewStartSessionUseCase 創建 StartSessionUseCase 實例
func NewStartSessionUseCase(
	sessionRepo round.SessionRepository,
	playerRepo round.PlayerRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) StartSessionUseCase {
	return &StartSessionUseCaseImpl{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// Execute 執行開始球局 Use Case
//
// 業務流程：
// 1. 驗證輸入
// 2. 在事務中執行：
//    a. 查找球局
//    b. 計算球局內球員數（前置條件檢查）
//    c. 調用聚合的 Start（狀態轉移在 Domain Layer）
//    d. 持久化
// 3. 事務提交後發布聚合收集的事件
//
// 錯誤處理：
// - 球局不存在 → round.ErrSessionNotFound
// - 非 waiting 狀態 → round.ErrInvalidStateTransition
// - 沒有球員 → round.ErrSessionHasNoPlayers
func (uc *StartSessionUseCaseImpl) Execute(cmd StartSessionCommand) (*StartSessionResult, error) {
	// Step 1: 驗證輸入
	sessionID, err := round.SessionIDFromString(cmd.SessionID)
	if err != nil {
		return nil, err
	}

	// Step 2: 在事務中執行業務邏輯
	var session *round.Session

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		// 2a. 查找球局
		session, err = uc.sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			return err
		}

		// 2b. 計算球員數
		playerCount, err := uc.playerRepo.CountBySession(ctx, sessionID)
		if err != nil {
			return err
		}

		// 2c. 狀態轉移（業務邏輯在 Domain Layer）
		if err := session.Start(playerCount); err != nil {
			return err
		}

		// 2d. 持久化
		return uc.sessionRepo.Update(ctx, session)
	})

	if err != nil {
		return nil, err
	}

	// Step 3: 事務提交後發布事件
	if uc.publisher != nil {
		_ = uc.publisher.PublishBatch(session.PullEvents())
	}

	return &StartSessionResult{
		SessionID: session.SessionID().String(),
		Status:    string(session.Status()),
	}, nil
}
