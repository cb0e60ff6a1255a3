package round

import (
	"time"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// UC-005: FinishSession Use Case
// ===========================

// FinishSessionCommand 結束球局指令（Input DTO）
type FinishSessionCommand struct {
	SessionID string // 球局 ID (UUID)
}

// FinishSessionResult 結束球局結果（Output DTO）
type FinishSessionResult struct {
	SessionID string // 球局 ID
	Status    string // 球局狀態（必為 finished）
	EndedAt   string // 結束時間（RFC3339）
}

// FinishSessionUseCase 結束球局 Use Case 接口
//
// 業務規則：
// 1. waiting 與 active 皆可結束（finished 為終態）
// 2. 重複結束 → ErrSessionAlreadyFinished
// 3. 結束後球局凍結：不可加入球員、不可記錄成績
// 4. 結束是兌換資格評估的前置條件
type FinishSessionUseCase interface {
	Execute(cmd FinishSessionCommand) (*FinishSessionResult, error)
}

// ===========================
// FinishSessionUseCaseImpl
// ===========================

// FinishSessionUseCaseImpl 結束球局 Use Case 實作
type FinishSessionUseCaseImpl struct {
	sessionRepo round.SessionRepository
	txManager   shared.TransactionManager
	publisher   shared.EventPublisher // 可為 nil（不發布事件）
}

// NewFinishSessionUseCase 創建 FinishSessionUseCase 實例
func NewFinishSessionUseCase(
	sessionRepo round.SessionRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) FinishSessionUseCase {
	return &FinishSessionUseCaseImpl{
		sessionRepo: sessionRepo,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// Execute 執行結束球局 Use Case
//
// 錯誤處理：
// - 球局不存在 → round.ErrSessionNotFound
// - 已結束 → round.ErrSessionAlreadyFinished
func (uc *FinishSessionUseCaseImpl) Execute(cmd FinishSessionCommand) (*FinishSessionResult, error) {
	sessionID, err := round.SessionIDFromString(cmd.SessionID)
	if err != nil {
		return nil, err
	}

	var session *round.Session

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		session, err = uc.sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			return err
		}

		if err := session.Finish(); err != nil {
			return err
		}

		return uc.sessionRepo.Update(ctx, session)
	})

	if err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		_ = uc.publisher.PublishBatch(session.PullEvents())
	}

	result := &FinishSessionResult{
		SessionID: session.SessionID().String(),
		Status:    string(session.Status()),
	}
	if endedAt := session.EndedAt(); endedAt != nil {
		result.EndedAt = endedAt.Format(time.RFC3339)
	}

	return result, nil
}
