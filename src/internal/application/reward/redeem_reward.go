package reward

import (
	"time"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/reward"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/score"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// UC-203: RedeemReward Use Case
// ===========================

// RedeemRewardCommand 兌換獎勵指令（Input DTO）
type RedeemRewardCommand struct {
	RewardID  string // 獎勵 ID (UUID)
	PlayerID  string // 球員 ID (UUID)
	SessionID string // 球局 ID (UUID)
}

// RedeemRewardResult 兌換獎勵結果（Output DTO）
type RedeemRewardResult struct {
	ReceiptID  string // 憑證 ID (UUID)
	Code       string // 憑證代碼（客服查詢用）
	Status     string // 憑證狀態（必為 pending）
	RedeemedAt string // 兌換時間（RFC3339）
}

// RedeemRewardUseCase 兌換獎勵 Use Case 接口
//
// 業務規則（驗證順序固定，第一個失敗者即為返回的錯誤）：
// 1. 獎勵存在             → ErrRewardNotFound
// 2. 獎勵啟用中           → ErrRewardInactive
// 3. 未過期               → ErrRewardExpired
// 4. 尚有庫存             → ErrInventoryExhausted
// 5. 尚未兌換過           → ErrAlreadyRedeemed
// 6. 球局已結束           → ErrSessionNotFinished
// 7. 表現滿足資格條件     → ErrNotEligible
//
// 候選列表（ListCandidates）只是建議，不是保留：
// 提交時一切條件在同一事務中重新驗證
type RedeemRewardUseCase interface {
	Execute(cmd RedeemRewardCommand) (*RedeemRewardResult, error)
}

// ===========================
// RedeemRewardUseCaseImpl
// ===========================

// RedeemRewardUseCaseImpl 兌換獎勵 Use Case 實作
//
// 併發安全（兩道資料庫屏障，皆在同一事務中）：
// - 庫存上限：IncrementRedemptions 的條件式 UPDATE，
//   併發搶最後一份庫存時恰好一個成功
// - 重複兌換：憑證 (reward_id, player_id) 唯一索引，
//   併發同對兌換時恰好一張憑證寫入
// 任一失敗整個事務回滾：不遞增計數、不留憑證
type RedeemRewardUseCaseImpl struct {
	sessionRepo round.SessionRepository
	playerRepo  round.PlayerRepository
	scoreRepo   score.ScoreEntryRepository
	rewardRepo  reward.RewardRepository
	receiptRepo reward.ReceiptRepository
	txManager   shared.TransactionManager
	publisher   shared.EventPublisher // 可為 nil（不發布事件）
}

// NewRedeemRewardUseCase 創建 RedeemRewardUseCase 實例
func NewRedeemRewardUseCase(
	sessionRepo round.SessionRepository,
	playerRepo round.PlayerRepository,
	scoreRepo score.ScoreEntryRepository,
	rewardRepo reward.RewardRepository,
	receiptRepo reward.ReceiptRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) RedeemRewardUseCase {
	return &RedeemRewardUseCaseImpl{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		scoreRepo:   scoreRepo,
		rewardRepo:  rewardRepo,
		receiptRepo: receiptRepo,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// Execute 執行兌換獎勵 Use Case
//
// 業務流程（全部在同一事務中）：
// 1. 驗證輸入
// 2. 依固定順序重新驗證一切前置條件（1-7，見接口文檔）
// 3. 提交寫入：
//    a. 條件式遞增已兌換次數（資料庫層庫存屏障）
//    b. 寫入兌換憑證（資料庫層唯一性屏障）
// 4. 事務提交後發布 RewardRedeemed 事件
func (uc *RedeemRewardUseCaseImpl) Execute(cmd RedeemRewardCommand) (*RedeemRewardResult, error) {
	// Step 1: 驗證輸入
	rewardID, err := reward.RewardIDFromString(cmd.RewardID)
	if err != nil {
		return nil, err
	}

	rewardPlayerID, err := reward.PlayerIDFromString(cmd.PlayerID)
	if err != nil {
		return nil, err
	}

	rewardSessionID, err := reward.SessionIDFromString(cmd.SessionID)
	if err != nil {
		return nil, err
	}

	roundPlayerID, err := round.PlayerIDFromString(cmd.PlayerID)
	if err != nil {
		return nil, err
	}

	roundSessionID, err := round.SessionIDFromString(cmd.SessionID)
	if err != nil {
		return nil, err
	}

	scorePlayerID, err := score.PlayerIDFromString(cmd.PlayerID)
	if err != nil {
		return nil, err
	}

	// Step 2-3: 在事務中重新驗證並提交
	var receipt *reward.RedemptionReceipt

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		// 條件 1: 獎勵存在
		definition, err := uc.rewardRepo.FindByID(ctx, rewardID)
		if err != nil {
			return err
		}

		// 條件 2: 獎勵啟用中
		if !definition.IsActive() {
			return reward.ErrRewardInactive.WithContext(
				"reward_id", cmd.RewardID,
			)
		}

		// 條件 3: 未過期
		now := time.Now()
		if definition.IsExpired(now) {
			return reward.ErrRewardExpired.WithContext(
				"reward_id", cmd.RewardID,
				"expires_at", definition.ExpiresAt().Format(time.RFC3339),
			)
		}

		// 條件 4: 尚有庫存（快照預檢查；最終屏障在條件式遞增）
		if !definition.HasInventory() {
			return reward.ErrInventoryExhausted.WithContext(
				"reward_id", cmd.RewardID,
			)
		}

		// 條件 5: 尚未兌換過（快照預檢查；最終屏障在唯一索引）
		redeemed, err := uc.receiptRepo.ExistsByPlayerAndReward(ctx, rewardPlayerID, rewardID)
		if err != nil {
			return err
		}
		if redeemed {
			return reward.ErrAlreadyRedeemed.WithContext(
				"reward_id", cmd.RewardID,
				"player_id", cmd.PlayerID,
			)
		}

		// 條件 6: 球局已結束（資格只在終局成績上評估）
		session, err := uc.sessionRepo.FindByID(ctx, roundSessionID)
		if err != nil {
			return err
		}
		if !session.IsFinished() {
			return reward.ErrSessionNotFinished.WithContext(
				"session_id", cmd.SessionID,
				"status", string(session.Status()),
			)
		}

		// 球員必須屬於該球局
		player, err := uc.playerRepo.FindByID(ctx, roundPlayerID)
		if err != nil {
			return err
		}
		if !player.SessionID().Equals(roundSessionID) {
			return round.ErrPlayerNotFound.WithContext(
				"player_id", cmd.PlayerID,
				"session_id", cmd.SessionID,
			)
		}

		// 條件 7: 表現滿足資格條件
		entries, err := uc.scoreRepo.FindByPlayer(ctx, scorePlayerID)
		if err != nil {
			return err
		}
		totals := score.ComputeTotals(entries)

		perf := reward.PlayerPerformance{
			TotalStrokes: totals.TotalStrokes,
			HolesPlayed:  totals.HolesPlayed,
			GameFormat:   string(session.Format()),
		}
		if satisfied, failedRule := definition.EvaluateEligibility(perf); !satisfied {
			return reward.ErrNotEligible.WithContext(
				"reward_id", cmd.RewardID,
				"player_id", cmd.PlayerID,
				"failed_rule", failedRule,
			)
		}

		// 提交 a: 條件式遞增（資料庫層庫存屏障）
		if err := uc.rewardRepo.IncrementRedemptions(ctx, rewardID); err != nil {
			return err
		}

		// 提交 b: 寫入憑證（資料庫層唯一性屏障）
		receipt, err = reward.NewRedemptionReceipt(
			rewardID,
			rewardPlayerID,
			rewardSessionID,
			definition.SponsorID(),
			now,
		)
		if err != nil {
			return err
		}

		return uc.receiptRepo.Save(ctx, receipt)
	})

	if err != nil {
		return nil, err
	}

	// Step 4: 事務提交後發布事件
	if uc.publisher != nil {
		_ = uc.publisher.Publish(reward.NewRewardRedeemedEvent(receipt))
	}

	return &RedeemRewardResult{
		ReceiptID:  receipt.ReceiptID().String(),
		Code:       receipt.Code(),
		Status:     string(receipt.Status()),
		RedeemedAt: receipt.RedeemedAt().Format(time.RFC3339),
	}, nil
}
