package reward

import "github.com/fairwaylab/fairway_crm/src/internal/domain/shared"

// ===========================
// Reward Repository 介面
// ===========================

// RewardRepository 獎勵定義倉儲介面
//
// 設計原則：
// 1. 依賴倒置原則（DIP）：Domain Layer 定義介面，Infrastructure Layer 實作
// 2. 本核心對獎勵定義的寫入只有一種：IncrementRedemptions 的受控遞增。
//    創建（Save）僅供外部管理模組（cmd/seed）使用
type RewardRepository interface {
	// Save 保存新獎勵定義（外部管理模組的寫路徑）
	Save(ctx shared.TransactionContext, definition *RewardDefinition) error

	// FindByID 根據獎勵 ID 查找獎勵定義
	// 返回：找到的定義，或 ErrRewardNotFound
	FindByID(ctx shared.TransactionContext, rewardID RewardID) (*RewardDefinition, error)

	// ListActive 列出啟用中的獎勵定義
	// 參數 sponsorID 非 nil 時只列出該贊助商的獎勵
	ListActive(ctx shared.TransactionContext, sponsorID *SponsorID) ([]*RewardDefinition, error)

	// IncrementRedemptions 條件式遞增已兌換次數（原子操作）
	//
	// 實作要求：單一條件式 UPDATE（遞增前置條件寫在 WHERE 子句），
	// 不是 read-then-write —— 這是關閉庫存超發競爭窗口的關鍵操作：
	//
	//   UPDATE ... SET current_redemptions = current_redemptions + 1
	//   WHERE id = ? AND (max_redemptions IS NULL OR current_redemptions < max_redemptions)
	//
	// 影響 0 筆時返回 ErrInventoryExhausted（或 ErrRewardNotFound，若 ID 不存在）
	IncrementRedemptions(ctx shared.TransactionContext, rewardID RewardID) error
}

// ===========================
// Receipt Repository 介面
// ===========================

// ReceiptRepository 兌換憑證倉儲介面
type ReceiptRepository interface {
	// Save 保存新兌換憑證
	//
	// 核心唯一性約束：(reward_id, player_id) 唯一索引。
	// 併發的同對兌換請求恰好一個成功，另一個收到 ErrAlreadyRedeemed
	Save(ctx shared.TransactionContext, receipt *RedemptionReceipt) error

	// FindByID 根據憑證 ID 查找憑證
	// 返回：找到的憑證，或 ErrReceiptNotFound
	FindByID(ctx shared.TransactionContext, receiptID ReceiptID) (*RedemptionReceipt, error)

	// ExistsByPlayerAndReward 檢查 (player, reward) 憑證是否已存在
	// 用途：候選列表過濾與兌換時的友好錯誤訊息
	// （最終一致性由唯一索引保證，此查詢不是併發安全屏障）
	ExistsByPlayerAndReward(ctx shared.TransactionContext, playerID PlayerID, rewardID RewardID) (bool, error)

	// FindByPlayer 列出球員的所有兌換憑證（按兌換時間排序）
	FindByPlayer(ctx shared.TransactionContext, playerID PlayerID) ([]*RedemptionReceipt, error)
}
