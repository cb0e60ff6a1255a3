package reward

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ===========================
// ReceiptStatus 憑證狀態
// ===========================

// ReceiptStatus 兌換憑證狀態
//
// 狀態機：
//   pending（本核心創建時的唯一狀態）
//     → fulfilled / cancelled（由外部履約流程轉移，本核心不處理）
type ReceiptStatus string

const (
	// ReceiptStatusPending 待履約（創建時的初始狀態）
	ReceiptStatusPending ReceiptStatus = "pending"
	// ReceiptStatusFulfilled 已履約（外部履約流程設定）
	ReceiptStatusFulfilled ReceiptStatus = "fulfilled"
	// ReceiptStatusCancelled 已取消（外部履約流程設定）
	ReceiptStatusCancelled ReceiptStatus = "cancelled"
)

// ===========================
// RedemptionReceipt 實體
// ===========================

// RedemptionReceipt 兌換憑證實體
//
// 不變量（Invariants）：
// 1. 每個 (player, reward) 至多一張憑證，永遠如此
//    —— 這是 Redemption Ledger 必須在併發請求下保證的核心唯一性約束，
//       由資料庫 (reward_id, player_id) 唯一索引實現
// 2. 本核心只以 pending 狀態創建憑證，不做後續狀態轉移
type RedemptionReceipt struct {
	receiptID  ReceiptID
	rewardID   RewardID
	playerID   PlayerID
	sessionID  SessionID
	code       string
	status     ReceiptStatus
	redeemedAt time.Time
}

// NewRedemptionReceipt 創建新兌換憑證（Checked Constructor）
//
// 憑證代碼：由 (贊助商 ID 尾碼, 球員 ID 尾碼, 兌換時間 base36) 確定性導出，
// 僅供客服人員人工查詢使用，不是安全令牌
func NewRedemptionReceipt(
	rewardID RewardID,
	playerID PlayerID,
	sessionID SessionID,
	sponsorID SponsorID,
	redeemedAt time.Time,
) (*RedemptionReceipt, error) {
	if rewardID.IsEmpty() {
		return nil, ErrInvalidRewardID.WithContext(
			"reason", "rewardID cannot be empty",
		)
	}
	if playerID.IsEmpty() {
		return nil, ErrInvalidRewardPlayerID.WithContext(
			"reason", "playerID cannot be empty",
		)
	}
	if sessionID.IsEmpty() {
		return nil, ErrInvalidRewardSessionID.WithContext(
			"reason", "sessionID cannot be empty",
		)
	}

	return &RedemptionReceipt{
		receiptID:  NewReceiptID(),
		rewardID:   rewardID,
		playerID:   playerID,
		sessionID:  sessionID,
		code:       GenerateReceiptCode(sponsorID, playerID, redeemedAt),
		status:     ReceiptStatusPending,
		redeemedAt: redeemedAt,
	}, nil
}

// ReconstructRedemptionReceipt 從持久化存儲重建憑證（僅供 Infrastructure Layer 使用）
func ReconstructRedemptionReceipt(
	receiptID ReceiptID,
	rewardID RewardID,
	playerID PlayerID,
	sessionID SessionID,
	code string,
	status ReceiptStatus,
	redeemedAt time.Time,
) (*RedemptionReceipt, error) {
	if receiptID.IsEmpty() {
		return nil, ErrInvalidReceiptID.WithContext(
			"reason", "invalid receipt ID in database",
		)
	}

	return &RedemptionReceipt{
		receiptID:  receiptID,
		rewardID:   rewardID,
		playerID:   playerID,
		sessionID:  sessionID,
		code:       code,
		status:     status,
		redeemedAt: redeemedAt,
	}, nil
}

// GenerateReceiptCode 生成憑證代碼（確定性導出）
//
// 格式：SSSS-PPPP-TTTTTT（大寫）
// - SSSS: 贊助商 ID 的末 4 碼
// - PPPP: 球員 ID 的末 4 碼
// - TTTTTT: 兌換時間 unix 秒數的 base36 緊湊編碼
func GenerateReceiptCode(sponsorID SponsorID, playerID PlayerID, redeemedAt time.Time) string {
	sponsorSuffix := idSuffix(sponsorID.String())
	playerSuffix := idSuffix(playerID.String())
	timestamp := strconv.FormatInt(redeemedAt.Unix(), 36)

	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", sponsorSuffix, playerSuffix, timestamp))
}

// idSuffix 取 UUID 字串的末 4 碼
func idSuffix(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}

// ===========================
// 查詢方法（Getters）
// ===========================

// ReceiptID 獲取憑證 ID
func (r *RedemptionReceipt) ReceiptID() ReceiptID {
	return r.receiptID
}

// RewardID 獲取獎勵 ID
func (r *RedemptionReceipt) RewardID() RewardID {
	return r.rewardID
}

// PlayerID 獲取球員 ID
func (r *RedemptionReceipt) PlayerID() PlayerID {
	return r.playerID
}

// SessionID 獲取球局 ID
func (r *RedemptionReceipt) SessionID() SessionID {
	return r.sessionID
}

// Code 獲取憑證代碼
func (r *RedemptionReceipt) Code() string {
	return r.code
}

// Status 獲取憑證狀態
func (r *RedemptionReceipt) Status() ReceiptStatus {
	return r.status
}

// RedeemedAt 獲取兌換時間
func (r *RedemptionReceipt) RedeemedAt() time.Time {
	return r.redeemedAt
}
