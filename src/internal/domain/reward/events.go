package reward

import (
	"time"

	"github.com/google/uuid"
)

// ===========================
// RewardRedeemed 領域事件
// ===========================

// RewardRedeemedEvent 獎勵已兌換事件
//
// 使用場景：
// - 兌換事務提交後發布，供外部協作者（推播通知、贊助商報表）消費
type RewardRedeemedEvent struct {
	eventID    string
	receiptID  ReceiptID
	rewardID   RewardID
	playerID   PlayerID
	sessionID  SessionID
	code       string
	occurredAt time.Time
}

// NewRewardRedeemedEvent 創建獎勵已兌換事件
func NewRewardRedeemedEvent(receipt *RedemptionReceipt) *RewardRedeemedEvent {
	return &RewardRedeemedEvent{
		eventID:    uuid.New().String(),
		receiptID:  receipt.ReceiptID(),
		rewardID:   receipt.RewardID(),
		playerID:   receipt.PlayerID(),
		sessionID:  receipt.SessionID(),
		code:       receipt.Code(),
		occurredAt: time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *RewardRedeemedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *RewardRedeemedEvent) EventType() string {
	return "reward.redeemed"
}

// OccurredAt 實現 DomainEvent 介面
func (e *RewardRedeemedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *RewardRedeemedEvent) AggregateID() string {
	return e.rewardID.String()
}

// ReceiptID 獲取憑證 ID
func (e *RewardRedeemedEvent) ReceiptID() ReceiptID {
	return e.receiptID
}

// RewardID 獲取獎勵 ID
func (e *RewardRedeemedEvent) RewardID() RewardID {
	return e.rewardID
}

// PlayerID 獲取球員 ID
func (e *RewardRedeemedEvent) PlayerID() PlayerID {
	return e.playerID
}

// SessionID 獲取球局 ID
func (e *RewardRedeemedEvent) SessionID() SessionID {
	return e.sessionID
}

// Code 獲取憑證代碼
func (e *RewardRedeemedEvent) Code() string {
	return e.code
}
