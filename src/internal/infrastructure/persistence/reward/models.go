package reward

import (
	"time"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/reward"
	"github.com/shopspring/decimal"
)

// ===========================
// GORM Models
// ===========================

// RewardGORM 獎勵定義資料表模型
//
// 資料庫約束：
// - reward_id: 主鍵（UUID）
// - current_redemptions: 受控遞增欄位
//   不變量 current_redemptions <= max_redemptions 由條件式 UPDATE 保證
// - 資格條件四軸皆可空（NULL = 該軸不施加約束）
type RewardGORM struct {
	RewardID  string `gorm:"column:reward_id;type:varchar(36);primaryKey"`
	SponsorID string `gorm:"column:sponsor_id;type:varchar(36);not null;index"`

	Name       string          `gorm:"column:name;not null"`
	RewardType string          `gorm:"column:reward_type;type:varchar(16);not null"`
	Value      decimal.Decimal `gorm:"column:value;type:decimal(12,2);not null"`

	ExpiresAt          *time.Time `gorm:"column:expires_at"`
	MaxRedemptions     *int       `gorm:"column:max_redemptions"`
	CurrentRedemptions int        `gorm:"column:current_redemptions;not null;default:0;check:current_redemptions >= 0"`
	IsActive           bool       `gorm:"column:is_active;not null;default:true;index"`

	// 資格條件（扁平化存儲，NULL = 未設定）
	MinScore      *int    `gorm:"column:min_score"`
	MaxScore      *int    `gorm:"column:max_score"`
	RequiredHoles *int    `gorm:"column:required_holes"`
	GameFormat    *string `gorm:"column:game_format;type:varchar(16)"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (RewardGORM) TableName() string {
	return "reward_definitions"
}

// ReceiptGORM 兌換憑證資料表模型
//
// 資料庫約束：
// - receipt_id: 主鍵（UUID）
// - (reward_id, player_id): 唯一索引
//   —— 「每個 (player, reward) 至多一張憑證」的最終保證，
//      併發兌換由資料庫裁決，恰好一個成功
type ReceiptGORM struct {
	ReceiptID string `gorm:"column:receipt_id;type:varchar(36);primaryKey"`
	RewardID  string `gorm:"column:reward_id;type:varchar(36);not null;uniqueIndex:idx_receipts_reward_player"`
	PlayerID  string `gorm:"column:player_id;type:varchar(36);not null;uniqueIndex:idx_receipts_reward_player"`
	SessionID string `gorm:"column:session_id;type:varchar(36);not null;index"`

	Code   string `gorm:"column:code;not null"`
	Status string `gorm:"column:status;type:varchar(16);not null"`

	RedeemedAt time.Time `gorm:"column:redeemed_at;not null"`
}

// TableName 指定資料表名稱
func (ReceiptGORM) TableName() string {
	return "redemption_receipts"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (g *RewardGORM) toDomain() (*reward.RewardDefinition, error) {
	rewardID, err := reward.RewardIDFromString(g.RewardID)
	if err != nil {
		return nil, err
	}

	sponsorID, err := reward.SponsorIDFromString(g.SponsorID)
	if err != nil {
		return nil, err
	}

	rewardType, err := reward.NewRewardType(g.RewardType)
	if err != nil {
		return nil, err
	}

	conditions := reward.EligibilityConditions{
		MinScore:      g.MinScore,
		MaxScore:      g.MaxScore,
		RequiredHoles: g.RequiredHoles,
		GameFormat:    g.GameFormat,
	}

	return reward.ReconstructRewardDefinition(
		rewardID,
		sponsorID,
		g.Name,
		rewardType,
		g.Value,
		g.ExpiresAt,
		g.MaxRedemptions,
		g.CurrentRedemptions,
		g.IsActive,
		conditions,
		g.CreatedAt,
		g.UpdatedAt,
	)
}

// rewardToGORM 將 Domain 模型轉換為 GORM 模型
func rewardToGORM(definition *reward.RewardDefinition) *RewardGORM {
	conditions := definition.Conditions()

	return &RewardGORM{
		RewardID:           definition.RewardID().String(),
		SponsorID:          definition.SponsorID().String(),
		Name:               definition.Name(),
		RewardType:         string(definition.Type()),
		Value:              definition.Value(),
		ExpiresAt:          definition.ExpiresAt(),
		MaxRedemptions:     definition.MaxRedemptions(),
		CurrentRedemptions: definition.CurrentRedemptions(),
		IsActive:           definition.IsActive(),
		MinScore:           conditions.MinScore,
		MaxScore:           conditions.MaxScore,
		RequiredHoles:      conditions.RequiredHoles,
		GameFormat:         conditions.GameFormat,
		CreatedAt:          definition.CreatedAt(),
		UpdatedAt:          definition.UpdatedAt(),
	}
}

// toDomain 將 GORM 模型轉換為 Domain 模型
func (g *ReceiptGORM) toDomain() (*reward.RedemptionReceipt, error) {
	receiptID, err := reward.ReceiptIDFromString(g.ReceiptID)
	if err != nil {
		return nil, err
	}

	rewardID, err := reward.RewardIDFromString(g.RewardID)
	if err != nil {
		return nil, err
	}

	playerID, err := reward.PlayerIDFromString(g.PlayerID)
	if err != nil {
		return nil, err
	}

	sessionID, err := reward.SessionIDFromString(g.SessionID)
	if err != nil {
		return nil, err
	}

	return reward.ReconstructRedemptionReceipt(
		receiptID,
		rewardID,
		playerID,
		sessionID,
		g.Code,
		reward.ReceiptStatus(g.Status),
		g.RedeemedAt,
	)
}

// receiptToGORM 將 Domain 模型轉換為 GORM 模型
func receiptToGORM(receipt *reward.RedemptionReceipt) *ReceiptGORM {
	return &ReceiptGORM{
		ReceiptID:  receipt.ReceiptID().String(),
		RewardID:   receipt.RewardID().String(),
		PlayerID:   receipt.PlayerID().String(),
		SessionID:  receipt.SessionID().String(),
		Code:       receipt.Code(),
		Status:     string(receipt.Status()),
		RedeemedAt: receipt.RedeemedAt(),
	}
}
