package reward

import (
	"time"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/reward"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// UC-201: ListActiveRewards Use Case
// ===========================

// ListActiveRewardsQuery 查詢獎勵目錄的查詢
//
// SponsorID 為可選過濾條件（空字串 = 列出所有贊助商的獎勵）
type ListActiveRewardsQuery struct {
	SponsorID string
}

// RewardRow 單一獎勵定義列（Output DTO）
type RewardRow struct {
	RewardID           string     // 獎勵 ID
	SponsorID          string     // 贊助商 ID
	Name               string     // 獎勵名稱
	Type               string     // 獎勵類型
	Value              string     // 面額（十進位字串）
	ExpiresAt          *time.Time // 過期時間（nil = 永不過期）
	MaxRedemptions     *int       // 兌換上限（nil = 無限量）
	CurrentRedemptions int        // 已兌換次數（快照）
	HasInventory       bool       // 尚有庫存（快照）
}

// ListActiveRewardsResult 查詢獎勵目錄的結果
type ListActiveRewardsResult struct {
	Rewards []RewardRow
}

// ListActiveRewardsUseCase 查詢獎勵目錄 Use Case
//
// 讀取路徑：獎勵定義由外部管理模組（cmd/seed）建立與編輯，
// 本核心只讀取目錄與受控遞增已兌換次數
type ListActiveRewardsUseCase struct {
	rewardRepo reward.RewardRepository
}

// NewListActiveRewardsUseCase 創建 Use Case 實例
func NewListActiveRewardsUseCase(rewardRepo reward.RewardRepository) *ListActiveRewardsUseCase {
	return &ListActiveRewardsUseCase{
		rewardRepo: rewardRepo,
	}
}

// Execute 執行查詢獎勵目錄
func (uc *ListActiveRewardsUseCase) Execute(query ListActiveRewardsQuery) (*ListActiveRewardsResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢
func (uc *ListActiveRewardsUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query ListActiveRewardsQuery,
) (*ListActiveRewardsResult, error) {
	var sponsorID *reward.SponsorID
	if query.SponsorID != "" {
		id, err := reward.SponsorIDFromString(query.SponsorID)
		if err != nil {
			return nil, err
		}
		sponsorID = &id
	}

	definitions, err := uc.rewardRepo.ListActive(ctx, sponsorID)
	if err != nil {
		return nil, err
	}

	rows := make([]RewardRow, 0, len(definitions))
	for _, definition := range definitions {
		rows = append(rows, RewardRow{
			RewardID:           definition.RewardID().String(),
			SponsorID:          definition.SponsorID().String(),
			Name:               definition.Name(),
			Type:               string(definition.Type()),
			Value:              definition.Value().String(),
			ExpiresAt:          definition.ExpiresAt(),
			MaxRedemptions:     definition.MaxRedemptions(),
			CurrentRedemptions: definition.CurrentRedemptions(),
			HasInventory:       definition.HasInventory(),
		})
	}

	return &ListActiveRewardsResult{Rewards: rows}, nil
}
