package score

import (
	"github.com/fairwaylab/fairway_crm/src/internal/domain/score"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// GetTotalsQuery 查詢成績聚合的查詢
type GetTotalsQuery struct {
	PlayerID string // 球員 ID (UUID)
}

// GetTotalsResult 查詢成績聚合的結果
type GetTotalsResult struct {
	PlayerID     string // 球員 ID
	TotalStrokes int    // 總桿數
	HolesPlayed  int    // 已記錄成績的洞數
}

// GetTotalsUseCase 查詢成績聚合 Use Case
//
// 聚合為派生值：由成績記錄列表即時計算，不存儲。
// 每個 (player, hole) 至多一筆記錄，因此 HolesPlayed 即記錄筆數
type GetTotalsUseCase struct {
	scoreRepo score.ScoreEntryRepository
}

// NewGetTotalsUseCase 創建 Use Case 實例
func NewGetTotalsUseCase(scoreRepo score.ScoreEntryRepository) *GetTotalsUseCase {
	return &GetTotalsUseCase{
		scoreRepo: scoreRepo,
	}
}

// Execute 執行查詢成績聚合
func (uc *GetTotalsUseCase) Execute(query GetTotalsQuery) (*GetTotalsResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢
//
// 使用場景：
// - 兌換資格評估時在同一事務中讀取表現數據
// - 獨立查詢時可傳入 nil（不需要事務）
func (uc *GetTotalsUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query GetTotalsQuery,
) (*GetTotalsResult, error) {
	playerID, err := score.PlayerIDFromString(query.PlayerID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.scoreRepo.FindByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	totals := score.ComputeTotals(entries)

	return &GetTotalsResult{
		PlayerID:     playerID.String(),
		TotalStrokes: totals.TotalStrokes,
		HolesPlayed:  totals.HolesPlayed,
	}, nil
}
