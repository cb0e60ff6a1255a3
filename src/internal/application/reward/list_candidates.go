package reward

import (
	"time"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/reward"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/score"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// UC-202: ListCandidates Use Case
// ===========================

// ListCandidatesQuery 查詢可兌換獎勵的查詢
type ListCandidatesQuery struct {
	SessionID string // 球局 ID (UUID)
	PlayerID  string // 球員 ID (UUID)
}

// CandidateRow 單一可兌換獎勵列（Output DTO）
type CandidateRow struct {
	RewardID  string // 獎勵 ID
	SponsorID string // 贊助商 ID
	Name      string // 獎勵名稱
	Type      string // 獎勵類型
	Value     string // 面額（十進位字串）
}

// ListCandidatesResult 查詢可兌換獎勵的結果
type ListCandidatesResult struct {
	SessionFinished bool           // 球局是否已結束（未結束時候選列表必為空）
	Candidates      []CandidateRow // 通過全部過濾的獎勵
}

// ListCandidatesUseCase 查詢可兌換獎勵 Use Case
//
// 設計原則：純查詢，無副作用，可重複調用。
// 此列表是快照建議，不是保留：提交兌換時一切條件重新驗證
//
// 前置條件：球員必須屬於查詢的球局（否則 ErrPlayerNotFound）
//
// 過濾條件（依序）：
// 1. 球局已結束（未結束 → 空列表，不是錯誤）
// 2. 獎勵啟用中
// 3. 未過期
// 4. 尚有庫存（快照）
// 5. 球員尚未兌換過該獎勵
// 6. 球員表現滿足資格條件
type ListCandidatesUseCase struct {
	sessionRepo round.SessionRepository
	playerRepo  round.PlayerRepository
	scoreRepo   score.ScoreEntryRepository
	rewardRepo  reward.RewardRepository
	receiptRepo reward.ReceiptRepository
}

// NewListCandidatesUseCase 創建 Use Case 實例
func NewListCandidatesUseCase(
	sessionRepo round.SessionRepository,
	playerRepo round.PlayerRepository,
	scoreRepo score.ScoreEntryRepository,
	rewardRepo reward.RewardRepository,
	receiptRepo reward.ReceiptRepository,
) *ListCandidatesUseCase {
	return &ListCandidatesUseCase{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		scoreRepo:   scoreRepo,
		rewardRepo:  rewardRepo,
		receiptRepo: receiptRepo,
	}
}

// Execute 執行查詢可兌換獎勵
func (uc *ListCandidatesUseCase) Execute(query ListCandidatesQuery) (*ListCandidatesResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢
func (uc *ListCandidatesUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query ListCandidatesQuery,
) (*ListCandidatesResult, error) {
	// 1. 驗證輸入
	sessionID, err := round.SessionIDFromString(query.SessionID)
	if err != nil {
		return nil, err
	}

	scorePlayerID, err := score.PlayerIDFromString(query.PlayerID)
	if err != nil {
		return nil, err
	}

	rewardPlayerID, err := reward.PlayerIDFromString(query.PlayerID)
	if err != nil {
		return nil, err
	}

	roundPlayerID, err := round.PlayerIDFromString(query.PlayerID)
	if err != nil {
		return nil, err
	}

	// 2. 球員必須屬於該球局（否則表現會被拿去對錯誤球局的賽制評估）
	player, err := uc.playerRepo.FindByID(ctx, roundPlayerID)
	if err != nil {
		return nil, err
	}
	if !player.SessionID().Equals(sessionID) {
		return nil, round.ErrPlayerNotFound.WithContext(
			"player_id", query.PlayerID,
			"session_id", query.SessionID,
		)
	}

	// 3. 球局未結束 → 空列表（不是錯誤：資格只在終局成績上評估）
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsFinished() {
		return &ListCandidatesResult{SessionFinished: false}, nil
	}

	// 4. 聚合球員表現
	entries, err := uc.scoreRepo.FindByPlayer(ctx, scorePlayerID)
	if err != nil {
		return nil, err
	}
	totals := score.ComputeTotals(entries)

	perf := reward.PlayerPerformance{
		TotalStrokes: totals.TotalStrokes,
		HolesPlayed:  totals.HolesPlayed,
		GameFormat:   string(session.Format()),
	}

	// 5. 逐一過濾啟用中的獎勵
	definitions, err := uc.rewardRepo.ListActive(ctx, nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	candidates := make([]CandidateRow, 0, len(definitions))

	for _, definition := range definitions {
		if definition.IsExpired(now) {
			continue
		}
		if !definition.HasInventory() {
			continue
		}

		redeemed, err := uc.receiptRepo.ExistsByPlayerAndReward(ctx, rewardPlayerID, definition.RewardID())
		if err != nil {
			return nil, err
		}
		if redeemed {
			continue
		}

		if satisfied, _ := definition.EvaluateEligibility(perf); !satisfied {
			continue
		}

		candidates = append(candidates, CandidateRow{
			RewardID:  definition.RewardID().String(),
			SponsorID: definition.SponsorID().String(),
			Name:      definition.Name(),
			Type:      string(definition.Type()),
			Value:     definition.Value().String(),
		})
	}

	return &ListCandidatesResult{
		SessionFinished: true,
		Candidates:      candidates,
	}, nil
}
