package round

import (
	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/score"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// UC-006: GetStandings Use Case
// ===========================

// GetStandingsQuery 查詢排名的查詢（Input DTO）
type GetStandingsQuery struct {
	SessionID string // 球局 ID (UUID)
}

// StandingRow 單一球員的排名列（Output DTO）
type StandingRow struct {
	Rank         int    // 名次（從 1 開始，依排序結果編號）
	PlayerID     string // 球員 ID
	DisplayName  string // 顯示名稱
	Position     int    // 打擊順位
	TotalStrokes int    // 總桿數
	HolesPlayed  int    // 已完成洞數
}

// GetStandingsResult 查詢排名結果（Output DTO）
type GetStandingsResult struct {
	SessionID string        // 球局 ID
	Status    string        // 球局狀態（任何狀態皆可查詢）
	Standings []StandingRow // 排名列表
}

// GetStandingsUseCase 查詢排名 Use Case
//
// 排名鍵（依序）：總桿數升冪 → 已完成洞數降冪 → 打擊順位升冪（穩定）。
// 任何球局狀態皆可查詢（進行中為即時排名、結束後為最終排名）
type GetStandingsUseCase struct {
	sessionRepo round.SessionRepository
	playerRepo  round.PlayerRepository
	scoreRepo   score.ScoreEntryRepository
}

// NewGetStandingsUseCase 創建 Use Case 實例
func NewGetStandingsUseCase(
	sessionRepo round.SessionRepository,
	playerRepo round.PlayerRepository,
	scoreRepo score.ScoreEntryRepository,
) *GetStandingsUseCase {
	return &GetStandingsUseCase{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		scoreRepo:   scoreRepo,
	}
}

// Execute 執行查詢排名
//
// 執行流程：
// 1. 驗證並轉換 SessionID
// 2. 查找球局與球員列表
// 3. 逐一聚合球員成績（Score Ledger 的派生值，不存儲）
// 4. 排序並編號
//
// 查詢操作不需要事務（單次快照讀取即可）
func (uc *GetStandingsUseCase) Execute(query GetStandingsQuery) (*GetStandingsResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢
//
// 使用場景：
// - 在已有事務中查詢排名（與其他操作組合）
// - 獨立查詢時可傳入 nil（不需要事務）
func (uc *GetStandingsUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query GetStandingsQuery,
) (*GetStandingsResult, error) {
	// 1. 驗證並轉換 SessionID
	sessionID, err := round.SessionIDFromString(query.SessionID)
	if err != nil {
		return nil, err
	}

	// 2. 查找球局與球員列表
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	players, err := uc.playerRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// 3. 逐一聚合球員成績
	standings := make([]round.Standing, 0, len(players))
	for _, player := range players {
		scorePlayerID, err := score.PlayerIDFromString(player.PlayerID().String())
		if err != nil {
			return nil, err
		}

		entries, err := uc.scoreRepo.FindByPlayer(ctx, scorePlayerID)
		if err != nil {
			return nil, err
		}
		totals := score.ComputeTotals(entries)

		standings = append(standings, round.Standing{
			PlayerID:     player.PlayerID(),
			DisplayName:  player.DisplayName(),
			Position:     player.Position(),
			TotalStrokes: totals.TotalStrokes,
			HolesPlayed:  totals.HolesPlayed,
		})
	}

	// 4. 排序並編號
	round.SortStandings(standings)

	rows := make([]StandingRow, 0, len(standings))
	for i, standing := range standings {
		rows = append(rows, StandingRow{
			Rank:         i + 1,
			PlayerID:     standing.PlayerID.String(),
			DisplayName:  standing.DisplayName,
			Position:     standing.Position,
			TotalStrokes: standing.TotalStrokes,
			HolesPlayed:  standing.HolesPlayed,
		})
	}

	return &GetStandingsResult{
		SessionID: session.SessionID().String(),
		Status:    string(session.Status()),
		Standings: rows,
	}, nil
}
