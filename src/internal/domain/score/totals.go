package score

// ===========================
// Totals 聚合統計
// ===========================

// Totals 單一球員的成績聚合
//
// 派生值：由成績記錄列表即時計算，不存儲在數據庫
// 用途：排名計算、獎勵資格評估（totalStrokes / holesPlayed 兩軸）
type Totals struct {
	TotalStrokes int // 總桿數
	HolesPlayed  int // 已記錄成績的洞數
}

// ComputeTotals 計算成績聚合（純函數，無副作用）
//
// 不變量保證：每個 (player, hole) 至多一筆記錄（由 Score Ledger upsert 保證），
// 因此 HolesPlayed 即記錄筆數，無需去重
func ComputeTotals(entries []*ScoreEntry) Totals {
	totals := Totals{}
	for _, entry := range entries {
		totals.TotalStrokes += entry.Strokes().Value()
		totals.HolesPlayed++
	}
	return totals
}
