package round

import "sort"

// ===========================
// Standings 排名計算
// ===========================

// Standing 單一球員的排名資料
//
// TotalStrokes / HolesPlayed 由 Score Ledger 聚合提供（Application Layer 組裝），
// 此處只保留排名所需的純數值，避免跨 bounded context 依賴
type Standing struct {
	PlayerID     PlayerID
	DisplayName  string
	Position     int // 加入球局時的打擊順位（最終平手時的穩定鍵）
	TotalStrokes int
	HolesPlayed  int
}

// SortStandings 排序排名列表（就地排序）
//
// 排名鍵（依序）：
// 1. 總桿數升冪（桿數少者勝）
// 2. 已完成洞數降冪（桿數相同時，完成較多洞者排前）
// 3. 其餘平手按原始順位穩定排序
//
// 注意：第 2 鍵會讓未完成的低桿局排在完整的高桿局之前，
// 此行為沿襲既有計分規則，維持不變
func SortStandings(standings []Standing) {
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.TotalStrokes != b.TotalStrokes {
			return a.TotalStrokes < b.TotalStrokes
		}
		if a.HolesPlayed != b.HolesPlayed {
			return a.HolesPlayed > b.HolesPlayed
		}
		return a.Position < b.Position
	})
}
