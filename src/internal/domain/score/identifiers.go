package score

import "github.com/fairwaylab/fairway_crm/src/internal/domain/shared"

// ===========================
// 實體 ID 類型定義
// ===========================

// 設計原則：使用泛型 EntityID[T] 消除重複代碼
//
// 注意：PlayerID 在此 bounded context 有獨立的標記類型。
// 與 round context 的 PlayerID 在字串層面共享同一 UUID 值，
// 但類型上隔離，跨 context 的轉換由 Application Layer 以字串完成

// ===========================
// EntryID - 成績記錄 ID
// ===========================

// EntryMarker 是 EntryID 的標記類型
type EntryMarker struct{}

// EntryID 成績記錄的唯一標識符
type EntryID = shared.EntityID[EntryMarker]

// NewEntryID 生成新的成績記錄 ID（UUID v4）
func NewEntryID() EntryID {
	return shared.NewEntityID[EntryMarker]()
}

// EntryIDFromString 從字串解析成績記錄 ID
func EntryIDFromString(s string) (EntryID, error) {
	return shared.EntityIDFromString[EntryMarker](s, ErrInvalidEntryID)
}

// ===========================
// PlayerID - 球員 ID
// ===========================

// PlayerMarker 是 PlayerID 的標記類型
type PlayerMarker struct{}

// PlayerID 球員的唯一標識符（score context 視角）
type PlayerID = shared.EntityID[PlayerMarker]

// NewPlayerID 生成新的球員 ID（UUID v4，測試用途）
func NewPlayerID() PlayerID {
	return shared.NewEntityID[PlayerMarker]()
}

// PlayerIDFromString 從字串解析球員 ID
func PlayerIDFromString(s string) (PlayerID, error) {
	return shared.EntityIDFromString[PlayerMarker](s, ErrInvalidScorePlayerID)
}
