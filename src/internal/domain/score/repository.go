package score

import "github.com/fairwaylab/fairway_crm/src/internal/domain/shared"

// ===========================
// ScoreEntry Repository 介面
// ===========================

// ScoreEntryRepository 成績記錄倉儲介面
//
// 設計原則：
// 1. 依賴倒置原則（DIP）：Domain Layer 定義介面，Infrastructure Layer 實作
// 2. Upsert 語義：同洞重複提交由資料庫 (player_id, hole_number) 唯一鍵
//    的 conflict-update 處理，不使用 check-then-insert（避免競爭條件）
type ScoreEntryRepository interface {
	// Upsert 保存成績記錄（同洞已有記錄時整筆取代）
	// 併發語義：同一洞的並發提交以提交順序取最後寫入者
	Upsert(ctx shared.TransactionContext, entry *ScoreEntry) error

	// FindByID 根據記錄 ID 查找成績
	// 返回：找到的記錄，或 ErrEntryNotFound
	FindByID(ctx shared.TransactionContext, entryID EntryID) (*ScoreEntry, error)

	// FindByPlayer 列出球員的所有成績記錄（按洞號排序）
	FindByPlayer(ctx shared.TransactionContext, playerID PlayerID) ([]*ScoreEntry, error)

	// Delete 刪除單筆成績記錄
	// 錯誤：ErrEntryNotFound（記錄不存在）
	Delete(ctx shared.TransactionContext, entryID EntryID) error

	// DeleteByPlayer 刪除球員的所有成績記錄
	// 使用場景：移除球員時的級聯刪除（與球員刪除在同一事務中）
	DeleteByPlayer(ctx shared.TransactionContext, playerID PlayerID) error
}
