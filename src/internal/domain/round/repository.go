package round

import "github.com/fairwaylab/fairway_crm/src/internal/domain/shared"

// ===========================
// Round Repository 介面
// ===========================

// SessionRepository 球局倉儲介面
//
// 設計原則：
// 1. 依賴倒置原則（DIP）：Domain Layer 定義介面，Infrastructure Layer 實作
// 2. 介面隔離原則（ISP）：只包含本核心用例所需的操作
// 3. 聚合根持久化：每個聚合根一個 Repository
// 4. 事務支持：使用 TransactionContext 封裝事務，避免基礎設施洩漏
type SessionRepository interface {
	// Save 保存新球局
	// 前置條件：球局不存在
	Save(ctx shared.TransactionContext, session *Session) error

	// FindByID 根據球局 ID 查找球局
	// 返回：找到的球局，或 ErrSessionNotFound
	FindByID(ctx shared.TransactionContext, sessionID SessionID) (*Session, error)

	// Update 更新球局（狀態轉移後持久化）
	// 前置條件：球局已存在
	Update(ctx shared.TransactionContext, session *Session) error
}

// PlayerRepository 球員倉儲介面
type PlayerRepository interface {
	// Save 保存新球員
	// 錯誤：ErrDuplicateIdentity（同一身份已在球局中，由唯一約束保證）
	Save(ctx shared.TransactionContext, player *Player) error

	// FindByID 根據球員 ID 查找球員
	// 返回：找到的球員，或 ErrPlayerNotFound
	FindByID(ctx shared.TransactionContext, playerID PlayerID) (*Player, error)

	// FindBySession 列出球局內所有球員（按順位排序）
	FindBySession(ctx shared.TransactionContext, sessionID SessionID) ([]*Player, error)

	// CountBySession 計算球局內球員數（Start 前置條件檢查）
	CountBySession(ctx shared.TransactionContext, sessionID SessionID) (int, error)

	// NextPosition 計算球局內下一個打擊順位（max(position) + 1，從 1 開始）
	// 業務規則：順位在建立當下連續，移除後允許稀疏
	NextPosition(ctx shared.TransactionContext, sessionID SessionID) (int, error)

	// ExistsByIdentity 檢查同一身份是否已在球局中
	// 用途：加入球局時的友好錯誤訊息（最終一致性由資料庫唯一約束保證）
	ExistsByIdentity(ctx shared.TransactionContext, sessionID SessionID, identity Identity) (bool, error)

	// Update 更新球員（身份遷移後持久化）
	Update(ctx shared.TransactionContext, player *Player) error

	// Delete 刪除球員
	// 注意：成績記錄的級聯刪除由 Application Layer 在同一事務中協調
	Delete(ctx shared.TransactionContext, playerID PlayerID) error
}
