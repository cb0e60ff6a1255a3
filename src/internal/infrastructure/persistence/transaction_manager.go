package persistence

import (
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionManager 實作
// ===========================

// GORMTransactionManager GORM 事務管理器
//
// 事務保證：
// 1. fn 返回 nil → 提交
// 2. fn 返回錯誤 → 回滾，錯誤原樣返回給調用者
// 3. fn panic → 回滾後重新拋出（由 gorm.DB.Transaction 保證）
//
// 使用場景：
// - 所有多步寫操作（兌換獎勵、移除球員的級聯刪除）
// - 單一寫操作也建議走事務，保持 Repository 的 ctx 約定一致
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建 GORM 事務管理器
func NewGORMTransactionManager(db *gorm.DB) shared.TransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在單一資料庫事務中執行 fn
//
// 實作說明：
// - 委託 gorm.DB.Transaction 處理 begin/commit/rollback 與 panic 回滾
// - 事務內的 *gorm.DB 包裝為 TransactionContext 傳給 fn，
//   Repository 透過 getDB(ctx) 取回，Domain/Application Layer 看不到 GORM
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMTransactionContext(tx))
	})
}
