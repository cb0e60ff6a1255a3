package round

import (
	"errors"
	"strings"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM 事務上下文
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// SessionRepositoryImpl
// ===========================

// SessionRepositoryImpl 球局倉儲實現（GORM）
//
// 設計原則：
// - 實作 round.SessionRepository 接口
// - 處理 Domain 與 GORM 模型轉換
// - 將 GORM 錯誤轉換為 Domain 錯誤
type SessionRepositoryImpl struct {
	db *gorm.DB
}

// NewSessionRepository 創建新的球局倉儲實例
func NewSessionRepository(db *gorm.DB) round.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Save 保存新球局
func (r *SessionRepositoryImpl) Save(ctx shared.TransactionContext, session *round.Session) error {
	db := r.getDB(ctx)

	result := db.Create(sessionToGORM(session))
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// FindByID 根據球局 ID 查找球局
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → round.ErrSessionNotFound
// - 其他資料庫錯誤 → 原始錯誤
func (r *SessionRepositoryImpl) FindByID(ctx shared.TransactionContext, sessionID round.SessionID) (*round.Session, error) {
	db := r.getDB(ctx)

	var gormModel SessionGORM

	result := db.Where("session_id = ?", sessionID.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, round.ErrSessionNotFound.WithContext(
				"session_id", sessionID.String(),
			)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// Update 更新球局（狀態轉移後持久化）
//
// 注意：使用 Save 而非 Updates，因為：
// - Save 會更新所有字段（包括零值）
// - ended_at 由 nil → 非 nil 的轉移需要完整寫入
func (r *SessionRepositoryImpl) Update(ctx shared.TransactionContext, session *round.Session) error {
	db := r.getDB(ctx)

	result := db.Save(sessionToGORM(session))
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// ===========================
// Helper Methods
// ===========================

// getDB 獲取 GORM DB 實例
//
// 行為：
//   - ctx != nil: 使用事務中的 DB（從 TransactionContext 獲取）
//   - ctx == nil: 使用預設 DB（auto-commit 模式）
func (r *SessionRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if ctx != nil {
		if txCtx, ok := ctx.(gormTransactionContext); ok {
			return txCtx.GetDB()
		}
	}
	return r.db
}

// isUniqueConstraintError 判斷是否為唯一約束錯誤
//
// 支持的資料庫：
// - PostgreSQL: "duplicate key value violates unique constraint"
// - SQLite: "UNIQUE constraint failed"
// - MySQL: "Duplicate entry"
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	// PostgreSQL
	if strings.Contains(errMsg, "duplicate key value violates unique constraint") {
		return true
	}

	// SQLite
	if strings.Contains(errMsg, "unique constraint failed") {
		return true
	}

	// MySQL
	if strings.Contains(errMsg, "duplicate entry") {
		return true
	}

	return false
}
