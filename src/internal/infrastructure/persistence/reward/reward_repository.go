package reward

import (
	"errors"
	"strings"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/reward"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM 事務上下文
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// RewardRepositoryImpl
// ===========================

// RewardRepositoryImpl 獎勵定義倉儲實現（GORM）
//
// 設計原則：
// - 實作 reward.RewardRepository 接口
// - IncrementRedemptions 必須是單一條件式 UPDATE，
//   絕不能拆成 read-then-write（會重新打開庫存超發的競爭窗口）
type RewardRepositoryImpl struct {
	db *gorm.DB
}

// NewRewardRepository 創建新的獎勵定義倉儲實例
func NewRewardRepository(db *gorm.DB) reward.RewardRepository {
	return &RewardRepositoryImpl{db: db}
}

// Save 保存新獎勵定義（外部管理模組的寫路徑）
func (r *RewardRepositoryImpl) Save(ctx shared.TransactionContext, definition *reward.RewardDefinition) error {
	db := r.getDB(ctx)

	result := db.Create(rewardToGORM(definition))
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// FindByID 根據獎勵 ID 查找獎勵定義
//
// 錯誤處理：
// - gorm.ErrRecordNotFound → reward.ErrRewardNotFound
// - 其他資料庫錯誤 → 原始錯誤
func (r *RewardRepositoryImpl) FindByID(ctx shared.TransactionContext, rewardID reward.RewardID) (*reward.RewardDefinition, error) {
	db := r.getDB(ctx)

	var gormModel RewardGORM

	result := db.Where("reward_id = ?", rewardID.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, reward.ErrRewardNotFound.WithContext(
				"reward_id", rewardID.String(),
			)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// ListActive 列出啟用中的獎勵定義
func (r *RewardRepositoryImpl) ListActive(ctx shared.TransactionContext, sponsorID *reward.SponsorID) ([]*reward.RewardDefinition, error) {
	db := r.getDB(ctx)

	var gormModels []RewardGORM

	query := db.Where("is_active = ?", true)
	if sponsorID != nil {
		query = query.Where("sponsor_id = ?", sponsorID.String())
	}

	result := query.Order("created_at ASC").Find(&gormModels)
	if result.Error != nil {
		return nil, result.Error
	}

	definitions := make([]*reward.RewardDefinition, 0, len(gormModels))
	for i := range gormModels {
		definition, err := gormModels[i].toDomain()
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)
	}

	return definitions, nil
}

// IncrementRedemptions 條件式遞增已兌換次數（原子操作）
//
// 庫存上限前置條件寫在 WHERE 子句中，由資料庫原子裁決：
// 併發兌換最後一份庫存時，恰好一個 UPDATE 影響 1 筆，其餘影響 0 筆。
//
// 影響 0 筆的兩種情況靠後續 FindByID 區分：
// - ID 不存在 → ErrRewardNotFound
// - 庫存耗盡 → ErrInventoryExhausted
func (r *RewardRepositoryImpl) IncrementRedemptions(ctx shared.TransactionContext, rewardID reward.RewardID) error {
	db := r.getDB(ctx)

	result := db.Model(&RewardGORM{}).
		Where("reward_id = ?", rewardID.String()).
		Where("max_redemptions IS NULL OR current_redemptions < max_redemptions").
		Update("current_redemptions", gorm.Expr("current_redemptions + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&RewardGORM{}).
			Where("reward_id = ?", rewardID.String()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return reward.ErrRewardNotFound.WithContext(
				"reward_id", rewardID.String(),
			)
		}
		return reward.ErrInventoryExhausted.WithContext(
			"reward_id", rewardID.String(),
		)
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
func (r *RewardRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
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
