package reward

import (
	"errors"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/reward"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// ReceiptRepositoryImpl
// ===========================

// ReceiptRepositoryImpl 兌換憑證倉儲實現（GORM）
//
// 設計原則：
// - 實作 reward.ReceiptRepository 接口
// - (reward_id, player_id) 唯一索引是「至多一張憑證」的最終裁決者，
//   唯一約束違反轉換為 reward.ErrAlreadyRedeemed
type ReceiptRepositoryImpl struct {
	db *gorm.DB
}

// NewReceiptRepository 創建新的兌換憑證倉儲實例
func NewReceiptRepository(db *gorm.DB) reward.ReceiptRepository {
	return &ReceiptRepositoryImpl{db: db}
}

// Save 保存新兌換憑證
//
// 錯誤處理：
// - 唯一約束違反（reward_id, player_id）→ reward.ErrAlreadyRedeemed
// - 其他資料庫錯誤 → 原始錯誤
func (r *ReceiptRepositoryImpl) Save(ctx shared.TransactionContext, receipt *reward.RedemptionReceipt) error {
	db := r.getDB(ctx)

	result := db.Create(receiptToGORM(receipt))
	if result.Error != nil {
		if isUniqueConstraintError(result.Error) {
			return reward.ErrAlreadyRedeemed.WithContext(
				"reward_id", receipt.RewardID().String(),
				"player_id", receipt.PlayerID().String(),
			)
		}
		return result.Error
	}

	return nil
}

// FindByID 根據憑證 ID 查找憑證
func (r *ReceiptRepositoryImpl) FindByID(ctx shared.TransactionContext, receiptID reward.ReceiptID) (*reward.RedemptionReceipt, error) {
	db := r.getDB(ctx)

	var gormModel ReceiptGORM

	result := db.Where("receipt_id = ?", receiptID.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, reward.ErrReceiptNotFound.WithContext(
				"receipt_id", receiptID.String(),
			)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// ExistsByPlayerAndReward 檢查 (player, reward) 憑證是否已存在
func (r *ReceiptRepositoryImpl) ExistsByPlayerAndReward(ctx shared.TransactionContext, playerID reward.PlayerID, rewardID reward.RewardID) (bool, error) {
	db := r.getDB(ctx)

	var count int64

	result := db.Model(&ReceiptGORM{}).
		Where("player_id = ? AND reward_id = ?", playerID.String(), rewardID.String()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// FindByPlayer 列出球員的所有兌換憑證（按兌換時間排序）
func (r *ReceiptRepositoryImpl) FindByPlayer(ctx shared.TransactionContext, playerID reward.PlayerID) ([]*reward.RedemptionReceipt, error) {
	db := r.getDB(ctx)

	var gormModels []ReceiptGORM

	result := db.Where("player_id = ?", playerID.String()).
		Order("redeemed_at ASC").
		Find(&gormModels)
	if result.Error != nil {
		return nil, result.Error
	}

	receipts := make([]*reward.RedemptionReceipt, 0, len(gormModels))
	for i := range gormModels {
		receipt, err := gormModels[i].toDomain()
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	return receipts, nil
}

// ===========================
// Helper Methods
// ===========================

// getDB 獲取 GORM DB 實例
func (r *ReceiptRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if ctx != nil {
		if txCtx, ok := ctx.(gormTransactionContext); ok {
			return txCtx.GetDB()
		}
	}
	return r.db
}
