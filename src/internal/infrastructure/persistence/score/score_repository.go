package score

import (
	"errors"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/score"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormTransactionContext GORM 事務上下文
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// ===========================
// ScoreEntryRepositoryImpl
// ===========================

// ScoreEntryRepositoryImpl 成績記錄倉儲實現（GORM）
//
// 設計原則：
// - 實作 score.ScoreEntryRepository 接口
// - Upsert 使用 (player_id, hole_number) 唯一鍵的 conflict-update，
//   整筆取代而非合併部分欄位（同洞的併發提交以提交順序取最後寫入者）
type ScoreEntryRepositoryImpl struct {
	db *gorm.DB
}

// NewScoreEntryRepository 創建新的成績記錄倉儲實例
func NewScoreEntryRepository(db *gorm.DB) score.ScoreEntryRepository {
	return &ScoreEntryRepositoryImpl{db: db}
}

// Upsert 保存成績記錄（同洞已有記錄時整筆取代）
//
// 實作說明：
// - INSERT ... ON CONFLICT (player_id, hole_number) DO UPDATE
// - 保留既有的 entry_id（取代語義：同一鍵只換內容，不換身份）
// - 取代欄位：strokes / putts / latitude / longitude / recorded_at
func (r *ScoreEntryRepositoryImpl) Upsert(ctx shared.TransactionContext, entry *score.ScoreEntry) error {
	db := r.getDB(ctx)

	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "player_id"}, {Name: "hole_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"entry_id", "strokes", "putts", "latitude", "longitude", "recorded_at",
		}),
	}).Create(toGORM(entry))
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// FindByID 根據記錄 ID 查找成績
func (r *ScoreEntryRepositoryImpl) FindByID(ctx shared.TransactionContext, entryID score.EntryID) (*score.ScoreEntry, error) {
	db := r.getDB(ctx)

	var gormModel ScoreEntryGORM

	result := db.Where("entry_id = ?", entryID.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, score.ErrEntryNotFound.WithContext(
				"entry_id", entryID.String(),
			)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// FindByPlayer 列出球員的所有成績記錄（按洞號排序）
func (r *ScoreEntryRepositoryImpl) FindByPlayer(ctx shared.TransactionContext, playerID score.PlayerID) ([]*score.ScoreEntry, error) {
	db := r.getDB(ctx)

	var gormModels []ScoreEntryGORM

	result := db.Where("player_id = ?", playerID.String()).Order("hole_number ASC").Find(&gormModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*score.ScoreEntry, 0, len(gormModels))
	for i := range gormModels {
		entry, err := gormModels[i].toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Delete 刪除單筆成績記錄
func (r *ScoreEntryRepositoryImpl) Delete(ctx shared.TransactionContext, entryID score.EntryID) error {
	db := r.getDB(ctx)

	result := db.Where("entry_id = ?", entryID.String()).Delete(&ScoreEntryGORM{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return score.ErrEntryNotFound.WithContext(
			"entry_id", entryID.String(),
		)
	}

	return nil
}

// DeleteByPlayer 刪除球員的所有成績記錄（移除球員時的級聯刪除）
//
// 注意：球員可能沒有任何成績，影響 0 筆不是錯誤
func (r *ScoreEntryRepositoryImpl) DeleteByPlayer(ctx shared.TransactionContext, playerID score.PlayerID) error {
	db := r.getDB(ctx)

	result := db.Where("player_id = ?", playerID.String()).Delete(&ScoreEntryGORM{})
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// getDB 獲取 GORM DB 實例
func (r *ScoreEntryRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if ctx != nil {
		if txCtx, ok := ctx.(gormTransactionContext); ok {
			return txCtx.GetDB()
		}
	}
	return r.db
}
