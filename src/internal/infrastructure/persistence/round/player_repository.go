package round

import (
	"errors"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// PlayerRepositoryImpl
// ===========================

// PlayerRepositoryImpl 球員倉儲實現（GORM）
//
// 設計原則：
// - 實作 round.PlayerRepository 接口
// - 重複身份由 (session_id, identity_kind, identity_ref) 唯一索引保證，
//   Save 將唯一約束錯誤轉換為 round.ErrDuplicateIdentity
type PlayerRepositoryImpl struct {
	db *gorm.DB
}

// NewPlayerRepository 創建新的球員倉儲實例
func NewPlayerRepository(db *gorm.DB) round.PlayerRepository {
	return &PlayerRepositoryImpl{db: db}
}

// Save 保存新球員
//
// 錯誤處理：
// - UNIQUE constraint 違反（同一身份已在球局中）→ ErrDuplicateIdentity
// - 其他資料庫錯誤 → 原始錯誤
func (r *PlayerRepositoryImpl) Save(ctx shared.TransactionContext, player *round.Player) error {
	db := r.getDB(ctx)

	result := db.Create(playerToGORM(player))
	if result.Error != nil {
		if isUniqueConstraintError(result.Error) {
			return round.ErrDuplicateIdentity.WithContext(
				"session_id", player.SessionID().String(),
				"identity_kind", string(player.Identity().Kind()),
			)
		}
		return result.Error
	}

	return nil
}

// FindByID 根據球員 ID 查找球員
func (r *PlayerRepositoryImpl) FindByID(ctx shared.TransactionContext, playerID round.PlayerID) (*round.Player, error) {
	db := r.getDB(ctx)

	var gormModel PlayerGORM

	result := db.Where("player_id = ?", playerID.String()).First(&gormModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, round.ErrPlayerNotFound.WithContext(
				"player_id", playerID.String(),
			)
		}
		return nil, result.Error
	}

	return gormModel.toDomain()
}

// FindBySession 列出球局內所有球員（按順位排序）
func (r *PlayerRepositoryImpl) FindBySession(ctx shared.TransactionContext, sessionID round.SessionID) ([]*round.Player, error) {
	db := r.getDB(ctx)

	var gormModels []PlayerGORM

	result := db.Where("session_id = ?", sessionID.String()).Order("position ASC").Find(&gormModels)
	if result.Error != nil {
		return nil, result.Error
	}

	players := make([]*round.Player, 0, len(gormModels))
	for i := range gormModels {
		player, err := gormModels[i].toDomain()
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	return players, nil
}

// CountBySession 計算球局內球員數
func (r *PlayerRepositoryImpl) CountBySession(ctx shared.TransactionContext, sessionID round.SessionID) (int, error) {
	db := r.getDB(ctx)

	var count int64
	result := db.Model(&PlayerGORM{}).Where("session_id = ?", sessionID.String()).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(count), nil
}

// NextPosition 計算球局內下一個打擊順位（max(position) + 1，從 1 開始）
func (r *PlayerRepositoryImpl) NextPosition(ctx shared.TransactionContext, sessionID round.SessionID) (int, error) {
	db := r.getDB(ctx)

	// COALESCE 處理空球局（max 為 NULL 時視為 0）
	var maxPosition int
	result := db.Model(&PlayerGORM{}).
		Where("session_id = ?", sessionID.String()).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition)
	if result.Error != nil {
		return 0, result.Error
	}

	return maxPosition + 1, nil
}

// ExistsByIdentity 檢查同一身份是否已在球局中
func (r *PlayerRepositoryImpl) ExistsByIdentity(ctx shared.TransactionContext, sessionID round.SessionID, identity round.Identity) (bool, error) {
	db := r.getDB(ctx)

	var count int64
	result := db.Model(&PlayerGORM{}).
		Where("session_id = ? AND identity_kind = ? AND identity_ref = ?",
			sessionID.String(), string(identity.Kind()), identity.Ref()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Update 更新球員（身份遷移後持久化）
func (r *PlayerRepositoryImpl) Update(ctx shared.TransactionContext, player *round.Player) error {
	db := r.getDB(ctx)

	result := db.Save(playerToGORM(player))
	if result.Error != nil {
		if isUniqueConstraintError(result.Error) {
			return round.ErrDuplicateIdentity.WithContext(
				"session_id", player.SessionID().String(),
				"identity_kind", string(player.Identity().Kind()),
			)
		}
		return result.Error
	}

	return nil
}

// Delete 刪除球員
//
// 注意：成績記錄的級聯刪除由 Application Layer 在同一事務中協調
func (r *PlayerRepositoryImpl) Delete(ctx shared.TransactionContext, playerID round.PlayerID) error {
	db := r.getDB(ctx)

	result := db.Where("player_id = ?", playerID.String()).Delete(&PlayerGORM{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return round.ErrPlayerNotFound.WithContext(
			"player_id", playerID.String(),
		)
	}

	return nil
}

// getDB 獲取 GORM DB 實例
func (r *PlayerRepositoryImpl) getDB(ctx shared.TransactionContext) *gorm.DB {
	if ctx != nil {
		if txCtx, ok := ctx.(gormTransactionContext); ok {
			return txCtx.GetDB()
		}
	}
	return r.db
}
