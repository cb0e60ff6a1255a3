package persistence

import (
	rewardpersistence "github.com/fairwaylab/fairway_crm/src/internal/infrastructure/persistence/reward"
	roundpersistence "github.com/fairwaylab/fairway_crm/src/internal/infrastructure/persistence/round"
	scorepersistence "github.com/fairwaylab/fairway_crm/src/internal/infrastructure/persistence/score"
	"gorm.io/gorm"
)

// AutoMigrate 建立或更新所有資料表
//
// 唯一索引（併發正確性的最終屏障）隨模型定義一併建立：
// - players (session_id, identity_kind, identity_ref)
// - score_entries (player_id, hole_number)
// - redemption_receipts (reward_id, player_id)
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&roundpersistence.SessionGORM{},
		&roundpersistence.PlayerGORM{},
		&scorepersistence.ScoreEntryGORM{},
		&rewardpersistence.RewardGORM{},
		&rewardpersistence.ReceiptGORM{},
	)
}
