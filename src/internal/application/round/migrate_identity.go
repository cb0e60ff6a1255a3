package round

import (
	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// UC-007: MigrateIdentity Use Case
// ===========================

// MigrateIdentityCommand 身份遷移指令（Input DTO）
//
// 使用場景：訪客（臨時身份）在球局後註冊帳號，
// 外部身份系統調用此操作將球員綁定到永久身份
type MigrateIdentityCommand struct {
	PlayerID string // 球員 ID (UUID)
	UserID   string // 目標永久身份 User ID (UUID)
}

// MigrateIdentityResult 身份遷移結果（Output DTO）
type MigrateIdentityResult struct {
	PlayerID     string // 球員 ID
	IdentityKind string // 遷移後身份類型（必為 permanent）
	IdentityRef  string // 遷移後身份引用（User ID）
}

// MigrateIdentityUseCase 身份遷移 Use Case 接口
//
// 業務規則：
// 1. 只有臨時身份（ephemeral）可遷移為永久身份
// 2. 遷移只改寫身份欄位，成績記錄與兌換憑證不受影響
//    （它們以 PlayerID 為鍵，PlayerID 不變）
// 3. 目標身份不得與同球局其他球員重複
type MigrateIdentityUseCase interface {
	Execute(cmd MigrateIdentityCommand) (*MigrateIdentityResult, error)
}

// ===========================
// MigrateIdentityUseCaseImpl
// ===========================

// MigrateIdentityUseCaseImpl 身份遷移 Use Case 實作
type MigrateIdentityUseCaseImpl struct {
	playerRepo round.PlayerRepository
	txManager  shared.TransactionManager
}

// NewMigrateIdentityUseCase 創建 MigrateIdentityUseCase 實例
func NewMigrateIdentityUseCase(
	playerRepo round.PlayerRepository,
	txManager shared.TransactionManager,
) MigrateIdentityUseCase {
	return &MigrateIdentityUseCaseImpl{
		playerRepo: playerRepo,
		txManager:  txManager,
	}
}

// Execute 執行身份遷移 Use Case
//
// 錯誤處理：
// - 球員不存在 → round.ErrPlayerNotFound
// - 球員已是永久身份 → round.ErrIdentityNotEphemeral
// - 目標身份已在球局中 → round.ErrDuplicateIdentity
//   （預檢查提供友好錯誤；併發場景由資料庫唯一索引最終裁決）
func (uc *MigrateIdentityUseCaseImpl) Execute(cmd MigrateIdentityCommand) (*MigrateIdentityResult, error) {
	// Step 1: 驗證輸入
	playerID, err := round.PlayerIDFromString(cmd.PlayerID)
	if err != nil {
		return nil, err
	}

	userID, err := round.UserIDFromString(cmd.UserID)
	if err != nil {
		return nil, err
	}

	targetIdentity, err := round.NewPermanentIdentity(userID)
	if err != nil {
		return nil, err
	}

	// Step 2: 在事務中執行業務邏輯
	var player *round.Player

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		// 2a. 查找球員
		player, err = uc.playerRepo.FindByID(ctx, playerID)
		if err != nil {
			return err
		}

		// 2b. 檢查目標身份是否已在同一球局中
		exists, err := uc.playerRepo.ExistsByIdentity(ctx, player.SessionID(), targetIdentity)
		if err != nil {
			return err
		}
		if exists {
			return round.ErrDuplicateIdentity.WithContext(
				"session_id", player.SessionID().String(),
				"user_id", cmd.UserID,
			)
		}

		// 2c. 遷移身份（業務邏輯在 Domain Layer）
		if err := player.MigrateIdentity(userID); err != nil {
			return err
		}

		// 2d. 持久化
		return uc.playerRepo.Update(ctx, player)
	})

	if err != nil {
		return nil, err
	}

	return &MigrateIdentityResult{
		PlayerID:     player.PlayerID().String(),
		IdentityKind: string(player.Identity().Kind()),
		IdentityRef:  player.Identity().Ref(),
	}, nil
}
