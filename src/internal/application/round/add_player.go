package round

import (
	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// UC-002: AddPlayer Use Case
// ===========================

// AddPlayerCommand 加入球員指令（Input DTO）
//
// 身份欄位（兩者擇一，皆空時自動產生訪客身份）：
// - UserID 非空 → 永久身份（已註冊用戶）
// - GuestID 非空 → 臨時身份（既有訪客，如斷線重連）
// - 皆空 → 產生新的訪客身份（GuestID 隨結果返回）
// - 皆非空 → ErrInvalidIdentity（模稜兩可的輸入不做猜測）
type AddPlayerCommand struct {
	SessionID   string // 球局 ID (UUID)
	DisplayName string // 球員顯示名稱
	UserID      string // 永久身份（可選）
	GuestID     string // 臨時身份（可選）
}

// AddPlayerResult 加入球員結果（Output DTO）
type AddPlayerResult struct {
	PlayerID     string // 球員 ID (UUID)
	Position     int    // 打擊順位（從 1 開始，建立當下連續）
	IdentityKind string // permanent / ephemeral
	GuestID      string // 自動產生的訪客 ID（僅臨時身份時非空）
}

// AddPlayerUseCase 加入球員 Use Case 接口
//
// 業務規則：
// 1. finished 球局不可加入（waiting / active 皆可）
// 2. 同一身份（永久或臨時）在同一球局內至多出現一次
// 3. 順位 = max(position) + 1，建立當下連續
type AddPlayerUseCase interface {
	Execute(cmd AddPlayerCommand) (*AddPlayerResult, error)
}

// ===========================
// AddPlayerUseCaseImpl
// ===========================

// AddPlayerUseCaseImpl 加入球員 Use Case 實作
type AddPlayerUseCaseImpl struct {
	sessionRepo round.SessionRepository
	playerRepo  round.PlayerRepository
	txManager   shared.TransactionManager
}

// NewAddPlayerUseCase 創建 AddPlayerUseCase 實例
func NewAddPlayerUseCase(
	sessionRepo round.SessionRepository,
	playerRepo round.PlayerRepository,
	txManager shared.TransactionManager,
) AddPlayerUseCase {
	return &AddPlayerUseCaseImpl{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		txManager:   txManager,
	}
}

// Execute 執行加入球員 Use Case
//
// 業務流程：
// 1. 驗證輸入並組裝 Identity（永久 / 臨時擇一）
// 2. 在事務中執行：
//    a. 查找球局並檢查可加入性（finished 拒絕）
//    b. 檢查同一身份是否已在球局中（友好錯誤）
//    c. 計算下一個打擊順位
//    d. 創建 Player 聚合並保存
//
// 錯誤處理：
// - 球局不存在 → round.ErrSessionNotFound
// - 球局已結束 → round.ErrSessionNotJoinable
// - 身份重複 → round.ErrDuplicateIdentity
//   （預檢查提供友好錯誤；併發場景由資料庫唯一索引最終裁決，
//    唯一約束違反同樣轉換為 ErrDuplicateIdentity）
func (uc *AddPlayerUseCaseImpl) Execute(cmd AddPlayerCommand) (*AddPlayerResult, error) {
	// Step 1: 驗證輸入並組裝 Identity
	sessionID, err := round.SessionIDFromString(cmd.SessionID)
	if err != nil {
		return nil, err
	}

	identity, guestID, err := buildIdentity(cmd.UserID, cmd.GuestID)
	if err != nil {
		return nil, err
	}

	// Step 2: 在事務中執行業務邏輯
	var player *round.Player

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		// 2a. 查找球局並檢查可加入性
		session, err := uc.sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if !session.IsJoinable() {
			return round.ErrSessionNotJoinable.WithContext(
				"session_id", cmd.SessionID,
				"status", string(session.Status()),
			)
		}

		// 2b. 檢查同一身份是否已在球局中
		exists, err := uc.playerRepo.ExistsByIdentity(ctx, sessionID, identity)
		if err != nil {
			return err
		}
		if exists {
			return round.ErrDuplicateIdentity.WithContext(
				"session_id", cmd.SessionID,
				"identity_kind", string(identity.Kind()),
			)
		}

		// 2c. 計算下一個打擊順位
		position, err := uc.playerRepo.NextPosition(ctx, sessionID)
		if err != nil {
			return err
		}

		// 2d. 創建 Player 聚合並保存
		player, err = round.NewPlayer(sessionID, cmd.DisplayName, identity, position)
		if err != nil {
			return err
		}

		return uc.playerRepo.Save(ctx, player)
	})

	if err != nil {
		return nil, err
	}

	return &AddPlayerResult{
		PlayerID:     player.PlayerID().String(),
		Position:     player.Position(),
		IdentityKind: string(player.Identity().Kind()),
		GuestID:      guestID,
	}, nil
}

// buildIdentity 組裝球員身份（永久 / 臨時擇一，兩者並提視為無效輸入）
//
// 返回值 guestID：自動產生訪客身份時為新 GuestID 字串，其餘情況為空字串
func buildIdentity(userID, guestID string) (round.Identity, string, error) {
	if userID != "" && guestID != "" {
		return round.Identity{}, "", round.ErrInvalidIdentity.WithContext(
			"reason", "userID and guestID are mutually exclusive",
		)
	}

	if userID != "" {
		id, err := round.UserIDFromString(userID)
		if err != nil {
			return round.Identity{}, "", err
		}
		identity, err := round.NewPermanentIdentity(id)
		return identity, "", err
	}

	if guestID != "" {
		id, err := round.GuestIDFromString(guestID)
		if err != nil {
			return round.Identity{}, "", err
		}
		identity, err := round.NewEphemeralIdentity(id)
		return identity, "", err
	}

	// 皆未提供：自動產生新的訪客身份
	id := round.NewGuestID()
	identity, err := round.NewEphemeralIdentity(id)
	return identity, id.String(), err
}
