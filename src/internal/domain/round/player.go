package round

import (
	"time"
)

// ===========================
// Player 實體
// ===========================

// Player 球員實體（球局內的參與記錄）
//
// 不變量（Invariants）：
// 1. 球員恰好由一種身份支撐（由 Identity 值對象在結構上保證）
// 2. Position 在建立當下於球局內唯一且連續（移除後允許稀疏）
// 3. 身份遷移（ephemeral → permanent）不變更其他欄位，
//    下游引用（成績、兌換憑證）以 PlayerID 為鍵，保持不變
//
// 生命週期：
// - 加入球局時建立
// - 只有 waiting 球局可移除（由 Application Layer 檢查球局狀態）
type Player struct {
	playerID    PlayerID
	sessionID   SessionID
	displayName string
	identity    Identity
	position    int

	// 審計欄位
	createdAt time.Time
	updatedAt time.Time
}

// NewPlayer 創建新球員（Checked Constructor）
//
// 參數：
// - sessionID: 所屬球局
// - displayName: 顯示名稱（不能為空）
// - identity: 身份（永久或臨時，由建構函數保證有效）
// - position: 打擊順位（由 Application Layer 分配下一個連續值）
func NewPlayer(sessionID SessionID, displayName string, identity Identity, position int) (*Player, error) {
	if sessionID.IsEmpty() {
		return nil, ErrInvalidSessionID.WithContext(
			"reason", "sessionID cannot be empty",
		)
	}
	if displayName == "" {
		return nil, ErrInvalidDisplayName
	}
	if identity.IsZero() {
		return nil, ErrInvalidIdentity.WithContext(
			"reason", "identity cannot be zero value",
		)
	}
	if position < 1 {
		return nil, ErrInvalidIdentity.WithContext(
			"reason", "position must be >= 1",
			"position", position,
		)
	}

	now := time.Now()

	return &Player{
		playerID:    NewPlayerID(),
		sessionID:   sessionID,
		displayName: displayName,
		identity:    identity,
		position:    position,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructPlayer 從持久化存儲重建球員（僅供 Infrastructure Layer 使用）
func ReconstructPlayer(
	playerID PlayerID,
	sessionID SessionID,
	displayName string,
	identity Identity,
	position int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Player, error) {
	if playerID.IsEmpty() {
		return nil, ErrInvalidPlayerID.WithContext(
			"reason", "invalid player ID in database",
		)
	}
	if displayName == "" {
		return nil, ErrInvalidDisplayName
	}
	if identity.IsZero() {
		return nil, ErrInvalidIdentity.WithContext(
			"reason", "corrupted identity in database",
		)
	}

	return &Player{
		playerID:    playerID,
		sessionID:   sessionID,
		displayName: displayName,
		identity:    identity,
		position:    position,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ===========================
// 命令方法（狀態變更）
// ===========================

// MigrateIdentity 身份遷移（ephemeral → permanent）
//
// 使用場景：
// - 訪客球員日後註冊為正式用戶，由外部身份遷移流程呼叫
//
// 業務規則：
// 1. 只有臨時身份可以遷移（否則 ErrIdentityNotEphemeral）
// 2. 只改寫身份引用，不觸碰其他欄位
// 3. 下游記錄（成績、兌換憑證）以 PlayerID 為鍵，遷移後全部保持有效
func (p *Player) MigrateIdentity(userID UserID) error {
	if !p.identity.IsEphemeral() {
		return ErrIdentityNotEphemeral.WithContext(
			"player_id", p.playerID.String(),
			"kind", string(p.identity.Kind()),
		)
	}

	identity, err := NewPermanentIdentity(userID)
	if err != nil {
		return err
	}

	p.identity = identity
	p.updatedAt = time.Now()

	return nil
}

// ===========================
// 查詢方法（Getters）
// ===========================

// PlayerID 獲取球員 ID
func (p *Player) PlayerID() PlayerID {
	return p.playerID
}

// SessionID 獲取所屬球局 ID
func (p *Player) SessionID() SessionID {
	return p.sessionID
}

// DisplayName 獲取顯示名稱
func (p *Player) DisplayName() string {
	return p.displayName
}

// Identity 獲取身份
func (p *Player) Identity() Identity {
	return p.identity
}

// Position 獲取打擊順位
func (p *Player) Position() int {
	return p.position
}

// CreatedAt 獲取創建時間
func (p *Player) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt 獲取最後更新時間
func (p *Player) UpdatedAt() time.Time {
	return p.updatedAt
}
