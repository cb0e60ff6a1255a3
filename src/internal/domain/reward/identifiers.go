package reward

import "github.com/fairwaylab/fairway_crm/src/internal/domain/shared"

// ===========================
// 實體 ID 類型定義
// ===========================

// 設計原則：使用泛型 EntityID[T] 消除重複代碼
//
// PlayerID / SessionID 在此 bounded context 有獨立的標記類型，
// 與 round context 在字串層面共享同一 UUID 值，
// 跨 context 的轉換由 Application Layer 以字串完成

// ===========================
// RewardID - 獎勵定義 ID
// ===========================

// RewardMarker 是 RewardID 的標記類型
type RewardMarker struct{}

// RewardID 獎勵定義的唯一標識符
type RewardID = shared.EntityID[RewardMarker]

// NewRewardID 生成新的獎勵定義 ID（UUID v4）
func NewRewardID() RewardID {
	return shared.NewEntityID[RewardMarker]()
}

// RewardIDFromString 從字串解析獎勵定義 ID
func RewardIDFromString(s string) (RewardID, error) {
	return shared.EntityIDFromString[RewardMarker](s, ErrInvalidRewardID)
}

// ===========================
// SponsorID - 贊助商 ID
// ===========================

// SponsorMarker 是 SponsorID 的標記類型
type SponsorMarker struct{}

// SponsorID 贊助商帳戶的唯一標識符
//
// 贊助商帳戶由外部管理模組維護，本核心只保存引用
type SponsorID = shared.EntityID[SponsorMarker]

// NewSponsorID 生成新的贊助商 ID（UUID v4）
func NewSponsorID() SponsorID {
	return shared.NewEntityID[SponsorMarker]()
}

// SponsorIDFromString 從字串解析贊助商 ID
func SponsorIDFromString(s string) (SponsorID, error) {
	return shared.EntityIDFromString[SponsorMarker](s, ErrInvalidSponsorID)
}

// ===========================
// ReceiptID - 兌換憑證 ID
// ===========================

// ReceiptMarker 是 ReceiptID 的標記類型
type ReceiptMarker struct{}

// ReceiptID 兌換憑證的唯一標識符
type ReceiptID = shared.EntityID[ReceiptMarker]

// NewReceiptID 生成新的兌換憑證 ID（UUID v4）
func NewReceiptID() ReceiptID {
	return shared.NewEntityID[ReceiptMarker]()
}

// ReceiptIDFromString 從字串解析兌換憑證 ID
func ReceiptIDFromString(s string) (ReceiptID, error) {
	return shared.EntityIDFromString[ReceiptMarker](s, ErrInvalidReceiptID)
}

// ===========================
// PlayerID - 球員 ID（reward context 視角）
// ===========================

// PlayerMarker 是 PlayerID 的標記類型
type PlayerMarker struct{}

// PlayerID 球員的唯一標識符（兌換憑證的持有者引用）
type PlayerID = shared.EntityID[PlayerMarker]

// NewPlayerID 生成新的球員 ID（UUID v4，測試用途）
func NewPlayerID() PlayerID {
	return shared.NewEntityID[PlayerMarker]()
}

// PlayerIDFromString 從字串解析球員 ID
func PlayerIDFromString(s string) (PlayerID, error) {
	return shared.EntityIDFromString[PlayerMarker](s, ErrInvalidRewardPlayerID)
}

// ===========================
// SessionID - 球局 ID（reward context 視角）
// ===========================

// SessionMarker 是 SessionID 的標記類型
type SessionMarker struct{}

// SessionID 球局的唯一標識符（兌換憑證的球局引用）
type SessionID = shared.EntityID[SessionMarker]

// NewSessionID 生成新的球局 ID（UUID v4，測試用途）
func NewSessionID() SessionID {
	return shared.NewEntityID[SessionMarker]()
}

// SessionIDFromString 從字串解析球局 ID
func SessionIDFromString(s string) (SessionID, error) {
	return shared.EntityIDFromString[SessionMarker](s, ErrInvalidRewardSessionID)
}
