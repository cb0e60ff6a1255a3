package round

import "github.com/fairwaylab/fairway_crm/src/internal/domain/shared"

// ===========================
// 實體 ID 類型定義
// ===========================

// 設計原則：使用泛型 EntityID[T] 消除重複代碼
//
// 類型安全保證：
// - SessionID、PlayerID、UserID 等是不同類型（編譯器強制檢查）
// - 不能將 SessionID 賦值給 PlayerID 變量
// - 不能比較 SessionID 和 PlayerID（編譯錯誤）

// ===========================
// SessionID - 球局 ID
// ===========================

// SessionMarker 是 SessionID 的標記類型
type SessionMarker struct{}

// SessionID 球局的唯一標識符
type SessionID = shared.EntityID[SessionMarker]

// NewSessionID 生成新的球局 ID（UUID v4）
func NewSessionID() SessionID {
	return shared.NewEntityID[SessionMarker]()
}

// SessionIDFromString 從字串解析球局 ID
//
// 使用場景：
// - 從數據庫讀取 ID
// - 從外部請求解析 ID
func SessionIDFromString(s string) (SessionID, error) {
	return shared.EntityIDFromString[SessionMarker](s, ErrInvalidSessionID)
}

// ===========================
// PlayerID - 球員 ID
// ===========================

// PlayerMarker 是 PlayerID 的標記類型
type PlayerMarker struct{}

// PlayerID 球員（球局內參與者）的唯一標識符
type PlayerID = shared.EntityID[PlayerMarker]

// NewPlayerID 生成新的球員 ID（UUID v4）
func NewPlayerID() PlayerID {
	return shared.NewEntityID[PlayerMarker]()
}

// PlayerIDFromString 從字串解析球員 ID
func PlayerIDFromString(s string) (PlayerID, error) {
	return shared.EntityIDFromString[PlayerMarker](s, ErrInvalidPlayerID)
}

// ===========================
// UserID - 註冊用戶 ID（永久身份）
// ===========================

// UserMarker 是 UserID 的標記類型
type UserMarker struct{}

// UserID 註冊用戶的唯一標識符
//
// 用途：
// - 球局創建者引用
// - 球員的永久身份引用（Identity 的 permanent 分支）
type UserID = shared.EntityID[UserMarker]

// NewUserID 生成新的用戶 ID（UUID v4）
func NewUserID() UserID {
	return shared.NewEntityID[UserMarker]()
}

// UserIDFromString 從字串解析用戶 ID
func UserIDFromString(s string) (UserID, error) {
	return shared.EntityIDFromString[UserMarker](s, ErrInvalidUserID)
}

// ===========================
// GuestID - 訪客 ID（臨時身份）
// ===========================

// GuestMarker 是 GuestID 的標記類型
type GuestMarker struct{}

// GuestID 訪客（未註冊參與者）的唯一標識符
//
// 用途：球員的臨時身份引用（Identity 的 ephemeral 分支）
// 訪客日後註冊時，由身份遷移流程改寫為 UserID
type GuestID = shared.EntityID[GuestMarker]

// NewGuestID 生成新的訪客 ID（UUID v4）
func NewGuestID() GuestID {
	return shared.NewEntityID[GuestMarker]()
}

// GuestIDFromString 從字串解析訪客 ID
func GuestIDFromString(s string) (GuestID, error) {
	return shared.EntityIDFromString[GuestMarker](s, ErrInvalidGuestID)
}

// ===========================
// CourseID - 球場 ID
// ===========================

// CourseMarker 是 CourseID 的標記類型
type CourseMarker struct{}

// CourseID 球場的唯一標識符（球局的可選引用）
//
// 球場資料由外部模組維護，本核心只保存引用
type CourseID = shared.EntityID[CourseMarker]

// NewCourseID 生成新的球場 ID（UUID v4）
func NewCourseID() CourseID {
	return shared.NewEntityID[CourseMarker]()
}

// CourseIDFromString 從字串解析球場 ID
func CourseIDFromString(s string) (CourseID, error) {
	return shared.EntityIDFromString[CourseMarker](s, ErrInvalidCourseID)
}
