package round

// ===========================
// Identity 球員身份值對象
// ===========================

// IdentityKind 身份種類
type IdentityKind string

const (
	// IdentityKindPermanent 永久身份（註冊用戶）
	IdentityKindPermanent IdentityKind = "permanent"
	// IdentityKindEphemeral 臨時身份（訪客）
	IdentityKindEphemeral IdentityKind = "ephemeral"
)

// Identity 球員身份值對象（tagged variant）
//
// 不變量：
// - 球員恰好由一種身份支撐：Permanent(UserID) 或 Ephemeral(GuestID)
// - 不可能同時持有兩者，也不可能兩者皆無
//
// 設計原則：
// - 以 tagged variant 建模，而非兩個 nullable 欄位
// - 不變量由建構函數在結構上強制（零值 Identity 視為無效，由 IsZero 檢出）
// - 不可變性：所有欄位 unexported，遷移產生新值而非就地修改
type Identity struct {
	kind IdentityKind
	ref  string // UserID 或 GuestID 的字串表示
}

// NewPermanentIdentity 建立永久身份
func NewPermanentIdentity(userID UserID) (Identity, error) {
	if userID.IsEmpty() {
		return Identity{}, ErrInvalidIdentity.WithContext(
			"reason", "userID cannot be empty",
		)
	}
	return Identity{kind: IdentityKindPermanent, ref: userID.String()}, nil
}

// NewEphemeralIdentity 建立臨時身份
func NewEphemeralIdentity(guestID GuestID) (Identity, error) {
	if guestID.IsEmpty() {
		return Identity{}, ErrInvalidIdentity.WithContext(
			"reason", "guestID cannot be empty",
		)
	}
	return Identity{kind: IdentityKindEphemeral, ref: guestID.String()}, nil
}

// ReconstructIdentity 從持久化存儲重建身份（僅供 Infrastructure Layer 使用）
//
// 重要：即使是從資料庫重建，也必須驗證不變量，防止損壞資料污染領域層
func ReconstructIdentity(kind IdentityKind, ref string) (Identity, error) {
	switch kind {
	case IdentityKindPermanent:
		userID, err := UserIDFromString(ref)
		if err != nil {
			return Identity{}, err
		}
		return NewPermanentIdentity(userID)
	case IdentityKindEphemeral:
		guestID, err := GuestIDFromString(ref)
		if err != nil {
			return Identity{}, err
		}
		return NewEphemeralIdentity(guestID)
	default:
		return Identity{}, ErrInvalidIdentity.WithContext(
			"kind", string(kind),
		)
	}
}

// Kind 獲取身份種類
func (i Identity) Kind() IdentityKind {
	return i.kind
}

// Ref 獲取身份引用的字串表示（UserID 或 GuestID）
func (i Identity) Ref() string {
	return i.ref
}

// IsPermanent 判斷是否為永久身份
func (i Identity) IsPermanent() bool {
	return i.kind == IdentityKindPermanent
}

// IsEphemeral 判斷是否為臨時身份
func (i Identity) IsEphemeral() bool {
	return i.kind == IdentityKindEphemeral
}

// IsZero 判斷是否為零值（未初始化）
func (i Identity) IsZero() bool {
	return i.kind == "" && i.ref == ""
}

// Equals 比較兩個身份是否相同
//
// 用途：加入球局時的重複身份檢查（DuplicateIdentity）
func (i Identity) Equals(other Identity) bool {
	return i.kind == other.kind && i.ref == other.ref
}
