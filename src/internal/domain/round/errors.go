package round

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

// 錯誤代碼常量
const (
	// 球局狀態機相關
	ErrCodeSessionNotJoinable      ErrorCode = "SESSION_NOT_JOINABLE"
	ErrCodeInvalidStateTransition  ErrorCode = "SESSION_INVALID_STATE"
	ErrCodeSessionAlreadyFinished  ErrorCode = "SESSION_ALREADY_FINISHED"
	ErrCodeSessionHasNoPlayers     ErrorCode = "SESSION_HAS_NO_PLAYERS"

	// 球員相關
	ErrCodeDuplicateIdentity    ErrorCode = "PLAYER_DUPLICATE_IDENTITY"
	ErrCodePlayerNotRemovable   ErrorCode = "PLAYER_NOT_REMOVABLE"
	ErrCodeIdentityNotEphemeral ErrorCode = "PLAYER_IDENTITY_NOT_EPHEMERAL"

	// 驗證相關
	ErrCodeInvalidSessionName ErrorCode = "SESSION_NAME_INVALID"
	ErrCodeInvalidDisplayName ErrorCode = "PLAYER_DISPLAY_NAME_INVALID"
	ErrCodeInvalidGameFormat  ErrorCode = "GAME_FORMAT_INVALID"
	ErrCodeInvalidIdentity    ErrorCode = "PLAYER_IDENTITY_INVALID"

	// ID 相關
	ErrCodeInvalidSessionID ErrorCode = "SESSION_ID_INVALID"
	ErrCodeInvalidPlayerID  ErrorCode = "PLAYER_ID_INVALID"
	ErrCodeInvalidUserID    ErrorCode = "USER_ID_INVALID"
	ErrCodeInvalidGuestID   ErrorCode = "GUEST_ID_INVALID"
	ErrCodeInvalidCourseID  ErrorCode = "COURSE_ID_INVALID"
)

// ===========================
// DomainError 結構
// ===========================

// DomainError 領域錯誤
// 設計原則：
// 1. 包含結構化的錯誤代碼（用於呼叫端渲染用戶訊息）
// 2. 支持上下文信息（哪個欄位、哪個實體）
// 3. 不可變性（創建後不可修改）
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例，保持不可變性）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)

	// 複製現有上下文
	for k, v := range e.Context {
		ctx[k] = v
	}

	// 添加新上下文
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（用於錯誤類型判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ===========================
// 預定義錯誤
// ===========================

// 球局狀態機相關錯誤
var (
	// ErrSessionNotJoinable 球局已結束，不可加入球員
	ErrSessionNotJoinable = &DomainError{
		Code:    ErrCodeSessionNotJoinable,
		Message: "球局已結束，無法加入球員",
	}

	// ErrInvalidStateTransition 狀態機前置條件違反
	//
	// 觸發條件：
	// - 對非 waiting 球局呼叫 Start
	// - 對非 waiting 球局移除球員
	ErrInvalidStateTransition = &DomainError{
		Code:    ErrCodeInvalidStateTransition,
		Message: "球局狀態不允許此操作",
	}

	// ErrSessionAlreadyFinished 球局已結束
	//
	// 業務規則：
	// - finish 必須只成功一次（下游獎勵評估依賴單一完成事件）
	// - 第二次呼叫必須明確失敗，不可靜默成功
	ErrSessionAlreadyFinished = &DomainError{
		Code:    ErrCodeSessionAlreadyFinished,
		Message: "球局已結束",
	}

	// ErrSessionHasNoPlayers 球局沒有球員，無法開始
	ErrSessionHasNoPlayers = &DomainError{
		Code:    ErrCodeSessionHasNoPlayers,
		Message: "球局至少需要一位球員才能開始",
	}
)

// 球員相關錯誤
var (
	// ErrDuplicateIdentity 同一身份已在此球局中
	//
	// 觸發條件：
	// - 同一永久身份（UserID）重複加入
	// - 同一臨時身份（GuestID）重複加入
	ErrDuplicateIdentity = &DomainError{
		Code:    ErrCodeDuplicateIdentity,
		Message: "此身份已是球局中的球員",
	}

	// ErrPlayerNotRemovable 球局已開始，球員不可移除
	ErrPlayerNotRemovable = &DomainError{
		Code:    ErrCodePlayerNotRemovable,
		Message: "只有等待中的球局可以移除球員",
	}

	// ErrIdentityNotEphemeral 身份遷移前置條件違反
	//
	// 業務規則：只有臨時身份可以遷移為永久身份
	ErrIdentityNotEphemeral = &DomainError{
		Code:    ErrCodeIdentityNotEphemeral,
		Message: "只有臨時身份可以遷移為永久身份",
	}
)

// 驗證相關錯誤
var (
	// ErrInvalidSessionName 球局名稱無效
	ErrInvalidSessionName = &DomainError{
		Code:    ErrCodeInvalidSessionName,
		Message: "球局名稱不能為空",
	}

	// ErrInvalidDisplayName 顯示名稱無效
	ErrInvalidDisplayName = &DomainError{
		Code:    ErrCodeInvalidDisplayName,
		Message: "顯示名稱不能為空",
	}

	// ErrInvalidGameFormat 比賽形式無效
	ErrInvalidGameFormat = &DomainError{
		Code:    ErrCodeInvalidGameFormat,
		Message: "比賽形式無效（stroke / match / scramble / best_ball）",
	}

	// ErrInvalidIdentity 球員身份無效
	//
	// 不變量：球員必須由永久或臨時身份其中之一支撐（不能兩者皆無）
	ErrInvalidIdentity = &DomainError{
		Code:    ErrCodeInvalidIdentity,
		Message: "球員身份無效",
	}
)

// ID 相關錯誤
var (
	// ErrInvalidSessionID 球局 ID 無效
	ErrInvalidSessionID = &DomainError{
		Code:    ErrCodeInvalidSessionID,
		Message: "球局 ID 格式無效",
	}

	// ErrInvalidPlayerID 球員 ID 無效
	ErrInvalidPlayerID = &DomainError{
		Code:    ErrCodeInvalidPlayerID,
		Message: "球員 ID 格式無效",
	}

	// ErrInvalidUserID 用戶 ID 無效
	ErrInvalidUserID = &DomainError{
		Code:    ErrCodeInvalidUserID,
		Message: "用戶 ID 格式無效",
	}

	// ErrInvalidGuestID 訪客 ID 無效
	ErrInvalidGuestID = &DomainError{
		Code:    ErrCodeInvalidGuestID,
		Message: "訪客 ID 格式無效",
	}

	// ErrInvalidCourseID 球場 ID 無效
	ErrInvalidCourseID = &DomainError{
		Code:    ErrCodeInvalidCourseID,
		Message: "球場 ID 格式無效",
	}
)

// ===========================
// Repository 錯誤定義
// ===========================

// Repository 相關錯誤代碼
const (
	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	ErrCodePlayerNotFound  ErrorCode = "PLAYER_NOT_FOUND"
)

// Repository 錯誤實例
var (
	// ErrSessionNotFound 球局不存在
	ErrSessionNotFound = &DomainError{
		Code:    ErrCodeSessionNotFound,
		Message: "球局不存在",
	}

	// ErrPlayerNotFound 球員不存在
	ErrPlayerNotFound = &DomainError{
		Code:    ErrCodePlayerNotFound,
		Message: "球員不存在",
	}
)
