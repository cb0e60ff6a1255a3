package score

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

// 錯誤代碼常量
const (
	// 驗證相關（ValidationError 類）
	ErrCodeInvalidHoleNumber ErrorCode = "SCORE_HOLE_NUMBER_INVALID"
	ErrCodeInvalidStrokes    ErrorCode = "SCORE_STROKES_INVALID"
	ErrCodeInvalidPutts      ErrorCode = "SCORE_PUTTS_INVALID"

	// 狀態相關
	ErrCodeSessionClosed ErrorCode = "SCORE_SESSION_CLOSED"

	// ID 相關
	ErrCodeInvalidEntryID       ErrorCode = "SCORE_ENTRY_ID_INVALID"
	ErrCodeInvalidScorePlayerID ErrorCode = "SCORE_PLAYER_ID_INVALID"

	// Repository 相關
	ErrCodeEntryNotFound ErrorCode = "SCORE_ENTRY_NOT_FOUND"
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

	for k, v := range e.Context {
		ctx[k] = v
	}

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

// 驗證相關錯誤
var (
	// ErrInvalidHoleNumber 洞號超出範圍
	//
	// 建構約束：holeNumber ∈ [1, 18]
	ErrInvalidHoleNumber = &DomainError{
		Code:    ErrCodeInvalidHoleNumber,
		Message: "洞號必須在 1 到 18 之間",
	}

	// ErrInvalidStrokes 桿數超出範圍
	//
	// 建構約束：strokes ∈ [1, 20]
	ErrInvalidStrokes = &DomainError{
		Code:    ErrCodeInvalidStrokes,
		Message: "桿數必須在 1 到 20 之間",
	}

	// ErrInvalidPutts 推桿數無效
	//
	// 建構約束：0 <= putts <= strokes
	ErrInvalidPutts = &DomainError{
		Code:    ErrCodeInvalidPutts,
		Message: "推桿數必須介於 0 與總桿數之間",
	}
)

// 狀態相關錯誤
var (
	// ErrSessionClosed 球局已結束，成績凍結
	//
	// 業務規則：
	// - 球局結束後成績不可變（記錄與刪除皆失敗）
	// - 保證獎勵評估的確定性
	ErrSessionClosed = &DomainError{
		Code:    ErrCodeSessionClosed,
		Message: "球局已結束，成績不可變更",
	}
)

// ID 相關錯誤
var (
	// ErrInvalidEntryID 成績記錄 ID 無效
	ErrInvalidEntryID = &DomainError{
		Code:    ErrCodeInvalidEntryID,
		Message: "成績記錄 ID 格式無效",
	}

	// ErrInvalidScorePlayerID 球員 ID 無效
	ErrInvalidScorePlayerID = &DomainError{
		Code:    ErrCodeInvalidScorePlayerID,
		Message: "球員 ID 格式無效",
	}
)

// Repository 錯誤實例
var (
	// ErrEntryNotFound 成績記錄不存在
	ErrEntryNotFound = &DomainError{
		Code:    ErrCodeEntryNotFound,
		Message: "成績記錄不存在",
	}
)
