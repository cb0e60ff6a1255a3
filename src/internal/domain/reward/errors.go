package reward

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

// 錯誤代碼常量
const (
	// 兌換前置條件相關（按 redeem 檢查順序）
	ErrCodeRewardInactive     ErrorCode = "REWARD_INACTIVE"
	ErrCodeRewardExpired      ErrorCode = "REWARD_EXPIRED"
	ErrCodeInventoryExhausted ErrorCode = "REWARD_INVENTORY_EXHAUSTED"
	ErrCodeAlreadyRedeemed    ErrorCode = "REWARD_ALREADY_REDEEMED"
	ErrCodeSessionNotFinished ErrorCode = "REWARD_SESSION_NOT_FINISHED"
	ErrCodeNotEligible        ErrorCode = "REWARD_NOT_ELIGIBLE"

	// 驗證相關
	ErrCodeInvalidRewardType  ErrorCode = "REWARD_TYPE_INVALID"
	ErrCodeInvalidRewardValue ErrorCode = "REWARD_VALUE_INVALID"
	ErrCodeInvalidMaxRedempt  ErrorCode = "REWARD_MAX_REDEMPTIONS_INVALID"
	ErrCodeInvalidConditions  ErrorCode = "REWARD_CONDITIONS_INVALID"

	// ID 相關
	ErrCodeInvalidRewardID        ErrorCode = "REWARD_ID_INVALID"
	ErrCodeInvalidSponsorID       ErrorCode = "SPONSOR_ID_INVALID"
	ErrCodeInvalidReceiptID       ErrorCode = "RECEIPT_ID_INVALID"
	ErrCodeInvalidRewardPlayerID  ErrorCode = "REWARD_PLAYER_ID_INVALID"
	ErrCodeInvalidRewardSessionID ErrorCode = "REWARD_SESSION_ID_INVALID"

	// Repository 相關
	ErrCodeRewardNotFound  ErrorCode = "REWARD_NOT_FOUND"
	ErrCodeReceiptNotFound ErrorCode = "RECEIPT_NOT_FOUND"
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

// 兌換前置條件相關錯誤
var (
	// ErrRewardInactive 獎勵已停用
	ErrRewardInactive = &DomainError{
		Code:    ErrCodeRewardInactive,
		Message: "獎勵已停用",
	}

	// ErrRewardExpired 獎勵已過期
	ErrRewardExpired = &DomainError{
		Code:    ErrCodeRewardExpired,
		Message: "獎勵已過期",
	}

	// ErrInventoryExhausted 兌換庫存已用盡
	//
	// 不變量：currentRedemptions <= maxRedemptions（設有上限時）
	// 由 Redemption Ledger 的條件式遞增保證，絕不依賴客戶端檢查
	ErrInventoryExhausted = &DomainError{
		Code:    ErrCodeInventoryExhausted,
		Message: "獎勵兌換數量已達上限",
	}

	// ErrAlreadyRedeemed 同一球員已兌換過此獎勵
	//
	// 核心唯一性約束：每個 (player, reward) 至多一張憑證，
	// 併發請求下由資料庫唯一索引保證
	ErrAlreadyRedeemed = &DomainError{
		Code:    ErrCodeAlreadyRedeemed,
		Message: "此獎勵已兌換過",
	}

	// ErrSessionNotFinished 球局尚未結束
	//
	// 業務規則：獎勵評估與兌換以球局結束為前置條件
	ErrSessionNotFinished = &DomainError{
		Code:    ErrCodeSessionNotFinished,
		Message: "球局尚未結束，無法兌換獎勵",
	}

	// ErrNotEligible 不符合兌換資格條件
	ErrNotEligible = &DomainError{
		Code:    ErrCodeNotEligible,
		Message: "不符合獎勵資格條件",
	}
)

// 驗證相關錯誤
var (
	// ErrInvalidRewardType 獎勵類型無效
	ErrInvalidRewardType = &DomainError{
		Code:    ErrCodeInvalidRewardType,
		Message: "獎勵類型無效（discount / product / experience / credit）",
	}

	// ErrInvalidRewardValue 獎勵面額無效
	ErrInvalidRewardValue = &DomainError{
		Code:    ErrCodeInvalidRewardValue,
		Message: "獎勵面額必須大於 0",
	}

	// ErrInvalidMaxRedemptions 兌換上限無效
	ErrInvalidMaxRedemptions = &DomainError{
		Code:    ErrCodeInvalidMaxRedempt,
		Message: "兌換上限必須大於 0",
	}

	// ErrInvalidConditions 資格條件無效
	//
	// 觸發條件：
	// - minScore > maxScore（條件永不可滿足）
	// - requiredHoles 超出 [1, 18]
	ErrInvalidConditions = &DomainError{
		Code:    ErrCodeInvalidConditions,
		Message: "資格條件無效",
	}
)

// ID 相關錯誤
var (
	// ErrInvalidRewardID 獎勵 ID 無效
	ErrInvalidRewardID = &DomainError{
		Code:    ErrCodeInvalidRewardID,
		Message: "獎勵 ID 格式無效",
	}

	// ErrInvalidSponsorID 贊助商 ID 無效
	ErrInvalidSponsorID = &DomainError{
		Code:    ErrCodeInvalidSponsorID,
		Message: "贊助商 ID 格式無效",
	}

	// ErrInvalidReceiptID 兌換憑證 ID 無效
	ErrInvalidReceiptID = &DomainError{
		Code:    ErrCodeInvalidReceiptID,
		Message: "兌換憑證 ID 格式無效",
	}

	// ErrInvalidRewardPlayerID 球員 ID 無效
	ErrInvalidRewardPlayerID = &DomainError{
		Code:    ErrCodeInvalidRewardPlayerID,
		Message: "球員 ID 格式無效",
	}

	// ErrInvalidRewardSessionID 球局 ID 無效
	ErrInvalidRewardSessionID = &DomainError{
		Code:    ErrCodeInvalidRewardSessionID,
		Message: "球局 ID 格式無效",
	}
)

// Repository 錯誤實例
var (
	// ErrRewardNotFound 獎勵不存在
	ErrRewardNotFound = &DomainError{
		Code:    ErrCodeRewardNotFound,
		Message: "獎勵不存在",
	}

	// ErrReceiptNotFound 兌換憑證不存在
	ErrReceiptNotFound = &DomainError{
		Code:    ErrCodeReceiptNotFound,
		Message: "兌換憑證不存在",
	}
)
