package reward

import (
	"time"

	"github.com/shopspring/decimal"
)

// ===========================
// RewardType 獎勵類型
// ===========================

// RewardType 獎勵類型
type RewardType string

const (
	// RewardTypeDiscount 折扣券
	RewardTypeDiscount RewardType = "discount"
	// RewardTypeProduct 實體商品
	RewardTypeProduct RewardType = "product"
	// RewardTypeExperience 體驗行程
	RewardTypeExperience RewardType = "experience"
	// RewardTypeCredit 消費金
	RewardTypeCredit RewardType = "credit"
)

// NewRewardType 驗證並建立獎勵類型
func NewRewardType(s string) (RewardType, error) {
	t := RewardType(s)
	switch t {
	case RewardTypeDiscount, RewardTypeProduct, RewardTypeExperience, RewardTypeCredit:
		return t, nil
	default:
		return "", ErrInvalidRewardType.WithContext("type", s)
	}
}

// ===========================
// RewardDefinition 聚合根
// ===========================

// RewardDefinition 獎勵定義聚合根
//
// 擁有權：由贊助商帳戶持有；創建與編輯屬於外部管理模組，
// 本核心對獎勵定義只有讀取與 currentRedemptions 的受控遞增
//
// 不變量（Invariants）：
// 1. currentRedemptions <= maxRedemptions（設有上限時）
//    —— 由 Redemption Ledger 的條件式遞增在資料庫層保證，
//       絕不依賴客戶端的 check-then-write
// 2. maxRedemptions 未設定 = 無限量
// 3. Value > 0（面額必須為正）
type RewardDefinition struct {
	rewardID  RewardID
	sponsorID SponsorID

	// 獎勵內容
	name       string
	rewardType RewardType
	value      decimal.Decimal

	// 兌換控制
	expiresAt          *time.Time // nil = 永不過期
	maxRedemptions     *int       // nil = 無限量
	currentRedemptions int
	isActive           bool

	// 資格條件（零值 = 無條件）
	conditions EligibilityConditions

	// 審計欄位
	createdAt time.Time
	updatedAt time.Time
}

// NewRewardDefinition 創建新獎勵定義（Checked Constructor）
//
// 使用場景：外部管理模組（cmd/seed）建立贊助商獎勵
//
// 業務規則：
// 1. 面額必須為正
// 2. 兌換上限設定時必須 > 0
// 3. 資格條件組合必須一致（Validate）
// 4. 初始 currentRedemptions = 0，isActive = true
func NewRewardDefinition(
	sponsorID SponsorID,
	name string,
	rewardType RewardType,
	value decimal.Decimal,
	expiresAt *time.Time,
	maxRedemptions *int,
	conditions EligibilityConditions,
) (*RewardDefinition, error) {
	if sponsorID.IsEmpty() {
		return nil, ErrInvalidSponsorID.WithContext(
			"reason", "sponsorID cannot be empty",
		)
	}
	if !value.IsPositive() {
		return nil, ErrInvalidRewardValue.WithContext(
			"value", value.String(),
		)
	}
	if maxRedemptions != nil && *maxRedemptions < 1 {
		return nil, ErrInvalidMaxRedemptions.WithContext(
			"max_redemptions", *maxRedemptions,
		)
	}
	if err := conditions.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	return &RewardDefinition{
		rewardID:           NewRewardID(),
		sponsorID:          sponsorID,
		name:               name,
		rewardType:         rewardType,
		value:              value,
		expiresAt:          expiresAt,
		maxRedemptions:     maxRedemptions,
		currentRedemptions: 0,
		isActive:           true,
		conditions:         conditions,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructRewardDefinition 從持久化存儲重建聚合根
//
// 重要：重建時仍驗證庫存不變量，防止損壞資料污染領域層
func ReconstructRewardDefinition(
	rewardID RewardID,
	sponsorID SponsorID,
	name string,
	rewardType RewardType,
	value decimal.Decimal,
	expiresAt *time.Time,
	maxRedemptions *int,
	currentRedemptions int,
	isActive bool,
	conditions EligibilityConditions,
	createdAt time.Time,
	updatedAt time.Time,
) (*RewardDefinition, error) {
	if rewardID.IsEmpty() {
		return nil, ErrInvalidRewardID.WithContext(
			"reason", "invalid reward ID in database",
		)
	}
	if sponsorID.IsEmpty() {
		return nil, ErrInvalidSponsorID.WithContext(
			"reason", "invalid sponsor ID in database",
		)
	}

	// 不變量檢查：currentRedemptions <= maxRedemptions
	if maxRedemptions != nil && currentRedemptions > *maxRedemptions {
		return nil, ErrInventoryExhausted.WithContext(
			"current_redemptions", currentRedemptions,
			"max_redemptions", *maxRedemptions,
			"reason", "invariant violation in database",
		)
	}

	return &RewardDefinition{
		rewardID:           rewardID,
		sponsorID:          sponsorID,
		name:               name,
		rewardType:         rewardType,
		value:              value,
		expiresAt:          expiresAt,
		maxRedemptions:     maxRedemptions,
		currentRedemptions: currentRedemptions,
		isActive:           isActive,
		conditions:         conditions,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

// ===========================
// 查詢方法（Getters）
// ===========================

// RewardID 獲取獎勵 ID
func (r *RewardDefinition) RewardID() RewardID {
	return r.rewardID
}

// SponsorID 獲取贊助商 ID
func (r *RewardDefinition) SponsorID() SponsorID {
	return r.sponsorID
}

// Name 獲取獎勵名稱
func (r *RewardDefinition) Name() string {
	return r.name
}

// Type 獲取獎勵類型
func (r *RewardDefinition) Type() RewardType {
	return r.rewardType
}

// Value 獲取獎勵面額
func (r *RewardDefinition) Value() decimal.Decimal {
	return r.value
}

// ExpiresAt 獲取過期時間（永不過期時為 nil）
func (r *RewardDefinition) ExpiresAt() *time.Time {
	return r.expiresAt
}

// MaxRedemptions 獲取兌換上限（無限量時為 nil）
func (r *RewardDefinition) MaxRedemptions() *int {
	return r.maxRedemptions
}

// CurrentRedemptions 獲取已兌換次數
func (r *RewardDefinition) CurrentRedemptions() int {
	return r.currentRedemptions
}

// IsActive 獲取啟用狀態
func (r *RewardDefinition) IsActive() bool {
	return r.isActive
}

// Conditions 獲取資格條件
func (r *RewardDefinition) Conditions() EligibilityConditions {
	return r.conditions
}

// CreatedAt 獲取創建時間
func (r *RewardDefinition) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt 獲取最後更新時間
func (r *RewardDefinition) UpdatedAt() time.Time {
	return r.updatedAt
}

// ===========================
// 業務判斷方法
// ===========================

// IsExpired 判斷是否已過期
func (r *RewardDefinition) IsExpired(now time.Time) bool {
	return r.expiresAt != nil && r.expiresAt.Before(now)
}

// HasInventory 判斷是否尚有兌換庫存
//
// ⚠️ 注意：此為快照判斷，僅供候選列表與友好錯誤訊息使用。
// 兌換提交時的庫存保證由 Repository 的條件式遞增在資料庫層完成
func (r *RewardDefinition) HasInventory() bool {
	if r.maxRedemptions == nil {
		return true
	}
	return r.currentRedemptions < *r.maxRedemptions
}

// EvaluateEligibility 評估球員表現是否符合資格條件（純函數）
//
// 返回：
//   satisfied - 是否符合
//   failedRule - 第一個不滿足的規則名稱（符合時為空字串）
func (r *RewardDefinition) EvaluateEligibility(perf PlayerPerformance) (bool, string) {
	return r.conditions.Evaluate(perf)
}
