package reward

// ===========================
// EligibilityConditions 資格條件
// ===========================

// PlayerPerformance 球員在已結束球局中的表現（資格評估的輸入）
//
// 由 Application Layer 組裝：
// - TotalStrokes / HolesPlayed 來自 Score Ledger 聚合
// - GameFormat 來自球局（字串值，避免跨 bounded context 依賴）
type PlayerPerformance struct {
	TotalStrokes int
	HolesPlayed  int
	GameFormat   string
}

// EligibilityConditions 獎勵資格條件
//
// 每個軸皆為可選：未設定的軸不施加任何約束
// 條件全部未設定（IsZero）時，已結束球局的任何球員皆符合資格
// （仍受啟用/過期/庫存/唯一性檢查約束）
//
// 語義：
// - MinScore: 總桿數必須 >= MinScore
// - MaxScore: 總桿數必須 <= MaxScore
// - RequiredHoles: 已完成洞數必須 >= RequiredHoles
// - GameFormat: 必須與球局形式完全相等
type EligibilityConditions struct {
	MinScore      *int
	MaxScore      *int
	RequiredHoles *int
	GameFormat    *string
}

// Validate 驗證條件組合的一致性
//
// 建構約束：
// - MinScore <= MaxScore（兩者皆設定時，否則條件永不可滿足）
// - RequiredHoles ∈ [1, 18]
func (c EligibilityConditions) Validate() error {
	if c.MinScore != nil && c.MaxScore != nil && *c.MinScore > *c.MaxScore {
		return ErrInvalidConditions.WithContext(
			"min_score", *c.MinScore,
			"max_score", *c.MaxScore,
		)
	}
	if c.RequiredHoles != nil && (*c.RequiredHoles < 1 || *c.RequiredHoles > 18) {
		return ErrInvalidConditions.WithContext(
			"required_holes", *c.RequiredHoles,
		)
	}
	return nil
}

// IsZero 判斷是否完全未設定條件
func (c EligibilityConditions) IsZero() bool {
	return c.MinScore == nil && c.MaxScore == nil && c.RequiredHoles == nil && c.GameFormat == nil
}

// ===========================
// EligibilityRule 具名謂詞
// ===========================

// EligibilityRule 單一資格謂詞
//
// 設計決策：條件組是一組固定軸上的小型謂詞語言。
// 以具名謂詞列表表示（而非 ad hoc 的可選欄位判斷散落各處），
// 未來新增軸時只需在 Rules() 補一條規則，評估邏輯不變。
// 失敗的規則名稱同時作為 NotEligible 錯誤的上下文，供呼叫端渲染訊息
type EligibilityRule struct {
	Name      string
	Satisfied func(perf PlayerPerformance) bool
}

// Rules 將條件組編譯為謂詞列表
//
// 未設定的軸不產生規則（該軸不施加約束）
func (c EligibilityConditions) Rules() []EligibilityRule {
	rules := make([]EligibilityRule, 0, 4)

	if c.MinScore != nil {
		min := *c.MinScore
		rules = append(rules, EligibilityRule{
			Name: "min_score",
			Satisfied: func(perf PlayerPerformance) bool {
				return perf.TotalStrokes >= min
			},
		})
	}

	if c.MaxScore != nil {
		max := *c.MaxScore
		rules = append(rules, EligibilityRule{
			Name: "max_score",
			Satisfied: func(perf PlayerPerformance) bool {
				return perf.TotalStrokes <= max
			},
		})
	}

	if c.RequiredHoles != nil {
		required := *c.RequiredHoles
		rules = append(rules, EligibilityRule{
			Name: "required_holes",
			Satisfied: func(perf PlayerPerformance) bool {
				return perf.HolesPlayed >= required
			},
		})
	}

	if c.GameFormat != nil {
		format := *c.GameFormat
		rules = append(rules, EligibilityRule{
			Name: "game_format",
			Satisfied: func(perf PlayerPerformance) bool {
				return perf.GameFormat == format
			},
		})
	}

	return rules
}

// Evaluate 評估球員表現是否滿足全部條件（純函數，無副作用）
//
// 返回：
//   satisfied - 是否全部滿足
//   failedRule - 第一個不滿足的規則名稱（全部滿足時為空字串）
func (c EligibilityConditions) Evaluate(perf PlayerPerformance) (bool, string) {
	for _, rule := range c.Rules() {
		if !rule.Satisfied(perf) {
			return false, rule.Name
		}
	}
	return true, ""
}
