package round

import (
	"time"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// SessionStatus / GameFormat
// ===========================

// SessionStatus 球局生命週期狀態
//
// 狀態機（只能前進，不可回退）：
//   waiting → active → finished
type SessionStatus string

const (
	// SessionStatusWaiting 等待中（可加入/移除球員）
	SessionStatusWaiting SessionStatus = "waiting"
	// SessionStatusActive 進行中（記分階段）
	SessionStatusActive SessionStatus = "active"
	// SessionStatusFinished 已結束（成績凍結，獎勵評估的起點）
	SessionStatusFinished SessionStatus = "finished"
)

// GameFormat 比賽形式
type GameFormat string

const (
	// GameFormatStroke 比桿賽（預設形式）
	GameFormatStroke GameFormat = "stroke"
	// GameFormatMatch 比洞賽
	GameFormatMatch GameFormat = "match"
	// GameFormatScramble 四人二球最佳球位
	GameFormatScramble GameFormat = "scramble"
	// GameFormatBestBall 四人四球最佳成績
	GameFormatBestBall GameFormat = "best_ball"
)

// NewGameFormat 驗證並建立比賽形式
//
// 參數 s 為空字串時使用預設形式（stroke）
func NewGameFormat(s string) (GameFormat, error) {
	if s == "" {
		return GameFormatStroke, nil
	}
	format := GameFormat(s)
	switch format {
	case GameFormatStroke, GameFormatMatch, GameFormatScramble, GameFormatBestBall:
		return format, nil
	default:
		return "", ErrInvalidGameFormat.WithContext("format", s)
	}
}

// ===========================
// Session 聚合根
// ===========================

// Session 球局聚合根
//
// 聚合邊界：
// - 球局基本信息（ID, Name, 創建者, 球場引用）
// - 生命週期狀態（Status, StartedAt, EndedAt）
// - 比賽形式（Format）
//
// 不變量（Invariants）：
// 1. Status 只能前進：waiting → active → finished，不可回退
// 2. EndedAt 有值 ⟺ Status = finished
// 3. Finish 只能成功一次（第二次呼叫失敗，返回 ErrSessionAlreadyFinished）
// 4. 球局在正常營運中永不刪除
//
// 設計原則：
// - Tell, Don't Ask：狀態轉移通過 Start/Finish 方法執行，不暴露 setter
// - 事件驅動：狀態變更發布領域事件，供下游協作者（通知、動態）消費
type Session struct {
	// 識別欄位
	sessionID SessionID
	name      string
	creatorID UserID
	courseID  *CourseID // 可選的球場引用

	// 生命週期
	status    SessionStatus
	format    GameFormat
	startedAt time.Time
	endedAt   *time.Time // 不變量：非 nil ⟺ status = finished

	// 審計欄位
	createdAt time.Time
	updatedAt time.Time

	// 待發布的領域事件
	events []shared.DomainEvent
}

// NewSession 創建新球局（Checked Constructor）
//
// 業務規則：
// 1. 名稱不能為空
// 2. 形式為空時使用預設（stroke）
// 3. 初始狀態為 waiting
// 4. 自動生成唯一的 SessionID
func NewSession(name string, creatorID UserID, courseID *CourseID, format GameFormat) (*Session, error) {
	// 1. 驗證名稱
	if name == "" {
		return nil, ErrInvalidSessionName
	}

	// 2. 驗證創建者
	if creatorID.IsEmpty() {
		return nil, ErrInvalidUserID.WithContext(
			"reason", "creatorID cannot be empty",
		)
	}

	// 3. 形式預設值
	if format == "" {
		format = GameFormatStroke
	}

	now := time.Now()

	return &Session{
		sessionID: NewSessionID(),
		name:      name,
		creatorID: creatorID,
		courseID:  courseID,
		status:    SessionStatusWaiting,
		format:    format,
		startedAt: now,
		endedAt:   nil,
		createdAt: now,
		updatedAt: now,
		events:    make([]shared.DomainEvent, 0),
	}, nil
}

// ReconstructSession 從持久化存儲重建聚合根
//
// 與 NewSession 的區別：
// - New: 創建新聚合，執行完整驗證，狀態固定為 waiting
// - Reconstruct: 重建已存在的聚合，不發布事件（事件已發生過）
//
// 重要：重建時仍驗證 EndedAt ⟺ finished 不變量，防止損壞資料污染領域層
func ReconstructSession(
	sessionID SessionID,
	name string,
	creatorID UserID,
	courseID *CourseID,
	status SessionStatus,
	format GameFormat,
	startedAt time.Time,
	endedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Session, error) {
	if sessionID.IsEmpty() {
		return nil, ErrInvalidSessionID.WithContext(
			"reason", "invalid session ID in database",
		)
	}
	if name == "" {
		return nil, ErrInvalidSessionName
	}

	// 不變量檢查：EndedAt 有值 ⟺ status = finished
	finished := status == SessionStatusFinished
	if finished != (endedAt != nil) {
		return nil, ErrInvalidStateTransition.WithContext(
			"status", string(status),
			"has_ended_at", endedAt != nil,
		)
	}

	return &Session{
		sessionID: sessionID,
		name:      name,
		creatorID: creatorID,
		courseID:  courseID,
		status:    status,
		format:    format,
		startedAt: startedAt,
		endedAt:   endedAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
		events:    make([]shared.DomainEvent, 0),
	}, nil
}

// ===========================
// 命令方法（狀態變更）
// ===========================

// Start 開始球局
//
// 前置條件：
// - status = waiting（否則 ErrInvalidStateTransition）
// - playerCount >= 1（否則 ErrSessionHasNoPlayers）
//
// 副作用：
// - status → active
// - 更新 startedAt 為實際開始時間
// - 發布 SessionStartedEvent
func (s *Session) Start(playerCount int) error {
	if s.status != SessionStatusWaiting {
		return ErrInvalidStateTransition.WithContext(
			"session_id", s.sessionID.String(),
			"status", string(s.status),
			"operation", "start",
		)
	}
	if playerCount < 1 {
		return ErrSessionHasNoPlayers.WithContext(
			"session_id", s.sessionID.String(),
		)
	}

	now := time.Now()
	s.status = SessionStatusActive
	s.startedAt = now
	s.updatedAt = now

	s.addEvent(NewSessionStartedEvent(s.sessionID))

	return nil
}

// Finish 結束球局
//
// 前置條件：status ≠ finished
//
// 業務規則：
// - 第二次呼叫必須失敗（ErrSessionAlreadyFinished），不可靜默成功
// - 下游獎勵評估依賴單一、明確定義的完成事件
//
// 副作用：
// - status → finished
// - 設定 endedAt = now（維持 EndedAt ⟺ finished 不變量）
// - 發布 SessionFinishedEvent
func (s *Session) Finish() error {
	if s.status == SessionStatusFinished {
		return ErrSessionAlreadyFinished.WithContext(
			"session_id", s.sessionID.String(),
		)
	}

	now := time.Now()
	s.status = SessionStatusFinished
	s.endedAt = &now
	s.updatedAt = now

	s.addEvent(NewSessionFinishedEvent(s.sessionID))

	return nil
}

// ===========================
// 查詢方法（Getters）
// ===========================
//
// ⚠️ 警告：不應在業務邏輯中使用這些 getter 做狀態判斷
// 正確做法：在聚合根內部提供業務方法（如 IsJoinable / IsFinished）

// SessionID 獲取球局 ID
func (s *Session) SessionID() SessionID {
	return s.sessionID
}

// Name 獲取球局名稱
func (s *Session) Name() string {
	return s.name
}

// CreatorID 獲取創建者 ID
func (s *Session) CreatorID() UserID {
	return s.creatorID
}

// CourseID 獲取球場引用（可能為 nil）
func (s *Session) CourseID() *CourseID {
	return s.courseID
}

// Status 獲取球局狀態
func (s *Session) Status() SessionStatus {
	return s.status
}

// Format 獲取比賽形式
func (s *Session) Format() GameFormat {
	return s.format
}

// StartedAt 獲取開始時間
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// EndedAt 獲取結束時間（未結束時為 nil）
func (s *Session) EndedAt() *time.Time {
	return s.endedAt
}

// CreatedAt 獲取創建時間
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt 獲取最後更新時間
func (s *Session) UpdatedAt() time.Time {
	return s.updatedAt
}

// ===========================
// 業務判斷方法
// ===========================

// IsJoinable 判斷是否可加入球員
//
// 業務規則：waiting 與 active 球局皆可加入，finished 不可
func (s *Session) IsJoinable() bool {
	return s.status != SessionStatusFinished
}

// IsWaiting 判斷是否在等待中（球員可移除階段）
func (s *Session) IsWaiting() bool {
	return s.status == SessionStatusWaiting
}

// IsFinished 判斷是否已結束（成績凍結，獎勵評估前置條件）
func (s *Session) IsFinished() bool {
	return s.status == SessionStatusFinished
}

// ===========================
// 事件管理
// ===========================

// addEvent 添加領域事件到待發布列表（私有方法）
func (s *Session) addEvent(event shared.DomainEvent) {
	s.events = append(s.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
//
// 使用場景：
// - Repository.Update() 成功後，調用此方法獲取事件並發布
// - 只讀取一次：獲取後清空，避免重複發布
func (s *Session) PullEvents() []shared.DomainEvent {
	events := s.events
	s.events = make([]shared.DomainEvent, 0)
	return events
}
