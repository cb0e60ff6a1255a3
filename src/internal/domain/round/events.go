package round

import (
	"time"

	"github.com/google/uuid"
)

// ===========================
// Session 領域事件
// ===========================

// SessionStartedEvent 球局開始事件
type SessionStartedEvent struct {
	eventID    string
	sessionID  SessionID
	occurredAt time.Time
}

// NewSessionStartedEvent 創建球局開始事件
func NewSessionStartedEvent(sessionID SessionID) *SessionStartedEvent {
	return &SessionStartedEvent{
		eventID:    uuid.New().String(),
		sessionID:  sessionID,
		occurredAt: time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *SessionStartedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *SessionStartedEvent) EventType() string {
	return "round.session_started"
}

// OccurredAt 實現 DomainEvent 介面
func (e *SessionStartedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *SessionStartedEvent) AggregateID() string {
	return e.sessionID.String()
}

// SessionID 獲取球局 ID
func (e *SessionStartedEvent) SessionID() SessionID {
	return e.sessionID
}

// ===========================
// SessionFinished 領域事件
// ===========================

// SessionFinishedEvent 球局結束事件
//
// 下游獎勵評估以此事件為單一完成訊號
type SessionFinishedEvent struct {
	eventID    string
	sessionID  SessionID
	occurredAt time.Time
}

// NewSessionFinishedEvent 創建球局結束事件
func NewSessionFinishedEvent(sessionID SessionID) *SessionFinishedEvent {
	return &SessionFinishedEvent{
		eventID:    uuid.New().String(),
		sessionID:  sessionID,
		occurredAt: time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *SessionFinishedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *SessionFinishedEvent) EventType() string {
	return "round.session_finished"
}

// OccurredAt 實現 DomainEvent 介面
func (e *SessionFinishedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *SessionFinishedEvent) AggregateID() string {
	return e.sessionID.String()
}

// SessionID 獲取球局 ID
func (e *SessionFinishedEvent) SessionID() SessionID {
	return e.sessionID
}

// ===========================
// PlayerRemoved 領域事件
// ===========================

// PlayerRemovedEvent 球員移除事件
//
// 使用場景：
// - 本核心在同一事務中清除該球員的成績記錄
// - 外部協作者（社交動態、媒體）訂閱此事件，清理該球員獨占的衍生記錄
type PlayerRemovedEvent struct {
	eventID    string
	sessionID  SessionID
	playerID   PlayerID
	occurredAt time.Time
}

// NewPlayerRemovedEvent 創建球員移除事件
func NewPlayerRemovedEvent(sessionID SessionID, playerID PlayerID) *PlayerRemovedEvent {
	return &PlayerRemovedEvent{
		eventID:    uuid.New().String(),
		sessionID:  sessionID,
		playerID:   playerID,
		occurredAt: time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *PlayerRemovedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *PlayerRemovedEvent) EventType() string {
	return "round.player_removed"
}

// OccurredAt 實現 DomainEvent 介面
func (e *PlayerRemovedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *PlayerRemovedEvent) AggregateID() string {
	return e.sessionID.String()
}

// SessionID 獲取球局 ID
func (e *PlayerRemovedEvent) SessionID() SessionID {
	return e.sessionID
}

// PlayerID 獲取被移除的球員 ID
func (e *PlayerRemovedEvent) PlayerID() PlayerID {
	return e.playerID
}
