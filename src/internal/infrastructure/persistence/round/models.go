package round

import (
	"time"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
)

// ===========================
// GORM Models
// ===========================

// SessionGORM 球局資料表模型
//
// 設計原則：
// - 僅用於 Infrastructure Layer（不暴露給 Domain Layer）
// - 與 Domain Session 聚合分離（Mapper 轉換）
//
// 資料庫約束：
// - session_id: 主鍵（UUID）
// - status / format: 字串枚舉（由 Domain Layer 驗證）
// - ended_at: 可空；不變量 ended_at 非空 ⟺ status = finished（Reconstruct 驗證）
// - 球局在正常營運中永不刪除，不使用軟刪除
type SessionGORM struct {
	SessionID string  `gorm:"column:session_id;type:varchar(36);primaryKey"`
	Name      string  `gorm:"column:name;not null"`
	CreatorID string  `gorm:"column:creator_id;type:varchar(36);not null;index"`
	CourseID  *string `gorm:"column:course_id;type:varchar(36)"`

	Status string `gorm:"column:status;type:varchar(16);not null"`
	Format string `gorm:"column:format;type:varchar(16);not null"`

	StartedAt time.Time  `gorm:"column:started_at;not null"`
	EndedAt   *time.Time `gorm:"column:ended_at"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (SessionGORM) TableName() string {
	return "sessions"
}

// PlayerGORM 球員資料表模型
//
// 資料庫約束：
// - player_id: 主鍵（UUID）
// - (session_id, identity_kind, identity_ref): 唯一索引
//   —— DuplicateIdentity 的最終保證（併發加入時由資料庫裁決）
// - (session_id, position): 唯一索引（順位在球局內唯一）
type PlayerGORM struct {
	PlayerID    string `gorm:"column:player_id;type:varchar(36);primaryKey"`
	SessionID   string `gorm:"column:session_id;type:varchar(36);not null;uniqueIndex:idx_players_session_identity;uniqueIndex:idx_players_session_position"`
	DisplayName string `gorm:"column:display_name;not null"`

	IdentityKind string `gorm:"column:identity_kind;type:varchar(16);not null;uniqueIndex:idx_players_session_identity"`
	IdentityRef  string `gorm:"column:identity_ref;type:varchar(36);not null;uniqueIndex:idx_players_session_identity"`

	Position int `gorm:"column:position;not null;uniqueIndex:idx_players_session_position"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (PlayerGORM) TableName() string {
	return "players"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (g *SessionGORM) toDomain() (*round.Session, error) {
	sessionID, err := round.SessionIDFromString(g.SessionID)
	if err != nil {
		return nil, err
	}

	creatorID, err := round.UserIDFromString(g.CreatorID)
	if err != nil {
		return nil, err
	}

	var courseID *round.CourseID
	if g.CourseID != nil {
		parsed, err := round.CourseIDFromString(*g.CourseID)
		if err != nil {
			return nil, err
		}
		courseID = &parsed
	}

	return round.ReconstructSession(
		sessionID,
		g.Name,
		creatorID,
		courseID,
		round.SessionStatus(g.Status),
		round.GameFormat(g.Format),
		g.StartedAt,
		g.EndedAt,
		g.CreatedAt,
		g.UpdatedAt,
	)
}

// sessionToGORM 將 Domain 模型轉換為 GORM 模型
func sessionToGORM(session *round.Session) *SessionGORM {
	var courseID *string
	if session.CourseID() != nil {
		s := session.CourseID().String()
		courseID = &s
	}

	return &SessionGORM{
		SessionID: session.SessionID().String(),
		Name:      session.Name(),
		CreatorID: session.CreatorID().String(),
		CourseID:  courseID,
		Status:    string(session.Status()),
		Format:    string(session.Format()),
		StartedAt: session.StartedAt(),
		EndedAt:   session.EndedAt(),
		CreatedAt: session.CreatedAt(),
		UpdatedAt: session.UpdatedAt(),
	}
}

// toDomain 將 GORM 模型轉換為 Domain 模型
func (g *PlayerGORM) toDomain() (*round.Player, error) {
	playerID, err := round.PlayerIDFromString(g.PlayerID)
	if err != nil {
		return nil, err
	}

	sessionID, err := round.SessionIDFromString(g.SessionID)
	if err != nil {
		return nil, err
	}

	identity, err := round.ReconstructIdentity(round.IdentityKind(g.IdentityKind), g.IdentityRef)
	if err != nil {
		return nil, err
	}

	return round.ReconstructPlayer(
		playerID,
		sessionID,
		g.DisplayName,
		identity,
		g.Position,
		g.CreatedAt,
		g.UpdatedAt,
	)
}

// playerToGORM 將 Domain 模型轉換為 GORM 模型
func playerToGORM(player *round.Player) *PlayerGORM {
	return &PlayerGORM{
		PlayerID:     player.PlayerID().String(),
		SessionID:    player.SessionID().String(),
		DisplayName:  player.DisplayName(),
		IdentityKind: string(player.Identity().Kind()),
		IdentityRef:  player.Identity().Ref(),
		Position:     player.Position(),
		CreatedAt:    player.CreatedAt(),
		UpdatedAt:    player.UpdatedAt(),
	}
}
