package score

import (
	"time"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/score"
)

// ===========================
// GORM Models
// ===========================

// ScoreEntryGORM 成績記錄資料表模型
//
// 資料庫約束：
// - entry_id: 主鍵（UUID）
// - (player_id, hole_number): 唯一索引
//   —— 「每洞至多一筆」不變量的最終保證；
//      同洞重複提交由 Upsert 的 conflict-update 整筆取代
type ScoreEntryGORM struct {
	EntryID    string `gorm:"column:entry_id;type:varchar(36);primaryKey"`
	PlayerID   string `gorm:"column:player_id;type:varchar(36);not null;uniqueIndex:idx_scores_player_hole"`
	HoleNumber int    `gorm:"column:hole_number;not null;uniqueIndex:idx_scores_player_hole;check:hole_number >= 1 AND hole_number <= 18"`

	Strokes int  `gorm:"column:strokes;not null;check:strokes >= 1 AND strokes <= 20"`
	Putts   *int `gorm:"column:putts"`

	Latitude  *float64 `gorm:"column:latitude"`
	Longitude *float64 `gorm:"column:longitude"`

	RecordedAt time.Time `gorm:"column:recorded_at;not null"`
}

// TableName 指定資料表名稱
func (ScoreEntryGORM) TableName() string {
	return "score_entries"
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 將 GORM 模型轉換為 Domain 模型
func (g *ScoreEntryGORM) toDomain() (*score.ScoreEntry, error) {
	entryID, err := score.EntryIDFromString(g.EntryID)
	if err != nil {
		return nil, err
	}

	playerID, err := score.PlayerIDFromString(g.PlayerID)
	if err != nil {
		return nil, err
	}

	holeNumber, err := score.NewHoleNumber(g.HoleNumber)
	if err != nil {
		return nil, err
	}

	strokes, err := score.NewStrokes(g.Strokes)
	if err != nil {
		return nil, err
	}

	putts := score.NoPutts()
	if g.Putts != nil {
		putts, err = score.NewPutts(*g.Putts, strokes)
		if err != nil {
			return nil, err
		}
	}

	location := score.NoGeolocation()
	if g.Latitude != nil && g.Longitude != nil {
		location = score.NewGeolocation(*g.Latitude, *g.Longitude)
	}

	return score.ReconstructScoreEntry(
		entryID,
		playerID,
		holeNumber,
		strokes,
		putts,
		location,
		g.RecordedAt,
	)
}

// toGORM 將 Domain 模型轉換為 GORM 模型
func toGORM(entry *score.ScoreEntry) *ScoreEntryGORM {
	var putts *int
	if entry.Putts().IsPresent() {
		v := entry.Putts().Value()
		putts = &v
	}

	var latitude, longitude *float64
	if entry.Location().IsPresent() {
		lat := entry.Location().Latitude()
		lng := entry.Location().Longitude()
		latitude = &lat
		longitude = &lng
	}

	return &ScoreEntryGORM{
		EntryID:    entry.EntryID().String(),
		PlayerID:   entry.PlayerID().String(),
		HoleNumber: entry.HoleNumber().Value(),
		Strokes:    entry.Strokes().Value(),
		Putts:      putts,
		Latitude:   latitude,
		Longitude:  longitude,
		RecordedAt: entry.RecordedAt(),
	}
}
