package score

import (
	"time"
)

// ===========================
// ScoreEntry 實體
// ===========================

// ScoreEntry 成績記錄實體
//
// 不變量（Invariants）：
// 1. 每個 (player, holeNumber) 至多一筆記錄
//    —— 同洞重複提交是「取代」（桿數/推桿/時間戳），不是新增
// 2. 桿數、推桿、洞號的範圍約束由值對象在建構時保證
// 3. 所屬球局結束後，記錄不可變更（由 Application Layer 檢查球局狀態）
//
// 併發語義：
// - 不同洞的提交可任意順序套用（可交換）
// - 同一洞的並發提交以提交順序取最後寫入者，整筆取代，不合併部分欄位
type ScoreEntry struct {
	entryID    EntryID
	playerID   PlayerID
	holeNumber HoleNumber
	strokes    Strokes
	putts      Putts
	location   Geolocation
	recordedAt time.Time
}

// NewScoreEntry 創建新成績記錄（Checked Constructor）
func NewScoreEntry(
	playerID PlayerID,
	holeNumber HoleNumber,
	strokes Strokes,
	putts Putts,
	location Geolocation,
) (*ScoreEntry, error) {
	if playerID.IsEmpty() {
		return nil, ErrInvalidScorePlayerID.WithContext(
			"reason", "playerID cannot be empty",
		)
	}

	return &ScoreEntry{
		entryID:    NewEntryID(),
		playerID:   playerID,
		holeNumber: holeNumber,
		strokes:    strokes,
		putts:      putts,
		location:   location,
		recordedAt: time.Now(),
	}, nil
}

// ReconstructScoreEntry 從持久化存儲重建成績記錄（僅供 Infrastructure Layer 使用）
func ReconstructScoreEntry(
	entryID EntryID,
	playerID PlayerID,
	holeNumber HoleNumber,
	strokes Strokes,
	putts Putts,
	location Geolocation,
	recordedAt time.Time,
) (*ScoreEntry, error) {
	if entryID.IsEmpty() {
		return nil, ErrInvalidEntryID.WithContext(
			"reason", "invalid entry ID in database",
		)
	}
	if playerID.IsEmpty() {
		return nil, ErrInvalidScorePlayerID.WithContext(
			"reason", "invalid player ID in database",
		)
	}

	return &ScoreEntry{
		entryID:    entryID,
		playerID:   playerID,
		holeNumber: holeNumber,
		strokes:    strokes,
		putts:      putts,
		location:   location,
		recordedAt: recordedAt,
	}, nil
}

// ===========================
// 命令方法（狀態變更）
// ===========================

// Revise 取代同洞成績（同洞重複提交）
//
// 業務規則：
// - 整筆取代桿數/推桿/座標並刷新時間戳，不做部分欄位合併
// - EntryID 與 (player, hole) 鍵保持不變
func (e *ScoreEntry) Revise(strokes Strokes, putts Putts, location Geolocation) {
	e.strokes = strokes
	e.putts = putts
	e.location = location
	e.recordedAt = time.Now()
}

// ===========================
// 查詢方法（Getters）
// ===========================

// EntryID 獲取成績記錄 ID
func (e *ScoreEntry) EntryID() EntryID {
	return e.entryID
}

// PlayerID 獲取球員 ID
func (e *ScoreEntry) PlayerID() PlayerID {
	return e.playerID
}

// HoleNumber 獲取洞號
func (e *ScoreEntry) HoleNumber() HoleNumber {
	return e.holeNumber
}

// Strokes 獲取桿數
func (e *ScoreEntry) Strokes() Strokes {
	return e.strokes
}

// Putts 獲取推桿數
func (e *ScoreEntry) Putts() Putts {
	return e.putts
}

// Location 獲取地理座標
func (e *ScoreEntry) Location() Geolocation {
	return e.location
}

// RecordedAt 獲取記錄時間
func (e *ScoreEntry) RecordedAt() time.Time {
	return e.recordedAt
}
