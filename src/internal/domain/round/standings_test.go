package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ===========================
// Standings Ordering Tests
// ===========================

// Test 1: Fewer strokes ranks first; same strokes ranked by holes played desc
//
// 輸入三人：(68桿, 18洞)、(70桿, 18洞)、(70桿, 17洞)
// 預期順序：68/18 → 70/18 → 70/17
func TestSortStandings_StrokesThenHolesPlayed(t *testing.T) {
	// Arrange
	a := Standing{DisplayName: "A", Position: 1, TotalStrokes: 70, HolesPlayed: 17}
	b := Standing{DisplayName: "B", Position: 2, TotalStrokes: 68, HolesPlayed: 18}
	c := Standing{DisplayName: "C", Position: 3, TotalStrokes: 70, HolesPlayed: 18}
	standings := []Standing{a, b, c}

	// Act
	SortStandings(standings)

	// Assert
	assert.Equal(t, "B", standings[0].DisplayName)
	assert.Equal(t, "C", standings[1].DisplayName, "same strokes: more holes played ranks higher")
	assert.Equal(t, "A", standings[2].DisplayName)
}

// Test 2: Full tie resolves by join position (stable)
func TestSortStandings_FullTie_OrderedByPosition(t *testing.T) {
	// Arrange
	standings := []Standing{
		{DisplayName: "third", Position: 3, TotalStrokes: 72, HolesPlayed: 18},
		{DisplayName: "first", Position: 1, TotalStrokes: 72, HolesPlayed: 18},
		{DisplayName: "second", Position: 2, TotalStrokes: 72, HolesPlayed: 18},
	}

	// Act
	SortStandings(standings)

	// Assert
	assert.Equal(t, "first", standings[0].DisplayName)
	assert.Equal(t, "second", standings[1].DisplayName)
	assert.Equal(t, "third", standings[2].DisplayName)
}

// Test 3: A short low-stroke card outranks a complete higher card
//
// 既有計分規則：總桿數是第一排序鍵，未完成的低桿局排在完整高桿局之前
func TestSortStandings_IncompleteLowCard_RanksAboveCompleteHighCard(t *testing.T) {
	// Arrange
	standings := []Standing{
		{DisplayName: "complete", Position: 1, TotalStrokes: 90, HolesPlayed: 18},
		{DisplayName: "partial", Position: 2, TotalStrokes: 45, HolesPlayed: 9},
	}

	// Act
	SortStandings(standings)

	// Assert
	assert.Equal(t, "partial", standings[0].DisplayName)
	assert.Equal(t, "complete", standings[1].DisplayName)
}

// Test 4: Empty and single-element lists are no-ops
func TestSortStandings_DegenerateInputs(t *testing.T) {
	// Act & Assert
	SortStandings(nil)

	single := []Standing{{DisplayName: "solo", Position: 1, TotalStrokes: 80, HolesPlayed: 18}}
	SortStandings(single)
	assert.Equal(t, "solo", single[0].DisplayName)
}
