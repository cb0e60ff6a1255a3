package score

// ===========================
// 成績值對象
// ===========================

// 設計原則：值對象不可變、自我驗證
// 建構函數保證範圍約束，後續代碼無需重複檢查

// HoleNumber 洞號值對象
//
// 建構約束：1 <= value <= 18
type HoleNumber struct {
	value int
}

// NewHoleNumber 建構函數（checked 版本）
func NewHoleNumber(value int) (HoleNumber, error) {
	if value < 1 || value > 18 {
		return HoleNumber{}, ErrInvalidHoleNumber.WithContext(
			"hole_number", value,
		)
	}
	return HoleNumber{value: value}, nil
}

// Value 獲取洞號
func (h HoleNumber) Value() int {
	return h.value
}

// Equals 比較兩個洞號是否相等
func (h HoleNumber) Equals(other HoleNumber) bool {
	return h.value == other.value
}

// ===========================
// Strokes 桿數
// ===========================

// Strokes 桿數值對象
//
// 建構約束：1 <= value <= 20
type Strokes struct {
	value int
}

// NewStrokes 建構函數（checked 版本）
func NewStrokes(value int) (Strokes, error) {
	if value < 1 || value > 20 {
		return Strokes{}, ErrInvalidStrokes.WithContext(
			"strokes", value,
		)
	}
	return Strokes{value: value}, nil
}

// Value 獲取桿數
func (s Strokes) Value() int {
	return s.value
}

// ===========================
// Putts 推桿數（可選）
// ===========================

// Putts 推桿數值對象
//
// 建構約束：0 <= value <= strokes（推桿是總桿數的一部分）
// 可選欄位：未提供時以零值 Putts（present=false）表示
type Putts struct {
	value   int
	present bool
}

// NewPutts 建構函數（checked 版本）
//
// 參數：
//   value - 推桿數
//   strokes - 同洞總桿數（上界）
func NewPutts(value int, strokes Strokes) (Putts, error) {
	if value < 0 || value > strokes.Value() {
		return Putts{}, ErrInvalidPutts.WithContext(
			"putts", value,
			"strokes", strokes.Value(),
		)
	}
	return Putts{value: value, present: true}, nil
}

// NoPutts 表示未提供推桿數
func NoPutts() Putts {
	return Putts{}
}

// Value 獲取推桿數（未提供時為 0，先以 IsPresent 判斷）
func (p Putts) Value() int {
	return p.value
}

// IsPresent 判斷是否有提供推桿數
func (p Putts) IsPresent() bool {
	return p.present
}

// ===========================
// Geolocation 地理座標（可選）
// ===========================

// Geolocation 記分當下的地理座標值對象
//
// 本核心只保存座標供外部地圖模組讀取，不做任何渲染或計算
type Geolocation struct {
	latitude  float64
	longitude float64
	present   bool
}

// NewGeolocation 建立地理座標
func NewGeolocation(latitude, longitude float64) Geolocation {
	return Geolocation{latitude: latitude, longitude: longitude, present: true}
}

// NoGeolocation 表示未提供地理座標
func NoGeolocation() Geolocation {
	return Geolocation{}
}

// Latitude 獲取緯度
func (g Geolocation) Latitude() float64 {
	return g.latitude
}

// Longitude 獲取經度
func (g Geolocation) Longitude() float64 {
	return g.longitude
}

// IsPresent 判斷是否有提供座標
func (g Geolocation) IsPresent() bool {
	return g.present
}
