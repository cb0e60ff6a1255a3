package persistence

// DSN 組裝 sqlite 連線字串。
//
// _txlock=immediate：事務在 BEGIN 時即取得寫鎖。兌換路徑的事務
// 先讀後寫，延遲取鎖的讀→寫升級不受 busy timeout 重試，撞鎖時會
// 直接返回 SQLITE_BUSY；立即取鎖讓併發寫入者在 busy timeout 內
// 排隊序列化，落敗方走正常的前置條件檢查，得到的是領域錯誤
// （庫存耗盡 / 已兌換）而不是驅動層錯誤
func DSN(path string) string {
	return path + "?_txlock=immediate&_busy_timeout=5000"
}
