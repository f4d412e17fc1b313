package domain

// UsesSQLite reports whether history is kept in the sqlite backend.
func (h HistorySettings) UsesSQLite() bool {
	return h.Backend == HistoryBackendSQLite
}

// DefaultStoreName returns the file name used under the home directory when
// no history location is configured.
func (h HistorySettings) DefaultStoreName() string {
	if h.UsesSQLite() {
		return DefaultHistoryDatabase
	}
	return DefaultHistoryFile
}

// Overflow returns how many of count loaded entries exceed MaxSize.
func (h HistorySettings) Overflow(count int) int {
	if h.MaxSize <= 0 || count <= h.MaxSize {
		return 0
	}
	return count - h.MaxSize
}
