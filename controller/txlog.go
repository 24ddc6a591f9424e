package controller

import "time"

// TxLogEntry is one submitted operation identifier with its submission time.
type TxLogEntry struct {
	Hash string
	Time time.Time
}

// TxLog is the session-scoped audit trail: append-only, newest first, lost on
// process exit. The persistent journal in tlog is layered on top by the CLI.
type TxLog struct {
	entries []TxLogEntry
}

func (l *TxLog) Append(hash string) {
	entry := TxLogEntry{Hash: hash, Time: time.Now()}
	l.entries = append([]TxLogEntry{entry}, l.entries...)
}

// Entries returns a copy of the log, newest first.
func (l *TxLog) Entries() []TxLogEntry {
	out := make([]TxLogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *TxLog) Len() int {
	return len(l.entries)
}
