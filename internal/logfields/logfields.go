package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyTask       = "task"
	KeyComponent  = "component"
	KeyPath       = "path"
	KeyKind       = "kind"
	KeyRecords    = "records"
	KeyDocuments  = "documents"
	KeySections   = "sections"
	KeyOutput     = "output"
	KeyOp         = "op"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr         { return slog.String(KeyRunID, id) }
func Task(name string) slog.Attr        { return slog.String(KeyTask, name) }
func Component(name string) slog.Attr   { return slog.String(KeyComponent, name) }
func Path(p string) slog.Attr           { return slog.String(KeyPath, p) }
func Kind(k string) slog.Attr           { return slog.String(KeyKind, k) }
func Records(n int) slog.Attr           { return slog.Int(KeyRecords, n) }
func Documents(n int) slog.Attr         { return slog.Int(KeyDocuments, n) }
func Sections(n int) slog.Attr          { return slog.Int(KeySections, n) }
func Output(p string) slog.Attr         { return slog.String(KeyOutput, p) }
func Op(op string) slog.Attr            { return slog.String(KeyOp, op) }
func Duration(d time.Duration) slog.Attr { return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
