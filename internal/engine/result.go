package engine

import (
	"github.com/PandaNeatBook/analizza-log-traccia3/internal/model"
)

// AnalysisResult holds the aggregates derived from one dataset.
// The JSON field names are part of the output format and must not change.
type AnalysisResult struct {
	UniqueUsers  []model.Value       `json:"utenti_unici"`
	UniqueEvents []model.Value       `json:"eventi_unici"`
	EventCounts  map[model.Value]int `json:"conteggio_eventi"`
}

// Summary contains the figures shown to the user after a run.
type Summary struct {
	UniqueUsers  int `json:"unique_users"`
	UniqueEvents int `json:"unique_events"`
	TotalLogs    int `json:"total_logs"` // sum of all event counts
}

// Summary derives the headline numbers of the result.
func (r *AnalysisResult) Summary() Summary {
	s := Summary{
		UniqueUsers:  len(r.UniqueUsers),
		UniqueEvents: len(r.UniqueEvents),
	}
	for _, c := range r.EventCounts {
		s.TotalLogs += c
	}
	return s
}
