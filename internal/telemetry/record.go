package telemetry

import "encoding/json"

// Record is the JSONL wire shape: each line carries exactly one
// top-level key, "DataPoint" or "SessionChange" (spec.md §6).
type Record struct {
	DataPoint     *Sample      `json:"DataPoint,omitempty"`
	SessionChange *SessionInfo `json:"SessionChange,omitempty"`
}

// legacyKeys are present only in the pre-game_source JSONL format this
// core refuses to guess-parse (spec.md §7 kind 5: Load failure).
var legacyKeys = []string{"cur_gear", "cur_rpm", "lap_dist", "car_shift_ideal_rpm"}

// DecodeRecord parses one JSONL line into a Record, returning a
// KindLoadFailure PipelineError for malformed JSON or for the legacy
// format (any legacy key present without a game_source key).
func DecodeRecord(line []byte) (*Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, NewPipelineError(KindLoadFailure, "malformed JSONL record", err)
	}

	if _, hasGameSource := raw["game_source"]; !hasGameSource {
		for _, k := range legacyKeys {
			if _, ok := raw[k]; ok {
				return nil, NewPipelineError(KindLoadFailure,
					"legacy telemetry format is not supported (missing game_source)", nil)
			}
		}
	}

	var rec Record
	if dp, ok := raw["DataPoint"]; ok {
		var s Sample
		if err := json.Unmarshal(dp, &s); err != nil {
			return nil, NewPipelineError(KindLoadFailure, "malformed DataPoint", err)
		}
		rec.DataPoint = &s
		return &rec, nil
	}
	if sc, ok := raw["SessionChange"]; ok {
		var si SessionInfo
		if err := json.Unmarshal(sc, &si); err != nil {
			return nil, NewPipelineError(KindLoadFailure, "malformed SessionChange", err)
		}
		rec.SessionChange = &si
		return &rec, nil
	}
	return nil, NewPipelineError(KindLoadFailure, "record has neither DataPoint nor SessionChange key", nil)
}

// EncodeDataPoint serializes a DataPoint record.
func EncodeDataPoint(s *Sample) ([]byte, error) {
	return json.Marshal(Record{DataPoint: s})
}

// EncodeSessionChange serializes a SessionChange record.
func EncodeSessionChange(si *SessionInfo) ([]byte, error) {
	return json.Marshal(Record{SessionChange: si})
}
