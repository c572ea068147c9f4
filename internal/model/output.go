package model

// OutputDocument is the summary written at the end of a run.
// Depending on the name style either the ISO datetimes or the raw timestamps are set.
type OutputDocument struct {
	StartTime      string   `json:"startTime,omitempty"`
	EndTime        string   `json:"endTime,omitempty"`
	StartTimestamp int64    `json:"startTimestamp,omitempty"`
	EndTimestamp   int64    `json:"endTimestamp,omitempty"`
	StartBlock     int64    `json:"startBlock"`
	EndBlock       int64    `json:"endBlock"`
	Count          int      `json:"count"`
	Addresses      []string `json:"addresses"`
}
