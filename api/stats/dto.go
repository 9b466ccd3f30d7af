// Package statsapi serves the completion history and its statistics.
package statsapi

import "github.com/beka-birhanu/vinom-posemaze/service"

// RecordRequest reports a run measured outside the game loop.
type RecordRequest struct {
	Seconds *float64 `json:"seconds" binding:"required"`
}

// RunsResponse carries the history, oldest first, with its summary and histogram.
type RunsResponse struct {
	Runs      []float64        `json:"runs"`
	Summary   service.Summary  `json:"summary"`
	Histogram []service.Bucket `json:"histogram"`
}
