// Package gameapi exposes the running maze session over HTTP.
package gameapi

import "github.com/beka-birhanu/vinom-posemaze/game"

// StateResponse is the public view of the latest tick.
type StateResponse struct {
	Version  int64             `json:"version"`
	Cols     int               `json:"cols"`
	Rows     int               `json:"rows"`
	Maze     string            `json:"maze"`
	Player   game.CellPosition `json:"player"`
	Goal     game.CellPosition `json:"goal"`
	Path     game.Path         `json:"path"`
	Next     string            `json:"next"`
	Percent  int               `json:"percent"`
	Elapsed  string            `json:"elapsed"`
	Finished bool              `json:"finished"`
}
