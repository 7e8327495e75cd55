// Package gameapi exposes the maze session over HTTP.
package gameapi

import "github.com/beka-birhanu/vinom-maze/service/i"

// MoveRequest asks to move the player one cell.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// LeaderboardResponse lists the best finished mazes.
type LeaderboardResponse struct {
	Scores []i.Score `json:"scores"`
}
