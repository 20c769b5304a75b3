package errors

import "errors"

// Rule rejections inside a match are not errors; the engine reports those as
// result records. These sentinels cover the room/transport boundary.
var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full or game already started")
	ErrNotSeated    = errors.New("player not seated in this room")
)
