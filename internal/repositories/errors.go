package repositories

import "errors"

// Repository-level sentinels. Services translate these into the API error
// taxonomy so controllers never see storage details.
var (
	ErrRepoRecordNotFound    = errors.New("record not found")
	ErrRepoInsufficientRooms = errors.New("insufficient rooms")
)
