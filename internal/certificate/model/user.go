package models

import (
	"time"
)

// User associates our own surrogate userId with a caller identity key
// (compressed public key as 66 hex digits). Rows are created lazily the
// first time a CSR arrives for an unseen identity key and are never deleted.
type User struct {
	UserID int64 `bun:"user_id,pk,autoincrement"`

	// IdentityKey = the caller's public identity key, at most one row per key.
	IdentityKey string `bun:"babbage_identity,unique,notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
