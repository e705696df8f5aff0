package models

import (
	"time"
)

// Certificate is one signed, issued certificate. Rows are immutable once
// created; revocation happens out-of-band through RevocationOutpoint.
type Certificate struct {
	CertificateID int64 `bun:"certificate_id,pk,autoincrement"`

	UserID int64 `bun:"user_id,notnull"`
	User   *User `bun:"rel:belongs-to,join:user_id=user_id"`

	// Type identifier of the template this certificate was issued under,
	// 32 bytes base64.
	Type string `bun:",notnull"`

	// Subject = identity key the certificate is issued to. Always equals the
	// owning user's identity key.
	Subject string `bun:",notnull"`

	// ValidationKey is opaque material the crypto layer uses to later
	// verify/derive field keys.
	ValidationKey string `bun:"validation_key,notnull"`

	// SerialNumber uniquely identifies this certificate instance.
	SerialNumber string `bun:"serial_number,unique,notnull"`

	// Certifier = the issuer's own public identity key.
	Certifier string `bun:",notnull"`

	// RevocationOutpoint is an all-zero sentinel for unexpirable certificates.
	RevocationOutpoint string `bun:"revocation_outpoint,notnull"`

	Signature string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
