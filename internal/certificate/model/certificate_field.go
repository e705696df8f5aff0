package models

// MaxFieldValueLen bounds the stored ciphertext of a single field.
const MaxFieldValueLen = 2048

// CertificateField is one encrypted field value belonging to one
// certificate. FieldValue stays ciphertext at rest; FieldKey is the
// encrypted symmetric key the certifier needs to decrypt it on demand.
// UserID is denormalized for query convenience and always agrees with the
// parent certificate's owner.
type CertificateField struct {
	UserID int64 `bun:"user_id,notnull"`
	User   *User `bun:"rel:belongs-to,join:user_id=user_id"`

	CertificateID int64        `bun:"certificate_id,notnull"`
	Certificate   *Certificate `bun:"rel:belongs-to,join:certificate_id=certificate_id"`

	FieldName  string `bun:"field_name,notnull"`
	FieldValue string `bun:"field_value,notnull,type:varchar(2048)"`
	FieldKey   string `bun:"field_key,notnull"`
}
