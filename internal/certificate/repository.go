package certificate

import (
	"context"

	models "github.com/p2ppsr/myac/internal/certificate/model"
)

type CertificateRepository interface {
	// UpsertUser returns the userId for identityKey, inserting the row if it
	// does not exist yet. Concurrent calls with the same key converge to one
	// row.
	UpsertUser(ctx context.Context, identityKey string) (int64, error)

	// SaveCertificate inserts the certificate and all its field rows as one
	// unit of work; on failure no rows from the call remain visible.
	SaveCertificate(ctx context.Context, cert *models.Certificate, fields []models.CertificateField) error

	GetCertificateBySerial(ctx context.Context, serialNumber string) (*models.Certificate, []models.CertificateField, error)
}
