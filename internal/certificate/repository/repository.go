package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/p2ppsr/myac/internal/certificate/model"
	"github.com/p2ppsr/myac/pkg/logger"
)

type CertificateRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrCertificateNotFound = errors.New("certificate not found")
)

func NewCertificateRepository(db *bun.DB, logger logger.Logger) *CertificateRepository {
	return &CertificateRepository{
		db:     db,
		logger: &logger,
	}
}

// CreateSchema creates the three certifier tables if they do not exist.
func (r *CertificateRepository) CreateSchema(ctx context.Context) error {
	tables := []any{
		(*models.User)(nil),
		(*models.Certificate)(nil),
		(*models.CertificateField)(nil),
	}
	for _, t := range tables {
		if _, err := r.db.NewCreateTable().Model(t).IfNotExists().WithForeignKeys().Exec(ctx); err != nil {
			return errors.Wrapf(err, "certRepo.CreateSchema: %T", t)
		}
	}

	// One field row per (certificate, name); enforces the no-duplicate-field
	// invariant at the store level.
	_, err := r.db.NewCreateIndex().
		Model((*models.CertificateField)(nil)).
		Index("certificate_fields_certificate_id_field_name_idx").
		Unique().
		Column("certificate_id", "field_name").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "certRepo.CreateSchema.FieldIndex")
	}
	return nil
}

// UpsertUser returns the userId owning identityKey, creating the row on
// first sight. The insert uses ON CONFLICT DO NOTHING so two concurrent
// racers for the same key converge on one row; the read-back below returns
// the winner's id either way.
func (r *CertificateRepository) UpsertUser(ctx context.Context, identityKey string) (int64, error) {
	user := &models.User{IdentityKey: identityKey}

	_, err := r.db.NewInsert().
		Model(user).
		On("CONFLICT (babbage_identity) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "certRepo.UpsertUser.Insert: ")
	}

	existing := new(models.User)
	err = r.db.NewSelect().Model(existing).Where("babbage_identity = ?", identityKey).Scan(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "certRepo.UpsertUser.Scan: ")
	}
	return existing.UserID, nil
}

// SaveCertificate inserts the certificate row and all its field rows inside
// one transaction. Field rows are stamped with the certificate's ids after
// the parent insert returns them, so a concurrent reader can never observe
// a half-written certificate.
func (r *CertificateRepository) SaveCertificate(ctx context.Context, cert *models.Certificate, fields []models.CertificateField) error {

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {

		_, err := tx.NewInsert().Model(cert).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "certRepo.SaveCertificate.InsertCertificate")
		}

		for i := range fields {
			fields[i].UserID = cert.UserID
			fields[i].CertificateID = cert.CertificateID
		}

		if len(fields) > 0 {
			_, err = tx.NewInsert().Model(&fields).Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "certRepo.SaveCertificate.InsertFields")
			}
		}

		return nil
	})
}

// GetCertificateBySerial fetches one certificate row and its field rows.
func (r *CertificateRepository) GetCertificateBySerial(ctx context.Context, serialNumber string) (*models.Certificate, []models.CertificateField, error) {

	cert := new(models.Certificate)
	err := r.db.NewSelect().Model(cert).Where("serial_number = ?", serialNumber).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrCertificateNotFound
		}
		return nil, nil, errors.Wrap(err, "certRepo.GetCertificateBySerial.Scan: ")
	}

	var fields []models.CertificateField
	err = r.db.NewSelect().
		Model(&fields).
		Where("certificate_id = ?", cert.CertificateID).
		Order("field_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "certRepo.GetCertificateBySerial.Fields: ")
	}

	return cert, fields, nil
}
