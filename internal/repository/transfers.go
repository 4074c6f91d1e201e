package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// PostgresTransferRepository stores asset transfer requests.
type PostgresTransferRepository struct {
	DB *sql.DB
}

// NewPostgresTransferRepository creates a new PostgresTransferRepository.
func NewPostgresTransferRepository(db *sql.DB) *PostgresTransferRepository {
	return &PostgresTransferRepository{DB: db}
}

const transferSelect = `SELECT t.id, t.reference, t.asset_id, COALESCE(a.name, ''), t.from_branch_id, t.to_branch_id,
	t.requested_by, t.status, t.reason, t.note, t.requested_at, t.updated_at
	FROM asset_transfers t LEFT JOIN assets a ON a.id = t.asset_id`

var transferSortColumns = map[string]string{
	"id":          "t.id",
	"reference":   "t.reference",
	"status":      "t.status",
	"requestedAt": "t.requested_at",
	"updatedAt":   "t.updated_at",
}

func scanTransfer(row interface{ Scan(...any) error }) (*models.Transfer, error) {
	var (
		t           models.Transfer
		requestedBy sql.NullInt64
	)
	err := row.Scan(&t.ID, &t.Reference, &t.AssetID, &t.AssetName, &t.FromBranchID, &t.ToBranchID,
		&requestedBy, &t.Status, &t.Reason, &t.Note, &t.RequestedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.RequestedBy = requestedBy.Int64
	return &t, nil
}

// NewReference returns a short human-readable transfer reference.
func NewReference() string {
	return "TRF-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// ListTransfers returns one page of transfers and the total count. Status may
// hold several comma-separated values. BranchID matches either end of the
// transfer.
func (r *PostgresTransferRepository) ListTransfers(ctx context.Context, p models.ListParams) ([]models.Transfer, int64, error) {
	var w whereBuilder
	if p.Search != "" {
		w.add("(t.reference ILIKE $%[1]d OR a.name ILIKE $%[1]d)", "%"+p.Search+"%")
	}
	if p.Status != "" {
		w.add("t.status = ANY($%d)", pq.Array(strings.Split(p.Status, ",")))
	}
	if p.BranchID > 0 {
		w.add("(t.from_branch_id = $%[1]d OR t.to_branch_id = $%[1]d)", p.BranchID)
	}
	if !p.DateFrom.IsZero() {
		w.add("t.requested_at >= $%d", p.DateFrom)
	}
	if !p.DateTo.IsZero() {
		w.add("t.requested_at < $%d", p.DateTo.AddDate(0, 0, 1))
	}

	var total int64
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM asset_transfers t LEFT JOIN assets a ON a.id = t.asset_id`+w.sql(), w.args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("ListTransfers count: %w", err)
	}

	limit, args := w.page(p)
	rows, err := r.DB.QueryContext(ctx,
		transferSelect+w.sql()+orderBy(p.Sort, transferSortColumns, "t.requested_at DESC")+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListTransfers: %w", err)
	}
	defer rows.Close()

	transfers := []models.Transfer{}
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan: %w", err)
		}
		transfers = append(transfers, *t)
	}
	return transfers, total, rows.Err()
}

func (r *PostgresTransferRepository) GetTransfer(ctx context.Context, id int64) (*models.Transfer, error) {
	t, err := scanTransfer(r.DB.QueryRowContext(ctx, transferSelect+` WHERE t.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetTransfer: %w", err)
	}
	return t, nil
}

// CreateTransfer marks the asset IN_TRANSFER and inserts a PENDING transfer
// in one transaction. ErrConflict is returned when the asset is no longer
// ACTIVE, so at most one open transfer exists per asset.
func (r *PostgresTransferRepository) CreateTransfer(ctx context.Context, t models.Transfer) (*models.Transfer, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// The asset row is claimed before the insert.
	res, err := tx.ExecContext(ctx, `
		UPDATE assets SET status = $2 WHERE id = $1 AND status = $3 AND deleted_at IS NULL
	`, t.AssetID, string(models.AssetTransferred), string(models.AssetActive))
	if err != nil {
		return nil, fmt.Errorf("mark asset: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrConflict
	}

	t.Status = models.TransferPending
	if t.Reference == "" {
		t.Reference = NewReference()
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO asset_transfers (reference, asset_id, from_branch_id, to_branch_id, requested_by, status, reason, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, '') RETURNING id, requested_at, updated_at
	`, t.Reference, t.AssetID, t.FromBranchID, t.ToBranchID, sql.NullInt64{Int64: t.RequestedBy, Valid: t.RequestedBy > 0}, string(t.Status), t.Reason,
	).Scan(&t.ID, &t.RequestedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("CreateTransfer: %w", classify(err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &t, nil
}

// UpdateTransferStatus moves a transfer from one status to the next. The
// update only applies while the row is still in status from; otherwise
// ErrConflict is returned. Completing a transfer moves the asset to the
// destination branch; rejecting or cancelling releases it.
func (r *PostgresTransferRepository) UpdateTransferStatus(ctx context.Context, id int64, from, to models.TransferStatus, note string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var assetID, toBranch int64
	err = tx.QueryRowContext(ctx, `
		UPDATE asset_transfers SET status = $3, note = $4, updated_at = now()
		WHERE id = $1 AND status = $2 RETURNING asset_id, to_branch_id
	`, id, string(from), string(to), note).Scan(&assetID, &toBranch)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("UpdateTransferStatus: %w", err)
	}

	switch to {
	case models.TransferCompleted:
		_, err = tx.ExecContext(ctx,
			`UPDATE assets SET branch_id = $2, status = $3 WHERE id = $1`,
			assetID, toBranch, string(models.AssetActive))
	case models.TransferRejected, models.TransferCancelled:
		_, err = tx.ExecContext(ctx,
			`UPDATE assets SET status = $2 WHERE id = $1`,
			assetID, string(models.AssetActive))
	}
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
