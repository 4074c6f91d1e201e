package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
	"github.com/Kurniawan20/effiework-sub000/internal/repository"
)

// TransferRepository defines transfer persistence.
type TransferRepository interface {
	ListTransfers(ctx context.Context, p models.ListParams) ([]models.Transfer, int64, error)
	GetTransfer(ctx context.Context, id int64) (*models.Transfer, error)
	CreateTransfer(ctx context.Context, t models.Transfer) (*models.Transfer, error)
	UpdateTransferStatus(ctx context.Context, id int64, from, to models.TransferStatus, note string) error
}

// AssetGetter looks up the asset being transferred.
type AssetGetter interface {
	GetAsset(ctx context.Context, id int64) (*models.Asset, error)
}

// TransferService runs the transfer workflow:
//
//	PENDING  -> APPROVED | REJECTED | CANCELLED
//	APPROVED -> COMPLETED | CANCELLED
type TransferService struct {
	repo   TransferRepository
	assets AssetGetter
	log    *zap.Logger
}

func NewTransferService(repo TransferRepository, assets AssetGetter, log *zap.Logger) *TransferService {
	return &TransferService{repo: repo, assets: assets, log: log}
}

func (s *TransferService) List(ctx context.Context, p models.ListParams) (models.Page[models.Transfer], error) {
	transfers, total, err := s.repo.ListTransfers(ctx, p)
	if err != nil {
		return models.Page[models.Transfer]{}, err
	}
	return models.Page[models.Transfer]{Content: transfers, TotalElements: total}, nil
}

func (s *TransferService) Get(ctx context.Context, id int64) (*models.Transfer, error) {
	return s.repo.GetTransfer(ctx, id)
}

// Create opens a PENDING transfer of an active asset to another branch.
func (s *TransferService) Create(ctx context.Context, userID int64, req models.TransferRequest) (*models.Transfer, error) {
	if req.AssetID <= 0 || req.ToBranchID <= 0 {
		return nil, fmt.Errorf("%w: asset and destination branch are required", ErrInvalidInput)
	}

	asset, err := s.assets.GetAsset(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.BranchID == nil {
		return nil, fmt.Errorf("%w: asset has no branch", ErrInvalidInput)
	}
	if *asset.BranchID == req.ToBranchID {
		return nil, fmt.Errorf("%w: asset is already at branch %d", ErrInvalidInput, req.ToBranchID)
	}
	if asset.Status != models.AssetActive {
		return nil, fmt.Errorf("%w: status %s", ErrAssetUnavailable, asset.Status)
	}

	t, err := s.repo.CreateTransfer(ctx, models.Transfer{
		AssetID:      asset.ID,
		AssetName:    asset.Name,
		FromBranchID: *asset.BranchID,
		ToBranchID:   req.ToBranchID,
		RequestedBy:  userID,
		Reason:       req.Reason,
	})
	if errors.Is(err, repository.ErrConflict) {
		return nil, fmt.Errorf("%w: asset was claimed by another transfer", ErrAssetUnavailable)
	}
	if err != nil {
		return nil, err
	}
	s.log.Info("transfer requested",
		zap.String("reference", t.Reference), zap.Int64("asset", t.AssetID), zap.Int64("to_branch", t.ToBranchID))
	return t, nil
}

// UpdateStatus moves transfer id to upd.Status. Transitions outside the
// workflow, and transitions racing with another update, return
// ErrInvalidTransition.
func (s *TransferService) UpdateStatus(ctx context.Context, id int64, upd models.TransferStatusUpdate) (*models.Transfer, error) {
	if !upd.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown transfer status %q", ErrInvalidInput, upd.Status)
	}

	current, err := s.repo.GetTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(upd.Status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current.Status, upd.Status)
	}

	err = s.repo.UpdateTransferStatus(ctx, id, current.Status, upd.Status, upd.Note)
	if errors.Is(err, repository.ErrConflict) {
		return nil, fmt.Errorf("%w: transfer changed concurrently", ErrInvalidTransition)
	}
	if err != nil {
		return nil, err
	}
	s.log.Info("transfer status changed",
		zap.Int64("id", id), zap.String("from", string(current.Status)), zap.String("to", string(upd.Status)))
	return s.repo.GetTransfer(ctx, id)
}
