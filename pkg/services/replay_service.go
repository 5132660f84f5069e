package services

import (
	"context"
	"fmt"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/replaybundle"
	"github.com/google/uuid"
)

// ReplayService persists replay bundle references. Bundle bytes live in
// the blob store; this service records the hash and ref written once at
// terminal failure.
type ReplayService struct {
	client *ent.Client
}

// NewReplayService creates a new ReplayService
func NewReplayService(client *ent.Client) *ReplayService {
	return &ReplayService{client: client}
}

// Create records a run's replay bundle reference. One bundle per run;
// a duplicate write returns ErrAlreadyExists.
func (s *ReplayService) Create(ctx context.Context, tenant, runID, bundleHash, storageRef string) (*ent.ReplayBundle, error) {
	if runID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if bundleHash == "" {
		return nil, NewValidationError("bundle_hash", "required")
	}

	bundle, err := s.client.ReplayBundle.Create().
		SetID(uuid.New().String()).
		SetTenant(tenant).
		SetRunID(runID).
		SetBundleHash(bundleHash).
		SetStorageRef(storageRef).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create replay bundle: %w", err)
	}
	return bundle, nil
}

// GetByRun returns the replay bundle of a run, or ErrNotFound
func (s *ReplayService) GetByRun(ctx context.Context, runID string) (*ent.ReplayBundle, error) {
	bundle, err := s.client.ReplayBundle.Query().
		Where(replaybundle.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get replay bundle: %w", err)
	}
	return bundle, nil
}

// MarkReplayed records the outcome of a deterministic re-run of the bundle
func (s *ReplayService) MarkReplayed(ctx context.Context, runID string, ok bool) error {
	n, err := s.client.ReplayBundle.Update().
		Where(replaybundle.RunIDEQ(runID)).
		SetReplayedOk(ok).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark replay outcome: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
