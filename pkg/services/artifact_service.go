package services

import (
	"context"
	"fmt"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/pkg/blobstore"
	"github.com/google/uuid"
)

// ArtifactService records immutable run artifacts. Bytes live in the blob
// store; the artifact row carries the content-addressed reference.
type ArtifactService struct {
	client *ent.Client
	blobs  blobstore.Store
}

// NewArtifactService creates a new ArtifactService
func NewArtifactService(client *ent.Client, blobs blobstore.Store) *ArtifactService {
	return &ArtifactService{client: client, blobs: blobs}
}

// StoreArtifact writes the payload to the blob store and records the
// artifact row pointing at it
func (s *ArtifactService) StoreArtifact(ctx context.Context, tenant, runID string, iteration int, kind artifact.Kind, payload []byte) (*ent.Artifact, error) {
	if runID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	ref, err := s.blobs.Put(ctx, tenant, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to store artifact payload: %w", err)
	}

	a, err := s.client.Artifact.Create().
		SetID(uuid.New().String()).
		SetTenant(tenant).
		SetRunID(runID).
		SetIteration(iteration).
		SetKind(kind).
		SetStorageRef(ref).
		SetSha256(ref).
		SetBytes(int64(len(payload))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record artifact: %w", err)
	}
	return a, nil
}

// GetArtifact retrieves an artifact row by ID
func (s *ArtifactService) GetArtifact(ctx context.Context, artifactID string) (*ent.Artifact, error) {
	a, err := s.client.Artifact.Query().Where(artifact.IDEQ(artifactID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}
	return a, nil
}

// LoadPayload reads the artifact bytes back from the blob store
func (s *ArtifactService) LoadPayload(ctx context.Context, a *ent.Artifact) ([]byte, error) {
	data, err := s.blobs.Get(ctx, a.StorageRef)
	if err != nil {
		return nil, fmt.Errorf("failed to load artifact payload: %w", err)
	}
	return data, nil
}

// ListByRun returns artifacts of a run, optionally filtered by kind,
// oldest first
func (s *ArtifactService) ListByRun(ctx context.Context, runID string, kind *artifact.Kind) ([]*ent.Artifact, error) {
	query := s.client.Artifact.Query().Where(artifact.RunIDEQ(runID))
	if kind != nil {
		query = query.Where(artifact.KindEQ(*kind))
	}

	artifacts, err := query.Order(ent.Asc(artifact.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return artifacts, nil
}

// Latest returns the newest artifact of a kind for a run, or ErrNotFound
func (s *ArtifactService) Latest(ctx context.Context, runID string, kind artifact.Kind) (*ent.Artifact, error) {
	a, err := s.client.Artifact.Query().
		Where(artifact.RunIDEQ(runID), artifact.KindEQ(kind)).
		Order(ent.Desc(artifact.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest artifact: %w", err)
	}
	return a, nil
}

// LatestForIteration returns the newest artifact of a kind within one
// iteration. Rollback restores the plan/diff of the last green iteration
// through this.
func (s *ArtifactService) LatestForIteration(ctx context.Context, runID string, iteration int, kind artifact.Kind) (*ent.Artifact, error) {
	a, err := s.client.Artifact.Query().
		Where(
			artifact.RunIDEQ(runID),
			artifact.IterationEQ(iteration),
			artifact.KindEQ(kind),
		).
		Order(ent.Desc(artifact.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get iteration artifact: %w", err)
	}
	return a, nil
}
