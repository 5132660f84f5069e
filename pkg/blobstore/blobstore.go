// Package blobstore provides content-addressed storage for agent inputs,
// outputs, diffs, and replay bundles. Refs are the sha256 hex digest of
// the content, so identical payloads share one row and writes are
// idempotent.
package blobstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/blob"
)

// ErrNotFound is returned when no blob exists for a ref
var ErrNotFound = errors.New("blob not found")

// Store is the content-addressed blob interface
type Store interface {
	// Put stores the payload and returns its ref. Storing the same bytes
	// twice returns the same ref without a second write.
	Put(ctx context.Context, tenant string, data []byte) (string, error)
	// Get returns the payload for a ref, or ErrNotFound
	Get(ctx context.Context, ref string) ([]byte, error)
	// Exists reports whether a ref is stored
	Exists(ctx context.Context, ref string) (bool, error)
	// Delete removes a blob. Deleting a missing ref is not an error.
	Delete(ctx context.Context, ref string) error
}

// Ref computes the content-addressed ref of a payload without storing it
func Ref(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// EntStore keeps blobs in the metadata database. Payloads here are plans,
// diffs, and eval reports — small enough that colocation with the rows
// referencing them beats a second storage system.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates a database-backed blob store
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// Put stores the payload under its sha256 ref
func (s *EntStore) Put(ctx context.Context, tenant string, data []byte) (string, error) {
	ref := Ref(data)

	err := s.client.Blob.Create().
		SetID(ref).
		SetTenant(tenant).
		SetData(data).
		SetSize(int64(len(data))).
		OnConflictColumns(blob.FieldID).
		DoNothing().
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return "", fmt.Errorf("failed to store blob: %w", err)
	}

	return ref, nil
}

// Get returns the payload for a ref
func (s *EntStore) Get(ctx context.Context, ref string) ([]byte, error) {
	b, err := s.client.Blob.Query().Where(blob.IDEQ(ref)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blob: %w", err)
	}
	return b.Data, nil
}

// Exists reports whether a ref is stored
func (s *EntStore) Exists(ctx context.Context, ref string) (bool, error) {
	exists, err := s.client.Blob.Query().Where(blob.IDEQ(ref)).Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check blob: %w", err)
	}
	return exists, nil
}

// Delete removes a blob by ref
func (s *EntStore) Delete(ctx context.Context, ref string) error {
	_, err := s.client.Blob.Delete().Where(blob.IDEQ(ref)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}
