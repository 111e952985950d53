// Package storagetest provides a configurable in-memory implementation of the
// storage interfaces for unit tests. Each method delegates to an optional
// function field; unset fields return zero values.
package storagetest

import (
	"adminops/pkg/domain"
	"adminops/pkg/storage"
	"context"

	"github.com/riverqueue/river"
)

// Fake implements storage.Storage by delegating to its function fields.
type Fake struct {
	AdminsFn                    func(ctx context.Context) ([]domain.AdminRecord, error)
	AdminByIDFn                 func(ctx context.Context, id domain.AdminID) (*domain.AdminRecord, error)
	StoreUsersFn                func(ctx context.Context, users ...domain.UserAccount) ([]domain.UserAccount, error)
	UserByIDFn                  func(ctx context.Context, id domain.UserID) (*domain.UserAccount, error)
	DeleteUserFn                func(ctx context.Context, id domain.UserID) error
	StoreScanRequestsFn         func(ctx context.Context, requests ...domain.ScanRequest) ([]domain.ScanRequest, error)
	PendingScanRequestsByUserFn func(ctx context.Context, userID domain.UserID) ([]domain.ScanRequest, error)
	DeleteScanRequestFn         func(ctx context.Context, id domain.ScanRequestID) error
	AddJobFn                    func(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
	WithTxFn                    func(ctx context.Context, cb func(storage storage.AllStorage) error) error
}

func (f *Fake) Admins(ctx context.Context) ([]domain.AdminRecord, error) {
	if f.AdminsFn == nil {
		return nil, nil
	}

	return f.AdminsFn(ctx)
}

func (f *Fake) AdminByID(ctx context.Context, id domain.AdminID) (*domain.AdminRecord, error) {
	if f.AdminByIDFn == nil {
		return nil, nil
	}

	return f.AdminByIDFn(ctx, id)
}

func (f *Fake) StoreUsers(ctx context.Context, users ...domain.UserAccount) ([]domain.UserAccount, error) {
	if f.StoreUsersFn == nil {
		return users, nil
	}

	return f.StoreUsersFn(ctx, users...)
}

func (f *Fake) UserByID(ctx context.Context, id domain.UserID) (*domain.UserAccount, error) {
	if f.UserByIDFn == nil {
		return nil, nil
	}

	return f.UserByIDFn(ctx, id)
}

func (f *Fake) DeleteUser(ctx context.Context, id domain.UserID) error {
	if f.DeleteUserFn == nil {
		return nil
	}

	return f.DeleteUserFn(ctx, id)
}

func (f *Fake) StoreScanRequests(ctx context.Context, requests ...domain.ScanRequest) ([]domain.ScanRequest, error) {
	if f.StoreScanRequestsFn == nil {
		return requests, nil
	}

	return f.StoreScanRequestsFn(ctx, requests...)
}

func (f *Fake) PendingScanRequestsByUser(ctx context.Context, userID domain.UserID) ([]domain.ScanRequest, error) {
	if f.PendingScanRequestsByUserFn == nil {
		return nil, nil
	}

	return f.PendingScanRequestsByUserFn(ctx, userID)
}

func (f *Fake) DeleteScanRequest(ctx context.Context, id domain.ScanRequestID) error {
	if f.DeleteScanRequestFn == nil {
		return nil
	}

	return f.DeleteScanRequestFn(ctx, id)
}

func (f *Fake) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if f.AddJobFn == nil {
		return true, nil
	}

	return f.AddJobFn(ctx, args, opts)
}

func (f *Fake) Close() error { return nil }

// Begin returns a transactional view backed by the same function fields.
func (f *Fake) Begin(ctx context.Context) (storage.TxStorage, error) {
	return &txFake{Fake: f}, nil
}

// WithTx runs the callback against the fake itself unless WithTxFn overrides
// the behavior. There is no rollback; tests assert on the recorded calls.
func (f *Fake) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	if f.WithTxFn != nil {
		return f.WithTxFn(ctx, cb)
	}

	return cb(f)
}

type txFake struct {
	*Fake
}

func (t *txFake) Commit() error   { return nil }
func (t *txFake) Rollback() error { return nil }

// Ensure the fakes satisfy the storage interfaces at compile time.
var (
	_ storage.Storage   = (*Fake)(nil)
	_ storage.TxStorage = (*txFake)(nil)
)
