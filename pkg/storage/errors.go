package storage

import "errors"

// ErrNotFound is returned when a requested order or wallet does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConcurrentUpdate is returned when an order write loses the race against
// another writer of the same order. The caller must reload before retrying.
var ErrConcurrentUpdate = errors.New("order modified concurrently")

// ErrVersionConflict is returned when a wallet mutation's expected version no
// longer matches the stored version. The caller must re-read and decide again.
var ErrVersionConflict = errors.New("wallet version conflict")

// ErrInsufficientFunds is returned when a wallet mutation would drive the
// balance or frozen balance negative.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrWalletExists is returned when creating a wallet for a user that already
// has one.
var ErrWalletExists = errors.New("wallet already exists")
