package domain

import "errors"

var (
	// ErrInvalidArgument is returned when a required reference is absent or a value is
	// rejected by the strict validation policy. The operation has no effect.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPersistence wraps I/O failures of the backing stores. In-memory state is retained
	// so the caller can retry the save.
	ErrPersistence = errors.New("persistence failure")

	// ErrCatalogNotLoaded is returned by Inventory.Save after a failed load, so a partial
	// catalog never replaces the stored one.
	ErrCatalogNotLoaded = errors.New("catalog not loaded")

	// ErrCorruptLedger is returned when the bill ledger blob cannot be decoded.
	ErrCorruptLedger = errors.New("corrupt bill ledger")

	ErrBillFinalized    = errors.New("bill is finalized")
	ErrItemNotFound     = errors.New("item not found")
	ErrQuantityRejected = errors.New("quantity rejected")
	ErrEmptyBill        = errors.New("bill has no lines")
	ErrSaleClosed       = errors.New("sale is no longer open")
)
