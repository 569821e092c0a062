package main

import "errors"

var (
	// ErrInvalidConfiguration reports digit counts, bounds, selectors or grid
	// dimensions that cannot produce a worksheet.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrPageFull is returned when a page already holds rows × cols cells.
	ErrPageFull = errors.New("page is full")
	// ErrNotFound is returned by stores for unknown worksheet IDs.
	ErrNotFound = errors.New("worksheet not found")
)
