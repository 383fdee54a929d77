/*
Package testcard procedurally generates a fixed catalogue of grayscale
raster test images and writes them to disk in several encodings.
*/
package testcard

import "log"

// TestCard drives the generation plan and records each emitted file
// in the catalog database.
type TestCard struct {
	// Font optionally points at a TrueType file used for the text
	// label images. When empty the built-in fallback chain applies.
	Font string

	db     *CatalogDB
	logger *log.Logger
}

func New(db *CatalogDB, logger *log.Logger) *TestCard {
	return &TestCard{
		db:     db,
		logger: logger,
	}
}
