// internal/scheme/catalog.go
package scheme

import (
	"encoding/json"
	"os"
	"sync"

	stderrors "loksarthi/internal/common/errors"
	"loksarthi/internal/common/validation"
	"loksarthi/internal/models"
)

// Catalog is the immutable scheme list shared by all matching calls. It is
// built once, validated, and read-only afterwards, so concurrent readers
// need no locking.
type Catalog struct {
	schemes []models.Scheme
}

// NewCatalog wraps an already-decoded scheme list.
func NewCatalog(schemes []models.Scheme) *Catalog {
	return &Catalog{schemes: schemes}
}

// LoadCatalog reads, schema-validates and decodes the catalog file. Any
// failure here is a fatal configuration error: the process must not serve
// matching requests with a missing or malformed catalog.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, stderrors.NewCatalogLoadFailedError(path, err)
	}

	if err := validation.ValidateCatalog(raw); err != nil {
		return nil, stderrors.NewCatalogValidationFailedError(err.Error())
	}

	var schemes []models.Scheme
	if err := json.Unmarshal(raw, &schemes); err != nil {
		return nil, stderrors.NewCatalogLoadFailedError(path, err)
	}

	return &Catalog{schemes: schemes}, nil
}

// Schemes returns the catalog contents in load order. Callers must treat the
// slice as read-only.
func (c *Catalog) Schemes() []models.Scheme {
	return c.schemes
}

func (c *Catalog) Len() int {
	return len(c.schemes)
}

var (
	sharedOnce    sync.Once
	sharedCatalog *Catalog
	sharedErr     error
)

// SharedCatalog lazily loads a process-wide catalog exactly once. Concurrent
// first callers block on the same load and observe the same immutable result.
func SharedCatalog(path string) (*Catalog, error) {
	sharedOnce.Do(func() {
		sharedCatalog, sharedErr = LoadCatalog(path)
	})
	return sharedCatalog, sharedErr
}
