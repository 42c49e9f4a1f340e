package curriculum

import (
	"embed"
	"io/fs"

	"go.abhg.dev/procnote/internal/must"
)

// DefaultCatalogFile is the name of the catalog inside [DefaultFS].
const DefaultCatalogFile = "catalog.yaml"

//go:embed default
var _defaultFS embed.FS

// DefaultFS returns the file system holding the built-in curriculum.
func DefaultFS() fs.FS {
	fsys, err := fs.Sub(_defaultFS, "default")
	must.NotErrorf(err, "default curriculum")
	return fsys
}

// Default loads the built-in curriculum.
// It panics if the built-in catalog is invalid.
func Default() *Catalog {
	c, err := Load(DefaultFS(), DefaultCatalogFile)
	must.NotErrorf(err, "load built-in catalog")
	return c
}
