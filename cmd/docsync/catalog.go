package main

import (
	"encoding/json"
	"fmt"

	"github.com/jarlesteinnes/docsync"
)

// Run executes the catalog command.
func (c *CatalogCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Syncer.BuildCatalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
		return err
	}

	if c.Stdout {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(catalog); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
			return err
		}
		return nil
	}

	if err := deps.Catalogs.WriteCatalog(deps.Ctx, catalog); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s (%d documents)\n",
		deps.Config.CatalogPath, catalog.Statistics.TotalDocuments)
	return nil
}
