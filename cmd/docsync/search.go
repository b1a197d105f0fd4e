package main

import (
	"fmt"

	"github.com/jarlesteinnes/docsync"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalogs.ReadCatalog(deps.Ctx)
	if err != nil {
		if docsync.ErrorCode(err) == docsync.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no catalog found. Run 'docsync catalog' first.\n")
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
		return err
	}

	if err := deps.Search.IndexCatalog(deps.Ctx, catalog); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
		return err
	}

	hits, err := deps.Search.Search(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
		return err
	}

	if len(hits) == 0 {
		fmt.Fprintf(deps.Stdout, "No documents matched %q.\n", c.Query)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents matching %q (%d):\n\n", c.Query, len(hits))
	for i, hit := range hits {
		fmt.Fprintf(deps.Stdout, "  %d. %s (%s)\n     %s\n", i+1, hit.Name, hit.CategoryDisplayName, hit.URL)
	}

	return nil
}
