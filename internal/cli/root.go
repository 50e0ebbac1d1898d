// Package cli holds the outfitctl commands. They run the recommendation
// engine offline against the embedded catalog or a catalog file.
package cli

import (
	"context"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/yanqian/outfit-genie/internal/domain/outfit"
	"github.com/yanqian/outfit-genie/internal/infra/catalogsource"
)

type options struct {
	catalogPath string
}

// NewRootCommand builds the outfitctl command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "outfitctl",
		Short:         "Offline tools for the OutfitGenie recommendation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "catalog YAML file (default: embedded catalog)")

	root.AddCommand(recommendCmd(opts))
	root.AddCommand(occasionCmd(opts))
	root.AddCommand(catalogCmd(opts))
	return root
}

func (o *options) source() catalogsource.Source {
	if o.catalogPath == "" {
		return catalogsource.EmbeddedSource{}
	}
	return catalogsource.FileSource{Path: o.catalogPath}
}

func (o *options) loadCatalog(ctx context.Context) (*outfit.Catalog, error) {
	return catalogsource.Load(ctx, o.source())
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
