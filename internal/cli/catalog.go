package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanqian/outfit-genie/internal/infra/catalogsource"
	"github.com/yanqian/outfit-genie/internal/infra/config"
	"github.com/yanqian/outfit-genie/pkg/logger"
)

func catalogCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect, validate and publish outfit catalogs",
	}
	cmd.AddCommand(catalogValidateCmd(opts))
	cmd.AddCommand(catalogExportCmd(opts))
	cmd.AddCommand(catalogPublishCmd())
	return cmd
}

func catalogValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the catalog parses and every record is well formed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := opts.source()
			catalog, err := catalogsource.Load(cmd.Context(), src)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d occasions, %d outfits\n", src.Name(), len(catalog.Occasions()), catalog.Size())
			return err
		},
	}
}

func catalogExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the catalog as normalized YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			data, err := catalogsource.Encode(catalog)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// catalogPublishCmd uploads a catalog file to the object store configured
// under catalog.object.
func catalogPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <file>",
		Short: "Upload a catalog file to the configured object store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New()
			src, err := catalogsource.NewObjectSource(catalogsource.ObjectConfig{
				Endpoint:  cfg.Catalog.Object.Endpoint,
				AccessKey: cfg.Catalog.Object.AccessKey,
				SecretKey: cfg.Catalog.Object.SecretKey,
				Bucket:    cfg.Catalog.Object.Bucket,
				Region:    cfg.Catalog.Object.Region,
				Key:       cfg.Catalog.Object.Key,
			}, log)
			if err != nil {
				return err
			}
			if err := src.Publish(cmd.Context(), data); err != nil {
				log.Error("catalog publish failed", slog.String("target", src.Name()), slog.Any("error", err))
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "published %s to %s\n", args[0], src.Name())
			return err
		},
	}
}
