package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/outfit-genie/internal/domain/outfit"
)

func occasionCmd(opts *options) *cobra.Command {
	var (
		style  string
		colors []string
	)
	cmd := &cobra.Command{
		Use:   "occasion <name>",
		Short: "List the catalog outfits for an occasion without scoring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(args[0]) == "" {
				return errors.New(outfit.MsgOccasionRequired)
			}
			catalog, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			match := catalog.LookupByOccasion(args[0], style, colors)
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"occasion":        args[0],
				"bucket":          match.Bucket,
				"colorMatched":    match.ColorMatched,
				"recommendations": match.Outfits,
			})
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "style label applied to every result")
	cmd.Flags().StringSliceVar(&colors, "color", nil, "keep outfits sharing one of these colors (repeatable)")
	return cmd
}
