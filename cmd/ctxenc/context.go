// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/StuttgarterDotNet/contextual-encoders/config"
	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
)

var errNoSuchContext = errors.New("no such context")

const contextShortDesc string = "Inspect and export contexts"

func newContextCmd(root *rootCommander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: contextShortDesc,
	}
	cmd.PersistentFlags().StringP("config", "c", "", "Encoder document (YAML)")
	_ = cmd.MarkPersistentFlagRequired("config")

	cmd.AddCommand(newContextListCmd(), newContextExportCmd(root))

	return cmd
}

func loadContexts(cmd *cobra.Command) (map[string]hierarchy.Context, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	doc, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading encoder: %w", err)
	}

	return doc.BuildContexts()
}

func newContextListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List declared contexts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			contexts, err := loadContexts(cmd)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(contexts))
			for name := range contexts {
				names = append(names, name)
			}
			sort.Strings(names)

			w := cmd.OutOrStdout()
			for _, name := range names {
				ctx := contexts[name]
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", name, ctx.Kind(), ctx.ConceptCount(), ctx.EdgeCount())
			}
			return nil
		},
	}
}

func newContextExportCmd(root *rootCommander) *cobra.Command {
	return &cobra.Command{
		Use:   "export <name> <file>",
		Short: "Export a context as node-link JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			contexts, err := loadContexts(cmd)
			if err != nil {
				return err
			}
			ctx, ok := contexts[args[0]]
			if !ok {
				return fmt.Errorf("%q: %w", args[0], errNoSuchContext)
			}
			if err := hierarchy.ExportFile(ctx, args[1]); err != nil {
				return err
			}
			root.log.Info("context exported", "context", args[0], "file", args[1],
				"concepts", ctx.ConceptCount(), "edges", ctx.EdgeCount())
			return nil
		},
	}
}
