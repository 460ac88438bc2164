// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/StuttgarterDotNet/contextual-encoders/config"
	"github.com/StuttgarterDotNet/contextual-encoders/encoder"
	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
)

var errInvalid = errors.New("encoder document is invalid")

const validateLongDesc string = `Validate an encoder document.

Builds every context, checks trees for a single root, cycles and
unreachable concepts, then constructs the encoder so unknown measures,
gatherers, inverters, aggregators and reducer options are reported.

Example:
  ctxenc validate -c encoder.yaml`

const validateShortDesc string = "Validate an encoder document"

func newValidateCmd(root *rootCommander) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: validateShortDesc,
		Long:  validateLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.OutOrStdout(), root, path)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "Encoder document (YAML)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runValidate(w io.Writer, root *rootCommander, path string) error {
	doc, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading encoder: %w", err)
	}
	contexts, err := doc.BuildContexts()
	if err != nil {
		fmt.Fprintf(w, "  %s %v\n", failMark, err)
		return errInvalid
	}

	names := make([]string, 0, len(contexts))
	for name := range contexts {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := false
	for _, name := range names {
		ctx := contexts[name]
		if t, ok := ctx.(*hierarchy.Tree); ok {
			if err := t.Validate(); err != nil {
				failed = true
				fmt.Fprintf(w, "  %s context %s: %v\n", failMark, name, err)
				continue
			}
		}
		fmt.Fprintf(w, "  %s context %s %s\n", successMark, name,
			dimStyle.Render(fmt.Sprintf("(%s, %d concepts, %d edges)", ctx.Kind(), ctx.ConceptCount(), ctx.EdgeCount())))
	}
	if failed {
		return errInvalid
	}

	cfg, err := doc.EncoderConfig(root.log, nil)
	if err == nil {
		_, err = encoder.New(cfg)
	}
	if err != nil {
		fmt.Fprintf(w, "  %s encoder: %v\n", failMark, err)
		return errInvalid
	}
	fmt.Fprintf(w, "  %s encoder %s\n", successMark,
		dimStyle.Render(fmt.Sprintf("(%d columns)", len(cfg.Columns))))

	return nil
}
