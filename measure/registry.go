// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"

	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
)

// Registry names.
const (
	NameWuPalmer   = "wu_palmer"
	NamePathLength = "path_length"
)

// New builds the measure registered under name for ctx.
//
//	"wu_palmer", "wup"    → NewWuPalmer (ctx must be *hierarchy.Tree)
//	"path_length", "path" → NewPathLength
//
// Errors: ErrUnknownVariant, ErrContextType, plus constructor errors.
func New(name string, ctx hierarchy.Context, opts ...Option) (Measure, error) {
	switch name {
	case NameWuPalmer, "wup":
		tree, ok := ctx.(*hierarchy.Tree)
		if !ok {
			return nil, fmt.Errorf("measure %q needs a tree context, got %T: %w", name, ctx, ErrContextType)
		}
		return NewWuPalmer(tree, opts...)
	case NamePathLength, "path":
		return NewPathLength(ctx, opts...)
	default:
		return nil, fmt.Errorf("measure %q: %w", name, ErrUnknownVariant)
	}
}

// Names lists the canonical registry names.
func Names() []string {
	return []string{NameWuPalmer, NamePathLength}
}
