package resolver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/confmerge/internal/ctxlog"
	"github.com/vk/confmerge/internal/source"
	"github.com/vk/confmerge/internal/value"
)

// IncludeKey is the reserved object key that marks an include directive.
const IncludeKey = "$include"

// MaxIncludeDepth is the number of include hops allowed below the root
// document. A chain of exactly this many nested includes resolves; one more
// fails.
const MaxIncludeDepth = 10

// frame is the per-recursion resolution context: the document currently
// being expanded, the ordered chain of documents opened so far (root
// first), and the include depth below the root.
type frame struct {
	path  string
	chain []string
	depth int
}

// push returns a copy of the frame extended by one include hop. The chain
// is cloned so sibling branches of the walk never share backing storage.
func (f frame) push(path string) frame {
	chain := make([]string, len(f.chain), len(f.chain)+1)
	copy(chain, f.chain)
	return frame{path: path, chain: append(chain, path), depth: f.depth + 1}
}

func (f frame) inChain(path string) bool {
	for _, p := range f.chain {
		if p == path {
			return true
		}
	}
	return false
}

// ResolveIncludes expands every $include directive reachable from root and
// returns the fully resolved tree. rootPath is the absolute path of the
// document root was parsed from; it anchors relative include paths and is
// the first entry of the cycle-detection chain. The root value itself is
// supplied already parsed and is not read through the reader.
//
// The walk is synchronous and depth-first; the first failure aborts the
// whole resolution with a *ConfigIncludeError or *CircularIncludeError.
func ResolveIncludes(ctx context.Context, root value.Value, rootPath string, reader source.Reader) (value.Value, error) {
	return resolveValue(ctx, root, reader, frame{path: rootPath, chain: []string{rootPath}})
}

// resolveValue dispatches on the value's kind. Primitives pass through
// unchanged; arrays and objects are rebuilt with every element resolved in
// order; objects carrying an include directive go through expandInclude.
func resolveValue(ctx context.Context, v value.Value, reader source.Reader, fr frame) (value.Value, error) {
	switch t := v.(type) {
	case value.Array:
		out := make(value.Array, 0, len(t))
		for _, elem := range t {
			resolved, err := resolveValue(ctx, elem, reader, fr)
			if err != nil {
				return nil, err
			}
			out = append(out, resolved)
		}
		return out, nil

	case *value.Object:
		if t.Has(IncludeKey) {
			return expandInclude(ctx, t, reader, fr)
		}
		out := value.NewObject()
		for _, k := range t.Keys() {
			child, _ := t.Get(k)
			resolved, err := resolveValue(ctx, child, reader, fr)
			if err != nil {
				return nil, err
			}
			out.Set(k, resolved)
		}
		return out, nil

	default:
		return v, nil
	}
}

// expandInclude replaces an object carrying an include directive with the
// merged content of its targets, then applies any sibling keys on top.
func expandInclude(ctx context.Context, obj *value.Object, reader source.Reader, fr frame) (value.Value, error) {
	log := ctxlog.FromContext(ctx)

	directive, _ := obj.Get(IncludeKey)
	paths, err := directivePaths(directive)
	if err != nil {
		return nil, err
	}

	// Fold the targets in listed order; each successive file merges onto
	// the running result as the override.
	var acc value.Value
	for _, p := range paths {
		abs := resolveIncludePath(p, fr.path)

		if fr.inChain(abs) {
			chain := make([]string, len(fr.chain), len(fr.chain)+1)
			copy(chain, fr.chain)
			return nil, &CircularIncludeError{Chain: append(chain, abs)}
		}
		if fr.depth+1 > MaxIncludeDepth {
			return nil, includeErrorf("Maximum include depth (%d) exceeded at %s", MaxIncludeDepth, abs)
		}

		log.Debug("Expanding include.", "path", abs, "depth", fr.depth+1)

		raw, err := reader.ReadFile(ctx, abs)
		if err != nil {
			return nil, &ConfigIncludeError{Message: fmt.Sprintf("Failed to read include file: %s", abs), Err: err}
		}
		parsed, err := reader.Parse(ctx, abs, raw)
		if err != nil {
			return nil, &ConfigIncludeError{Message: fmt.Sprintf("Failed to parse include file: %s", abs), Err: err}
		}
		resolved, err := resolveValue(ctx, parsed, reader, fr.push(abs))
		if err != nil {
			return nil, err
		}

		if acc == nil {
			acc = resolved
			continue
		}
		if acc.Kind() != resolved.Kind() {
			return nil, includeErrorf(
				"include files resolve to mismatched types: %s resolved to %s, earlier includes resolved to %s",
				abs, resolved.Kind(), acc.Kind())
		}
		acc = Merge(acc, resolved)
	}
	if acc == nil {
		// An empty directive list substitutes an empty object.
		acc = value.NewObject()
	}

	siblings := make([]string, 0, obj.Len())
	for _, k := range obj.Keys() {
		if k != IncludeKey {
			siblings = append(siblings, k)
		}
	}
	if len(siblings) == 0 {
		return acc, nil
	}

	accObj, ok := acc.(*value.Object)
	if !ok {
		return nil, includeErrorf("Sibling keys require included content to be an object, got %s", acc.Kind())
	}
	sib := value.NewObject()
	for _, k := range siblings {
		child, _ := obj.Get(k)
		resolved, err := resolveValue(ctx, child, reader, fr)
		if err != nil {
			return nil, err
		}
		sib.Set(k, resolved)
	}
	// Included content is the base; siblings override it.
	return Merge(accObj, sib), nil
}

// directivePaths validates the directive's shape and normalizes it to an
// ordered list of path strings.
func directivePaths(directive value.Value) ([]string, error) {
	switch d := directive.(type) {
	case value.String:
		return []string{string(d)}, nil
	case value.Array:
		paths := make([]string, 0, len(d))
		for _, elem := range d {
			s, ok := elem.(value.String)
			if !ok {
				return nil, includeErrorf("invalid $include entry: expected string, got %s", typeofName(elem))
			}
			paths = append(paths, string(s))
		}
		return paths, nil
	default:
		return nil, includeErrorf("invalid $include directive: expected string or array, got %s", typeofName(directive))
	}
}

// resolveIncludePath turns an include path into an absolute path. Absolute
// candidates are used verbatim; relative ones resolve against the directory
// of the including document. Both branches clean the result, so two
// spellings of the same target compare equal in the chain.
func resolveIncludePath(candidate, documentPath string) string {
	if filepath.IsAbs(candidate) {
		return filepath.Clean(candidate)
	}
	return filepath.Join(filepath.Dir(documentPath), candidate)
}

// typeofName reports a value's type in the directive grammar's vocabulary,
// where null and every composite read as "object".
func typeofName(v value.Value) string {
	switch v.Kind() {
	case value.KindBool:
		return "boolean"
	case value.KindNumber:
		return "number"
	case value.KindString:
		return "string"
	default:
		return "object"
	}
}
