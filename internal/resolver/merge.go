package resolver

import "github.com/vk/confmerge/internal/value"

// Merge deep-merges override onto base and returns a new value; neither
// operand is modified. A nil override means "absent" and yields base
// unchanged (distinct from value.Null, which is a real null that replaces
// base). The rules:
//
//   - object + object: key union; shared keys merge recursively; key order
//     is base's order followed by override-only keys in override's order.
//   - array + array: base's elements followed by override's.
//   - anything else: override replaces base.
//
// Merge is total; it never fails.
func Merge(base, override value.Value) value.Value {
	if override == nil {
		return base
	}

	if baseObj, ok := base.(*value.Object); ok {
		if overObj, ok := override.(*value.Object); ok {
			return mergeObjects(baseObj, overObj)
		}
	}

	if baseArr, ok := base.(value.Array); ok {
		if overArr, ok := override.(value.Array); ok {
			out := make(value.Array, 0, len(baseArr)+len(overArr))
			out = append(out, baseArr...)
			out = append(out, overArr...)
			return out
		}
	}

	return override
}

func mergeObjects(base, override *value.Object) *value.Object {
	out := value.NewObject()
	for _, k := range base.Keys() {
		bv, _ := base.Get(k)
		if ov, ok := override.Get(k); ok {
			out.Set(k, Merge(bv, ov))
		} else {
			out.Set(k, bv)
		}
	}
	for _, k := range override.Keys() {
		if !base.Has(k) {
			ov, _ := override.Get(k)
			out.Set(k, ov)
		}
	}
	return out
}
