package valida

import (
	"reflect"
	"sort"
)

// Kind is the structural category of a subject value. It is determined
// from the value itself at validation time, never declared by a wrapper.
type Kind string

const (
	KindInvalid Kind = ""
	KindNull    Kind = "null"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindString  Kind = "string"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// KindOf determines the structural kind of v. All Go numeric types count
// as numbers; any slice or array counts as an array; any string-keyed map
// counts as an object. Values outside the domain yield KindInvalid.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
	}

	return KindInvalid
}

// asNumber converts any Go numeric value to float64.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// asArray returns the elements of an array-kinded value as []any.
func asArray(v any) []any {
	if items, ok := v.([]any); ok {
		return items
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

// asObject returns the entries of an object-kinded value as map[string]any.
func asObject(v any) map[string]any {
	if entries, ok := v.(map[string]any); ok {
		return entries
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	entries := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries[iter.Key().String()] = iter.Value().Interface()
	}
	return entries
}

// sortedKeys returns the keys of m in sorted order. Go map iteration is
// randomized; every place that walks object keys goes through this so
// repeated validations attribute errors identically.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DeepEqual reports whether two subject values are structurally equal:
// their kinds match and their content matches recursively. Object key
// order is irrelevant, array order is significant, and numbers compare
// by numeric value regardless of the Go type carrying them.
func DeepEqual(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}

	switch ka {
	case KindNull:
		return true
	case KindBoolean:
		return a.(bool) == b.(bool)
	case KindNumber:
		na, _ := asNumber(a)
		nb, _ := asNumber(b)
		return na == nb
	case KindString:
		return a.(string) == b.(string)
	case KindArray:
		ia, ib := asArray(a), asArray(b)
		if len(ia) != len(ib) {
			return false
		}
		for i := range ia {
			if !DeepEqual(ia[i], ib[i]) {
				return false
			}
		}
		return true
	case KindObject:
		oa, ob := asObject(a), asObject(b)
		if len(oa) != len(ob) {
			return false
		}
		for k, va := range oa {
			vb, ok := ob[k]
			if !ok || !DeepEqual(va, vb) {
				return false
			}
		}
		return true
	}

	return false
}
