package soso

import "reflect"

// DeleteNull returns nil for values that carry no information: nil, "",
// empty lists and empty objects. Lists and objects are cleaned
// recursively, so an object whose every field is empty is itself absent.
// Booleans and numbers are returned unchanged.
func DeleteNull(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if t == "" {
			return nil
		}
		return t
	case []string:
		kept := make([]string, 0, len(t))
		for _, s := range t {
			if s != "" {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			return nil
		}
		return kept
	case []any:
		kept := make([]any, 0, len(t))
		for _, item := range t {
			if c := DeleteNull(item); c != nil {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			return nil
		}
		return kept
	case map[string]any:
		kept := make(map[string]any, len(t))
		for k, item := range t {
			if c := DeleteNull(item); c != nil {
				kept[k] = c
			}
		}
		if len(kept) == 0 {
			return nil
		}
		return kept
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.IsNil() || rv.Len() == 0 {
			return nil
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
	}
	return v
}
