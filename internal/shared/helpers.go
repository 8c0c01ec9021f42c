// Package shared provides common utility functions used across multiple
// packages in the tabnav codebase.
package shared

// CloneParams returns a shallow copy of a params map.  Nil stays nil so that
// "no params" round-trips without allocating.
func CloneParams(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}

// MergeParams overlays override onto base without mutating either input.
// Keys in override win.  Returns nil when both inputs are empty.
func MergeParams(base map[string]any, override map[string]any) map[string]any {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
