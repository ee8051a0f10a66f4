package document

// Sanitize drops nil values from m, recursing into nested maps and slices. Some
// document stores reject explicit null/undefined fields on write.
func Sanitize(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		out[k] = sanitizeValue(v)
	}
	return out
}

func sanitizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Sanitize(t)
	case []any:
		out := make([]any, 0, len(t))
		for _, e := range t {
			if e == nil {
				continue
			}
			out = append(out, sanitizeValue(e))
		}
		return out
	default:
		return v
	}
}
