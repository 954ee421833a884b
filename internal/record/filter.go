package record

// Filters are built as plain maps and handed to the query endpoint as-is.

// TextContains matches pages whose text property contains value.
func TextContains(property, value string) map[string]any {
	return map[string]any{
		"property":  property,
		"rich_text": map[string]any{"contains": value},
	}
}

// TextEquals matches pages whose text property equals value.
func TextEquals(property, value string) map[string]any {
	return map[string]any{
		"property":  property,
		"rich_text": map[string]any{"equals": value},
	}
}

// SelectEquals matches pages whose select property is set to value.
func SelectEquals(property, value string) map[string]any {
	return map[string]any{
		"property": property,
		"select":   map[string]any{"equals": value},
	}
}

// And combines filters, dropping nil ones. It returns nil when nothing is
// left and the single filter when only one is.
func And(filters ...map[string]any) any {
	var kept []any
	for _, f := range filters {
		if f != nil {
			kept = append(kept, f)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return map[string]any{"and": kept}
}
