package structlog

// Property is a named captured value bound to an event.
type Property struct {
	Name  string
	Value Value
}

// dedupeProperties keeps the first property of each name, preserving order.
func dedupeProperties(props []Property) []Property {
	if len(props) == 0 {
		return nil
	}
	out := make([]Property, 0, len(props))
	seen := make(map[string]struct{}, len(props))
	for _, p := range props {
		if p.Name == "" {
			continue
		}
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		out = append(out, p)
	}
	return out
}
