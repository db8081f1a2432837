package structlog

// Dump writes v destructured at Debug level. Structs, maps and slices are
// captured recursively up to the service's depth limit.
func (s *Service) Dump(v any) {
	s.Write(LevelDebug, nil, "Dump {@Value}", v)
}
