package engine

// Stats computes summary figures for the log.
func (l *Log) Stats() Stats {
	seen := make(map[string]struct{})
	l.Each(func(_ int, v string) bool {
		seen[v] = struct{}{}
		return true
	})

	return Stats{
		Entries:      l.Len(),
		Distinct:     len(seen),
		PayloadBytes: l.col.PayloadBytes(),
		MemoryBytes:  l.col.Bytes(),
	}
}
