package skiplist

// stats tracks simple operation counters, adapted from the teacher's
// metrics.go. The teacher shards counters across cache lines and picks a
// shard per-call because its metrics are updated from many goroutines
// under CAS retries; this container is single-threaded (spec.md §5), so
// the sharding and the RNG-driven shard selection are dropped and the
// counters become plain fields.
type stats struct {
	inserts        int64
	insertBlocked  int64
	hintedInserts  int64
	hintedFallback int64
	erases         int64
	balances       int64
	levelGrows     int64
	levelShrinks   int64
}

func newStats() *stats { return &stats{} }

func (s *stats) recordInsert()         { s.inserts++ }
func (s *stats) recordInsertBlocked()  { s.insertBlocked++ }
func (s *stats) recordHintedInsert()   { s.hintedInserts++ }
func (s *stats) recordHintedFallback() { s.hintedFallback++ }
func (s *stats) recordErase(n int64)   { s.erases += n }
func (s *stats) recordBalance()        { s.balances++ }
func (s *stats) recordLevelGrow()      { s.levelGrows++ }
func (s *stats) recordLevelShrink()    { s.levelShrinks++ }

// Stats is a point-in-time snapshot of operation counters, returned by
// Map.Stats / Multimap.Stats.
type Stats struct {
	Inserts        int64
	InsertBlocked  int64
	HintedInserts  int64
	HintedFallback int64
	Erases         int64
	Balances       int64
	LevelGrows     int64
	LevelShrinks   int64
}

func (s *stats) snapshot() Stats {
	return Stats{
		Inserts:        s.inserts,
		InsertBlocked:  s.insertBlocked,
		HintedInserts:  s.hintedInserts,
		HintedFallback: s.hintedFallback,
		Erases:         s.erases,
		Balances:       s.balances,
		LevelGrows:     s.levelGrows,
		LevelShrinks:   s.levelShrinks,
	}
}
