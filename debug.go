package skiplist

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// dumpLevels renders one row per horizontal list, from head to bottom,
// giving its length and the keys it carries — a table-shaped read-only
// debug aid in place of the out-of-scope full validator
// (original_source/skiplist/SkiplistDebug.hpp's DisplayHorizontally;
// see SPEC_FULL.md §4.13). It never mutates the container.
func (c *core[K, V]) dumpLevels(w io.Writer, keyString func(K) string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Level", "Length", "Keys"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	level := c.levelCount
	for dummy := c.head; dummy != nil; dummy = dummy.down {
		length := 0
		keys := ""
		for n := dummy.next; n != nil; n = n.next {
			if length > 0 {
				keys += ", "
			}
			keys += keyString(n.key())
			length++
		}
		table.Append([]string{fmt.Sprintf("%d", level), fmt.Sprintf("%d", length), keys})
		level--
	}
	table.Render()
}

// DumpLevels renders the map's horizontal lists to w.
func (m *Map[K, V]) DumpLevels(w io.Writer, keyString func(K) string) {
	m.c.dumpLevels(w, keyString)
}

// DumpLevels renders the multimap's horizontal lists to w.
func (mm *Multimap[K, V]) DumpLevels(w io.Writer, keyString func(K) string) {
	mm.c.dumpLevels(w, keyString)
}
