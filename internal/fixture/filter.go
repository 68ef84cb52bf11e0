package fixture

import (
	"strings"

	"github.com/atomicstack/sectionlist/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter returns a data set holding only items that match query, together
// with the headers of their sections. A section whose title matches keeps
// all of its items. An empty query returns ds unchanged.
func (ds DataSet) Filter(query string) DataSet {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return ds
	}
	keep := make(map[int][]int)
	for si, sec := range ds.Sections {
		if fuzzy.MatchNormalizedFold(trimmed, sec.Title) {
			all := make([]int, len(sec.Items))
			for i := range all {
				all[i] = i
			}
			keep[si] = all
			continue
		}
		if matched := matchItems(trimmed, sec.Items); len(matched) > 0 {
			keep[si] = matched
		}
	}
	rows, err := flatten(ds.Sections, keep, ds.Options)
	if err != nil {
		// Build already validated every section.
		panic(err)
	}
	out := ds
	out.Rows = rows
	events.Fixture.Filter(trimmed, len(rows))
	return out
}

func matchItems(query string, items []string) []int {
	ranks := fuzzy.RankFindNormalizedFold(query, items)
	if len(ranks) == 0 {
		return nil
	}
	matched := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matched[rank.OriginalIndex] = struct{}{}
	}
	out := make([]int, 0, len(matched))
	for i := range items {
		if _, ok := matched[i]; ok {
			out = append(out, i)
		}
	}
	return out
}

// Find returns the position of the item that best matches query, or -1.
// Exact and prefix matches win over fuzzy ones; ties go to the lowest
// position.
func (ds DataSet) Find(query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(ds.Rows) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, row := range ds.Rows {
		if strings.EqualFold(row.Text, trimmed) {
			return i
		}
	}
	for i, row := range ds.Rows {
		if strings.HasPrefix(strings.ToLower(row.Text), lower) {
			return i
		}
	}
	texts := make([]string, len(ds.Rows))
	for i, row := range ds.Rows {
		texts[i] = row.Text
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, texts)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
