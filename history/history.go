// Package history records generation runs so seeds can be recalled later.
package history

import (
	"slices"
	"strings"
	"time"

	"github.com/basetoken/basetoken/filesystem"
	"github.com/basetoken/basetoken/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

// Limit is the number of runs kept; older runs are dropped first.
const Limit = 100

// Run is a single generation.
type Run struct {
	Seed    string    `json:"seed"`
	Variant string    `json:"variant"`
	Format  string    `json:"format"`
	Output  string    `json:"output"`
	Files   int       `json:"files"`
	At      time.Time `json:"at"`
}

func cacher() *gache.Cache[[]*Run] {
	return gache.New[[]*Run](&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	})
}

// List returns every recorded run, newest first.
func List() ([]*Run, error) {
	runs, expired, err := cacher().Get()
	if err != nil {
		return nil, err
	}
	if expired || runs == nil {
		return []*Run{}, nil
	}
	return runs, nil
}

// Record prepends a run to the history.
func Record(run *Run) error {
	runs, err := List()
	if err != nil {
		return err
	}

	if run.At.IsZero() {
		run.At = time.Now()
	}

	runs = append([]*Run{run}, runs...)
	if len(runs) > Limit {
		runs = runs[:Limit]
	}

	return cacher().Set(runs)
}

// Clear forgets every run.
func Clear() error {
	return cacher().Set([]*Run{})
}

// SuggestSeeds returns previously used seeds fuzzily matching query, most
// used first. Ties keep the most recent seed first. An empty query matches
// every seed.
func SuggestSeeds(query string) []string {
	runs, err := List()
	if err != nil {
		return []string{}
	}

	query = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(query), "#"))

	uses := make(map[string]int)
	var seeds []string
	for _, run := range runs {
		if uses[run.Seed] == 0 {
			seeds = append(seeds, run.Seed)
		}
		uses[run.Seed]++
	}

	seeds = lo.Filter(seeds, func(seed string, _ int) bool {
		return fuzzy.MatchFold(query, seed)
	})

	slices.SortStableFunc(seeds, func(a, b string) int {
		return uses[b] - uses[a]
	})

	return seeds
}
