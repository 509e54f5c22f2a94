package voters

import (
	"slices"

	"github.com/bpmon-network/bpmon/internal/entity"
)

// RankCandidates orders snapshot node candidates best first: most fetch checks
// that returned rows, then the largest latest fetch, then the lowest node id.
func RankCandidates(candidates []entity.NodeCandidate) []entity.NodeCandidate {
	ranked := slices.Clone(candidates)
	slices.SortFunc(ranked, func(a, b entity.NodeCandidate) int {
		switch {
		case a.SuccessfulFetches != b.SuccessfulFetches:
			return compareDesc(a.SuccessfulFetches, b.SuccessfulFetches)
		case a.LatestFetchResults != b.LatestFetchResults:
			return compareDesc(int64(a.LatestFetchResults), int64(b.LatestFetchResults))
		case a.NodeID < b.NodeID:
			return -1
		case a.NodeID > b.NodeID:
			return 1
		}
		return 0
	})
	return ranked
}

func compareDesc(a, b int64) int {
	if a > b {
		return -1
	}
	return 1
}
