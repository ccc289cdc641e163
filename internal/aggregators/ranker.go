package aggregators

import (
	"sort"

	"nsqtop/internal/models"
)

// Rank orders the snapshot's channels by backlog depth descending. Ties are
// broken by channel key ascending so repeated runs over identical input
// produce identical output.
func Rank(snapshot *models.CycleSnapshot) []*models.AggregatedChannel {
	ranked := make([]*models.AggregatedChannel, 0, len(snapshot.Channels))
	for _, channel := range snapshot.Channels {
		ranked = append(ranked, channel)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Depth != ranked[j].Depth {
			return ranked[i].Depth > ranked[j].Depth
		}
		return ranked[i].Key() < ranked[j].Key()
	})

	return ranked
}
