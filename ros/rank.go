package ros

import (
	"fmt"

	"github.com/uyouii/wq-algorithms/model"
)

// GroupRank numbers each element 1, 2, ... within the group of equal keys,
// counting in input order.
func GroupRank[K comparable](keys []K) []int {
	counters := make(map[K]int)
	ranks := make([]int, len(keys))
	for i, key := range keys {
		counters[key]++
		ranks[i] = counters[key]
	}
	return ranks
}

type rankKey struct {
	detLimitIndex int
	censored      bool
}

// AssignRanks locates the detection limit bucket of every sorted observation
// and ranks it within its (bucket, censored) group.
func AssignRanks(sorted []model.Observation, cohn *model.CohnTable) ([]model.RankedObservation, error) {
	keys := make([]rankKey, len(sorted))
	res := make([]model.RankedObservation, len(sorted))
	for i, obs := range sorted {
		idx, err := cohn.DetectionLimitIndex(obs.Value)
		if err != nil {
			return nil, fmt.Errorf("observation %d: %w", i, err)
		}
		keys[i] = rankKey{detLimitIndex: idx, censored: obs.Censored}
		res[i] = model.RankedObservation{Observation: obs, DetLimitIndex: idx}
	}

	for i, rank := range GroupRank(keys) {
		res[i].Rank = rank
	}
	return res, nil
}
