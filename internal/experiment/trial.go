package experiment

import (
	"errors"
	"fmt"
	"github.com/OneOfOne/xxhash"
	"github.com/gostonefire/chainhashmap"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/groundtruth"
	"github.com/gostonefire/chainhashmap/internal/workload"
	"time"
)

// TrialRecord - The outcome of one trial
//   - Elapsed is the time spent inside hash map operations only, bookkeeping is not included
//   - Incorrect is the number of searches whose result disagreed with the ground truth
//   - Records, LongestChain and EmptyBuckets describe the table as the trial left it
type TrialRecord struct {
	Combination
	Trial        int
	Seed         int64
	Elapsed      time.Duration
	Incorrect    int
	Records      int64
	LongestChain int64
	EmptyBuckets int64
}

// TrialSeed - Derives the seed of one trial from its coordinates in the grid. The seed fits in 32 bits.
func TrialSeed(baseSeed int64, c Combination, trial int) int64 {
	coordinates := fmt.Sprintf("%d|%s|%d|%t|%s|%d",
		baseSeed, c.KeyMode, c.TableSize, c.Mode == chainhashmap.HeadOnly, c.Family, trial)

	return int64(xxhash.ChecksumString64(coordinates) & 0xFFFFFFFF)
}

// NewHashAlgorithm - Returns the algorithm of family for a table of tableSize buckets. The random family is seeded
// with trialSeed plus conf.UniversalSeedOffset so that it does not share a stream with the workload.
func NewHashAlgorithm(family Family, universe, tableSize, trialSeed int64) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch family {
	case Deterministic:
		hashAlgorithm = chainhashmap.NewDivisionHash(universe, tableSize)
	case Random:
		hashAlgorithm = chainhashmap.NewUniversalHashSeeded(universe, tableSize, trialSeed+conf.UniversalSeedOffset)
	default:
		err = fmt.Errorf("unknown hash family %q", family)
	}

	return
}

// RunTrial - Runs one trial of operations operations against a fresh table and checks every search against a ground
// truth multimap.
//   - universe is the max employee id drawn
//   - operations is the number of operations to run
//   - c is the grid point
//   - trial is the trial number within the grid point
//   - seed drives the workload and, offset, the random family, see TrialSeed
//
// It returns:
//   - record is the outcome of the trial
//   - err is returned if the table could not be built
func RunTrial(universe int64, operations int, c Combination, trial int, seed int64) (record TrialRecord, err error) {
	hashAlgorithm, err := NewHashAlgorithm(c.Family, universe, c.TableSize, seed)
	if err != nil {
		return
	}

	table, err := chainhashmap.New[int64](universe, c.TableSize, hashAlgorithm, c.Mode)
	if err != nil {
		return
	}

	gen := workload.NewGenerator(seed, universe)
	truth := groundtruth.NewMultimap[int64]()

	record = TrialRecord{Combination: c, Trial: trial, Seed: seed}

	for i := 0; i < operations; i++ {
		action := gen.ChooseAction()

		if action == workload.Delete && truth.Len() == 0 {
			action = workload.Search
		}

		switch action {
		case workload.Insert:
			key, value := gen.DrawPair(c.KeyMode)
			truth.Add(key, value)

			start := time.Now()
			table.Insert(key, value)
			record.Elapsed += time.Since(start)

		case workload.Delete:
			key, _ := truth.RandomLiveKey(gen)

			start := time.Now()
			table.Delete(key)
			record.Elapsed += time.Since(start)

			truth.RemoveAny(key)

		case workload.Search:
			var key int64
			if truth.Len() > 0 && gen.Float64() < conf.ExistingKeySearchShare {
				key, _ = truth.RandomLiveKey(gen)
			} else {
				key = gen.DrawKey(c.KeyMode)
			}

			start := time.Now()
			got, searchErr := table.Search(key)
			record.Elapsed += time.Since(start)

			if searchErr != nil && !errors.Is(searchErr, chainhashmap.NoRecordFound{}) {
				err = searchErr
				return
			}

			if !truth.IsCorrect(key, got, searchErr == nil) {
				record.Incorrect++
			}
		}
	}

	stat := table.Stat()
	record.Records = stat.Records
	record.LongestChain = stat.LongestChain
	record.EmptyBuckets = stat.EmptyBuckets

	return
}
