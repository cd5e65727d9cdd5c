package experiment_test

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gostonefire/chainhashmap"
	"github.com/gostonefire/chainhashmap/internal/experiment"
	"github.com/gostonefire/chainhashmap/internal/workload"
)

func smallGrid() experiment.Grid {
	grid := experiment.DefaultGrid()
	grid.KeyModes = []workload.KeyMode{workload.EmployeeID}
	grid.TableSizes = []int64{1, 10}
	grid.Optimize = []bool{false}
	grid.Trials = 3
	grid.Operations = 200

	return grid
}

var _ = Describe("Grid", func() {
	It("Will enumerate every combination of the default grid", func() {
		grid := experiment.DefaultGrid()

		Expect(grid.Validate()).To(Succeed())
		Expect(grid.Combinations()).To(HaveLen(32))
		Expect(grid.TotalTrials()).To(Equal(32 * 50))

		first := grid.Combinations()[0]
		Expect(first.KeyMode).To(Equal(workload.EmployeeID))
		Expect(first.TableSize).To(Equal(int64(1)))
		Expect(first.Mode).To(Equal(chainhashmap.HeadOnly))
		Expect(first.Family).To(Equal(experiment.Deterministic))
	})

	It("Will reject grids with unusable values", func() {
		grid := experiment.DefaultGrid()
		grid.TableSizes = []int64{10, 0}
		Expect(grid.Validate()).To(MatchError(chainhashmap.InvalidTableSize{}))

		grid = experiment.DefaultGrid()
		grid.Families = []experiment.Family{"cuckoo"}
		Expect(grid.Validate()).ToNot(Succeed())

		grid = experiment.DefaultGrid()
		grid.Trials = 0
		Expect(grid.Validate()).ToNot(Succeed())
	})

	It("Will load a grid file over the defaults", func() {
		path := filepath.Join(GinkgoT().TempDir(), "grid.yaml")
		Expect(os.WriteFile(path, []byte("table_sizes: [7, 13]\ntrials: 4\nhash_families: [random]\n"), 0644)).To(Succeed())

		grid, err := experiment.LoadGrid(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(grid.TableSizes).To(Equal([]int64{7, 13}))
		Expect(grid.Trials).To(Equal(4))
		Expect(grid.Families).To(Equal([]experiment.Family{experiment.Random}))
		Expect(grid.Operations).To(Equal(experiment.DefaultGrid().Operations))
	})

	It("Will fail to load a grid file with an unknown key mode", func() {
		path := filepath.Join(GinkgoT().TempDir(), "grid.yaml")
		Expect(os.WriteFile(path, []byte("key_modes: [name]\n"), 0644)).To(Succeed())

		_, err := experiment.LoadGrid(path)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Trial", func() {
	combination := experiment.Combination{
		KeyMode:   workload.Salary,
		TableSize: 10,
		Mode:      chainhashmap.Strict,
		Family:    experiment.Random,
	}

	It("Will derive reproducible 32-bit trial seeds", func() {
		seed := experiment.TrialSeed(120, combination, 3)

		Expect(seed).To(Equal(experiment.TrialSeed(120, combination, 3)))
		Expect(seed).To(BeNumerically(">=", 0))
		Expect(seed).To(BeNumerically("<=", int64(math.MaxUint32)))
		Expect(seed).ToNot(Equal(experiment.TrialSeed(120, combination, 4)))
		Expect(seed).ToNot(Equal(experiment.TrialSeed(121, combination, 3)))
	})

	It("Will never count an incorrect search in strict mode", func() {
		for _, keyMode := range []workload.KeyMode{workload.EmployeeID, workload.Salary} {
			for _, family := range []experiment.Family{experiment.Deterministic, experiment.Random} {
				for _, m := range []int64{1, 10, 100} {
					c := experiment.Combination{KeyMode: keyMode, TableSize: m, Mode: chainhashmap.Strict, Family: family}

					record, err := experiment.RunTrial(10_000_000, 1000, c, 0, experiment.TrialSeed(120, c, 0))
					Expect(err).ToNot(HaveOccurred())
					Expect(record.Incorrect).To(BeZero(), "%s/%s/m=%d", keyMode, family, m)
					Expect(record.Records).To(BeNumerically(">", 0))
					Expect(record.Elapsed).To(BeNumerically(">", time.Duration(0)))
				}
			}
		}
	})

	It("Will count incorrect searches in head-only mode on a single bucket", func() {
		c := experiment.Combination{KeyMode: workload.EmployeeID, TableSize: 1, Mode: chainhashmap.HeadOnly, Family: experiment.Deterministic}

		record, err := experiment.RunTrial(10_000_000, 1000, c, 0, 42)
		Expect(err).ToNot(HaveOccurred())
		Expect(record.Incorrect).To(BeNumerically(">", 0))
		Expect(record.LongestChain).To(Equal(record.Records))
	})

	It("Will reproduce a trial from its seed", func() {
		r1, err1 := experiment.RunTrial(10_000_000, 500, combination, 0, 99)
		r2, err2 := experiment.RunTrial(10_000_000, 500, combination, 0, 99)

		Expect(err1).ToNot(HaveOccurred())
		Expect(err2).ToNot(HaveOccurred())
		Expect(r1.Incorrect).To(Equal(r2.Incorrect))
		Expect(r1.Records).To(Equal(r2.Records))
		Expect(r1.LongestChain).To(Equal(r2.LongestChain))
		Expect(r1.EmptyBuckets).To(Equal(r2.EmptyBuckets))
	})
})

var _ = Describe("Runner", func() {
	It("Will run every trial of the grid in order", func() {
		runner, err := experiment.NewRunner(smallGrid())
		Expect(err).ToNot(HaveOccurred())

		records, err := runner.Run(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(records).To(HaveLen(smallGrid().TotalTrials()))
		Expect(records[0].TableSize).To(Equal(int64(1)))
		Expect(records[0].Trial).To(Equal(0))
		Expect(records[len(records)-1].TableSize).To(Equal(int64(10)))
		Expect(records[len(records)-1].Family).To(Equal(experiment.Random))

		for _, record := range records {
			Expect(record.Incorrect).To(BeZero())
		}
	})

	It("Will stop when the context is done", func() {
		runner, err := experiment.NewRunner(smallGrid())
		Expect(err).ToNot(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		records, err := runner.Run(ctx)
		Expect(err).To(MatchError(context.Canceled))
		Expect(records).To(BeEmpty())
	})

	It("Will refuse an invalid grid", func() {
		grid := smallGrid()
		grid.Operations = 0

		_, err := experiment.NewRunner(grid)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Summary", func() {
	strictRandom := experiment.Combination{KeyMode: workload.EmployeeID, TableSize: 10, Mode: chainhashmap.Strict, Family: experiment.Random}
	headOnly := experiment.Combination{KeyMode: workload.EmployeeID, TableSize: 10, Mode: chainhashmap.HeadOnly, Family: experiment.Deterministic}
	salary := experiment.Combination{KeyMode: workload.Salary, TableSize: 1, Mode: chainhashmap.Strict, Family: experiment.Deterministic}

	records := []experiment.TrialRecord{
		{Combination: salary, Trial: 0, Elapsed: 5 * time.Millisecond, Incorrect: 0},
		{Combination: headOnly, Trial: 0, Elapsed: 1 * time.Millisecond, Incorrect: 10},
		{Combination: headOnly, Trial: 1, Elapsed: 2 * time.Millisecond, Incorrect: 20},
		{Combination: headOnly, Trial: 2, Elapsed: 6 * time.Millisecond, Incorrect: 30},
		{Combination: strictRandom, Trial: 0, Elapsed: 2 * time.Millisecond, Incorrect: 0},
		{Combination: strictRandom, Trial: 1, Elapsed: 4 * time.Millisecond, Incorrect: 0},
	}

	It("Will aggregate and sort the groups", func() {
		rows := experiment.Summarize(records, 100)

		Expect(rows).To(HaveLen(3))
		Expect(rows[0].Combination).To(Equal(strictRandom))
		Expect(rows[1].Combination).To(Equal(headOnly))
		Expect(rows[2].Combination).To(Equal(salary))

		Expect(rows[0].Runs).To(Equal(2))
		Expect(rows[0].TimeMeanMs).To(Equal(3.0))
		Expect(rows[0].TimeMedianMs).To(Equal(3.0))
		Expect(rows[0].TimeStdMs).To(Equal(1.4142))
		Expect(rows[0].TimePerOpUs).To(Equal(30.0))

		Expect(rows[1].Runs).To(Equal(3))
		Expect(rows[1].TimeMeanMs).To(Equal(3.0))
		Expect(rows[1].TimeMedianMs).To(Equal(2.0))
		Expect(rows[1].IncorrectMean).To(Equal(20.0))
		Expect(rows[1].IncorrectStd).To(Equal(10.0))
		Expect(rows[1].IncorrectRate).To(Equal(20.0))
		Expect(rows[1].Optimize()).To(BeTrue())

		Expect(math.IsNaN(rows[2].TimeStdMs)).To(BeTrue())
	})

	It("Will write the summary as csv", func() {
		var buf bytes.Buffer

		Expect(experiment.WriteCSV(&buf, experiment.Summarize(records, 100))).To(Succeed())

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		Expect(lines).To(HaveLen(4))
		Expect(lines[0]).To(Equal(strings.Join(experiment.SummaryColumns, ",")))
		Expect(lines[1]).To(HavePrefix("employee_id,10,false,random,2,3,1.4142,3,0,0,0,30"))
		Expect(lines[3]).To(Equal("salary,1,false,deterministic,1,5,,5,0,,0,50"))
	})

	It("Will render the summary as a table", func() {
		out := experiment.RenderTable(experiment.Summarize(records, 100))

		Expect(out).To(ContainSubstring("TimeMean_ms"))
		Expect(out).To(ContainSubstring("employee_id"))
		Expect(out).To(ContainSubstring("deterministic"))
	})
})
