package experiment

import (
	"cmp"
	"encoding/csv"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/gostonefire/chainhashmap"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"io"
	"math"
	"slices"
	"strconv"
)

// summaryPlaces - Number of decimal places summary figures are rounded to
const summaryPlaces = 4

// SummaryColumns - Header of the summary CSV, in column order
var SummaryColumns = []string{
	"Key", "M", "Optimize", "HashFamily", "Runs",
	"TimeMean_ms", "TimeStd_ms", "TimeMedian_ms",
	"IncorrectMean", "IncorrectStd", "IncorrectRate_%", "TimePerOp_us",
}

// SummaryRow - Aggregated figures of all trials of one grid point. Standard deviations are sample deviations and are
// NaN for a single run.
type SummaryRow struct {
	Combination
	Runs          int
	TimeMeanMs    float64
	TimeStdMs     float64
	TimeMedianMs  float64
	IncorrectMean float64
	IncorrectStd  float64
	IncorrectRate float64
	TimePerOpUs   float64
}

// Optimize - Returns true for rows measured in HeadOnly mode
func (S SummaryRow) Optimize() bool {
	return S.Mode == chainhashmap.HeadOnly
}

// Summarize - Groups records by grid point and aggregates each group. Rows are sorted by key mode, table size,
// optimize (false first) and family.
//   - records are the trial records to aggregate
//   - operations is the number of operations each trial ran
func Summarize(records []TrialRecord, operations int) (rows []SummaryRow) {
	groups := orderedmap.NewOrderedMap[Combination, []TrialRecord]()
	for _, record := range records {
		group, _ := groups.Get(record.Combination)
		groups.Set(record.Combination, append(group, record))
	}

	for el := groups.Front(); el != nil; el = el.Next() {
		times := make([]float64, len(el.Value))
		incorrect := make([]float64, len(el.Value))
		for i, record := range el.Value {
			times[i] = float64(record.Elapsed.Nanoseconds()) / 1e6
			incorrect[i] = float64(record.Incorrect)
		}

		timeMean := mean(times)
		incorrectMean := mean(incorrect)

		rows = append(rows, SummaryRow{
			Combination:   el.Key,
			Runs:          len(el.Value),
			TimeMeanMs:    round(timeMean),
			TimeStdMs:     round(sampleStd(times, timeMean)),
			TimeMedianMs:  round(median(times)),
			IncorrectMean: round(incorrectMean),
			IncorrectStd:  round(sampleStd(incorrect, incorrectMean)),
			IncorrectRate: round(100 * incorrectMean / float64(operations)),
			TimePerOpUs:   round(timeMean * 1000 / float64(operations)),
		})
	}

	slices.SortFunc(rows, func(a, b SummaryRow) int {
		if c := cmp.Compare(a.KeyMode, b.KeyMode); c != 0 {
			return c
		}
		if c := cmp.Compare(a.TableSize, b.TableSize); c != 0 {
			return c
		}
		if a.Optimize() != b.Optimize() {
			if a.Optimize() {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Family, b.Family)
	})

	return
}

// WriteCSV - Writes the header and one line per row to w
func WriteCSV(w io.Writer, rows []SummaryRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(SummaryColumns); err != nil {
		return errors.Wrap(err, "failed to write summary header")
	}

	for _, row := range rows {
		if err := writer.Write(row.fields()); err != nil {
			return errors.Wrap(err, "failed to write summary row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "failed to flush summary")
	}

	return nil
}

// fields - Returns the row formatted in SummaryColumns order
func (S SummaryRow) fields() []string {
	return []string{
		string(S.KeyMode),
		strconv.FormatInt(S.TableSize, 10),
		strconv.FormatBool(S.Optimize()),
		string(S.Family),
		strconv.Itoa(S.Runs),
		formatFigure(S.TimeMeanMs),
		formatFigure(S.TimeStdMs),
		formatFigure(S.TimeMedianMs),
		formatFigure(S.IncorrectMean),
		formatFigure(S.IncorrectStd),
		formatFigure(S.IncorrectRate),
		formatFigure(S.TimePerOpUs),
	}
}

// round - Rounds x half away from zero to summaryPlaces decimals, NaN stays NaN
func round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	return decimal.NewFromFloat(x).Round(summaryPlaces).InexactFloat64()
}

// formatFigure - Formats x the way the summary prints it, NaN as an empty field
func formatFigure(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ""
	}

	return decimal.NewFromFloat(x).Round(summaryPlaces).String()
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}

	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

func sampleStd(xs []float64, mean float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}

	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}

	return math.Sqrt(ss / float64(len(xs)-1))
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}
