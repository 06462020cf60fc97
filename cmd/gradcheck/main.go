// gradcheck compares every differentiable primitive against central finite
// differences and prints a report table.
//
// Usage:
//
//	gradcheck [-op sin,pow/] [-trials 5] [-workers 8] [-v 1]
//
// The exit code is 1 if any case fails.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/born-ml/autograd/internal/gradcheck"
	"github.com/born-ml/autograd/internal/parallel"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	defaults = gradcheck.DefaultConfig()

	flagStep    = flag.Float64("step", defaults.Step, "Central-difference step.")
	flagAbsTol  = flag.Float64("atol", defaults.AbsTol, "Absolute tolerance.")
	flagRelTol  = flag.Float64("rtol", defaults.RelTol, "Relative tolerance.")
	flagSeed    = flag.Uint64("seed", defaults.Seed, "Seed for random inputs.")
	flagTrials  = flag.Int("trials", defaults.Trials, "Random input draws per case.")
	flagOp      = flag.String("op", "", "Comma-separated case name prefixes to check, e.g. \"sin,pow/\". Empty checks all.")
	flagWorkers = flag.Int("workers", runtime.NumCPU(), "Number of cases checked concurrently. 1 disables concurrency.")
	flagFailed  = flag.Bool("failed", false, "Only list failing cases.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	cfg := gradcheck.Config{
		Step:   *flagStep,
		AbsTol: *flagAbsTol,
		RelTol: *flagRelTol,
		Seed:   *flagSeed,
		Trials: *flagTrials,
		Parallel: parallel.Config{
			Enabled:    *flagWorkers > 1,
			NumWorkers: *flagWorkers,
		},
	}
	must.M(cfg.Validate())
	cases := must.M1(gradcheck.Filter(gradcheck.Catalog(), *flagOp))
	klog.V(1).Infof("checking %d cases with %d workers", len(cases), cfg.Parallel.NumWorkers)

	results := gradcheck.Run(cases, cfg)
	if failed := report(results); failed > 0 {
		klog.Errorf("%d of %d cases failed", failed, len(results))
		os.Exit(1)
	}
}

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F55")).Bold(true).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

// report prints one row per result plus a summary, and returns the number of
// failed cases.
func report(results []gradcheck.Result) (failed int) {
	var checked int64
	failedRows := map[int]bool{}
	table := newTable(failedRows)
	table.Row("Case", "Status", "Checked", "Max |Δ|", "Error")
	row := 0
	for _, r := range results {
		checked += int64(r.Checked)
		status := "ok"
		if !r.OK {
			status = "FAIL"
			failed++
		} else if *flagFailed {
			continue
		}
		errMsg := ""
		if r.Err != nil {
			errMsg = r.Err.Error()
		}
		row++
		failedRows[row] = !r.OK
		table.Row(r.Name, status, humanize.Comma(int64(r.Checked)), fmt.Sprintf("%.3g", r.MaxAbsErr), errMsg)
	}

	fmt.Println(titleStyle.Render("Gradient check"))
	fmt.Println(table.Render())

	summary := newTable(nil)
	summary.Row("cases", humanize.Comma(int64(len(results))))
	summary.Row("failed", humanize.Comma(int64(failed)))
	summary.Row("gradient entries", humanize.Comma(checked))
	fmt.Println(summary.Render())
	return failed
}

// newTable returns a table with a header row when failedRows is non-nil.
// Rows marked in failedRows are highlighted.
func newTable(failedRows map[int]bool) *lgtable.Table {
	withHeader := failedRows != nil
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			switch {
			case withHeader && row == 0:
				return headerRowStyle
			case failedRows[row]:
				s = failStyle
			case row%2 == 0:
				s = oddRowStyle
			default:
				s = evenRowStyle
			}
			if col == 0 {
				s = s.Align(lipgloss.Right)
			} else {
				s = s.Align(lipgloss.Left)
			}
			return
		})
}
