package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PandaNeatBook/analizza-log-traccia3/internal/engine"
	"github.com/fatih/color"
)

const bannerWidth = 60

var (
	okColor     = color.New(color.FgHiGreen)
	noticeColor = color.New(color.FgYellow)
	errColor    = color.New(color.FgHiRed)
	titleColor  = color.New(color.Bold)
)

// Reporter prints the human readable progress of a run.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Banner prints title between two rules.
func (r *Reporter) Banner(title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(r.out, "\n%s\n", rule)
	titleColor.Fprintln(r.out, title)
	fmt.Fprintf(r.out, "%s\n\n", rule)
}

func (r *Reporter) OK(format string, args ...interface{}) {
	okColor.Fprint(r.out, "[OK] ")
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Reporter) Notice(format string, args ...interface{}) {
	noticeColor.Fprintf(r.out, format+"\n", args...)
}

// Error prints err as an [ERROR] line with a message chosen by error kind.
func (r *Reporter) Error(err error) {
	errColor.Fprint(r.out, "\n[ERROR] ")
	fmt.Fprintln(r.out, Describe(err))
}

// Result prints the stage status lines in pipeline order and the final summary.
func (r *Reporter) Result(res *engine.AnalysisResult, outputPath string) {
	s := res.Summary()
	r.OK("found %d unique users", s.UniqueUsers)
	r.OK("found %d unique events", s.UniqueEvents)
	r.OK("event count completed")
	r.OK("results saved in '%s'", outputPath)
	r.Banner("ANALYSIS COMPLETED SUCCESSFULLY")
	fmt.Fprintln(r.out, "--- SUMMARY ---")
	fmt.Fprintf(r.out, "   * Unique users: %d\n", s.UniqueUsers)
	fmt.Fprintf(r.out, "   * Unique events: %d\n", s.UniqueEvents)
	fmt.Fprintf(r.out, "   * Total logs analysed: %d\n", s.TotalLogs)
}

// Describe renders an error for the user according to its kind.
func Describe(err error) string {
	var (
		loadErr    *engine.LoadError
		indexErr   *engine.IndexOutOfRangeError
		rowErr     *engine.MalformedRowError
		cmpErr     *engine.ComparisonError
		persistErr *engine.PersistError
		filterErr  *engine.FilterError
	)
	switch {
	case errors.As(err, &loadErr):
		return loadErr.Error()
	case errors.Is(err, engine.ErrEmptyInput):
		return "the dataset contains no log rows"
	case errors.As(err, &indexErr):
		return fmt.Sprintf("log rows are too short: %s", indexErr.Error())
	case errors.As(err, &rowErr):
		return fmt.Sprintf("log rows have different widths: %s", rowErr.Error())
	case errors.As(err, &cmpErr):
		return fmt.Sprintf("cannot sort values: %s", cmpErr.Error())
	case errors.As(err, &persistErr):
		return persistErr.Error()
	case errors.As(err, &filterErr):
		return filterErr.Error()
	default:
		return fmt.Sprintf("unexpected error: %v", err)
	}
}
