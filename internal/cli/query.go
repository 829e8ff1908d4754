package cli

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quadra/internal/compare"
	"github.com/mesh-intelligence/quadra/internal/spec"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

var errInvalidRange = errors.New("invalid range")

type queryFlags struct {
	id            string
	name          string
	firstQuadrant bool
	area          string
	volume        string
	perimeter     string
	distance      string
	matchAny      bool
	negate        bool
	sortKey       string
	reverse       bool
	metrics       bool
}

// shapeRow is one shape in query output with its cached metrics.
type shapeRow struct {
	ID        string      `json:"id"`
	Kind      types.Kind  `json:"kind"`
	Name      string      `json:"name"`
	Reference types.Point `json:"reference_point"`
	Area      *float64    `json:"area,omitempty"`
	Volume    *float64    `json:"volume,omitempty"`
	Perimeter *float64    `json:"perimeter,omitempty"`
}

type queryResult struct {
	Shapes  []shapeRow         `json:"shapes"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func (a *app) newQueryCmd() *cobra.Command {
	var qf queryFlags

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter and sort all shapes",
		Long: `Load rectangles and pyramids into one repository and print the shapes that
match every filter (or any filter with --any). Ranges are min:max, inclusive;
either bound may be left empty.

Example:
  quadra query --first-quadrant
  quadra query --area 10:20 --sort name
  quadra query --volume 1: --perimeter :5 --any --negate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runQuery(cmd, qf)
		},
	}

	f := cmd.Flags()
	f.StringVar(&qf.id, "id", "", "match this shape ID")
	f.StringVar(&qf.name, "name", "", "match this shape name")
	f.BoolVar(&qf.firstQuadrant, "first-quadrant", false, "match shapes with every point in x>0, y>0")
	f.StringVar(&qf.area, "area", "", "cached area (surface area for pyramids) range min:max")
	f.StringVar(&qf.volume, "volume", "", "cached volume range min:max")
	f.StringVar(&qf.perimeter, "perimeter", "", "cached perimeter range min:max")
	f.StringVar(&qf.distance, "distance", "", "distance from origin of any point, range min:max")
	f.BoolVar(&qf.matchAny, "any", false, "combine filters with OR instead of AND")
	f.BoolVar(&qf.negate, "negate", false, "invert the combined filter")
	f.StringVar(&qf.sortKey, "sort", "", "sort by id, name, x, y, or z")
	f.BoolVar(&qf.reverse, "reverse", false, "reverse the sort order")
	f.BoolVar(&qf.metrics, "metrics", false, "include warehouse and repository counters")
	return cmd
}

func (a *app) runQuery(cmd *cobra.Command, qf queryFlags) error {
	var order types.Comparator
	if qf.sortKey != "" {
		c, ok := compare.Parse(qf.sortKey)
		if !ok {
			return userError(fmt.Errorf("unknown sort key %q (valid: id, name, x, y, z)", qf.sortKey))
		}
		order = c
		if qf.reverse {
			order = compare.Reverse(c)
		}
	}

	sess, err := a.openSession(cmd.Context(), load{rectangles: true, pyramids: true})
	if err != nil {
		return err
	}
	defer sess.Close()

	filter, err := buildSpecification(qf, sess.warehouse)
	if err != nil {
		return userError(err)
	}

	shapes := sess.repo.FindBySpecification(filter)
	if order != nil {
		slices.SortStableFunc(shapes, order)
	}

	result := queryResult{Shapes: make([]shapeRow, 0, len(shapes))}
	for _, s := range shapes {
		m, _ := sess.warehouse.GetMetrics(s.ID())
		result.Shapes = append(result.Shapes, shapeRow{
			ID:        s.ID(),
			Kind:      s.Kind(),
			Name:      s.Name(),
			Reference: s.ReferencePoint(),
			Area:      m.Area,
			Volume:    m.Volume,
			Perimeter: m.Perimeter,
		})
	}
	if qf.metrics {
		if result.Metrics, err = sess.gatherMetrics(); err != nil {
			return sysError(err)
		}
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return writeJSON(out, result)
	}

	t := newTable(out, "ID", "KIND", "NAME", "REFERENCE", "AREA", "VOLUME", "PERIMETER")
	for _, r := range result.Shapes {
		t.row(r.ID, string(r.Kind), r.Name, r.Reference.String(),
			fmtFloat(r.Area), fmtFloat(r.Volume), fmtFloat(r.Perimeter))
	}
	if err := t.flush(); err != nil {
		return err
	}
	if qf.metrics {
		keys := make([]string, 0, len(result.Metrics))
		for k := range result.Metrics {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		fmt.Fprintln(out)
		for _, k := range keys {
			fmt.Fprintf(out, "%s %g\n", k, result.Metrics[k])
		}
	}
	return nil
}

// buildSpecification turns the query flags into one specification. With no
// filters every shape matches.
func buildSpecification(qf queryFlags, metrics spec.MetricReader) (types.Specification, error) {
	var leaves []types.Specification
	if qf.id != "" {
		leaves = append(leaves, spec.ByID(qf.id))
	}
	if qf.name != "" {
		leaves = append(leaves, spec.ByName(qf.name))
	}
	if qf.firstQuadrant {
		leaves = append(leaves, spec.ByFirstQuadrant())
	}

	ranges := []struct {
		flag  string
		value string
		build func(lo, hi float64) types.Specification
	}{
		{"area", qf.area, func(lo, hi float64) types.Specification { return spec.BySurfaceAreaRange(metrics, lo, hi) }},
		{"volume", qf.volume, func(lo, hi float64) types.Specification { return spec.ByVolumeRange(metrics, lo, hi) }},
		{"perimeter", qf.perimeter, func(lo, hi float64) types.Specification { return spec.ByPerimeterRange(metrics, lo, hi) }},
		{"distance", qf.distance, spec.ByDistanceFromOriginRange},
	}
	for _, r := range ranges {
		if r.value == "" {
			continue
		}
		lo, hi, err := parseRange(r.value)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", r.flag, err)
		}
		leaves = append(leaves, r.build(lo, hi))
	}

	var combined types.Specification
	switch {
	case len(leaves) == 0:
		combined = spec.And()
	case qf.matchAny:
		combined = spec.Or(leaves...)
	default:
		combined = spec.And(leaves...)
	}
	if qf.negate {
		combined = spec.Not(combined)
	}
	return combined, nil
}

// parseRange parses "min:max". An empty bound is unbounded on that side.
func parseRange(s string) (lo, hi float64, err error) {
	before, after, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w %q: want min:max", errInvalidRange, s)
	}
	lo, hi = math.Inf(-1), math.Inf(1)
	if before = strings.TrimSpace(before); before != "" {
		if lo, err = strconv.ParseFloat(before, 64); err != nil {
			return 0, 0, fmt.Errorf("%w %q: %v", errInvalidRange, s, err)
		}
	}
	if after = strings.TrimSpace(after); after != "" {
		if hi, err = strconv.ParseFloat(after, 64); err != nil {
			return 0, 0, fmt.Errorf("%w %q: %v", errInvalidRange, s, err)
		}
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%w %q: min exceeds max", errInvalidRange, s)
	}
	return lo, hi, nil
}
