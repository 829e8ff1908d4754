package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/quadra/internal/ingest"
	"github.com/mesh-intelligence/quadra/internal/service"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

// rectangleReport is one row of the rectangles command. Shape classes are
// reported only for valid rectangles.
type rectangleReport struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Area      *float64 `json:"area,omitempty"`
	Perimeter *float64 `json:"perimeter,omitempty"`
	Valid     bool     `json:"valid"`
	Square    *bool    `json:"square,omitempty"`
	Rhombus   *bool    `json:"rhombus,omitempty"`
	Trapezoid *bool    `json:"trapezoid,omitempty"`
	Convex    *bool    `json:"convex,omitempty"`
}

func (a *app) newRectanglesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rectangles",
		Short: "Report area, perimeter, and shape class of every rectangle",
		Args:  cobra.NoArgs,
		RunE:  a.runRectangles,
	}
}

func (a *app) runRectangles(cmd *cobra.Command, args []string) error {
	sess, err := a.openSession(cmd.Context(), load{rectangles: true})
	if err != nil {
		return err
	}
	defer sess.Close()

	svc := service.NewRectangleService()
	var reports []rectangleReport
	for _, s := range sess.repo.FindAll() {
		r, ok := s.(*types.Rectangle)
		if !ok {
			continue
		}
		rep := rectangleReport{ID: r.ID(), Name: r.Name(), Valid: svc.IsValidRectangle(r)}
		if v, ok := sess.warehouse.GetArea(r.ID()); ok && ingest.IsValidArea(v) {
			rep.Area = ptr(v)
		}
		if v, ok := sess.warehouse.GetPerimeter(r.ID()); ok && ingest.IsValidPerimeter(v) {
			rep.Perimeter = ptr(v)
		}
		if rep.Valid {
			rep.Square = ptr(svc.IsSquare(r))
			rep.Rhombus = ptr(svc.IsRhombus(r))
			rep.Trapezoid = ptr(svc.IsTrapezoid(r))
			rep.Convex = ptr(svc.IsConvex(r))
		} else {
			a.logger.Info("not a valid rectangle", zap.String("id", r.ID()))
		}
		reports = append(reports, rep)
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		if reports == nil {
			reports = []rectangleReport{}
		}
		return writeJSON(out, reports)
	}

	t := newTable(out, "ID", "NAME", "AREA", "PERIMETER", "VALID", "SQUARE", "RHOMBUS", "TRAPEZOID", "CONVEX")
	for _, r := range reports {
		t.row(r.ID, r.Name, fmtFloat(r.Area), fmtFloat(r.Perimeter), fmt.Sprint(r.Valid),
			fmtBool(r.Square), fmtBool(r.Rhombus), fmtBool(r.Trapezoid), fmtBool(r.Convex))
	}
	return t.flush()
}
