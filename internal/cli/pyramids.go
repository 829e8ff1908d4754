package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quadra/internal/ingest"
	"github.com/mesh-intelligence/quadra/internal/service"
	"github.com/mesh-intelligence/quadra/pkg/types"
)

// pyramidReport is one row of the pyramids command. The base plane and
// slice ratio are reported only for valid pyramids.
type pyramidReport struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Volume      *float64 `json:"volume,omitempty"`
	SurfaceArea *float64 `json:"surface_area,omitempty"`
	Valid       bool     `json:"valid"`
	BasePlane   string   `json:"base_plane,omitempty"`
	SliceRatio  *float64 `json:"slice_ratio,omitempty"`
}

func (a *app) newPyramidsCmd() *cobra.Command {
	var (
		plane string
		slice float64
	)

	cmd := &cobra.Command{
		Use:   "pyramids",
		Short: "Report volume, surface area, and slicing ratio of every pyramid",
		Long: "Report volume, surface area, and validity of every pyramid. With --slice,\n" +
			"also report the volume ratio cut off by a plane parallel to --plane at that\n" +
			"distance. Without --plane the base's coordinate plane is used.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fixed types.Plane
			if plane != "" {
				p, err := types.ParsePlane(plane)
				if err != nil {
					return userError(err)
				}
				fixed = p
			}
			return a.runPyramids(cmd, fixed, slice, cmd.Flags().Changed("slice"))
		},
	}
	cmd.Flags().StringVar(&plane, "plane", "", "slicing plane: xy, xz, or yz")
	cmd.Flags().Float64Var(&slice, "slice", 0, "slice distance along the axis orthogonal to the plane")
	return cmd
}

func (a *app) runPyramids(cmd *cobra.Command, plane types.Plane, slice float64, sliced bool) error {
	sess, err := a.openSession(cmd.Context(), load{pyramids: true})
	if err != nil {
		return err
	}
	defer sess.Close()

	svc := service.NewPyramidService()
	var reports []pyramidReport
	for _, s := range sess.repo.FindAll() {
		p, ok := s.(*types.Pyramid)
		if !ok {
			continue
		}
		rep := pyramidReport{ID: p.ID(), Name: p.Name(), Valid: svc.IsValidPyramid(p)}
		if v, ok := sess.warehouse.GetVolume(p.ID()); ok && ingest.IsValidVolume(v) {
			rep.Volume = ptr(v)
		}
		if v, ok := sess.warehouse.GetArea(p.ID()); ok && ingest.IsValidArea(v) {
			rep.SurfaceArea = ptr(v)
		}
		if rep.Valid {
			base, onPlane := svc.BaseLiesOnCoordinatePlane(p)
			if onPlane {
				rep.BasePlane = string(base)
			}
			cut := plane
			if cut == "" && onPlane {
				cut = base
			}
			if sliced && cut != "" {
				rep.SliceRatio = ptr(svc.VolumeRatioAfterSlicing(p, cut, slice))
			}
		}
		reports = append(reports, rep)
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		if reports == nil {
			reports = []pyramidReport{}
		}
		return writeJSON(out, reports)
	}

	t := newTable(out, "ID", "NAME", "VOLUME", "SURFACE AREA", "VALID", "BASE PLANE", "SLICE RATIO")
	for _, r := range reports {
		basePlane := r.BasePlane
		if basePlane == "" {
			basePlane = "-"
		}
		t.row(r.ID, r.Name, fmtFloat(r.Volume), fmtFloat(r.SurfaceArea), fmt.Sprint(r.Valid),
			basePlane, fmtFloat(r.SliceRatio))
	}
	return t.flush()
}
