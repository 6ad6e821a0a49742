package commands

import (
	"fmt"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	rt *Runtime
}

func NewProfilesCmd(rt *Runtime) *cobra.Command {
	pc := &ProfilesCmd{rt: rt}
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the available chart profiles",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	profiles, err := pc.rt.Profiles.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}
	for _, p := range profiles {
		fmt.Fprintf(pc.rt.Out, "%-16s %-7s %s\n", p.Name, p.Type, describe(p))
	}
	return nil
}

func describe(p domain.ChartProfile) string {
	w, h := p.PixelSize()
	size := fmt.Sprintf("%dx%d@%.0fdpi", w, h, p.DPI)
	if p.Type == domain.ProfileTypeWeight {
		if p.Interpolate {
			return size + ", daily interpolation with measured points"
		}
		return size + ", measured points only"
	}

	desc := size + ", kcal " + rangeLabel(p.KcalRange) + ", macros " + rangeLabel(p.MacroRange)
	if p.ShowBands {
		desc += ", target bands"
	}
	return desc + ", fiber marker " + string(p.FiberMarker)
}

func rangeLabel(r *domain.AxisRange) string {
	if r == nil {
		return "auto"
	}
	return fmt.Sprintf("%g-%g", r.Min, r.Max)
}
