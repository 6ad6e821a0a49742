package commands

import (
	"fmt"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/de-tools/trackplot/pkg/services/transform"
	"github.com/de-tools/trackplot/pkg/store/csvfile"
	"github.com/de-tools/trackplot/pkg/store/xlsx"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	kind    string
	csvPath string
	outPath string
	profile string
	rt      *Runtime
}

func NewExportCmd(rt *Runtime) *cobra.Command {
	ec := &ExportCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the plotted series to an .xlsx workbook",
		Args:  cobra.NoArgs,
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.kind, "kind", "", "Series to export (food or weight)")
	cmd.Flags().StringVar(&ec.csvPath, "csv", "", "Path to the history CSV (default under <data_dir>)")
	cmd.Flags().StringVar(&ec.outPath, "out", "", "Path to the output .xlsx")
	cmd.Flags().StringVar(&ec.profile, "profile", "", "Profile controlling masking and interpolation")

	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rt := ec.rt

	switch domain.ProfileType(ec.kind) {
	case domain.ProfileTypeFood:
		profile, err := rt.profile(ctx, ec.profile, rt.Settings.FoodProfile, domain.ProfileTypeFood)
		if err != nil {
			return err
		}
		table, err := csvfile.LoadFood(ctx, orDefault(ec.csvPath, rt.Settings.FoodCSV()))
		if err != nil {
			return err
		}
		series, err := transform.BuildFoodSeries(ctx, table, profile)
		if err != nil {
			return err
		}
		if err := xlsx.WriteFood(ctx, ec.outPath, series); err != nil {
			return err
		}
	case domain.ProfileTypeWeight:
		profile, err := rt.profile(ctx, ec.profile, rt.Settings.WeightProfile, domain.ProfileTypeWeight)
		if err != nil {
			return err
		}
		table, err := csvfile.LoadWeight(ctx, orDefault(ec.csvPath, rt.Settings.WeightCSV()))
		if err != nil {
			return err
		}
		series, err := transform.BuildWeightSeries(ctx, table, profile)
		if err != nil {
			return err
		}
		if err := xlsx.WriteWeight(ctx, ec.outPath, series); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported kind %q, expected food or weight", ec.kind)
	}

	rt.wrote(ec.outPath)
	return nil
}
