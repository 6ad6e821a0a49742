package commands

import (
	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/de-tools/trackplot/pkg/services/history"
	"github.com/de-tools/trackplot/pkg/services/render"
	"github.com/de-tools/trackplot/pkg/services/transform"
	"github.com/de-tools/trackplot/pkg/store/csvfile"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func NewWeightCmd(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weight",
		Short: "Body weight charts and history",
	}
	cmd.AddCommand(newWeightPlotCmd(rt))
	cmd.AddCommand(newWeightHistoryCmd(rt))
	return cmd
}

type WeightPlotCmd struct {
	csvPath string
	outPath string
	profile string
	rt      *Runtime
}

func newWeightPlotCmd(rt *Runtime) *cobra.Command {
	wc := &WeightPlotCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the weight history to a PNG",
		Args:  cobra.NoArgs,
		RunE:  wc.run,
	}

	cmd.Flags().StringVar(&wc.csvPath, "csv", "", "Path to weight_history.csv (default <data_dir>/weight_history.csv)")
	cmd.Flags().StringVar(&wc.outPath, "out", "", "Path to output PNG (default <data_dir>/weight_history.png)")
	cmd.Flags().StringVar(&wc.profile, "profile", "", "Chart profile (default from settings)")

	return cmd
}

func (wc *WeightPlotCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rt := wc.rt
	csvPath := orDefault(wc.csvPath, rt.Settings.WeightCSV())
	outPath := orDefault(wc.outPath, rt.Settings.WeightPNG())

	profile, err := rt.profile(ctx, wc.profile, rt.Settings.WeightProfile, domain.ProfileTypeWeight)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().
		Str("csv", csvPath).
		Str("profile", profile.Name).
		Msg("plotting weight history")

	table, err := csvfile.LoadWeight(ctx, csvPath)
	if err != nil {
		return err
	}
	series, err := transform.BuildWeightSeries(ctx, table, profile)
	if err != nil {
		return err
	}
	data, err := render.RenderWeight(ctx, series, profile)
	if err != nil {
		return err
	}
	if err := render.WritePNG(outPath, data); err != nil {
		return err
	}

	rt.wrote(outPath)
	return nil
}

type WeightHistoryCmd struct {
	csvPath string
	format  string
	rt      *Runtime
}

func newWeightHistoryCmd(rt *Runtime) *cobra.Command {
	hc := &WeightHistoryCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print every measurement in kg and lb with the last change",
		Args:  cobra.NoArgs,
		RunE:  hc.run,
	}

	cmd.Flags().StringVar(&hc.csvPath, "csv", "", "Path to weight_history.csv (default <data_dir>/weight_history.csv)")
	cmd.Flags().StringVar(&hc.format, "format", "table", "Output format (table or plain)")

	return cmd
}

func (hc *WeightHistoryCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rt := hc.rt

	reporter, err := rt.reporter(hc.format)
	if err != nil {
		return err
	}
	table, err := csvfile.LoadWeight(ctx, orDefault(hc.csvPath, rt.Settings.WeightCSV()))
	if err != nil {
		return err
	}
	records, err := transform.ParseWeight(ctx, table)
	if err != nil {
		return err
	}

	return reporter.Handle(history.WeightReport(records))
}
