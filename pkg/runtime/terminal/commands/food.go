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

func NewFoodCmd(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Food intake charts and history",
	}
	cmd.AddCommand(newFoodPlotCmd(rt))
	cmd.AddCommand(newFoodHistoryCmd(rt))
	return cmd
}

type FoodPlotCmd struct {
	csvPath string
	outPath string
	profile string
	rt      *Runtime
}

func newFoodPlotCmd(rt *Runtime) *cobra.Command {
	fc := &FoodPlotCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render daily kcal, protein and fiber to a PNG",
		Args:  cobra.NoArgs,
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.csvPath, "csv", "", "Path to food_history.csv (default <data_dir>/food_history.csv)")
	cmd.Flags().StringVar(&fc.outPath, "out", "", "Path to output PNG (default <data_dir>/food_history.png)")
	cmd.Flags().StringVar(&fc.profile, "profile", "", "Chart profile (default from settings)")

	return cmd
}

func (fc *FoodPlotCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rt := fc.rt
	csvPath := orDefault(fc.csvPath, rt.Settings.FoodCSV())
	outPath := orDefault(fc.outPath, rt.Settings.FoodPNG())

	profile, err := rt.profile(ctx, fc.profile, rt.Settings.FoodProfile, domain.ProfileTypeFood)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().
		Str("csv", csvPath).
		Str("profile", profile.Name).
		Msg("plotting food history")

	table, err := csvfile.LoadFood(ctx, csvPath)
	if err != nil {
		return err
	}
	series, err := transform.BuildFoodSeries(ctx, table, profile)
	if err != nil {
		return err
	}
	data, err := render.RenderFood(ctx, series, profile)
	if err != nil {
		return err
	}
	if err := render.WritePNG(outPath, data); err != nil {
		return err
	}

	rt.wrote(outPath)
	return nil
}

type FoodHistoryCmd struct {
	csvPath string
	profile string
	format  string
	rt      *Runtime
}

func newFoodHistoryCmd(rt *Runtime) *cobra.Command {
	hc := &FoodHistoryCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the intake history, grouping identical consecutive days",
		Args:  cobra.NoArgs,
		RunE:  hc.run,
	}

	cmd.Flags().StringVar(&hc.csvPath, "csv", "", "Path to food_history.csv (default <data_dir>/food_history.csv)")
	cmd.Flags().StringVar(&hc.profile, "profile", "", "Profile whose targets are used for the summary")
	cmd.Flags().StringVar(&hc.format, "format", "table", "Output format (table or plain)")

	return cmd
}

func (hc *FoodHistoryCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rt := hc.rt

	reporter, err := rt.reporter(hc.format)
	if err != nil {
		return err
	}
	profile, err := rt.profile(ctx, hc.profile, rt.Settings.FoodProfile, domain.ProfileTypeFood)
	if err != nil {
		return err
	}
	table, err := csvfile.LoadFood(ctx, orDefault(hc.csvPath, rt.Settings.FoodCSV()))
	if err != nil {
		return err
	}
	records, err := transform.ParseFood(table)
	if err != nil {
		return err
	}

	return reporter.Handle(history.FoodReport(records, table.HasFiber, profile.Targets))
}
