package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"github.com/de-tools/trackplot/pkg/services/config"
)

// ReportHandler prints a history report in one output format.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

// Runtime carries what the root command resolved before any subcommand runs.
type Runtime struct {
	Settings  *config.Settings
	Profiles  config.Registry
	Reporters map[string]ReportHandler
	Out       io.Writer
}

// profile resolves the named profile, or the fallback when name is empty,
// and checks it was written for the expected kind of chart.
func (rt *Runtime) profile(ctx context.Context, name, fallback string, want domain.ProfileType) (domain.ChartProfile, error) {
	if name == "" {
		name = fallback
	}
	p, err := rt.Profiles.GetProfile(ctx, name)
	if err != nil {
		return p, err
	}
	if p.Type != want {
		return p, fmt.Errorf("profile %q is a %s profile, expected %s", name, p.Type, want)
	}
	return p, nil
}

func (rt *Runtime) reporter(format string) (ReportHandler, error) {
	h, ok := rt.Reporters[format]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return h, nil
}

func (rt *Runtime) wrote(path string) {
	fmt.Fprintf(rt.Out, "Wrote %s\n", path)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
