package config

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/trackplot/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const (
	ProfileTargets      = "targets"
	ProfileHistory      = "history"
	ProfileInterpolated = "interpolated"
	ProfilePlain        = "plain"
)

var defaultTargets = domain.Targets{
	Kcal:    domain.Band{Min: 1750, Max: 2150},
	Protein: domain.Band{Min: 110, Max: 140},
	Fiber:   domain.Band{Min: 25, Max: 40},
}

// BuiltinProfiles returns one profile per known chart variant.
func BuiltinProfiles() map[string]domain.ChartProfile {
	return map[string]domain.ChartProfile{
		ProfileTargets: {
			Name:         ProfileTargets,
			Type:         domain.ProfileTypeFood,
			Title:        "Daily intake vs targets",
			WidthInches:  12,
			HeightInches: 6,
			DPI:          150,
			KcalRange:    &domain.AxisRange{Min: 0, Max: 2500},
			MacroRange:   &domain.AxisRange{Min: 0, Max: 150},
			ShowBands:    true,
			Targets:      defaultTargets,
			FiberMarker:  domain.MarkerCross,
			MaskZeroDays: true,
		},
		ProfileHistory: {
			Name:         ProfileHistory,
			Type:         domain.ProfileTypeFood,
			Title:        "Food history: daily intake (zeros skipped)",
			WidthInches:  12,
			HeightInches: 6,
			DPI:          150,
			Targets:      defaultTargets,
			FiberMarker:  domain.MarkerSquare,
			MaskZeroDays: true,
		},
		ProfileInterpolated: {
			Name:         ProfileInterpolated,
			Type:         domain.ProfileTypeWeight,
			Title:        "Weight history (kg)",
			WidthInches:  12,
			HeightInches: 6,
			DPI:          150,
			Interpolate:  true,
		},
		ProfilePlain: {
			Name:         ProfilePlain,
			Type:         domain.ProfileTypeWeight,
			Title:        "Weight tracker history",
			WidthInches:  6.4,
			HeightInches: 4.8,
			DPI:          160,
		},
	}
}

var typeDefaults = map[domain.ProfileType]string{
	domain.ProfileTypeFood:   ProfileTargets,
	domain.ProfileTypeWeight: ProfileInterpolated,
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.ChartProfile, error)
	GetProfile(ctx context.Context, name string) (domain.ChartProfile, error)
}

type profileRegistry struct {
	profiles map[string]domain.ChartProfile
}

// NewRegistry returns the built-in profiles, overridden and extended by the
// sections of the INI file at path. An empty path means built-ins only.
func NewRegistry(path string) (Registry, error) {
	profiles := BuiltinProfiles()
	if path == "" {
		return &profileRegistry{profiles: profiles}, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles %s: %w", path, err)
	}
	for _, section := range cfg.Sections() {
		if len(section.Keys()) == 0 || section.Name() == ini.DefaultSection {
			continue
		}
		profile, err := parseSection(section, profiles)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", section.Name(), err)
		}
		profiles[profile.Name] = profile
	}
	return &profileRegistry{profiles: profiles}, nil
}

func (pr *profileRegistry) GetProfiles(_ context.Context) ([]domain.ChartProfile, error) {
	out := make([]domain.ChartProfile, 0, len(pr.profiles))
	for _, p := range pr.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (pr *profileRegistry) GetProfile(_ context.Context, name string) (domain.ChartProfile, error) {
	profile, ok := pr.profiles[name]
	if !ok {
		return domain.ChartProfile{}, fmt.Errorf("profile %s not found", name)
	}
	return profile, nil
}

// parseSection starts from the profile named by the section, its "base" key,
// or the default profile of its type, and applies every key present on top of it.
func parseSection(section *ini.Section, known map[string]domain.ChartProfile) (domain.ChartProfile, error) {
	name := section.Name()
	base, ok := known[name]
	if section.HasKey("base") {
		baseName := section.Key("base").String()
		if base, ok = known[baseName]; !ok {
			return domain.ChartProfile{}, fmt.Errorf("unknown base profile %q", baseName)
		}
	}

	if section.HasKey("type") {
		t := domain.ProfileType(section.Key("type").String())
		if _, isType := typeDefaults[t]; !isType {
			return domain.ChartProfile{}, fmt.Errorf("unknown type %q", t)
		}
		if !ok {
			base, ok = known[typeDefaults[t]], true
		}
		base.Type = t
	}
	if !ok {
		return domain.ChartProfile{}, fmt.Errorf("new profiles need a type or a base")
	}
	p := base
	p.Name = name

	p.Title = section.Key("title").MustString(p.Title)
	p.WidthInches = section.Key("width").MustFloat64(p.WidthInches)
	p.HeightInches = section.Key("height").MustFloat64(p.HeightInches)
	p.DPI = section.Key("dpi").MustFloat64(p.DPI)
	p.ShowBands = section.Key("bands").MustBool(p.ShowBands)
	p.MaskZeroDays = section.Key("mask_zero_days").MustBool(p.MaskZeroDays)
	p.Interpolate = section.Key("interpolate").MustBool(p.Interpolate)

	if section.HasKey("fiber_marker") {
		switch m := domain.MarkerShape(strings.ToLower(section.Key("fiber_marker").String())); m {
		case domain.MarkerCross, domain.MarkerSquare, domain.MarkerCircle, domain.MarkerNone:
			p.FiberMarker = m
		default:
			return p, fmt.Errorf("unknown fiber_marker %q", m)
		}
	}

	var err error
	if p.KcalRange, err = axisRange(section, "kcal", p.KcalRange); err != nil {
		return p, err
	}
	if p.MacroRange, err = axisRange(section, "macro", p.MacroRange); err != nil {
		return p, err
	}
	if p.Targets.Kcal, err = band(section, "kcal_target", p.Targets.Kcal); err != nil {
		return p, err
	}
	if p.Targets.Protein, err = band(section, "protein_target", p.Targets.Protein); err != nil {
		return p, err
	}
	if p.Targets.Fiber, err = band(section, "fiber_target", p.Targets.Fiber); err != nil {
		return p, err
	}

	if p.WidthInches <= 0 || p.HeightInches <= 0 || p.DPI <= 0 {
		return p, fmt.Errorf("width, height and dpi must be positive")
	}
	return p, nil
}

// axisRange reads <prefix>_range = auto | <min>,<max>.
func axisRange(section *ini.Section, prefix string, current *domain.AxisRange) (*domain.AxisRange, error) {
	key := prefix + "_range"
	if !section.HasKey(key) {
		return current, nil
	}
	raw := strings.TrimSpace(section.Key(key).String())
	if strings.EqualFold(raw, "auto") || raw == "" {
		return nil, nil
	}
	values, err := section.Key(key).StrictFloat64s(",")
	if err != nil || len(values) != 2 || values[0] >= values[1] {
		return nil, fmt.Errorf("%s must be auto or <min>,<max>, got %q", key, raw)
	}
	return &domain.AxisRange{Min: values[0], Max: values[1]}, nil
}

// band reads <prefix>_min and <prefix>_max, keeping the current bound for a missing key.
func band(section *ini.Section, prefix string, current domain.Band) (domain.Band, error) {
	b := current
	for _, bound := range []struct {
		key string
		dst *float64
	}{
		{prefix + "_min", &b.Min},
		{prefix + "_max", &b.Max},
	} {
		if !section.HasKey(bound.key) {
			continue
		}
		v, err := section.Key(bound.key).Float64()
		if err != nil {
			return current, fmt.Errorf("%s must be a number, got %q", bound.key, section.Key(bound.key).String())
		}
		*bound.dst = v
	}
	if b.Min > b.Max {
		return current, fmt.Errorf("%s_min must not exceed %s_max", prefix, prefix)
	}
	return b, nil
}
