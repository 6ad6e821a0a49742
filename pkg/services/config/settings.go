package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings are the application-wide options. Each key can also be set through
// a TRACKPLOT_<KEY> environment variable.
type Settings struct {
	DataDir       string `mapstructure:"data_dir"`
	LogLevel      string `mapstructure:"log_level"`
	Profiles      string `mapstructure:"profiles"`
	FoodProfile   string `mapstructure:"food_profile"`
	WeightProfile string `mapstructure:"weight_profile"`
}

func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("data_dir", "data")
	v.SetDefault("log_level", "info")
	v.SetDefault("profiles", "")
	v.SetDefault("food_profile", ProfileTargets)
	v.SetDefault("weight_profile", ProfileInterpolated)

	v.SetEnvPrefix("TRACKPLOT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}

func (s *Settings) FoodCSV() string { return filepath.Join(s.DataDir, "food_history.csv") }
func (s *Settings) FoodPNG() string { return filepath.Join(s.DataDir, "food_history.png") }
func (s *Settings) WeightCSV() string { return filepath.Join(s.DataDir, "weight_history.csv") }
func (s *Settings) WeightPNG() string { return filepath.Join(s.DataDir, "weight_history.png") }
