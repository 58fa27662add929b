package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/timbercraft/timberframe/pkg/sizing"
)

// YAMLProvider implements Provider for YAML configuration files. Every
// field is optional; absent fields keep their built-in default, and a
// sizing section replaces the whole table for that member kind.
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider.
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from the YAML file,
// layered over the built-in defaults.
func (y *YAMLProvider) LoadConfig() (*Data, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into a temporary struct with YAML tags
	var yamlConfig struct {
		Output struct {
			File           string   `yaml:"file,omitempty"`
			CanvasWidthIn  float64  `yaml:"width_in,omitempty"`
			CanvasHeightIn float64  `yaml:"height_in,omitempty"`
			DPI            int      `yaml:"dpi,omitempty"`
			OpenViewer     *bool    `yaml:"open_viewer,omitempty"`
		} `yaml:"output,omitempty"`
		Camera struct {
			ElevationDeg *float64 `yaml:"elevation,omitempty"`
			AzimuthDeg   *float64 `yaml:"azimuth,omitempty"`
		} `yaml:"camera,omitempty"`
		Sizing struct {
			Posts          []sizing.PostRule     `yaml:"posts,omitempty"`
			Beams          []sizing.SpanLoadRule `yaml:"beams,omitempty"`
			Rafters        []sizing.SpanLoadRule `yaml:"rafters,omitempty"`
			BeamFallback   *sizing.Size          `yaml:"beam_fallback,omitempty"`
			RafterFallback *sizing.Size          `yaml:"rafter_fallback,omitempty"`
		} `yaml:"sizing,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Layer over the defaults
	config := DefaultData()

	if yamlConfig.Output.File != "" {
		config.Output.File = yamlConfig.Output.File
	}
	if yamlConfig.Output.CanvasWidthIn > 0 {
		config.Output.CanvasWidthIn = yamlConfig.Output.CanvasWidthIn
	}
	if yamlConfig.Output.CanvasHeightIn > 0 {
		config.Output.CanvasHeightIn = yamlConfig.Output.CanvasHeightIn
	}
	if yamlConfig.Output.DPI > 0 {
		config.Output.DPI = yamlConfig.Output.DPI
	}
	if yamlConfig.Output.OpenViewer != nil {
		config.Output.OpenViewer = *yamlConfig.Output.OpenViewer
	}

	if yamlConfig.Camera.ElevationDeg != nil {
		config.Camera.ElevationDeg = *yamlConfig.Camera.ElevationDeg
	}
	if yamlConfig.Camera.AzimuthDeg != nil {
		config.Camera.AzimuthDeg = *yamlConfig.Camera.AzimuthDeg
	}

	if yamlConfig.Sizing.Posts != nil {
		config.Tables.Posts = yamlConfig.Sizing.Posts
	}
	if yamlConfig.Sizing.Beams != nil {
		config.Tables.Beams = yamlConfig.Sizing.Beams
	}
	if yamlConfig.Sizing.Rafters != nil {
		config.Tables.Rafters = yamlConfig.Sizing.Rafters
	}
	if yamlConfig.Sizing.BeamFallback != nil {
		config.Tables.BeamFallback = *yamlConfig.Sizing.BeamFallback
	}
	if yamlConfig.Sizing.RafterFallback != nil {
		config.Tables.RafterFallback = *yamlConfig.Sizing.RafterFallback
	}

	if err := config.Tables.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", y.filename, err)
	}

	return config, nil
}
