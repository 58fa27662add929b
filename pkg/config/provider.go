// Package config supplies the designer's runtime configuration: output
// and camera settings plus optional overrides for the member sizing
// tables. Configuration is read once at startup through a provider;
// the built-in defaults are used when no file is given.
package config

import (
	"github.com/timbercraft/timberframe/pkg/sizing"
)

// Provider defines the interface for configuration sources.
type Provider interface {
	// LoadConfig loads the complete configuration.
	LoadConfig() (*Data, error)
}

// Data is the complete resolved configuration.
type Data struct {
	Output OutputData
	Camera CameraData
	Tables *sizing.Tables
}

// OutputData controls the exported image and its display.
type OutputData struct {
	File           string
	CanvasWidthIn  float64
	CanvasHeightIn float64
	DPI            int
	OpenViewer     bool
}

// CameraData fixes the viewing angle for the 3-D scene.
type CameraData struct {
	ElevationDeg float64
	AzimuthDeg   float64
}

// DefaultData returns the built-in configuration: the stock sizing
// tables and a 14×10 in, 150 DPI export viewed from 20°/45°.
func DefaultData() *Data {
	return &Data{
		Output: OutputData{
			File:           "timber_frame_design.png",
			CanvasWidthIn:  14,
			CanvasHeightIn: 10,
			DPI:            150,
			OpenViewer:     true,
		},
		Camera: CameraData{
			ElevationDeg: 20,
			AzimuthDeg:   45,
		},
		Tables: sizing.Default(),
	}
}

// DefaultProvider serves the built-in configuration.
type DefaultProvider struct{}

// NewDefaultProvider creates a provider backed by the built-in defaults.
func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{}
}

// LoadConfig returns the built-in configuration.
func (d *DefaultProvider) LoadConfig() (*Data, error) {
	return DefaultData(), nil
}
