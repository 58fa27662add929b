package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/timbercraft/timberframe/internal/frame"
	"github.com/timbercraft/timberframe/internal/log"
	"github.com/timbercraft/timberframe/internal/prompt"
	"github.com/timbercraft/timberframe/internal/render"
	"github.com/timbercraft/timberframe/pkg/config"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	cfgFile := flag.String("config", "", "Path to optional YAML configuration (output, camera, sizing table overrides)")
	output := flag.String("output", "", "PNG output path (overrides configuration)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	noOpen := flag.Bool("no-open", false, "Do not open the rendered image in a viewer")
	showVersion := flag.Bool("version", false, "Show version and exit")

	lengthFt := flag.Float64("length", 0, "Building length in feet (skips the prompt when all five dimensions are given)")
	widthFt := flag.Float64("width", 0, "Building width in feet")
	wallHeightFt := flag.Float64("wall-height", 0, "Wall height in feet")
	roofRiseIn := flag.Float64("roof-rise", 0, "Roof rise in inches per 12 inches of run")
	snowLoadPSF := flag.Float64("snow-load", 0, "Design snow load in psf")
	flag.Parse()

	if *showVersion {
		fmt.Printf("timberframe %s\n", version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// An interrupt anywhere in the session is a clean exit.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		fmt.Println("\n\nProgram terminated by user.")
		os.Exit(0)
	}()

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *output != "" {
		cfg.Output.File = *output
	}
	if *noOpen {
		cfg.Output.OpenViewer = false
	}

	spec, err := buildSpec(*lengthFt, *widthFt, *wallHeightFt, *roofRiseIn, *snowLoadPSF)
	if err != nil {
		log.Fatalf("Failed to read building dimensions: %v", err)
	}

	fmt.Println("\nCalculating structure...")
	fmt.Println()

	geom := frame.Design(spec, cfg.Tables)
	fmt.Println(frame.Report(spec, geom))

	fmt.Println("\nGenerating 3D visualization...")
	scene := render.BuildScene(spec, geom)
	opts := render.Options{
		CanvasWidthIn:  cfg.Output.CanvasWidthIn,
		CanvasHeightIn: cfg.Output.CanvasHeightIn,
		DPI:            cfg.Output.DPI,
		ElevationDeg:   cfg.Camera.ElevationDeg,
		AzimuthDeg:     cfg.Camera.AzimuthDeg,
	}

	// A failed write to the working directory is only a warning; fall
	// back to the temp dir so the viewer still has something to show.
	imagePath := cfg.Output.File
	if err := render.Save(scene, opts, imagePath); err != nil {
		log.Warnf("Could not save image file: %v", err)
		imagePath = filepath.Join(os.TempDir(), filepath.Base(cfg.Output.File))
		if err := render.Save(scene, opts, imagePath); err != nil {
			log.Warnf("Could not save fallback image file: %v", err)
			imagePath = ""
		}
	}

	if imagePath != "" {
		abs, err := filepath.Abs(imagePath)
		if err != nil {
			abs = imagePath
		}
		fmt.Printf("\n3D visualization saved to: %s\n", abs)

		if cfg.Output.OpenViewer {
			fmt.Println("\nDisplaying 3D model in image viewer...")
			if err := render.Open(imagePath); err != nil {
				log.Warnf("Could not open image viewer: %v", err)
			}
		}
	}

	fmt.Println("\n✓ Design complete!")
	fmt.Println("\nREMINDER: This is a preliminary design based on typical timber")
	fmt.Println("frame construction. Always consult a licensed structural engineer")
	fmt.Println("and local building codes before construction.")
}

func loadConfig(cfgFile string) (*config.Data, error) {
	var provider config.Provider
	if cfgFile == "" {
		provider = config.NewDefaultProvider()
	} else {
		filename, _ := filepath.Abs(cfgFile)
		provider = config.NewYAMLProvider(filename)
	}
	return provider.LoadConfig()
}

// buildSpec takes the building description from flags when all five
// dimensions were given, otherwise from the interactive prompts.
func buildSpec(lengthFt, widthFt, wallHeightFt, roofRiseIn, snowLoadPSF float64) (frame.Spec, error) {
	if lengthFt != 0 || widthFt != 0 || wallHeightFt != 0 || roofRiseIn != 0 || snowLoadPSF != 0 {
		spec := frame.Spec{
			LengthFt:     lengthFt,
			WidthFt:      widthFt,
			WallHeightFt: wallHeightFt,
			RoofPitch:    roofRiseIn / 12,
			SnowLoadPSF:  snowLoadPSF,
		}
		if err := spec.Validate(); err != nil {
			return frame.Spec{}, err
		}
		return spec, nil
	}
	return promptSpec()
}

func promptSpec() (frame.Spec, error) {
	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║         TIMBER FRAME DESIGNER                                ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("This program designs timber frame structures based on your")
	fmt.Println("building dimensions and local snow load requirements.")
	fmt.Println()

	r := prompt.New(os.Stdin, os.Stdout)

	fmt.Println("BUILDING DIMENSIONS")
	fmt.Println("------------------------------------------------------------")
	lengthFt, err := r.Float(prompt.Param{
		Prompt: "Enter building length (feet): ",
		Min:    frame.MinLengthFt, Max: frame.MaxLengthFt,
	})
	if err != nil {
		return frame.Spec{}, err
	}
	widthFt, err := r.Float(prompt.Param{
		Prompt: "Enter building width (feet): ",
		Min:    frame.MinWidthFt, Max: frame.MaxWidthFt,
	})
	if err != nil {
		return frame.Spec{}, err
	}
	wallHeightFt, err := r.Float(prompt.Param{
		Prompt: "Enter wall height (feet, typical 8-12): ",
		Min:    frame.MinWallHeightFt, Max: frame.MaxWallHeightFt,
	})
	if err != nil {
		return frame.Spec{}, err
	}

	fmt.Println("\nROOF SPECIFICATIONS")
	fmt.Println("------------------------------------------------------------")
	fmt.Println("Common roof pitches: 4/12 (18°), 6/12 (27°), 8/12 (34°), 12/12 (45°)")
	roofRiseIn, err := r.Float(prompt.Param{
		Prompt: "Enter roof rise (inches per 12 inches run): ",
		Min:    frame.MinRoofRiseIn, Max: frame.MaxRoofRiseIn,
	})
	if err != nil {
		return frame.Spec{}, err
	}

	fmt.Println("\nSNOW LOAD")
	fmt.Println("------------------------------------------------------------")
	fmt.Println("Reference: https://www.ncdc.noaa.gov/snow-and-ice/")
	fmt.Println("Examples: Southeast 10-20 psf, Midwest 20-40 psf,")
	fmt.Println("          Northeast 40-70 psf, Mountain regions 70-150 psf")
	snowLoadPSF, err := r.Float(prompt.Param{
		Prompt: "Enter snow load for your area (psf): ",
		Min:    frame.MinSnowLoadPSF, Max: frame.MaxSnowLoadPSF,
	})
	if err != nil {
		return frame.Spec{}, err
	}

	return frame.Spec{
		LengthFt:     lengthFt,
		WidthFt:      widthFt,
		WallHeightFt: wallHeightFt,
		RoofPitch:    roofRiseIn / 12,
		SnowLoadPSF:  snowLoadPSF,
	}, nil
}
