package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/homedoc/homedoc/internal/blob"
	"github.com/homedoc/homedoc/internal/imaging"
)

func newCaptureCmd() *cobra.Command {
	var lat, lon float64
	var raster, watermark bool

	cmd := &cobra.Command{
		Use:   "capture <file>",
		Short: "Annotate and store a capture",
		Long:  "Run an image file through the capture pipeline: geotag it, compose the location and timestamp overlay, and store the result durably. With --raster the file is stored as-is; with --watermark the raw coordinates and file time are composed without reverse geocoding.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(cmd, args[0], lat, lon, raster, watermark)
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "capture latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "capture longitude")
	cmd.Flags().BoolVar(&raster, "raster", false, "skip annotation and store the raw image")
	cmd.Flags().BoolVar(&watermark, "watermark", false, "compose the watermark variant without reverse geocoding")

	return cmd
}

func runCapture(cmd *cobra.Command, path string, lat, lon float64, raster, watermark bool) error {
	_ = godotenv.Load()

	ctx := cmd.Context()
	blobs, err := blob.OpenFromEnv(ctx)
	if err != nil {
		return fmt.Errorf("opening blob store: %w", err)
	}

	device := imaging.FileDevice{Path: path}
	geo := imaging.NewGeocoder(imaging.Position{Lat: lat, Lon: lon})
	pipeline := imaging.NewPipeline(device, geo, blobs, imaging.DefaultViewport)

	var url string
	switch {
	case raster:
		url, err = pipeline.CaptureRaster(ctx)
	case watermark:
		var svg string
		svg, err = pipeline.CaptureWatermark(ctx)
		if err == nil {
			url, err = pipeline.UploadVector(ctx, svg)
		}
	default:
		url, err = pipeline.CaptureAnnotated(ctx)
	}
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]string{"url": url})
	}

	fmt.Println(url)
	return nil
}
