package gencmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command for rendering definition files
func NewGenerateCmd() *cobra.Command {
	var input string
	var output string
	var imagesDir string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate device-type definition files from the model table",
		Long: `Generate one YAML device-type definition per model in the input table.

Each row of the table describes one switch model; the output files follow the
devicetype-library schema and are named after the model's part number, so
re-running overwrites previous output in place. The elevation-image directory
is only probed for file existence to set the front_image/rear_image flags.`,
		Example: `  # Generate definitions from the default models.csv
  devtypegen generate --output ./Cisco

  # Generate from a parquet export with elevation images present
  devtypegen generate --input models.parquet --output ./Cisco --images ./elevation-images`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(input); os.IsNotExist(err) {
				return fmt.Errorf("model table not found: %s", input)
			}
			return executeGenerate(input, output, imagesDir)
		},
	}

	cmd.Flags().StringVar(&input, "input", envOr("DEVTYPEGEN_TABLE", "models.csv"), "Path to the model table (.csv or .parquet)")
	cmd.Flags().StringVar(&output, "output", envOr("DEVTYPEGEN_OUTPUT", "./definitions"), "Output directory for definition files")
	cmd.Flags().StringVar(&imagesDir, "images", "./elevation-images", "Elevation-image directory checked for front/rear images")

	return cmd
}

// NewCropCmd creates the crop command for deriving elevation images
func NewCropCmd() *cobra.Command {
	var table string
	var source string
	var output string
	var rect string

	cmd := &cobra.Command{
		Use:   "crop",
		Short: "Crop vendor photos into front/rear elevation images",
		Long: `Crop a rectangular region out of each model's vendor photos.

For every model in the table and each view (front, rear), the source photo
<source>/<slug>.<view>.png is cropped and written to the output directory
under the same name. A per-model crop in the table's "Front Crop" /
"Rear Crop" columns wins over the --rect default; rectangles are given as
left,top,right,bottom pixel offsets and must lie inside the photo bounds.`,
		Example: `  # Crop all photos with a shared rectangle
  devtypegen crop --table models.csv --source ./photos --rect 40,120,2240,340

  # Rely on per-model crop columns only
  devtypegen crop --table models.csv --source ./photos --output ./elevation-images`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(table); os.IsNotExist(err) {
				return fmt.Errorf("model table not found: %s", table)
			}
			return executeCrop(table, source, output, rect)
		},
	}

	cmd.Flags().StringVar(&table, "table", envOr("DEVTYPEGEN_TABLE", "models.csv"), "Path to the model table (.csv or .parquet)")
	cmd.Flags().StringVar(&source, "source", "./photos", "Directory holding the source vendor photos")
	cmd.Flags().StringVar(&output, "output", "./elevation-images", "Output directory for cropped images")
	cmd.Flags().StringVar(&rect, "rect", "", "Default crop rectangle as left,top,right,bottom")

	return cmd
}

// NewNormalizeCmd creates the normalize command for the elevation passes
func NewNormalizeCmd() *cobra.Command {
	var dir string
	var prefix string

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Trim transparent borders and flatten images to the elevation aspect",
		Long: `Normalize every PNG in a directory for library submission.

Two passes per image: crop away fully transparent borders using the alpha
channel, then flatten onto a white background padded or cropped on the right
to the 10:1 elevation aspect ratio. Files are rewritten in place unless
--prefix is given, in which case prefixed copies are written instead.`,
		Example: `  # Normalize cropped images in place
  devtypegen normalize --dir ./elevation-images

  # Keep the originals, write final_*.png copies
  devtypegen normalize --dir ./front-rear --prefix final_`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeNormalize(dir, prefix)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "./front-rear", "Directory of PNG images to normalize")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Write prefixed copies instead of overwriting")

	return cmd
}

// NewFetchImagesCmd creates the fetch-images command for downloading vendor photos
func NewFetchImagesCmd() *cobra.Command {
	var table string
	var output string

	cmd := &cobra.Command{
		Use:   "fetch-images",
		Short: "Download vendor photos listed in the model table",
		Long: `Download the vendor product photos referenced by the table's
"Front Image URL" / "Rear Image URL" columns into the source-photo
directory, named <slug>.<view>.png so the crop command finds them. Photos
that already exist locally are left untouched.`,
		Example: `  # Fetch photos for every model with URLs in the table
  devtypegen fetch-images --table models.csv --output ./photos`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(table); os.IsNotExist(err) {
				return fmt.Errorf("model table not found: %s", table)
			}
			return executeFetchImages(table, output)
		},
	}

	cmd.Flags().StringVar(&table, "table", envOr("DEVTYPEGEN_TABLE", "models.csv"), "Path to the model table (.csv or .parquet)")
	cmd.Flags().StringVar(&output, "output", "./photos", "Output directory for downloaded photos")

	return cmd
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
