package main

import (
	"github.com/spf13/cobra"

	"lsbstego/internal/imageio"
)

// outputFlags are the save options shared by commands that write an image.
type outputFlags struct {
	output string
	dir    string
	prefix string
	format string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output file (overrides --out-dir, --prefix and --format naming)")
	cmd.Flags().StringVar(&o.dir, "out-dir", "", "Directory for the output file (default: next to the input)")
	cmd.Flags().StringVar(&o.prefix, "prefix", "", "Output file name prefix")
	cmd.Flags().StringVar(&o.format, "format", "", "Output format: png, bmp or tiff")
}

// resolve picks the output path and format. Flags that were set win over
// the config file; defaultPrefix is used when neither names a prefix.
func (o *outputFlags) resolve(cmd *cobra.Command, opts *options, input, defaultPrefix string) (string, imageio.Format, error) {
	format := opts.cfg.GetOutputFormat()
	if cmd.Flags().Changed("format") {
		f, err := imageio.ParseFormat(o.format)
		if err != nil {
			return "", "", err
		}
		format = f
	}

	if o.output != "" {
		return o.output, format, nil
	}

	dir := opts.cfg.GetOutputDir()
	if cmd.Flags().Changed("out-dir") {
		dir = o.dir
	}
	prefix := defaultPrefix
	if opts.cfg.OutputPrefix != nil {
		prefix = opts.cfg.GetOutputPrefix()
	}
	if cmd.Flags().Changed("prefix") {
		prefix = o.prefix
	}
	return imageio.OutputName(input, dir, prefix, format), format, nil
}
