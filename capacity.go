package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lsbstego/internal/bitcodec"
	"lsbstego/internal/imageio"
	"lsbstego/internal/stego"
)

func newCapacityCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "capacity [image-path]",
		Short: "Show how many characters an image can hold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, format, err := imageio.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load image: %w", err)
			}

			wtr := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(wtr, "Format\tWidth\tHeight\tPixels\tHeader Bits\tCapacity (Chars)")
			fmt.Fprintf(wtr, "%s\t%d\t%d\t%d\t%d\t%d\n",
				format, grid.Width(), grid.Height(), grid.Len(), bitcodec.HeaderBits, stego.Capacity(grid))
			return wtr.Flush()
		},
	}
}
