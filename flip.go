package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"lsbstego/internal/flip"
	"lsbstego/internal/imageio"
)

const flipPrefix = "flipped_"

func newFlipCmd(opts *options) *cobra.Command {
	var (
		imgPath    string
		horizontal bool
		vertical   bool
		mode       string
		out        outputFlags
	)

	cmd := &cobra.Command{
		Use:   "flip",
		Short: "Reflect an image top to bottom and/or left to right",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !horizontal && !vertical {
				return errors.New("at least one of --horizontal or --vertical is required")
			}

			m := opts.cfg.GetFlipMode()
			if cmd.Flags().Changed("mode") {
				var err error
				if m, err = flip.ParseMode(mode); err != nil {
					return err
				}
			}

			grid, _, err := imageio.Load(imgPath)
			if err != nil {
				return fmt.Errorf("failed to load image: %w", err)
			}
			if horizontal {
				flip.Horizontal(grid, m)
			}
			if vertical {
				flip.Vertical(grid, m)
			}

			outPath, outFormat, err := out.resolve(cmd, opts, imgPath, flipPrefix)
			if err != nil {
				return err
			}
			if err := imageio.Save(outPath, grid, outFormat); err != nil {
				return fmt.Errorf("failed to save image: %w", err)
			}

			log.Info().
				Str("output", outPath).
				Stringer("mode", m).
				Bool("horizontal", horizontal).
				Bool("vertical", vertical).
				Msg("image flipped")
			fmt.Fprintln(cmd.OutOrStdout(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&imgPath, "image", "i", "", "Path to input image")
	cmd.Flags().BoolVarP(&horizontal, "horizontal", "H", false, "Reflect rows (top to bottom)")
	cmd.Flags().BoolVarP(&vertical, "vertical", "V", false, "Reflect columns (left to right)")
	cmd.Flags().StringVar(&mode, "mode", "mirror", "mirror (true reflection) or copy (mirror first half over second)")
	cmd.MarkFlagRequired("image")
	out.register(cmd)
	return cmd
}
