package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"lsbstego/internal/config"
	"lsbstego/internal/imageio"
	"lsbstego/internal/stego"
)

func newHideCmd(opts *options) *cobra.Command {
	var (
		imgPath string
		text    string
		out     outputFlags
	)

	cmd := &cobra.Command{
		Use:   "hide",
		Short: "Hide a text message in an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, format, err := imageio.Load(imgPath)
			if err != nil {
				return fmt.Errorf("failed to load image: %w", err)
			}
			if imageio.Lossy(format) {
				log.Warn().Str("format", format).Msg("input is lossy; output will be written losslessly")
			}

			codec := stego.New()
			codec.Logger = log.Logger
			if err := codec.Hide(grid, text); err != nil {
				return err
			}

			outPath, outFormat, err := out.resolve(cmd, opts, imgPath, config.DefaultOutputPrefix)
			if err != nil {
				return err
			}
			if err := imageio.Save(outPath, grid, outFormat); err != nil {
				return fmt.Errorf("failed to save image: %w", err)
			}

			log.Info().
				Str("output", outPath).
				Int("characters", len([]rune(text))).
				Int("capacity", stego.Capacity(grid)).
				Msg("message hidden")
			fmt.Fprintln(cmd.OutOrStdout(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&imgPath, "image", "i", "", "Path to input image")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Text to hide (empty clears any previous message)")
	cmd.MarkFlagRequired("image")
	out.register(cmd)
	return cmd
}
