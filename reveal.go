package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"lsbstego/internal/bitcodec"
	"lsbstego/internal/imageio"
	"lsbstego/internal/stego"
)

func newRevealCmd(opts *options) *cobra.Command {
	var imgPath string

	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Print the message hidden in an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, format, err := imageio.Load(imgPath)
			if err != nil {
				return fmt.Errorf("failed to load image: %w", err)
			}
			if imageio.Lossy(format) {
				log.Warn().Str("format", format).Msg("lossy formats rarely keep hidden messages intact")
			}

			codec := stego.New()
			codec.Logger = log.Logger
			msg, err := codec.Reveal(grid)
			if errors.Is(err, bitcodec.ErrMalformedHeader) {
				return fmt.Errorf("no hidden message found: %w", err)
			}
			if err != nil {
				return err
			}
			if msg == "" {
				log.Info().Msg("image carries an empty message")
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&imgPath, "image", "i", "", "Path to input image")
	cmd.MarkFlagRequired("image")
	return cmd
}
