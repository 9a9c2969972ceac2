package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avtext/subtext/subtitle"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <format> <file>",
	Short: "Decode a subtitle file and print its cues",
	Long: `Decode a subtitle file in one of the supported formats and print
each cue's timing and payload text.

Supported formats: srt, webvtt`,
	Args: cobra.ExactArgs(2),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(_ *cobra.Command, args []string) error {
	format, path := args[0], args[1]
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	switch format {
	case "srt":
		_, res := subtitle.SubRip(input, nil)
		cues := make([]subtitle.Event, res.Total)
		cues, _ = subtitle.SubRip(input, cues)
		for i, c := range cues {
			fmt.Printf("%d: start=%dms duration=%dms %q\n", i, c.Start, c.Duration, c.Payload.Bytes(input))
		}
	case "webvtt":
		_, res, err := subtitle.WebVTT(input, nil)
		if err != nil {
			return err
		}
		cues := make([]subtitle.WebVTTCue, res.Total)
		cues, _, err = subtitle.WebVTT(input, cues)
		if err != nil {
			return err
		}
		for i, c := range cues {
			fmt.Printf("%d: start=%dms end=%dms %q\n", i, c.StartMs, c.EndMs, c.Payload.Bytes(input))
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}
