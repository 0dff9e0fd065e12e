package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/salu133445/musecodec/midi"
)

var decodeOut string

func init() {
	addReprFlags(decodeCmd)
	decodeCmd.Flags().StringVar(&decodeOut, "out", "out.mid", "midi file to write")
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode <tokens.json>",
	Short: "Decodes a token file back into a MIDI file",
	Long:  `Decodes a token file back into a MIDI file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		decode(args[0])
	},
}

func decode(path string) {
	dat, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read token file: " + err.Error())
	}
	m, err := decodeTokens(dat)
	if err != nil {
		panic("Could not decode: " + err.Error())
	}
	if err := midi.WriteMidiFile(decodeOut, m); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
}
