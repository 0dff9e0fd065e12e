package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/salu133445/musecodec/midi"
)

var encodeOut string

func init() {
	addReprFlags(encodeCmd)
	encodeCmd.Flags().StringVar(&encodeOut, "out", "", "write tokens to this file instead of stdout")
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode <file.mid>",
	Short: "Encodes a MIDI file into a token representation",
	Long:  `Encodes a MIDI file into a token representation`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		encode(args[0])
	},
}

func encode(path string) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}
	tokens, err := encodeMusic(midi.ToMusic(parsed))
	if err != nil {
		panic("Could not encode: " + err.Error())
	}
	dat, err := json.Marshal(tokens)
	if err != nil {
		panic("Could not marshal tokens: " + err.Error())
	}
	if encodeOut == "" {
		fmt.Println(string(dat))
		return
	}
	if err := os.WriteFile(encodeOut, dat, 0666); err != nil {
		panic("Could not write tokens: " + err.Error())
	}
}
