package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	addReprFlags(vocabCmd)
	rootCmd.AddCommand(vocabCmd)
}

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Prints the multitrack vocabulary for the given flags",
	Long:  `Prints the multitrack vocabulary for the given flags`,
	Run: func(cmd *cobra.Command, args []string) {
		printVocab()
	},
}

func printVocab() {
	codec, err := newMultitrackCodec()
	if err != nil {
		panic("Could not build codec: " + err.Error())
	}
	for id, e := range codec.Vocab().Events() {
		fmt.Printf("%5d %s\n", id, e)
	}
}
