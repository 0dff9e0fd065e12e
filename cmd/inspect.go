package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/salu133445/musecodec/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <manifest.dat>",
	Short: "Inspects a batch manifest",
	Long:  `Inspects a batch manifest`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspect(args[0])
	},
}

func inspect(path string) {
	manifest := util.ReadBinaryOrPanic[map[string]string](path)
	keys := util.GetKeys(manifest)
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%v: %v\n", key, manifest[key])
	}
}
