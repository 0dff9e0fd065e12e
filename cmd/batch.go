package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/salu133445/musecodec/midi"
	"github.com/salu133445/musecodec/util"
)

func init() {
	addReprFlags(batchCmd)
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir> [maxNum]",
	Short: "Encodes every MIDI file under a directory",
	Long:  `Encodes every MIDI file under a directory into uuid-named token files plus a manifest`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 2 {
			arg2, err := strconv.Atoi(args[1])
			if err != nil {
				panic(err)
			}
			maxNum = arg2
		}
		batch(args[0], maxNum)
	},
}

func batch(dir string, maxNum int) {
	util.RecreateOutputDir()
	paths := util.GatherAllMidiPaths(dir, maxNum)
	manifest := make(map[string]string)

	for i, path := range paths {
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(paths))
		parsed, err := midi.ReadMidiFile(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		tokens, err := encodeMusic(midi.ToMusic(parsed))
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		dat, err := json.Marshal(tokens)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		name := uuid.New().String() + ".json"
		if err := os.WriteFile(filepath.Join(util.GetOutDir(), name), dat, 0666); err != nil {
			panic("Could not write token file: " + err.Error())
		}
		manifest[name] = path
	}

	util.CreateBinary(filepath.Join(util.GetOutDir(), "manifest.dat"), manifest)
}
