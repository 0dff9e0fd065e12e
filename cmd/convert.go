package cmd

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/salu133445/musecodec/midi"
	"github.com/salu133445/musecodec/model"
	"github.com/salu133445/musecodec/serial"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Converts between midi, json and yaml by file extension",
	Long:  `Converts between midi, json and yaml by file extension`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := convert(args[0], args[1]); err != nil {
			panic(err)
		}
	},
}

func convert(in string, out string) error {
	m, err := loadMusic(in)
	if err != nil {
		return err
	}
	return saveMusic(out, m)
}

func loadMusic(path string) (*model.Music, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi":
		parsed, err := midi.ReadMidiFile(path)
		if err != nil {
			return nil, err
		}
		return midi.ToMusic(parsed), nil
	case ".json":
		return serial.LoadJSON(path)
	case ".yaml", ".yml":
		return serial.LoadYAML(path)
	}
	return nil, errors.Errorf("unsupported input extension on %q", path)
}

func saveMusic(path string, m *model.Music) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi":
		return midi.WriteMidiFile(path, m)
	case ".json":
		return serial.SaveJSON(path, m)
	case ".yaml", ".yml":
		return serial.SaveYAML(path, m)
	}
	return errors.Errorf("unsupported output extension on %q", path)
}
