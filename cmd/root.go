package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "musecodec",
	Short: "Symbolic music representation codecs",
	Long:  `Converts MIDI files to the note, pitch, piano-roll and event token representations and back.`,
}

func Execute() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	cobra.CheckErr(rootCmd.Execute())
}
