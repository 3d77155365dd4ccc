package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsphweid/melodex/publish"
	"github.com/jsphweid/melodex/util"
)

var publishPrefix string

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().StringVar(&publishPrefix, "prefix", "", "key prefix inside the bucket (defaults to a fresh uuid)")
}

var publishCmd = &cobra.Command{
	Use:   "publish [files or dirs...]",
	Short: "Uploads rendered files to the publish bucket",
	Long:  `Uploads rendered files to the publish bucket`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need at least 1 file or dir...")
		}

		var paths []string
		for _, arg := range args {
			info, err := os.Stat(arg)
			cobra.CheckErr(err)
			if info.IsDir() {
				paths = append(paths, util.GatherAllMidiPaths(arg, 0)...)
			} else {
				paths = append(paths, arg)
			}
		}
		if len(paths) == 0 {
			panic("No midi files found...")
		}

		if publishPrefix == "" {
			publishPrefix = uuid.New().String()
			fmt.Printf("Publishing under %v\n", publishPrefix)
		}
		keys := publish.UploadAll(paths, publishPrefix)
		fmt.Printf("Published %v files\n", len(keys))
	},
}
