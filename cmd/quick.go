package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/genre"
	"github.com/jsphweid/melodex/midi"
	"github.com/jsphweid/melodex/util"
)

var (
	quickKey   string
	quickTempo int
	quickOut   string
)

func init() {
	rootCmd.AddCommand(quickCmd)
	quickCmd.Flags().StringVarP(&quickKey, "key", "k", "C", "root note of the composition")
	quickCmd.Flags().IntVarP(&quickTempo, "tempo", "t", 0, "tempo in bpm (0 picks the genre default)")
	quickCmd.Flags().StringVarP(&quickOut, "out", "o", "", "output path (defaults to <genre>.mid in the output dir)")
}

var quickCmd = &cobra.Command{
	Use:   "quick [genre]",
	Short: "Generates a composition from a genre template",
	Long:  `Generates a composition from a genre template (` + strings.Join(genre.Names(), ", ") + `)`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 genre arg...")
		}

		c, err := genre.Quick(args[0], quickKey, quickTempo)
		cobra.CheckErr(err)

		out := quickOut
		if out == "" {
			out = filepath.Join(constants.GetOutputDir(), args[0]+".mid")
		}
		util.EnsureDir(filepath.Dir(out))
		cobra.CheckErr(midi.WriteFile(c, out))
		fmt.Printf("MIDI file saved: %v\n", out)
	},
}
