package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/melodex/compose"
	"github.com/jsphweid/melodex/notation"
)

var (
	notationTitle    string
	notationComposer string
	notationOut      string
)

func init() {
	rootCmd.AddCommand(notationCmd)
	notationCmd.Flags().StringVar(&notationTitle, "title", "Composition", "title for the sheet header")
	notationCmd.Flags().StringVar(&notationComposer, "composer", "melodex", "composer for the sheet header")
	notationCmd.Flags().StringVarP(&notationOut, "out", "o", "", "output path (defaults to the document name with .ly)")
}

var notationCmd = &cobra.Command{
	Use:   "notation [document]",
	Short: "Writes lilypond sheet music from a composition document",
	Long:  `Writes lilypond sheet music from a composition document`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 document arg...")
		}

		c, err := compose.FromFile(args[0])
		cobra.CheckErr(err)

		out := notationOut
		if out == "" {
			out = replaceExt(args[0], ".ly")
		}
		g := notation.FromComposition(c, notationTitle, notationComposer)
		cobra.CheckErr(g.WriteFile(out))
		fmt.Printf("LilyPond file saved: %v\n", out)
	},
}
