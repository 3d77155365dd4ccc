package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "melodex",
	Short: "Declarative music composition",
	Long:  `Turns declarative composition documents into midi files, wav previews and sheet music.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
