package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"

	"github.com/jsphweid/melodex/compose"
	"github.com/jsphweid/melodex/midi"
)

var watchOut string

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "output path (defaults to the document name with .mid)")
}

var watchCmd = &cobra.Command{
	Use:   "watch [document]",
	Short: "Rebuilds the midi file whenever the document changes",
	Long:  `Rebuilds the midi file whenever the document changes`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 document arg...")
		}
		watch(args[0])
	},
}

// watch polls the document mtime; rebuilds are debounced so editors that
// write in bursts only trigger one.
func watch(docPath string) {
	out := watchOut
	if out == "" {
		out = replaceExt(docPath, ".mid")
	}

	rebuild := func() {
		c, err := compose.FromFile(docPath)
		if err != nil {
			fmt.Printf("Could not rebuild because: %v\n", err)
			return
		}
		if err := midi.WriteFile(c, out); err != nil {
			fmt.Printf("Could not rebuild because: %v\n", err)
			return
		}
		fmt.Printf("MIDI file saved: %v\n", out)
	}
	rebuild()

	debounced := debounce.New(500 * time.Millisecond)
	fmt.Printf("Watching %v\n", docPath)

	var lastMod time.Time
	if info, err := os.Stat(docPath); err == nil {
		lastMod = info.ModTime()
	}
	for {
		time.Sleep(300 * time.Millisecond)
		info, err := os.Stat(docPath)
		if err != nil {
			continue
		}
		if info.ModTime() != lastMod {
			lastMod = info.ModTime()
			debounced(rebuild)
		}
	}
}
