package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/melodex/audio"
	"github.com/jsphweid/melodex/compose"
	"github.com/jsphweid/melodex/midi"
	"github.com/jsphweid/melodex/prompt"
	"github.com/jsphweid/melodex/util"
)

var (
	composeOut          string
	composeFromResponse string
	composeWav          bool
)

func init() {
	rootCmd.AddCommand(composeCmd)
	composeCmd.Flags().StringVarP(&composeOut, "out", "o", "", "output path (defaults to the document name with .mid)")
	composeCmd.Flags().StringVar(&composeFromResponse, "from-response", "", "extract the document from a raw LLM response file")
	composeCmd.Flags().BoolVar(&composeWav, "wav", false, "also bounce a wav preview")
}

var composeCmd = &cobra.Command{
	Use:   "compose [documents...]",
	Short: "Builds midi files from composition documents",
	Long:  `Builds midi files from composition documents`,
	Run: func(cmd *cobra.Command, args []string) {
		if composeFromResponse != "" {
			composeFromLLMResponse(composeFromResponse)
			return
		}
		if len(args) == 0 {
			panic("Need at least 1 document...")
		}
		if composeOut != "" && len(args) > 1 {
			panic("Cannot combine -o with multiple documents...")
		}
		for i, path := range args {
			fmt.Printf("Composing %v of %v: %v\n", i+1, len(args), path)
			composeOne(path)
		}
	},
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func composeOne(docPath string) {
	c, err := compose.FromFile(docPath)
	cobra.CheckErr(err)

	out := composeOut
	if out == "" {
		out = replaceExt(docPath, ".mid")
	}
	util.EnsureDir(filepath.Dir(out))
	cobra.CheckErr(midi.WriteFile(c, out))
	fmt.Printf("MIDI file saved: %v\n", out)

	if composeWav {
		wavPath := replaceExt(out, ".wav")
		cobra.CheckErr(audio.WriteWAV(c, wavPath))
		fmt.Printf("WAV preview saved: %v\n", wavPath)
	}
}

func composeFromLLMResponse(responsePath string) {
	data, err := os.ReadFile(responsePath)
	cobra.CheckErr(err)

	doc, ok := prompt.ExtractDocument(string(data))
	if !ok {
		panic("Could not find a valid <midi_spec> block in " + responsePath)
	}

	c, err := compose.FromJSON([]byte(doc))
	cobra.CheckErr(err)

	out := composeOut
	if out == "" {
		out = replaceExt(responsePath, ".mid")
	}
	cobra.CheckErr(midi.WriteFile(c, out))
	fmt.Printf("MIDI file saved: %v\n", out)
}
