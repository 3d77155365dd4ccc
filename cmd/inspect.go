package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/melodex/midi"
	"github.com/jsphweid/melodex/pitch"
	"github.com/jsphweid/melodex/util"
)

var (
	inspectTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	inspectLabel = lipgloss.NewStyle().Bold(true)
	inspectDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [midi file]",
	Short: "Inspects a midi file",
	Long:  `Inspects a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

type trackReport struct {
	name     string
	channel  uint8
	program  uint8
	hasProg  bool
	numNotes uint64
	lowest   uint8
	highest  uint8
	lastTick int64
}

func inspect(path string) {
	s, err := midi.ReadMidiFile(path)
	cobra.CheckErr(err)

	resolution := 960.0
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		resolution = float64(uint16(mt))
	}

	fmt.Println(inspectTitle.Render(path))
	fmt.Printf("%v %v\n", inspectLabel.Render("tracks:"), len(s.Tracks))

	var tempo float64
	var noteCounts []uint64
	var reports []trackReport

	for _, events := range s.Tracks {
		report := trackReport{lowest: 255}
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			var program uint8
			var name string
			var bpm float64
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				report.channel = channel
				report.numNotes++
				if key < report.lowest {
					report.lowest = key
				}
				if key > report.highest {
					report.highest = key
				}
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				report.lastTick = absTicks
			case event.Message.GetProgramChange(&channel, &program):
				report.program = program
				report.hasProg = true
			case event.Message.GetMetaTrackName(&name):
				report.name = name
			case event.Message.GetMetaTempo(&bpm):
				if tempo == 0 {
					tempo = bpm
				}
			}
		}
		noteCounts = append(noteCounts, report.numNotes)
		reports = append(reports, report)
	}

	if tempo > 0 {
		fmt.Printf("%v %v bpm\n", inspectLabel.Render("tempo:"), tempo)
	}

	for i, report := range reports {
		name := report.name
		if name == "" {
			name = inspectDim.Render("(unnamed)")
		}
		fmt.Printf("%v %v\n", inspectLabel.Render(fmt.Sprintf("track %v:", i+1)), name)
		if report.hasProg {
			fmt.Printf("  channel %v, program %v\n", report.channel, report.program)
		} else {
			fmt.Printf("  channel %v\n", report.channel)
		}
		if report.numNotes > 0 {
			fmt.Printf("  %v notes, %v to %v, %.1f beats\n",
				report.numNotes,
				pitch.Name(report.lowest), pitch.Name(report.highest),
				float64(report.lastTick)/resolution)
		} else {
			fmt.Println(inspectDim.Render("  no notes"))
		}
	}

	fmt.Printf("%v %v\n", inspectLabel.Render("total notes:"), util.Sum(noteCounts))
}
