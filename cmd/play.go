package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/melodex/compose"
	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/model"
)

var playPort int
var playList bool

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVarP(&playPort, "port", "p", 0, "midi out port number")
	playCmd.Flags().BoolVarP(&playList, "list", "l", false, "list midi out ports and exit")
}

var playCmd = &cobra.Command{
	Use:   "play [document]",
	Short: "Plays a composition document on a midi out port",
	Long:  `Plays a composition document on a midi out port`,
	Run: func(cmd *cobra.Command, args []string) {
		if playList {
			listOutPorts()
			return
		}
		if len(args) != 1 {
			panic("Need 1 document arg...")
		}

		c, err := compose.FromFile(args[0])
		cobra.CheckErr(err)
		play(c, playPort)
	},
}

func listOutPorts() {
	defer midi.CloseDriver()

	ports := midi.GetOutPorts()
	if len(ports) == 0 {
		fmt.Println("no midi out ports")
		return
	}
	for _, out := range ports {
		fmt.Printf("%v: %v\n", out.Number(), out.String())
	}
}

type liveEvent struct {
	beat      float64
	isNoteOff bool
	msg       midi.Message
}

// play schedules every event against the wall clock, one sleep per
// distinct beat position.
func play(c *model.Composition, portNum int) {
	defer midi.CloseDriver()

	out, err := midi.OutPort(portNum)
	if err != nil {
		fmt.Println("can't find midi out port")
		return
	}

	send, err := midi.SendTo(out)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	var events []liveEvent
	for _, t := range c.Tracks {
		if t.Channel != constants.PercussionChannel {
			if err := send(midi.ProgramChange(t.Channel, t.Program)); err != nil {
				fmt.Printf("ERROR: %s\n", err)
				return
			}
		}
		for _, n := range t.Notes {
			events = append(events, liveEvent{beat: n.Start, msg: midi.NoteOn(t.Channel, n.Pitch, n.Velocity)})
			events = append(events, liveEvent{beat: n.End(), isNoteOff: true, msg: midi.NoteOff(t.Channel, n.Pitch)})
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].beat != events[j].beat {
			return events[i].beat < events[j].beat
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	fmt.Printf("Playing %v notes at %v bpm\n", len(events)/2, c.Tempo)

	beatDuration := time.Duration(float64(time.Minute) / float64(c.Tempo))
	start := time.Now()
	for _, ev := range events {
		at := time.Duration(ev.beat * float64(beatDuration))
		if wait := at - time.Since(start); wait > 0 {
			time.Sleep(wait)
		}
		if err := send(ev.msg); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			return
		}
	}
}
