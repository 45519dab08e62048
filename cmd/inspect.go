package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/randprog/chord"
	"github.com/jsphweid/randprog/logging"
	"github.com/jsphweid/randprog/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a midi file",
	Long:  `Prints the chords sounding at each note onset of a midi file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Inspect(cmd.OutOrStdout(), args[0])
	},
}

// Inspect lists every chord started by a note on. Repeated strikes of the
// same chord are printed once.
func Inspect(w io.Writer, path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	chords, err := chord.GetChords(s)
	if err != nil {
		return err
	}

	var lastKey string
	for _, c := range chords {
		if !c.FormedByNoteOn {
			continue
		}
		key := chord.CreateChordKey(c.Notes)
		if key == lastKey {
			continue
		}
		lastKey = key

		name, err := chord.Name(c.Notes)
		if err != nil {
			logging.Debug("unnamed chord", logging.Fields{"notes": key, "reason": err})
			name = "?"
		}
		fmt.Fprintf(w, "%8d  %-14v %v\n", c.AbsTickOffset, key, name)
	}
	return nil
}
