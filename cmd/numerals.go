package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/randprog/progression"
	"github.com/jsphweid/randprog/theory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(numeralsCmd)
}

var numeralsCmd = &cobra.Command{
	Use:   "numerals <key>",
	Short: "Lists the diatonic chords of a key",
	Long:  `Lists the seven diatonic triads of a key with their roman numerals.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Numerals(cmd.OutOrStdout(), args[0])
	},
}

func Numerals(w io.Writer, key string) error {
	k, err := theory.ParseKey(key)
	if err != nil {
		return err
	}
	chords, err := progression.DeriveNumerals(theory.Standard{}, k)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%v\n", k)
	for _, c := range chords {
		var pitches []string
		for _, p := range c.Pitches {
			pitches = append(pitches, p.String())
		}
		name, err := theory.ChordNameFor(c.Pitches)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-5v %-14v %v\n", c.Figure, strings.Join(pitches, " "), name)
	}
	return nil
}
