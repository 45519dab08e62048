// Package report writes the plain text description of a progression.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/randprog/model"
	"github.com/jsphweid/randprog/theory"
	"github.com/pkg/errors"
)

// Write prints the key, the figures joined by " - ", then one
// "<figure> : <chord name>" line per chord.
func Write(w io.Writer, p model.Progression, t theory.Theory) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%v\n", p.Key)
	fmt.Fprintf(&b, "%v\n", strings.Join(p.Figures(), " - "))
	for _, c := range p.Chords {
		name, err := t.ChordNameFor(c.Pitches)
		if err != nil {
			return errors.Wrapf(err, "could not name %v", c.Figure)
		}
		fmt.Fprintf(&b, "%v : %v\n", c.Figure, name)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
