package cmd

import (
	"math/rand"
	"os"
	"time"

	"github.com/jsphweid/randprog/constants"
	"github.com/jsphweid/randprog/file"
	"github.com/jsphweid/randprog/logging"
	"github.com/jsphweid/randprog/midi"
	"github.com/jsphweid/randprog/model"
	"github.com/jsphweid/randprog/progression"
	"github.com/jsphweid/randprog/report"
	"github.com/jsphweid/randprog/theory"
	"github.com/jsphweid/randprog/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var generateOpts model.Options
var generateMode string

func init() {
	flags := generateCmd.Flags()
	flags.StringVarP(&generateOpts.Key, "key", "k", constants.RandomKey, `key such as "C", "F#" or "Am", or "random"`)
	flags.IntVarP(&generateOpts.Length, "length", "l", constants.DefaultLength, "number of chords, tonic included (1-6)")
	flags.StringVarP(&generateMode, "mode", "m", string(model.RenderBlock), `MIDI style, "1" block chords or "2" arpeggios`)
	flags.StringVarP(&generateOpts.OutDir, "out", "o", ".", "output directory")
	flags.IntVarP(&generateOpts.Count, "count", "n", 1, "number of progressions to generate")
	flags.Int64Var(&generateOpts.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a random progression",
	Long: `Generates a random progression on a key and writes progression.txt
and progression.mid. With --count above 1 every progression gets its own
directory under --out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := model.ParseRenderMode(generateMode)
		if err != nil {
			return err
		}
		generateOpts.Mode = mode
		_, err = Generate(generateOpts)
		return err
	},
}

func validate(opts model.Options) error {
	if opts.Length < constants.MinLength || opts.Length > constants.MaxLength {
		return errors.Wrapf(progression.ErrInvalidLength, "got %d", opts.Length)
	}
	if _, err := model.ParseRenderMode(string(opts.Mode)); err != nil {
		return err
	}
	if opts.Count < 1 {
		return errors.Errorf("count must be at least 1, got %d", opts.Count)
	}
	return nil
}

// Generate runs the whole pipeline: pick or parse the key, sample a
// progression and write both renderings, once per output directory.
func Generate(opts model.Options) ([]model.Result, error) {
	if err := validate(opts); err != nil {
		return nil, err
	}

	var fixedKey *theory.Key
	if opts.Key != constants.RandomKey {
		k, err := theory.ParseKey(opts.Key)
		if err != nil {
			return nil, err
		}
		fixedKey = &k
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	logging.Debug("seeded generator", logging.Fields{"seed": seed})

	var res []model.Result
	for _, paths := range file.CreateBatchPaths(opts.OutDir, opts.Count) {
		var k theory.Key
		if fixedKey != nil {
			k = *fixedKey
		} else {
			k = progression.RandomKey(r)
		}

		p, err := progression.Sample(r, theory.Standard{}, k, opts.Length)
		if err != nil {
			return res, err
		}
		if err := write(p, opts.Mode, paths); err != nil {
			return res, err
		}

		logging.Info("wrote progression", logging.Fields{
			"key":     p.Key,
			"figures": p.Figures(),
			"dir":     paths.Dir,
		})
		res = append(res, model.Result{Progression: p, Paths: paths})
	}
	return res, nil
}

func write(p model.Progression, mode model.RenderMode, paths model.OutputPaths) error {
	if err := util.EnsureDir(paths.Dir); err != nil {
		return err
	}

	err := util.WriteFile(paths.Text, func(f *os.File) error {
		return report.Write(f, p, theory.Standard{})
	})
	if err != nil {
		return err
	}

	s, err := midi.Build(p, mode)
	if err != nil {
		return err
	}
	return midi.WriteMidiFile(paths.Midi, s)
}
