package constants

const RandomKey = "random"

const DefaultLength = 4

// bounds of a progression, tonic included. There are only six chords
// besides the tonic to choose from.
const MinLength = 1
const MaxLength = 6

const TextFilename = "progression.txt"
const MidiFilename = "progression.mid"

const TicksPerQuarter = 960
const Tempo = 120
const Velocity = 90

// every chord lasts one 4/4 bar and the whole progression is played this many times
const BeatsPerChord = 4
const Loops = 4

const ChordOctave = 4
const BassOctave = 3

// arpeggio bass notes are dropped by octaves until they sit below this
const BassThreshold = 48 // C3
