package panel

// NumParts is the number of melodic parts (the rhythm part is tracked
// separately and has no program-change banner).
const NumParts = 8

// factoryTimbreNames are the 128 preset timbres, group A then group B,
// as printed on the unit's patch chart.
var factoryTimbreNames = [128]string{
	"Acou Piano 1", "Acou Piano 2", "Acou Piano 3", "Elec Piano 1",
	"Elec Piano 2", "Elec Piano 3", "Elec Piano 4", "Honkytonk",
	"Elec Org 1", "Elec Org 2", "Elec Org 3", "Elec Org 4",
	"Pipe Org 1", "Pipe Org 2", "Pipe Org 3", "Accordion",
	"Harpsi 1", "Harpsi 2", "Harpsi 3", "Clavi 1",
	"Clavi 2", "Clavi 3", "Celesta 1", "Celesta 2",
	"Syn Brass 1", "Syn Brass 2", "Syn Brass 3", "Syn Brass 4",
	"Syn Bass 1", "Syn Bass 2", "Syn Bass 3", "Syn Bass 4",
	"Fantasy", "Harmo Pan", "Chorale", "Glasses",
	"Soundtrack", "Atmosphere", "Warm Bell", "Funny Vox",
	"Echo Bell", "Ice Rain", "Oboe 2001", "Echo Pan",
	"Doctor Solo", "School Daze", "Bell Singer", "Square Wave",
	"Str Sect 1", "Str Sect 2", "Str Sect 3", "Pizzicato",
	"Violin 1", "Violin 2", "Cello 1", "Cello 2",
	"Contrabass", "Harp 1", "Harp 2", "Guitar 1",
	"Guitar 2", "Elec Gtr 1", "Elec Gtr 2", "Sitar",
	"Acou Bass 1", "Acou Bass 2", "Elec Bass 1", "Elec Bass 2",
	"Slap Bass 1", "Slap Bass 2", "Fretless 1", "Fretless 2",
	"Flute 1", "Flute 2", "Piccolo 1", "Piccolo 2",
	"Recorder", "Pan Pipes", "Sax 1", "Sax 2",
	"Sax 3", "Sax 4", "Clarinet 1", "Clarinet 2",
	"Oboe", "Engl Horn", "Bassoon", "Harmonica",
	"Trumpet 1", "Trumpet 2", "Trombone 1", "Trombone 2",
	"Fr Horn 1", "Fr Horn 2", "Tuba", "Brs Sect 1",
	"Brs Sect 2", "Vibe 1", "Vibe 2", "Syn Mallet",
	"Wind Bell", "Glock", "Tube Bell", "Xylophone",
	"Marimba", "Koto", "Sho", "Shakuhachi",
	"Whistle 1", "Whistle 2", "Bottleblow", "Breathpipe",
	"Timpani", "Melodic Tom", "Deep Snare", "Elec Perc 1",
	"Elec Perc 2", "Taiko", "Taiko Rim", "Cymbal",
	"Castanets", "Triangle", "Orche Hit", "Telephone",
	"Bird Tweet", "One Note Jam", "Water Bells", "Jungle Tune",
}

// TimbreName returns the factory name for a program number (0..127).
func TimbreName(program uint8) string {
	return factoryTimbreNames[program&0x7F]
}

// Patches tracks which program each part currently plays and serves patch
// names to the program-change banner. Parts power up on the first eight
// patches of the chart.
type Patches struct {
	programs [NumParts]uint8
}

var defaultPrograms = [NumParts]uint8{0, 1, 2, 3, 4, 5, 6, 7}

// NewPatches returns part assignments in their power-on state.
func NewPatches() *Patches {
	p := &Patches{}
	p.Reset()
	return p
}

// Reset restores the power-on program assignments.
func (p *Patches) Reset() {
	p.programs = defaultPrograms
}

// SetProgram records a program change for a part. Out-of-range parts are
// ignored; the caller maps MIDI channels to parts before calling.
func (p *Patches) SetProgram(partIndex, program uint8) {
	if partIndex < NumParts {
		p.programs[partIndex] = program & 0x7F
	}
}

// Program returns the program currently assigned to a part.
func (p *Patches) Program(partIndex uint8) uint8 {
	if partIndex < NumParts {
		return p.programs[partIndex]
	}
	return 0
}

// PatchName implements PatchNameSource.
func (p *Patches) PatchName(partIndex uint8) string {
	return TimbreName(p.Program(partIndex))
}
