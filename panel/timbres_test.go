package panel

import "testing"

func TestTimbreName(t *testing.T) {
	cases := []struct {
		program uint8
		want    string
	}{
		{0, "Acou Piano 1"},
		{32, "Fantasy"},
		{63, "Sitar"},
		{64, "Acou Bass 1"},
		{127, "Jungle Tune"},
	}
	for _, tc := range cases {
		if got := TimbreName(tc.program); got != tc.want {
			t.Errorf("TimbreName(%d) = %q, want %q", tc.program, got, tc.want)
		}
	}
}

func TestTimbreNamesFitTheBanner(t *testing.T) {
	// The banner has 18 cells after "<part>|"
	for i, name := range factoryTimbreNames {
		if name == "" {
			t.Errorf("timbre %d has no name", i)
		}
		if len(name) > LCDTextSize-2 {
			t.Errorf("timbre %d name %q longer than the banner field", i, name)
		}
	}
}

func TestPatches(t *testing.T) {
	p := NewPatches()

	if got := p.PatchName(0); got != "Acou Piano 1" {
		t.Errorf("default part 0 patch = %q", got)
	}

	p.SetProgram(3, 43)
	if got := p.Program(3); got != 43 {
		t.Errorf("Program(3) = %d, want 43", got)
	}
	if got := p.PatchName(3); got != "Echo Pan" {
		t.Errorf("PatchName(3) = %q, want %q", got, "Echo Pan")
	}

	// Out-of-range parts are ignored on write and blank on read
	p.SetProgram(NumParts, 1)
	if got := p.Program(NumParts); got != 0 {
		t.Errorf("Program(out of range) = %d, want 0", got)
	}

	p.Reset()
	if got := p.Program(3); got != defaultPrograms[3] {
		t.Errorf("Program(3) after reset = %d, want %d", got, defaultPrograms[3])
	}
}
