package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/circe/internal/config"
	"github.com/OpenTraceLab/circe/pkg/circuit"
)

func newTestShell() (*shell, *bytes.Buffer) {
	var out bytes.Buffer
	return &shell{c: circuit.New(nil), cfg: config.Default(), out: &out}, &out
}

func TestShellSession(t *testing.T) {
	s, out := newTestShell()

	script := `
# place a resistor and wire its top port up to a label
place r
value 10k
wire
move 0 3
click
move 0 6
click
esc
label VDD
move 0 4.9
netlist
state
select 0 6
bogus
quit
place c
`
	if err := s.run(strings.NewReader(script)); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"net: VDD\n",
		"R1 VDD n1 10k\n",
		"idle at (0,5)\n",
		"selected label#1\n",
		`error: unknown command "bogus"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if s.c.Devices().Len() != 1 {
		t.Errorf("commands after quit must not run")
	}
}

func TestShellEditSelection(t *testing.T) {
	s, out := newTestShell()
	script := `
place r
copy 10 0
select 10 0
delete
select 10 0
`
	if err := s.run(strings.NewReader(script)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if s.c.Devices().Len() != 1 {
		t.Errorf("devices = %d, want 1 after copy and delete", s.c.Devices().Len())
	}
	if !strings.Contains(out.String(), "nothing selected") {
		t.Errorf("deleted copy should not be selectable:\n%s", out.String())
	}
}

func TestShellExport(t *testing.T) {
	s, out := newTestShell()
	path := filepath.Join(t.TempDir(), "out.cir")

	if err := s.run(strings.NewReader("place v\nexport " + path + "\n")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("netlist not written: %v", err)
	}
	if !strings.Contains(string(data), "V1 n2 n1 3.3\n") {
		t.Errorf("unexpected netlist:\n%s", data)
	}
	if !strings.Contains(out.String(), "Netlist written to") {
		t.Errorf("missing confirmation:\n%s", out.String())
	}
}

func TestShellUsageErrors(t *testing.T) {
	s, out := newTestShell()
	input := "move 1\nplace\nplace q\nvalue 1k\nselect x y\nop\n"
	if err := s.run(strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), "error:"); n != 6 {
		t.Errorf("got %d errors, want 6:\n%s", n, out.String())
	}
}
