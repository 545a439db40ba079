package model

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

type fakePackage struct {
	ftype string
	fname string
	unit  int
	dir   string
}

func (p *fakePackage) Name() string     { return p.ftype }
func (p *fakePackage) FileType() string { return p.ftype }
func (p *fakePackage) UnitNumber() int  { return p.unit }
func (p *fakePackage) FileName() string { return p.fname }

func (p *fakePackage) WriteFile() error {
	return os.WriteFile(filepath.Join(p.dir, p.fname), []byte("END\n"), 0644)
}

func TestNewDefaults(t *testing.T) {
	m := New("aquifer")

	if m.Name() != "aquifer" {
		t.Errorf("expected name aquifer, got %s", m.Name())
	}
	if m.Version() != MFUSG {
		t.Errorf("expected default version mfusg, got %s", m.Version())
	}
	if m.Workspace() != "." {
		t.Errorf("expected default workspace '.', got %s", m.Workspace())
	}
}

func TestAddRejectsDuplicateFileType(t *testing.T) {
	m := New("test")

	if err := m.Add(&fakePackage{ftype: "PKS"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := m.Add(&fakePackage{ftype: "PKS"}); err == nil {
		t.Error("expected error for duplicate file type")
	}
	if len(m.Packages()) != 1 {
		t.Errorf("expected 1 package, got %d", len(m.Packages()))
	}
}

func TestPackageLookup(t *testing.T) {
	m := New("test")
	p := &fakePackage{ftype: "PKS"}
	if err := m.Add(p); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got, ok := m.Package("pks")
	if !ok {
		t.Fatal("expected case-insensitive lookup to succeed")
	}
	if got != Package(p) {
		t.Error("lookup returned a different package")
	}

	if _, ok := m.Package("DIS"); ok {
		t.Error("expected lookup miss for unregistered type")
	}
}

func TestDefaultFileName(t *testing.T) {
	m := New("aquifer")
	if got := m.DefaultFileName("pks"); got != "aquifer.pks" {
		t.Errorf("expected aquifer.pks, got %s", got)
	}
}

func TestHeading(t *testing.T) {
	m := New("test", WithVersion(MF2005))
	got := m.Heading(&fakePackage{ftype: "PKS"})
	want := "# PKS package for mf2005 generated by gwsim"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWriteInput(t *testing.T) {
	dir := t.TempDir()
	m := New("test", WithWorkspace(dir))

	for _, ftype := range []string{"DIS", "PKS"} {
		p := &fakePackage{ftype: ftype, fname: "test." + ftype, dir: dir}
		if err := m.Add(p); err != nil {
			t.Fatalf("add %s failed: %v", ftype, err)
		}
	}

	if err := m.WriteInput(); err != nil {
		t.Fatalf("write input failed: %v", err)
	}

	for _, fname := range []string{"test.DIS", "test.PKS"} {
		if _, err := os.Stat(filepath.Join(dir, fname)); os.IsNotExist(err) {
			t.Errorf("%s not written", fname)
		}
	}
}

type failingPackage struct{ fakePackage }

func (p *failingPackage) WriteFile() error { return fmt.Errorf("disk full") }

func TestWriteInputPropagatesError(t *testing.T) {
	m := New("test")
	p := &failingPackage{fakePackage{ftype: "PKS"}}
	if err := m.Add(p); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := m.WriteInput(); err == nil {
		t.Error("expected write error to propagate")
	}
}

func TestExtUnitDictByFileType(t *testing.T) {
	dict := ExtUnitDict{
		27: {FileType: "PKS", FileName: "run.pks"},
		11: {FileType: "DIS", FileName: "run.dis"},
	}

	unit, fname, ok := dict.ByFileType("pks")
	if !ok {
		t.Fatal("expected case-insensitive match")
	}
	if unit != 27 {
		t.Errorf("expected unit 27, got %d", unit)
	}
	if fname != "run.pks" {
		t.Errorf("expected run.pks, got %s", fname)
	}

	if _, _, ok := dict.ByFileType("BAS"); ok {
		t.Error("expected miss for undeclared file type")
	}
}
