package source

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/parkdata/geoconvert/internal/pipeline"
)

func TestOpenCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lots.csv")
	content := "uid,lat,lon,address\n" +
		"P-1,48.78,9.18,Marktplatz 1\n" +
		"P-2,48.80,9.20,\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := OpenCSV(path)
	if err != nil {
		t.Fatalf("OpenCSV() error = %v", err)
	}

	if want := []string{"uid", "lat", "lon", "address"}; !reflect.DeepEqual(src.Columns(), want) {
		t.Errorf("Columns() = %v; want %v", src.Columns(), want)
	}

	rows := src.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows; want 2", len(rows))
	}
	if rows[0].Num != 1 || rows[1].Num != 2 {
		t.Errorf("row numbers = %d, %d; want 1, 2", rows[0].Num, rows[1].Num)
	}
	if rows[0].Fields["uid"] != "P-1" || rows[0].Fields["address"] != "Marktplatz 1" {
		t.Errorf("row 1 fields = %v", rows[0].Fields)
	}
	if rows[1].Fields["address"] != "" {
		t.Errorf("blank cell = %q; want empty string", rows[1].Fields["address"])
	}
}

func TestOpenCSVMissingFile(t *testing.T) {
	_, err := OpenCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, pipeline.ErrInputNotFound) {
		t.Fatalf("OpenCSV() error = %v; want ErrInputNotFound", err)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	src, err := ReadCSV(strings.NewReader("uid,lat,lon\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(src.Rows()) != 0 {
		t.Errorf("got %d rows; want 0", len(src.Rows()))
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	if !errors.Is(err, pipeline.ErrSchemaMismatch) {
		t.Fatalf("ReadCSV() error = %v; want ErrSchemaMismatch", err)
	}
}

func TestReadCSVShortRows(t *testing.T) {
	src, err := ReadCSV(strings.NewReader("uid,lat,lon\nP-1,48.78\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	fields := src.Rows()[0].Fields
	if fields["uid"] != "P-1" || fields["lat"] != "48.78" {
		t.Errorf("fields = %v", fields)
	}
	if _, ok := fields["lon"]; ok {
		t.Errorf("lon should be absent for a short row, got %v", fields)
	}
}
