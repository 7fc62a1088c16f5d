// Package seed loads the makerspace catalog from YAML. The embedded files
// under data/ are the single source of equipment, quiz and location data.
package seed

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cumaker/makerspace/internal/makerspace"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	equipmentFile = "equipment.yaml"
	quizzesFile   = "quizzes.yaml"
	sitesFile     = "sites.yaml"
	printersFile  = "printers.yaml"
	workshopsFile = "workshops.yaml"
)

// Default loads the embedded catalog.
func Default() (*makerspace.Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// FromDir loads the catalog from dir, or the embedded catalog when dir is
// empty.
func FromDir(dir string) (*makerspace.Catalog, error) {
	if dir == "" {
		return Default()
	}
	return Load(os.DirFS(dir))
}

// Load decodes and validates the catalog files in fsys. Sites, printers and
// workshops are optional; equipment and quizzes are not. Any bad value fails
// the whole load with makerspace.ErrInvalidConfiguration.
func Load(fsys fs.FS) (*makerspace.Catalog, error) {
	var eq equipmentFileDoc
	if err := decodeFile(fsys, equipmentFile, &eq, true); err != nil {
		return nil, err
	}
	var qz quizzesFileDoc
	if err := decodeFile(fsys, quizzesFile, &qz, true); err != nil {
		return nil, err
	}
	var st sitesFileDoc
	if err := decodeFile(fsys, sitesFile, &st, false); err != nil {
		return nil, err
	}
	var pr printersFileDoc
	if err := decodeFile(fsys, printersFile, &pr, false); err != nil {
		return nil, err
	}
	var ws workshopsFileDoc
	if err := decodeFile(fsys, workshopsFile, &ws, false); err != nil {
		return nil, err
	}

	items := make([]makerspace.Equipment, 0, len(eq.Equipment))
	for _, d := range eq.Equipment {
		e, err := d.toEquipment()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", equipmentFile, err)
		}
		items = append(items, e)
	}
	reg, err := makerspace.NewRegistry(items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", equipmentFile, err)
	}

	quizzes := make([]makerspace.Quiz, 0, len(qz.Tracks))
	for _, d := range qz.Tracks {
		quizzes = append(quizzes, d.toQuiz())
	}

	sites := make([]makerspace.Site, 0, len(st.Sites))
	for _, d := range st.Sites {
		sites = append(sites, d.toSite())
	}

	printers := make([]makerspace.Printer, 0, len(pr.Printers))
	for _, d := range pr.Printers {
		printers = append(printers, d.toPrinter())
	}

	workshops := make([]makerspace.Workshop, 0, len(ws.Workshops))
	for _, d := range ws.Workshops {
		w, err := d.toWorkshop()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", workshopsFile, err)
		}
		workshops = append(workshops, w)
	}

	src := makerspace.CatalogSource{
		Quizzes:   quizzes,
		Sites:     sites,
		Printers:  printers,
		Workshops: workshops,
	}
	if eq.DefaultDetails != nil {
		d := eq.DefaultDetails.toDetails()
		src.DefaultDetails = &d
	}
	return makerspace.NewCatalog(reg, src)
}

func decodeFile(fsys fs.FS, name string, dest any, required bool) error {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decoding %s: %v", makerspace.ErrInvalidConfiguration, name, err)
	}
	return nil
}
