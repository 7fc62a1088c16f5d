package makerspace

import (
	"fmt"
	"slices"
)

// Site is one makerspace location with its opening hours.
type Site struct {
	ID          Location
	Name        string
	ShortName   string
	Address     string
	MapURL      string
	Description string
	Phone       string
	Email       string
	Hours       []Hours
	Equipment   []string
}

func (s Site) clone() Site {
	s.Hours = slices.Clone(s.Hours)
	s.Equipment = slices.Clone(s.Equipment)
	return s
}

type Hours struct {
	Day  string
	Time string
}

type PrinterStatus string

const (
	PrinterAvailable PrinterStatus = "available"
	PrinterPrinting  PrinterStatus = "printing"
	PrinterFinished  PrinterStatus = "finished"
	PrinterOffline   PrinterStatus = "offline"
)

func ParsePrinterStatus(s string) (PrinterStatus, error) {
	switch st := PrinterStatus(s); st {
	case PrinterAvailable, PrinterPrinting, PrinterFinished, PrinterOffline:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown printer status %q", ErrInvalidConfiguration, s)
}

func (s PrinterStatus) Label() string {
	switch s {
	case PrinterAvailable:
		return "Idle"
	case PrinterPrinting:
		return "Printing"
	case PrinterFinished:
		return "Finished"
	case PrinterOffline:
		return "Offline"
	}
	return ""
}

// Printer is a static snapshot of one printer in the print farm.
type Printer struct {
	ID            int
	Name          string
	Location      Location
	Status        PrinterStatus
	Progress      int
	TimeRemaining string
	CurrentJob    string
}

// Catalog bundles the equipment registry with the quiz tracks and the
// informational tables served alongside it. It is read-only once built:
// every accessor hands out copies.
type Catalog struct {
	registry       *Registry
	quizzes        map[string]Quiz
	trackKeys      []string
	sites          []Site
	printers       []Printer
	workshops      []Workshop
	defaultDetails *Details
}

// CatalogSource is everything besides equipment that a catalog is built from.
type CatalogSource struct {
	Quizzes   []Quiz
	Sites     []Site
	Printers  []Printer
	Workshops []Workshop
	// DefaultDetails stands in for equipment without details of its own.
	DefaultDetails *Details
}

// NewCatalog validates quizzes and checks every equipment record that needs
// a quiz points at an existing track.
func NewCatalog(reg *Registry, src CatalogSource) (*Catalog, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: catalog needs a registry", ErrInvalidConfiguration)
	}
	c := &Catalog{
		registry: reg,
		quizzes:  make(map[string]Quiz, len(src.Quizzes)),
	}
	for _, q := range src.Quizzes {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.quizzes[q.TrackID]; dup {
			return nil, fmt.Errorf("%w: duplicate track %q", ErrInvalidConfiguration, q.TrackID)
		}
		c.quizzes[q.TrackID] = q.clone()
		c.trackKeys = append(c.trackKeys, q.TrackID)
	}
	for _, e := range reg.All() {
		if e.TrainingRequired == TrainingWalkUp {
			continue
		}
		if _, ok := c.quizzes[e.TrackID]; !ok {
			return nil, fmt.Errorf("%w: equipment %q: unknown track %q", ErrInvalidConfiguration, e.ID, e.TrackID)
		}
	}
	for _, p := range src.Printers {
		if _, err := ParsePrinterStatus(string(p.Status)); err != nil {
			return nil, fmt.Errorf("printer %d: %w", p.ID, err)
		}
		if _, err := ParseLocation(string(p.Location)); err != nil {
			return nil, fmt.Errorf("printer %d: %w", p.ID, err)
		}
		c.printers = append(c.printers, p)
	}
	for _, s := range src.Sites {
		if _, err := ParseLocation(string(s.ID)); err != nil {
			return nil, fmt.Errorf("site %q: %w", s.Name, err)
		}
		c.sites = append(c.sites, s.clone())
	}
	seen := make(map[string]bool, len(src.Workshops))
	for _, w := range src.Workshops {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		if seen[w.ID] {
			return nil, fmt.Errorf("%w: duplicate workshop id %q", ErrInvalidConfiguration, w.ID)
		}
		seen[w.ID] = true
		if _, ok := c.quizzes[w.TrackID]; w.TrackID != "" && !ok {
			return nil, fmt.Errorf("%w: workshop %q: unknown track %q", ErrInvalidConfiguration, w.ID, w.TrackID)
		}
		c.workshops = append(c.workshops, w)
	}
	if src.DefaultDetails != nil {
		d := src.DefaultDetails.clone()
		c.defaultDetails = &d
	}
	return c, nil
}

func (c *Catalog) Registry() *Registry { return c.registry }

func (c *Catalog) Quiz(trackID string) (Quiz, error) {
	q, ok := c.quizzes[trackID]
	if !ok {
		return Quiz{}, fmt.Errorf("track %q: %w", trackID, ErrNotFound)
	}
	return q.clone(), nil
}

// QuizFor returns the track an equipment record trains on. Walk-up
// equipment has none and yields ErrNotFound.
func (c *Catalog) QuizFor(equipmentID string) (Quiz, error) {
	e, err := c.registry.Get(equipmentID)
	if err != nil {
		return Quiz{}, err
	}
	if e.TrackID == "" {
		return Quiz{}, fmt.Errorf("equipment %q has no quiz: %w", equipmentID, ErrNotFound)
	}
	return c.Quiz(e.TrackID)
}

// DetailsFor returns the equipment's own details, falling back to the
// catalog default. ok is false when neither exists.
func (c *Catalog) DetailsFor(e Equipment) (d Details, ok bool) {
	switch {
	case e.Details != nil:
		return e.Details.clone(), true
	case c.defaultDetails != nil:
		return c.defaultDetails.clone(), true
	}
	return Details{}, false
}

// Tracks returns the quizzes in the order they were loaded.
func (c *Catalog) Tracks() []Quiz {
	out := make([]Quiz, 0, len(c.trackKeys))
	for _, k := range c.trackKeys {
		out = append(out, c.quizzes[k].clone())
	}
	return out
}

// EquipmentOnTrack lists the ids of equipment trained by trackID.
func (c *Catalog) EquipmentOnTrack(trackID string) []string {
	var ids []string
	for _, e := range c.registry.items {
		if e.TrackID == trackID {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func (c *Catalog) Sites() []Site {
	out := make([]Site, 0, len(c.sites))
	for _, s := range c.sites {
		out = append(out, s.clone())
	}
	return out
}

// PrintersAt returns printers at loc, or all printers when loc is empty.
func (c *Catalog) PrintersAt(loc Location) []Printer {
	out := []Printer{}
	for _, p := range c.printers {
		if loc == "" || p.Location == loc {
			out = append(out, p)
		}
	}
	return out
}

// Workshops returns the scheduled sessions matching f, in schedule order.
func (c *Catalog) Workshops(f WorkshopFilter) []Workshop {
	out := []Workshop{}
	for _, w := range c.workshops {
		if f.Past != nil && w.Past != *f.Past {
			continue
		}
		if f.TrackID != "" && w.TrackID != f.TrackID {
			continue
		}
		out = append(out, w)
	}
	return out
}

// SessionsFor lists upcoming in-person sessions for a track, full or not.
func (c *Catalog) SessionsFor(trackID string) []Workshop {
	if trackID == "" {
		return []Workshop{}
	}
	upcoming := false
	return c.Workshops(WorkshopFilter{Past: &upcoming, TrackID: trackID})
}
