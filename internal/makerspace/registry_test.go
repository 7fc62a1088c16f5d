package makerspace_test

import (
	"errors"
	"testing"

	"github.com/cumaker/makerspace/internal/makerspace"
)

func intp(n int) *int { return &n }

func sampleEquipment() []makerspace.Equipment {
	return []makerspace.Equipment{
		{ID: "epilog", Name: "Epilog Fusion M2", CategoryID: makerspace.CategoryLaserCutting, Location: makerspace.LocationWatt,
			Status: makerspace.StatusInUse, WaitingCount: intp(2), TrainingRequired: makerspace.TrainingInPerson, TrackID: "laser",
			Description: "CO2 laser cutter"},
		{ID: "glowforge", Name: "Glowforge Plus", CategoryID: makerspace.CategoryLaserCutting, Location: makerspace.LocationCooper,
			Status: makerspace.StatusAvailable, TrainingRequired: makerspace.TrainingInPerson, TrackID: "laser",
			Description: "Laser for beginners"},
		{ID: "prusa", Name: "Prusa Mini+", CategoryID: makerspace.Category3DPrinting, Location: makerspace.LocationWatt,
			Status: makerspace.StatusAvailable, TrainingRequired: makerspace.TrainingQuiz, TrackID: "fdm",
			Description: "Compact FDM printer"},
		{ID: "cricut", Name: "Cricut Maker 3", CategoryID: makerspace.CategoryVinyl, Location: makerspace.LocationCooper,
			Status: makerspace.StatusOffline, TrainingRequired: makerspace.TrainingWalkUp,
			Description: "Vinyl cutter for stickers"},
		{ID: "laser2", Name: "Spare Laser", CategoryID: makerspace.CategoryLaserCutting, Location: makerspace.LocationWatt,
			Status: makerspace.StatusAvailable, TrainingRequired: makerspace.TrainingInPerson, TrackID: "laser",
			Description: "Backup unit"},
	}
}

func ids(items []makerspace.Equipment) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.ID
	}
	return out
}

func TestRegistryGet(t *testing.T) {
	r, err := makerspace.NewRegistry(sampleEquipment())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	e, err := r.Get("prusa")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e.Name != "Prusa Mini+" {
		t.Errorf("name = %q, want Prusa Mini+", e.Name)
	}

	if _, err := r.Get("nope"); !errors.Is(err, makerspace.ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}

	empty, err := makerspace.NewRegistry(nil)
	if err != nil {
		t.Fatalf("empty registry: %v", err)
	}
	if _, err := empty.Get("prusa"); !errors.Is(err, makerspace.ErrNotFound) {
		t.Errorf("empty registry: err = %v, want ErrNotFound", err)
	}
}

func TestRegistryFilter(t *testing.T) {
	r, err := makerspace.NewRegistry(sampleEquipment())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	tests := []struct {
		name   string
		filter makerspace.Filter
		want   []string
	}{
		{name: "no constraints", want: []string{"epilog", "glowforge", "prusa", "cricut", "laser2"}},
		{name: "category and location",
			filter: makerspace.Filter{CategoryID: makerspace.CategoryLaserCutting, Location: makerspace.LocationWatt},
			want:   []string{"epilog", "laser2"}},
		{name: "status", filter: makerspace.Filter{Status: makerspace.StatusOffline}, want: []string{"cricut"}},
		{name: "search name case-insensitive", filter: makerspace.Filter{SearchText: "PRUSA"}, want: []string{"prusa"}},
		{name: "search description", filter: makerspace.Filter{SearchText: "stickers"}, want: []string{"cricut"}},
		{name: "search and category", filter: makerspace.Filter{SearchText: "laser", CategoryID: makerspace.CategoryVinyl}, want: []string{}},
		{name: "no match", filter: makerspace.Filter{Location: makerspace.LocationCook}, want: []string{}},
		{name: "leading space is literal", filter: makerspace.Filter{SearchText: " laser"}, want: []string{"epilog", "laser2"}},
		{name: "trailing space is literal", filter: makerspace.Filter{SearchText: "laser "}, want: []string{"epilog", "glowforge"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(r.Filter(tt.filter))
			if len(got) != len(tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ids = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestNewRegistryRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(items []makerspace.Equipment) []makerspace.Equipment
	}{
		{"duplicate id", func(items []makerspace.Equipment) []makerspace.Equipment {
			return append(items, items[0])
		}},
		{"unknown training", func(items []makerspace.Equipment) []makerspace.Equipment {
			items[0].TrainingRequired = "supervised"
			return items
		}},
		{"unknown status", func(items []makerspace.Equipment) []makerspace.Equipment {
			items[0].Status = "broken"
			return items
		}},
		{"unknown location", func(items []makerspace.Equipment) []makerspace.Equipment {
			items[0].Location = "library"
			return items
		}},
		{"unknown category", func(items []makerspace.Equipment) []makerspace.Equipment {
			items[0].CategoryID = "welding"
			return items
		}},
		{"waiting while available", func(items []makerspace.Equipment) []makerspace.Equipment {
			items[1].WaitingCount = intp(3)
			return items
		}},
		{"negative waiting", func(items []makerspace.Equipment) []makerspace.Equipment {
			items[0].WaitingCount = intp(-1)
			return items
		}},
		{"quiz without track", func(items []makerspace.Equipment) []makerspace.Equipment {
			items[2].TrackID = ""
			return items
		}},
		{"walk-up with track", func(items []makerspace.Equipment) []makerspace.Equipment {
			items[3].TrackID = "vinyl"
			return items
		}},
		{"missing name", func(items []makerspace.Equipment) []makerspace.Equipment {
			items[0].Name = " "
			return items
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := makerspace.NewRegistry(tt.mutate(sampleEquipment()))
			if !errors.Is(err, makerspace.ErrInvalidConfiguration) {
				t.Errorf("err = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestWaitingCountZeroAllowedWhenIdle(t *testing.T) {
	items := sampleEquipment()
	items[1].WaitingCount = intp(0)
	if _, err := makerspace.NewRegistry(items); err != nil {
		t.Errorf("zero waiting count on available equipment rejected: %v", err)
	}
	if got := items[2].Waiting(); got != 0 {
		t.Errorf("waiting = %d, want 0", got)
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := makerspace.ParseTrainingType("quiz"); err != nil {
		t.Errorf("quiz: %v", err)
	}
	if _, err := makerspace.ParseTrainingType("Quiz"); !errors.Is(err, makerspace.ErrInvalidConfiguration) {
		t.Errorf("Quiz: err = %v, want ErrInvalidConfiguration", err)
	}
	if _, err := makerspace.ParseEquipmentStatus("in-use"); err != nil {
		t.Errorf("in-use: %v", err)
	}
	if _, err := makerspace.ParseLocation("cook"); err != nil {
		t.Errorf("cook: %v", err)
	}
	if _, err := makerspace.ParseCategory("all"); !errors.Is(err, makerspace.ErrInvalidConfiguration) {
		t.Errorf("all: err = %v, want ErrInvalidConfiguration", err)
	}

	walk, _ := makerspace.TrainingWalkUp.Rank()
	quiz, _ := makerspace.TrainingQuiz.Rank()
	inPerson, _ := makerspace.TrainingInPerson.Rank()
	if !(walk < quiz && quiz < inPerson) {
		t.Errorf("ranks = %d, %d, %d; want strictly increasing", walk, quiz, inPerson)
	}
}

func TestRegistryReturnsCopies(t *testing.T) {
	items := sampleEquipment()
	items[0].Details = &makerspace.Details{Tips: []string{"check the vent"}}
	r, err := makerspace.NewRegistry(items)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	// Changing the input after construction must not leak in either.
	*items[0].WaitingCount = 50

	e, err := r.Get("epilog")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	*e.WaitingCount = 99
	e.Details.Tips[0] = "skip the vent"

	all := r.All()
	*all[0].WaitingCount = 98
	found := r.Filter(makerspace.Filter{Status: makerspace.StatusInUse})
	found[0].Details.Tips[0] = "ignore the vent"

	again, err := r.Get("epilog")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if got := again.Waiting(); got != 2 {
		t.Errorf("waiting after caller mutation = %d, want 2", got)
	}
	if got := again.Details.Tips[0]; got != "check the vent" {
		t.Errorf("tip after caller mutation = %q, want original", got)
	}
}
