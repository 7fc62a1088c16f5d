// Package makerspace defines the equipment catalog, training policy and quiz
// grading rules. Everything here is pure: no I/O, no shared mutable state.
package makerspace

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrEmptyQuiz            = errors.New("quiz has no questions")
	ErrIncompleteAttempt    = errors.New("attempt is incomplete")
	ErrInvalidState         = errors.New("invalid training state")
)

type TrainingType string

const (
	TrainingWalkUp   TrainingType = "walk-up"
	TrainingQuiz     TrainingType = "quiz"
	TrainingInPerson TrainingType = "in-person"
)

func ParseTrainingType(s string) (TrainingType, error) {
	t := TrainingType(s)
	if _, err := t.Rank(); err != nil {
		return "", err
	}
	return t, nil
}

// Rank orders training types by strictness: walk-up < quiz < in-person.
func (t TrainingType) Rank() (int, error) {
	switch t {
	case TrainingWalkUp:
		return 0, nil
	case TrainingQuiz:
		return 1, nil
	case TrainingInPerson:
		return 2, nil
	}
	return 0, fmt.Errorf("%w: unknown training type %q", ErrInvalidConfiguration, string(t))
}

func (t TrainingType) Label() string {
	switch t {
	case TrainingWalkUp:
		return "Walk-Up OK"
	case TrainingQuiz:
		return "Quiz Required"
	case TrainingInPerson:
		return "Quiz + In-Person"
	}
	return ""
}

type EquipmentStatus string

const (
	StatusAvailable EquipmentStatus = "available"
	StatusInUse     EquipmentStatus = "in-use"
	StatusOffline   EquipmentStatus = "offline"
)

func ParseEquipmentStatus(s string) (EquipmentStatus, error) {
	switch st := EquipmentStatus(s); st {
	case StatusAvailable, StatusInUse, StatusOffline:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown equipment status %q", ErrInvalidConfiguration, s)
}

func (s EquipmentStatus) Label() string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusInUse:
		return "In Use"
	case StatusOffline:
		return "Offline"
	}
	return ""
}

type Location string

const (
	LocationWatt   Location = "watt"
	LocationCooper Location = "cooper"
	LocationCook   Location = "cook"
)

func ParseLocation(s string) (Location, error) {
	switch l := Location(s); l {
	case LocationWatt, LocationCooper, LocationCook:
		return l, nil
	}
	return "", fmt.Errorf("%w: unknown location %q", ErrInvalidConfiguration, s)
}

func (l Location) Label() string {
	switch l {
	case LocationWatt:
		return "Watt"
	case LocationCooper:
		return "Cooper"
	case LocationCook:
		return "Cook"
	}
	return ""
}

type Category string

const (
	Category3DPrinting   Category = "3d-printing"
	CategoryLaserCutting Category = "laser-cutting"
	CategoryCNC          Category = "cnc"
	CategoryTextiles     Category = "textiles"
	CategoryVinyl        Category = "vinyl"
)

// Categories lists every category in catalog display order.
var Categories = []Category{
	Category3DPrinting,
	CategoryLaserCutting,
	CategoryCNC,
	CategoryTextiles,
	CategoryVinyl,
}

func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case Category3DPrinting, CategoryLaserCutting, CategoryCNC, CategoryTextiles, CategoryVinyl:
		return c, nil
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidConfiguration, s)
}

func (c Category) Label() string {
	switch c {
	case Category3DPrinting:
		return "3D Printing"
	case CategoryLaserCutting:
		return "Laser Cutting"
	case CategoryCNC:
		return "CNC & Scanning"
	case CategoryTextiles:
		return "Textiles"
	case CategoryVinyl:
		return "Vinyl & Stickers"
	}
	return ""
}
