package makerspace

import (
	"fmt"
	"slices"
	"strings"
)

type Equipment struct {
	ID         string
	Name       string
	Category   string // display name, may differ from CategoryID's label
	CategoryID Category
	Location   Location
	Status     EquipmentStatus
	// WaitingCount is only meaningful while Status is in-use.
	WaitingCount     *int
	TrainingRequired TrainingType
	// TrackID names the quiz bank shared by equipment with the same training.
	// Empty for walk-up equipment.
	TrackID     string
	Description string
	Details     *Details
}

// Details is the long-form content shown on an equipment page.
type Details struct {
	WhatIs         string
	WhatCanYouMake []string
	TypicalTime    string
	Materials      []string
	Specs          []Spec
	Settings       []Setting
	Tips           []string
	FAQs           []FAQ
}

type Spec struct {
	Label string
	Value string
}

type Setting struct {
	Material  string
	Speed     string
	Power     string
	Frequency string
}

type FAQ struct {
	Question string
	Answer   string
}

// Waiting returns the number of people queued, zero when nobody is.
func (e Equipment) Waiting() int {
	if e.WaitingCount == nil {
		return 0
	}
	return *e.WaitingCount
}

// clone returns a copy that shares no pointers or slices with e.
func (e Equipment) clone() Equipment {
	if e.WaitingCount != nil {
		n := *e.WaitingCount
		e.WaitingCount = &n
	}
	if e.Details != nil {
		d := e.Details.clone()
		e.Details = &d
	}
	return e
}

func (d Details) clone() Details {
	d.WhatCanYouMake = slices.Clone(d.WhatCanYouMake)
	d.Materials = slices.Clone(d.Materials)
	d.Specs = slices.Clone(d.Specs)
	d.Settings = slices.Clone(d.Settings)
	d.Tips = slices.Clone(d.Tips)
	d.FAQs = slices.Clone(d.FAQs)
	return d
}

// Validate checks the record invariants. Every failure wraps
// ErrInvalidConfiguration.
func (e Equipment) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("%w: equipment id is required", ErrInvalidConfiguration)
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: equipment %q: name is required", ErrInvalidConfiguration, e.ID)
	}
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("%w: equipment %q: description is required", ErrInvalidConfiguration, e.ID)
	}
	if _, err := ParseCategory(string(e.CategoryID)); err != nil {
		return fmt.Errorf("equipment %q: %w", e.ID, err)
	}
	if _, err := ParseLocation(string(e.Location)); err != nil {
		return fmt.Errorf("equipment %q: %w", e.ID, err)
	}
	if _, err := ParseEquipmentStatus(string(e.Status)); err != nil {
		return fmt.Errorf("equipment %q: %w", e.ID, err)
	}
	if _, err := e.TrainingRequired.Rank(); err != nil {
		return fmt.Errorf("equipment %q: %w", e.ID, err)
	}
	if e.WaitingCount != nil {
		if *e.WaitingCount < 0 {
			return fmt.Errorf("%w: equipment %q: negative waiting count", ErrInvalidConfiguration, e.ID)
		}
		if *e.WaitingCount > 0 && e.Status != StatusInUse {
			return fmt.Errorf("%w: equipment %q: waiting count set while %s", ErrInvalidConfiguration, e.ID, e.Status)
		}
	}
	switch {
	case e.TrainingRequired == TrainingWalkUp && e.TrackID != "":
		return fmt.Errorf("%w: equipment %q: walk-up equipment has track %q", ErrInvalidConfiguration, e.ID, e.TrackID)
	case e.TrainingRequired != TrainingWalkUp && e.TrackID == "":
		return fmt.Errorf("%w: equipment %q: %s training needs a track", ErrInvalidConfiguration, e.ID, e.TrainingRequired)
	}
	return nil
}
