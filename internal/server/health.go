package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/cumaker/makerspace/internal/makerspace"
)

// catalogChecker reports unhealthy when no equipment is loaded.
type catalogChecker struct {
	cat *makerspace.Catalog
}

func (c catalogChecker) Check(ctx context.Context) error {
	if c.cat == nil || c.cat.Registry().Len() == 0 {
		return errors.New("no equipment loaded")
	}
	return nil
}

func (c catalogChecker) Describe() string {
	if c.cat == nil {
		return ""
	}
	return fmt.Sprintf("%d equipment, %d printers", c.cat.Registry().Len(), len(c.cat.PrintersAt("")))
}

// trackChecker verifies every training-gated item has a quiz that can
// actually be graded.
type trackChecker struct {
	cat *makerspace.Catalog
}

func (c trackChecker) Check(ctx context.Context) error {
	if c.cat == nil {
		return errors.New("no catalog")
	}
	for _, e := range c.cat.Registry().All() {
		if e.TrainingRequired == makerspace.TrainingWalkUp {
			continue
		}
		q, err := c.cat.QuizFor(e.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", e.ID, err)
		}
		if len(q.Questions) == 0 {
			return fmt.Errorf("%s: track %q: %w", e.ID, q.TrackID, makerspace.ErrEmptyQuiz)
		}
	}
	return nil
}

func (c trackChecker) Describe() string {
	if c.cat == nil {
		return ""
	}
	return fmt.Sprintf("%d tracks", len(c.cat.Tracks()))
}
