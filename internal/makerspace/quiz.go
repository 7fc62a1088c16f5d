package makerspace

import (
	"fmt"
	"slices"
	"strings"
)

const DefaultPassingThreshold = 80

type Question struct {
	ID             int
	Prompt         string
	Options        []string
	CorrectAnswers []int
	// MultipleChoice lets the taker select several options. Grading is the
	// same exact-set comparison either way.
	MultipleChoice bool
}

// Quiz is the question bank for one training track.
type Quiz struct {
	TrackID string
	Name    string
	// PassingThreshold overrides the service default when non-zero.
	PassingThreshold int
	Questions        []Question
}

func (q Quiz) Threshold(fallback int) int {
	if q.PassingThreshold > 0 {
		return q.PassingThreshold
	}
	return fallback
}

// clone returns a copy that shares no slices with q.
func (q Quiz) clone() Quiz {
	q.Questions = slices.Clone(q.Questions)
	for i := range q.Questions {
		q.Questions[i].Options = slices.Clone(q.Questions[i].Options)
		q.Questions[i].CorrectAnswers = slices.Clone(q.Questions[i].CorrectAnswers)
	}
	return q
}

// Validate checks that the bank is gradeable. An empty bank is allowed here;
// Grade reports it as ErrEmptyQuiz.
func (q Quiz) Validate() error {
	if strings.TrimSpace(q.TrackID) == "" {
		return fmt.Errorf("%w: quiz track id is required", ErrInvalidConfiguration)
	}
	if q.PassingThreshold < 0 || q.PassingThreshold > 100 {
		return fmt.Errorf("%w: track %q: passing threshold %d out of range", ErrInvalidConfiguration, q.TrackID, q.PassingThreshold)
	}
	seen := make(map[int]bool, len(q.Questions))
	for i, qu := range q.Questions {
		if seen[qu.ID] {
			return fmt.Errorf("%w: track %q: duplicate question id %d", ErrInvalidConfiguration, q.TrackID, qu.ID)
		}
		seen[qu.ID] = true
		if len(qu.Options) < 2 {
			return fmt.Errorf("%w: track %q question %d: needs at least two options", ErrInvalidConfiguration, q.TrackID, i)
		}
		if len(qu.CorrectAnswers) == 0 {
			return fmt.Errorf("%w: track %q question %d: no correct answer", ErrInvalidConfiguration, q.TrackID, i)
		}
		if !qu.MultipleChoice && len(qu.CorrectAnswers) != 1 {
			return fmt.Errorf("%w: track %q question %d: single-answer question has %d correct answers", ErrInvalidConfiguration, q.TrackID, i, len(qu.CorrectAnswers))
		}
		for _, a := range qu.CorrectAnswers {
			if a < 0 || a >= len(qu.Options) {
				return fmt.Errorf("%w: track %q question %d: correct answer %d out of range", ErrInvalidConfiguration, q.TrackID, i, a)
			}
		}
	}
	return nil
}

// Attempt maps a question index to the option indices selected for it.
// Attempts are values: Select returns a new Attempt and leaves the receiver
// untouched. A retake is simply NewAttempt again.
type Attempt struct {
	TrackID    string
	Selections map[int][]int
}

func NewAttempt(trackID string) Attempt {
	return Attempt{TrackID: trackID, Selections: map[int][]int{}}
}

// Select records a click on option for the question at index. Single-answer
// questions replace the previous choice; multi-answer questions toggle.
func (a Attempt) Select(q Quiz, index, option int) (Attempt, error) {
	if index < 0 || index >= len(q.Questions) {
		return a, fmt.Errorf("question %d: %w", index, ErrNotFound)
	}
	qu := q.Questions[index]
	if option < 0 || option >= len(qu.Options) {
		return a, fmt.Errorf("question %d option %d: %w", index, option, ErrNotFound)
	}

	next := Attempt{TrackID: a.TrackID, Selections: make(map[int][]int, len(a.Selections)+1)}
	for k, v := range a.Selections {
		next.Selections[k] = slices.Clone(v)
	}

	if !qu.MultipleChoice {
		next.Selections[index] = []int{option}
		return next, nil
	}
	cur := next.Selections[index]
	if i := slices.Index(cur, option); i >= 0 {
		next.Selections[index] = slices.Delete(cur, i, i+1)
	} else {
		next.Selections[index] = append(cur, option)
	}
	return next, nil
}

// Answered reports whether at least one option is selected for index.
func (a Attempt) Answered(index int) bool {
	return len(a.Selections[index]) > 0
}

// Complete reports whether every question has a selection, which is when the
// UI enables submission.
func (a Attempt) Complete(q Quiz) bool {
	for i := range q.Questions {
		if !a.Answered(i) {
			return false
		}
	}
	return true
}

type QuestionResult struct {
	QuestionID int
	IsCorrect  bool
}

type Result struct {
	ScorePercent int
	CorrectCount int
	TotalCount   int
	PerQuestion  []QuestionResult
}

// Grade scores an attempt. A question counts as correct only when the
// selected set equals the correct set exactly; there is no partial credit.
func Grade(q Quiz, a Attempt) (Result, error) {
	total := len(q.Questions)
	if total == 0 {
		return Result{}, fmt.Errorf("track %q: %w", q.TrackID, ErrEmptyQuiz)
	}

	var missing []int
	for i := range q.Questions {
		if _, ok := a.Selections[i]; !ok {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return Result{}, fmt.Errorf("%w: unanswered questions %v", ErrIncompleteAttempt, missing)
	}

	res := Result{
		TotalCount:  total,
		PerQuestion: make([]QuestionResult, total),
	}
	for i, qu := range q.Questions {
		ok := sameSet(a.Selections[i], qu.CorrectAnswers)
		if ok {
			res.CorrectCount++
		}
		res.PerQuestion[i] = QuestionResult{QuestionID: qu.ID, IsCorrect: ok}
	}
	// Round half up in integer arithmetic.
	res.ScorePercent = (200*res.CorrectCount + total) / (2 * total)
	return res, nil
}

func Pass(r Result, threshold int) bool {
	return r.ScorePercent >= threshold
}

func sameSet(got, want []int) bool {
	g := toSet(got)
	w := toSet(want)
	if len(g) != len(w) {
		return false
	}
	for k := range w {
		if !g[k] {
			return false
		}
	}
	return true
}

func toSet(xs []int) map[int]bool {
	m := make(map[int]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}
	return m
}
