package makerspace

import "fmt"

type TrainingState string

const (
	StateLocked          TrainingState = "locked"
	StateQuizPending     TrainingState = "quiz-pending"
	StateQuizPassed      TrainingState = "quiz-passed"
	StateInPersonPending TrainingState = "in-person-pending"
	StateCertified       TrainingState = "certified"
)

func ParseTrainingState(s string) (TrainingState, error) {
	switch st := TrainingState(s); st {
	case StateLocked, StateQuizPending, StateQuizPassed, StateInPersonPending, StateCertified:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown training state %q", ErrInvalidState, s)
}

type Step string

const (
	StepNone           Step = "none"
	StepTakeQuiz       Step = "take-quiz"
	StepAttendInPerson Step = "attend-in-person"
	StepWaitForSignoff Step = "wait-for-signoff"
)

// TrainingRecord is what the caller knows about one user on one track.
// Nothing in this package stores it.
type TrainingRecord struct {
	QuizStarted bool
	// QuizResult is the latest graded attempt, nil if none.
	QuizResult       *Result
	InPersonAttended bool
	// SignedOff is the staff confirmation that in-person training happened.
	SignedOff bool
}

type Policy struct {
	PassingThreshold int
}

func NewPolicy(threshold int) Policy {
	if threshold <= 0 {
		threshold = DefaultPassingThreshold
	}
	return Policy{PassingThreshold: threshold}
}

func (p Policy) quizPassed(rec TrainingRecord) bool {
	return rec.QuizResult != nil && Pass(*rec.QuizResult, p.PassingThreshold)
}

// State derives where the user stands on the equipment's training path.
//
// For in-person equipment a passing quiz moves the user to quiz-passed, then
// to in-person-pending once attendance is recorded; only a sign-off on top of
// a passing quiz certifies.
func (p Policy) State(e Equipment, rec TrainingRecord) (TrainingState, error) {
	switch e.TrainingRequired {
	case TrainingWalkUp:
		return StateCertified, nil
	case TrainingQuiz:
		switch {
		case p.quizPassed(rec):
			return StateCertified, nil
		case rec.QuizStarted || rec.QuizResult != nil:
			return StateQuizPending, nil
		}
		return StateLocked, nil
	case TrainingInPerson:
		switch {
		case p.quizPassed(rec) && rec.SignedOff:
			return StateCertified, nil
		case p.quizPassed(rec) && rec.InPersonAttended:
			return StateInPersonPending, nil
		case p.quizPassed(rec):
			return StateQuizPassed, nil
		case rec.QuizStarted || rec.QuizResult != nil:
			return StateQuizPending, nil
		}
		return StateLocked, nil
	}
	return "", unknownTraining(e)
}

// reachable reports whether st can be derived for e's training type.
// Quiz equipment never passes through the in-person states.
func reachable(e Equipment, st TrainingState) (bool, error) {
	if _, err := ParseTrainingState(string(st)); err != nil {
		return false, err
	}
	switch e.TrainingRequired {
	case TrainingWalkUp, TrainingInPerson:
		return true, nil
	case TrainingQuiz:
		return st != StateQuizPassed && st != StateInPersonPending, nil
	}
	return false, unknownTraining(e)
}

func checkState(e Equipment, st TrainingState) error {
	ok, err := reachable(e, st)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s on %s equipment %q", ErrInvalidState, st, e.TrainingRequired, e.ID)
	}
	return nil
}

// CanAccess is true iff the user is certified. Walk-up equipment is always
// accessible whatever valid state is passed in.
func (p Policy) CanAccess(e Equipment, st TrainingState) (bool, error) {
	if err := checkState(e, st); err != nil {
		return false, err
	}
	return e.TrainingRequired == TrainingWalkUp || st == StateCertified, nil
}

// NextStep is the call to action for the user's current state.
func (p Policy) NextStep(e Equipment, st TrainingState) (Step, error) {
	if err := checkState(e, st); err != nil {
		return "", err
	}
	if e.TrainingRequired == TrainingWalkUp {
		return StepNone, nil
	}
	switch st {
	case StateCertified:
		return StepNone, nil
	case StateQuizPassed:
		return StepAttendInPerson, nil
	case StateInPersonPending:
		return StepWaitForSignoff, nil
	case StateLocked, StateQuizPending:
		return StepTakeQuiz, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidState, st)
}

type Decision struct {
	State     TrainingState
	CanAccess bool
	NextStep  Step
}

// Decide runs State, CanAccess and NextStep in one call.
func (p Policy) Decide(e Equipment, rec TrainingRecord) (Decision, error) {
	st, err := p.State(e, rec)
	if err != nil {
		return Decision{}, err
	}
	ok, err := p.CanAccess(e, st)
	if err != nil {
		return Decision{}, err
	}
	step, err := p.NextStep(e, st)
	if err != nil {
		return Decision{}, err
	}
	return Decision{State: st, CanAccess: ok, NextStep: step}, nil
}

func unknownTraining(e Equipment) error {
	return fmt.Errorf("%w: equipment %q: unknown training type %q", ErrInvalidConfiguration, e.ID, string(e.TrainingRequired))
}
