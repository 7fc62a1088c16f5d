package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/cumaker/makerspace/internal/makerspace"
)

type TrackSummary struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	QuestionCount    int      `json:"questionCount"`
	PassingThreshold int      `json:"passingThreshold"`
	Equipment        []string `json:"equipment"`
}

// TrackDetail is a quiz as shown to the taker: correct answers are withheld.
type TrackDetail struct {
	TrackSummary
	Questions []QuestionView `json:"questions"`
}

type QuestionView struct {
	ID             int      `json:"id"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	MultipleChoice bool     `json:"multipleChoice"`
}

// AttemptResponse starts a fresh attempt. The service keeps no copy: the
// client holds the answers and sends them all to the grade endpoint.
type AttemptResponse struct {
	AttemptID     string        `json:"attemptId"`
	TrackID       string        `json:"trackId"`
	QuestionCount int           `json:"questionCount"`
	Answers       map[int][]int `json:"answers"`
}

type GradeRequest struct {
	AttemptID string        `json:"attemptId" validate:"omitempty,uuid"`
	Answers   map[int][]int `json:"answers" validate:"required"`
}

type QuestionResultView struct {
	QuestionID int  `json:"questionId"`
	IsCorrect  bool `json:"isCorrect"`
}

type GradeResponse struct {
	AttemptID        string               `json:"attemptId,omitempty"`
	TrackID          string               `json:"trackId"`
	ScorePercent     int                  `json:"scorePercent"`
	CorrectCount     int                  `json:"correctCount"`
	TotalCount       int                  `json:"totalCount"`
	PassingThreshold int                  `json:"passingThreshold"`
	Passed           bool                 `json:"passed"`
	PerQuestion      []QuestionResultView `json:"perQuestion"`
}

func toTrackSummary(cat *makerspace.Catalog, policy makerspace.Policy, q makerspace.Quiz) TrackSummary {
	return TrackSummary{
		ID:               q.TrackID,
		Name:             q.Name,
		QuestionCount:    len(q.Questions),
		PassingThreshold: q.Threshold(policy.PassingThreshold),
		Equipment:        nonNil(cat.EquipmentOnTrack(q.TrackID)),
	}
}

func handleListTracks(cat *makerspace.Catalog, policy makerspace.Policy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracks := cat.Tracks()
		items := make([]TrackSummary, 0, len(tracks))
		for _, q := range tracks {
			items = append(items, toTrackSummary(cat, policy, q))
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func handleGetTrack(cat *makerspace.Catalog, policy makerspace.Policy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := quizFrom(r)

		resp := TrackDetail{
			TrackSummary: toTrackSummary(cat, policy, q),
			Questions:    make([]QuestionView, 0, len(q.Questions)),
		}
		for _, qu := range q.Questions {
			resp.Questions = append(resp.Questions, QuestionView{
				ID:             qu.ID,
				Question:       qu.Prompt,
				Options:        qu.Options,
				MultipleChoice: qu.MultipleChoice,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleStartAttempt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := quizFrom(r)
		a := makerspace.NewAttempt(q.TrackID)

		writeJSON(w, http.StatusCreated, AttemptResponse{
			AttemptID:     uuid.NewString(),
			TrackID:       a.TrackID,
			QuestionCount: len(q.Questions),
			Answers:       a.Selections,
		})
	}
}

func handleGrade(logger *slog.Logger, policy makerspace.Policy, v *requestValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := quizFrom(r)

		var req GradeRequest
		if !v.decodeValid(w, r, &req) {
			return
		}

		attempt := makerspace.Attempt{TrackID: q.TrackID, Selections: req.Answers}
		res, err := makerspace.Grade(q, attempt)
		switch {
		case errors.Is(err, makerspace.ErrIncompleteAttempt):
			writeError(w, http.StatusUnprocessableEntity, "every question must be answered before grading")
			return
		case errors.Is(err, makerspace.ErrEmptyQuiz):
			logger.Error("grading empty quiz", "track", q.TrackID)
			writeError(w, http.StatusInternalServerError, "quiz has no questions")
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		threshold := q.Threshold(policy.PassingThreshold)
		passed := makerspace.Pass(res, threshold)
		logger.Info("quiz graded",
			"track", q.TrackID,
			"attempt_id", req.AttemptID,
			"score", res.ScorePercent,
			"passed", passed,
		)

		resp := GradeResponse{
			AttemptID:        req.AttemptID,
			TrackID:          q.TrackID,
			ScorePercent:     res.ScorePercent,
			CorrectCount:     res.CorrectCount,
			TotalCount:       res.TotalCount,
			PassingThreshold: threshold,
			Passed:           passed,
			PerQuestion:      make([]QuestionResultView, 0, len(res.PerQuestion)),
		}
		for _, pq := range res.PerQuestion {
			resp.PerQuestion = append(resp.PerQuestion, QuestionResultView(pq))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
