package server

import (
	"net/http"
	"slices"
	"testing"
)

func TestListEquipment(t *testing.T) {
	r := testRouter(t)

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantIDs   []string
		wantCount int
	}{
		{name: "no filter", query: "", wantCode: http.StatusOK, wantCount: 12},
		{name: "all category", query: "?category=all", wantCode: http.StatusOK, wantCount: 12},
		{
			name:     "laser cutting at watt",
			query:    "?category=laser-cutting&location=watt",
			wantCode: http.StatusOK,
			wantIDs:  []string{"epilog-laser"},
		},
		{
			name:     "search is case insensitive",
			query:    "?q=PRUSA",
			wantCode: http.StatusOK,
			wantIDs:  []string{"prusa-mk3s", "prusa-mini"},
		},
		{name: "no match", query: "?q=zzz-nothing", wantCode: http.StatusOK, wantIDs: []string{}},
		{name: "bad category", query: "?category=welding", wantCode: http.StatusBadRequest},
		{name: "bad location", query: "?location=moon", wantCode: http.StatusBadRequest},
		{name: "bad status", query: "?status=broken", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodGet, "/api/equipment"+tt.query, nil)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			items := decode[[]EquipmentItem](t, w)
			if tt.wantIDs == nil {
				if len(items) != tt.wantCount {
					t.Errorf("got %d items, want %d", len(items), tt.wantCount)
				}
				return
			}
			if len(items) != len(tt.wantIDs) {
				t.Fatalf("got %d items, want %v", len(items), tt.wantIDs)
			}
			for i, id := range tt.wantIDs {
				if items[i].ID != id {
					t.Errorf("item %d = %q, want %q", i, items[i].ID, id)
				}
			}
		})
	}
}

func TestListEquipmentEmptyIsArray(t *testing.T) {
	r := testRouter(t)

	w := do(t, r, http.MethodGet, "/api/equipment?q=zzz-nothing", nil)
	if got := w.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestGetEquipment(t *testing.T) {
	r := testRouter(t)

	w := do(t, r, http.MethodGet, "/api/equipment/epilog-laser", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	got := decode[EquipmentDetail](t, w)
	if got.Name != "Epilog Fusion M2" {
		t.Errorf("name = %q", got.Name)
	}
	if got.WaitingCount == nil || *got.WaitingCount != 2 {
		t.Errorf("waitingCount = %v, want 2", got.WaitingCount)
	}
	if got.TrainingLabel != "Quiz + In-Person" {
		t.Errorf("trainingLabel = %q", got.TrainingLabel)
	}
	if got.Details == nil || got.Details.WhatIs == "" {
		t.Error("expected details")
	}
}

func TestGetEquipmentDefaultDetails(t *testing.T) {
	r := testRouter(t)

	w := do(t, r, http.MethodGet, "/api/equipment/button-maker", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decode[EquipmentDetail](t, w); got.Details == nil {
		t.Error("expected fallback details")
	}
}

func TestGetEquipmentNotFound(t *testing.T) {
	r := testRouter(t)

	w := do(t, r, http.MethodGet, "/api/equipment/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if got := decode[ErrorResponse](t, w); got.Error != "equipment not found" {
		t.Errorf("error = %q", got.Error)
	}
}

func TestListCategories(t *testing.T) {
	r := testRouter(t)

	w := do(t, r, http.MethodGet, "/api/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	total := 0
	for _, c := range decode[[]CategoryItem](t, w) {
		total += c.Count
	}
	if total != 12 {
		t.Errorf("category counts sum to %d, want 12", total)
	}
}

func TestAccess(t *testing.T) {
	r := testRouter(t)

	score := func(n int) *int { return &n }

	tests := []struct {
		name       string
		id         string
		body       any
		wantCode   int
		wantState  string
		wantAccess bool
		wantStep   string
		// wantSessions lists the session ids offered for the next step.
		wantSessions []string
	}{
		{
			name:       "walk-up with empty body",
			id:         "cricut",
			wantCode:   http.StatusOK,
			wantState:  "certified",
			wantAccess: true,
			wantStep:   "none",
		},
		{
			name:      "quiz with empty body",
			id:        "prusa-mk3s",
			body:      "",
			wantCode:  http.StatusOK,
			wantState: "locked",
			wantStep:  "take-quiz",
		},
		{
			name:       "walk-up with no training",
			id:         "cricut",
			body:       AccessRequest{},
			wantCode:   http.StatusOK,
			wantState:  "certified",
			wantAccess: true,
			wantStep:   "none",
		},
		{
			name:      "quiz not started",
			id:        "prusa-mk3s",
			body:      AccessRequest{},
			wantCode:  http.StatusOK,
			wantState: "locked",
			wantStep:  "take-quiz",
		},
		{
			name:      "quiz failed",
			id:        "prusa-mk3s",
			body:      AccessRequest{QuizStarted: true, QuizScorePercent: score(70)},
			wantCode:  http.StatusOK,
			wantState: "quiz-pending",
			wantStep:  "take-quiz",
		},
		{
			name:       "quiz passed at threshold",
			id:         "prusa-mk3s",
			body:       AccessRequest{QuizStarted: true, QuizScorePercent: score(80)},
			wantCode:   http.StatusOK,
			wantState:  "certified",
			wantAccess: true,
			wantStep:   "none",
		},
		{
			name:         "in-person quiz passed only",
			id:           "epilog-laser",
			body:         AccessRequest{QuizStarted: true, QuizScorePercent: score(90)},
			wantCode:     http.StatusOK,
			wantState:    "quiz-passed",
			wantStep:     "attend-in-person",
			wantSessions: []string{"laser-certification"},
		},
		{
			name:      "in-person attended",
			id:        "epilog-laser",
			body:      AccessRequest{QuizStarted: true, QuizScorePercent: score(90), InPersonAttended: true},
			wantCode:  http.StatusOK,
			wantState: "in-person-pending",
			wantStep:  "wait-for-signoff",
		},
		{
			name: "in-person signed off",
			id:   "epilog-laser",
			body: AccessRequest{
				QuizStarted: true, QuizScorePercent: score(90), InPersonAttended: true, SignedOff: true,
			},
			wantCode:   http.StatusOK,
			wantState:  "certified",
			wantAccess: true,
			wantStep:   "none",
		},
		{
			name:     "score out of range",
			id:       "prusa-mk3s",
			body:     AccessRequest{QuizScorePercent: score(120)},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "truncated body",
			id:       "cricut",
			body:     `{"quizStarted": `,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown field",
			id:       "prusa-mk3s",
			body:     `{"certified": true}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown equipment",
			id:       "nope",
			body:     AccessRequest{},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/equipment/"+tt.id+"/access", tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			got := decode[AccessResponse](t, w)
			if got.State != tt.wantState {
				t.Errorf("state = %q, want %q", got.State, tt.wantState)
			}
			if got.CanAccess != tt.wantAccess {
				t.Errorf("canAccess = %v, want %v", got.CanAccess, tt.wantAccess)
			}
			if got.NextStep != tt.wantStep {
				t.Errorf("nextStep = %q, want %q", got.NextStep, tt.wantStep)
			}
			var sessions []string
			for _, s := range got.Sessions {
				sessions = append(sessions, s.ID)
			}
			if !slices.Equal(sessions, tt.wantSessions) {
				t.Errorf("sessions = %v, want %v", sessions, tt.wantSessions)
			}
		})
	}
}

func TestAccessValidationFields(t *testing.T) {
	r := testRouter(t)

	w := do(t, r, http.MethodPost, "/api/equipment/prusa-mk3s/access", `{"quizScorePercent": -5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	got := decode[ErrorResponse](t, w)
	if _, ok := got.Fields["quizScorePercent"]; !ok {
		t.Errorf("fields = %v, want quizScorePercent", got.Fields)
	}
}
