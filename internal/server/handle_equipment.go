package server

import (
	"net/http"

	"github.com/cumaker/makerspace/internal/makerspace"
)

type EquipmentItem struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	CategoryID       string `json:"categoryId"`
	Location         string `json:"location"`
	LocationLabel    string `json:"locationLabel"`
	Status           string `json:"status"`
	StatusLabel      string `json:"statusLabel"`
	WaitingCount     *int   `json:"waitingCount,omitempty"`
	TrainingRequired string `json:"trainingRequired"`
	TrainingLabel    string `json:"trainingLabel"`
	TrackID          string `json:"trackId,omitempty"`
	Description      string `json:"description"`
}

type EquipmentDetail struct {
	EquipmentItem
	Details *DetailsView `json:"details,omitempty"`
}

type DetailsView struct {
	WhatIs         string        `json:"whatIs"`
	WhatCanYouMake []string      `json:"whatCanYouMake"`
	TypicalTime    string        `json:"typicalTime"`
	Materials      []string      `json:"materials"`
	Specs          []SpecView    `json:"specs"`
	Settings       []SettingView `json:"settings"`
	Tips           []string      `json:"tips"`
	FAQs           []FAQView     `json:"faqs"`
}

type SpecView struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SettingView struct {
	Material  string `json:"material"`
	Speed     string `json:"speed"`
	Power     string `json:"power"`
	Frequency string `json:"frequency"`
}

type FAQView struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type CategoryItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AccessRequest carries what the caller knows about the user's training.
// Sign-off comes from staff; nothing in this service produces it. An empty
// body is the same as a user with no training at all.
type AccessRequest struct {
	QuizStarted      bool `json:"quizStarted"`
	QuizScorePercent *int `json:"quizScorePercent" validate:"omitempty,min=0,max=100"`
	InPersonAttended bool `json:"inPersonAttended"`
	SignedOff        bool `json:"signedOff"`
}

type AccessResponse struct {
	EquipmentID      string `json:"equipmentId"`
	TrainingRequired string `json:"trainingRequired"`
	State            string `json:"state"`
	CanAccess        bool   `json:"canAccess"`
	NextStep         string `json:"nextStep"`
	PassingThreshold int    `json:"passingThreshold"`
	// Sessions lists upcoming in-person sessions when that is the next step.
	Sessions []WorkshopView `json:"sessions,omitempty"`
}

func toEquipmentItem(e makerspace.Equipment) EquipmentItem {
	return EquipmentItem{
		ID:               e.ID,
		Name:             e.Name,
		Category:         e.Category,
		CategoryID:       string(e.CategoryID),
		Location:         string(e.Location),
		LocationLabel:    e.Location.Label(),
		Status:           string(e.Status),
		StatusLabel:      e.Status.Label(),
		WaitingCount:     e.WaitingCount,
		TrainingRequired: string(e.TrainingRequired),
		TrainingLabel:    e.TrainingRequired.Label(),
		TrackID:          e.TrackID,
		Description:      e.Description,
	}
}

func toDetailsView(d makerspace.Details) *DetailsView {
	v := &DetailsView{
		WhatIs:         d.WhatIs,
		WhatCanYouMake: nonNil(d.WhatCanYouMake),
		TypicalTime:    d.TypicalTime,
		Materials:      nonNil(d.Materials),
		Specs:          []SpecView{},
		Settings:       []SettingView{},
		Tips:           nonNil(d.Tips),
		FAQs:           []FAQView{},
	}
	for _, s := range d.Specs {
		v.Specs = append(v.Specs, SpecView{Label: s.Label, Value: s.Value})
	}
	for _, s := range d.Settings {
		v.Settings = append(v.Settings, SettingView(s))
	}
	for _, f := range d.FAQs {
		v.FAQs = append(v.FAQs, FAQView(f))
	}
	return v
}

func nonNil[T any](xs []T) []T {
	if xs == nil {
		return []T{}
	}
	return xs
}

func handleListCategories(cat *makerspace.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := make([]CategoryItem, 0, len(makerspace.Categories))
		for _, c := range makerspace.Categories {
			items = append(items, CategoryItem{
				ID:    string(c),
				Name:  c.Label(),
				Count: len(cat.Registry().Filter(makerspace.Filter{CategoryID: c})),
			})
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func handleListEquipment(cat *makerspace.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var f makerspace.Filter
		var err error

		// "all" is what the catalog page sends for no category.
		if v := q.Get("category"); v != "" && v != "all" {
			if f.CategoryID, err = makerspace.ParseCategory(v); err != nil {
				writeError(w, http.StatusBadRequest, "unknown category")
				return
			}
		}
		if v := q.Get("location"); v != "" {
			if f.Location, err = makerspace.ParseLocation(v); err != nil {
				writeError(w, http.StatusBadRequest, "unknown location")
				return
			}
		}
		if v := q.Get("status"); v != "" {
			if f.Status, err = makerspace.ParseEquipmentStatus(v); err != nil {
				writeError(w, http.StatusBadRequest, "unknown status")
				return
			}
		}
		f.SearchText = q.Get("q")

		found := cat.Registry().Filter(f)
		items := make([]EquipmentItem, 0, len(found))
		for _, e := range found {
			items = append(items, toEquipmentItem(e))
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// trackPolicy applies the equipment's per-track threshold, if any.
func trackPolicy(cat *makerspace.Catalog, policy makerspace.Policy, e makerspace.Equipment) makerspace.Policy {
	if e.TrackID == "" {
		return policy
	}
	q, err := cat.Quiz(e.TrackID)
	if err != nil {
		return policy
	}
	return makerspace.NewPolicy(q.Threshold(policy.PassingThreshold))
}

func handleGetEquipment(cat *makerspace.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e := equipmentFrom(r)

		resp := EquipmentDetail{EquipmentItem: toEquipmentItem(e)}
		if d, ok := cat.DetailsFor(e); ok {
			resp.Details = toDetailsView(d)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleAccess(cat *makerspace.Catalog, policy makerspace.Policy, v *requestValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e := equipmentFrom(r)
		p := trackPolicy(cat, policy, e)

		var req AccessRequest
		if !v.decodeOptional(w, r, &req) {
			return
		}

		rec := makerspace.TrainingRecord{
			QuizStarted:      req.QuizStarted,
			InPersonAttended: req.InPersonAttended,
			SignedOff:        req.SignedOff,
		}
		if req.QuizScorePercent != nil {
			rec.QuizResult = &makerspace.Result{ScorePercent: *req.QuizScorePercent}
		}

		d, err := p.Decide(e, rec)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := AccessResponse{
			EquipmentID:      e.ID,
			TrainingRequired: string(e.TrainingRequired),
			State:            string(d.State),
			CanAccess:        d.CanAccess,
			NextStep:         string(d.NextStep),
			PassingThreshold: p.PassingThreshold,
		}
		if d.NextStep == makerspace.StepAttendInPerson {
			resp.Sessions = toWorkshopViews(cat.SessionsFor(e.TrackID))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
