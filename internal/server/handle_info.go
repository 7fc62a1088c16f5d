package server

import (
	"net/http"
	"strconv"

	"github.com/cumaker/makerspace/internal/makerspace"
)

type SiteView struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ShortName   string      `json:"shortName"`
	Address     string      `json:"address"`
	MapURL      string      `json:"mapUrl"`
	Description string      `json:"description"`
	Phone       string      `json:"phone,omitempty"`
	Email       string      `json:"email,omitempty"`
	Hours       []HoursView `json:"hours"`
	Equipment   []string    `json:"equipment"`
}

type HoursView struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type PrinterView struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	Status        string `json:"status"`
	StatusLabel   string `json:"statusLabel"`
	Progress      int    `json:"progress"`
	TimeRemaining string `json:"timeRemaining,omitempty"`
	CurrentJob    string `json:"currentJob,omitempty"`
}

type WorkshopView struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	LocationLabel   string `json:"locationLabel"`
	Instructor      string `json:"instructor"`
	Difficulty      string `json:"difficulty"`
	DifficultyLabel string `json:"difficultyLabel"`
	Category        string `json:"category"`
	SpotsTotal      int    `json:"spotsTotal"`
	SpotsFilled     int    `json:"spotsFilled"`
	SpotsLeft       int    `json:"spotsLeft"`
	Full            bool   `json:"full"`
	TrackID         string `json:"trackId,omitempty"`
	Past            bool   `json:"past"`
}

func toWorkshopView(w makerspace.Workshop) WorkshopView {
	return WorkshopView{
		ID:              w.ID,
		Title:           w.Title,
		Description:     w.Description,
		Date:            w.Date.Format("2006-01-02"),
		Time:            w.Time,
		Location:        string(w.Location),
		LocationLabel:   w.Location.Label(),
		Instructor:      w.Instructor,
		Difficulty:      string(w.Difficulty),
		DifficultyLabel: w.Difficulty.Label(),
		Category:        w.Category,
		SpotsTotal:      w.SpotsTotal,
		SpotsFilled:     w.SpotsFilled,
		SpotsLeft:       w.SpotsLeft(),
		Full:            w.Full(),
		TrackID:         w.TrackID,
		Past:            w.Past,
	}
}

func toWorkshopViews(ws []makerspace.Workshop) []WorkshopView {
	out := make([]WorkshopView, 0, len(ws))
	for _, w := range ws {
		out = append(out, toWorkshopView(w))
	}
	return out
}

func handleListWorkshops(cat *makerspace.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var f makerspace.WorkshopFilter

		if v := q.Get("upcoming"); v != "" {
			upcoming, err := strconv.ParseBool(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "upcoming must be true or false")
				return
			}
			past := !upcoming
			f.Past = &past
		}
		if v := q.Get("track"); v != "" {
			if _, err := cat.Quiz(v); err != nil {
				writeError(w, http.StatusBadRequest, "unknown track")
				return
			}
			f.TrackID = v
		}

		writeJSON(w, http.StatusOK, toWorkshopViews(cat.Workshops(f)))
	}
}

func handleListLocations(cat *makerspace.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sites := cat.Sites()
		items := make([]SiteView, 0, len(sites))
		for _, s := range sites {
			v := SiteView{
				ID:          string(s.ID),
				Name:        s.Name,
				ShortName:   s.ShortName,
				Address:     s.Address,
				MapURL:      s.MapURL,
				Description: s.Description,
				Phone:       s.Phone,
				Email:       s.Email,
				Hours:       make([]HoursView, 0, len(s.Hours)),
				Equipment:   nonNil(s.Equipment),
			}
			for _, h := range s.Hours {
				v.Hours = append(v.Hours, HoursView(h))
			}
			items = append(items, v)
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// handleListPrinters serves the 3D printer status board. The board is a
// static snapshot loaded with the catalog.
func handleListPrinters(cat *makerspace.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var loc makerspace.Location
		if v := r.URL.Query().Get("location"); v != "" {
			var err error
			if loc, err = makerspace.ParseLocation(v); err != nil {
				writeError(w, http.StatusBadRequest, "unknown location")
				return
			}
		}
		printers := cat.PrintersAt(loc)

		items := make([]PrinterView, 0, len(printers))
		for _, p := range printers {
			items = append(items, PrinterView{
				ID:            p.ID,
				Name:          p.Name,
				Location:      string(p.Location),
				Status:        string(p.Status),
				StatusLabel:   p.Status.Label(),
				Progress:      p.Progress,
				TimeRemaining: p.TimeRemaining,
				CurrentJob:    p.CurrentJob,
			})
		}
		writeJSON(w, http.StatusOK, items)
	}
}
