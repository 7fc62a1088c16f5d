package seed

import (
	"fmt"
	"time"

	"github.com/cumaker/makerspace/internal/makerspace"
)

// YAML document shapes. Enum fields stay strings here and are parsed into
// makerspace types so an unknown value is reported instead of defaulted.

type equipmentFileDoc struct {
	Equipment      []equipmentDoc `yaml:"equipment"`
	DefaultDetails *detailsDoc    `yaml:"defaultDetails"`
}

type equipmentDoc struct {
	ID               string      `yaml:"id"`
	Name             string      `yaml:"name"`
	Category         string      `yaml:"category"`
	CategoryID       string      `yaml:"categoryId"`
	Location         string      `yaml:"location"`
	Status           string      `yaml:"status"`
	WaitingCount     *int        `yaml:"waitingCount"`
	TrainingRequired string      `yaml:"trainingRequired"`
	TrackID          string      `yaml:"trackId"`
	Description      string      `yaml:"description"`
	Details          *detailsDoc `yaml:"details"`
}

type detailsDoc struct {
	WhatIs         string       `yaml:"whatIs"`
	WhatCanYouMake []string     `yaml:"whatCanYouMake"`
	TypicalTime    string       `yaml:"typicalTime"`
	Materials      []string     `yaml:"materials"`
	Specs          []specDoc    `yaml:"specs"`
	Settings       []settingDoc `yaml:"settings"`
	Tips           []string     `yaml:"tips"`
	FAQs           []faqDoc     `yaml:"faqs"`
}

type specDoc struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type settingDoc struct {
	Material  string `yaml:"material"`
	Speed     string `yaml:"speed"`
	Power     string `yaml:"power"`
	Frequency string `yaml:"frequency"`
}

type faqDoc struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type quizzesFileDoc struct {
	Tracks []trackDoc `yaml:"tracks"`
}

type trackDoc struct {
	ID               string        `yaml:"id"`
	Name             string        `yaml:"name"`
	PassingThreshold int           `yaml:"passingThreshold"`
	Questions        []questionDoc `yaml:"questions"`
}

type questionDoc struct {
	ID             int      `yaml:"id"`
	Question       string   `yaml:"question"`
	Options        []string `yaml:"options"`
	CorrectAnswers []int    `yaml:"correctAnswers"`
	MultipleChoice bool     `yaml:"multipleChoice"`
}

type sitesFileDoc struct {
	Sites []siteDoc `yaml:"sites"`
}

type siteDoc struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	ShortName   string     `yaml:"shortName"`
	Address     string     `yaml:"address"`
	MapURL      string     `yaml:"mapUrl"`
	Description string     `yaml:"description"`
	Phone       string     `yaml:"phone"`
	Email       string     `yaml:"email"`
	Hours       []hoursDoc `yaml:"hours"`
	Equipment   []string   `yaml:"equipment"`
}

type hoursDoc struct {
	Day  string `yaml:"day"`
	Time string `yaml:"time"`
}

type printersFileDoc struct {
	Printers []printerDoc `yaml:"printers"`
}

type printerDoc struct {
	ID            int    `yaml:"id"`
	Name          string `yaml:"name"`
	Location      string `yaml:"location"`
	Status        string `yaml:"status"`
	Progress      int    `yaml:"progress"`
	TimeRemaining string `yaml:"timeRemaining"`
	CurrentJob    string `yaml:"currentJob"`
}

type workshopsFileDoc struct {
	Workshops []workshopDoc `yaml:"workshops"`
}

type workshopDoc struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Time        string `yaml:"time"`
	Location    string `yaml:"location"`
	Instructor  string `yaml:"instructor"`
	Difficulty  string `yaml:"difficulty"`
	Category    string `yaml:"category"`
	SpotsTotal  int    `yaml:"spotsTotal"`
	SpotsFilled int    `yaml:"spotsFilled"`
	TrackID     string `yaml:"trackId"`
	Past        bool   `yaml:"past"`
}

const dateLayout = "2006-01-02"

func (d equipmentDoc) toEquipment() (makerspace.Equipment, error) {
	cat, err := makerspace.ParseCategory(d.CategoryID)
	if err != nil {
		return makerspace.Equipment{}, fmt.Errorf("equipment %q: %w", d.ID, err)
	}
	loc, err := makerspace.ParseLocation(d.Location)
	if err != nil {
		return makerspace.Equipment{}, fmt.Errorf("equipment %q: %w", d.ID, err)
	}
	status, err := makerspace.ParseEquipmentStatus(d.Status)
	if err != nil {
		return makerspace.Equipment{}, fmt.Errorf("equipment %q: %w", d.ID, err)
	}
	training, err := makerspace.ParseTrainingType(d.TrainingRequired)
	if err != nil {
		return makerspace.Equipment{}, fmt.Errorf("equipment %q: %w", d.ID, err)
	}

	e := makerspace.Equipment{
		ID:               d.ID,
		Name:             d.Name,
		Category:         d.Category,
		CategoryID:       cat,
		Location:         loc,
		Status:           status,
		WaitingCount:     d.WaitingCount,
		TrainingRequired: training,
		TrackID:          d.TrackID,
		Description:      d.Description,
	}
	if e.Category == "" {
		e.Category = cat.Label()
	}
	if d.Details != nil {
		det := d.Details.toDetails()
		e.Details = &det
	}
	return e, nil
}

func (d detailsDoc) toDetails() makerspace.Details {
	out := makerspace.Details{
		WhatIs:         d.WhatIs,
		WhatCanYouMake: d.WhatCanYouMake,
		TypicalTime:    d.TypicalTime,
		Materials:      d.Materials,
		Tips:           d.Tips,
	}
	for _, s := range d.Specs {
		out.Specs = append(out.Specs, makerspace.Spec{Label: s.Label, Value: s.Value})
	}
	for _, s := range d.Settings {
		out.Settings = append(out.Settings, makerspace.Setting{
			Material:  s.Material,
			Speed:     s.Speed,
			Power:     s.Power,
			Frequency: s.Frequency,
		})
	}
	for _, f := range d.FAQs {
		out.FAQs = append(out.FAQs, makerspace.FAQ{Question: f.Question, Answer: f.Answer})
	}
	return out
}

func (d trackDoc) toQuiz() makerspace.Quiz {
	q := makerspace.Quiz{
		TrackID:          d.ID,
		Name:             d.Name,
		PassingThreshold: d.PassingThreshold,
		Questions:        make([]makerspace.Question, 0, len(d.Questions)),
	}
	for _, qd := range d.Questions {
		q.Questions = append(q.Questions, makerspace.Question{
			ID:             qd.ID,
			Prompt:         qd.Question,
			Options:        qd.Options,
			CorrectAnswers: qd.CorrectAnswers,
			MultipleChoice: qd.MultipleChoice,
		})
	}
	return q
}

func (d siteDoc) toSite() makerspace.Site {
	s := makerspace.Site{
		ID:          makerspace.Location(d.ID),
		Name:        d.Name,
		ShortName:   d.ShortName,
		Address:     d.Address,
		MapURL:      d.MapURL,
		Description: d.Description,
		Phone:       d.Phone,
		Email:       d.Email,
		Equipment:   d.Equipment,
	}
	for _, h := range d.Hours {
		s.Hours = append(s.Hours, makerspace.Hours{Day: h.Day, Time: h.Time})
	}
	return s
}

func (d printerDoc) toPrinter() makerspace.Printer {
	return makerspace.Printer{
		ID:            d.ID,
		Name:          d.Name,
		Location:      makerspace.Location(d.Location),
		Status:        makerspace.PrinterStatus(d.Status),
		Progress:      d.Progress,
		TimeRemaining: d.TimeRemaining,
		CurrentJob:    d.CurrentJob,
	}
}

func (d workshopDoc) toWorkshop() (makerspace.Workshop, error) {
	date, err := time.Parse(dateLayout, d.Date)
	if err != nil {
		return makerspace.Workshop{}, fmt.Errorf("%w: workshop %q: date %q: %v", makerspace.ErrInvalidConfiguration, d.ID, d.Date, err)
	}
	return makerspace.Workshop{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Date:        date,
		Time:        d.Time,
		Location:    makerspace.Location(d.Location),
		Instructor:  d.Instructor,
		Difficulty:  makerspace.Difficulty(d.Difficulty),
		Category:    d.Category,
		SpotsTotal:  d.SpotsTotal,
		SpotsFilled: d.SpotsFilled,
		TrackID:     d.TrackID,
		Past:        d.Past,
	}, nil
}
