package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/cumaker/makerspace/internal/handler/health"
)

// HealthResponse maps check names to their results.
type HealthResponse map[string]health.Result

type equipmentListQuery struct {
	Category string `query:"category" description:"Category ID, or \"all\"."`
	Location string `query:"location" enum:"watt,cooper,cook"`
	Status   string `query:"status" enum:"available,in-use,offline"`
	Search   string `query:"q" description:"Case-insensitive match on name and description."`
}

type equipmentPath struct {
	ID string `path:"id"`
}

type accessInput struct {
	equipmentPath
	AccessRequest
}

type trackPath struct {
	TrackID string `path:"trackID"`
}

type gradeInput struct {
	trackPath
	GradeRequest
}

type printerListQuery struct {
	Location string `query:"location" enum:"watt,cooper,cook"`
}

type workshopListQuery struct {
	Upcoming string `query:"upcoming" enum:"true,false" description:"Only upcoming (true) or only past (false) sessions."`
	Track    string `query:"track" description:"Training track ID."`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Makerspace API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Equipment catalog, training quizzes and access checks for the makerspace.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Reports whether the catalog and training tracks loaded correctly.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/categories
	listCategories, _ := r.NewOperationContext(http.MethodGet, "/api/categories")
	listCategories.SetSummary("List categories")
	listCategories.SetDescription("Returns every equipment category with the number of items in it.")
	listCategories.AddRespStructure([]CategoryItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listCategories)

	// GET /api/equipment
	listEquipment, _ := r.NewOperationContext(http.MethodGet, "/api/equipment")
	listEquipment.SetSummary("List equipment")
	listEquipment.SetDescription("Returns equipment matching every given filter, in catalog order.")
	listEquipment.AddReqStructure(equipmentListQuery{})
	listEquipment.AddRespStructure([]EquipmentItem{}, openapi.WithHTTPStatus(http.StatusOK))
	listEquipment.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(listEquipment)

	// GET /api/equipment/{id}
	getEquipment, _ := r.NewOperationContext(http.MethodGet, "/api/equipment/{id}")
	getEquipment.SetSummary("Get equipment")
	getEquipment.SetDescription("Returns one item with its detail page content.")
	getEquipment.AddReqStructure(equipmentPath{})
	getEquipment.AddRespStructure(EquipmentDetail{}, openapi.WithHTTPStatus(http.StatusOK))
	getEquipment.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getEquipment)

	// POST /api/equipment/{id}/access
	postAccess, _ := r.NewOperationContext(http.MethodPost, "/api/equipment/{id}/access")
	postAccess.SetSummary("Check access")
	postAccess.SetDescription("Derives the training state for a user's record and says whether they may use the item.")
	postAccess.AddReqStructure(accessInput{})
	postAccess.AddRespStructure(AccessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAccess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postAccess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postAccess)

	// GET /api/tracks
	listTracks, _ := r.NewOperationContext(http.MethodGet, "/api/tracks")
	listTracks.SetSummary("List training tracks")
	listTracks.AddRespStructure([]TrackSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listTracks)

	// GET /api/tracks/{trackID}
	getTrack, _ := r.NewOperationContext(http.MethodGet, "/api/tracks/{trackID}")
	getTrack.SetSummary("Get quiz")
	getTrack.SetDescription("Returns the quiz questions for a track. Correct answers are not included.")
	getTrack.AddReqStructure(trackPath{})
	getTrack.AddRespStructure(TrackDetail{}, openapi.WithHTTPStatus(http.StatusOK))
	getTrack.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getTrack)

	// POST /api/tracks/{trackID}/attempts
	postAttempt, _ := r.NewOperationContext(http.MethodPost, "/api/tracks/{trackID}/attempts")
	postAttempt.SetSummary("Start attempt")
	postAttempt.SetDescription("Returns an empty attempt. Nothing is stored server side.")
	postAttempt.AddReqStructure(trackPath{})
	postAttempt.AddRespStructure(AttemptResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postAttempt.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postAttempt)

	// POST /api/tracks/{trackID}/grade
	postGrade, _ := r.NewOperationContext(http.MethodPost, "/api/tracks/{trackID}/grade")
	postGrade.SetSummary("Grade attempt")
	postGrade.SetDescription("Grades a complete attempt. Answers map question index to selected option indices.")
	postGrade.AddReqStructure(gradeInput{})
	postGrade.AddRespStructure(GradeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postGrade.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postGrade.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postGrade.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postGrade)

	// GET /api/locations
	listLocations, _ := r.NewOperationContext(http.MethodGet, "/api/locations")
	listLocations.SetSummary("List locations")
	listLocations.SetDescription("Returns the makerspace sites with hours and contact details.")
	listLocations.AddRespStructure([]SiteView{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listLocations)

	// GET /api/printers
	listPrinters, _ := r.NewOperationContext(http.MethodGet, "/api/printers")
	listPrinters.SetSummary("List 3D printers")
	listPrinters.SetDescription("Returns the printer status board, optionally for one location.")
	listPrinters.AddReqStructure(printerListQuery{})
	listPrinters.AddRespStructure([]PrinterView{}, openapi.WithHTTPStatus(http.StatusOK))
	listPrinters.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(listPrinters)

	listWorkshops, _ := r.NewOperationContext(http.MethodGet, "/api/workshops")
	listWorkshops.SetSummary("List workshops")
	listWorkshops.SetDescription("Returns scheduled sessions with remaining spots. Sessions with a trackId are the in-person step of that track.")
	listWorkshops.AddReqStructure(workshopListQuery{})
	listWorkshops.AddRespStructure([]WorkshopView{}, openapi.WithHTTPStatus(http.StatusOK))
	listWorkshops.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(listWorkshops)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
