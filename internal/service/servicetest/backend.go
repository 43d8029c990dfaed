// Package servicetest provides an in-memory stand-in for the plan backend.
package servicetest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/mux"
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/plan"
)

// Upload is what the fake backend received on the extraction endpoint.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Backend serves canned responses for the three endpoints and records
// what it received. Set the exported fields before issuing requests.
type Backend struct {
	Server *httptest.Server

	mu          sync.Mutex
	Plan        *plan.Result
	Extraction  *form.ExtractionResult
	FailStatus  int    // non-zero: every POST answers with this status
	FailMessage string // error text for FailStatus; empty sends no payload
	Generated   []form.Data
	Uploads     []Upload
}

// NewBackend starts a fake backend. It is closed when the test ends.
func NewBackend(t interface {
	Helper()
	Cleanup(func())
}) *Backend {
	t.Helper()
	b := &Backend{Plan: SamplePlan(), Extraction: &form.ExtractionResult{Confidence: form.ConfidenceHigh}}

	r := mux.NewRouter()
	r.HandleFunc("/api/", b.info).Methods(http.MethodGet)
	r.HandleFunc("/api/health/", b.health).Methods(http.MethodGet)
	r.HandleFunc("/api/generate/", b.generate).Methods(http.MethodPost)
	r.HandleFunc("/api/extract-inbody/", b.extract).Methods(http.MethodPost)

	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the API base URL.
func (b *Backend) URL() string { return b.Server.URL + "/api" }

// Fail makes every POST answer with status and message.
func (b *Backend) Fail(status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.FailStatus = status
	b.FailMessage = message
}

// SetExtraction replaces the extraction response.
func (b *Backend) SetExtraction(r *form.ExtractionResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Extraction = r
}

// Received returns copies of what was submitted so far.
func (b *Backend) Received() ([]form.Data, []Upload) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]form.Data(nil), b.Generated...), append([]Upload(nil), b.Uploads...)
}

func (b *Backend) failed(w http.ResponseWriter) bool {
	if b.FailStatus == 0 {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(b.FailStatus)
	if b.FailMessage != "" {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": b.FailMessage})
	}
	return true
}

func (b *Backend) info(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"name":    "Project Trainer API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"POST /api/generate/":       "generate a training plan",
			"POST /api/extract-inbody/": "extract InBody data from an image",
			"GET /api/health/":          "health check",
		},
	})
}

func (b *Backend) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "healthy", "message": "Project Trainer API is running"})
}

func (b *Backend) generate(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failed(w) {
		return
	}
	var d form.Data
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid input data"})
		return
	}
	b.Generated = append(b.Generated, d)
	writeJSON(w, b.Plan)
}

func (b *Backend) extract(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failed(w) {
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "image file is required"})
		return
	}
	defer file.Close()
	data, _ := io.ReadAll(file)
	b.Uploads = append(b.Uploads, Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	writeJSON(w, b.Extraction)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// SamplePlan returns a small but complete plan result.
func SamplePlan() *plan.Result {
	return &plan.Result{
		AnalysisReport: &plan.AnalysisReport{
			BodyType:                 "Standard",
			BodyFatEvaluation:        "Within range",
			SkeletalMuscleEvaluation: "Average",
			ArmBalance:               "Balanced",
			LegBalance:               "Balanced",
			UpperLowerBalance:        "Balanced",
			Concerns:                 []string{"Lower back"},
		},
		TrainingPlan: &plan.TrainingPlan{
			SplitMethod:    "Upper/Lower",
			SplitRationale: "Two sessions per region each week",
			WeeklySchedule: []plan.DayPlan{
				{DayLabel: "Day 1", Focus: "Upper body", Exercises: []plan.Exercise{
					{TargetArea: "Chest", ExerciseName: "Bench press", Sets: 3, Reps: "8-10", IntervalSeconds: 90},
				}},
				{DayLabel: "Day 2", Focus: "Lower body", Exercises: []plan.Exercise{
					{TargetArea: "Legs", ExerciseName: "Goblet squat", Sets: 3, Reps: "12"},
				}},
			},
			PriorityPoints: []string{"Brace the core"},
		},
	}
}
