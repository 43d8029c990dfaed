// Package testfixtures provides fakes and helpers for TUI tests.
//
//	svc := testfixtures.NewMockService()
//	svc.Result = testfixtures.SampleResult()
//	m := wizard.New(wizard.Options{Service: svc})
//	...
//	require.Len(t, svc.Generated(), 1)
package testfixtures

import (
	"context"
	"sync"

	"github.com/mark3labs/trainer/internal/archive"
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/plan"
	"github.com/mark3labs/trainer/internal/service"
)

// MockService records calls and returns canned results.
type MockService struct {
	mu sync.Mutex

	Result        *plan.Result
	GenerateError error

	Extraction   *form.ExtractionResult
	ExtractError error

	generated []form.Data
	images    []service.Image
}

func NewMockService() *MockService {
	return &MockService{Result: SampleResult(), Extraction: PartialExtraction()}
}

func (m *MockService) GeneratePlan(_ context.Context, d form.Data) (*plan.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generated = append(m.generated, d)
	if m.GenerateError != nil {
		return nil, m.GenerateError
	}
	return m.Result, nil
}

func (m *MockService) ExtractFromImage(_ context.Context, img service.Image) (*form.ExtractionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images = append(m.images, img)
	if m.ExtractError != nil {
		return nil, m.ExtractError
	}
	return m.Extraction, nil
}

// Generated returns the payloads passed to GeneratePlan.
func (m *MockService) Generated() []form.Data {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]form.Data(nil), m.generated...)
}

// Images returns the images passed to ExtractFromImage.
func (m *MockService) Images() []service.Image {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]service.Image(nil), m.images...)
}

// MockArchive keeps appended plans in memory.
type MockArchive struct {
	mu      sync.Mutex
	Err     error
	records []archive.Record
}

func (a *MockArchive) Append(_ context.Context, in form.Data, res plan.Result) (*archive.Record, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	rec := archive.Record{ID: "rec-1", CreatedAt: FixedTime, Title: plan.Title(res), Input: in, Result: res}
	a.records = append(a.records, rec)
	return &rec, nil
}

// Records returns everything appended so far.
func (a *MockArchive) Records() []archive.Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]archive.Record(nil), a.records...)
}
