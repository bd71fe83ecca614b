package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"coachly/models"
	"coachly/services/booking"
	"coachly/services/selection"
)

// stubProviderRepo serves a fixed rate for every provider.
type stubProviderRepo struct{}

func (stubProviderRepo) Create(context.Context, *models.Provider) error { return nil }
func (stubProviderRepo) Update(context.Context, *models.Provider) error { return nil }
func (stubProviderRepo) Delete(context.Context, string) error           { return nil }

func (stubProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	return &models.Provider{ID: id, HourlyRate: 60}, nil
}

func (stubProviderRepo) GetAvailability(context.Context, string) (*models.ProviderAvailability, error) {
	return &models.ProviderAvailability{}, nil
}

func (stubProviderRepo) SaveAvailability(context.Context, *models.ProviderAvailability) error {
	return nil
}

// flakyBookingService fails every block for one provider and books the
// rest, mirroring the real service's per-item submission results.
type flakyBookingService struct {
	failProvider string
	created      []models.SelectionBlock
}

func (s *flakyBookingService) SubmitSelections(_ context.Context, _ booking.ClientInfo, blocks []models.SelectionBlock) []booking.SubmissionResult {
	results := make([]booking.SubmissionResult, 0, len(blocks))
	for _, block := range blocks {
		if block.ProviderID == s.failProvider {
			results = append(results, booking.SubmissionResult{Block: block, Error: "provider not found"})
			continue
		}
		s.created = append(s.created, block)
		results = append(results, booking.SubmissionResult{Block: block, Booking: &models.Booking{ID: "b-" + block.StartTime.Format()}})
	}
	return results
}

func (s *flakyBookingService) Create(context.Context, booking.CreateInput) (*models.Booking, error) {
	return nil, errors.New("not used")
}

func (s *flakyBookingService) Get(context.Context, string) (*models.Booking, error) {
	return nil, errors.New("not used")
}

func (s *flakyBookingService) ListByProvider(context.Context, string) ([]models.Booking, error) {
	return nil, nil
}

func (s *flakyBookingService) ListByProviderAndDate(context.Context, string, string) ([]models.Booking, error) {
	return nil, nil
}

func (s *flakyBookingService) Update(context.Context, string, booking.Update) (*models.Booking, error) {
	return nil, errors.New("not used")
}

func (s *flakyBookingService) Confirm(context.Context, string) (*models.Booking, error) {
	return nil, errors.New("not used")
}

func (s *flakyBookingService) Reject(context.Context, string, string) (*models.Booking, error) {
	return nil, errors.New("not used")
}

func (s *flakyBookingService) Cancel(context.Context, string, string) (*models.Booking, error) {
	return nil, errors.New("not used")
}

func (s *flakyBookingService) RecordPayment(context.Context, string, float64) (*models.Booking, error) {
	return nil, errors.New("not used")
}

func newSelectionTestRouter(t *testing.T, svc booking.BookingService) (*gin.Engine, *selection.SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	store := selection.NewSessionStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	h := NewSelectionHandler(store, stubProviderRepo{}, svc, zap.NewNop())

	r := gin.New()
	r.POST("/session/:sessionID/toggle", h.Toggle)
	r.POST("/session/:sessionID/submit", h.Submit)
	r.GET("/session/:sessionID/summary", h.Summary)
	return r, store
}

func seedSession(t *testing.T, store *selection.SessionStore, blocks ...models.SelectionBlock) string {
	t.Helper()
	sessionID, err := store.Create(context.Background())
	require.NoError(t, err)

	agg := selection.NewAggregator()
	for _, b := range blocks {
		agg.Toggle(b.Date, b.StartTime, b.DurationMinutes, selection.BlockMeta{ProviderID: b.ProviderID})
	}
	require.NoError(t, store.Save(context.Background(), sessionID, agg))
	return sessionID
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitPartialFailureKeepsOnlyFailedBlocks(t *testing.T) {
	svc := &flakyBookingService{failProvider: "ghost"}
	r, store := newSelectionTestRouter(t, svc)

	sessionID := seedSession(t, store,
		models.SelectionBlock{Date: "2026-09-01", StartTime: models.MustTimeOfDay("10:00"), DurationMinutes: 60, ProviderID: "prov-1"},
		models.SelectionBlock{Date: "2026-09-01", StartTime: models.MustTimeOfDay("14:00"), DurationMinutes: 30, ProviderID: "ghost"},
		models.SelectionBlock{Date: "2026-09-02", StartTime: models.MustTimeOfDay("09:00"), DurationMinutes: 30, ProviderID: "prov-1"},
	)

	w := postJSON(t, r, "/session/"+sessionID+"/submit", gin.H{"clientId": "client-1"})
	require.Equal(t, http.StatusMultiStatus, w.Code)
	require.Len(t, svc.created, 2)

	// The session survives, holding only the failed block.
	agg, err := store.Load(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, 1, agg.Count())
	require.Len(t, agg.Blocks["2026-09-01"], 1)
	require.Equal(t, "ghost", agg.Blocks["2026-09-01"][0].ProviderID)

	// A retry resubmits the failed block alone: the two bookings that
	// already succeeded are not created again.
	w = postJSON(t, r, "/session/"+sessionID+"/submit", gin.H{"clientId": "client-1"})
	require.Equal(t, http.StatusMultiStatus, w.Code)
	require.Len(t, svc.created, 2)
}

func TestSubmitFullSuccessDeletesSession(t *testing.T) {
	svc := &flakyBookingService{}
	r, store := newSelectionTestRouter(t, svc)

	sessionID := seedSession(t, store,
		models.SelectionBlock{Date: "2026-09-01", StartTime: models.MustTimeOfDay("10:00"), DurationMinutes: 60, ProviderID: "prov-1"},
	)

	w := postJSON(t, r, "/session/"+sessionID+"/submit", gin.H{"clientId": "client-1"})
	require.Equal(t, http.StatusCreated, w.Code)

	_, err := store.Load(context.Background(), sessionID)
	require.ErrorIs(t, err, selection.ErrSessionNotFound)
}

func TestToggleRejectsInvalidDuration(t *testing.T) {
	svc := &flakyBookingService{}
	r, store := newSelectionTestRouter(t, svc)
	sessionID := seedSession(t, store)

	for _, duration := range []int{0, -15, 20} {
		w := postJSON(t, r, "/session/"+sessionID+"/toggle", gin.H{
			"date":            "2026-09-01",
			"startTime":       "10:00",
			"durationMinutes": duration,
			"providerId":      "prov-1",
		})
		require.Equal(t, http.StatusBadRequest, w.Code, "duration %d", duration)
	}

	agg, err := store.Load(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, 0, agg.Count())
}

func TestSummaryGroupsDisplayRangesPerProvider(t *testing.T) {
	svc := &flakyBookingService{}
	r, store := newSelectionTestRouter(t, svc)

	sessionID := seedSession(t, store,
		models.SelectionBlock{Date: "2026-09-01", StartTime: models.MustTimeOfDay("15:00"), DurationMinutes: 30, ProviderID: "prov-1"},
		models.SelectionBlock{Date: "2026-09-01", StartTime: models.MustTimeOfDay("15:30"), DurationMinutes: 30, ProviderID: "prov-2"},
	)

	req := httptest.NewRequest(http.MethodGet, "/session/"+sessionID+"/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		DisplayRanges map[string]map[string][]models.DisplayRange `json:"displayRanges"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	ranges := resp.DisplayRanges["2026-09-01"]
	require.Len(t, ranges, 2)
	require.Equal(t, []models.DisplayRange{
		{Start: models.MustTimeOfDay("15:00"), End: models.MustTimeOfDay("15:30")},
	}, ranges["prov-1"])
	require.Equal(t, []models.DisplayRange{
		{Start: models.MustTimeOfDay("15:30"), End: models.MustTimeOfDay("16:00")},
	}, ranges["prov-2"])
}
