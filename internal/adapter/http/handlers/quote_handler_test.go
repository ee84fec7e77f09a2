package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pcbquote/internal/adapter/http/handlers/mocks"
	"pcbquote/internal/domain/entities"
	"pcbquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validQuoteBody = `{
	"layer_count": 2,
	"board_thickness_mm": 1.6,
	"single_board_length_mm": 100,
	"single_board_width_mm": 100,
	"single_board_count": 10,
	"ordered_at": "2026-03-02T10:00:00Z"
}`

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing layer count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"board_thickness_mm":1.6}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed ordered_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		body := `{"layer_count":2,"board_thickness_mm":1.6,"ordered_at":"yesterday"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().GenerateQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidThickness)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().GenerateQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("rate feed down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		finish := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().
			GenerateQuote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd usecase.QuoteCommand) (entities.Quote, error) {
				if cmd.Spec.LayerCount != 2 || cmd.Spec.SingleBoardCount != 10 {
					t.Fatalf("unexpected command spec: %+v", cmd.Spec)
				}
				if cmd.Spec.SurfaceFinish != entities.FinishHASL {
					t.Fatalf("expected HASL default, got %s", cmd.Spec.SurfaceFinish)
				}
				return entities.Quote{
					ID: "q-1",
					Price: entities.PriceBreakdown{
						TotalExtraPrice: 600,
						Detail:          map[string]float64{"base_price": 450, "engineering_fee": 150},
					},
					LeadTime:            entities.LeadTimeResult{CycleDays: 2},
					EstimatedFinishDate: finish,
					Currency:            "CNY",
					ExchangeRate:        1,
					DisplayTotal:        600,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["quote_id"] != "q-1" {
			t.Fatalf("expected quote_id q-1, got %v", resp["quote_id"])
		}
		if resp["total_extra_price"] != 600.0 {
			t.Fatalf("expected total 600, got %v", resp["total_extra_price"])
		}
		if resp["estimated_finish_date"] != "2026-03-04" {
			t.Fatalf("expected finish date 2026-03-04, got %v", resp["estimated_finish_date"])
		}
	})
}

func TestQuoteHandler_PreviewLeadTime(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/lead-time", h.PreviewLeadTime)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/lead-time", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/lead-time", h.PreviewLeadTime)

		finish := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().
			PreviewLeadTime(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.LeadTimeResult{CycleDays: 2, Reasons: []string{"base cycle 2 day(s)"}}, finish, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/lead-time", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["cycle_days"] != 2.0 {
			t.Fatalf("expected 2 cycle days, got %v", resp["cycle_days"])
		}
		if resp["estimated_finish_date"] != "2026-03-04" {
			t.Fatalf("expected finish date 2026-03-04, got %v", resp["estimated_finish_date"])
		}
	})
}
