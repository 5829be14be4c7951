package report

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"ews-reports/internal/config"
	"ews-reports/internal/database"
	"ews-reports/internal/features/comment"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db := &database.Database{Backend: database.BackendMemory}

	reportRepo, err := NewReportRepository(db)
	if err != nil {
		t.Fatalf("NewReportRepository() error = %v", err)
	}
	commentRepo, err := comment.NewCommentRepository(db)
	if err != nil {
		t.Fatalf("NewCommentRepository() error = %v", err)
	}

	cfg := &config.Config{Environment: "test"}
	controller := NewReportController(
		NewReportService(reportRepo),
		comment.NewCommentService(commentRepo),
		cfg,
		zap.NewNop(),
	)

	app := fiber.New()
	NewReportApi(controller).Setup(app)
	return app
}

func TestCreateReportValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid report",
			body:       `{"week":"2026-W34","department":"Vertrieb","kpis":{"umsatz":12.5}}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			name:       "missing week",
			body:       `{"department":"Vertrieb"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "missing department",
			body:       `{"week":"2026-W34"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "non-numeric kpi value",
			body:       `{"week":"2026-W34","department":"Vertrieb","kpis":{"umsatz":"viel"}}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"week":`,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/reports", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestReportLifecycle(t *testing.T) {
	app := newTestApp(t)

	create := httptest.NewRequest("POST", "/api/reports",
		strings.NewReader(`{"week":"2026-W34","department":"Vertrieb","status":"yellow"}`))
	create.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(create)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}

	var created struct {
		Data Report `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Data.ID == "" {
		t.Fatal("created report has no id")
	}

	t.Run("get includes empty comments array", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/"+created.Data.ID, nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("get status = %d", resp.StatusCode)
		}

		var got struct {
			Data struct {
				Report
				Comments []comment.Comment `json:"comments"`
			} `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode get response: %v", err)
		}
		if got.Data.Comments == nil {
			t.Error("comments missing from report payload")
		}
	})

	t.Run("update ignores id and createdAt in body", func(t *testing.T) {
		body := `{"id":"forged","createdAt":"2000-01-01T00:00:00Z","status":"red"}`
		req := httptest.NewRequest("PUT", "/api/reports/"+created.Data.ID, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("update status = %d", resp.StatusCode)
		}

		var got struct {
			Data Report `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode update response: %v", err)
		}
		if got.Data.ID != created.Data.ID {
			t.Errorf("id changed to %s", got.Data.ID)
		}
		if got.Data.Status != StatusRed {
			t.Errorf("status = %s, want red", got.Data.Status)
		}
		if got.Data.CreatedAt.Year() == 2000 {
			t.Error("createdAt overwritten from request body")
		}
	})

	t.Run("unknown id yields 404 envelope", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/missing", nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("status = %d, want 404", resp.StatusCode)
		}

		var env struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decode 404 body: %v", err)
		}
		if env.Success || env.Error != "Report not found" {
			t.Errorf("envelope = %+v", env)
		}
	})

	t.Run("delete removes the report", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/reports/"+created.Data.ID, nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("delete status = %d", resp.StatusCode)
		}

		resp, err = app.Test(httptest.NewRequest("GET", "/api/reports/"+created.Data.ID, nil))
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
		}
	})
}
