package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/gradebook/docs"
	"github.com/lshigami/gradebook/internal/controller"
	"github.com/lshigami/gradebook/internal/dto"
	"github.com/lshigami/gradebook/internal/repository"
	"github.com/lshigami/gradebook/internal/service"
	"github.com/lshigami/gradebook/internal/testutil"
	"github.com/swaggo/swag"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	testutil.SeedStudent(t, db, "S1", "Asha", "asha@example.com")
	testutil.SeedStudent(t, db, "S2", "Ben", "ben@example.com")
	testutil.SeedSubject(t, db, "SUB1", "Mathematics")

	svc := service.NewMarkService(
		repository.NewMarkRepository(db),
		repository.NewStudentRepository(db),
		repository.NewSubjectRepository(db),
	)
	ctrl := controller.NewMarkController(svc, repository.NewGormHealthChecker(db))

	router := gin.New()
	router.Use(controller.ErrorHandler())
	ctrl.RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func addMark(t *testing.T, router *gin.Engine, body string) dto.MarkResponse {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/api/v1/marks", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add mark: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp dto.AddMarkResponse
	decode(t, rec, &resp)
	return resp.Marks
}

func TestAddMarks(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/marks",
		`{"studentId":"S1","subjectId":"SUB1","marksObtained":45,"totalMarks":50,"examType":"final"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp dto.AddMarkResponse
	decode(t, rec, &resp)
	if !resp.Success || resp.Message != "Marks added successfully" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	m := resp.Marks
	if m.ID == "" {
		t.Error("expected generated id")
	}
	if m.StudentID != "S1" || m.SubjectID != "SUB1" || m.MarksObtained != 45 || m.TotalMarks != 50 || m.ExamType != "final" {
		t.Errorf("unexpected mark: %+v", m)
	}
	if m.CreatedAt.IsZero() || m.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestAddMarksErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantKind   string
		wantMsg    string
	}{
		{
			name:       "malformed json",
			body:       `{"studentId":`,
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
			wantMsg:    "Invalid request body",
		},
		{
			name:       "missing total marks",
			body:       `{"studentId":"S1","subjectId":"SUB1","marksObtained":45,"examType":"final"}`,
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
			wantMsg:    "All fields are required",
		},
		{
			name:       "blank exam type",
			body:       `{"studentId":"S1","subjectId":"SUB1","marksObtained":45,"totalMarks":50,"examType":"   "}`,
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
			wantMsg:    "All fields are required",
		},
		{
			name:       "unknown subject",
			body:       `{"studentId":"S1","subjectId":"NOPE","marksObtained":45,"totalMarks":50,"examType":"final"}`,
			wantStatus: http.StatusNotFound,
			wantKind:   "not_found",
			wantMsg:    "Invalid subject ID",
		},
		{
			name:       "unknown student",
			body:       `{"studentId":"S9","subjectId":"SUB1","marksObtained":45,"totalMarks":50,"examType":"final"}`,
			wantStatus: http.StatusNotFound,
			wantKind:   "not_found",
			wantMsg:    "Invalid student ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/v1/marks", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			var resp dto.ErrorResponse
			decode(t, rec, &resp)
			if resp.Success {
				t.Error("expected success=false")
			}
			if resp.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", resp.Kind, tt.wantKind)
			}
			if resp.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMsg)
			}
		})
	}

	rec := doRequest(t, router, http.MethodGet, "/api/v1/marks", "")
	var list dto.GetMarksResponse
	decode(t, rec, &list)
	if len(list.Marks) != 0 {
		t.Errorf("rejected requests must not persist marks, got %d", len(list.Marks))
	}
}

func TestAddMarksTrimsIDs(t *testing.T) {
	router := newTestRouter(t)

	m := addMark(t, router, `{"studentId":"S1","subjectId":" SUB1","marksObtained":45,"totalMarks":50,"examType":" final "}`)
	if m.SubjectID != "SUB1" || m.ExamType != "final" {
		t.Errorf("unexpected mark: %+v", m)
	}
}

func TestBulkUploadMarks(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/marks/bulk", `{
		"subjectId": "SUB1",
		"examType": "midterm",
		"marksData": [
			{"studentId": "S1", "marksObtained": 40, "totalMarks": 50},
			{"studentId": "S2", "marksObtained": 0, "totalMarks": 50}
		]
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp dto.BulkUploadMarksResponse
	decode(t, rec, &resp)
	if resp.Message != "Marks uploaded successfully for all students" {
		t.Errorf("message = %q", resp.Message)
	}
	if len(resp.SavedMarks) != 2 {
		t.Fatalf("expected 2 saved marks, got %d", len(resp.SavedMarks))
	}
	for i, want := range []string{"S1", "S2"} {
		got := resp.SavedMarks[i]
		if got.StudentID != want || got.SubjectID != "SUB1" || got.ExamType != "midterm" || got.ID == "" {
			t.Errorf("saved[%d] = %+v", i, got)
		}
	}
	if resp.SavedMarks[1].MarksObtained != 0 {
		t.Errorf("expected a zero score to be kept, got %v", resp.SavedMarks[1].MarksObtained)
	}
}

func TestBulkUploadMarksIsAllOrNothing(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing exam type",
			body:       `{"subjectId":"SUB1","marksData":[{"studentId":"S1","marksObtained":1,"totalMarks":2}]}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Subject ID, marks data, and exam type are required",
		},
		{
			name:       "empty marks data",
			body:       `{"subjectId":"SUB1","examType":"final","marksData":[]}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Marks data must be a non-empty array",
		},
		{
			name:       "entry missing score",
			body:       `{"subjectId":"SUB1","examType":"final","marksData":[{"studentId":"S1","totalMarks":2}]}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid marks data",
		},
		{
			name:       "one unknown student",
			body:       `{"subjectId":"SUB1","examType":"final","marksData":[{"studentId":"S1","marksObtained":1,"totalMarks":2},{"studentId":"S9","marksObtained":1,"totalMarks":2}]}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Some student IDs are invalid",
		},
		{
			name:       "duplicate student",
			body:       `{"subjectId":"SUB1","examType":"final","marksData":[{"studentId":"S1","marksObtained":1,"totalMarks":2},{"studentId":"S1","marksObtained":1,"totalMarks":2}]}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Duplicate student IDs in marks data",
		},
		{
			name:       "unknown subject",
			body:       `{"subjectId":"NOPE","examType":"final","marksData":[{"studentId":"S1","marksObtained":1,"totalMarks":2}]}`,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Invalid subject ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/v1/marks/bulk", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			var resp dto.ErrorResponse
			decode(t, rec, &resp)
			if resp.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMsg)
			}
		})
	}

	rec := doRequest(t, router, http.MethodGet, "/api/v1/marks", "")
	var list dto.GetMarksResponse
	decode(t, rec, &list)
	if len(list.Marks) != 0 {
		t.Errorf("failed uploads must not persist marks, got %d", len(list.Marks))
	}
}

func TestUpdateMarks(t *testing.T) {
	router := newTestRouter(t)
	created := addMark(t, router, `{"studentId":"S1","subjectId":"SUB1","marksObtained":45,"totalMarks":50,"examType":"final"}`)

	rec := doRequest(t, router, http.MethodPatch, "/api/v1/marks/"+created.ID, `{"marksObtained":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp dto.UpdateMarkResponse
	decode(t, rec, &resp)
	if resp.Message != "Marks updated successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.UpdatedMarks == nil {
		t.Fatal("expected updated mark in response")
	}
	if resp.UpdatedMarks.MarksObtained != 0 || resp.UpdatedMarks.TotalMarks != 50 || resp.UpdatedMarks.ExamType != "final" {
		t.Errorf("unexpected updated mark: %+v", resp.UpdatedMarks)
	}

	rec = doRequest(t, router, http.MethodPut, "/api/v1/marks/"+created.ID, `{"examType":"retake"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body = %s", rec.Code, rec.Body.String())
	}
	decode(t, rec, &resp)
	if resp.UpdatedMarks == nil || resp.UpdatedMarks.ExamType != "retake" || resp.UpdatedMarks.MarksObtained != 0 {
		t.Errorf("unexpected updated mark after PUT: %+v", resp.UpdatedMarks)
	}
}

func TestUpdateMarksUnknownID(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPatch, "/api/v1/marks/does-not-exist", `{"totalMarks":100}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var raw map[string]json.RawMessage
	decode(t, rec, &raw)
	if string(raw["updatedMarks"]) != "null" {
		t.Errorf("updatedMarks = %s, want null", raw["updatedMarks"])
	}
}

func TestUpdateMarksRejectsEmptyBody(t *testing.T) {
	router := newTestRouter(t)
	created := addMark(t, router, `{"studentId":"S1","subjectId":"SUB1","marksObtained":45,"totalMarks":50,"examType":"final"}`)

	for _, body := range []string{"", "{}", `{"examType":`} {
		rec := doRequest(t, router, http.MethodPatch, "/api/v1/marks/"+created.ID, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestGetMarks(t *testing.T) {
	router := newTestRouter(t)
	addMark(t, router, `{"studentId":"S1","subjectId":"SUB1","marksObtained":45,"totalMarks":50,"examType":"final"}`)
	addMark(t, router, `{"studentId":"S2","subjectId":"SUB1","marksObtained":30,"totalMarks":50,"examType":"final"}`)
	addMark(t, router, `{"studentId":"S1","subjectId":"SUB1","marksObtained":20,"totalMarks":25,"examType":"quiz"}`)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"no filters", "", 3},
		{"by student", "?studentId=S1", 2},
		{"by exam type", "?examType=final", 2},
		{"combined", "?studentId=S1&examType=quiz", 1},
		{"no match", "?studentId=S9", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, "/api/v1/marks"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			var resp dto.GetMarksResponse
			decode(t, rec, &resp)
			if resp.Message != "Marks retrieved successfully" {
				t.Errorf("message = %q", resp.Message)
			}
			if resp.Marks == nil {
				t.Fatal("marks must be an array, not null")
			}
			if len(resp.Marks) != tt.want {
				t.Fatalf("got %d marks, want %d", len(resp.Marks), tt.want)
			}
			for _, m := range resp.Marks {
				if m.Student == nil || m.Subject == nil {
					t.Fatalf("expected expanded student and subject: %+v", m)
				}
				if m.Subject.SubjectName != "Mathematics" {
					t.Errorf("subject name = %q", m.Subject.SubjectName)
				}
				if m.Student.ID == "S1" && (m.Student.Name != "Asha" || m.Student.Email != "asha@example.com") {
					t.Errorf("unexpected student summary: %+v", m.Student)
				}
			}
		})
	}
}

func TestDeleteMarks(t *testing.T) {
	router := newTestRouter(t)
	created := addMark(t, router, `{"studentId":"S1","subjectId":"SUB1","marksObtained":45,"totalMarks":50,"examType":"final"}`)

	for _, id := range []string{created.ID, created.ID, "does-not-exist"} {
		rec := doRequest(t, router, http.MethodDelete, "/api/v1/marks/"+id, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("delete %s: status = %d, body = %s", id, rec.Code, rec.Body.String())
		}
		var resp dto.DeleteMarkResponse
		decode(t, rec, &resp)
		if !resp.Success || resp.Message != "Marks deleted successfully" {
			t.Errorf("unexpected envelope: %+v", resp)
		}
	}

	rec := doRequest(t, router, http.MethodGet, "/api/v1/marks", "")
	var list dto.GetMarksResponse
	decode(t, rec, &list)
	if len(list.Marks) != 0 {
		t.Errorf("expected no marks after delete, got %d", len(list.Marks))
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp dto.HealthResponse
	decode(t, rec, &resp)
	if resp.Status != "ok" || resp.Store != "postgres" {
		t.Errorf("unexpected health response: %+v", resp)
	}
}

func TestSwaggerPathsAreRouted(t *testing.T) {
	router := newTestRouter(t)
	routed := make(map[string]bool)
	for _, r := range router.Routes() {
		routed[r.Method+" "+r.Path] = true
	}

	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc() error = %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode swagger doc: %v", err)
	}
	if len(doc.Paths) == 0 {
		t.Fatal("swagger doc has no paths")
	}

	for path, methods := range doc.Paths {
		ginPath := docs.SwaggerInfo.BasePath + strings.NewReplacer("{", ":", "}", "").Replace(path)
		for method := range methods {
			key := strings.ToUpper(method) + " " + ginPath
			if !routed[key] {
				t.Errorf("documented %s is not routed", key)
			}
		}
	}
}
