package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

// ===== FAKES =====

type fakeAttendanceService struct {
	remarksReq attendance.UpdateRemarksRequest
	exportReq  attendance.ExportRequest
	exportErr  error
}

func (f *fakeAttendanceService) Report(ctx context.Context, filter attendance.ReportFilter) (attendance.ReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ReportResponse{}, err
	}
	return attendance.ReportResponse{
		TotalCount: 1, Page: filter.Page, Limit: 10, TotalPages: 1, Showing: "1-1 of 1", Pages: []int{1},
		Records: []attendance.SummaryResponse{{EmployeeID: "E1", FirstName: "Alice", Date: "2024-01-10", Present: "Present"}},
	}, nil
}

func (f *fakeAttendanceService) Export(ctx context.Context, req attendance.ExportRequest) (export.File, error) {
	f.exportReq = req
	if f.exportErr != nil {
		return export.File{}, f.exportErr
	}
	return export.File{Name: "Attendance_2024-01-10.csv", ContentType: export.FormatCSV.ContentType(), Data: []byte("a,b\n")}, nil
}

func (f *fakeAttendanceService) UpdateRemarks(ctx context.Context, req attendance.UpdateRemarksRequest) (attendance.SummaryResponse, error) {
	f.remarksReq = req
	if req.EmployeeID == "missing" {
		return attendance.SummaryResponse{}, attendance.ErrAttendanceNotFound
	}
	return attendance.SummaryResponse{EmployeeID: req.EmployeeID, Remarks: req.Remarks}, nil
}

func (f *fakeAttendanceService) Import(ctx context.Context, req attendance.ImportRequest) (attendance.ImportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportResponse{}, err
	}
	return attendance.ImportResponse{Imported: len(req.Records)}, nil
}

type fakeEmployeeService struct {
	employee.EmployeeService
	created employee.CreateEmployeeRequest
}

func (f *fakeEmployeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if id != "emp-1" {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return employee.EmployeeResponse{ID: "emp-1"}, nil
}

func (f *fakeEmployeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	f.created = req
	return employee.EmployeeResponse{ID: "emp-2", EmployeeFields: req.EmployeeFields}, nil
}

func (f *fakeEmployeeService) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	return employee.ListEmployeeResponse{
		TotalCount: 1, Page: 1, Limit: 10, TotalPages: 1, Showing: "1-1 of 1", Pages: []int{1},
		Employees: []employee.EmployeeResponse{{ID: "emp-1"}},
	}, nil
}

type fakeAuthService struct {
	jwt jwt.Service
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if req.Password != "secret1" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	token, exp, err := f.jwt.GenerateAccessToken("uid-1", req.Email, user.RoleHR)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return auth.TokenResponse{AccessToken: token, AccessTokenExpiresIn: exp, TokenType: "Bearer"}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, token string, expiresAt int64) error {
	f.jwt.RevokeToken(token, expiresAt)
	return nil
}

// ===== HELPERS =====

type testServer struct {
	router     *chi.Mux
	jwt        jwt.Service
	attendance *fakeAttendanceService
	employees  *fakeEmployeeService
	store      *storage.LocalStorage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	jwtSvc := jwt.NewJWTService(handlerTestSecret, "1h")
	store, err := storage.NewLocalStorage(t.TempDir(), "/files")
	require.NoError(t, err)

	ts := &testServer{
		jwt:        jwtSvc,
		attendance: &fakeAttendanceService{},
		employees:  &fakeEmployeeService{},
		store:      store,
	}
	ts.router = NewRouter(
		RouterOptions{Env: "test", LogLevel: slog.LevelError},
		jwtSvc,
		NewAuthHandler(&fakeAuthService{jwt: jwtSvc}),
		NewAttendanceHandler(ts.attendance),
		NewEmployeeHandler(ts.employees),
		NewMasterHandler(),
		NewFileHandler(store),
	)
	return ts
}

func (ts *testServer) token(t *testing.T, role user.Role) string {
	t.Helper()
	token, _, err := ts.jwt.GenerateAccessToken("uid-"+string(role), string(role)+"@example.com", role)
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		Showing string `json:"showing"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// ===== AUTHENTICATION =====

func TestRouter_RequiresToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/attendance/report", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_LoginAndLogout(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{Email: "hr@example.com", Password: "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var tokens auth.TokenResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &tokens))
	require.NotEmpty(t, tokens.AccessToken)

	rec = ts.do(t, http.MethodGet, "/api/v1/attendance/report", tokens.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/logout", tokens.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/attendance/report", tokens.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_LoginInvalidCredentials(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{Email: "hr@example.com", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ===== PERMISSIONS =====

func TestRouter_Permissions(t *testing.T) {
	tests := []struct {
		name   string
		role   user.Role
		method string
		target string
		body   any
		want   int
	}{
		{"user cannot view report", user.RoleUser, http.MethodGet, "/api/v1/attendance/report", nil, http.StatusForbidden},
		{"manager views report", user.RoleManager, http.MethodGet, "/api/v1/attendance/report", nil, http.StatusOK},
		{"manager cannot edit remarks", user.RoleManager, http.MethodPatch, "/api/v1/attendance/report/remarks",
			attendance.UpdateRemarksRequest{EmployeeID: "E1", Date: "2024-01-10"}, http.StatusForbidden},
		{"hr edits remarks", user.RoleHR, http.MethodPatch, "/api/v1/attendance/report/remarks",
			attendance.UpdateRemarksRequest{EmployeeID: "E1", Date: "2024-01-10", Remarks: "ok"}, http.StatusOK},
		{"manager lists employees", user.RoleManager, http.MethodGet, "/api/v1/employees", nil, http.StatusOK},
		{"manager cannot delete employees", user.RoleManager, http.MethodDelete, "/api/v1/employees/emp-1", nil, http.StatusForbidden},
		{"user reads options", user.RoleUser, http.MethodGet, "/api/v1/master/options", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			rec := ts.do(t, tt.method, tt.target, ts.token(t, tt.role), tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

// ===== ATTENDANCE =====

func TestAttendanceHandler_Report(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/attendance/report?date=2024-01-10&page=1", ts.token(t, user.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report attendance.ReportResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &report))
	assert.Equal(t, "1-1 of 1", report.Showing)
	require.Len(t, report.Records, 1)
	assert.Equal(t, "E1", report.Records[0].EmployeeID)
}

func TestAttendanceHandler_ReportBadInput(t *testing.T) {
	ts := newTestServer(t)
	token := ts.token(t, user.RoleAdmin)

	rec := ts.do(t, http.MethodGet, "/api/v1/attendance/report?page=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/attendance/report?date=10-01-2024", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "date")
}

func TestAttendanceHandler_Export(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/attendance/report/export?date=2024-01-10&format=csv", ts.token(t, user.RoleManager), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Attendance_2024-01-10.csv")
	assert.Equal(t, "a,b\n", rec.Body.String())
	assert.Equal(t, export.FormatCSV, ts.attendance.exportReq.Format)
}

func TestAttendanceHandler_ExportNoData(t *testing.T) {
	ts := newTestServer(t)
	ts.attendance.exportErr = attendance.ErrNoDataToExport

	rec := ts.do(t, http.MethodGet, "/api/v1/attendance/report/export", ts.token(t, user.RoleManager), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceHandler_UpdateRemarksNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPatch, "/api/v1/attendance/report/remarks", ts.token(t, user.RoleHR),
		attendance.UpdateRemarksRequest{EmployeeID: "missing", Date: "2024-01-10"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceHandler_UpdateRemarksMalformed(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/attendance/report/remarks", strings.NewReader("{"))
	req.Header.Set("Authorization", "Bearer "+ts.token(t, user.RoleHR))
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_Import(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/attendance/import", ts.token(t, user.RoleAdmin), attendance.ImportRequest{
		Records: []attendance.ImportRecord{{EmployeeID: "E1", Date: "2024-01-10"}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var result attendance.ImportResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
	assert.Equal(t, 1, result.Imported)
}

// ===== EMPLOYEES =====

func TestEmployeeHandler_GetNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/employees/nope", ts.token(t, user.RoleAdmin), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeHandler_ListMeta(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/employees?page=1", ts.token(t, user.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta)
	assert.Equal(t, "1-1 of 1", env.Meta.Showing)
}

func TestEmployeeHandler_CreateValidation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/employees", ts.token(t, user.RoleHR), map[string]any{
		"first_name": "Anu",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "employee_id")
	assert.Contains(t, env.Error.Details, "password")
}

func TestEmployeeHandler_Create(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/employees", ts.token(t, user.RoleHR), map[string]any{
		"employee_id": "EMP010",
		"first_name":  "Anu",
		"email":       "anu@example.com",
		"password":    "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "EMP010", ts.employees.created.EmployeeID)
	assert.Equal(t, "user", ts.employees.created.Role)
}

// ===== FILES =====

func TestFileHandler_Download(t *testing.T) {
	ts := newTestServer(t)
	_, err := ts.store.Upload(context.Background(), strings.NewReader("snapshot"), "reports/attendance/Attendance_2024-01-10.xlsx")
	require.NoError(t, err)

	token := ts.token(t, user.RoleManager)

	rec := ts.do(t, http.MethodGet, "/files/reports/attendance/Attendance_2024-01-10.xlsx", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "snapshot", rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/files/reports/attendance/missing.xlsx", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/files/reports/attendance/Attendance_2024-01-10.xlsx", ts.token(t, user.RoleUser), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
