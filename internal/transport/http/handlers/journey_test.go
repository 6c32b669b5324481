package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"simgaji/internal/domain/auth"
	"simgaji/internal/domain/payroll"
	"simgaji/internal/platform/kv"
	authhandler "simgaji/internal/transport/http/handlers/auth"
	recordshandler "simgaji/internal/transport/http/handlers/records"
	"simgaji/internal/transport/http/middleware"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	kvs, err := kv.Open(filepath.Join(t.TempDir(), "journey.db"))
	if err != nil {
		t.Fatalf("open data file: %v", err)
	}
	t.Cleanup(func() { kvs.Close() })

	store := payroll.NewStore(kvs)
	if err := store.Initialize(); err != nil {
		t.Fatalf("initialize store: %v", err)
	}

	service, err := auth.NewService(auth.NewSessions(kvs), "test-secret", "admin", "admin123", "Administrator", time.Hour)
	if err != nil {
		t.Fatalf("auth setup: %v", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Auth(service))
	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(service).RegisterRoutes(r)
		recordshandler.NewHandler(store).RegisterRoutes(r)
	})

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, payload any) (int, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env
}

func login(t *testing.T, client *http.Client, baseURL string) string {
	t.Helper()

	status, env := doJSON(t, client, http.MethodPost, baseURL+"/api/v1/auth/login", "",
		map[string]string{"username": "admin", "password": "admin123"})
	if status != http.StatusOK {
		t.Fatalf("login returned status %d", status)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return data.Token
}

func sampleInput(nip, name string) payroll.RecordInput {
	return payroll.RecordInput{
		WorkUnitCode:     "123456",
		Month:            "Januari",
		Year:             2025,
		Date:             "2025-01-15",
		PayrollNumber:    "GP001",
		EmployeeID:       nip,
		EmployeeName:     name,
		GradeCode:        "III/a",
		TaxID:            "123456789012345",
		BankCode:         "002",
		BankName:         "BRI",
		AccountNumber:    "1234567890",
		BankBranchName:   "Cabang Jakarta",
		WorkDays:         22,
		DailyRate:        500000,
		TaxPercent:       5,
		EmployeeCategory: payroll.CategoryCivil,
	}
}

func TestAdminRecordJourney(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()
	token := login(t, client, ts.URL)

	status, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/records", token,
		sampleInput("199001012020121001", "Ahmad Sudirman"))
	if status != http.StatusCreated {
		t.Fatalf("create returned status %d", status)
	}

	var created payroll.Record
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created record: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created record has no id")
	}
	if created.GrossPay != 11000000 || created.Deduction != 550000 || created.NetPay != 10450000 {
		t.Fatalf("derived pay wrong: gross=%v deduction=%v net=%v", created.GrossPay, created.Deduction, created.NetPay)
	}

	status, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/records?tahun=2025&golongan=PNS", token, nil)
	if status != http.StatusOK {
		t.Fatalf("list returned status %d", status)
	}
	var listed []payroll.Record
	if err := json.Unmarshal(env.Data, &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("expected the created record in the filtered list, got %d records", len(listed))
	}

	status, env = doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/records/"+created.ID, token,
		map[string]any{"workDays": 10})
	if status != http.StatusOK {
		t.Fatalf("update returned status %d", status)
	}
	var updated payroll.Record
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode updated record: %v", err)
	}
	if updated.WorkDays != 10 || updated.GrossPay != 5000000 || updated.NetPay != 4750000 {
		t.Fatalf("update did not recompute pay: workDays=%d gross=%v net=%v", updated.WorkDays, updated.GrossPay, updated.NetPay)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("update must preserve createdAt")
	}

	status, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/records/years", token, nil)
	if status != http.StatusOK {
		t.Fatalf("years returned status %d", status)
	}
	var years []int
	if err := json.Unmarshal(env.Data, &years); err != nil {
		t.Fatalf("decode years: %v", err)
	}
	if len(years) != 1 || years[0] != 2025 {
		t.Fatalf("expected years [2025], got %v", years)
	}

	status, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/records/stats", token, nil)
	if status != http.StatusOK {
		t.Fatalf("stats returned status %d", status)
	}
	var stats payroll.Stats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalRecords != 1 || stats.CivilCount != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	status, _ = doJSON(t, client, http.MethodDelete, ts.URL+"/api/v1/records/"+created.ID, token, nil)
	if status != http.StatusOK {
		t.Fatalf("delete returned status %d", status)
	}
	status, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/records/"+created.ID, token, nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "not_found" {
		t.Fatalf("expected not_found error, got %+v", env.Error)
	}
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()
	token := login(t, client, ts.URL)

	input := sampleInput("12345", "Ahmad Sudirman")
	status, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/records", token, input)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for a short NIP, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %+v", env.Error)
	}
}

func TestRecordsRequireAuthentication(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()

	status, env := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/records", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "unauthorized" {
		t.Fatalf("expected unauthorized error, got %+v", env.Error)
	}

	status, _ = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/records", "not-a-real-token", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 with a forged token, got %d", status)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()
	token := login(t, client, ts.URL)

	status, _ := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/auth/me", token, nil)
	if status != http.StatusOK {
		t.Fatalf("me returned status %d", status)
	}

	status, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/auth/logout", token, nil)
	if status != http.StatusOK {
		t.Fatalf("logout returned status %d", status)
	}

	status, _ = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/auth/me", token, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", status)
	}
}

func importWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()
	header := []interface{}{
		"Kode Satker", "Bulan", "Tahun", "Tanggal", "No Gaji",
		"NIP", "Nama Pegawai", "Kode Gol", "NPWP",
		"Kode Bank SPAN", "Nama Bank SPAN", "No Rek", "Nama Cabang Bank",
		"Jumlah Hari", "Tarif", "PPH", "Golongan",
	}
	all := append([][]interface{}{header}, rows...)
	for i := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := file.SetSheetRow("Sheet1", cell, &all[i]); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	buf, err := file.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func importRow(nip, name string) []interface{} {
	return []interface{}{
		"123456", "Januari", 2025, "2025-01-15", "GP001",
		nip, name, "III/a", "123456789012345",
		"002", "BRI", "1234567890", "Cabang Jakarta",
		22, 500000, 5, "PNS",
	}
}

func uploadWorkbook(t *testing.T, client *http.Client, url, token string, workbook []byte) (int, envelope) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "import.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(workbook); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, &body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env
}

type importResult struct {
	Committed bool `json:"committed"`
	Imported  int  `json:"imported"`
	Report    struct {
		Success int `json:"success"`
		Failed  int `json:"failed"`
		Errors  []struct {
			Row     int    `json:"row"`
			Message string `json:"message"`
		} `json:"errors"`
	} `json:"report"`
}

func TestImportCommitPolicy(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()
	token := login(t, client, ts.URL)

	workbook := importWorkbook(t, [][]interface{}{
		importRow("199001012020121001", "Ahmad Sudirman"),
		importRow("12345", "Budi Santoso"),
	})

	status, env := uploadWorkbook(t, client, ts.URL+"/api/v1/records/import", token, workbook)
	if status != http.StatusOK {
		t.Fatalf("import returned status %d", status)
	}
	var result importResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode import result: %v", err)
	}
	if result.Committed || result.Imported != 0 {
		t.Fatalf("import with failures must not auto-commit: %+v", result)
	}
	if result.Report.Success != 1 || result.Report.Failed != 1 {
		t.Fatalf("unexpected report: %+v", result.Report)
	}
	if len(result.Report.Errors) != 1 || result.Report.Errors[0].Row != 3 {
		t.Fatalf("expected one error on row 3, got %+v", result.Report.Errors)
	}

	status, env = uploadWorkbook(t, client, ts.URL+"/api/v1/records/import?confirm=true", token, workbook)
	if status != http.StatusOK {
		t.Fatalf("confirmed import returned status %d", status)
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode import result: %v", err)
	}
	if !result.Committed || result.Imported != 1 {
		t.Fatalf("confirmed import should commit the valid row: %+v", result)
	}

	status, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/records", token, nil)
	if status != http.StatusOK {
		t.Fatalf("list returned status %d", status)
	}
	var listed []payroll.Record
	if err := json.Unmarshal(env.Data, &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 record after confirmed import, got %d", len(listed))
	}
}

func TestExportServesWorkbookDownload(t *testing.T) {
	ts := newTestServer(t)
	client := ts.Client()
	token := login(t, client, ts.URL)

	status, _ := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/records", token,
		sampleInput("199001012020121001", "Ahmad Sudirman"))
	if status != http.StatusCreated {
		t.Fatalf("create returned status %d", status)
	}

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/records/export?tahun=2025", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export returned status %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected content type %q", got)
	}
	wantPrefix := fmt.Sprintf("attachment; filename=\"Gaji_2025_%s.xlsx\"", time.Now().Format("20060102"))
	if got := resp.Header.Get("Content-Disposition"); got != wantPrefix {
		t.Fatalf("unexpected disposition %q", got)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	workbook, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("exported payload is not a workbook: %v", err)
	}
	defer workbook.Close()
	name, err := workbook.GetCellValue("Data Gaji", "G2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if name != "Ahmad Sudirman" {
		t.Fatalf("expected employee name in export, got %q", name)
	}
}
