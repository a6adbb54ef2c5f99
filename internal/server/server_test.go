package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testProjectYAML = `project:
  name: Lakeview Duplex
  projectionYears: 10
  property:
    purchasePrice: 300000
    interestRate: 6.0
    propertyTaxRate: 1.0
    baseInsurance: 150
    hoaFees: 50
  units:
    - label: Upper Unit
      type: STR
      revenue:
        nightlyRate: 150
        occupancyPercent: 70
        avgStayLength: 3
      expenses:
        - name: Management
          calculationType: percent-revenue
          value: 10
`

func multipartUpload(t *testing.T, fieldName, contents string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, "project.yaml")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(contents)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func decodeAnalyzeResponse(t *testing.T, recorder *httptest.ResponseRecorder) analyzeResponse {
	t.Helper()

	var response analyzeResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return response
}

func TestHandleAnalyze(t *testing.T) {
	h := NewHandler(nil, 0, "test")

	body, contentType := multipartUpload(t, "file", testProjectYAML)
	request := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	request.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	h.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, expected application/json", got)
	}

	response := decodeAnalyzeResponse(t, recorder)
	if response.Analysis == nil {
		t.Fatal("response has no analysis")
	}
	if response.Analysis.ProjectName != "Lakeview Duplex" {
		t.Errorf("project name = %q, expected Lakeview Duplex", response.Analysis.ProjectName)
	}
	if len(response.Analysis.Units) != 1 {
		t.Errorf("got %d units, expected 1", len(response.Analysis.Units))
	}
	if response.Analysis.Property.MonthlyCashFlow == 0 {
		t.Error("expected a non-zero monthly cash flow")
	}
	if response.Duration == "" {
		t.Error("response has no duration")
	}
}

func TestHandleAnalyzeMethodNotAllowed(t *testing.T) {
	h := NewHandler(nil, 0, "test")

	request := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, expected 405", recorder.Code)
	}
}

func TestHandleAnalyzeMissingFile(t *testing.T) {
	h := NewHandler(nil, 0, "test")

	body, contentType := multipartUpload(t, "other", testProjectYAML)
	request := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	request.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	h.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", recorder.Code)
	}
}

func TestHandleAnalyzeInvalidProject(t *testing.T) {
	h := NewHandler(nil, 0, "test")

	invalid := strings.Replace(testProjectYAML, "type: STR", "type: hotel", 1)
	body, contentType := multipartUpload(t, "file", invalid)
	request := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	request.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	h.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "hotel") {
		t.Errorf("error body %q does not name the offending type", recorder.Body.String())
	}
}

func TestHandleAnalyzeUploadTooLarge(t *testing.T) {
	h := NewHandler(nil, 512, "test")

	oversized := testProjectYAML + strings.Repeat("# padding\n", 200)
	body, contentType := multipartUpload(t, "file", oversized)
	request := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	request.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	h.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, expected 413", recorder.Code)
	}
}

func TestHandleAnalyzeEditor(t *testing.T) {
	h := NewHandler(nil, 0, "test")

	payload := map[string]interface{}{
		"config": map[string]interface{}{
			"project": map[string]interface{}{
				"name": "Editor Project",
				"property": map[string]interface{}{
					"purchasePrice": 300000,
				},
				"units": []interface{}{
					map[string]interface{}{
						"label": "Lower Unit",
						"type":  "LTR",
						"revenue": map[string]interface{}{
							"monthlyRent": 1400,
						},
					},
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/editor/analyze", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	h.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	response := decodeAnalyzeResponse(t, recorder)
	if response.Analysis == nil || response.Analysis.ProjectName != "Editor Project" {
		t.Errorf("response = %+v, expected the Editor Project analysis", response.Analysis)
	}
}

func TestHandleAnalyzeEditorRejectsMissingConfig(t *testing.T) {
	h := NewHandler(nil, 0, "test")

	request := httptest.NewRequest(http.MethodPost, "/api/editor/analyze", strings.NewReader(`{}`))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	h.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", recorder.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	h := NewHandler(nil, 0, "1.2.3")

	request := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["version"] != "1.2.3" {
		t.Errorf("version = %q, expected 1.2.3", body["version"])
	}
}

func TestHandleVersionDefaultsToDev(t *testing.T) {
	h := NewHandler(nil, 0, "  ")

	request := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, request)

	var body map[string]string
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["version"] != "dev" {
		t.Errorf("version = %q, expected dev", body["version"])
	}
}

func TestHandleHealth(t *testing.T) {
	h := NewHandler(nil, 0, "test")

	request := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	if recorder.Body.String() != "ok" {
		t.Errorf("body = %q, expected ok", recorder.Body.String())
	}
}
