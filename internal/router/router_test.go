package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"willow-pups/internal/router"
)

const (
	adminID   = "owner-1"
	visitorID = "visitor-abc"
)

func TestHTTP_EndToEnd_GalleryAndAdmin(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{SessionVerifier: nil}))
	defer ts.Close()

	// 1) Galería vacía: 200 con [], no error
	{
		st, body := doReq(t, ts.URL, "GET", "/puppies", "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing empty gallery, got %d body=%s", st, string(body))
		}
		var views []map[string]any
		if err := json.Unmarshal(body, &views); err != nil {
			t.Fatalf("list response not an array: %s", string(body))
		}
		if len(views) != 0 {
			t.Fatalf("expected empty gallery, got %d", len(views))
		}
	}

	// 2) Un visitante NO puede dar de alta cachorros
	{
		st, _ := doReq(t, ts.URL, "POST", "/admin/puppies", "", "", map[string]any{"name": "Scottie"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 create puppy without principal, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/admin/puppies", "user-2", "", map[string]any{"name": "Scottie"})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 create puppy as non-admin, got %d", st)
		}
	}

	// 3) Admin da de alta a Scottie
	puppyID := createPuppy(t, ts.URL, map[string]any{
		"slug":               "scottie",
		"name":               "Scottie",
		"sex":                "F",
		"coat":               "Black with some rust",
		"birth_weight_grams": 595,
		"birth_order":        1,
		"notes":              "The firstborn and the biggest of the litter.",
	})

	// 4) La galería pública la muestra, con photos/weight_logs vacíos
	{
		st, body := doReq(t, ts.URL, "GET", "/puppies/"+puppyID, "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get puppy, got %d body=%s", st, string(body))
		}
		var v struct {
			Slug       string           `json:"slug"`
			Photos     []map[string]any `json:"photos"`
			WeightLogs []map[string]any `json:"weight_logs"`
		}
		mustUnmarshal(t, body, &v)
		if v.Slug != "scottie" {
			t.Fatalf("expected slug scottie, got %q", v.Slug)
		}
		if v.Photos == nil || len(v.Photos) != 0 {
			t.Fatalf("expected empty photos array, got %v", v.Photos)
		}
		if v.WeightLogs == nil || len(v.WeightLogs) != 0 {
			t.Fatalf("expected empty weight_logs array, got %v", v.WeightLogs)
		}
	}

	// 5) También por slug
	{
		st, _ := doReq(t, ts.URL, "GET", "/puppies/slug/scottie", "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get puppy by slug, got %d", st)
		}
	}

	// 6) Admin agrega foto y pesos
	{
		st, body := doReq(t, ts.URL, "POST", "/admin/puppies/"+puppyID+"/photos", adminID, "admin", map[string]any{
			"url":      "https://photos.example.com/scottie_day1.jpg",
			"caption":  "Scottie at a few days old",
			"taken_at": "2026-02-24",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add photo, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/admin/puppies/"+puppyID+"/weights", adminID, "admin", map[string]any{
			"weight_grams": 920,
			"measured_at":  "2026-02-27",
			"note":         "Day 5",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add weight, got %d body=%s", st, string(body))
		}
	}

	// 7) Backfill con fecha anterior a la última medición: el peso actual
	// IGUAL pasa a 1100 (política por orden de inserción, no por measured_at)
	{
		st, body := doReq(t, ts.URL, "POST", "/admin/puppies/"+puppyID+"/weights", adminID, "admin", map[string]any{
			"weight_grams": 1100,
			"measured_at":  "2026-02-25",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add weight, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/puppies/"+puppyID, "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get puppy, got %d", st)
		}
		var v struct {
			CurrentWeightGrams int              `json:"current_weight_grams"`
			WeightLogs         []map[string]any `json:"weight_logs"`
		}
		mustUnmarshal(t, body, &v)
		if v.CurrentWeightGrams != 1100 {
			t.Fatalf("expected current weight 1100 after addWeight, got %d", v.CurrentWeightGrams)
		}
		if len(v.WeightLogs) != 2 {
			t.Fatalf("expected 2 weight logs, got %d", len(v.WeightLogs))
		}
	}

	// 8) Admin cambia el status
	{
		st, body := doReq(t, ts.URL, "PATCH", "/admin/puppies/"+puppyID, adminID, "admin", map[string]any{
			"status": "reserved",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch puppy, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_Applications_SubmitAndAdminFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{SessionVerifier: nil}))
	defer ts.Close()

	// 1) Submit público OK
	{
		st, body := doReq(t, ts.URL, "POST", "/applications", "", "", map[string]any{
			"name":  "Jane Doe",
			"email": "jane@example.com",
			"phone": "555-1234",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 submit application, got %d body=%s", st, string(body))
		}
		var resp struct {
			Success bool `json:"success"`
		}
		mustUnmarshal(t, body, &resp)
		if !resp.Success {
			t.Fatalf("expected success=true, body=%s", string(body))
		}
	}

	// 2) Email inválido => 400, no 500
	{
		st, _ := doReq(t, ts.URL, "POST", "/applications", "", "", map[string]any{
			"name":  "Jane Doe",
			"email": "not-an-email",
			"phone": "555-1234",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad email, got %d", st)
		}
	}

	// 3) Listado admin: 401 sin principal, 403 como user común (NUNCA lista vacía)
	{
		st, _ := doReq(t, ts.URL, "GET", "/admin/applications", "", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 listing applications without principal, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/admin/applications", "user-2", "", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 listing applications as plain user, got %d body=%s", st, string(body))
		}
	}

	// 4) Como admin: la solicitud aparece con status "new"
	var appID string
	{
		st, body := doReq(t, ts.URL, "GET", "/admin/applications", adminID, "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing applications as admin, got %d body=%s", st, string(body))
		}
		var items []struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Status string `json:"status"`
		}
		mustUnmarshal(t, body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 application, got %d", len(items))
		}
		if items[0].Status != "new" {
			t.Fatalf("expected status new, got %q", items[0].Status)
		}
		appID = items[0].ID
	}

	// 5) Admin actualiza status + notas
	{
		st, body := doReq(t, ts.URL, "PATCH", "/admin/applications/"+appID+"/status", adminID, "admin", map[string]any{
			"status":      "contacted",
			"admin_notes": "called, left voicemail",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update status, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/admin/applications/"+appID, adminID, "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get application, got %d", st)
		}
		var a struct {
			Status     string `json:"status"`
			AdminNotes string `json:"admin_notes"`
		}
		mustUnmarshal(t, body, &a)
		if a.Status != "contacted" || a.AdminNotes == "" {
			t.Fatalf("expected contacted + notes, got %+v", a)
		}
	}

	// 6) Status desconocido => 400
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/admin/applications/"+appID+"/status", adminID, "admin", map[string]any{
			"status": "archived",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown status, got %d", st)
		}
	}
}

func TestHTTP_Hearts_ToggleAndStatus(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{SessionVerifier: nil}))
	defer ts.Close()

	puppyID := createPuppy(t, ts.URL, map[string]any{
		"slug":               "carmel",
		"name":               "Carmel",
		"sex":                "F",
		"coat":               "Red / Rust",
		"birth_weight_grams": 502,
		"birth_order":        2,
	})

	// 1) Primer toggle: hearted=true, count=1
	{
		hearted, count := toggleHeart(t, ts.URL, puppyID, visitorID)
		if !hearted || count != 1 {
			t.Fatalf("expected hearted=true count=1, got hearted=%v count=%d", hearted, count)
		}
	}

	// 2) Segundo toggle: vuelve a hearted=false, count=0
	{
		hearted, count := toggleHeart(t, ts.URL, puppyID, visitorID)
		if hearted || count != 0 {
			t.Fatalf("expected hearted=false count=0, got hearted=%v count=%d", hearted, count)
		}
	}

	// 3) Dos visitantes distintos suman
	toggleHeart(t, ts.URL, puppyID, visitorID)
	toggleHeart(t, ts.URL, puppyID, "visitor-xyz")
	{
		st, body := doReq(t, ts.URL, "GET", "/hearts/status?visitor_id="+visitorID, "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 hearts status, got %d body=%s", st, string(body))
		}
		var resp struct {
			Counts        map[string]int `json:"counts"`
			VisitorHearts []string       `json:"visitor_hearts"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Counts[puppyID] != 2 {
			t.Fatalf("expected count 2, got %d", resp.Counts[puppyID])
		}
		if len(resp.VisitorHearts) != 1 || resp.VisitorHearts[0] != puppyID {
			t.Fatalf("expected visitor hearts [%s], got %v", puppyID, resp.VisitorHearts)
		}
	}

	// 4) visitor_id vacío => 400
	{
		st, _ := doReq(t, ts.URL, "GET", "/hearts/status", "", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 status without visitor_id, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/hearts/toggle", "", "", map[string]any{
			"puppy_id": puppyID,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 toggle without visitor_id, got %d", st)
		}
	}

	// 5) Toggle sobre un puppy inexistente NO falla (flip puro sobre el set)
	{
		hearted, count := toggleHeart(t, ts.URL, "no-such-puppy", visitorID)
		if !hearted || count != 1 {
			t.Fatalf("expected hearted=true count=1 on unknown puppy, got %v/%d", hearted, count)
		}
	}
}

func createPuppy(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/admin/puppies", adminID, "admin", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create puppy, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create puppy: missing id body=%s", string(body))
	}
	return resp.ID
}

func toggleHeart(t *testing.T, baseURL, puppyID, visitor string) (bool, int) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/hearts/toggle", "", "", map[string]any{
		"puppy_id":   puppyID,
		"visitor_id": visitor,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 toggle heart, got %d body=%s", st, string(body))
	}

	var resp struct {
		Hearted bool `json:"hearted"`
		Count   int  `json:"count"`
	}
	mustUnmarshal(t, body, &resp)
	return resp.Hearted, resp.Count
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID, debugRole string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}
	if debugRole != "" {
		req.Header.Set("X-Debug-Role", debugRole)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
