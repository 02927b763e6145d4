package control

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sshdeck/internal/connections"
	"sshdeck/internal/control/types"
	"sshdeck/internal/ssh"
)

func newTestMux(service *Service) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterRoutes(mux, service)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, request)

	return recorder
}

func TestRoutes_Exec_UnknownConnection_Returns404(t *testing.T) {
	mux := newTestMux(newTestService(nil))

	recorder := postJSON(t, mux, "/connections/exec", types.ExecRequestDTO{
		ConnectionID: "no-such-id",
		Command:      "ls",
	})

	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", recorder.Code)
	}

	var response types.ErrorResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response.Error == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestRoutes_Directory_UnknownConnection_Returns404(t *testing.T) {
	mux := newTestMux(newTestService(nil))

	recorder := postJSON(t, mux, "/connections/directory", types.DirectoryRequestDTO{
		ConnectionID: "no-such-id",
	})

	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", recorder.Code)
	}
}

func TestRoutes_Open_InvalidConfig_Returns200WithFailure(t *testing.T) {
	mux := newTestMux(newTestService(nil))

	recorder := postJSON(t, mux, "/connections/open", types.ConnectRequestDTO{
		Host:     "10.0.0.5",
		Port:     22,
		Username: "admin",
		// no password, no key path
	})

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 (connect is error-free at the boundary), got %d", recorder.Code)
	}

	var response types.ConnectResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Success {
		t.Error("expected success=false")
	}
	if response.Message == "" {
		t.Error("expected a descriptive message")
	}
	if response.ConnectionID != nil {
		t.Error("expected no connection_id on failure")
	}
}

func TestRoutes_Exec_WrongMethod_Returns400(t *testing.T) {
	mux := newTestMux(newTestService(nil))

	request := httptest.NewRequest(http.MethodGet, "/connections/exec", nil)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", recorder.Code)
	}
}

func TestRoutes_OpenExecCloseList_RoundTrip(t *testing.T) {
	service := newTestService(func(*ssh.Credentials) (connections.Session, error) {
		return &fakeSession{
			directory: "/home/admin",
			execute: func(command string) (*ssh.CommandResult, error) {
				return &ssh.CommandResult{Stdout: "ok\n", Success: true, CurrentDirectory: "/home/admin"}, nil
			},
		}, nil
	})
	mux := newTestMux(service)

	recorder := postJSON(t, mux, "/connections/open", types.ConnectRequestDTO{
		Host:     "10.0.0.5",
		Port:     22,
		Username: "admin",
		Password: "secret",
	})

	var connectResponse types.ConnectResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&connectResponse); err != nil {
		t.Fatalf("failed to decode connect response: %v", err)
	}
	if !connectResponse.Success || connectResponse.ConnectionID == nil {
		t.Fatalf("expected successful connect, got %+v", connectResponse)
	}

	id := *connectResponse.ConnectionID

	recorder = postJSON(t, mux, "/connections/exec", types.ExecRequestDTO{ConnectionID: id, Command: "echo ok"})

	var execResponse types.CommandResultDTO
	if err := json.NewDecoder(recorder.Body).Decode(&execResponse); err != nil {
		t.Fatalf("failed to decode exec response: %v", err)
	}
	if execResponse.Stdout != "ok\n" || !execResponse.Success {
		t.Errorf("unexpected exec response: %+v", execResponse)
	}

	recorder = postJSON(t, mux, "/connections/list", struct{}{})

	var listResponse types.ListResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&listResponse); err != nil {
		t.Fatalf("failed to decode list response: %v", err)
	}
	if len(listResponse.ConnectionIDs) != 1 || listResponse.ConnectionIDs[0] != id {
		t.Errorf("unexpected list response: %+v", listResponse)
	}

	recorder = postJSON(t, mux, "/connections/close", types.CloseRequestDTO{ConnectionID: id})

	var closeResponse types.CloseResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&closeResponse); err != nil {
		t.Fatalf("failed to decode close response: %v", err)
	}
	if !closeResponse.Removed {
		t.Error("expected removed=true on first close")
	}

	recorder = postJSON(t, mux, "/connections/close", types.CloseRequestDTO{ConnectionID: id})

	if err := json.NewDecoder(recorder.Body).Decode(&closeResponse); err != nil {
		t.Fatalf("failed to decode close response: %v", err)
	}
	if closeResponse.Removed {
		t.Error("expected removed=false on repeated close")
	}
}
