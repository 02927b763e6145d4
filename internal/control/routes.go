package control

import (
	"encoding/json"
	"errors"
	"net/http"

	"sshdeck/internal/connections"
	"sshdeck/internal/control/types"
	"sshdeck/internal/logger"
	"sshdeck/internal/ssh"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response: %v", err)
	}
}

func decodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
		logger.Error("[%s] Invalid method or content type on %s", r.Method, r.URL.Path)
		writeJSON(w, http.StatusBadRequest, types.ErrorResponseDTO{Error: "expected POST with application/json body"})
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Error("[%s] Failed to parse request on %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusBadRequest, types.ErrorResponseDTO{Error: "malformed request body"})
		return false
	}

	return true
}

// RegisterRoutes wires the five boundary operations onto the mux as local
// JSON endpoints.
func RegisterRoutes(mux *http.ServeMux, service *Service) {
	mux.HandleFunc("/connections/open", func(w http.ResponseWriter, r *http.Request) {
		var connectRequestDTO types.ConnectRequestDTO

		if !decodeJSONRequest(w, r, &connectRequestDTO) {
			return
		}

		response := service.Connect(&ssh.Credentials{
			Host:           connectRequestDTO.Host,
			Port:           connectRequestDTO.Port,
			Username:       connectRequestDTO.Username,
			Password:       connectRequestDTO.Password,
			PrivateKeyPath: connectRequestDTO.PrivateKeyPath,
			Passphrase:     connectRequestDTO.Passphrase,
		})

		responseDTO := types.ConnectResponseDTO{
			Success: response.Success,
			Message: response.Message,
		}

		if response.ConnectionID != nil {
			id := response.ConnectionID.String()
			responseDTO.ConnectionID = &id
		}

		writeJSON(w, http.StatusOK, responseDTO)
	})

	mux.HandleFunc("/connections/exec", func(w http.ResponseWriter, r *http.Request) {
		var execRequestDTO types.ExecRequestDTO

		if !decodeJSONRequest(w, r, &execRequestDTO) {
			return
		}

		result, err := service.Execute(connections.ID(execRequestDTO.ConnectionID), execRequestDTO.Command)

		if err != nil {
			if errors.Is(err, connections.ErrConnectionNotFound) {
				writeJSON(w, http.StatusNotFound, types.ErrorResponseDTO{Error: err.Error()})
				return
			}

			logger.Error("[%s] Exec failed for %s: %v", r.Method, execRequestDTO.ConnectionID, err)
			writeJSON(w, http.StatusInternalServerError, types.ErrorResponseDTO{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, types.CommandResultDTO{
			Stdout:           result.Stdout,
			Stderr:           result.Stderr,
			ExitStatus:       result.ExitStatus,
			Success:          result.Success,
			CurrentDirectory: result.CurrentDirectory,
		})
	})

	mux.HandleFunc("/connections/directory", func(w http.ResponseWriter, r *http.Request) {
		var directoryRequestDTO types.DirectoryRequestDTO

		if !decodeJSONRequest(w, r, &directoryRequestDTO) {
			return
		}

		directory, err := service.CurrentDirectory(connections.ID(directoryRequestDTO.ConnectionID))

		if err != nil {
			writeJSON(w, http.StatusNotFound, types.ErrorResponseDTO{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, types.DirectoryResponseDTO{CurrentDirectory: directory})
	})

	mux.HandleFunc("/connections/close", func(w http.ResponseWriter, r *http.Request) {
		var closeRequestDTO types.CloseRequestDTO

		if !decodeJSONRequest(w, r, &closeRequestDTO) {
			return
		}

		removed := service.Disconnect(connections.ID(closeRequestDTO.ConnectionID))

		writeJSON(w, http.StatusOK, types.CloseResponseDTO{Removed: removed})
	})

	mux.HandleFunc("/connections/list", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodGet {
			writeJSON(w, http.StatusBadRequest, types.ErrorResponseDTO{Error: "expected GET or POST"})
			return
		}

		ids := service.List()

		responseDTO := types.ListResponseDTO{
			ConnectionIDs: make([]string, 0, len(ids)),
		}

		for _, id := range ids {
			responseDTO.ConnectionIDs = append(responseDTO.ConnectionIDs, id.String())
		}

		writeJSON(w, http.StatusOK, responseDTO)
	})
}
