package types

type ConnectRequestDTO struct {
	Host           string `json:"host"`
	Port           uint16 `json:"port"`
	Username       string `json:"username"`
	Password       string `json:"password,omitempty"`
	PrivateKeyPath string `json:"private_key_path,omitempty"`
	Passphrase     string `json:"passphrase,omitempty"`
}

type ConnectResponseDTO struct {
	Success      bool    `json:"success"`
	Message      string  `json:"message"`
	ConnectionID *string `json:"connection_id,omitempty"`
}

type ExecRequestDTO struct {
	ConnectionID string `json:"connection_id"`
	Command      string `json:"command"`
}

type CommandResultDTO struct {
	Stdout           string `json:"stdout"`
	Stderr           string `json:"stderr"`
	ExitStatus       int    `json:"exit_status"`
	Success          bool   `json:"success"`
	CurrentDirectory string `json:"current_directory"`
}

type DirectoryRequestDTO struct {
	ConnectionID string `json:"connection_id"`
}

type DirectoryResponseDTO struct {
	CurrentDirectory string `json:"current_directory"`
}

type CloseRequestDTO struct {
	ConnectionID string `json:"connection_id"`
}

type CloseResponseDTO struct {
	Removed bool `json:"removed"`
}

type ListResponseDTO struct {
	ConnectionIDs []string `json:"connection_ids"`
}

type ErrorResponseDTO struct {
	Error string `json:"error"`
}
