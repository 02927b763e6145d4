package connections

import "fmt"

// ID is the opaque handle callers retain for a live connection. The derived
// form is username@host:port; callers must not parse it. Two connects with
// identical (user, host, port) derive the same ID and the later one replaces
// the earlier entry (see Registry.Insert).
type ID string

func DeriveID(username string, host string, port uint16) ID {
	return ID(fmt.Sprintf("%s@%s:%d", username, host, port))
}

func (id ID) String() string {
	return string(id)
}
