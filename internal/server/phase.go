package server

// Phase is the connection's position in the handshake/status/login/
// configuration/play sequence. It gates which packet IDs mean anything.
type Phase uint8

const (
	PhaseHandshake Phase = iota
	PhaseStatus
	PhaseLogin
	PhaseConfiguration
	PhasePlay
)

func (p Phase) String() string {
	switch p {
	case PhaseHandshake:
		return "handshake"
	case PhaseStatus:
		return "status"
	case PhaseLogin:
		return "login"
	case PhaseConfiguration:
		return "configuration"
	case PhasePlay:
		return "play"
	default:
		return "unknown"
	}
}
