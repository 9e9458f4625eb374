package server

// Protocol constants for Minecraft Java Edition 1.21.1.
const (
	ProtocolVersion int32 = 767
	VersionName           = "1.21.1"
)

// Serverbound packet IDs, by phase.
const (
	handshakeID int32 = 0x00

	statusRequestID int32 = 0x00
	pingRequestID   int32 = 0x01

	loginStartID        int32 = 0x00
	loginAcknowledgedID int32 = 0x03

	clientInformationID int32 = 0x00
	pluginMessageID     int32 = 0x02
	finishConfigAckID   int32 = 0x03
	knownPacksRequestID int32 = 0x07
)

// Clientbound packet IDs.
const (
	statusResponseID int32 = 0x00
	pongResponseID   int32 = 0x01
	loginSuccessID   int32 = 0x02
	finishConfigID   int32 = 0x03
	knownPacksID     int32 = 0x0E
)

// Placeholder identity until real authentication exists.
const playerUUID = "00000000-0000-0000-0000-000000000001"

// The single data pack this server advertises.
const (
	knownPackNamespace = "minecraft"
	knownPackID        = "core"
	knownPackVersion   = VersionName
)
