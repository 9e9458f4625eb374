package server

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/danmuck/craftctl/internal/protocol"
	"github.com/danmuck/craftctl/internal/registry"
)

// ErrUnexpectedNextState rejects handshake next-state values other than
// status (1) and login (2).
var ErrUnexpectedNextState = errors.New("server: unexpected handshake next state")

// Handler is the per-connection protocol state machine, shared read-only
// across connections. Handle is a pure function of (phase, packet ID,
// payload); the caller owns the phase value and applies the result.
type Handler struct {
	catalog *registry.Catalog
	tags    *registry.TagTable
	status  StatusConfig
	loginID uuid.UUID
}

func NewHandler(catalog *registry.Catalog, tags *registry.TagTable, status StatusConfig) *Handler {
	return &Handler{
		catalog: catalog,
		tags:    tags,
		status:  status.withDefaults(),
		loginID: uuid.MustParse(playerUUID),
	}
}

// Result is what one dispatched frame produced: the phase to continue
// in, response frames to write in order, and whether the connection
// should close once they are flushed.
type Result struct {
	Phase           Phase
	Out             [][]byte
	CloseAfterWrite bool
}

func (h *Handler) Handle(phase Phase, id int32, payload []byte, logger zerolog.Logger) (Result, error) {
	res := Result{Phase: phase}
	r := protocol.NewReader(payload)

	switch phase {
	case PhaseHandshake:
		if id != handshakeID {
			logUnknownPacket(logger, phase, id)
			return res, nil
		}
		return h.handleHandshake(r, logger)

	case PhaseStatus:
		switch id {
		case statusRequestID:
			return h.handleStatusRequest(logger)
		case pingRequestID:
			return h.handlePingRequest(r, logger)
		default:
			logUnknownPacket(logger, phase, id)
			return res, nil
		}

	case PhaseLogin:
		switch id {
		case loginStartID:
			return h.handleLoginStart(r, logger)
		case loginAcknowledgedID:
			return h.handleLoginAcknowledged(logger)
		default:
			logUnknownPacket(logger, phase, id)
			return res, nil
		}

	case PhaseConfiguration:
		switch id {
		case clientInformationID:
			return h.handleClientInformation(r, logger)
		case pluginMessageID:
			return h.handlePluginMessage(r, logger)
		case finishConfigAckID:
			logger.Info().Msg("configuration finished, entering play")
			res.Phase = PhasePlay
			return res, nil
		case knownPacksRequestID:
			return h.handleKnownPacks(r, logger)
		default:
			logUnknownPacket(logger, phase, id)
			return res, nil
		}

	default:
		// Play is an intentional stub; gameplay packets are dropped.
		logger.Debug().Int32("packet_id", id).Msg("play-state packet ignored")
		return res, nil
	}
}

func (h *Handler) handleHandshake(r *protocol.Reader, logger zerolog.Logger) (Result, error) {
	res := Result{Phase: PhaseHandshake}

	protocolVersion, err := r.VarInt()
	if err != nil {
		return res, fmt.Errorf("handshake protocol version: %w", err)
	}
	serverAddress, err := r.String()
	if err != nil {
		return res, fmt.Errorf("handshake server address: %w", err)
	}
	serverPort, err := r.UnsignedShort()
	if err != nil {
		return res, fmt.Errorf("handshake server port: %w", err)
	}
	nextState, err := r.VarInt()
	if err != nil {
		return res, fmt.Errorf("handshake next state: %w", err)
	}

	logger.Debug().
		Int32("protocol_version", protocolVersion).
		Str("server_address", serverAddress).
		Uint16("server_port", serverPort).
		Int32("next_state", nextState).
		Msg("handshake")

	switch nextState {
	case 1:
		res.Phase = PhaseStatus
	case 2:
		res.Phase = PhaseLogin
	default:
		return res, fmt.Errorf("%w: %d", ErrUnexpectedNextState, nextState)
	}
	return res, nil
}

func (h *Handler) handleStatusRequest(logger zerolog.Logger) (Result, error) {
	res := Result{Phase: PhaseStatus}
	raw, err := statusResponseJSON(h.status)
	if err != nil {
		return res, err
	}
	logger.Debug().RawJSON("response", raw).Msg("status request")

	w := protocol.NewWriter()
	w.String(string(raw))
	res.Out = [][]byte{protocol.EncodeFrame(statusResponseID, w.Bytes())}
	return res, nil
}

// handlePingRequest echoes the 8-byte payload and closes the connection
// once the pong is flushed.
func (h *Handler) handlePingRequest(r *protocol.Reader, logger zerolog.Logger) (Result, error) {
	res := Result{Phase: PhaseStatus}
	payload, err := r.Long()
	if err != nil {
		return res, fmt.Errorf("ping payload: %w", err)
	}
	logger.Debug().Int64("payload", payload).Msg("ping request")

	w := protocol.NewWriter()
	w.Long(payload)
	res.Out = [][]byte{protocol.EncodeFrame(pongResponseID, w.Bytes())}
	res.CloseAfterWrite = true
	return res, nil
}

// handleLoginStart answers with login success but stays in Login; the
// phase advances only on the client's explicit acknowledgment.
func (h *Handler) handleLoginStart(r *protocol.Reader, logger zerolog.Logger) (Result, error) {
	res := Result{Phase: PhaseLogin}
	username, err := r.String()
	if err != nil {
		return res, fmt.Errorf("login username: %w", err)
	}
	logger.Info().Str("username", username).Msg("login start")

	w := protocol.NewWriter()
	w.Raw(h.loginID[:])
	w.String(username)
	w.VarInt(0)       // property count
	w.UnsignedByte(0) // strict error handling disabled
	res.Out = [][]byte{protocol.EncodeFrame(loginSuccessID, w.Bytes())}
	return res, nil
}

func (h *Handler) handleLoginAcknowledged(logger zerolog.Logger) (Result, error) {
	res := Result{Phase: PhaseConfiguration}
	logger.Debug().Msg("login acknowledged, entering configuration")

	w := protocol.NewWriter()
	w.VarInt(1)
	w.String(knownPackNamespace)
	w.String(knownPackID)
	w.String(knownPackVersion)
	res.Out = [][]byte{protocol.EncodeFrame(knownPacksID, w.Bytes())}
	return res, nil
}

// handleClientInformation parses the client settings for the log sink;
// no response is required.
func (h *Handler) handleClientInformation(r *protocol.Reader, logger zerolog.Logger) (Result, error) {
	res := Result{Phase: PhaseConfiguration}

	locale, err := r.String()
	if err != nil {
		return res, fmt.Errorf("client information locale: %w", err)
	}
	viewDistance, err := r.Byte()
	if err != nil {
		return res, fmt.Errorf("client information view distance: %w", err)
	}
	chatMode, err := r.VarInt()
	if err != nil {
		return res, fmt.Errorf("client information chat mode: %w", err)
	}
	chatColors, err := r.Boolean()
	if err != nil {
		return res, fmt.Errorf("client information chat colors: %w", err)
	}
	skinParts, err := r.UnsignedByte()
	if err != nil {
		return res, fmt.Errorf("client information skin parts: %w", err)
	}
	mainHand, err := r.VarInt()
	if err != nil {
		return res, fmt.Errorf("client information main hand: %w", err)
	}
	textFiltering, err := r.Boolean()
	if err != nil {
		return res, fmt.Errorf("client information text filtering: %w", err)
	}
	serverListing, err := r.Boolean()
	if err != nil {
		return res, fmt.Errorf("client information server listing: %w", err)
	}

	logger.Debug().
		Str("locale", locale).
		Int8("view_distance", viewDistance).
		Int32("chat_mode", chatMode).
		Bool("chat_colors", chatColors).
		Uint8("skin_parts", skinParts).
		Int32("main_hand", mainHand).
		Bool("text_filtering", textFiltering).
		Bool("server_listing", serverListing).
		Msg("client information")
	return res, nil
}

func (h *Handler) handlePluginMessage(r *protocol.Reader, logger zerolog.Logger) (Result, error) {
	res := Result{Phase: PhaseConfiguration}
	channel, err := r.String()
	if err != nil {
		return res, fmt.Errorf("plugin message channel: %w", err)
	}
	data := r.Rest()
	logger.Debug().Str("channel", channel).Int("bytes", len(data)).Msg("plugin message")
	return res, nil
}

// handleKnownPacks reads the client's pack list and answers with the
// full registry catalog, the tag table, and finish-configuration.
func (h *Handler) handleKnownPacks(r *protocol.Reader, logger zerolog.Logger) (Result, error) {
	res := Result{Phase: PhaseConfiguration}
	count, err := r.VarInt()
	if err != nil {
		return res, fmt.Errorf("known packs count: %w", err)
	}
	for i := int32(0); i < count; i++ {
		namespace, err := r.String()
		if err != nil {
			return res, fmt.Errorf("known pack %d namespace: %w", i, err)
		}
		packID, err := r.String()
		if err != nil {
			return res, fmt.Errorf("known pack %d id: %w", i, err)
		}
		version, err := r.String()
		if err != nil {
			return res, fmt.Errorf("known pack %d version: %w", i, err)
		}
		logger.Debug().
			Str("namespace", namespace).
			Str("id", packID).
			Str("version", version).
			Msg("client known pack")
	}

	res.Out = h.catalog.Frames()
	res.Out = append(res.Out, h.tags.Frame())
	res.Out = append(res.Out, protocol.EncodeFrame(finishConfigID, nil))
	logger.Debug().Int("frames", len(res.Out)).Msg("sending registry data")
	return res, nil
}

func logUnknownPacket(logger zerolog.Logger, phase Phase, id int32) {
	logger.Warn().
		Str("phase", phase.String()).
		Int32("packet_id", id).
		Msg("unknown packet id for phase")
}
