package server

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StatusConfig shapes the server-list JSON returned to status requests.
type StatusConfig struct {
	VersionName   string
	MaxPlayers    int
	OnlinePlayers int
	Description   string
}

func DefaultStatusConfig() StatusConfig {
	return StatusConfig{
		VersionName:   VersionName,
		MaxPlayers:    100,
		OnlinePlayers: 4,
		Description:   "Hello world!",
	}
}

func (c StatusConfig) withDefaults() StatusConfig {
	def := DefaultStatusConfig()
	if strings.TrimSpace(c.VersionName) == "" {
		c.VersionName = def.VersionName
	}
	if c.MaxPlayers == 0 {
		c.MaxPlayers = def.MaxPlayers
	}
	if c.Description == "" {
		c.Description = def.Description
	}
	return c
}

type statusResponse struct {
	Version     statusVersion     `json:"version"`
	Players     statusPlayers     `json:"players"`
	Description statusDescription `json:"description"`
}

type statusVersion struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type statusPlayers struct {
	Max    int            `json:"max"`
	Online int            `json:"online"`
	Sample []samplePlayer `json:"sample"`
}

type samplePlayer struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type statusDescription struct {
	Text string `json:"text"`
}

func statusResponseJSON(cfg StatusConfig) ([]byte, error) {
	doc := statusResponse{
		Version: statusVersion{Name: cfg.VersionName, Protocol: ProtocolVersion},
		Players: statusPlayers{
			Max:    cfg.MaxPlayers,
			Online: cfg.OnlinePlayers,
			Sample: []samplePlayer{{Name: "Player", ID: playerUUID}},
		},
		Description: statusDescription{Text: cfg.Description},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("server: encode status response: %w", err)
	}
	return raw, nil
}
