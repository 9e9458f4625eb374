package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/craftctl/internal/server"
)

// craftctl config.toml key mapping to runtime settings.
type fileConfig struct {
	ListenAddr      string `toml:"listen_addr"`
	AdminListenAddr string `toml:"admin_listen_addr"`
	VersionName     string `toml:"version_name"`
	MOTD            string `toml:"motd"`
	MaxPlayers      int    `toml:"max_players"`
	OnlinePlayers   int    `toml:"online_players"`
}

// loadConfig overlays TOML keys onto defaults; only keys present in the
// file override.
func loadConfig(path string) (server.Config, error) {
	cfg := server.DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return server.Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("listen_addr") {
		cfg.ListenAddr = strings.TrimSpace(raw.ListenAddr)
	}
	if meta.IsDefined("admin_listen_addr") {
		cfg.AdminListenAddr = strings.TrimSpace(raw.AdminListenAddr)
	}
	if meta.IsDefined("version_name") {
		cfg.Status.VersionName = strings.TrimSpace(raw.VersionName)
	}
	if meta.IsDefined("motd") {
		cfg.Status.Description = raw.MOTD
	}
	if meta.IsDefined("max_players") {
		cfg.Status.MaxPlayers = raw.MaxPlayers
	}
	if meta.IsDefined("online_players") {
		cfg.Status.OnlinePlayers = raw.OnlinePlayers
	}

	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return server.Config{}, fmt.Errorf("load config: listen_addr must not be empty")
	}
	if cfg.Status.MaxPlayers < 0 || cfg.Status.OnlinePlayers < 0 {
		return server.Config{}, fmt.Errorf("load config: player counts must not be negative")
	}

	return cfg, nil
}
