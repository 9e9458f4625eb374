package main

import (
	"fmt"
	"os"

	"github.com/danmuck/craftctl/internal/admin"
	"github.com/danmuck/craftctl/internal/observability"
	"github.com/danmuck/craftctl/internal/server"
)

func main() {
	logger := observability.InitLogger("craftctl")

	cfg := server.DefaultConfig()
	if len(os.Args) > 1 {
		var err error
		cfg, err = loadConfig(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "craftctl: %v\n", err)
			os.Exit(1)
		}
	}

	svc, err := server.NewService(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "craftctl: %v\n", err)
		os.Exit(1)
	}

	if cfg.AdminListenAddr != "" {
		go func() {
			if err := admin.Serve(cfg.AdminListenAddr, svc); err != nil {
				logger.Error().Err(err).Msg("admin server failed")
			}
		}()
	}

	if err := svc.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "craftctl: %v\n", err)
		os.Exit(1)
	}
}
