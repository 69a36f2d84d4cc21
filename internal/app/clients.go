package app

import (
	"fmt"
	"strings"

	"github.com/yungbote/artistdash-backend/internal/clients/redis"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type Clients struct {
	// Denylist is nil when no redis address is configured.
	Denylist redis.TokenDenylist
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	var clients Clients
	if strings.TrimSpace(cfg.Redis.Addr) != "" {
		denylist, err := redis.NewTokenDenylist(log, cfg.Redis)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis token denylist: %w", err)
		}
		clients.Denylist = denylist
	} else {
		log.Warn("redis.addr not set; logout will not revoke tokens")
	}
	return clients, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Denylist != nil {
		_ = c.Denylist.Close()
	}
}
