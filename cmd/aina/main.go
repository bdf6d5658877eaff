package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ainatrbl/aina/internal/auth"
	"github.com/ainatrbl/aina/internal/config"
	"github.com/ainatrbl/aina/internal/database"
	"github.com/ainatrbl/aina/internal/database/repository"
	"github.com/ainatrbl/aina/internal/nav"
	"github.com/ainatrbl/aina/internal/service"
	"github.com/ainatrbl/aina/internal/session"
	"github.com/ainatrbl/aina/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrationsWithDB(db, cfg.Database.MigrationsPath); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	// repositories
	memberRepo := repository.NewMemberRepo(db)
	annRepo := repository.NewAnnouncementRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	channelRepo := repository.NewChannelRepo(db)
	eventRepo := repository.NewEventRepo(db)

	provider := authProvider(cfg, memberRepo)

	sessionDir, err := session.DefaultDir()
	if err != nil {
		log.Fatalf("session dir: %v", err)
	}
	store := session.NewStore(provider, sessionDir)

	coord := nav.New()
	store.Subscribe(coord.OnAuthChange)

	directory := &service.DirectoryService{
		Announcements: annRepo,
		Rooms:         roomRepo,
		Channels:      channelRepo,
		Events:        eventRepo,
	}
	messenger := &service.MessengerService{Rooms: roomRepo}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	p := tea.NewProgram(tui.New(ctx, cfg, store, coord, directory, messenger, loc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func authProvider(cfg config.Config, members *repository.MemberRepo) auth.Provider {
	switch strings.ToLower(strings.TrimSpace(cfg.Auth.Provider)) {
	case "remote":
		return auth.NewRemoteProvider(cfg.Auth.RemoteURL)
	default:
		return auth.NewLocalProvider(members)
	}
}
