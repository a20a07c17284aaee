package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/game"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/sound"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/authority"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/config"
	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/view"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/input"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/log"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/repositories"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/session"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/tick"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.Default()
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		panic(fmt.Sprintf("Failed to read environment: %v", err))
	}

	flag.StringVar(&cfg.AuthorityURL, "authority-url", cfg.AuthorityURL, "Authority base URL")
	flag.DurationVar(&cfg.TickInterval, "tick-interval", cfg.TickInterval, "Minimum time between ticks")
	flag.DurationVar(&cfg.TickTimeout, "tick-timeout", cfg.TickTimeout, "Timeout for a single tick request")
	flag.DurationVar(&cfg.StartTimeout, "start-timeout", cfg.StartTimeout, "Timeout for starting a session")
	flag.StringVar(&cfg.ProfileURL, "profile-url", cfg.ProfileURL, "Profile repository URL (memory://, sqlite://path, postgres://...)")
	profile := flag.String("profile", cfg.Profile, "Local profile name")
	flag.StringVar(&cfg.AssetsDir, "assets-dir", cfg.AssetsDir, "Directory holding sound assets")
	flag.IntVar(&cfg.MaxLevel, "max-level", cfg.MaxLevel, "Last level offered after a win")
	flag.IntVar(&cfg.MaxTickFailures, "max-tick-failures", cfg.MaxTickFailures, "Consecutive failed ticks before giving up (0 retries forever)")
	flag.IntVar(&cfg.Mode, "mode", cfg.Mode, "Start a game right away with 1 or 2 players")
	flag.IntVar(&cfg.Level, "level", cfg.Level, "Level to start with -mode")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the debug overlay")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stdout")
	flag.Parse()
	cfg.Profile = config.SanitizeProfile(*profile)

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	logger := log.New(os.Stdout, parsedLogLevel)
	if cfg.LogFile != "" {
		logger = log.NewFileLogger(cfg.LogFile, parsedLogLevel)
	}
	log.SetDefaultLogger(logger)
	defer log.Sync()
	log.Info("Log level set to %s", parsedLogLevel)

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
		log.Warn("Failed to create config directory: %v", err)
	}

	ctx := context.Background()
	repositoryCtx, repositoryCancel := context.WithTimeout(ctx, 5*time.Second)
	repository, err := repositories.NewRepository(repositoryCtx, cfg.ProfileURL, cfg.Profile)
	repositoryCancel()
	if err != nil {
		log.Warn("Failed to open profile %s, using memory: %v", cfg.ProfileURL, err)
		repository = repositories.NewInMemoryRepository()
	}
	defer func() {
		if err := repository.Close(context.Background()); err != nil {
			log.Error("Failed to close repository: %v", err)
		}
	}()

	authorityClient := authority.NewHTTPClient(authority.NewHTTPClientOptions{
		BaseURL: cfg.AuthorityURL,
	})
	log.Info("Using authority at %s", cfg.AuthorityURL)

	sampler, err := input.NewSampler(cfg.Bindings)
	if err != nil {
		panic(fmt.Sprintf("Failed to create input sampler: %v", err))
	}

	sessions, err := session.NewManager(session.NewManagerOptions{
		Authority:    authorityClient,
		History:      repository,
		StartTimeout: cfg.StartTimeout,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create session manager: %v", err))
	}

	scheduler, err := tick.NewScheduler(tick.NewSchedulerOptions{
		Sessions:  sessions,
		Input:     sampler,
		Authority: authorityClient,
		Interval:  cfg.TickInterval,
		Timeout:   cfg.TickTimeout,
		OnWin: func(worldState *gametypes.WorldState) {
			log.Info("Level complete")
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create tick scheduler: %v", err))
	}

	soundPlayer := sound.NewPlayer(sound.NewPlayerOptions{
		AssetsDir: cfg.AssetsDir,
		Mute:      cfg.Mute,
	})
	defer soundPlayer.Close()

	g, err := game.NewGame(game.NewGameOptions{
		Debug:           cfg.Debug,
		Sessions:        sessions,
		Scheduler:       scheduler,
		Sampler:         sampler,
		Sound:           soundPlayer,
		Profile:         repository,
		MaxLevel:        cfg.MaxLevel,
		MaxTickFailures: cfg.MaxTickFailures,
		AutoStartMode:   cfg.Mode,
		AutoStartLevel:  cfg.Level,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}
	defer g.Shutdown()

	ebiten.SetWindowSize(view.DefaultWidth, view.DefaultHeight)
	ebiten.SetWindowTitle("Puzzle Platformer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Failed to run game: %v", err)
	}
}
