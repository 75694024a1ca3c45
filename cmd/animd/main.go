package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"

	"animd/internal/animator"
	"animd/internal/common/fsutil"
	"animd/internal/config"
	"animd/internal/frameclock"
	"animd/internal/httpapi"
	"animd/internal/stream"
	"animd/internal/visibility"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := ":8080"
	if v := os.Getenv("ANIMD_ADDR"); v != "" {
		defaultAddr = v
	}
	addr := flag.String("addr", defaultAddr, "HTTP listen address, e.g. :8080")
	configPath := flag.String("config", "", "Optional config file (.yaml/.yml/.json/.toml)")
	fps := flag.Float64("fps", 0, "Target frame rate in fps (0 = uncapped, every tick fires)")
	intervalMS := flag.Int("interval-ms", 0, "Frame clock cadence in milliseconds (0 = ~60Hz)")
	corsOrigin := flag.String("cors-origin", "", "Allowed CORS origin for browser surfaces (empty disables CORS)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	httpapi.SetLogger(logger)

	// Optional config file; flags fill the gaps and fps/interval override.
	var cfg config.Config
	if *configPath != "" {
		p, err := fsutil.ExpandHome(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("resolve config path")
		}
		if !fsutil.PathExists(p) {
			logger.Fatal().Str("path", p).Msg("config file not found")
		}
		cfg, err = config.Load(p)
		if err != nil {
			logger.Fatal().Err(err).Str("path", p).Msg("load config")
		}
	}
	if cfg.Addr == "" {
		cfg.Addr = *addr
	}
	if *fps > 0 {
		cfg.TargetFPS = *fps
	}
	if *intervalMS > 0 {
		cfg.FrameIntervalMS = *intervalMS
	}

	clock := frameclock.NewSystem(time.Duration(cfg.FrameIntervalMS) * time.Millisecond)
	bus := visibility.New()

	acfg := animator.Config{TargetFrameRate: cfg.TargetFPS, Clock: clock, Bus: bus}
	if cfg.IgnoreRateCap {
		acfg.TargetFrameRate = 0
	}
	if cfg.PauseOnHidden != nil && !*cfg.PauseOnHidden {
		acfg.DisablePauseOnHidden = true
	}
	if cfg.ResumeOnShown != nil && !*cfg.ResumeOnShown {
		acfg.DisableResumeOnShown = true
	}
	anim := animator.New(acfg)
	cancelMetrics := httpapi.ObserveAnimator(anim)

	// Optional MQTT frame sink streaming the demo animation to a strip.
	var client mqtt.Client
	if cfg.MQTT.URL != "" {
		topic := cfg.MQTT.Topic
		if topic == "" {
			topic = "home/strip/stream"
		}
		options := mqtt.NewClientOptions().
			AddBroker(cfg.MQTT.URL).
			SetClientID("animd").
			SetUsername(cfg.MQTT.Username).
			SetPassword(cfg.MQTT.Password).
			SetKeepAlive(30 * time.Second).
			SetPingTimeout(5 * time.Second)
		client = mqtt.NewClient(options)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			logger.Fatal().Err(token.Error()).Str("url", cfg.MQTT.URL).Msg("mqtt connect")
		}
		renderer := stream.NewGradientPulse(stream.Rainbow, cfg.Pixels, 4*time.Second)
		streamer := stream.NewStreamer(client, topic, renderer)
		streamer.Attach(anim)
		logger.Info().Str("topic", topic).Msg("frame sink attached")
	}

	if *corsOrigin != "" {
		httpapi.SetCORSOptions(true,
			[]string{*corsOrigin},
			[]string{http.MethodGet, http.MethodPost, http.MethodPut},
			[]string{"Content-Type"})
	}

	svc := httpapi.NewAnimatorService(anim, bus)
	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(svc)}

	anim.Start()

	go func() {
		logger.Info().Str("addr", cfg.Addr).Float64("fps", cfg.TargetFPS).Msg("animd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	cancelMetrics()
	_ = anim.Close()
	_ = clock.Close()
	if client != nil {
		client.Disconnect(250)
	}
}
