package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/glide/adapter"
	"github.com/matt-g-everett/glide/anim"
	"github.com/matt-g-everett/glide/easing"
	"github.com/matt-g-everett/glide/stream"
	"github.com/npillmayer/schuko/tracing"
	"github.com/paulmach/orb"
)

func tracer() tracing.Trace {
	return tracing.Select("glide")
}

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Streamer   *stream.Streamer
	Scheduler  *anim.TickerScheduler
	Controller *anim.Controller
	Presets    map[string]adapter.Fog
	PathEasing easing.Func
	FogEasing  easing.Func
}

func newApp(config stream.Config) *app {
	a := new(app)
	a.Config = config
	a.Presets = adapter.FogPresets
	a.PathEasing = mustEasing(config.Animation.Path.Easing)
	a.FogEasing = mustEasing(config.Animation.Fog.Easing)
	a.Scheduler = anim.NewTickerScheduler(config.Animation.FrameRate)
	a.Controller = anim.NewController(a.Scheduler)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	tracer().Infof("Connected to %s", a.Config.Mqtt.URL)
}

func (a *app) loadPresets() {
	path := a.Config.Animation.Fog.PresetsFile
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	presets, err := adapter.LoadFogPresets(f)
	if err != nil {
		panic(err)
	}
	a.Presets = presets
}

func mustEasing(name string) easing.Func {
	if name == "" {
		return nil
	}
	f, err := easing.Lookup(name)
	if err != nil {
		panic(err)
	}
	return f
}

// orbit circles the configured centre, then hands over to the path
// flight, which hands back when it lands.
func (a *app) orbit() {
	cfg := a.Config.Animation.Orbit
	if len(cfg.Center) != 2 {
		return
	}
	adapter.OrbitCamera(a.Controller, a.Streamer, orb.Point{cfg.Center[0], cfg.Center[1]}, adapter.OrbitOptions{
		Radius:    cfg.Radius,
		Altitude:  cfg.Altitude,
		Duration:  cfg.Duration,
		Direction: cfg.Direction,
		OnStop:    a.followPath,
	})
}

func (a *app) followPath() {
	cfg := a.Config.Animation.Path
	path := make(orb.LineString, 0, len(cfg.Coordinates))
	for _, c := range cfg.Coordinates {
		path = append(path, orb.Point{c[0], c[1]})
	}
	_, err := adapter.FollowPath(a.Controller, a.Streamer, adapter.Geodesic{}, path, adapter.FollowOptions{
		Duration: cfg.Duration,
		Altitude: cfg.Altitude,
		Pitch:    cfg.Pitch,
		Easing:   a.PathEasing,
		OnProgress: func(progress float64, at orb.Point) {
			tracer().Debugf("path %.0f%% at %v", progress*100, at)
		},
		OnComplete: a.orbit,
	})
	if err != nil {
		tracer().Infof("Skipping path flight: %v", err)
		a.orbit()
	}
}

// cycleFog transitions from preset i of the configured cycle to the next
// one and moves on when the target is reached. It runs on the frame
// goroutine, so CancelAll ends the cycle.
func (a *app) cycleFog(i int) {
	cfg := a.Config.Animation.Fog
	from := a.Presets[cfg.Cycle[i%len(cfg.Cycle)]]
	to := a.Presets[cfg.Cycle[(i+1)%len(cfg.Cycle)]]
	adapter.AnimateFog(a.Controller, a.Streamer, from, to, adapter.FogOptions{
		Duration:    cfg.Duration,
		Easing:      a.FogEasing,
		BlendColors: cfg.BlendColors,
		OnComplete:  func() { a.cycleFog(i + 1) },
	})
}

func (a *app) run(ctx context.Context) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	defer a.Client.Disconnect(250)

	// Animations start before the frame loop and continue from callbacks
	// on its goroutine.
	a.orbit()
	a.cycleFog(0)

	if err := a.Scheduler.Run(ctx); err != nil {
		tracer().Debugf("frame loop stopped: %v", err)
	}
	a.Controller.CancelAll()
	tracer().Infof("Stopped")
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	debug := flag.Bool("debug", false, "Trace animation lifecycle events.")
	flag.Parse()

	level := tracing.LevelInfo
	if *debug {
		level = tracing.LevelDebug
	}
	for _, key := range []string{"glide", "anim", "adapter", "stream"} {
		tracing.Select(key).SetTraceLevel(level)
	}

	// Read the config
	config, err := stream.LoadConfig(*configPath)
	if err != nil {
		panic(err)
	}
	a := newApp(config)
	a.loadPresets()
	tracer().Infof("Config: %+v", a.Config.Animation)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
	a.Streamer = stream.NewStreamer(a.Client, a.Config.Mqtt.Topics.Prefix, a.Config.Mqtt.QoS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	a.run(ctx)
}
