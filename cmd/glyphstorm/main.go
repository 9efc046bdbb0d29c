package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"glyphstorm/audio"
	"glyphstorm/engine"
	"glyphstorm/event"
	"glyphstorm/input"
	"glyphstorm/meta"
	"glyphstorm/parameter"
	"glyphstorm/render"
	"glyphstorm/status"
)

var (
	seedFlag    = flag.Int64("seed", 0, "Run seed, 0 picks one from the clock")
	godFlag     = flag.Bool("god", false, "Ignore all incoming damage")
	noSpawnFlag = flag.Bool("nospawn", false, "Disable scheduled enemy spawns")
	muteFlag    = flag.Bool("mute", false, "Start with audio muted")
	volumeFlag  = flag.Float64("volume", -1, "Audio volume 0..1, -1 keeps the options file value")
	fpsFlag     = flag.Int("fps", parameter.TargetFPS, "Frame rate cap, clamped to 15..120")
	profileFlag = flag.String("profile", "", "Profile file path, empty uses the default location")
	optionsFlag = flag.String("options", "glyphstorm.yml", "Options file path")
)

func main() {
	flag.Parse()

	opts, err := meta.LoadOptions(*optionsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Options file %s is corrupt: %v (using defaults)\n", *optionsFlag, err)
	}

	seed := opts.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	volume := opts.Volume
	if *volumeFlag >= 0 {
		volume = *volumeFlag
	}
	muted := opts.Muted || *muteFlag

	profilePath := opts.ProfilePath
	if *profileFlag != "" {
		profilePath = *profileFlag
	}
	if profilePath == "" {
		profilePath = meta.DefaultProfilePath()
	}

	profile, err := meta.LoadProfile(profilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Profile %s is unreadable: %v\n", profilePath, err)
		fmt.Fprintln(os.Stderr, "Refusing to start: finishing a run would overwrite it. Move or repair the file first.")
		os.Exit(1)
	}

	cfg := engine.DefaultConfig()
	cfg.Seed = seed
	cfg.GodMode = *godFlag
	cfg.NoSpawn = *noSpawnFlag
	cfg.StartBonus = profile.PermanentBonus()
	game := engine.NewGame(cfg)

	// Audio starts before the screen so its warning stays readable.
	sounds := audio.NewSoundManager(game.Registry())
	if err := sounds.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
	}
	defer sounds.Cleanup()
	sounds.SetVolume(volume)
	sounds.SetMuted(muted)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack trace prints,
	// otherwise it vanishes with the alternate screen
	defer func() {
		if r := recover(); r != nil {
			crashDump(screen, r)
		}
	}()

	screen.SetStyle(render.StyleBackground)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	width, height := screen.Size()
	cam := render.NewCamera(width, height)
	orch := render.NewOrchestrator(screen, width, height)

	effects := render.NewEffectsRenderer(rand.New(rand.NewSource(time.Now().UnixNano())))
	debugView := render.NewDebugRenderer(game.Registry())

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.Priority
	}
	for _, def := range []rendererDef{
		{render.NewZoneRenderer(), render.PriorityZone},
		{render.NewPickupRenderer(), render.PriorityPickup},
		{render.NewMineRenderer(), render.PriorityMine},
		{render.NewProjectileRenderer(), render.PriorityProjectile},
		{render.NewDroneRenderer(), render.PriorityDrone},
		{render.NewEnemyRenderer(), render.PriorityEnemy},
		{render.NewPlayerRenderer(), render.PriorityPlayer},
		{effects, render.PriorityParticle},
		{render.NewHUDRenderer(), render.PriorityHUD},
		{render.NewOverlayRenderer(), render.PriorityOverlay},
		{debugView, render.PriorityDebug},
	} {
		orch.Register(def.renderer, def.priority)
	}

	in := input.NewHandler()
	hub := meta.NewHubMenu(profile)

	events := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crashDump(screen, r)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Fini closed the event stream
			}
			events <- ev
		}
	}()

	fps := *fpsFlag
	if fps < 15 {
		fps = 15
	}
	if fps > 120 {
		fps = 120
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch tev := ev.(type) {
			case *tcell.EventResize:
				width, height = tev.Size()
				orch.Resize(width, height)
				cam.SetScreen(width, height)
			case *tcell.EventFocus:
				if !tev.Focused && game.Phase() == engine.PhasePlaying {
					in.Inject(engine.ActionPause)
				}
			default:
				in.HandleEvent(ev)
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now

			if in.Consume(engine.ActionQuit) {
				return
			}
			if in.Consume(engine.ActionDebug) {
				debugView.Toggle()
			}
			if in.Consume(engine.ActionMute) {
				sounds.ToggleMute()
			}

			// The hub menu lives out here: it mutates the profile, which
			// the engine never sees
			if game.Phase() == engine.PhaseHub {
				switch {
				case in.Consume(engine.ActionUp):
					hub.MoveUp()
					game.Events().PushSound(event.SoundUIMove, game.Frame())
				case in.Consume(engine.ActionDown):
					hub.MoveDown()
					game.Events().PushSound(event.SoundUIMove, game.Frame())
				case in.Consume(engine.ActionConfirm):
					action, bought := hub.Select()
					if bought {
						game.Events().PushSound(event.SoundUISelect, game.Frame())
						saveProfile(profile, profilePath, game.Registry())
					}
					switch action {
					case meta.HubActionStart:
						game.ApplyPermanent(profile.PermanentBonus())
						if game.BeginRun() {
							game.Events().PushSound(event.SoundUISelect, game.Frame())
						}
					case meta.HubActionQuit:
						return
					}
				}
			}

			res := game.Step(in)
			effects.Ingest(res)

			batch := game.Events().Consume()
			for _, ge := range batch {
				if ge.Type != event.EventRunEnded {
					continue
				}
				if end, ok := ge.Payload.(*event.RunEndedPayload); ok {
					profile.Record(end)
					saveProfile(profile, profilePath, game.Registry())
				}
			}
			sounds.Process(batch)

			snap := game.Snapshot()
			cam.Follow(snap.CameraTarget)

			var menu *render.MenuView
			if snap.Phase == engine.PhaseHub {
				menu = hubMenuView(hub)
			}

			orch.Frame(render.Context{
				Snap:      &snap,
				DeltaTime: dt,
				Cam:       cam,
				Width:     width,
				Height:    height,
				Muted:     sounds.IsMuted(),
				Menu:      menu,
			})

			in.Flush()
		}
	}
}

// crashDump resets the terminal and prints the panic to stderr. Never
// returns.
func crashDump(screen tcell.Screen, r any) {
	if screen != nil {
		screen.Fini()
	}
	fmt.Fprintf(os.Stderr, "\x1b[31mGLYPHSTORM CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// saveProfile writes the profile, surfacing failures through the status
// registry since stderr is invisible under the alternate screen.
func saveProfile(p *meta.Profile, path string, reg *status.Registry) {
	if err := p.Save(path); err != nil {
		reg.Strings.Get("profile.error").Store(err.Error())
	}
}

// hubMenuView adapts the hub rows into the renderer's menu shape.
func hubMenuView(hub *meta.HubMenu) *render.MenuView {
	rows := hub.Rows()
	items := make([]render.MenuItem, len(rows))
	for i, r := range rows {
		items[i] = render.MenuItem{Label: r.Label, Detail: r.Detail, Disabled: r.Disabled}
	}
	return &render.MenuView{
		Title:  "THE VAULT",
		Items:  items,
		Cursor: hub.Cursor(),
		Footer: hub.Footer(),
	}
}
