package main

import (
	"context"
	"log"
	"strings"
	"time"

	"boxtimer/internal/core/model"
	"boxtimer/internal/core/timer"
	"boxtimer/internal/platform"
	"boxtimer/internal/sound"
	"boxtimer/internal/storage"
	"boxtimer/internal/ui/animation"
	"boxtimer/internal/ui/preferences"
	"boxtimer/internal/ui/timerview"
	"boxtimer/internal/ui/tray"
	"boxtimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "BoxTimer"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		if activateErr := platform.ActivateRunning(appName); activateErr != nil {
			log.Printf("single instance: %v", activateErr)
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings := loadStartupSettings(strings.ToLower(appName))
	engine, err := timer.New(settings.TimerConfig(), timer.Options{TickInterval: time.Second})
	if err != nil {
		log.Printf("timer engine: %v", err)
		return
	}

	cues := sound.NewPlayer(sound.NewBeepDecoder())
	defer cues.Teardown()
	if bell, err := resources.Sound(resources.BellSound); err != nil {
		log.Printf("bell sound: %v", err)
	} else {
		cues.Load(cueAssets(bell))
	}
	engine.SetCuePlayer(cues)

	fyneApp := app.NewWithID("com.boxtimer.app")
	fyneApp.SetIcon(resources.MustLogo(resources.AppLogo))
	mainWindow := fyneApp.NewWindow(appName)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) error {
		return engine.ApplyConfig(updated.TimerConfig())
	})

	view := timerview.New(mainWindow, timerview.Callbacks{
		OnToggle: func() {
			engine.Toggle()
		},
		OnReset:    engine.Reset,
		OnSettings: prefsWindow.Show,
	})
	view.Render(engine.Snapshot())

	flasher := animation.New(animation.DefaultConfig(), func(on bool) {
		fyne.Do(func() {
			view.SetHighlight(on)
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	showMain := func() {
		mainWindow.Show()
		mainWindow.RequestFocus()
	}

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: showMain,
			OnToggle: func() {
				engine.Toggle()
			},
			OnReset:    engine.Reset,
			OnSettings: prefsWindow.Show,
			OnQuit: func() {
				cancel()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(fyneApp.Icon())
		trayManager.Update(engine.Snapshot())
	}

	events := engine.Subscribe(16)
	go func() {
		for event := range events {
			state := event.State
			if event.Type == timer.EventPhaseChange {
				flasher.Flash(ctx)
			}
			fyne.Do(func() {
				view.Render(state)
				if trayManager != nil {
					trayManager.Update(state)
				}
			})
		}
	}()

	go engine.Run(ctx)
	go guard.Serve(func() {
		fyne.Do(showMain)
	})

	fyneApp.Lifecycle().SetOnStopped(func() {
		cancel()
		flasher.Stop()
		engine.Close()
		cues.Teardown()
	})

	mainWindow.SetMaster()
	mainWindow.Resize(fyne.NewSize(400, 640))
	mainWindow.ShowAndRun()
}

// loadStartupSettings reads the optional defaults file and falls back to the
// built-in defaults when it is unreadable or invalid.
func loadStartupSettings(configName string) preferences.Settings {
	settings, err := storage.LoadSettings(configName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	if err := settings.TimerConfig().Validate(); err != nil {
		log.Printf("load settings: %v", err)
		return preferences.DefaultSettings()
	}
	return settings
}

// cueAssets binds both cues to the same bell; each gets its own handle.
func cueAssets(bell fyne.Resource) map[model.Cue]sound.Asset {
	asset := sound.Asset{Name: bell.Name(), Data: bell.Content()}
	return map[model.Cue]sound.Asset{
		model.CueRoundStart: asset,
		model.CueRoundEnd:   asset,
	}
}
