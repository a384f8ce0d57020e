package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"slideshow/internal/core/slideshow"
	"slideshow/internal/logger"
	"slideshow/internal/ui/preferences"
	"slideshow/internal/ui/tray"
	"slideshow/internal/ui/viewer"
	"slideshow/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

func runSlideshow(opts options) error {
	logger.Init(opts.LogLevel, false)
	log := logger.WithComponent("slideshow")

	controller, err := slideshow.New(opts.Items, opts.Settings.SlideshowConfig(), slideshow.ClockScheduler{Dispatch: fyne.Do})
	if err != nil {
		return err
	}

	fyneApp := app.NewWithID("com.slideshow.app")
	fyneApp.SetIcon(resources.AppIcon())

	viewerWindow := viewer.New(fyneApp, viewer.Config{
		Title:      "Slideshow",
		Width:      opts.Settings.WindowWidth,
		Height:     opts.Settings.WindowHeight,
		Fullscreen: opts.Settings.Fullscreen,
	}, controller)
	viewerWindow.SetOnQuit(fyneApp.Quit)

	prefsWindow := preferences.New(fyneApp, opts.Defaults, func(updated preferences.Settings) {
		if err := saveSettings(opts.ConfigPath, updated); err != nil {
			log.Error().Err(err).Msg("save settings")
			return
		}
		log.Info().Float64("delay", updated.Delay).Bool("fullscreen", updated.Fullscreen).Msg("settings saved")
	})

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnTogglePause: func() { controller.TogglePause() },
			OnNext:        controller.Next,
			OnPrevious:    controller.Previous,
			OnFaster:      func() { controller.IncreaseSpeed() },
			OnSlower:      func() { controller.DecreaseSpeed() },
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(resources.AppIcon())
	}

	updateTray := func(event slideshow.Event) {
		if trayManager == nil {
			return
		}
		trayManager.SetStatus(formatStatus(event))
		if event.Type == slideshow.EventPauseChange {
			trayManager.SetPaused(event.Paused)
			if event.Paused {
				desktopApp.SetSystemTrayIcon(resources.PausedIcon())
			} else {
				desktopApp.SetSystemTrayIcon(resources.AppIcon())
			}
		}
	}

	controller.Subscribe(func(event slideshow.Event) {
		switch event.Type {
		case slideshow.EventIndexChange:
			log.Debug().Int("index", event.Index).Bool("auto", event.Auto).Str("item", event.Item).Msg("showing")
			viewerWindow.ShowItem(event.Item)
		case slideshow.EventPauseChange:
			log.Debug().Bool("paused", event.Paused).Msg("pause changed")
		case slideshow.EventIntervalChange:
			log.Debug().Dur("interval", event.Interval).Msg("interval changed")
		}
		updateTray(event)
	})

	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signals)
		close(done)
	}()
	go func() {
		select {
		case <-signals:
			log.Info().Msg("interrupted")
			fyne.Do(fyneApp.Quit)
		case <-done:
		}
	}()

	first := controller.Snapshot()
	log.Debug().Int("items", first.Count).Dur("interval", first.Interval).Str("item", first.Item).Msg("starting slideshow")
	viewerWindow.ShowItem(first.Item)
	updateTray(first)

	controller.Start()
	defer controller.Stop()

	viewerWindow.Show()
	fyneApp.Run()
	return nil
}

func formatStatus(event slideshow.Event) string {
	return fmt.Sprintf("%d/%d · %s", event.Index+1, event.Count, viewer.FormatInterval(event.Interval))
}
