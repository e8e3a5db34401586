// Package tray manages the system tray icon and menu for cmd/benchtop.
package tray

import (
	"fmt"
	"strings"

	"github.com/gokeyb/gokeyb/hidsink"

	"fyne.io/systray"
)

// RunOpts configures the system tray.
type RunOpts struct {
	Version          string // app version string (e.g., "1.0.0")
	AutoStartEnabled bool   // initial state of "Start on Login" checkbox
	OnReady          func()
	OnAutoStart      func(enabled bool) // called when user toggles auto-start
	OnQuit           func()
}

// Run starts the system tray. It blocks on the main thread.
func Run(opts RunOpts) {
	systray.Run(func() {
		systray.SetIcon(IconDisconnected)
		systray.SetTitle("")
		systray.SetTooltip("gokeyb bench — no accessory")

		versionLabel := "gokeyb benchtop"
		if opts.Version != "" && opts.Version != "dev" {
			versionLabel += " v" + strings.TrimPrefix(opts.Version, "v")
		}
		mVersion := systray.AddMenuItem(versionLabel, "")
		mVersion.Disable()

		systray.AddSeparator()

		mAutoStart := systray.AddMenuItemCheckbox("Start on Login", "Launch automatically on login", opts.AutoStartEnabled)

		systray.AddSeparator()

		mStatus := systray.AddMenuItem("Status: disconnected", "")
		mStatus.Disable()
		mLayer := systray.AddMenuItem("Layer: 0", "")
		mLayer.Disable()

		systray.AddSeparator()

		mQuit := systray.AddMenuItem("Quit", "Exit gokeyb benchtop")

		statusItem = mStatus
		layerItem = mLayer

		if opts.OnReady != nil {
			opts.OnReady()
		}

		go func() {
			for {
				select {
				case <-mAutoStart.ClickedCh:
					if mAutoStart.Checked() {
						mAutoStart.Uncheck()
						if opts.OnAutoStart != nil {
							opts.OnAutoStart(false)
						}
					} else {
						mAutoStart.Check()
						if opts.OnAutoStart != nil {
							opts.OnAutoStart(true)
						}
					}
				case <-mQuit.ClickedCh:
					if opts.OnQuit != nil {
						opts.OnQuit()
					}
					systray.Quit()
				}
			}
		}()
	}, func() {
		// cleanup on systray exit
	})
}

var (
	statusItem *systray.MenuItem
	layerItem  *systray.MenuItem
)

// SetState updates the tray icon and tooltip based on the hidsink
// connection state.
func SetState(state hidsink.State) {
	switch state {
	case hidsink.Disconnected:
		systray.SetIcon(IconDisconnected)
		systray.SetTooltip("gokeyb bench — no accessory")
		if statusItem != nil {
			statusItem.SetTitle("Status: disconnected")
		}
	case hidsink.Connected:
		systray.SetIcon(IconConnected)
		systray.SetTooltip("gokeyb bench — ready")
		if statusItem != nil {
			statusItem.SetTitle("Status: connected")
		}
	}
}

// SetLayer updates the tray's display of the currently effective layer.
func SetLayer(layer int) {
	if layerItem != nil {
		layerItem.SetTitle(fmt.Sprintf("Layer: %d", layer))
	}
}

// Quit stops the system tray.
func Quit() {
	systray.Quit()
}
