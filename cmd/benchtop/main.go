// gokeyb-benchtop drives the firmware pipeline against an in-memory
// bench.Matrix instead of soldered hardware: global hotkeys stand in for
// switch presses, a tray icon shows the hidsink connection, and a local
// HTTP endpoint reports status — letting the whole keycode -> matrix ->
// debounce -> layout -> hidsink pipeline run and be demoed on a laptop.
package main

import (
	"context"
	"log"
	"time"

	"github.com/gokeyb/gokeyb/bench"
	"github.com/gokeyb/gokeyb/debounce"
	"github.com/gokeyb/gokeyb/firmware"
	"github.com/gokeyb/gokeyb/hidsink"
	"github.com/gokeyb/gokeyb/internal/benchconfig"
	"github.com/gokeyb/gokeyb/internal/hotkey"
	"github.com/gokeyb/gokeyb/internal/server"
	"github.com/gokeyb/gokeyb/internal/tray"
	"github.com/gokeyb/gokeyb/keycode"
	"github.com/gokeyb/gokeyb/layout"
	"github.com/gokeyb/gokeyb/matrix"
)

var version = "dev"

// demoBoard is a small two-layer board shaped after keyberon75's demo
// layout: a base QWERTY-ish row, a hold-tap Ctrl/Space, a layer-tap
// Enter, a held function layer, and a multi-key clipboard shortcut.
func demoBoard() *layout.Board {
	cut := layout.Multi(keycode.LShift, keycode.Delete)
	copyAction := layout.Multi(keycode.LCtrl, keycode.Insert)

	layer0 := [][]layout.Action{
		{layout.KC(keycode.Q), layout.KC(keycode.W), layout.KC(keycode.E), layout.KC(keycode.R)},
		{layout.KC(keycode.A), layout.KC(keycode.S), layout.KC(keycode.D), layout.KC(keycode.F)},
		{layout.HoldTap(layout.KC(keycode.LCtrl), layout.KC(keycode.Space)), layout.KC(keycode.LShift),
			layout.LayerTapAction(1, layout.KC(keycode.Enter)), layout.KC(keycode.BSpace)},
		{layout.Trans, layout.LayerAction(1), layout.LayerAction(1), layout.Trans},
	}
	layer1 := [][]layout.Action{
		{layout.KC(keycode.F1), layout.KC(keycode.F2), layout.KC(keycode.F3), layout.KC(keycode.F4)},
		{cut, copyAction, layout.NoOp, layout.NoOp},
		{layout.Trans, layout.Trans, layout.Trans, layout.Trans},
		{layout.Trans, layout.DefaultLayerAction(0), layout.Trans, layout.Trans},
	}
	return layout.NewBoard(4, 4, [][][]layout.Action{layer0, layer1})
}

func main() {
	cfg, err := benchconfig.Load()
	if err != nil {
		log.Fatalf("[benchtop] config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := bench.New()
	scanner := matrix.New(m, 4, 4, nil)
	debouncer := debounce.New(5, 4, 4)
	state := layout.NewState(demoBoard(), layout.DefaultTapHoldTimeout)

	sinkMgr := hidsink.NewManager("", func(st hidsink.State) {
		tray.SetState(st)
		log.Printf("[benchtop] accessory: %s", st)
	})

	controller := firmware.New(scanner, debouncer, state, sinkMgr)

	hkMgrs := make([]*hotkey.Manager, 0, len(cfg.GetBindings()))
	for _, binding := range cfg.GetBindings() {
		b := binding
		hk := hotkey.NewManager(
			func() { m.Press(b.Row, b.Col) },
			func() { m.Release(b.Row, b.Col) },
		)
		hkMgrs = append(hkMgrs, hk)
	}

	srv := server.New(controller, sinkMgr, version)

	tray.Run(tray.RunOpts{
		Version:          version,
		AutoStartEnabled: cfg.GetAutoStart(),

		OnReady: func() {
			go sinkMgr.Run(ctx)
			go controller.Run(ctx, time.Millisecond)

			for i, hk := range hkMgrs {
				b := cfg.GetBindings()[i]
				if err := hk.Register(b.Modifiers, b.Key); err != nil {
					log.Printf("[benchtop] hotkey register failed for %s: %v", b.String(), err)
					continue
				}
				log.Printf("[benchtop] hotkey bound: %s", b.String())
			}

			if _, err := srv.Start(); err != nil {
				log.Printf("[benchtop] status server: %v", err)
			}

			go func() {
				ticker := time.NewTicker(500 * time.Millisecond)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						tray.SetLayer(controller.EffectiveLayer())
					}
				}
			}()

			log.Printf("[benchtop] ready (version %s)", version)
		},

		OnAutoStart: func(enabled bool) {
			if err := cfg.SetAutoStart(enabled); err != nil {
				log.Printf("[benchtop] save config: %v", err)
			}
		},

		OnQuit: func() {
			cancel()
			for _, hk := range hkMgrs {
				hk.Unregister()
			}
			sinkMgr.Close()
			srv.Stop()
		},
	})
}
