package hidsink

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gokeyb/gokeyb/keycode"
)

var errNotConnected = errors.New("hidsink: no accessory connected")

// State is the lifecycle of the USB connection to the host phone.
type State int

const (
	Disconnected State = iota
	Connected
)

func (s State) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

const pollInterval = 2 * time.Second

// Manager owns connect/reconnect polling for a Device and implements
// firmware.Sink by forwarding to whichever Device is currently attached.
type Manager struct {
	mu       sync.Mutex
	dev      *Device
	state    State
	onChange func(State)
	serial   string
}

// NewManager returns a Manager that will look for an AOA2 accessory
// matching serial (empty matches the first one found). onChange, if
// non-nil, is invoked on every state transition.
func NewManager(serial string, onChange func(State)) *Manager {
	return &Manager{state: Disconnected, onChange: onChange, serial: serial}
}

// State reports the current connection state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Send implements firmware.Sink. It fails fast if nothing is attached,
// so Controller.Tick's no-op log path doesn't block on a ticker.
func (m *Manager) Send(report keycode.Report) error {
	m.mu.Lock()
	dev := m.dev
	m.mu.Unlock()

	if dev == nil {
		return errNotConnected
	}
	if err := dev.Send(report); err != nil {
		m.handleError(err)
		return err
	}
	return nil
}

// Run polls for a host every pollInterval until ctx is cancelled:
// reconnecting when disconnected, health-checking otherwise.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	m.tryConnect()

	for {
		select {
		case <-ctx.Done():
			m.Close()
			return
		case <-ticker.C:
			m.mu.Lock()
			state := m.state
			m.mu.Unlock()

			if state == Disconnected {
				m.tryConnect()
			} else {
				m.healthCheck()
			}
		}
	}
}

func (m *Manager) tryConnect() {
	dev, err := Open(m.serial)
	if err != nil {
		return // host not present yet, will retry on next poll
	}

	m.mu.Lock()
	m.dev = dev
	m.state = Connected
	m.mu.Unlock()

	log.Println("[hidsink] accessory connected")
	if m.onChange != nil {
		m.onChange(Connected)
	}
}

func (m *Manager) healthCheck() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dev == nil {
		return
	}
	if err := m.dev.Ping(); err != nil {
		log.Printf("[hidsink] accessory disconnected: %v", err)
		m.dev.Close()
		m.dev = nil
		m.state = Disconnected
		if m.onChange != nil {
			m.onChange(Disconnected)
		}
	}
}

func (m *Manager) handleError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	log.Printf("[hidsink] USB error: %v — will reconnect", err)
	if m.dev != nil {
		m.dev.Close()
		m.dev = nil
	}
	m.state = Disconnected
	if m.onChange != nil {
		m.onChange(Disconnected)
	}
}

// Close shuts down the current connection, if any.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dev != nil {
		m.dev.Close()
		m.dev = nil
	}
	m.state = Disconnected
}
