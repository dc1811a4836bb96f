package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
)

// Settings holds deployment-level configuration for the inbox core
type Settings struct {
	DBPath          string `toml:"db_path"`
	DefaultLanguage string `toml:"default_language"`
}

// DefaultSettings returns the settings used when no config file exists
func DefaultSettings() Settings {
	return Settings{
		DBPath:          "socialops.db",
		DefaultLanguage: "en",
	}
}

// LoadFile reads settings from a TOML file. A missing file yields defaults.
func LoadFile(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, err
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return settings, nil
}

// SaveFile writes settings to a TOML file
func SaveFile(path string, settings Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads settings from the default config location
func Load() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return DefaultSettings(), err
	}
	return LoadFile(path)
}

// ChangeHandler is called with the freshly loaded settings after a reload
type ChangeHandler func(Settings)

// Manager loads settings and watches the config file for changes, reloading
// with debouncing so editors that write in multiple steps trigger one reload
type Manager struct {
	path    string
	watcher *fsnotify.Watcher

	mu       sync.RWMutex
	settings Settings
	handler  ChangeHandler

	debounceMu    sync.Mutex
	debounceTimer *time.Timer
	stopChan      chan struct{}
}

// NewManager loads settings from path and starts watching its directory
func NewManager(path string) (*Manager, error) {
	settings, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	m := &Manager{
		path:     path,
		watcher:  watcher,
		settings: settings,
		stopChan: make(chan struct{}),
	}
	go m.watchLoop()

	log.Printf("[Config] Watching file: %s", path)
	return m, nil
}

// Settings returns the current settings snapshot
func (m *Manager) Settings() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// OnChange sets the handler called after the settings file is reloaded
func (m *Manager) OnChange(handler ChangeHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = handler
}

// Stop stops the file watcher
func (m *Manager) Stop() {
	close(m.stopChan)
	m.watcher.Close()
}

func (m *Manager) watchLoop() {
	for {
		select {
		case <-m.stopChan:
			return
		case ev, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(m.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				m.scheduleReload()
			}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[Config] Watcher error: %v", err)
		}
	}
}

func (m *Manager) scheduleReload() {
	m.debounceMu.Lock()
	defer m.debounceMu.Unlock()

	if m.debounceTimer != nil {
		m.debounceTimer.Stop()
	}
	m.debounceTimer = time.AfterFunc(100*time.Millisecond, m.reload)
}

func (m *Manager) reload() {
	settings, err := LoadFile(m.path)
	if err != nil {
		log.Printf("[Config] Failed to reload: %v", err)
		return
	}

	m.mu.Lock()
	m.settings = settings
	handler := m.handler
	m.mu.Unlock()

	log.Printf("[Config] Settings reloaded")
	if handler != nil {
		handler(settings)
	}
}
