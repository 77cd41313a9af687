package resource

import "fmt"

// DefaultEventBuffer is the subscription buffer used if Config.EventBuffer is 0.
const DefaultEventBuffer = 32

// Config configures a Cache.
type Config struct {
	// Dir is prepended to relative file names of shaders and textures.
	Dir string
	// EventBuffer is the channel capacity of each event subscription.
	EventBuffer int
}

func (cfg Config) normalized() Config {
	if cfg.EventBuffer == 0 {
		cfg.EventBuffer = DefaultEventBuffer
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.EventBuffer < 0 {
		return fmt.Errorf("%w: event buffer %d", ErrInvalidConfig, cfg.EventBuffer)
	}
	return nil
}
