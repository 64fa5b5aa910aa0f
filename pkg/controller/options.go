package controller

import "github.com/sirupsen/logrus"

// Option configures a Controller.
type Option func(*Controller)

// WithWorld enables collision against the world's obstacles and lets the
// boundary trigger regenerate it. Without a world both are skipped.
func WithWorld(w World) Option {
	return func(c *Controller) {
		c.world = w
	}
}

// WithHUD sets the on-screen control layout used to route touches.
func WithHUD(h HUD) Option {
	return func(c *Controller) {
		c.hud = h
	}
}

// WithSources subscribes the controller to input sources. The subscriptions
// are dropped by Dispose.
func WithSources(sources ...InputSource) Option {
	return func(c *Controller) {
		c.sources = append(c.sources, sources...)
	}
}

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) {
		c.log = log
	}
}
