package app

import (
	"fmt"
	"log/slog"

	"pixwin/canvas"
	"pixwin/sprite"
	"pixwin/surface"
)

// Stepper draws one frame.
type Stepper interface {
	Step(s *surface.Surface, c *canvas.Canvas)
}

type stepFunc func(s *surface.Surface, c *canvas.Canvas)

func (f stepFunc) Step(s *surface.Surface, c *canvas.Canvas) { f(s, c) }

type scene struct {
	name  string
	title string
	setup func(s *surface.Surface, cfg Config, log *slog.Logger) (Stepper, error)
}

var scenes = []scene{
	{"basic", "Basic Loop", setupBasic},
	{"square", "Drawing Square", setupSquare},
	{"moving", "Moving Square", setupMoving},
	{"wasd", "Moving Square by WASD", setupWASD},
	{"mouse", "Drawing Square by Mouse", setupMouse},
	{"sprite", "Drawing Sprite", setupSprite},
	{"misc", "Misc Features", setupMisc},
}

// SceneNames lists the available scenes in menu order.
func SceneNames() []string {
	names := make([]string, len(scenes))
	for i, sc := range scenes {
		names[i] = sc.name
	}
	return names
}

func sceneByName(name string) (scene, bool) {
	for _, sc := range scenes {
		if sc.name == name {
			return sc, true
		}
	}
	return scene{}, false
}

func setupBasic(_ *surface.Surface, _ Config, log *slog.Logger) (Stepper, error) {
	return stepFunc(func(s *surface.Surface, _ *canvas.Canvas) {
		log.Debug("frame", "dt", s.DeltaTime())
	}), nil
}

func setupSquare(_ *surface.Surface, cfg Config, _ *slog.Logger) (Stepper, error) {
	return stepFunc(func(_ *surface.Surface, c *canvas.Canvas) {
		c.Square(10, 10, cfg.SquareSize, canvas.Red)
	}), nil
}

type movingSquare struct {
	x, y  float64
	speed float64
	size  int
	keys  *movement
}

func (m *movingSquare) Step(s *surface.Surface, c *canvas.Canvas) {
	s.Buffer().Clear()
	d := s.DeltaTime() * m.speed
	if m.keys == nil {
		m.x += d
	} else {
		if s.Key(m.keys.up) {
			m.y -= d
		}
		if s.Key(m.keys.down) {
			m.y += d
		}
		if s.Key(m.keys.left) {
			m.x -= d
		}
		if s.Key(m.keys.right) {
			m.x += d
		}
	}
	c.Square(int(m.x), int(m.y), m.size, canvas.Red)
}

func setupMoving(_ *surface.Surface, cfg Config, _ *slog.Logger) (Stepper, error) {
	return &movingSquare{y: 10, speed: cfg.Speed, size: cfg.SquareSize}, nil
}

func setupWASD(_ *surface.Surface, cfg Config, _ *slog.Logger) (Stepper, error) {
	mv, err := cfg.Keys.resolve()
	if err != nil {
		return nil, err
	}
	return &movingSquare{speed: cfg.Speed, size: cfg.SquareSize, keys: &mv}, nil
}

func setupMouse(_ *surface.Surface, cfg Config, _ *slog.Logger) (Stepper, error) {
	return stepFunc(func(s *surface.Surface, c *canvas.Canvas) {
		s.Buffer().Clear()
		if s.MouseLeft() {
			c.Square(s.MouseX(), s.MouseY(), cfg.SquareSize, canvas.Red)
		}
	}), nil
}

func setupSprite(_ *surface.Surface, cfg Config, _ *slog.Logger) (Stepper, error) {
	sp, err := sprite.Load(cfg.Sprite)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return stepFunc(func(s *surface.Surface, _ *canvas.Canvas) {
		sp.Blit(s.Buffer(), 0, 0)
	}), nil
}

type misc struct {
	count int
}

func (m *misc) Step(s *surface.Surface, _ *canvas.Canvas) {
	s.SetTitle(fmt.Sprintf("Counter: %d", m.count))
	m.count++
}

func setupMisc(s *surface.Surface, cfg Config, log *slog.Logger) (Stepper, error) {
	if cfg.Icon != "" {
		if err := s.SetIcon(cfg.Icon); err != nil {
			log.Warn("icon not set", "path", cfg.Icon, "err", err)
		}
	}
	s.SetCursorVisible(false)
	return &misc{}, nil
}
