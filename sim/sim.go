// Package sim is the simulation driver: it wires the systems in their
// fixed order and steps the world one tick per call, independent of any
// rendering. Frontends feed it decoded input and read back snapshots.
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/ecs/system"
	"github.com/milk9111/danmaku/script"
)

// Config selects the run. Zero-value bounds get the standard playfield.
type Config struct {
	Bounds    system.Bounds
	Character string
	Stage     string
	Seed      int64
	Log       logrus.FieldLogger
}

// DefaultBounds is the classic vertical playfield.
var DefaultBounds = system.Bounds{
	Width:        384,
	Height:       448,
	Margin:       96,
	CollectLineY: 112,
}

// Sim owns one world and its scheduler.
type Sim struct {
	world     *ecs.World
	runner    *script.Runner
	regs      *script.Registries
	scheduler *ecs.Scheduler
	bounds    system.Bounds
	player    ecs.Entity
	log       logrus.FieldLogger
}

// New builds a simulation over loaded content, spawns the player, and
// starts the stage script.
func New(regs *script.Registries, cfg Config) (*Sim, error) {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	bounds := cfg.Bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		bounds = DefaultBounds
	}

	world := ecs.NewWorld()
	runner := script.NewRunner(regs, log)

	s := &Sim{
		world:  world,
		runner: runner,
		regs:   regs,
		bounds: bounds,
		log:    log,
	}
	s.scheduler = ecs.NewScheduler(
		system.NewInputSystem(regs),
		system.NewPlayerShootSystem(regs),
		system.NewTaskSystem(runner),
		system.NewPathSystem(regs),
		system.NewMotionSystem(),
		system.NewHomingSystem(),
		system.NewMovementSystem(bounds),
		system.NewCollisionSystem(),
		system.NewBossPhaseSystem(runner, log),
		system.NewDamageSystem(),
		system.NewPlayerHitSystem(regs, bounds, log),
		system.NewGrazeSystem(),
		system.NewPickupSystem(bounds),
		system.NewDeathSystem(cfg.Seed),
		system.NewLifetimeSystem(bounds),
	)

	if err := s.spawnPlayer(cfg.Character); err != nil {
		return nil, err
	}
	if cfg.Stage != "" {
		if err := s.StartStage(cfg.Stage); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Sim) spawnPlayer(character string) error {
	char, err := s.regs.Characters.Resolve(character)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	e := s.world.CreateEntity()
	ecs.Add(s.world, e, component.PlayerTagKind, &component.PlayerTag{})
	ecs.Add(s.world, e, component.InputStateKind, &component.InputState{})
	ecs.Add(s.world, e, component.TransformKind, &component.Transform{
		X: s.bounds.Width / 2,
		Y: s.bounds.Height - 64,
	})
	ecs.Add(s.world, e, component.VelocityKind, &component.Velocity{})
	ecs.Add(s.world, e, component.ColliderKind, &component.Collider{
		Radius:      char.Radius,
		Layer:       component.LayerPlayer,
		Mask:        component.LayerItem,
		GrazeRadius: char.GrazeRange,
	})
	ecs.Add(s.world, e, component.PlayerStatsKind, &component.PlayerStats{
		Lives:     char.Lives,
		Bombs:     char.Bombs,
		MaxEnergy: 100,
		Character: character,
	})
	s.player = e
	return nil
}

// StartStage starts a stage script as an ownerless task.
func (s *Sim) StartStage(stage string) error {
	factory, err := s.regs.Behaviors.Resolve(stage)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	s.runner.Start(s.world, 0, stage, factory())
	s.log.WithField("stage", stage).Info("stage start")
	return nil
}

// Advance runs one fixed tick with the given input.
func (s *Sim) Advance(input component.InputState) {
	s.world.AdvanceTick()
	if in, ok := ecs.Get(s.world, s.player, component.InputStateKind); ok {
		*in = input
	}
	s.scheduler.Update(s.world)
}

// World exposes the underlying store, mostly for rendering and tests.
func (s *Sim) World() *ecs.World {
	return s.world
}

// Player returns the player entity.
func (s *Sim) Player() ecs.Entity {
	return s.player
}

// Bounds returns the playfield rectangle in use.
func (s *Sim) Bounds() system.Bounds {
	return s.bounds
}

// Tasks returns the number of live script tasks.
func (s *Sim) Tasks() int {
	return s.runner.Active()
}
