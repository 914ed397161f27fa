package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/danmaku/defs"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

// ErrInvalidDef marks a definition that parsed but fails validation: an
// unknown reference, a bad enum value, an empty phase list.
var ErrInvalidDef = errors.New("content: invalid definition")

// Load parses all content into a fresh registry set.
func Load(log logrus.FieldLogger) (*script.Registries, error) {
	regs := script.NewRegistries()
	if err := LoadInto(regs, log); err != nil {
		return nil, err
	}
	return regs, nil
}

// LoadInto (re)loads all content into regs, replacing existing bindings, so
// a hot reload can rebind content under the registries the running systems
// already hold.
func LoadInto(regs *script.Registries, log logrus.FieldLogger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}

	var archetypes map[string]defs.BulletArchetype
	if err := loadYAML("archetypes.yaml", &archetypes); err != nil {
		return err
	}
	for key, def := range archetypes {
		regs.Archetypes.Replace(key, def)
	}

	var characters map[string]defs.CharacterDef
	if err := loadYAML("characters.yaml", &characters); err != nil {
		return err
	}
	for key, def := range characters {
		switch def.Options.Mode {
		case "", "fixed", "homing":
		default:
			return fmt.Errorf("%w: character %q has unknown option mode %q", ErrInvalidDef, key, def.Options.Mode)
		}
		regs.Characters.Replace(key, def)
	}

	var paths map[string]defs.PathDef
	if err := loadYAML("paths.yaml", &paths); err != nil {
		return err
	}
	for key, def := range paths {
		if len(def.Points) == 0 {
			return fmt.Errorf("%w: path %q has no points", ErrInvalidDef, key)
		}
		regs.Paths.Replace(key, def)
	}

	if err := loadScripts(regs, log); err != nil {
		return err
	}
	registerBehaviors(regs)

	var enemies map[string]defs.EnemyDef
	if err := loadYAML("enemies.yaml", &enemies); err != nil {
		return err
	}
	for key, def := range enemies {
		if def.HP <= 0 {
			return fmt.Errorf("%w: enemy %q has non-positive hp", ErrInvalidDef, key)
		}
		if def.Behavior != "" && !regs.Behaviors.Has(def.Behavior) {
			return fmt.Errorf("%w: enemy %q references unknown behavior %q", ErrInvalidDef, key, def.Behavior)
		}
		regs.Enemies.Replace(key, enemyFactory(key, def))
	}

	var bosses map[string]defs.BossDef
	if err := loadYAML("bosses.yaml", &bosses); err != nil {
		return err
	}
	for key, def := range bosses {
		phases, err := buildPhases(key, def.Phases, regs)
		if err != nil {
			return err
		}
		regs.Bosses.Replace(key, bossFactory(key, def, phases))
	}

	registerStages(regs, enemies)

	log.WithFields(logrus.Fields{
		"archetypes": regs.Archetypes.Len(),
		"characters": regs.Characters.Len(),
		"enemies":    regs.Enemies.Len(),
		"bosses":     regs.Bosses.Len(),
		"behaviors":  regs.Behaviors.Len(),
		"paths":      regs.Paths.Len(),
	}).Info("content loaded")
	return nil
}

func loadYAML(name string, out any) error {
	data, err := readData(name)
	if err != nil {
		return fmt.Errorf("content: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("content: unmarshal %s: %w", name, err)
	}
	return nil
}

// loadScripts compiles every tengo behavior, embedded plus any extras in
// the override directory, keyed by file base name.
func loadScripts(regs *script.Registries, log logrus.FieldLogger) error {
	names := map[string]bool{}
	embedded, err := fs.Glob(scriptsFS, "scripts/*.tengo")
	if err != nil {
		return err
	}
	for _, path := range embedded {
		names[filepath.Base(path)] = true
	}
	if dir != "" {
		if entries, err := os.ReadDir(filepath.Join(dir, "scripts")); err == nil {
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".tengo") {
					names[entry.Name()] = true
				}
			}
		}
	}

	for name := range names {
		src, err := readScript(name)
		if err != nil {
			return fmt.Errorf("content: read script %s: %w", name, err)
		}
		key := strings.TrimSuffix(name, ".tengo")
		behavior, err := script.CompileTengo(key, src)
		if err != nil {
			return err
		}
		regs.Behaviors.Replace(key, behavior.Factory())
		log.WithField("behavior", key).Debug("compiled behavior script")
	}
	return nil
}

func enemyFactory(kind string, def defs.EnemyDef) script.EnemyFactory {
	return func(w *ecs.World, x, y float64) ecs.Entity {
		e := w.CreateEntity()
		ecs.Add(w, e, component.TransformKind, &component.Transform{X: x, Y: y})
		ecs.Add(w, e, component.VelocityKind, &component.Velocity{})
		ecs.Add(w, e, component.EnemyTagKind, &component.EnemyTag{
			Kind:   kind,
			Sprite: def.Sprite,
			Score:  def.Score,
		})
		ecs.Add(w, e, component.HealthKind, &component.Health{Current: def.HP, Max: def.HP})
		ecs.Add(w, e, component.ColliderKind, &component.Collider{
			Radius: def.Radius,
			Layer:  component.LayerEnemy,
		})
		ecs.Add(w, e, component.DropConfigKind, &component.DropConfig{
			Power:   def.Drops.Power,
			Point:   def.Drops.Point,
			Scatter: def.Drops.Scatter,
		})
		return e
	}
}

func bossFactory(key string, def defs.BossDef, phases []component.Phase) script.BossFactory {
	return func(w *ecs.World, x, y float64) ecs.Entity {
		e := w.CreateEntity()
		ecs.Add(w, e, component.TransformKind, &component.Transform{X: x, Y: y})
		ecs.Add(w, e, component.VelocityKind, &component.Velocity{})
		ecs.Add(w, e, component.EnemyTagKind, &component.EnemyTag{
			Kind:   key,
			Sprite: def.Sprite,
			Score:  def.Score,
		})
		ecs.Add(w, e, component.HealthKind, &component.Health{})
		ecs.Add(w, e, component.ColliderKind, &component.Collider{
			Radius: def.Radius,
			Layer:  component.LayerEnemy,
		})
		ecs.Add(w, e, component.BossStateKind, &component.BossState{Phases: phases})
		return e
	}
}

func buildPhases(boss string, phaseDefs []defs.PhaseDef, regs *script.Registries) ([]component.Phase, error) {
	if len(phaseDefs) == 0 {
		return nil, fmt.Errorf("%w: boss %q has no phases", ErrInvalidDef, boss)
	}
	phases := make([]component.Phase, 0, len(phaseDefs))
	for i, pd := range phaseDefs {
		typ, err := parsePhaseType(pd.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: boss %q phase %d: %v", ErrInvalidDef, boss, i, err)
		}
		policy, err := parseBombPolicy(pd.Bomb)
		if err != nil {
			return nil, fmt.Errorf("%w: boss %q phase %d: %v", ErrInvalidDef, boss, i, err)
		}
		if typ == component.PhaseSurvival && pd.DurationFrames <= 0 {
			return nil, fmt.Errorf("%w: boss %q phase %d: survival phase needs a duration", ErrInvalidDef, boss, i)
		}
		if typ != component.PhaseSurvival && pd.HP <= 0 && pd.DurationFrames <= 0 {
			return nil, fmt.Errorf("%w: boss %q phase %d: needs hp or a duration", ErrInvalidDef, boss, i)
		}
		if pd.Behavior != "" && !regs.Behaviors.Has(pd.Behavior) {
			return nil, fmt.Errorf("%w: boss %q phase %d references unknown behavior %q", ErrInvalidDef, boss, i, pd.Behavior)
		}
		phases = append(phases, component.Phase{
			Type:           typ,
			Name:           pd.Name,
			HP:             pd.HP,
			DurationFrames: pd.DurationFrames,
			Policy:         policy,
			Reward:         pd.Reward,
			Behavior:       pd.Behavior,
		})
	}
	return phases, nil
}

func parsePhaseType(s string) (component.PhaseType, error) {
	switch s {
	case "nonspell", "":
		return component.PhaseNonSpell, nil
	case "spellcard":
		return component.PhaseSpellCard, nil
	case "survival":
		return component.PhaseSurvival, nil
	}
	return 0, fmt.Errorf("unknown phase type %q", s)
}

func parseBombPolicy(def defs.BombPolicyDef) (component.BombPolicy, error) {
	switch def.Policy {
	case "lethal", "":
		return component.BombPolicy{Kind: component.BombLethal}, nil
	case "capped":
		if def.CapPerFrame <= 0 {
			return component.BombPolicy{}, fmt.Errorf("capped bomb policy needs cap_per_frame")
		}
		return component.BombPolicy{Kind: component.BombCapped, CapPerFrame: def.CapPerFrame}, nil
	case "immune":
		return component.BombPolicy{Kind: component.BombImmune}, nil
	}
	return component.BombPolicy{}, fmt.Errorf("unknown bomb policy %q", def.Policy)
}
