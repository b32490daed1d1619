package system

import (
	"github.com/d5/tengo/v2"
	"go.uber.org/zap"

	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
)

// AIBehaviorSystem runs the tengo behavior script of every scripted entity
// once per frame. Scripts see their own and the player's position plus the
// physics contact flags, and may write back a facing decision, a velocity,
// and an opaque state string. Scripts are compiled once per distinct source.
type AIBehaviorSystem struct {
	player *PlayerHandle
	log    *zap.Logger

	compiled map[string]*tengo.Compiled
	broken   map[string]bool
}

func NewAIBehaviorSystem(player *PlayerHandle, log *zap.Logger) *AIBehaviorSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &AIBehaviorSystem{
		player:   player,
		log:      log,
		compiled: make(map[string]*tengo.Compiled),
		broken:   make(map[string]bool),
	}
}

func (s *AIBehaviorSystem) Update(w *ecs.World, dt float64) {
	playerPos, ok := ecs.Get(w, s.player.Entity, component.WorldPositionComponent)
	if !ok {
		return
	}

	ecs.ForEach(w, component.BehaviorComponent, func(e ecs.Entity, b *component.Behavior) {
		if b.Script == "" {
			return
		}
		pos, ok := ecs.Get(w, e, component.WorldPositionComponent)
		if !ok {
			return
		}

		compiled := s.compiledFor(b.Script)
		if compiled == nil {
			return
		}

		phys, hasPhys := ecs.Get(w, e, component.PhysicalComponent)
		blockedLeft, blockedRight, onGround := false, false, false
		if hasPhys {
			blockedLeft = phys.BlockedLeft
			blockedRight = phys.BlockedRight
			onGround = phys.OnGround
		}

		_ = compiled.Set("self_x", float64(pos.X))
		_ = compiled.Set("self_y", float64(pos.Y))
		_ = compiled.Set("player_x", float64(playerPos.X))
		_ = compiled.Set("player_y", float64(playerPos.Y))
		_ = compiled.Set("state", b.State)
		_ = compiled.Set("dt", dt)
		_ = compiled.Set("blocked_left", blockedLeft)
		_ = compiled.Set("blocked_right", blockedRight)
		_ = compiled.Set("on_ground", onGround)

		if err := compiled.Run(); err != nil {
			if !s.broken[b.Script] {
				s.broken[b.Script] = true
				s.log.Warn("behavior script failed", zap.String("entity", e.String()), zap.Error(err))
			}
			return
		}

		if v := compiled.Get("state_out"); !v.IsUndefined() {
			b.State = v.String()
		}
		if v := compiled.Get("facing_left"); !v.IsUndefined() {
			b.FacingLeft = v.Bool()
		}
		if hasPhys {
			if v := compiled.Get("vx"); !v.IsUndefined() {
				phys.VelocityX = v.Float()
			}
			if v := compiled.Get("vy"); !v.IsUndefined() {
				phys.VelocityY = v.Float()
			}
		}
	})
}

func (s *AIBehaviorSystem) compiledFor(src string) *tengo.Compiled {
	if c, ok := s.compiled[src]; ok {
		return c
	}
	if s.broken[src] {
		return nil
	}

	script := tengo.NewScript([]byte(src))
	for _, name := range []string{"self_x", "self_y", "player_x", "player_y", "dt"} {
		_ = script.Add(name, 0.0)
	}
	_ = script.Add("state", "")
	for _, name := range []string{"blocked_left", "blocked_right", "on_ground"} {
		_ = script.Add(name, false)
	}

	compiled, err := script.Compile()
	if err != nil {
		s.broken[src] = true
		s.log.Warn("behavior script does not compile", zap.Error(err))
		return nil
	}
	s.compiled[src] = compiled
	return compiled
}
