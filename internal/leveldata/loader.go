package leveldata

import (
	"encoding/json"
	"fmt"

	"github.com/antares-engine/antares/internal/engine"
)

// Load parses a Level from JSON bytes and validates its format version
// and internal references before anything touches the engine.
func Load(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("leveldata: parse level: %w", err)
	}

	fv, err := ParseFormatVersion(lvl.FormatVersion)
	if err != nil {
		return nil, fmt.Errorf("leveldata: %q: %w", lvl.Name, err)
	}
	if !fv.Supported() {
		return nil, fmt.Errorf("leveldata: %q: format version %s not supported (want %s)", lvl.Name, fv, ">=1.0.0 <2.0.0")
	}

	byName := map[string]int{}
	for i, b := range lvl.BaseObjects {
		byName[b.Name] = i
	}
	for _, initial := range lvl.Initials {
		if _, ok := byName[initial.BaseObjectName]; !ok {
			return nil, fmt.Errorf("leveldata: %q: initial object references unknown base type %q", lvl.Name, initial.BaseObjectName)
		}
	}
	for _, c := range lvl.Conditions {
		if _, ok := conditionKindByName[c.Kind]; !ok {
			return nil, fmt.Errorf("leveldata: %q: unknown condition kind %q", lvl.Name, c.Kind)
		}
	}

	return &lvl, nil
}

// Build materializes a Level into a running engine.Game: the BaseObject
// table, arena-placed initial objects, admirals, and scripted conditions.
func Build(lvl *Level) (*engine.Game, error) {
	bases := make([]engine.BaseObject, len(lvl.BaseObjects))
	nameToIndex := map[string]int32{}
	for i, b := range lvl.BaseObjects {
		bases[i] = engine.BaseObject{
			Name:        b.Name,
			Attributes:  engine.Attributes(b.Attributes),
			Health:      engine.FixedFromFloat(b.Health),
			Mass:        engine.FixedFromFloat(b.Mass),
			MaxVelocity: engine.FixedFromFloat(b.MaxVelocity),
			Thrust:      engine.FixedFromFloat(b.Thrust),
			PixRadius:   engine.FixedFromFloat(b.PixRadius),
			Rotation: engine.RotationSpec{
				TurnRate:    engine.FixedFromFloat(b.TurnRate),
				MaxVelocity: engine.FixedFromFloat(b.MaxVelocity),
			},
			Energy:               engine.FixedFromFloat(b.Energy),
			WarpSpeed:            engine.FixedFromFloat(b.WarpSpeed),
			WarpOutDistance:      engine.FixedFromFloat(b.WarpOutDistance),
			ArriveActionDistance: engine.FixedFromFloat(b.ArriveActionDistance),
			EngageRange:          engine.FixedFromFloat(b.EngageRange),
			Price:                engine.FixedFromFloat(b.Price),
			BuildTime:            b.BuildTime,
		}
		nameToIndex[b.Name] = int32(i)
	}

	admirals := make([]*engine.Admiral, len(lvl.Admirals))
	for i, a := range lvl.Admirals {
		admirals[i] = engine.NewAdmiral(a.Index, engine.AdmiralAttributes(a.Attributes))
		admirals[i].Hue = a.Hue
	}

	var conditions []engine.ScriptedCondition
	for _, c := range lvl.Conditions {
		op, ok := conditionOpByName[c.Op]
		if !ok {
			op = engine.OpGE
		}
		conditions = append(conditions, engine.ScriptedCondition{
			Conditions: []engine.Condition{{
				Kind:             conditionKindByName[c.Kind],
				Op:               op,
				InitiallyEnabled: true,
				Value:            c.Value,
				ValueFixed:       engine.FixedFromFloat(c.ValueFixed),
				ValueBool:        c.ValueBool,
			}},
			RepeatOK: c.RepeatOK,
		})
	}

	g := engine.NewGame(lvl.ArenaCapacity, bases, admirals, conditions, lvl.RandomSeed)

	for _, init := range lvl.Initials {
		baseIdx := nameToIndex[init.BaseObjectName]
		pos := engine.FixedPoint{H: engine.FixedFromFloat(init.PositionH), V: engine.FixedFromFloat(init.PositionV)}
		seed := engine.NewRandomSeed(lvl.RandomSeed).Sub(baseIdx)
		h := g.Arena.Create(baseIdx, pos, init.Owner, seed)
		if !h.IsSet() {
			return nil, fmt.Errorf("leveldata: %q: arena capacity %d exceeded placing initial objects", lvl.Name, lvl.ArenaCapacity)
		}
	}

	return g, nil
}
