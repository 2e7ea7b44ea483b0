package leveldata

import "github.com/antares-engine/antares/internal/engine"

// Level is the JSON-serializable contents of one level: its format
// version, the BaseObject table, the initial objects to spawn, the
// admirals in play, and the scripted win/lose conditions. This is the
// only thing the engine ever loads from disk — everything in
// internal/engine itself is decoded data, never a decoder.
type Level struct {
	FormatVersion string           `json:"formatVersion"`
	Name          string           `json:"name"`
	ArenaCapacity int32            `json:"arenaCapacity"`
	RandomSeed    uint32           `json:"randomSeed"`
	BaseObjects   []BaseObjectDef  `json:"baseObjects"`
	Initials      []InitialDef     `json:"initials"`
	Admirals      []AdmiralDef     `json:"admirals"`
	Conditions    []ConditionDef   `json:"conditions"`
}

// BaseObjectDef is the JSON shape of engine.BaseObject, decoded field by
// field and validated before being converted, rather than via a
// generated tag-driven mapping.
type BaseObjectDef struct {
	Name        string   `json:"name"`
	Attributes  uint64   `json:"attributes"`
	Health      float64  `json:"health"`
	Mass        float64  `json:"mass"`
	MaxVelocity float64  `json:"maxVelocity"`
	Thrust      float64  `json:"thrust"`
	TurnRate    float64  `json:"turnRate"`
	PixRadius   float64  `json:"pixRadius"`

	Energy               float64 `json:"energy,omitempty"`
	WarpSpeed            float64 `json:"warpSpeed,omitempty"`
	WarpOutDistance      float64 `json:"warpOutDistance,omitempty"`
	ArriveActionDistance float64 `json:"arriveActionDistance,omitempty"`
	EngageRange          float64 `json:"engageRange,omitempty"`
	Price                float64 `json:"price,omitempty"`
	BuildTime            int32   `json:"buildTime,omitempty"`
}

// InitialDef places one instance of a base object at level start.
type InitialDef struct {
	BaseObjectName string  `json:"baseObjectName"`
	PositionH      float64 `json:"positionH"`
	PositionV      float64 `json:"positionV"`
	Owner          int32   `json:"owner"`
	Name           string  `json:"name,omitempty"`
}

// AdmiralDef describes one admiral slot.
type AdmiralDef struct {
	Index      int32  `json:"index"`
	Attributes uint8  `json:"attributes"`
	Hue        uint8  `json:"hue"`
}

// ConditionDef is a single scripted win/lose entry. Build turns each
// entry into its own engine.ScriptedCondition holding exactly one
// Condition and no actions, so listing several entries does not AND them
// together; SubjectRef and ObjectRef are not resolved into handles.
type ConditionDef struct {
	// Kinds/fields intentionally mirror engine.Condition's shape closely
	// enough that Build can translate field-by-field without a generic
	// reflection-based mapper.
	Kind       string  `json:"kind"`
	Op         string  `json:"op,omitempty"`
	SubjectRef string  `json:"subjectRef,omitempty"`
	ObjectRef  string  `json:"objectRef,omitempty"`
	Value      int32   `json:"value,omitempty"`
	ValueFixed float64 `json:"valueFixed,omitempty"`
	ValueBool  bool    `json:"valueBool,omitempty"`
	RepeatOK   bool    `json:"repeatOk,omitempty"`
}

// conditionOpByName maps a level file's string comparison op to the
// engine's ComparisonOp, keeping JSON human-readable.
var conditionOpByName = map[string]engine.ComparisonOp{
	"eq": engine.OpEQ,
	"ne": engine.OpNE,
	"lt": engine.OpLT,
	"gt": engine.OpGT,
	"le": engine.OpLE,
	"ge": engine.OpGE,
}

// conditionKindByName maps a level file's string condition kind to the
// engine's ConditionKind, so JSON stays human-readable instead of a raw
// integer enum.
var conditionKindByName = map[string]engine.ConditionKind{
	"autopilot": engine.ConditionAutopilot,
	"building":  engine.ConditionBuilding,
	"computer":  engine.ConditionComputer,
	"counter":   engine.ConditionCounter,
	"destroyed": engine.ConditionDestroyed,
	"distance":  engine.ConditionDistance,
	"false":     engine.ConditionFalse,
	"health":    engine.ConditionHealth,
	"message":   engine.ConditionMessage,
	"ordered":   engine.ConditionOrdered,
	"owner":     engine.ConditionOwner,
	"ships":     engine.ConditionShips,
	"speed":     engine.ConditionSpeed,
	"subject":   engine.ConditionSubject,
	"time":      engine.ConditionTime,
	"zoom":      engine.ConditionZoom,
}
