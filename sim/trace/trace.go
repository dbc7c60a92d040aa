package trace

// Level controls how much a run records.
type Level string

const (
	// LevelNone disables recording (zero overhead).
	LevelNone Level = "none"
	// LevelPath captures the inventory level path and order lifecycle.
	LevelPath Level = "path"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone: true,
	LevelPath: true,
	"":        true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is recognized.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// Recorder collects level and order records during one replication.
// A nil *Recorder is valid and records nothing, so the engine never
// branches on whether tracing is enabled.
type Recorder struct {
	Levels []LevelRecord
	Orders []OrderRecord
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Levels: make([]LevelRecord, 0),
		Orders: make([]OrderRecord, 0),
	}
}

// RecordLevel appends the level holding from clock onwards.
func (r *Recorder) RecordLevel(clock float64, level int) {
	if r == nil {
		return
	}
	r.Levels = append(r.Levels, LevelRecord{Clock: clock, Level: level})
}

// RecordOrderPlaced opens an order record.
func (r *Recorder) RecordOrderPlaced(clock float64, quantity int) {
	if r == nil {
		return
	}
	r.Orders = append(r.Orders, OrderRecord{PlacedAt: clock, Quantity: quantity})
}

// RecordOrderArrived completes the most recent order record. The model
// keeps at most one order in flight, so the last record is the open one.
func (r *Recorder) RecordOrderArrived(clock float64) {
	if r == nil || len(r.Orders) == 0 {
		return
	}
	last := &r.Orders[len(r.Orders)-1]
	if last.Arrived {
		return
	}
	last.ArrivedAt = clock
	last.Arrived = true
}
