//go:build profile

package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const Enabled = true

// Init allocates the scope ring. Scopes started before Init are dropped.
// Example: profiler.Init(1 << 16) // ~64K scope samples
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	ring = scopeRing{evs: make([]scopeEvent, capacity)}
	names, index = nil, map[string]int{}
}

// Start opens a scope and returns the func that closes it. The profiler is
// meant for the host thread only.
func Start(name string) func() {
	if ring.evs == nil {
		return func() {}
	}
	id := intern(name)
	at := time.Now().UnixNano()
	ring.push(scopeEvent{at: at, frame: id, open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < at {
			end = at
		}
		ring.push(scopeEvent{at: end, frame: id})
	}
}

// Dump writes the captured scopes as a speedscope evented profile into dir
// and returns the file path.
func Dump(dir string) (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", errors.New("profiler: no events to dump")
	}
	path := filepath.Join(dir, "lumen.speedscope.json")
	if err := writeSpeedscope(evs, path); err != nil {
		return "", fmt.Errorf("profiler: %w", err)
	}
	return path, nil
}

type scopeEvent struct {
	at    int64
	frame int
	open  bool
}

// scopeRing keeps the most recent events in write order.
type scopeRing struct {
	evs   []scopeEvent
	write uint64
}

func (r *scopeRing) push(e scopeEvent) {
	r.evs[r.write%uint64(len(r.evs))] = e
	r.write++
}

func (r *scopeRing) snapshot() []scopeEvent {
	if r.write == 0 {
		return nil
	}
	n := uint64(len(r.evs))
	start := uint64(0)
	if r.write > n {
		start = r.write - n
	}
	out := make([]scopeEvent, 0, r.write-start)
	for k := start; k < r.write; k++ {
		out = append(out, r.evs[k%n])
	}
	return out
}

var (
	ring  scopeRing
	names []string
	index = map[string]int{}
)

func intern(name string) int {
	if id, ok := index[name]; ok {
		return id
	}
	id := len(names)
	index[name] = id
	names = append(names, name)
	return id
}

// speedscope file format, evented profile.
type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

func writeSpeedscope(evs []scopeEvent, path string) error {
	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}

	base := evs[0].at
	out := make([]ssEvent, 0, len(evs))
	stack := make([]int, 0, 32)
	last := int64(0)
	for _, e := range evs {
		at := max((e.at-base)/1000, last)
		if e.open {
			stack = append(stack, e.frame)
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.frame})
		} else {
			// The ring may have cut the matching open.
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.frame})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "lumen frames",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "lumen-profiler",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
