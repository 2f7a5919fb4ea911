package clock

import (
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

var locations = struct {
	sync.Mutex
	byName map[string]*time.Location
}{byName: make(map[string]*time.Location)}

// Resolve loads the named IANA zone, caching the result.
func Resolve(zoneName string) (*time.Location, error) {
	name := strings.TrimSpace(zoneName)
	if name == "" {
		return nil, &FormatError{Zone: zoneName, Err: errEmptyZone}
	}

	locations.Lock()
	defer locations.Unlock()

	if loc, ok := locations.byName[name]; ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &FormatError{Zone: zoneName, Err: err}
	}
	locations.byName[name] = loc
	return loc, nil
}
