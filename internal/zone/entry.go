// Package zone holds the tracked zone entries and the ordered registry that
// owns them.
package zone

import (
	"fmt"

	"github.com/five82/tzboard/internal/clock"
)

// Entry is one tracked timezone card.
type Entry struct {
	ID         int              `json:"id"`
	Title      string           `json:"title"`
	Zone       string           `json:"tz"`
	TimeFormat clock.TimeFormat `json:"timeformat"`
}

// DefaultTitle is the title given to a freshly added entry.
func DefaultTitle(id int) string {
	return fmt.Sprintf("Timezone - %d", id)
}
