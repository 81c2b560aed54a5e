// Package timezone wraps the host's IANA timezone database: identifier
// validation, the available-identifier list, and the DST metadata reported on
// the settings endpoints.
package timezone

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rosterdesk/shift-planner/backend/internal/domain"
)

// ErrUnknownZone is returned for identifiers the timezone database does not
// resolve. The message is surfaced verbatim to API clients.
var ErrUnknownZone = errors.New("Invalid timezone identifier")

// Directories the time package itself consults on unix hosts.
var zoneDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
}

// Catalog is an immutable read-only table of the host's timezone identifiers.
// The list is built once per process on first use and shared by reference
// across concurrent callers.
type Catalog struct {
	once  sync.Once
	zones []string
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// Available returns the sorted identifier list. The returned slice is shared;
// callers must not mutate it.
func (c *Catalog) Available() []string {
	c.once.Do(c.load)
	return c.zones
}

func (c *Catalog) load() {
	seen := map[string]struct{}{
		"UTC": {},
	}

	for _, dir := range zoneDirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}

		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}

			rel, err := filepath.Rel(dir, path)
			if err != nil || rel == "." {
				return nil
			}

			// identifiers always start with an uppercase letter; everything
			// else (posix/, right/, zone.tab, leap-seconds.list, ...) is
			// database plumbing
			base := filepath.Base(rel)
			if base[0] < 'A' || base[0] > 'Z' {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			name := filepath.ToSlash(rel)
			if _, ok := seen[name]; ok {
				return nil
			}
			if _, err := time.LoadLocation(name); err != nil {
				return nil
			}
			seen[name] = struct{}{}

			return nil
		})
	}

	zones := make([]string, 0, len(seen))
	for name := range seen {
		zones = append(zones, name)
	}
	sort.Strings(zones)

	c.zones = zones
}

// Validate resolves the identifier against the timezone database. Empty
// strings and the process-local pseudo-zone are rejected along with anything
// the database does not know.
func (c *Catalog) Validate(id string) error {
	if strings.TrimSpace(id) == "" || id == "Local" {
		return fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}
	if _, err := time.LoadLocation(id); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}

	return nil
}

// Info reports the zone's state at the given instant. The standard offset is
// taken as the smaller of the mid-January and mid-July offsets, which holds
// for DST rules in both hemispheres.
func (c *Catalog) Info(id string, now time.Time) (*domain.TimezoneInfo, error) {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}

	local := now.In(loc)
	_, current := local.Zone()

	year := local.Year()
	_, january := time.Date(year, time.January, 15, 12, 0, 0, 0, loc).Zone()
	_, july := time.Date(year, time.July, 15, 12, 0, 0, 0, loc).Zone()

	standard := january
	if july < standard {
		standard = july
	}

	hasDST := january != july

	return &domain.TimezoneInfo{
		Timezone:               id,
		CurrentLocalTime:       local.Format("2006-01-02T15:04:05"),
		CurrentUTCOffset:       offsetOf(current),
		StandardUTCOffset:      offsetOf(standard),
		HasDayLightSaving:      hasDST,
		IsDayLightSavingActive: hasDST && current != standard,
	}, nil
}

func offsetOf(seconds int) domain.TimezoneOffset {
	return domain.TimezoneOffset{
		Seconds:      seconds,
		Milliseconds: seconds * 1000,
	}
}
