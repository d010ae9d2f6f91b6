// Package listing holds the pure pieces of the show listings: grouping venues
// into areas and splitting shows into past and upcoming.
package listing

import (
	"time"
	"venueBooker/internal/models"
)

const (
	// DetailLayout is used for the shows on a venue or artist page.
	DetailLayout = "01/02/2006, 15:04"
	// ListLayout is used for the show board.
	ListLayout = "2006-01-02 15:04:05"
)

type Timed interface {
	Starts() time.Time
}

// Partition splits shows by their start time. A show is upcoming only when it
// starts strictly after now; everything else is past. Input order is kept.
func Partition[S Timed](shows []S, now time.Time) (past, upcoming []S) {
	past = make([]S, 0, len(shows))
	upcoming = make([]S, 0, len(shows))

	for _, s := range shows {
		if IsUpcoming(s.Starts(), now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}

	return past, upcoming
}

// IsUpcoming reports whether a show starting at start counts as upcoming at now.
func IsUpcoming(start, now time.Time) bool {
	return start.After(now)
}

type areaKey struct {
	city  string
	state string
}

// GroupByArea groups venue rows by their exact (city, state) pair. Groups
// appear in the order their first venue appears in rows.
func GroupByArea(rows []models.VenueRow) []models.Area {
	areas := make([]models.Area, 0)
	index := make(map[areaKey]int)

	for _, row := range rows {
		key := areaKey{city: row.City, state: row.State}

		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, models.Area{
				City:   row.City,
				State:  row.State,
				Venues: make([]models.VenueSummary, 0, 1),
			})
		}

		areas[i].Venues = append(areas[i].Venues, row.VenueSummary)
	}

	return areas
}

func FormatDetail(t time.Time) string {
	return t.Format(DetailLayout)
}

func FormatList(t time.Time) string {
	return t.Format(ListLayout)
}
