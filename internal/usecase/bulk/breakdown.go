package bulk

import "github.com/johnquangdev/event-planner/internal/domain/entities"

// StatusBreakdown counts guests per RSVP status. All four statuses are always present.
type StatusBreakdown map[entities.RSVPStatus]int

// NewStatusBreakdown returns a zero-filled breakdown
func NewStatusBreakdown() StatusBreakdown {
	b := make(StatusBreakdown, 4)
	for _, s := range entities.RSVPStatuses() {
		b[s] = 0
	}
	return b
}

// Aggregate counts guests by RSVP status.
// Unknown statuses and nil records are skipped.
func Aggregate(guests []*entities.Guest) StatusBreakdown {
	b := NewStatusBreakdown()
	for _, g := range guests {
		if g == nil || !g.RSVPStatus.IsValid() {
			continue
		}
		b[g.RSVPStatus]++
	}
	return b
}

// Total returns the number of counted guests
func (b StatusBreakdown) Total() int {
	total := 0
	for _, n := range b {
		total += n
	}
	return total
}
