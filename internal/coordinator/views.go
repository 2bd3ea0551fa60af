package coordinator

import (
	"sort"
	"time"

	"salon-backend/internal/models"
)

// Derived views are pure functions over a cache snapshot, recomputed on
// every read and never cached separately.

// AppointmentsOn filters appointments scheduled within [dayStart,
// dayStart+24h), ordered by ascending time. The day boundary is supplied by
// the caller so the View controls the timezone.
func AppointmentsOn(appts []models.Appointment, dayStart time.Time) []models.Appointment {
	dayEnd := dayStart.Add(24 * time.Hour)

	out := make([]models.Appointment, 0)
	for _, a := range appts {
		if !a.ScheduledTime.Before(dayStart) && a.ScheduledTime.Before(dayEnd) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledTime.Before(out[j].ScheduledTime)
	})
	return out
}

// LowStock returns products at or below their minimum threshold. The
// boundary is inclusive: quantity == minThreshold counts as low.
func LowStock(products []models.Product) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// ActiveServices returns services available for booking.
func ActiveServices(services []models.Service) []models.Service {
	out := make([]models.Service, 0)
	for _, s := range services {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}
