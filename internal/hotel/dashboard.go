package hotel

import (
	"context"
	"sync"
)

// Summary is the admin dashboard view. Each slice is filled independently;
// a failed fetch leaves its slice empty and records the message in Errors.
type Summary struct {
	Products      []Product         `json:"products"`
	Categories    []Category        `json:"categories"`
	Bookings      []Booking         `json:"bookings"`
	ProductCount  int               `json:"product_count"`
	CategoryCount int               `json:"category_count"`
	BookingCount  int               `json:"booking_count"`
	Errors        map[string]string `json:"errors,omitempty"`
}

// Dashboard fetches products, categories and bookings in parallel. It
// returns nil, nil when any of the fetches ended the session.
func (a *API) Dashboard(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		Products:   []Product{},
		Categories: []Category{},
		Bookings:   []Booking{},
	}

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		sessionEnd bool
	)
	record := func(name string, err error, ended bool) {
		mu.Lock()
		defer mu.Unlock()
		if ended {
			sessionEnd = true
		}
		if err != nil {
			if summary.Errors == nil {
				summary.Errors = make(map[string]string)
			}
			summary.Errors[name] = err.Error()
			a.log.Warn().Err(err).Str("slice", name).Msg("Dashboard fetch failed")
		}
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		page, err := a.Products.List(ctx, ListParams{})
		if page != nil {
			mu.Lock()
			summary.Products, summary.ProductCount = page.Items, page.Total
			mu.Unlock()
		}
		record("products", err, page == nil && err == nil)
	}()
	go func() {
		defer wg.Done()
		page, err := a.Categories.List(ctx, ListParams{})
		if page != nil {
			mu.Lock()
			summary.Categories, summary.CategoryCount = page.Items, page.Total
			mu.Unlock()
		}
		record("categories", err, page == nil && err == nil)
	}()
	go func() {
		defer wg.Done()
		page, err := a.Bookings.List(ctx, ListParams{})
		if page != nil {
			mu.Lock()
			summary.Bookings, summary.BookingCount = page.Items, page.Total
			mu.Unlock()
		}
		record("bookings", err, page == nil && err == nil)
	}()
	wg.Wait()

	if sessionEnd {
		return nil, nil
	}
	return summary, nil
}
