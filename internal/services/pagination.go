package services

import (
	"sort"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// FilterSeries drops excluded currencies from every day of the series.
// The input is left untouched so a cached series stays reusable.
func FilterSeries(rates map[string]models.RateSet) map[string]models.RateSet {
	out := make(map[string]models.RateSet, len(rates))
	for date, set := range rates {
		out[date] = FilterExcluded(set)
	}
	return out
}

// Paginate orders the days ascending and returns the requested 1-based page.
// A page past the end is empty; the totals are still filled in.
func Paginate(rates map[string]models.RateSet, page, pageSize int) (items []models.DatedRates, totalItems, totalPages int, err error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, 0, ErrInvalidPagination
	}

	dates := make([]string, 0, len(rates))
	for date := range rates {
		dates = append(dates, date)
	}
	// yyyy-MM-dd sorts chronologically as a string
	sort.Strings(dates)

	totalItems = len(dates)
	totalPages = totalItems / pageSize
	if totalItems%pageSize != 0 {
		totalPages++
	}

	items = []models.DatedRates{}
	if page > totalPages {
		return items, totalItems, totalPages, nil
	}

	// page <= totalPages keeps skip below totalItems
	skip := (page - 1) * pageSize
	end := totalItems
	if pageSize < totalItems-skip {
		end = skip + pageSize
	}
	for _, date := range dates[skip:end] {
		items = append(items, models.DatedRates{Date: date, Rates: rates[date]})
	}
	return items, totalItems, totalPages, nil
}
