package forecast

import (
	"time"

	"tour-weather/internal/providers/openweather"
	"tour-weather/internal/types"
)

// dayKey identifies a calendar day in the process-local timezone. Entries are
// bucketed by the local day their timestamp falls on, not the destination
// city's day; timestamps near midnight can land on the neighbouring day for
// cities in other timezones.
type dayKey struct {
	year  int
	month time.Month
	day   int
}

func localDay(unixSeconds int64) dayKey {
	y, m, d := time.Unix(unixSeconds, 0).Date()
	return dayKey{year: y, month: m, day: d}
}

// summarizeDays groups 3-hourly entries by calendar day and collapses each
// group into one summary. Buckets keep the order their day was first seen in
// the source list, and at most maxDays buckets are returned.
func summarizeDays(entries []openweather.ForecastEntry, maxDays int) []types.DailySummary {
	var order []dayKey
	buckets := make(map[dayKey][]openweather.ForecastEntry)

	for _, entry := range entries {
		key := localDay(entry.Dt)
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], entry)
	}

	if len(order) > maxDays {
		order = order[:maxDays]
	}

	summaries := make([]types.DailySummary, 0, len(order))
	for _, key := range order {
		summaries = append(summaries, summarizeBucket(buckets[key]))
	}
	return summaries
}

// summarizeBucket collapses the entries of one calendar day.
//
//   - temp.day is the mean of the instantaneous temperatures.
//   - temp.min / temp.max are the extremes of the per-entry min/max fields,
//     falling back to the mean when no entry supplies one.
//   - the description is the most frequent one; on a tie the first description
//     to reach the winning count keeps it.
//   - the representative timestamp prefers the entry at local noon.
func summarizeBucket(entries []openweather.ForecastEntry) types.DailySummary {
	var sum float64
	count := 0
	for _, entry := range entries {
		if entry.Main.Temp != nil {
			sum += *entry.Main.Temp
			count++
		}
	}

	var day *float64
	if count > 0 {
		mean := sum / float64(count)
		day = &mean
	}

	var min, max *float64
	for _, entry := range entries {
		if entry.Main.TempMin != nil && (min == nil || *entry.Main.TempMin < *min) {
			v := *entry.Main.TempMin
			min = &v
		}
		if entry.Main.TempMax != nil && (max == nil || *entry.Main.TempMax > *max) {
			v := *entry.Main.TempMax
			max = &v
		}
	}
	if min == nil {
		min = day
	}
	if max == nil {
		max = day
	}

	counts := make(map[string]int)
	bestCount := 0
	bestDescription := ""
	for _, entry := range entries {
		if len(entry.Weather) == 0 {
			continue
		}
		desc := entry.Weather[0].Description
		counts[desc]++
		// Strictly greater: the first description to reach the maximum
		// count wins, later ties do not overwrite it.
		if counts[desc] > bestCount {
			bestCount = counts[desc]
			bestDescription = desc
		}
	}

	dt := entries[0].Dt
	for _, entry := range entries {
		if time.Unix(entry.Dt, 0).Hour() == 12 {
			dt = entry.Dt
			break
		}
	}

	return types.DailySummary{
		Dt:      dt,
		Temp:    types.TempRange{Day: day, Min: min, Max: max},
		Weather: []types.WeatherInfo{{Description: bestDescription}},
	}
}
