package insights

import "sort"

// Aggregate computes the dashboard summary for a parsed table. Pure function
// of its input: no hidden state, deterministic for a fixed table and config,
// and it never fails for any well-formed RawTable, including an empty one.
func Aggregate(table RawTable, cfg Config) DashboardSummary {
	enriched := Enrich(table)

	var totalTraffic, totalConversions float64
	for _, er := range enriched {
		totalTraffic += er.Traffic
		totalConversions += er.Conversions
	}

	summary := DashboardSummary{
		RowCount:         len(table.Rows),
		TotalTraffic:     totalTraffic,
		TotalConversions: totalConversions,
		OverallRate:      safeRate(totalConversions, totalTraffic),
	}

	summary.TopByVolume = topN(enriched, cfg.TopN, func(r EnrichedRow) float64 { return r.Traffic })

	qualified := make([]EnrichedRow, 0, len(enriched))
	for _, r := range enriched {
		if r.Traffic >= cfg.RateFloor {
			qualified = append(qualified, r)
		}
	}
	summary.TopByRate = topN(qualified, cfg.TopN, func(r EnrichedRow) float64 { return r.Rate })

	return summary
}

// Enrich resolves the column roles and annotates every row with its metric
// values, preserving source order.
func Enrich(table RawTable) []EnrichedRow {
	roles := ResolveRoles(table.Headers)
	labelCol := roles[RoleLabel]
	trafficCol := roles[RoleTraffic]
	conversionCol := roles[RoleConversion]

	enriched := make([]EnrichedRow, 0, len(table.Rows))
	for _, row := range table.Rows {
		enriched = append(enriched, enrichRow(row, labelCol, trafficCol, conversionCol))
	}
	return enriched
}

func enrichRow(row map[string]string, labelCol, trafficCol, conversionCol string) EnrichedRow {
	er := EnrichedRow{Label: UnknownLabel}
	if labelCol != "" {
		if label := row[labelCol]; label != "" {
			er.Label = label
		}
	}
	if trafficCol != "" {
		if v, ok := ParseNumber(row[trafficCol]); ok {
			er.Traffic = v
		}
	}
	if conversionCol != "" {
		if v, ok := ParseNumber(row[conversionCol]); ok {
			er.Conversions = v
		}
	}
	er.Rate = safeRate(er.Conversions, er.Traffic)
	return er
}

// safeRate divides conversions by traffic, yielding 0 instead of NaN/Inf when
// traffic is not positive.
func safeRate(conversions, traffic float64) float64 {
	if traffic <= 0 {
		return 0
	}
	return conversions / traffic
}

// topN returns the first n rows sorted by key descending. The sort is stable
// so ties keep source order; downstream display depends on that determinism.
// Fewer than n rows returns fewer, never padded.
func topN(rows []EnrichedRow, n int, key func(EnrichedRow) float64) []EnrichedRow {
	ranked := make([]EnrichedRow, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i]) > key(ranked[j])
	})
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
