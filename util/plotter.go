package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"court-monitor/models"
)

// RenderUtilizationHistoryChart renders the per-day booked/free/closed
// counts of a history as an HTML bar chart.
func RenderUtilizationHistoryChart(history models.UtilizationHistory, w io.Writer) error {
	dates := make([]string, 0, len(history.DailyData))
	booked := make([]opts.BarData, 0, len(history.DailyData))
	free := make([]opts.BarData, 0, len(history.DailyData))
	closed := make([]opts.BarData, 0, len(history.DailyData))

	for _, day := range history.DailyData {
		dates = append(dates, day.Date)
		booked = append(booked, opts.BarData{Value: day.BookedSlots})
		free = append(free, opts.BarData{Value: day.FreeSlots})
		closed = append(closed, opts.BarData{Value: day.ClosedSlots})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Utilization History",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s: %s to %s", history.VenueName, history.FromDate, history.ToDate),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(dates).
		AddSeries("Booked", booked).
		AddSeries("Free", free).
		AddSeries("Closed", closed)

	return bar.Render(w)
}
