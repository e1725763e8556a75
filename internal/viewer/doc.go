// Package viewer turns raw store answers into display-ready structures.
//
// It holds three independent pipelines: the series directory, the content
// table transform and the chart transform. Each one calls the store through
// model.SeriesReader and shares no state with the others.
package viewer
