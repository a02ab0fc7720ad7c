package reports

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/adithyatb/fittrack/internal/fitness"
)

var csvHeader = []string{
	"id", "date", "type", "duration", "calories_burned",
	"distance", "steps", "intensity", "mood", "notes",
}

// WorkoutsCSV renders the workouts as CSV with a header row. Optional values
// that were never recorded are left empty.
func WorkoutsCSV(workouts []fitness.Workout, loc *time.Location) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, w := range workouts {
		record := []string{
			strconv.Itoa(w.ID),
			w.Date.In(loc).Format(time.RFC3339),
			string(w.Type),
			strconv.Itoa(w.Duration),
			strconv.Itoa(w.CaloriesBurned),
			"", "", "", "",
			w.Notes,
		}
		if w.Distance != nil {
			record[5] = strconv.FormatFloat(*w.Distance, 'f', -1, 64)
		}
		if w.Steps != nil {
			record[6] = strconv.Itoa(*w.Steps)
		}
		if w.Intensity != nil {
			record[7] = strconv.Itoa(*w.Intensity)
		}
		if w.Mood != nil {
			record[8] = string(*w.Mood)
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
