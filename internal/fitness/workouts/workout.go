package workouts

import (
	"encoding/json"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

type Exercise struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	WeightLifted float64 `json:"weightLifted"`
}

// Workout is rendered with its date as YYYY-MM-DD, the same form LogWorkoutRequest accepts.
type Workout struct {
	ID              int        `json:"id"`
	UserID          int        `json:"userId"`
	Date            time.Time  `json:"date"`
	DurationMinutes int        `json:"durationMinutes"`
	Exercises       []Exercise `json:"exercises"`
}

type workoutJSON Workout

func (w Workout) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		workoutJSON
		Date string `json:"date"`
	}{
		workoutJSON: workoutJSON(w),
		Date:        w.Date.Format(DateLayout),
	})
}

func (w *Workout) UnmarshalJSON(data []byte) error {
	aux := struct {
		*workoutJSON
		Date string `json:"date"`
	}{
		workoutJSON: (*workoutJSON)(w),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date == "" {
		w.Date = time.Time{}
		return nil
	}
	date, err := time.Parse(DateLayout, aux.Date)
	if err != nil {
		return fmt.Errorf("workout date %q: %w", aux.Date, err)
	}
	w.Date = date
	return nil
}

type NewExercise struct {
	Name         string  `json:"name"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	WeightLifted float64 `json:"weightLifted"`
}

type NewWorkout struct {
	UserID          int
	Date            time.Time
	DurationMinutes int
	Exercises       []NewExercise
}
