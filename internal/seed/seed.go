// Package seed loads sample workouts from TOML files.
package seed

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"example.com/workouts/internal/domain"
)

//
// For TOML parsing only
//

type workoutTOML struct {
	ID       string `toml:"id"`
	Date     string `toml:"date"`
	Type     string `toml:"type"`
	Duration int    `toml:"duration"`
	Calories int    `toml:"calories"`
	Steps    *int   `toml:"steps,omitempty"`
}

type fileTOML struct {
	Workouts []workoutTOML `toml:"workout"`
}

// LoadFile reads workouts from a TOML file with one [[workout]] table per record.
func LoadFile(path string) ([]domain.Workout, error) {
	var file fileTOML
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return toWorkouts(file), nil
}

// Decode reads workouts from TOML content.
func Decode(r io.Reader) ([]domain.Workout, error) {
	var file fileTOML
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return toWorkouts(file), nil
}

func toWorkouts(file fileTOML) []domain.Workout {
	out := make([]domain.Workout, 0, len(file.Workouts))
	for _, w := range file.Workouts {
		out = append(out, domain.Workout{
			ID:       w.ID,
			Date:     w.Date,
			Type:     domain.WorkoutType(w.Type),
			Duration: w.Duration,
			Calories: w.Calories,
			Steps:    w.Steps,
		})
	}
	return out
}

// Records returns the workouts from path, or the built-in sample set when path is empty.
// Validation happens when the records are handed to domain.NewStore.
func Records(path string) ([]domain.Workout, error) {
	if path == "" {
		return domain.SeedWorkouts(), nil
	}
	return LoadFile(path)
}
