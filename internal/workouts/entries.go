package workouts

import (
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/validation"
)

// Fields an exercise entry may carry. Anything else in a raw entry is dropped.
const (
	fieldExerciseID        = "exerciseId"
	fieldSets              = "sets"
	fieldReps              = "reps"
	fieldAdditionalDetails = "additionalDetails"
)

var requiredEntryFields = []string{fieldExerciseID, fieldSets, fieldReps}

// SanitizeEntries validates raw exercise entries, as decoded from JSON, and projects
// each of them onto the allowed field set. It fails on the first bad entry, so a
// workout is either stored with all of its entries or not at all.
func SanitizeEntries(raw any) ([]ExerciseEntry, error) {
	rawEntries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: exercises must be an array", ErrInvalidExerciseEntry)
	}
	if len(rawEntries) == 0 {
		return nil, fmt.Errorf("%w: exercises must not be empty", ErrInvalidExerciseEntry)
	}

	entries := make([]ExerciseEntry, 0, len(rawEntries))
	for i, rawEntry := range rawEntries {
		entry, err := sanitizeEntry(rawEntry)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %s", ErrInvalidExerciseEntry, i, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func sanitizeEntry(raw any) (ExerciseEntry, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return ExerciseEntry{}, errors.New("must be an object")
	}

	for _, f := range requiredEntryFields {
		if _, present := fields[f]; !present {
			return ExerciseEntry{}, fmt.Errorf("missing field [%s]", f)
		}
	}

	exerciseID, err := validation.StringValue(fieldExerciseID, fields[fieldExerciseID])
	if err != nil {
		return ExerciseEntry{}, err
	}
	objID, err := validation.ParseID(exerciseID)
	if err != nil {
		return ExerciseEntry{}, err
	}

	var entry ExerciseEntry
	entry.ExerciseID = objID
	if entry.Sets, err = validation.PositiveInt(fieldSets, fields[fieldSets]); err != nil {
		return ExerciseEntry{}, err
	}
	if entry.Reps, err = validation.PositiveInt(fieldReps, fields[fieldReps]); err != nil {
		return ExerciseEntry{}, err
	}

	if details, present := fields[fieldAdditionalDetails]; present && details != nil {
		if entry.AdditionalDetails, err = validation.StringValue(fieldAdditionalDetails, details); err != nil {
			return ExerciseEntry{}, err
		}
	}

	return entry, nil
}
