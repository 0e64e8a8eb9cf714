package workoutlogs

import (
	"fmt"

	"github.com/2beens/fittrack/internal/validation"
)

// SanitizeExerciseLog validates one raw exercise log, as decoded from JSON.
// Notes must be present and string typed but may be empty. Other keys are dropped.
func SanitizeExerciseLog(raw any) (ExerciseLog, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return ExerciseLog{}, fmt.Errorf("%w: must be an object", ErrInvalidExerciseLog)
	}

	exerciseLog, err := sanitizeFields(fields)
	if err != nil {
		return ExerciseLog{}, fmt.Errorf("%w: %s", ErrInvalidExerciseLog, err)
	}
	return exerciseLog, nil
}

// SanitizeExerciseLogs validates a full list of raw exercise logs. An empty list is valid.
func SanitizeExerciseLogs(raw any) ([]ExerciseLog, error) {
	rawLogs, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: exerciseLogs must be an array", ErrInvalidExerciseLog)
	}

	logs := make([]ExerciseLog, 0, len(rawLogs))
	for i, rawLog := range rawLogs {
		fields, ok := rawLog.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d: must be an object", ErrInvalidExerciseLog, i)
		}
		exerciseLog, err := sanitizeFields(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %s", ErrInvalidExerciseLog, i, err)
		}
		logs = append(logs, exerciseLog)
	}
	return logs, nil
}

func sanitizeFields(fields map[string]any) (ExerciseLog, error) {
	for _, f := range []string{"exerciseId", "name", "sets", "reps", "notes"} {
		if _, present := fields[f]; !present {
			return ExerciseLog{}, fmt.Errorf("missing field [%s]", f)
		}
	}

	var exerciseLog ExerciseLog
	exerciseID, err := validation.StringValue("exerciseId", fields["exerciseId"])
	if err != nil {
		return ExerciseLog{}, err
	}
	if exerciseLog.ExerciseID, err = validation.ParseID(exerciseID); err != nil {
		return ExerciseLog{}, err
	}

	name, err := validation.StringValue("name", fields["name"])
	if err != nil {
		return ExerciseLog{}, err
	}
	if exerciseLog.Name, err = validation.NonEmptyString("name", name); err != nil {
		return ExerciseLog{}, err
	}

	if exerciseLog.Sets, err = validation.PositiveInt("sets", fields["sets"]); err != nil {
		return ExerciseLog{}, err
	}
	if exerciseLog.Reps, err = validation.PositiveInt("reps", fields["reps"]); err != nil {
		return ExerciseLog{}, err
	}

	if exerciseLog.Notes, err = validation.StringValue("notes", fields["notes"]); err != nil {
		return ExerciseLog{}, err
	}

	return exerciseLog, nil
}

// removeFirst drops the first entry equal to target.
func removeFirst(logs []ExerciseLog, target ExerciseLog) ([]ExerciseLog, error) {
	for i, l := range logs {
		if l == target {
			out := make([]ExerciseLog, 0, len(logs)-1)
			out = append(out, logs[:i]...)
			return append(out, logs[i+1:]...), nil
		}
	}
	return nil, fmt.Errorf("%w: exercise [%s]", ErrExerciseLogNotFound, target.ExerciseID.Hex())
}
