package exercises

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

var seedColumns = []string{"name", "target", "bodyPart", "equipment", "gifUrl"}

// Seed reads exercises from a CSV with a header row and adds each of them through the service.
// Header columns may come in any order, unknown columns are ignored.
// The first invalid row aborts the seed; rows added before it stay stored.
func Seed(ctx context.Context, service *Service, exercisesCsvReader *csv.Reader) (int, error) {
	exercisesCsvReader.FieldsPerRecord = -1
	exercisesCsvReader.TrimLeadingSpace = true

	header, err := exercisesCsvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, errors.New("exercises csv is empty")
		}
		return 0, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, col := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))] = i
	}
	for _, col := range seedColumns {
		if _, ok := columns[col]; !ok {
			return 0, fmt.Errorf("csv header missing column [%s]", col)
		}
	}

	log.Println("seeding exercises from CSV ...")

	added := 0
	// row 1 is the header
	for row := 2; ; row++ {
		record, err := exercisesCsvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return added, fmt.Errorf("read csv row %d: %w", row, err)
		}

		value := func(col string) string {
			i := columns[col]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		name, err := service.Create(
			ctx,
			value("name"),
			value("target"),
			value("bodyPart"),
			value("equipment"),
			value("gifUrl"),
		)
		if err != nil {
			return added, fmt.Errorf("add exercise from row %d: %w", row, err)
		}

		added++
		log.Printf("added exercise [%s]", name)
	}

	log.Printf("exercises CSV seeded %d exercises", added)

	return added, nil
}
