package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/models"
)

// ParseSightingRows assembles Sighting records from the parallel form lists
// animal, location, day, time, number, male_count and female_count. Row i is
// built from index i of each list; the animal list fixes the row count.
//
// number is mandatory per row. male_count and female_count are optional: a
// missing index or empty string means NULL. The text fields are taken
// verbatim, with missing trailing values treated as empty strings so a ragged
// form never indexes out of range.
func ParseSightingRows(form url.Values, owner string) ([]models.Sighting, error) {
	animals := form["animal"]
	locations := form["location"]
	days := form["day"]
	times := form["time"]
	numbers := form["number"]
	males := form["male_count"]
	females := form["female_count"]

	rows := make([]models.Sighting, 0, len(animals))
	for i := range animals {
		number, err := requiredInt(numbers, i, "number")
		if err != nil {
			return nil, err
		}
		maleCount, err := optionalInt(males, i, "male_count")
		if err != nil {
			return nil, err
		}
		femaleCount, err := optionalInt(females, i, "female_count")
		if err != nil {
			return nil, err
		}

		rows = append(rows, models.Sighting{
			Username:    owner,
			Animal:      animals[i],
			Location:    at(locations, i),
			Day:         at(days, i),
			Time:        at(times, i),
			Number:      number,
			MaleCount:   maleCount,
			FemaleCount: femaleCount,
		})
	}
	return rows, nil
}

// at returns list[i], or "" when the list is too short.
func at(list []string, i int) string {
	if i >= len(list) {
		return ""
	}
	return list[i]
}

func requiredInt(list []string, i int, field string) (int, error) {
	v := at(list, i)
	if v == "" {
		return 0, fmt.Errorf("%w: row %d: %s is required", models.ErrInvalidInput, i+1, field)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d: %s must be a whole number", models.ErrInvalidInput, i+1, field)
	}
	return n, nil
}

func optionalInt(list []string, i int, field string) (*int, error) {
	v := at(list, i)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: row %d: %s must be a whole number", models.ErrInvalidInput, i+1, field)
	}
	return &n, nil
}
