package task

import (
	"strings"
	"unicode/utf8"

	"github.com/fastygo/tasklist/domain"
)

func buildTask(title, description, startText, dueText string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, domain.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return domain.Task{}, domain.ErrTitleTooLong
	}

	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > domain.MaxDescriptionLength {
		return domain.Task{}, domain.ErrDescriptionTooLong
	}

	start, err := domain.ParseMoment(strings.TrimSpace(startText))
	if err != nil {
		return domain.Task{}, err
	}
	due, err := domain.ParseMoment(strings.TrimSpace(dueText))
	if err != nil {
		return domain.Task{}, err
	}
	if due.Before(start) {
		return domain.Task{}, domain.ErrDueBeforeStart
	}

	return domain.Task{
		Title:       title,
		Description: description,
		StartTime:   start,
		DueTime:     due,
	}, nil
}
