package main

import (
	"context"
	"flag"
	"log"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/database"
	"github.com/hardiraiz/clone-gform-backend/models"
	"github.com/hardiraiz/clone-gform-backend/services"
)

// Seeds a form with fake submissions, routed through the real validation
// pipeline so the generated data obeys the same rules as live traffic.
func main() {
	formFlag := flag.String("form", "", "id of the form to seed")
	userFlag := flag.String("user", "", "id of the submitting user")
	limit := flag.Int("limit", 10, "number of submissions to generate")
	flag.Parse()

	formID, err := uuid.Parse(*formFlag)
	if err != nil {
		log.Fatalf("invalid -form id: %v", err)
	}
	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		log.Fatalf("invalid -user id: %v", err)
	}

	database.ConnectDB()

	var form models.Form
	if err := database.DB.Preload("Questions").First(&form, "id = ?", formID).Error; err != nil {
		log.Fatalf("form not found: %v", err)
	}

	service := services.NewSubmissionService(services.NewGormAnswerStore(database.DB))

	created := 0
	for i := 0; i < *limit; i++ {
		entries := fakeEntries(form.Questions)
		result, err := service.Submit(context.Background(), &form, entries, userID)
		if err != nil {
			log.Fatalf("failed to insert submission: %v", err)
		}
		if !result.Accepted {
			log.Fatalf("generated submission rejected: %s", result.Reason)
		}
		created++
	}

	log.Printf("✅ %d submission(s) added to form %s", created, form.Title)
}

func fakeEntries(questions []models.Question) []services.AnswerEntry {
	entries := make([]services.AnswerEntry, 0, len(questions))
	for _, question := range questions {
		value, ok := fakeValue(question)
		if !ok {
			continue
		}
		entries = append(entries, services.AnswerEntry{
			QuestionID: question.ID,
			Value:      value,
		})
	}
	return entries
}

func fakeValue(question models.Question) (models.AnswerValue, bool) {
	switch question.Type {
	case models.QuestionTypeEmail:
		return models.StringValue(gofakeit.Email()), true
	case models.QuestionTypeRadio, models.QuestionTypeDropdown:
		if len(question.Options) == 0 {
			return models.AnswerValue{}, false
		}
		picked := question.Options[gofakeit.Number(0, len(question.Options)-1)]
		return models.StringValue(picked.Value), true
	case models.QuestionTypeCheckbox:
		if len(question.Options) == 0 {
			return models.AnswerValue{}, false
		}
		var values []string
		for _, option := range question.Options {
			if gofakeit.Bool() {
				values = append(values, option.Value)
			}
		}
		if len(values) == 0 {
			values = append(values, question.Options[0].Value)
		}
		return models.ListValue(values...), true
	default:
		return models.StringValue(gofakeit.Name()), true
	}
}
