package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hardiraiz/clone-gform-backend/database"
	"github.com/hardiraiz/clone-gform-backend/models"
)

type SubmissionResponse struct {
	SubmissionID uuid.UUID       `json:"submissionId"`
	UserID       uuid.UUID       `json:"userId"`
	SubmittedAt  time.Time       `json:"submittedAt"`
	Answers      []models.Answer `json:"answers"`
}

type QuestionSummary struct {
	Question models.Question `json:"question"`
	Answered int             `json:"answered"`
	// Counts tallies how often each value was picked; only filled for
	// choice questions.
	Counts map[string]int `json:"counts,omitempty"`
	// Values lists the raw free-form answers for Text and Email questions.
	Values []string `json:"values,omitempty"`
}

// ListResponses returns a form's submissions newest first, each grouped
// back into the answer set it was accepted as.
func ListResponses(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("formId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}
	if _, err := ownedForm(formID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}

	limit := c.QueryInt("limit", 10)
	page := c.QueryInt("page", 1)
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}

	var total int64
	database.DB.Model(&models.Answer{}).Where("form_id = ?", formID).
		Distinct("submission_id").Count(&total)

	type submissionRow struct {
		SubmissionID uuid.UUID
		SubmittedAt  time.Time
	}
	var rows []submissionRow
	err = database.DB.Model(&models.Answer{}).
		Select("submission_id, MIN(created_at) AS submitted_at").
		Where("form_id = ?", formID).
		Group("submission_id").
		Order("submitted_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "RESPONSES_NOT_FOUND"})
	}

	submissionIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		submissionIDs = append(submissionIDs, row.SubmissionID)
	}

	var answers []models.Answer
	if len(submissionIDs) > 0 {
		database.DB.Where("submission_id IN ?", submissionIDs).
			Order("created_at asc").Find(&answers)
	}

	grouped := make(map[uuid.UUID][]models.Answer, len(rows))
	for _, answer := range answers {
		grouped[answer.SubmissionID] = append(grouped[answer.SubmissionID], answer)
	}

	responses := make([]SubmissionResponse, 0, len(rows))
	for _, row := range rows {
		set := grouped[row.SubmissionID]
		response := SubmissionResponse{
			SubmissionID: row.SubmissionID,
			SubmittedAt:  row.SubmittedAt,
			Answers:      set,
		}
		if len(set) > 0 {
			response.UserID = set[0].UserID
		}
		responses = append(responses, response)
	}

	return c.JSON(fiber.Map{
		"status":    true,
		"message":   "SUCCESS_GET_RESPONSES",
		"totalData": total,
		"page":      page,
		"limit":     limit,
		"responses": responses,
	})
}

// SummarizeResponses aggregates a form's answers per question: a value
// tally for choice questions, the raw value list for free-form ones.
func SummarizeResponses(c *fiber.Ctx) error {
	userID := currentUserID(c)

	formID, err := uuid.Parse(c.Params("formId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "INVALID_FORM_ID"})
	}
	if _, err := ownedForm(formID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "FORM_NOT_FOUND"})
	}

	var questions []models.Question
	database.DB.Where("form_id = ?", formID).Order("created_at asc").Find(&questions)

	var answers []models.Answer
	database.DB.Where("form_id = ?", formID).Order("created_at asc").Find(&answers)

	byQuestion := make(map[uuid.UUID][]models.Answer, len(questions))
	for _, answer := range answers {
		byQuestion[answer.QuestionID] = append(byQuestion[answer.QuestionID], answer)
	}

	summaries := make([]QuestionSummary, 0, len(questions))
	for _, question := range questions {
		summary := QuestionSummary{Question: question}
		for _, answer := range byQuestion[question.ID] {
			if answer.Value.IsEmpty() {
				continue
			}
			summary.Answered++
			if question.Type.HasOptions() {
				if summary.Counts == nil {
					summary.Counts = make(map[string]int)
				}
				if answer.Value.IsList() {
					for _, value := range answer.Value.Strings() {
						summary.Counts[value]++
					}
				} else {
					summary.Counts[answer.Value.String()]++
				}
			} else {
				summary.Values = append(summary.Values, answer.Value.String())
			}
		}
		summaries = append(summaries, summary)
	}

	return c.JSON(fiber.Map{
		"status":    true,
		"message":   "SUCCESS_GET_SUMMARIES",
		"summaries": summaries,
	})
}
