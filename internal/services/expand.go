package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/models"
)

// expandQuestions attaches each question's answers, in answer list order, with a
// single lookup for all of them. Ids that no longer resolve are skipped.
func expandQuestions(ctx context.Context, answers AnswerReader, rows []models.QuestionDB) ([]models.Question, error) {
	var ids []uuid.UUID
	for i := range rows {
		ids = append(ids, models.ParseUUIDs(rows[i].AnswerIDs)...)
	}

	found, err := answers.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*models.AnswerDB, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}

	out := make([]models.Question, 0, len(rows))
	for i := range rows {
		list := []models.Answer{}
		for _, id := range models.ParseUUIDs(rows[i].AnswerIDs) {
			if a, ok := byID[id]; ok {
				list = append(list, models.NewAnswer(a))
			}
		}
		out = append(out, models.NewQuestion(&rows[i], list))
	}
	return out, nil
}
