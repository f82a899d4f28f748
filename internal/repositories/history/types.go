package history

import "github.com/KirkDiggler/colorcubes/internal/models"

type AddRollRecordInput struct {
	Record *models.RollRecord
}

type GetRollHistoryInput struct {
	Passcode string

	// Limit caps the number of records returned; 0 means all
	Limit int
}

type GetRollHistoryOutput struct {
	Records []*models.RollRecord
}

type DeleteRollHistoryInput struct {
	Passcode string
}
