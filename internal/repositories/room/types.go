package room

import "github.com/KirkDiggler/colorcubes/internal/models"

type SaveRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	Passcode string
}

type DeleteRoomInput struct {
	Passcode string
}

type ListRoomsInput struct {
}

type ListRoomsOutput struct {
	Rooms []*models.Room
}
