package services

import (
	"staylux-backend/models"
	"staylux-backend/store"
)

// RoomService wraps the room store for the controllers.
type RoomService struct {
	Rooms *store.RoomStore
}

func NewRoomService(rooms *store.RoomStore) *RoomService {
	return &RoomService{Rooms: rooms}
}

// List loads the full collection and applies the public page filters.
func (s *RoomService) List(c RoomCriteria) []models.Room {
	return FilterRooms(s.Rooms.GetAll(), c)
}

// Search loads the full collection and applies the admin text search.
func (s *RoomService) Search(query string) []models.Room {
	return SearchRooms(s.Rooms.GetAll(), query)
}

func (s *RoomService) Get(id int) (models.Room, error) {
	return s.Rooms.GetByID(id)
}

func (s *RoomService) Create(room models.Room) models.Room {
	return s.Rooms.Create(room)
}

func (s *RoomService) Update(id int, patch models.RoomPatch) (models.Room, error) {
	return s.Rooms.Update(id, patch)
}

func (s *RoomService) Delete(id int) error {
	return s.Rooms.Delete(id)
}
