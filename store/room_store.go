package store

import (
	"sync"
	"time"

	"staylux-backend/models"
)

// Per-operation simulated delays, matching the original mock service.
const (
	roomDelayGetAll  = 300 * time.Millisecond
	roomDelayGetByID = 200 * time.Millisecond
	roomDelayCreate  = 400 * time.Millisecond
	roomDelayUpdate  = 350 * time.Millisecond
	roomDelayDelete  = 300 * time.Millisecond
)

type RoomStore struct {
	mu       sync.Mutex
	rooms    []models.Room
	simulate bool
}

// NewRoomStore seeds a store with its own copy of the given rooms.
// simulate enables the artificial per-operation latency; tests leave it off.
func NewRoomStore(seed []models.Room, simulate bool) *RoomStore {
	rooms := make([]models.Room, len(seed))
	for i, r := range seed {
		rooms[i] = copyRoom(r)
	}
	return &RoomStore{rooms: rooms, simulate: simulate}
}

func copyRoom(r models.Room) models.Room {
	out := r
	if r.Images != nil {
		out.Images = append([]string(nil), r.Images...)
	}
	if r.Amenities != nil {
		out.Amenities = append([]string(nil), r.Amenities...)
	}
	return out
}

// GetAll returns a copy of the collection in insertion order.
func (s *RoomStore) GetAll() []models.Room {
	sleepFor(s.simulate, roomDelayGetAll)
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Room, len(s.rooms))
	for i, r := range s.rooms {
		out[i] = copyRoom(r)
	}
	return out
}

func (s *RoomStore) GetByID(id int) (models.Room, error) {
	sleepFor(s.simulate, roomDelayGetByID)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.ID == id {
			return copyRoom(r), nil
		}
	}
	return models.Room{}, ErrRoomNotFound
}

// Create assigns the next id (max existing + 1, ids are never reused) and
// defaults status to "available" when unset.
func (s *RoomStore) Create(room models.Room) models.Room {
	sleepFor(s.simulate, roomDelayCreate)
	s.mu.Lock()
	defer s.mu.Unlock()

	room.ID = s.nextID()
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	s.rooms = append(s.rooms, copyRoom(room))
	return room
}

func (s *RoomStore) nextID() int {
	max := 0
	for _, r := range s.rooms {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// Update shallow-merges the set fields of patch onto the stored record.
// The id is immutable.
func (s *RoomStore) Update(id int, patch models.RoomPatch) (models.Room, error) {
	sleepFor(s.simulate, roomDelayUpdate)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID != id {
			continue
		}
		r := &s.rooms[i]
		if patch.Name != nil {
			r.Name = *patch.Name
		}
		if patch.Type != nil {
			r.Type = *patch.Type
		}
		if patch.Capacity != nil {
			r.Capacity = *patch.Capacity
		}
		if patch.Price != nil {
			r.Price = *patch.Price
		}
		if patch.Status != nil {
			r.Status = *patch.Status
		}
		if patch.Images != nil {
			r.Images = append([]string(nil), (*patch.Images)...)
		}
		if patch.Amenities != nil {
			r.Amenities = append([]string(nil), (*patch.Amenities)...)
		}
		return copyRoom(*r), nil
	}
	return models.Room{}, ErrRoomNotFound
}

func (s *RoomStore) Delete(id int) error {
	sleepFor(s.simulate, roomDelayDelete)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.rooms {
		if r.ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			return nil
		}
	}
	return ErrRoomNotFound
}
