package hotel

// RoomState tags where a room currently is in the occupy-dirty-clean cycle.
// Every room is in exactly one state at any instant.
type RoomState int

const (
	// RoomVacantClean rooms are ready for the next guest.
	RoomVacantClean RoomState = iota
	// RoomOccupied rooms currently host a guest.
	RoomOccupied
	// RoomVacantDirty rooms wait for housekeeping.
	RoomVacantDirty
	// RoomBeingCleaned rooms are being worked on by a cleaner.
	RoomBeingCleaned
)

func (s RoomState) String() string {
	switch s {
	case RoomVacantClean:
		return "VacantClean"
	case RoomOccupied:
		return "Occupied"
	case RoomVacantDirty:
		return "VacantDirty"
	case RoomBeingCleaned:
		return "BeingCleaned"
	default:
		return "Unknown"
	}
}

// A Room is one physical room of the property.
type Room struct {
	ID    int
	State RoomState
}
