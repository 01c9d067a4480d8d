package plan

import "github.com/zyedidia/generic/mapset"

// Apartment geometry constants.
const (
	WallGap       = 4  // half wall thickness between adjacent rooms
	DoorSlot      = 20 // door width along the shared wall
	MinSharedWall = 20 // minimum wall overlap before a door is carved
	DoorInset     = 10 // clearance kept between a door and the wall's ends
)

// RoomType names a room archetype.
type RoomType string

const (
	Bedroom  RoomType = "bedroom"
	Living   RoomType = "living"
	Kitchen  RoomType = "kitchen"
	Bathroom RoomType = "bathroom"
	Hallway  RoomType = "hallway"
	Study    RoomType = "study"
)

// RoomTypeDef is the size template and furniture manifest of an archetype.
type RoomTypeDef struct {
	MinW, MaxW float64
	MinH, MaxH float64
	Furniture  []FurnitureName
	Label      string
}

// Axis is the orientation of the wall a connection passes through.
type Axis string

const (
	// AxisVertical joins rooms that sit side by side.
	AxisVertical Axis = "vertical"
	// AxisHorizontal joins rooms stacked one above the other.
	AxisHorizontal Axis = "horizontal"
)

// Room is one placed room of an apartment.
type Room struct {
	ID     int        `json:"id"`
	Type   RoomType   `json:"type"`
	Bounds Rect       `json:"bounds"`
	Layout RoomLayout `json:"layout"`
}

// Connection is a door slot, in global coordinates, between two rooms.
type Connection struct {
	RoomA    int  `json:"roomA"`
	RoomB    int  `json:"roomB"`
	Position Rect `json:"position"`
	Axis     Axis `json:"axis"`
}

// Size is the overall extent of a floor plan.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Apartment is a set of rooms, the doors between them, and their extent.
type Apartment struct {
	Rooms       []Room       `json:"rooms"`
	Connections []Connection `json:"connections"`
	FloorPlan   Size         `json:"floorPlan"`
}

// Room returns the room with the given id.
func (a Apartment) Room(id int) (Room, bool) {
	for _, r := range a.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// RoomOfType returns the first room of type t.
func (a Apartment) RoomOfType(t RoomType) (Room, bool) {
	for _, r := range a.Rooms {
		if r.Type == t {
			return r, true
		}
	}
	return Room{}, false
}

// Reachable returns the ids of every room reachable from room `from` by
// walking through doors, in breadth-first order starting with from itself.
// It returns nil when from is not a room of a.
func (a Apartment) Reachable(from int) []int {
	if _, ok := a.Room(from); !ok {
		return nil
	}
	adj := make(map[int][]int)
	for _, c := range a.Connections {
		adj[c.RoomA] = append(adj[c.RoomA], c.RoomB)
		adj[c.RoomB] = append(adj[c.RoomB], c.RoomA)
	}

	visited := mapset.New[int]()
	visited.Put(from)
	order := []int{from}
	for i := 0; i < len(order); i++ {
		for _, next := range adj[order[i]] {
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			order = append(order, next)
		}
	}
	return order
}

// FullyConnected reports whether every room can be reached from the first.
func (a Apartment) FullyConnected() bool {
	if len(a.Rooms) == 0 {
		return true
	}
	return len(a.Reachable(a.Rooms[0].ID)) == len(a.Rooms)
}
