package plan

import (
	"maps"
	"slices"
)

// FurnitureName identifies one entry of the furniture catalog.
type FurnitureName string

const (
	Door      FurnitureName = "door"
	Bed       FurnitureName = "bed"
	Desk      FurnitureName = "desk"
	Bookshelf FurnitureName = "bookshelf"
	DogBed    FurnitureName = "dogBed"
	Plant     FurnitureName = "plant"
	Wardrobe  FurnitureName = "wardrobe"
	Couch     FurnitureName = "couch"
	TV        FurnitureName = "tv"
	Armchair  FurnitureName = "armchair"
	Table     FurnitureName = "table"
	Fridge    FurnitureName = "fridge"
	Stove     FurnitureName = "stove"
	Counter   FurnitureName = "counter"
	Toilet    FurnitureName = "toilet"
	Bathtub   FurnitureName = "bathtub"
	Sink      FurnitureName = "sink"
	CoatRack  FurnitureName = "coatRack"
	ShoeRack  FurnitureName = "shoeRack"
	Chair     FurnitureName = "chair"
)

// Placement is the sampling policy used for a furniture piece.
type Placement uint8

const (
	PlaceBackWall Placement = iota
	PlaceSideWall
	PlaceFloor
	PlaceRightWall // doors only
)

func (p Placement) String() string {
	switch p {
	case PlaceBackWall:
		return "backWall"
	case PlaceSideWall:
		return "sideWall"
	case PlaceFloor:
		return "floor"
	case PlaceRightWall:
		return "rightWall"
	}
	return "unknown"
}

// FurnitureDef is the static size and placement policy of a piece.
type FurnitureDef struct {
	W, H      float64
	Placement Placement
}

// DoorSide is the wall the room's door is set into.
type DoorSide string

const (
	DoorLeft  DoorSide = "left"
	DoorRight DoorSide = "right"
)

// FloorDecorItem is a piece of floor clutter. Its footprint during placement
// is the square of side 2*Size centred on (X, Y).
type FloorDecorItem struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Rot  float64 `json:"rot"`
	Size float64 `json:"size"`
}

// Footprint returns the square the item occupied while being placed.
func (d FloorDecorItem) Footprint() Rect {
	return Rect{X: d.X - d.Size, Y: d.Y - d.Size, W: d.Size * 2, H: d.Size * 2}
}

// WallDecorItem is mounted inside the wall strip.
type WallDecorItem struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
	Rot  float64 `json:"rot"`
}

// Bounds returns the item's bounding box.
func (d WallDecorItem) Bounds() Rect {
	return Rect{X: d.X, Y: d.Y, W: d.W, H: d.H}
}

// RoomLayout is everything placed in one room, in room-local coordinates.
// Furniture has no required keys: which pieces appear depends on the room.
type RoomLayout struct {
	Furniture  map[FurnitureName]Rect `json:"furniture"`
	CharPos    Point                  `json:"charPos"`
	DogPos     Point                  `json:"dogPos"`
	Decor      []FloorDecorItem       `json:"decor"`
	WallDecor  []WallDecorItem        `json:"wallDecor"`
	WallY      float64                `json:"wallY"`
	FloorTop   float64                `json:"floorTop"`
	RoomWidth  float64                `json:"roomWidth"`
	RoomHeight float64                `json:"roomHeight"`
	DoorSide   DoorSide               `json:"doorSide"`
}

// FurnitureNames returns the names of the placed pieces in sorted order.
func (l RoomLayout) FurnitureNames() []FurnitureName {
	return slices.Sorted(maps.Keys(l.Furniture))
}

// FurnitureRects returns the placed furniture footprints, ordered by name.
func (l RoomLayout) FurnitureRects() []Rect {
	out := make([]Rect, 0, len(l.Furniture))
	for _, name := range l.FurnitureNames() {
		out = append(out, l.Furniture[name])
	}
	return out
}
