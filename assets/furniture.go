// Package assets holds the static catalogs the floor-plan generator draws
// from. Every table here is read-only after package initialization.
package assets

import "floorplan/internal/plan"

// Furniture maps each piece to its footprint and placement policy.
var Furniture = map[plan.FurnitureName]plan.FurnitureDef{
	plan.Door:      {W: 16, H: 44, Placement: plan.PlaceRightWall},
	plan.Bed:       {W: 56, H: 34, Placement: plan.PlaceBackWall},
	plan.Desk:      {W: 40, H: 22, Placement: plan.PlaceBackWall},
	plan.Bookshelf: {W: 18, H: 34, Placement: plan.PlaceSideWall},
	plan.DogBed:    {W: 24, H: 14, Placement: plan.PlaceFloor},
	plan.Plant:     {W: 12, H: 14, Placement: plan.PlaceSideWall},
	plan.Wardrobe:  {W: 30, H: 20, Placement: plan.PlaceBackWall},
	plan.Couch:     {W: 50, H: 20, Placement: plan.PlaceBackWall},
	plan.TV:        {W: 30, H: 10, Placement: plan.PlaceBackWall},
	plan.Armchair:  {W: 20, H: 18, Placement: plan.PlaceFloor},
	plan.Table:     {W: 30, H: 24, Placement: plan.PlaceFloor},
	plan.Fridge:    {W: 18, H: 18, Placement: plan.PlaceBackWall},
	plan.Stove:     {W: 18, H: 16, Placement: plan.PlaceBackWall},
	plan.Counter:   {W: 36, H: 14, Placement: plan.PlaceBackWall},
	plan.Toilet:    {W: 12, H: 16, Placement: plan.PlaceSideWall},
	plan.Bathtub:   {W: 20, H: 36, Placement: plan.PlaceSideWall},
	plan.Sink:      {W: 14, H: 10, Placement: plan.PlaceBackWall},
	plan.CoatRack:  {W: 10, H: 10, Placement: plan.PlaceSideWall},
	plan.ShoeRack:  {W: 16, H: 8, Placement: plan.PlaceSideWall},
	plan.Chair:     {W: 12, H: 12, Placement: plan.PlaceFloor},
}

// SingleRoomFurniture is the manifest of the standalone home room, in
// placement order. The door goes first so nothing blocks it.
var SingleRoomFurniture = []plan.FurnitureName{
	plan.Door,
	plan.Bed,
	plan.Desk,
	plan.Bookshelf,
	plan.DogBed,
	plan.Plant,
}

// FurnitureDef returns the catalog entry for name. Unknown names get a
// small freestanding footprint so a bad manifest still yields a layout.
func FurnitureDef(name plan.FurnitureName) plan.FurnitureDef {
	if def, ok := Furniture[name]; ok {
		return def
	}
	return plan.FurnitureDef{W: 12, H: 12, Placement: plan.PlaceFloor}
}
