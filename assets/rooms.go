package assets

import "floorplan/internal/plan"

// RoomTypes is the archetype catalog used by the apartment composer.
var RoomTypes = map[plan.RoomType]plan.RoomTypeDef{
	plan.Bedroom: {
		MinW: 120, MaxW: 150, MinH: 100, MaxH: 130,
		Furniture: []plan.FurnitureName{plan.Bed, plan.Wardrobe, plan.Desk, plan.Plant, plan.DogBed},
		Label:     "Bedroom",
	},
	plan.Living: {
		MinW: 120, MaxW: 160, MinH: 90, MaxH: 120,
		Furniture: []plan.FurnitureName{plan.Couch, plan.TV, plan.Armchair, plan.Table, plan.Plant},
		Label:     "Living Room",
	},
	plan.Kitchen: {
		MinW: 80, MaxW: 110, MinH: 70, MaxH: 90,
		Furniture: []plan.FurnitureName{plan.Fridge, plan.Stove, plan.Counter, plan.Table, plan.Chair},
		Label:     "Kitchen",
	},
	plan.Bathroom: {
		MinW: 60, MaxW: 80, MinH: 60, MaxH: 80,
		Furniture: []plan.FurnitureName{plan.Toilet, plan.Bathtub, plan.Sink},
		Label:     "Bathroom",
	},
	plan.Hallway: {
		MinW: 40, MaxW: 56, MinH: 90, MaxH: 130,
		Furniture: []plan.FurnitureName{plan.CoatRack, plan.ShoeRack, plan.Plant},
		Label:     "Hallway",
	},
	plan.Study: {
		MinW: 80, MaxW: 110, MinH: 80, MaxH: 100,
		Furniture: []plan.FurnitureName{plan.Desk, plan.Bookshelf, plan.Chair, plan.Armchair},
		Label:     "Study",
	},
}

// RoomTypeOrder lists every archetype once; its length caps how many rooms
// an apartment can hold.
var RoomTypeOrder = []plan.RoomType{
	plan.Bedroom, plan.Living, plan.Kitchen, plan.Bathroom, plan.Hallway, plan.Study,
}

// OptionalRooms is the pool extra apartment rooms are drawn from.
var OptionalRooms = []plan.RoomType{plan.Living, plan.Hallway, plan.Study, plan.Kitchen}

// RoomLabel returns the display label of t, or t itself when unknown.
func RoomLabel(t plan.RoomType) string {
	if def, ok := RoomTypes[t]; ok {
		return def.Label
	}
	return string(t)
}
