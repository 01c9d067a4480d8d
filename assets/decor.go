package assets

// FloorDecorTypes is the floor clutter catalog.
var FloorDecorTypes = []string{
	"books", "sock", "ball", "bone", "mug", "laundry", "shoe", "toy", "paper",
}

// WallDecorDef bounds the random size of one wall decor type.
type WallDecorDef struct {
	Type       string
	MinW, MaxW float64
	MinH, MaxH float64
}

// WallDecorTypes is the wall-mounted decor catalog.
var WallDecorTypes = []WallDecorDef{
	{Type: "poster", MinW: 16, MaxW: 26, MinH: 20, MaxH: 30},
	{Type: "painting", MinW: 22, MaxW: 34, MinH: 16, MaxH: 24},
	{Type: "clock", MinW: 10, MaxW: 14, MinH: 10, MaxH: 14},
	{Type: "shelf", MinW: 24, MaxW: 36, MinH: 6, MaxH: 9},
	{Type: "calendar", MinW: 12, MaxW: 16, MinH: 14, MaxH: 20},
	{Type: "mirror", MinW: 12, MaxW: 18, MinH: 18, MaxH: 28},
	{Type: "photo", MinW: 8, MaxW: 12, MinH: 10, MaxH: 14},
	{Type: "pennant", MinW: 18, MaxW: 28, MinH: 8, MaxH: 12},
}
