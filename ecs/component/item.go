package component

// ItemType is a collectible drop kind.
type ItemType uint8

const (
	ItemPower ItemType = iota
	ItemPoint
	ItemLife
	ItemBomb
)

// Item is a collectible. AutoCollect is set when the player crosses above
// the point-of-collection line; auto-collected point items score at maximum
// value.
type Item struct {
	Type        ItemType
	Magnitude   int
	AutoCollect bool
}

var ItemKind = NewKind[Item]()
