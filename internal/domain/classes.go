package domain

// ClassBit maps one bit of the equipped-class bitfield to a player
// class name.
type ClassBit struct {
	Bit  uint64
	Name string
}

// ClassBits is the fixed class-bit table, ascending by bit. Bits 16..24
// of an item's inventory token select entries of this table.
var ClassBits = []ClassBit{
	{1, "Scout"},
	{2, "Sniper"},
	{4, "Soldier"},
	{8, "Demoman"},
	{16, "Medic"},
	{32, "Heavy"},
	{64, "Pyro"},
	{128, "Spy"},
	{256, "Engineer"},
}

// ClassNames returns every known class name in bit order.
func ClassNames() []string {
	names := make([]string, len(ClassBits))
	for i, cb := range ClassBits {
		names[i] = cb.Name
	}
	return names
}
