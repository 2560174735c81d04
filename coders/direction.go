package coders

import "github.com/JacksonBernier523/eth-abi/coder"

// Direction selects encoder or decoder classes.
type Direction int

const (
	Encode Direction = iota
	Decode
)

func (d Direction) String() string {
	if d == Decode {
		return "decoder"
	}
	return "encoder"
}

// className appends the direction suffix to a coder type name.
func (d Direction) className(typ string) string {
	if d == Decode {
		return typ + "Decoder"
	}
	return typ + "Encoder"
}

// itemSetting is the name of the array item setting.
func (d Direction) itemSetting() string {
	return "item_" + d.String()
}

func (d Direction) lookup(reg coder.Registry, typeStr string) (coder.Coder, error) {
	if d == Decode {
		return reg.Decoder(typeStr)
	}
	return reg.Encoder(typeStr)
}
