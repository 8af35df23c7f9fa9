package domain

// StatAxisMax is the upper bound of the stat chart axis.
const StatAxisMax = 150

func StatLabel(name string) string {
	switch name {
	case "special-attack":
		return "Sp. Atk"
	case "special-defense":
		return "Sp. Def"
	case "attack":
		return "Atk"
	case "defense":
		return "Def"
	case "speed":
		return "Speed"
	case "hp":
		return "HP"
	default:
		return name
	}
}
