package cow

// names is the friendly-name pool for generated cows.
var names = []string{
	"Apple",
	"Apricot",
	"Banana",
	"Blackberry",
	"Blueberry",
	"Cherry",
	"Clementine",
	"Fig",
	"Grape",
	"Guava",
	"Huckleberry",
	"Kiwi",
	"Kumquat",
	"Lemon",
	"Lime",
	"Mango",
	"Nectarine",
	"Olive",
	"Papaya",
	"Peach",
	"Pear",
	"Persimmon",
	"Plum",
	"Pomegranate",
	"Raspberry",
	"Strawberry",
	"Tangerine",
	"Watermelon",
}
