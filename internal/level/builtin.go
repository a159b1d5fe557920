package level

import "github.com/vovakirdan/elequad/internal/party"

// Built-in levels ship with the binary so the game is playable without
// any level files on disk. Extra levels can be dropped into the levels
// directory as YAML (see loader.go).

var hollowRows = []string{
	"########################################",
	"#                                      #",
	"#                                      #",
	"#######   ###   ####          ####### ##",
	"#                                   # D#",
	"#  FF   WW   EE   AA    x           # D#",
	"########################x####   ##  #12#",
	"#            ~~~~       x    #  ##  #34#",
	"#   p        ~~~~            #  ##  ####",
	"######    ###~~~~###  oooo   #  p      #",
	"#         #        #  oooo   ####   ####",
	"#   !!!   #        #  oooo             #",
	"########################################",
}

var hollowSpawns = map[party.ActorID]Coord{
	party.Actor1: {X: 2, Y: 2},
	party.Actor2: {X: 5, Y: 2},
	party.Actor3: {X: 11, Y: 2},
	party.Actor4: {X: 17, Y: 2},
}

var cavernRows = []string{
	"########################################",
	"#          x                         D #",
	"#          x        oooooo           D #",
	"#####   ####        oooooo        #### #",
	"#                   oooooo        # 12 #",
	"#   A   ####   ###  oooooo  ####  # 34 #",
	"##  E  ##  ~~~  ##  oooooo  #  p  ######",
	"#   W   #  ~~~  ##           #         #",
	"#   F   #  ~~~   #           ###   p   #",
	"##!!!!!!#  ~~~   ##   ###    ###########",
	"#       #        #                     #",
	"#  !!!  #   oo   #        !!!!         #",
	"########################################",
}

var cavernSpawns = map[party.ActorID]Coord{
	party.Actor1: {X: 1, Y: 2},
	party.Actor2: {X: 2, Y: 2},
	party.Actor3: {X: 9, Y: 2},
	party.Actor4: {X: 10, Y: 2},
}

func mustParse(id, name string, rows []string, spawns map[party.ActorID]Coord) *Level {
	l, err := Parse(id, name, rows, spawns)
	if err != nil {
		panic(err)
	}
	return l
}

func init() {
	Register("hollow", func() *Level {
		return mustParse("hollow", "The Hollow", hollowRows, hollowSpawns)
	})
	Register("cavern", func() *Level {
		return mustParse("cavern", "Flooded Cavern", cavernRows, cavernSpawns)
	})
}
