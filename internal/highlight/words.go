package highlight

// Classify reports the class of a single identifier.
// Keywords win over builtins; anything else is an Identifier.
// Matching is exact and case-sensitive.
func Classify(word string) Class {
	if _, ok := _keywords[word]; ok {
		return Keyword
	}
	if _, ok := _builtins[word]; ok {
		return Builtin
	}
	return Identifier
}

func setOf(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var _keywords = setOf(
	"void", "int", "float", "boolean", "String", "new",
	"if", "else", "for", "while", "return",
	"class", "extends", "true", "false", "null",
)

// Well-known entry points of the Processing library.
// setup and draw are callbacks written by the sketch author,
// so they are plain identifiers.
var _builtins = setOf(
	"size", "background", "fill", "stroke",
	"noStroke", "noFill", "rect", "ellipse", "line",
	"width", "height", "mouseX", "mouseY",
	"random", "noise", "map", "lerp",
	"translate", "rotate", "scale", "pushMatrix", "popMatrix",
	"println", "color", "loadImage", "image", "PVector",
	"sin", "cos", "radians", "dist", "frameRate", "smooth", "noLoop",
	"beginShape", "endShape", "vertex", "curveVertex",
)
