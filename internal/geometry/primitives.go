package geometry

import (
	"fmt"

	"github.com/mbundle/maxscene/internal/ids"
)

// Primitive is the decoded parameter-block description of a procedural
// geometry object: a human-readable parameter dump plus, for the shapes
// whose corner points are cheap to derive directly from the block (Box and
// Plane), the corner vertices themselves. Curved primitives (Sphere,
// Cylinder, ...) are reported in Text only: tessellating them is a
// rendering concern, not a scene-graph one.
type Primitive struct {
	Text   string
	Vertex [][3]float32
}

// DecodePrimitive dispatches on classID to build a Primitive description
// from an already-decoded parameter block. ok is false when classID names
// none of the recognized procedural primitives (Editable Poly is handled
// separately, by DecodeEditablePoly; Editable Mesh is not decoded).
func DecodePrimitive(classID ids.ClassID, pb []ParamValue) (Primitive, bool) {
	switch classID {
	case ids.ClassBox:
		return decodeBox(pb)
	case ids.ClassSphere:
		return decodeSphere(pb)
	case ids.ClassCylinder:
		return decodeCylinder(pb)
	case ids.ClassTorus:
		return decodeTorus(pb)
	case ids.ClassCone:
		return decodeCone(pb)
	case ids.ClassGeoSphere:
		return decodeGeoSphere(pb)
	case ids.ClassTube:
		return decodeTube(pb)
	case ids.ClassPyramid:
		return decodePyramid(pb)
	case ids.ClassPlane:
		return decodePlane(pb)
	default:
		return Primitive{}, false
	}
}

func decodeBox(pb []ParamValue) (Primitive, bool) {
	if len(pb) <= 5 {
		return Primitive{}, false
	}
	length, width, height := pb[0].Float, pb[1].Float, pb[2].Float
	lengthSegments, widthSegments, heightSegments := pb[3].Int, pb[4].Int, pb[5].Int

	vertex := [][3]float32{
		{-length, -width, -height},
		{length, -width, -height},
		{-length, width, -height},
		{length, width, -height},
		{-length, -width, height},
		{length, -width, height},
		{-length, width, height},
		{length, width, height},
	}

	text := fmt.Sprintf("Primitive : Box\n"+
		"Length : %f\nWidth : %f\nHeight : %f\n"+
		"Length Segments : %d\nWidth Segments : %d\nHeight Segments : %d\n",
		length, width, height, lengthSegments, widthSegments, heightSegments)
	return Primitive{Text: text, Vertex: vertex}, true
}

func decodeSphere(pb []ParamValue) (Primitive, bool) {
	if len(pb) <= 4 {
		return Primitive{}, false
	}
	radius, segments, smooth, hemisphere, chopSquash := pb[0].Float, pb[1].Int, pb[2].Int != 0, pb[3].Float, pb[4].Int

	chop := "Chop"
	if chopSquash != 0 {
		chop = "Squash"
	}
	text := fmt.Sprintf("Primitive : Sphere\n"+
		"Radius : %f\nSegments : %d\nSmooth : %s\nHemisphere : %f\nChopSquash : %s\n",
		radius, segments, boolStr(smooth), hemisphere, chop)
	return Primitive{Text: text}, true
}

func decodeCylinder(pb []ParamValue) (Primitive, bool) {
	if len(pb) <= 5 {
		return Primitive{}, false
	}
	radius, height := pb[0].Float, pb[1].Float
	heightSegments, capSegments, sides, smooth := pb[2].Int, pb[3].Int, pb[4].Int, pb[5].Int != 0

	text := fmt.Sprintf("Primitive : Cylinder\n"+
		"Radius : %f\nHeight : %f\nHeight Segments : %d\nCap Segments : %d\nSides : %d\nSmooth : %s\n",
		radius, height, heightSegments, capSegments, sides, boolStr(smooth))
	return Primitive{Text: text}, true
}

func decodeTorus(pb []ParamValue) (Primitive, bool) {
	if len(pb) <= 6 {
		return Primitive{}, false
	}
	radius1, radius2, rotation, twist := pb[0].Float, pb[1].Float, pb[2].Float, pb[3].Float
	segments, sides, smooth := pb[4].Int, pb[5].Int, pb[6].Int

	text := fmt.Sprintf("Primitive : Torus\n"+
		"Radius1 : %f\nRadius2 : %f\nRotation : %f\nTwist : %f\nSegments : %d\nSides : %d\nSmooth : %d\n",
		radius1, radius2, rotation, twist, segments, sides, smooth)
	return Primitive{Text: text}, true
}

func decodeCone(pb []ParamValue) (Primitive, bool) {
	if len(pb) <= 6 {
		return Primitive{}, false
	}
	radius1, radius2, height := pb[0].Float, pb[1].Float, pb[2].Float
	heightSegments, capSegments, sides, smooth := pb[3].Int, pb[4].Int, pb[5].Int, pb[6].Int != 0

	text := fmt.Sprintf("Primitive : Cone\n"+
		"Radius1 : %f\nRadius2 : %f\nHeight : %f\nHeight Segments : %d\nCap Segments : %d\nSides : %d\nSmooth : %s\n",
		radius1, radius2, height, heightSegments, capSegments, sides, boolStr(smooth))
	return Primitive{Text: text}, true
}

func decodeGeoSphere(pb []ParamValue) (Primitive, bool) {
	if len(pb) <= 4 {
		return Primitive{}, false
	}
	radius, segments, geodesicBaseType := pb[0].Float, pb[1].Int, pb[2].Int
	smooth, hemisphere := pb[3].Int != 0, pb[4].Int != 0

	text := fmt.Sprintf("Primitive : GeoSphere\n"+
		"Radius : %f\nSegments : %d\nGeodesic Base Type : %d\nSmooth : %s\nHemisphere : %s\n",
		radius, segments, geodesicBaseType, boolStr(smooth), boolStr(hemisphere))
	return Primitive{Text: text}, true
}

func decodeTube(pb []ParamValue) (Primitive, bool) {
	if len(pb) <= 6 {
		return Primitive{}, false
	}
	radius1, radius2, height := pb[0].Float, pb[1].Float, pb[2].Float
	heightSegments, capSegments, sides, smooth := pb[3].Int, pb[4].Int, pb[5].Int, pb[6].Int != 0

	text := fmt.Sprintf("Primitive : Tube\n"+
		"Radius1 : %f\nRadius2 : %f\nHeight : %f\nHeight Segments : %d\nCap Segments : %d\nSides : %d\nSmooth : %s\n",
		radius1, radius2, height, heightSegments, capSegments, sides, boolStr(smooth))
	return Primitive{Text: text}, true
}

func decodePyramid(pb []ParamValue) (Primitive, bool) {
	if len(pb) <= 5 {
		return Primitive{}, false
	}
	width, depth, height := pb[0].Float, pb[1].Float, pb[2].Float
	widthSegments, depthSegments, heightSegments := pb[3].Int, pb[4].Int, pb[5].Int

	text := fmt.Sprintf("Primitive : Pyramid\n"+
		"Width : %f\nDepth : %f\nHeight : %f\n"+
		"Width Segments : %d\nDepth Segments : %d\nHeight Segments : %d\n",
		width, depth, height, widthSegments, depthSegments, heightSegments)
	return Primitive{Text: text}, true
}

func decodePlane(pb []ParamValue) (Primitive, bool) {
	if len(pb) <= 3 {
		return Primitive{}, false
	}
	length, width := pb[0].Float, pb[1].Float
	lengthSegments, widthSegments := pb[2].Int, pb[3].Int

	vertex := [][3]float32{
		{-length, -width, 0},
		{length, -width, 0},
		{-length, width, 0},
		{length, width, 0},
	}

	text := fmt.Sprintf("Primitive : Plane\n"+
		"Length : %f\nWidth : %f\nLength Segments : %d\nWidth Segments : %d\n",
		length, width, lengthSegments, widthSegments)
	return Primitive{Text: text, Vertex: vertex}, true
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
